package server

import (
	"log/slog"
	"os"
	"os/signal"

	"github.com/bornholm/lifemap/internal/config"
	"github.com/bornholm/lifemap/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "Start the lifemap http server (configured with LIFEMAP_* environment variables)",
		Action: func(cCtx *cli.Context) error {
			ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt)
			defer stop()

			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}

			server, err := setup.NewHTTPServerFromConfig(ctx, conf)
			if err != nil {
				return errors.Wrap(err, "could not setup http server")
			}

			slog.InfoContext(ctx, "starting server", slog.String("address", conf.HTTP.Address))

			if err := server.Run(ctx); err != nil {
				return errors.Wrap(err, "could not run server")
			}

			return nil
		},
	}
}
