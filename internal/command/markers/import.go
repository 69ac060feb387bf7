package markers

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/lifemap/internal/config"
	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/service"
	"github.com/bornholm/lifemap/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func ImportCommand() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Create markers from a YAML file, each entry going through validation and geocoding",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     flagFile,
				Aliases:  []string{"f"},
				Usage:    "Path to the YAML file containing the list of markers (use '-' for stdin)",
				Required: true,
			},
		}, ownerFlags...),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			forms, err := readFormsFile(cCtx.String(flagFile))
			if err != nil {
				return errors.WithStack(err)
			}

			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}

			owner, err := getOwner(cCtx, conf)
			if err != nil {
				return errors.WithStack(err)
			}

			pipeline, err := setup.GetMarkerPipelineFromConfig(ctx, conf)
			if err != nil {
				return errors.Wrap(err, "could not create marker pipeline")
			}

			failed := 0

			for idx, form := range forms {
				marker, err := pipeline.CreateMarker(ctx, owner.ID(), form)
				if err != nil {
					failed++

					slog.ErrorContext(ctx, "could not import marker", slog.Int("index", idx), slog.String("title", form.Title), slogx.Error(err))

					if pipelineErr, ok := service.PipelineErrorOf(err); ok {
						for _, f := range pipelineErr.Fields {
							fmt.Fprintf(cCtx.App.ErrWriter, "#%d %s: %s\n", idx, f.Field, f.Message)
						}
					}

					continue
				}

				fmt.Fprintf(cCtx.App.Writer, "%s\t%s\n", marker.ID(), marker.Title())
			}

			if failed > 0 {
				return errors.Errorf("%d of %d markers could not be imported", failed, len(forms))
			}

			return nil
		},
	}
}

func readFormsFile(path string) ([]model.MarkerForm, error) {
	var r io.Reader

	if path == "-" {
		r = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "could not open file '%s'", path)
		}

		defer file.Close()

		r = file
	}

	forms, err := readForms(r)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read markers from '%s'", path)
	}

	return forms, nil
}

func readForms(r io.Reader) ([]model.MarkerForm, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var forms []model.MarkerForm
	if err := decoder.Decode(&forms); err != nil {
		if errors.Is(err, io.EOF) {
			return []model.MarkerForm{}, nil
		}

		return nil, errors.WithStack(err)
	}

	return forms, nil
}
