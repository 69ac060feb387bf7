package geocode

import (
	"strings"

	"github.com/bornholm/lifemap/internal/command/common"
	"github.com/bornholm/lifemap/internal/config"
	"github.com/bornholm/lifemap/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

type Result struct {
	Address          string  `yaml:"address"`
	FormattedAddress string  `yaml:"formattedAddress"`
	Lat              float64 `yaml:"lat"`
	Lng              float64 `yaml:"lng"`
}

func Command() *cli.Command {
	return &cli.Command{
		Name:      "geocode",
		Usage:     "Resolve an address with the configured geocoding provider",
		ArgsUsage: "<address>",
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			address := strings.TrimSpace(strings.Join(cCtx.Args().Slice(), " "))
			if address == "" {
				return errors.New("missing address argument")
			}

			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}

			geocoder, err := setup.GetGeocoderFromConfig(ctx, conf)
			if err != nil {
				return errors.Wrap(err, "could not create geocoder")
			}

			place, err := geocoder.ResolveAddress(ctx, address)
			if err != nil {
				return errors.Wrapf(err, "could not resolve address '%s'", address)
			}

			result := Result{
				Address:          address,
				FormattedAddress: place.FormattedAddress,
				Lat:              place.Lat,
				Lng:              place.Lng,
			}

			if err := common.WriteYAML(cCtx.App.Writer, result); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
