package markers

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bornholm/lifemap/internal/command/common"
	"github.com/bornholm/lifemap/internal/config"
	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/http/handler/api"
	"github.com/bornholm/lifemap/internal/setup"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func ListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the markers of an owner, private ones included",
		Flags: append([]cli.Flag{common.FormatFlag()}, ownerFlags...),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}

			owner, err := getOwner(cCtx, conf)
			if err != nil {
				return errors.WithStack(err)
			}

			directory, err := setup.GetMarkerDirectoryFromConfig(ctx, conf)
			if err != nil {
				return errors.Wrap(err, "could not create marker directory")
			}

			markers, err := directory.ListOwnerMarkers(ctx, owner.ID())
			if err != nil {
				return errors.WithStack(err)
			}

			if common.GetFormat(cCtx) == common.FormatYAML {
				if err := common.WriteYAML(cCtx.App.Writer, api.MarkersFrom(markers)); err != nil {
					return errors.WithStack(err)
				}

				return nil
			}

			if err := printMarkers(cCtx.App.Writer, markers); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}

func printMarkers(w io.Writer, markers []model.PersistedMarker) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tTITLE\tFROM\tTO\tLOCATION\tVISIBILITY\tUPDATED")

	for _, m := range markers {
		visibility := "public"
		if m.Private() {
			visibility = "private"
		}

		dateRange := m.DateRange()

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			m.ID(),
			m.Title(),
			dateRange.From.Format(model.DateLayout),
			dateRange.To.Format(model.DateLayout),
			m.Location().Address,
			visibility,
			humanize.Time(m.UpdatedAt()),
		)
	}

	if err := tw.Flush(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
