package remote

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bornholm/lifemap/internal/command/common"
	"github.com/bornholm/lifemap/internal/http/handler/api"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func MarkersCommand() *cli.Command {
	return &cli.Command{
		Name:  "markers",
		Usage: "List the markers of the authenticated account",
		Flags: common.WithCommonFlags(),
		Action: func(cCtx *cli.Context) error {
			client, err := common.GetLifemapClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			markers, err := client.ListMarkers(cCtx.Context)
			if err != nil {
				return errors.WithStack(err)
			}

			return writeMarkers(cCtx, markers)
		},
	}
}

func PersonsCommand() *cli.Command {
	return &cli.Command{
		Name:  "persons",
		Usage: "List the persons sharing public markers",
		Flags: common.WithCommonFlags(),
		Action: func(cCtx *cli.Context) error {
			client, err := common.GetLifemapClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			persons, err := client.ListPersons(cCtx.Context)
			if err != nil {
				return errors.WithStack(err)
			}

			if common.GetFormat(cCtx) == common.FormatYAML {
				return common.WriteYAML(cCtx.App.Writer, persons)
			}

			tw := tabwriter.NewWriter(cCtx.App.Writer, 0, 0, 2, ' ', 0)

			fmt.Fprintln(tw, "ID\tNAME\tMARKERS")

			for _, p := range persons {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", p.ID, p.DisplayName, p.PublicMarkers)
			}

			return errors.WithStack(tw.Flush())
		},
	}
}

func writeMarkers(cCtx *cli.Context, markers []api.Marker) error {
	if common.GetFormat(cCtx) == common.FormatYAML {
		return common.WriteYAML(cCtx.App.Writer, markers)
	}

	return printMarkers(cCtx.App.Writer, markers)
}

func printMarkers(w io.Writer, markers []api.Marker) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tTITLE\tFROM\tTO\tLOCATION\tPRIVATE")

	for _, m := range markers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%v\n", m.ID, m.Title, m.DateFrom, m.DateTo, m.Location.Address, m.IsPrivate)
	}

	if err := tw.Flush(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
