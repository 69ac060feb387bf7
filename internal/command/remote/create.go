package remote

import (
	"os"

	"github.com/bornholm/lifemap/internal/command/common"
	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const flagFile = "file"

func CreateCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a marker from a YAML document describing a single marker",
		Flags: common.WithCommonFlags(
			&cli.StringFlag{
				Name:     flagFile,
				Aliases:  []string{"f"},
				Usage:    "Path to the YAML marker file",
				Required: true,
			},
		),
		Action: func(cCtx *cli.Context) error {
			data, err := os.ReadFile(cCtx.String(flagFile))
			if err != nil {
				return errors.WithStack(err)
			}

			var form model.MarkerForm
			if err := yaml.Unmarshal(data, &form); err != nil {
				return errors.Wrap(err, "could not parse marker file")
			}

			lifemap, err := common.GetLifemapClient(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			marker, err := lifemap.CreateMarker(cCtx.Context, form)
			if err != nil {
				if apiErr, ok := client.APIErrorOf(err); ok {
					return errors.New(apiErr.Error())
				}

				return errors.WithStack(err)
			}

			return common.WriteYAML(cCtx.App.Writer, marker)
		},
	}
}
