package markers

import (
	"github.com/urfave/cli/v2"
)

const (
	flagOwnerProvider = "owner-provider"
	flagOwnerSubject  = "owner-subject"
	flagFile          = "file"
)

var ownerFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    flagOwnerProvider,
		Value:   "local",
		EnvVars: []string{"LIFEMAP_CLI_OWNER_PROVIDER"},
		Usage:   "Identity provider of the markers owner",
	},
	&cli.StringFlag{
		Name:     flagOwnerSubject,
		EnvVars:  []string{"LIFEMAP_CLI_OWNER_SUBJECT"},
		Usage:    "Subject (ie account name) of the markers owner",
		Required: true,
	},
}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "markers",
		Usage: "Manage the markers of an owner directly in the configured store",
		Subcommands: []*cli.Command{
			ImportCommand(),
			ListCommand(),
		},
	}
}
