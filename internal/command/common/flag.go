package common

import (
	"net/url"

	"github.com/bornholm/lifemap/pkg/client"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

const (
	paramServer   = "server"
	paramUsername = "username"
	paramPassword = "password"
	paramFormat   = "format"
)

const (
	FormatYAML = "yaml"
	FormatText = "text"
)

var (
	flagServer = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramServer,
		Aliases: []string{"s"},
		Value:   "http://localhost:3002",
		EnvVars: []string{"LIFEMAP_CLI_SERVER"},
		Usage:   "Lifemap server base url",
	})
	flagUsername = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramUsername,
		Aliases: []string{"u"},
		EnvVars: []string{"LIFEMAP_CLI_USERNAME"},
		Usage:   "Lifemap account name",
	})
	flagPassword = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramPassword,
		Aliases: []string{"p"},
		EnvVars: []string{"LIFEMAP_CLI_PASSWORD"},
		Usage:   "Lifemap account password",
	})
	flagFormat = &cli.StringFlag{
		Name:    paramFormat,
		Value:   FormatText,
		EnvVars: []string{"LIFEMAP_CLI_FORMAT"},
		Usage:   "Output format ('text' or 'yaml')",
	}
)

func WithCommonFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagServer,
		flagUsername,
		flagPassword,
		flagFormat,
	}, flags...)
}

func FormatFlag() cli.Flag {
	return flagFormat
}

func GetFormat(ctx *cli.Context) string {
	return ctx.String(paramFormat)
}

func GetLifemapClient(ctx *cli.Context) (*client.Client, error) {
	rawServerURL := ctx.String(paramServer)

	serverURL, err := url.Parse(rawServerURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if username := ctx.String(paramUsername); username != "" {
		serverURL.User = url.UserPassword(username, ctx.String(paramPassword))
	}

	return client.New(
		client.WithBaseURL(serverURL),
	), nil
}
