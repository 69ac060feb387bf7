package main

import (
	"github.com/bornholm/lifemap/internal/command"
	"github.com/bornholm/lifemap/internal/command/remote"
)

func main() {
	command.Main(
		"lifemap-cli", "a lifemap client tool",
		remote.MarkersCommand(),
		remote.CreateCommand(),
		remote.PersonsCommand(),
	)
}
