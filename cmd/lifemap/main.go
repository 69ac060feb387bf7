package main

import (
	"github.com/bornholm/lifemap/internal/command"
	"github.com/bornholm/lifemap/internal/command/geocode"
	"github.com/bornholm/lifemap/internal/command/markers"
	"github.com/bornholm/lifemap/internal/command/server"

	// Adapters
	_ "github.com/bornholm/lifemap/internal/adapter/dynamodb"
	_ "github.com/bornholm/lifemap/internal/adapter/google"
	_ "github.com/bornholm/lifemap/internal/adapter/nominatim"
)

func main() {
	command.Main(
		"lifemap", "a personal life map",
		server.Command(),
		geocode.Command(),
		markers.Command(),
	)
}
