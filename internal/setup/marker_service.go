package setup

import (
	"context"

	"github.com/bornholm/lifemap/internal/config"
	"github.com/bornholm/lifemap/internal/core/service"
	"github.com/pkg/errors"
)

var getMarkerPipelineFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.MarkerPipeline, error) {
	geocoder, err := getGeocoderFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create geocoder from config")
	}

	store, err := getMarkerStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create marker store from config")
	}

	return service.NewMarkerPipeline(geocoder, store), nil
})

var getMarkerDirectoryFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*service.MarkerDirectory, error) {
	store, err := getMarkerStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create marker store from config")
	}

	userStore, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create user store from config")
	}

	return service.NewMarkerDirectory(store, userStore), nil
})

func GetMarkerPipelineFromConfig(ctx context.Context, conf *config.Config) (*service.MarkerPipeline, error) {
	return getMarkerPipelineFromConfig(ctx, conf)
}

func GetMarkerDirectoryFromConfig(ctx context.Context, conf *config.Config) (*service.MarkerDirectory, error) {
	return getMarkerDirectoryFromConfig(ctx, conf)
}
