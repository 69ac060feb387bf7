package setup

import (
	"context"

	"github.com/bornholm/lifemap/internal/config"
	"github.com/bornholm/lifemap/internal/http/handler/api"
	"github.com/pkg/errors"
)

func getAPIHandlerFromConfig(ctx context.Context, conf *config.Config) (*api.Handler, error) {
	pipeline, err := getMarkerPipelineFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	directory, err := getMarkerDirectoryFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return api.NewHandler(pipeline, directory), nil
}
