package markers

import (
	"github.com/bornholm/lifemap/internal/config"
	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func getOwner(cCtx *cli.Context, conf *config.Config) (model.User, error) {
	userStore, err := setup.GetUserStoreFromConfig(cCtx.Context, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create user store")
	}

	owner, err := userStore.FindOrCreateUser(cCtx.Context, cCtx.String(flagOwnerProvider), cCtx.String(flagOwnerSubject))
	if err != nil {
		return nil, errors.Wrap(err, "could not find owner")
	}

	return owner, nil
}
