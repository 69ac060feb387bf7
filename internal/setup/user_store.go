package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/lifemap/internal/adapter/cache"
	gormAdapter "github.com/bornholm/lifemap/internal/adapter/gorm"
	"github.com/bornholm/lifemap/internal/config"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/pkg/errors"
)

var getUserStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.UserStore, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var store port.UserStore = gormAdapter.NewStore(db)

	if conf.Storage.Cache.Enabled {
		slog.DebugContext(ctx, "using cached user store", slog.Duration("ttl", conf.Storage.Cache.TTL), slog.Int("cache_size", conf.Storage.Cache.Size))
		store = cache.NewUserStore(store, conf.Storage.Cache.Size, conf.Storage.Cache.TTL)
	}

	return store, nil
})

func GetUserStoreFromConfig(ctx context.Context, conf *config.Config) (port.UserStore, error) {
	return getUserStoreFromConfig(ctx, conf)
}
