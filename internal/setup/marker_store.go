package setup

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/bornholm/lifemap/internal/adapter/cache"
	gormAdapter "github.com/bornholm/lifemap/internal/adapter/gorm"
	"github.com/bornholm/lifemap/internal/adapter/memory"
	"github.com/bornholm/lifemap/internal/config"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/pkg/errors"
)

var MarkerStores = NewRegistry[port.MarkerStore]()

func init() {
	MarkerStores.Register("sqlite", func(u *url.URL) (port.MarkerStore, error) {
		dsn := u.Host + u.Path
		if dsn == "" {
			return nil, errors.Errorf("missing database path in uri '%s'", u.Redacted())
		}

		if u.RawQuery != "" {
			dsn += "?" + u.RawQuery
		}

		db, err := openDatabase(dsn)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return gormAdapter.NewStore(db), nil
	})

	MarkerStores.Register("memory", func(u *url.URL) (port.MarkerStore, error) {
		return memory.NewMarkerStore(), nil
	})
}

var getMarkerStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (port.MarkerStore, error) {
	// Make sure the database log level is applied before any marker database is opened
	if _, err := getGormDatabaseFromConfig(ctx, conf); err != nil {
		return nil, errors.WithStack(err)
	}

	store, err := MarkerStores.From(conf.Storage.Markers.URI)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if conf.Storage.Cache.Enabled {
		slog.DebugContext(ctx, "using cached marker store", slog.Duration("ttl", conf.Storage.Cache.TTL), slog.Int("cache_size", conf.Storage.Cache.Size))
		store = cache.NewMarkerStore(store, conf.Storage.Cache.Size, conf.Storage.Cache.TTL)
	}

	return store, nil
})

func GetMarkerStoreFromConfig(ctx context.Context, conf *config.Config) (port.MarkerStore, error) {
	return getMarkerStoreFromConfig(ctx, conf)
}
