package setup

import (
	"context"
	"log/slog"
	"sync"

	gormAdapter "github.com/bornholm/lifemap/internal/adapter/gorm"
	"github.com/bornholm/lifemap/internal/config"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	databasesMutex sync.Mutex
	databases      = map[string]*gorm.DB{}
	gormLogLevel   = logger.Error
)

var getGormDatabaseFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gorm.DB, error) {
	switch slog.Level(conf.Logger.Level) {
	case slog.LevelError:
		gormLogLevel = logger.Error
	case slog.LevelWarn:
		gormLogLevel = logger.Warn
	case slog.LevelInfo:
		gormLogLevel = logger.Info
	default:
		gormLogLevel = logger.Error
	}

	db, err := openDatabase(conf.Storage.Database.DSN)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if slog.Level(conf.Logger.Level) == slog.LevelDebug {
		db = db.Debug()
	}

	return db, nil
})

// openDatabase shares a single connection pool per DSN, so that the users and
// the markers can live in the same SQLite file.
func openDatabase(dsn string) (*gorm.DB, error) {
	databasesMutex.Lock()
	defer databasesMutex.Unlock()

	if db, exists := databases[dsn]; exists {
		return db, nil
	}

	db, err := gormAdapter.OpenDatabase(dsn, gormLogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open database '%s'", dsn)
	}

	databases[dsn] = db

	return db, nil
}
