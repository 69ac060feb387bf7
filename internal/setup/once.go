package setup

import (
	"context"
	"sync"

	"github.com/bornholm/lifemap/internal/config"
	"github.com/pkg/errors"
)

// createFromConfigOnce memoizes the result of the given factory. The first
// configuration wins, later calls return the same value or error.
func createFromConfigOnce[T any](factory func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once    sync.Once
		service T
		err     error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			service, err = factory(ctx, conf)
			if err != nil {
				err = errors.WithStack(err)
			}
		})

		return service, err
	}
}
