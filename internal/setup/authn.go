package setup

import (
	"context"
	"net/http"

	"github.com/bornholm/lifemap/internal/config"
	"github.com/bornholm/lifemap/internal/http/middleware/authn"
	"github.com/bornholm/lifemap/internal/http/middleware/authn/session"
	"github.com/bornholm/lifemap/internal/http/middleware/bridge"
	"github.com/pkg/errors"
)

const authRealm = "lifemap"

var getSessionHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*session.Handler, error) {
	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return session.NewHandler(sessionStore, authn.NewBasicAuthenticator(conf.HTTP.Auth.Users)), nil
})

// getAuthMiddlewareFromConfig returns the authentication chain: basic auth or
// session cookie, then mapping of the identity to a persisted user.
func getAuthMiddlewareFromConfig(ctx context.Context, conf *config.Config) (func(http.Handler) http.Handler, error) {
	sessionHandler, err := getSessionHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	userStore, err := getUserStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	authnMiddleware := authn.Middleware(
		authn.Unauthorized(authRealm),
		authn.NewBasicAuthenticator(conf.HTTP.Auth.Users),
		sessionHandler,
	)

	bridgeMiddleware := bridge.Middleware(userStore, conf.HTTP.Auth.Admins...)

	return func(next http.Handler) http.Handler {
		return authnMiddleware(bridgeMiddleware(next))
	}, nil
}
