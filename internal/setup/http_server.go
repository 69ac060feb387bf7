package setup

import (
	"context"

	"github.com/bornholm/lifemap/internal/config"
	"github.com/bornholm/lifemap/internal/http"
	"github.com/bornholm/lifemap/internal/http/handler/metrics"
	"github.com/bornholm/lifemap/internal/http/middleware/authz"
	"github.com/bornholm/lifemap/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	api, err := getAPIHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure api handler from config")
	}

	sessionHandler, err := getSessionHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure session handler from config")
	}

	authMiddleware, err := getAuthMiddlewareFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure auth middleware from config")
	}

	assertAdmin := authz.Middleware(nil, authz.Has(authz.RoleAdmin))

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithAllowedOrigins(conf.HTTP.AllowedOrigins...),
		http.WithMount("/auth/", sessionHandler),
		http.WithMount("/api/v1/", authMiddleware(api)),
		http.WithMount("/metrics/", authMiddleware(assertAdmin(metrics.NewHandler()))),
	}

	if conf.HTTP.RateLimit.Enabled {
		options = append(options, http.WithMiddleware(ratelimit.Middleware(
			ratelimit.WithTrustHeaders(conf.HTTP.RateLimit.TrustHeaders),
			ratelimit.WithRate(conf.HTTP.RateLimit.Interval, conf.HTTP.RateLimit.MaxBurst),
			ratelimit.WithCache(conf.HTTP.RateLimit.CacheSize, conf.HTTP.RateLimit.CacheTTL),
		)))
	}

	server := http.NewServer(options...)

	return server, nil
}
