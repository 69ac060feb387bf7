package http

import (
	"net/http"
	"time"
)

type CORS struct {
	AllowedOrigins []string
}

type Options struct {
	Address     string
	BaseURL     string
	CORS        *CORS
	Middlewares []func(http.Handler) http.Handler
	Mounts      map[string]http.Handler

	ShutdownTimeout time.Duration
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Address:         ":3002",
		BaseURL:         "",
		Mounts:          map[string]http.Handler{},
		ShutdownTimeout: 10 * time.Second,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithMount(prefix string, handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.Mounts[prefix] = handler
	}
}

func WithBaseURL(baseURL string) OptionFunc {
	return func(opts *Options) {
		opts.BaseURL = baseURL
	}
}

func WithAddress(addr string) OptionFunc {
	return func(opts *Options) {
		opts.Address = addr
	}
}

// WithAllowedOrigins enables CORS for the given origins. No origin disables it.
func WithAllowedOrigins(origins ...string) OptionFunc {
	return func(opts *Options) {
		if len(origins) == 0 {
			opts.CORS = nil
			return
		}

		opts.CORS = &CORS{
			AllowedOrigins: origins,
		}
	}
}

// WithMiddleware wraps the whole server handler. Middlewares are applied in
// declaration order, the first one being the outermost.
func WithMiddleware(middlewares ...func(http.Handler) http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.Middlewares = append(opts.Middlewares, middlewares...)
	}
}

func WithShutdownTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.ShutdownTimeout = timeout
	}
}
