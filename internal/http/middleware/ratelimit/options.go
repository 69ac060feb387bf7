package ratelimit

import "time"

type Options struct {
	TrustHeaders bool
	Interval     time.Duration
	MaxBurst     int
	CacheSize    int
	CacheTTL     time.Duration
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		TrustHeaders: false,
		Interval:     time.Second,
		MaxBurst:     20,
		CacheSize:    1000,
		CacheTTL:     10 * time.Minute,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

// WithTrustHeaders makes the middleware identify clients with the X-Forwarded-For
// and X-Real-Ip headers. Only enable it behind a trusted reverse proxy.
func WithTrustHeaders(trust bool) OptionFunc {
	return func(opts *Options) {
		opts.TrustHeaders = trust
	}
}

func WithRate(interval time.Duration, maxBurst int) OptionFunc {
	return func(opts *Options) {
		opts.Interval = interval
		opts.MaxBurst = maxBurst
	}
}

func WithCache(size int, ttl time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.CacheSize = size
		opts.CacheTTL = ttl
	}
}
