package config

import "time"

type HTTP struct {
	BaseURL        string    `env:"BASE_URL,expand" envDefault:"/"`
	Address        string    `env:"ADDRESS,expand" envDefault:":3002"`
	AllowedOrigins []string  `env:"ALLOWED_ORIGINS,expand" envSeparator:","`
	Session        Session   `envPrefix:"SESSION_"`
	Auth           Auth      `envPrefix:"AUTH_"`
	RateLimit      RateLimit `envPrefix:"RATE_LIMIT_"`
}

type Session struct {
	Keys   []string `env:"KEYS,expand" envSeparator:","`
	Cookie Cookie   `envPrefix:"COOKIE_"`
}

type Cookie struct {
	Path     string        `env:"PATH,expand" envDefault:"/"`
	HTTPOnly bool          `env:"HTTP_ONLY,expand" envDefault:"true"`
	Secure   bool          `env:"SECURE,expand" envDefault:"false"`
	MaxAge   time.Duration `env:"MAX_AGE,expand" envDefault:"24h"`
}

type Auth struct {
	// Users maps local account names to their passwords, ie "alice:secret,bob:password"
	Users  map[string]string `env:"USERS,expand" envSeparator:"," envKeyValSeparator:":"`
	Admins []string          `env:"ADMINS,expand" envSeparator:","`
}

type RateLimit struct {
	Enabled      bool          `env:"ENABLED,expand" envDefault:"true"`
	Interval     time.Duration `env:"INTERVAL,expand" envDefault:"1s"`
	MaxBurst     int           `env:"MAX_BURST,expand" envDefault:"20"`
	CacheSize    int           `env:"CACHE_SIZE,expand" envDefault:"1000"`
	CacheTTL     time.Duration `env:"CACHE_TTL,expand" envDefault:"10m"`
	TrustHeaders bool          `env:"TRUST_HEADERS,expand" envDefault:"false"`
}
