package config

import "time"

type Geocoder struct {
	URI         string            `env:"URI,expand" envDefault:"nominatim://nominatim.openstreetmap.org"`
	Timeout     time.Duration     `env:"TIMEOUT,expand" envDefault:"5s"`
	MaxRetries  int               `env:"MAX_RETRIES,expand" envDefault:"2"`
	BaseBackoff time.Duration     `env:"BASE_BACKOFF,expand" envDefault:"500ms"`
	RateLimit   GeocoderRateLimit `envPrefix:"RATE_LIMIT_"`
	Cache       Cache             `envPrefix:"CACHE_"`
}

type GeocoderRateLimit struct {
	Enabled  bool          `env:"ENABLED,expand" envDefault:"true"`
	Interval time.Duration `env:"INTERVAL,expand" envDefault:"1s"`
	MaxBurst int           `env:"MAX_BURST,expand" envDefault:"1"`
}
