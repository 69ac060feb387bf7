package config

import "time"

type Storage struct {
	Markers  Markers  `envPrefix:"MARKERS_"`
	Database Database `envPrefix:"DATABASE_"`
	Cache    Cache    `envPrefix:"CACHE_"`
}

type Markers struct {
	URI string `env:"URI,expand" envDefault:"sqlite://data.sqlite"`
}

type Database struct {
	DSN string `env:"DSN,expand" envDefault:"data.sqlite"`
}

type Cache struct {
	Enabled bool          `env:"ENABLED,expand" envDefault:"true"`
	Size    int           `env:"SIZE,expand" envDefault:"1000"`
	TTL     time.Duration `env:"TTL,expand" envDefault:"10m"`
}
