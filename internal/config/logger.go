package config

type Logger struct {
	// See https://pkg.go.dev/log/slog#Level
	Level int `env:"LEVEL,expand" envDefault:"0"`
}
