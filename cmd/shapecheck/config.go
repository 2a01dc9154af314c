package main

import (
	"log/slog"

	"github.com/dmitrymomot/shapeguard/pkg/config"
	"github.com/dmitrymomot/shapeguard/pkg/httpserver"
	"github.com/dmitrymomot/shapeguard/pkg/logger"
	"github.com/dmitrymomot/shapeguard/pkg/shape"
)

const serviceName = "shapecheck"

// Config is read from the environment and an optional .env file.
type Config struct {
	Env       string `env:"SHAPECHECK_ENV" envDefault:"development"`
	LogLevel  string `env:"SHAPECHECK_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"SHAPECHECK_LOG_FORMAT"`
	MaxDepth  int    `env:"SHAPECHECK_MAX_DEPTH" envDefault:"0"`

	HTTP httpserver.Config
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Logger builds the process logger. Explicit level and format settings
// override the environment defaults.
func (c Config) Logger(opts ...logger.Option) (*slog.Logger, error) {
	all := []logger.Option{logger.WithEnvironment(c.Env, serviceName)}
	if c.LogLevel != "" {
		lvl, err := logger.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, err
		}
		all = append(all, logger.WithLevel(lvl))
	}
	if c.LogFormat != "" {
		f := logger.Format(c.LogFormat)
		if f != logger.FormatJSON && f != logger.FormatText {
			return nil, errInvalidLogFormat(c.LogFormat)
		}
		all = append(all, logger.WithFormat(f))
	}
	return logger.New(append(all, opts...)...), nil
}

// ShapeOptions returns the matcher options shared by every command.
func (c Config) ShapeOptions() []shape.Option {
	opts := []shape.Option{shape.WithRegistry(shape.WireTypes())}
	if c.MaxDepth > 0 {
		opts = append(opts, shape.WithMaxDepth(c.MaxDepth))
	}
	return opts
}
