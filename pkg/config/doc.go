// Package config loads configuration structs from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for tag-driven parsing and
// github.com/joho/godotenv for optional .env files. Each configuration type is
// parsed once per process and served from a cache afterwards; Reload and
// ResetCache exist for tests and for commands that change the environment at
// runtime.
//
//	type Config struct {
//		Env      string `env:"SHAPECHECK_ENV" envDefault:"development"`
//		MaxDepth int    `env:"SHAPECHECK_MAX_DEPTH" envDefault:"0"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
