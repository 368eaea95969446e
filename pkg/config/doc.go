// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv (for .env files) with
// github.com/caarlos0/env/v11 (for struct tags). Load parses a struct once
// per type and caches it; Reload and ResetCache exist for tests and for
// programs that change their environment at runtime.
//
//	type App struct {
//		Env  string `env:"APP_ENV" envDefault:"development"`
//		Name string `env:"APP_NAME" envDefault:"ulma"`
//	}
//
//	var cfg App
//	config.MustLoad(&cfg)
//
// Errors wrap ErrParsingConfig or ErrLoadingEnv.
package config
