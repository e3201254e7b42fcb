// Package config loads configuration structs from environment variables using
// struct tags, with a best-effort .env file load for local development.
//
// # Usage
//
//	type LogConfig struct {
//	    Level  string `env:"LOG_LEVEL" envDefault:"info"`
//	    Format string `env:"LOG_FORMAT" envDefault:"json"`
//	}
//
//	var cfg LogConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// Load parses the environment on every call; a library consumer reads its
// configuration once at startup, so no cross-call caching is kept.
package config
