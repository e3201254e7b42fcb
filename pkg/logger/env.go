package logger

import (
	"log/slog"
	"strings"

	// Aliased: the package-level config struct in factory.go owns the name.
	cfg "github.com/dmitrymomot/formkit/pkg/config"
)

// EnvConfig describes logger settings read from the environment.
type EnvConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format Format `env:"LOG_FORMAT" envDefault:"json"`
}

// NewFromEnv builds a logger from LOG_LEVEL and LOG_FORMAT, applying any
// extra options on top. Unknown level or format names fall back to the
// defaults rather than failing: a bad logging knob should not stop the
// process.
func NewFromEnv(opts ...Option) (*slog.Logger, error) {
	var envCfg EnvConfig
	if err := cfg.Load(&envCfg); err != nil {
		return nil, err
	}

	base := []Option{
		WithLevel(parseLevel(envCfg.Level)),
		WithFormat(parseFormat(envCfg.Format)),
	}
	return New(append(base, opts...)...), nil
}

func parseFormat(f Format) Format {
	if f == FormatText {
		return FormatText
	}
	return FormatJSON
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
