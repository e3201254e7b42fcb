package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("defaults to JSON at info level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))

		log.Debug("hidden")
		log.Info("shown")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "shown", entry["msg"])
	})

	t.Run("text format emits key=value pairs", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatText),
			logger.WithLevel(slog.LevelDebug),
		)

		log.Debug("msg", logger.Component("form"))
		assert.Contains(t, buf.String(), "component=form")
	})

	t.Run("static attrs appear on every record", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(slog.String("service", "formkit")),
		)

		log.Info("msg")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "formkit", entry["service"])
	})

	t.Run("SetAsDefault routes the default slog logger", func(t *testing.T) {
		prev := slog.Default()
		t.Cleanup(func() { slog.SetDefault(prev) })

		buf := &bytes.Buffer{}
		logger.SetAsDefault(logger.New(logger.WithOutput(buf)))

		slog.Info("routed")
		assert.Contains(t, buf.String(), "routed")
	})

	t.Run("invalid format panics at construction", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat(logger.Format("xml")))
		})
	})
}

func TestEnvironmentPresets(t *testing.T) {
	t.Run("development preset uses text and debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithDevelopment("svc"),
			logger.WithOutput(buf),
		)

		log.Debug("msg")
		output := buf.String()
		assert.Contains(t, output, "DEBUG")
		assert.Contains(t, output, "service=svc")
		assert.Contains(t, output, "env=development")
	})

	t.Run("production preset uses JSON and info", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithProduction("svc"),
			logger.WithOutput(buf),
		)

		log.Debug("hidden")
		log.Info("msg")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "svc", entry["service"])
		assert.Equal(t, "production", entry["env"])
	})
}

func TestAttrs(t *testing.T) {
	t.Run("Error is empty for nil", func(t *testing.T) {
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})

	t.Run("FieldName uses the field key", func(t *testing.T) {
		attr := logger.FieldName("email")
		assert.Equal(t, "field", attr.Key)
		assert.Equal(t, "email", attr.Value.String())
	})
}
