package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tasktrackhq/tasktrack/internal/config"
	"github.com/tasktrackhq/tasktrack/internal/platform/logger"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		debugOn  bool
	}{
		{name: "debug_level", logLevel: "debug", debugOn: true},
		{name: "info_level", logLevel: "info", debugOn: false},
		{name: "warn_level", logLevel: "warn", debugOn: false},
		{name: "case_insensitive", logLevel: "INFO", debugOn: false},
		{name: "invalid_falls_back_to_info", logLevel: "verbose", debugOn: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := logger.Setup(config.ServerConfig{Port: 8080, LogLevel: tt.logLevel})

			assert.NotNil(t, log)
			assert.Equal(t, tt.debugOn, log.Enabled(context.Background(), slog.LevelDebug))
			// Setup installs the logger globally
			assert.Equal(t, log, slog.Default())
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Run("returns_stored_logger", func(t *testing.T) {
		stored := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
		ctx := logger.WithContext(context.Background(), stored)

		assert.Equal(t, stored, logger.FromContext(ctx))
	})

	t.Run("falls_back_to_default", func(t *testing.T) {
		assert.Equal(t, slog.Default(), logger.FromContext(context.Background()))
	})
}

func TestFromContextOrDefault(t *testing.T) {
	stored := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
	def := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))

	t.Run("prefers_context_logger", func(t *testing.T) {
		ctx := logger.WithContext(context.Background(), stored)
		assert.Equal(t, stored, logger.FromContextOrDefault(ctx, def))
	})

	t.Run("uses_provided_default", func(t *testing.T) {
		assert.Equal(t, def, logger.FromContextOrDefault(context.Background(), def))
	})

	t.Run("nil_default_uses_global", func(t *testing.T) {
		assert.Equal(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))
	})
}
