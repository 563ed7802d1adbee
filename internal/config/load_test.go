package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktrackhq/tasktrack/internal/config"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		check   func(t *testing.T, cfg *config.Config)
		wantErr string
	}{
		{
			name: "defaults_with_database_url",
			env: map[string]string{
				"TASKTRACK_DATABASE_URL": "postgres://localhost:5432/tasktrack",
			},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "info", cfg.Server.LogLevel)
				assert.Equal(t, "postgres", cfg.Database.Driver)
			},
		},
		{
			name: "env_overrides",
			env: map[string]string{
				"TASKTRACK_SERVER_PORT":      "9090",
				"TASKTRACK_SERVER_LOG_LEVEL": "debug",
				"TASKTRACK_DATABASE_DRIVER":  "sqlite",
				"TASKTRACK_DATABASE_URL":     "./data/tasks.db",
			},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, "debug", cfg.Server.LogLevel)
				assert.Equal(t, "sqlite", cfg.Database.Driver)
				assert.Equal(t, "./data/tasks.db", cfg.Database.URL)
			},
		},
		{
			name:    "missing_database_url",
			env:     map[string]string{},
			wantErr: "invalid configuration",
		},
		{
			name: "invalid_log_level",
			env: map[string]string{
				"TASKTRACK_DATABASE_URL":     "postgres://localhost:5432/tasktrack",
				"TASKTRACK_SERVER_LOG_LEVEL": "trace",
			},
			wantErr: "invalid configuration",
		},
		{
			name: "invalid_driver",
			env: map[string]string{
				"TASKTRACK_DATABASE_URL":    "tasks.db",
				"TASKTRACK_DATABASE_DRIVER": "mysql",
			},
			wantErr: "invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load()

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
