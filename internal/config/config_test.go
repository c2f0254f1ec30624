package config_test

import (
	"os"
	"path/filepath"
	"taskBoard/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults тестирует значения по умолчанию без файла
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.False(t, cfg.Server.Tracing)
	assert.Empty(t, cfg.Preferences.Path)
	assert.False(t, cfg.Seed.Demo)
	assert.True(t, cfg.Worker.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Worker.AgendaInterval)
	assert.Equal(t, ":8080", cfg.GetServerAddr())
}

// TestLoad_File тестирует чтение явного файла
func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yml")
	content := `
server:
  host: "127.0.0.1"
  port: "9090"
  rate_limit: 0
logging:
  development: true
preferences:
  path: "/tmp/prefs.yml"
  default_dark_mode: true
seed:
  demo: true
worker:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddr())
	assert.Equal(t, 0, cfg.Server.RateLimit)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, "/tmp/prefs.yml", cfg.Preferences.Path)
	assert.True(t, cfg.Preferences.DefaultDarkMode)
	assert.True(t, cfg.Seed.Demo)
	assert.False(t, cfg.Worker.Enabled)
}

// TestLoad_MissingExplicitFile тестирует ошибку для несуществующего пути
func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

// TestLoad_Env тестирует переопределение через переменные окружения
func TestLoad_Env(t *testing.T) {
	t.Setenv("TASKBOARD_SERVER_PORT", "7070")
	t.Setenv("TASKBOARD_SEED_DEMO", "true")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.True(t, cfg.Seed.Demo)
}

// TestValidate тестирует проверку конфигурации
func TestValidate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{
			Server: config.ServerConfig{Port: "8080", RateLimit: 10},
			Worker: config.WorkerConfig{Enabled: true, AgendaInterval: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"valid", func(*config.Config) {}, false},
		{"empty port", func(c *config.Config) { c.Server.Port = "" }, true},
		{"negative rate limit", func(c *config.Config) { c.Server.RateLimit = -1 }, true},
		{"zero interval", func(c *config.Config) { c.Worker.AgendaInterval = 0 }, true},
		{"zero interval with disabled worker", func(c *config.Config) {
			c.Worker.Enabled = false
			c.Worker.AgendaInterval = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
