package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, SessionDriverMemory, cfg.Session.Driver)
	assert.Equal(t, 120, cfg.Session.TTLMinutes)
	assert.Equal(t, 300, cfg.Search.DebounceMs)
	assert.Equal(t, "https://vpic.nhtsa.dot.gov/api/vehicles", cfg.VehicleCatalog.URL)
	assert.Equal(t, "https://apis.datos.gob.ar/georef/api", cfg.Georef.URL)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_ReadsFileAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[session]
driver = "Postgres"
offline_mode = true

[database]
password = "from-file"

[mailer]
api_key = "from-file"
quote_template_id = "d-quote"

[search]
debounce_ms = 450
`)
	t.Setenv("SENDGRID_API_KEY", "from-env")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, SessionDriverPostgres, cfg.Session.Driver)
	assert.True(t, cfg.Session.OfflineMode)
	assert.Equal(t, "from-env", cfg.Mailer.APIKey)
	assert.Equal(t, "d-quote", cfg.Mailer.QuoteTemplateID)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, 450, cfg.Search.DebounceMs)
	assert.Contains(t, cfg.Database.DSN(), "password=secret")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown driver", content: "[session]\ndriver = \"redis\"\n"},
		{name: "debounce too short", content: "[search]\ndebounce_ms = 100\n"},
		{name: "port out of range", content: "[server]\nhttp_port = 70000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nhttp_port = "))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}
