package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.API, cfg.API)
	assert.Equal(t, FilterModeFuzzy, cfg.UI.FilterMode)
	assert.Equal(t, "INFO", cfg.Logging.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `api:
  base_url: http://localhost:8080/api
  timeout: 5s
ui:
  filter_mode: substring
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "Holonet/1.0", cfg.API.UserAgent, "unset keys keep defaults")
	assert.Equal(t, FilterModeSubstring, cfg.UI.FilterMode)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("HOLONET_API_BASE_URL", "https://swapi.example/api")
	t.Setenv("HOLONET_API_TIMEOUT", "12s")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "https://swapi.example/api", cfg.API.BaseURL)
	assert.Equal(t, 12*time.Second, cfg.API.Timeout)
}

func TestLoadConfigRejectsUnknownFilterMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  filter_mode: telepathic\n"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telepathic")
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [unclosed\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.API.BaseURL = "http://127.0.0.1:9000/api"
	cfg.API.Timeout = 7 * time.Second
	cfg.UI.FilterMode = FilterModeLoose
	cfg.UI.ShowDetails = false

	written, err := SaveConfig(cfg, path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.API, loaded.API)
	assert.Equal(t, cfg.UI, loaded.UI)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UI.FilterMode = ""
	require.NoError(t, cfg.Validate())
	assert.Equal(t, FilterModeFuzzy, cfg.UI.FilterMode)

	cfg.API.BaseURL = "  "
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.API.Timeout = -time.Second
	assert.Error(t, cfg.Validate())
}
