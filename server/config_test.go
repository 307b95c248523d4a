package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.validate())
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 20, cfg.MaxUploadMB)
	assert.False(t, cfg.production())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen = ":9090"
environment = "production"
default_language = "korean"

[llm]
endpoint = "http://ollama.internal:11434"
model = "llama3.2"

[tts]
api_key_env = "MY_TTS_KEY"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.True(t, cfg.production())
	assert.Equal(t, "korean", cfg.DefaultLanguage)
	assert.Equal(t, "http://ollama.internal:11434", cfg.LLM.Endpoint)
	assert.Equal(t, "llama3.2", cfg.LLM.Model)
	assert.Equal(t, "MY_TTS_KEY", cfg.TTS.APIKeyEnv)

	// Untouched keys keep their defaults.
	assert.Equal(t, 20, cfg.MaxUploadMB)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.001)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`max_upload_mb = -1`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestAPIKeyFromEnvironment(t *testing.T) {
	t.Setenv("PODFORGE_CONFIG_TEST_KEY", "secret")
	cfg := TTSConfig{APIKeyEnv: "PODFORGE_CONFIG_TEST_KEY"}
	assert.Equal(t, "secret", cfg.APIKey())

	assert.Empty(t, TTSConfig{}.APIKey())
}
