package server

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/podforge/podforge/pkg/prompts"
	"github.com/podforge/podforge/pkg/tts"
)

// Config is the server configuration. Zero values are filled in by Default;
// Load layers a TOML file on top.
type Config struct {
	// Address to listen on (e.g., ":8080")
	ListenAddr string `toml:"listen"`

	// Environment is "development" or "production". Production suppresses
	// error details in responses.
	Environment string `toml:"environment"`

	// DefaultLanguage for dialogue generation when a request omits one.
	DefaultLanguage string `toml:"default_language"`

	// MaxUploadMB caps the size of file uploads.
	MaxUploadMB int `toml:"max_upload_mb"`

	LLM LLMConfig `toml:"llm"`
	TTS TTSConfig `toml:"tts"`
}

// LLMConfig points at the Ollama-compatible chat endpoint.
type LLMConfig struct {
	Endpoint    string  `toml:"endpoint"`
	Model       string  `toml:"model"`
	Temperature float64 `toml:"temperature"`
}

// TTSConfig points at the speech engine. The API key is read from the
// environment variable named by APIKeyEnv, never from the file itself.
type TTSConfig struct {
	BaseURL   string `toml:"base_url"`
	ModelID   string `toml:"model_id"`
	APIKeyEnv string `toml:"api_key_env"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		ListenAddr:      ":8080",
		Environment:     "development",
		DefaultLanguage: string(prompts.DefaultLanguage),
		MaxUploadMB:     20,
		LLM: LLMConfig{
			Endpoint:    "http://localhost:11434",
			Model:       "qwen3:8b",
			Temperature: 0.7,
		},
		TTS: TTSConfig{
			BaseURL:   tts.DefaultBaseURL,
			ModelID:   tts.DefaultModelID,
			APIKeyEnv: "ELEVENLABS_API_KEY",
		},
	}
}

// Load reads a TOML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if c.LLM.Endpoint == "" {
		return fmt.Errorf("llm endpoint must not be empty")
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("max_upload_mb must be positive, got %d", c.MaxUploadMB)
	}
	return nil
}

// APIKey resolves the speech engine API key from the environment.
func (c TTSConfig) APIKey() string {
	if c.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.APIKeyEnv)
}

func (c Config) production() bool {
	return c.Environment == "production"
}
