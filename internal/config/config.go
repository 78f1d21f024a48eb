package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

const (
	dirName          = "gptube-cli"
	configFileName   = "config.json"
	settingsFileName = "settings.yaml"

	// APIKeyEnv overrides the stored API key for a single run.
	APIKeyEnv = "GPTUBE_API_KEY"
)

var (
	// ErrNotFound is returned by Load when no configuration file exists yet.
	ErrNotFound = errors.New("configuration file not found")
	// ErrMissingHome is returned when the per-user config location cannot be resolved.
	ErrMissingHome = errors.New("HOME is not set")
)

// Config is the record persisted by the interactive setup.
type Config struct {
	APIKey       string `json:"api_key"`
	SubLang      string `json:"sub_lang"`
	CustomPrompt string `json:"custom_prompt"`
	AllowWhisper string `json:"allow_whisper"`
}

// WhisperAllowed reports whether the user opted into local transcription
// when a video has no captions.
func (c *Config) WhisperAllowed() bool {
	ok, err := strconv.ParseBool(c.AllowWhisper)
	return err == nil && ok
}

// ApplyEnv lets GPTUBE_API_KEY take precedence over the stored key.
func (c *Config) ApplyEnv() {
	if key := os.Getenv(APIKeyEnv); key != "" {
		c.APIKey = key
	}
}

// Dir returns $HOME/.config/gptube-cli.
func Dir() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return "", ErrMissingHome
	}
	return filepath.Join(home, ".config", dirName), nil
}

// DefaultPath returns the location of config.json.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// DefaultSettingsPath returns the location of settings.yaml.
func DefaultSettingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFileName), nil
}

// Load reads the configuration record at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// Save creates or fully overwrites the configuration record at path.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}
