package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Settings is the optional on-disk configuration for the CLI.
// Environment variables always win over file values.
type Settings struct {
	Strategy        string `yaml:"strategy"`
	MaxTokens       int    `yaml:"max_tokens"`
	Overhead        int    `yaml:"overhead"`
	Encoding        string `yaml:"encoding"`
	IncludeTitles   *bool  `yaml:"include_titles"`
	Separator       string `yaml:"separator"`
	EmbeddingModel  string `yaml:"embedding_model"`
	GenerationModel string `yaml:"generation_model"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	includeTitles := true
	return Settings{
		Strategy:      "naive",
		MaxTokens:     4000,
		Overhead:      50,
		Encoding:      "cl100k_base",
		IncludeTitles: &includeTitles,
	}
}

// SettingsPath resolves the settings file location: $CONTEXTPACK_SETTINGS if set,
// otherwise ~/.contextpack/settings.yaml.
func SettingsPath() (string, error) {
	if path := os.Getenv("CONTEXTPACK_SETTINGS"); path != "" {
		return path, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".contextpack", "settings.yaml"), nil
}

// LoadSettings reads settings from the resolved path, falling back to defaults
// when the file does not exist. A malformed file is an error, not a silent default.
func LoadSettings() (Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return Settings{}, err
	}
	return LoadSettingsFrom(path)
}

// LoadSettingsFrom reads settings from an explicit path.
func LoadSettingsFrom(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
	}

	return settings, nil
}
