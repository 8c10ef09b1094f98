// Package config loads cluewright configuration from defaults, the global
// and local config files, and environment variables, in ascending priority.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds all cluewright settings.
type Configuration struct {
	APIKey       string   `koanf:"api_key"`
	Model        string   `koanf:"model" validate:"required"`
	BaseURL      string   `koanf:"base_url" validate:"required,url"`
	LLMTimeout   int      `koanf:"llm_timeout" validate:"min=1,max=600"` // seconds
	Temperature  float64  `koanf:"temperature" validate:"min=0,max=1"`
	DictPaths    []string `koanf:"dict_paths"`
	ShowProgress bool     `koanf:"show_progress"`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"model":       "gpt-4o-mini",
		"base_url":    "https://api.openai.com/v1",
		"llm_timeout": 30,
		"temperature": 0.5,
		"dict_paths": []string{
			"/usr/share/dict/british-english",
			"/usr/share/dict/american-english",
			"/usr/share/dict/words",
		},
		"show_progress": true,
	}
}

// Load loads configuration from global, local, and environment sources.
// Priority: environment variables > local config > global config > defaults.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	// Global config if it exists
	if homeDir, err := os.UserHomeDir(); err == nil {
		globalPath := filepath.Join(homeDir, ".cluewright", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Environment variables (highest priority)
	k.Load(env.Provider("CLUEWRIGHT_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	for i, p := range cfg.DictPaths {
		cfg.DictPaths[i] = expandHomePath(p)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: CLUEWRIGHT_API_KEY -> api_key
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "CLUEWRIGHT_"))
}

// expandHomePath expands ~ to the user's home directory.
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
