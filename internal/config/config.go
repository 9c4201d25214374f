// Package config loads the canvasmith CLI configuration from global and local
// JSON files plus CANVASMITH_-prefixed environment variables, with struct
// validation applied after merging.
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

// Configuration holds the CLI tool configuration.
type Configuration struct {
	Model           string  `koanf:"model" validate:"required"`
	BaseURL         string  `koanf:"base_url" validate:"required,url"`
	APIKey          string  `koanf:"api_key"`
	PlacementMode   string  `koanf:"placement_mode" validate:"oneof=left right above below center"`
	PlacementOffset float64 `koanf:"placement_offset" validate:"min=0"`
	MinX            float64 `koanf:"min_x"`
	MinY            float64 `koanf:"min_y"`
	ViewportX       float64 `koanf:"viewport_x"`
	ViewportY       float64 `koanf:"viewport_y"`
	Verbose         bool    `koanf:"verbose"`
}

// Load merges configuration sources in priority order: environment variables
// over local config over global config over defaults.
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		globalPath := filepath.Join(homeDir, ".canvasmith", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	k.Load(env.Provider("CANVASMITH_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: CANVASMITH_PLACEMENT_OFFSET -> placement_offset
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "CANVASMITH_"))
}
