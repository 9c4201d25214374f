package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "https://api.openai.com/v1", cfg.BaseURL)
	assert.Equal(t, "left", cfg.PlacementMode)
	assert.Equal(t, 40.0, cfg.PlacementOffset)
	assert.Equal(t, 0.0, cfg.MinX)
	assert.Equal(t, 40.0, cfg.MinY)
	assert.False(t, cfg.Verbose)
}

func TestLoad_LocalFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"model": "gpt-4o",
		"placement_mode": "below",
		"placement_offset": 80,
		"min_y": 0
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, "below", cfg.PlacementMode)
	assert.Equal(t, 80.0, cfg.PlacementOffset)
	assert.Equal(t, 0.0, cfg.MinY)
	// Untouched keys keep their defaults.
	assert.Equal(t, "https://api.openai.com/v1", cfg.BaseURL)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"model": "from-file"}`), 0o644))

	t.Setenv("CANVASMITH_MODEL", "from-env")
	t.Setenv("CANVASMITH_PLACEMENT_MODE", "center")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Model)
	assert.Equal(t, "center", cfg.PlacementMode)
}

func TestLoad_MissingLocalFileIsIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
}

func TestLoad_ValidationRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "invalid placement mode",
			content: `{"placement_mode": "diagonal"}`,
		},
		{
			name:    "negative offset",
			content: `{"placement_offset": -10}`,
		},
		{
			name:    "base url not a url",
			content: `{"base_url": "not a url"}`,
		},
		{
			name:    "empty model",
			content: `{"model": ""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			assert.ErrorContains(t, err, "config validation failed")
		})
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to load local config")
}
