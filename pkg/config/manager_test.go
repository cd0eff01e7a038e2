package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetString_NotFound(t *testing.T) {
	manager := NewManager()

	_, err := manager.GetString("CONTEXTPACK_TEST_MISSING_KEY")
	assert.Error(t, err)
}

func TestGetStringWithDefault(t *testing.T) {
	manager := NewManager()

	t.Setenv("CONTEXTPACK_TEST_KEY", "value")
	assert.Equal(t, "value", manager.GetStringWithDefault("CONTEXTPACK_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", manager.GetStringWithDefault("CONTEXTPACK_TEST_OTHER", "fallback"))
}

func TestGetIntWithDefault(t *testing.T) {
	manager := NewManager()

	t.Setenv("CONTEXTPACK_TEST_INT", "123")
	assert.Equal(t, 123, manager.GetIntWithDefault("CONTEXTPACK_TEST_INT", 7))

	t.Setenv("CONTEXTPACK_TEST_INT", "not-a-number")
	assert.Equal(t, 7, manager.GetIntWithDefault("CONTEXTPACK_TEST_INT", 7))
}

func TestGetBoolWithDefault(t *testing.T) {
	manager := NewManager()

	t.Setenv("CONTEXTPACK_TEST_BOOL", "true")
	assert.True(t, manager.GetBoolWithDefault("CONTEXTPACK_TEST_BOOL", false))

	t.Setenv("CONTEXTPACK_TEST_BOOL", "maybe")
	assert.False(t, manager.GetBoolWithDefault("CONTEXTPACK_TEST_BOOL", false))
}

func TestGetBudgetDefaults(t *testing.T) {
	manager := NewManager()

	t.Setenv("CONTEXTPACK_MAX_TOKENS", "")
	t.Setenv("CONTEXTPACK_OVERHEAD", "")
	defaults := manager.GetBudgetDefaults()
	assert.Equal(t, 4000, defaults.MaxTokens)
	assert.Equal(t, 50, defaults.Overhead)

	t.Setenv("CONTEXTPACK_MAX_TOKENS", "8000")
	t.Setenv("CONTEXTPACK_OVERHEAD", "100")
	defaults = manager.GetBudgetDefaults()
	assert.Equal(t, 8000, defaults.MaxTokens)
	assert.Equal(t, 100, defaults.Overhead)
}

func TestGetModelConfig_Defaults(t *testing.T) {
	manager := NewManager()

	t.Setenv("CONTEXTPACK_ENCODING", "")
	t.Setenv("CONTEXTPACK_TEMPERATURE", "")
	cfg := manager.GetModelConfig()
	assert.Equal(t, "cl100k_base", cfg.Encoding)
	assert.Equal(t, float32(0.7), cfg.Temperature)
	assert.Equal(t, int32(1024), cfg.MaxOutputTokens)
}

func TestLoadSettingsFrom_MissingFileUsesDefaults(t *testing.T) {
	settings, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "naive", settings.Strategy)
	assert.Equal(t, 4000, settings.MaxTokens)
	assert.Equal(t, 50, settings.Overhead)
	require.NotNil(t, settings.IncludeTitles)
	assert.True(t, *settings.IncludeTitles)
}

func TestLoadSettingsFrom_ReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "strategy: sandwich\nmax_tokens: 2000\noverhead: 80\ninclude_titles: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := LoadSettingsFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "sandwich", settings.Strategy)
	assert.Equal(t, 2000, settings.MaxTokens)
	assert.Equal(t, 80, settings.Overhead)
	require.NotNil(t, settings.IncludeTitles)
	assert.False(t, *settings.IncludeTitles)
}

func TestLoadSettingsFrom_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy: [unclosed"), 0644))

	_, err := LoadSettingsFrom(path)
	assert.Error(t, err)
}

func TestSettingsPath_EnvOverride(t *testing.T) {
	t.Setenv("CONTEXTPACK_SETTINGS", "/tmp/custom-settings.yaml")

	path, err := SettingsPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom-settings.yaml", path)
}
