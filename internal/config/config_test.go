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
	path := filepath.Join(t.TempDir(), "calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "name: desk\nlog_level: debug\nlog_format: json\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Name: "desk", LogLevel: "debug", LogFormat: "json"}, cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "name: desk\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "desk", cfg.Name)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "name: desk\nlog_level: debug\n")
	t.Setenv("CALC_NAME", "pocket")
	t.Setenv("CALC_LOG_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "pocket", cfg.Name)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	t.Setenv("CALC_LOG_LEVEL", "loud")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "loud", cfg.LogLevel)
	assert.Error(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "name: [unterminated\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "loud"
	assert.ErrorContains(t, cfg.Validate(), `unknown log level "loud"`)

	cfg = Default()
	cfg.LogFormat = "xml"
	assert.ErrorContains(t, cfg.Validate(), `unknown log format "xml"`)
}
