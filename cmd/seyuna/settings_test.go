package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestSettingsFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	settingsPath := filepath.Join(dir, ".seyuna.yaml")
	content := `
config: design/seyuna.json
verbose: true

compile:
  target-chrome: 100
  reset: true
  output-name: app.css
  include:
    - "styles/**/*.css"
`
	require.NoError(t, os.WriteFile(settingsPath, []byte(content), 0644))
	require.NoError(t, loadSettingsFromPath(settingsPath))

	assert.Equal(t, "design/seyuna.json", k.String("config"))
	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, 100, k.Int("compile.target-chrome"))
	assert.True(t, k.Bool("compile.reset"))
	assert.Equal(t, "app.css", k.String("compile.output-name"))
	assert.Equal(t, []string{"styles/**/*.css"}, k.Strings("compile.include"))
}

func TestSettingsFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	require.NoError(t, loadSettingsFromPath("/nonexistent/.seyuna.yaml"))

	opts := buildOptions(&bytes.Buffer{})
	assert.Equal(t, "seyuna.json", opts.ConfigPath)
	assert.Equal(t, 80, opts.TargetChrome)
	assert.False(t, opts.Reset)
	assert.Equal(t, "seyuna-global.css", opts.OutputName)
	assert.Empty(t, opts.Include)
	assert.NotNil(t, opts.Reporter)
}

func TestEnvVarOverridesSettingsFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	settingsPath := filepath.Join(dir, ".seyuna.yaml")
	content := `
compile:
  reset: false
  output-name: from-file.css
`
	require.NoError(t, os.WriteFile(settingsPath, []byte(content), 0644))

	t.Setenv("SEYUNA_COMPILE_RESET", "true")
	t.Setenv("SEYUNA_CONFIG", "env.json")

	require.NoError(t, loadSettingsFromPath(settingsPath))

	opts := buildOptions(&bytes.Buffer{})
	assert.True(t, opts.Reset)
	assert.Equal(t, "env.json", opts.ConfigPath)
	assert.Equal(t, "from-file.css", opts.OutputName)
}

func TestFlagsOverrideSettingsFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	settingsPath := filepath.Join(dir, ".seyuna.yaml")
	content := `
compile:
  target-chrome: 100
  output-name: from-file.css
`
	require.NoError(t, os.WriteFile(settingsPath, []byte(content), 0644))

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("settings", "", "")
	cmd.Flags().Int("target-chrome", 80, "")
	cmd.Flags().String("output-name", "seyuna-global.css", "")
	require.NoError(t, cmd.Flags().Parse([]string{"--settings", settingsPath, "--target-chrome", "120"}))

	require.NoError(t, loadSettings(cmd))

	opts := buildOptions(&bytes.Buffer{})
	assert.Equal(t, 120, opts.TargetChrome, "explicit flag wins")
	assert.Equal(t, "from-file.css", opts.OutputName, "unset flag default must not shadow the file")
}

func TestBuildOptions_ZeroTargetMeansEvergreen(t *testing.T) {
	resetKoanf()
	t.Setenv("SEYUNA_COMPILE_TARGET-CHROME", "0")
	require.NoError(t, loadSettingsFromPath("/nonexistent/.seyuna.yaml"))

	assert.Equal(t, -1, buildOptions(&bytes.Buffer{}).TargetChrome)
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}
