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
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.Fzf)
	assert.True(t, cfg.UseRunFunctions)
	assert.Equal(t, "cyan", cfg.Colors.FocusBg)
	assert.Equal(t, []string{"j"}, cfg.KeysFor("down"))
	assert.Equal(t, []string{"l", "enter"}, cfg.KeysFor("select"))
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
fzf = "OFF"
use_runfunctions = false

[colors]
focus_bg = "Magenta"

[keys]
down = ["j", "down"]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "off", cfg.Fzf)
	assert.False(t, cfg.UseRunFunctions)
	assert.True(t, cfg.UseCleanFunctions)
	assert.Equal(t, "magenta", cfg.Colors.FocusBg)
	assert.Equal(t, "black", cfg.Colors.FocusFg)
	assert.Equal(t, []string{"j", "down"}, cfg.KeysFor("down"))
	// Unmentioned actions keep their defaults.
	assert.Equal(t, []string{"k"}, cfg.KeysFor("up"))
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "fzf = [broken\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OF_TUI_FZF", "off")
	t.Setenv("OF_TUI_USE_RUNFUNCTIONS", "no")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, "off", cfg.Fzf)
	assert.False(t, cfg.UseRunFunctions)
}

func TestPathHonorsEnv(t *testing.T) {
	t.Setenv("OF_TUI_CONFIG", "/tmp/custom.toml")
	assert.Equal(t, "/tmp/custom.toml", Path())
}

func TestFzfOffNeverProbes(t *testing.T) {
	cfg := Default()
	cfg.Fzf = "off"
	assert.False(t, cfg.FzfEnabled())
}

func TestNoFoamRequested(t *testing.T) {
	t.Setenv("OF_TUI_NO_FOAM", "")
	assert.False(t, NoFoamRequested())
	t.Setenv("OF_TUI_NO_FOAM", "1")
	assert.True(t, NoFoamRequested())
	t.Setenv("OF_TUI_NO_FOAM", "false")
	assert.False(t, NoFoamRequested())
}
