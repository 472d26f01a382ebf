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
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_DefaultsWhenNoConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.Engine.LatchEquals)
	assert.Equal(t, 50, cfg.UI.TapeSize)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
[engine]
latch_equals = true

[log]
level = "debug"
output = ["file", "console"]
format = "json"

[ui]
mouse = false
tape_size = 10
theme = "light"

[watch]
enabled = false

[keys]
"enter" = ""
"p" = "+"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Engine.LatchEquals)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"file", "console"}, cfg.Log.Output)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "15:04:05.000", cfg.Log.TimeFormat, "unset keys keep defaults")
	assert.False(t, cfg.UI.Mouse)
	assert.True(t, cfg.UI.AltScreen)
	assert.Equal(t, 10, cfg.UI.TapeSize)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.False(t, cfg.Watch.Enabled)

	keys := cfg.KeyMap()
	assert.Equal(t, "+", keys["p"])
	assert.NotContains(t, keys, "enter")
	assert.Equal(t, "=", keys["="])
}

func TestLoad_UnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[ui]
colour = "red"
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.colour")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"theme", "[ui]\ntheme = \"neon\"", "ui.theme"},
		{"level", "[log]\nlevel = \"loud\"", "log.level"},
		{"output", "[log]\noutput = [\"syslog\"]", "log.output"},
		{"format", "[log]\nformat = \"xml\"", "log.format"},
		{"tape", "[ui]\ntape_size = -1", "ui.tape_size"},
		{"syntax", "[ui\n", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDefaultKeys(t *testing.T) {
	keys := DefaultKeys()
	for _, d := range []string{"0", "5", "9"} {
		assert.Equal(t, d, keys[d])
	}
	assert.Equal(t, "X", keys["*"])
	assert.Equal(t, "=", keys["enter"])
	assert.Equal(t, KeyActionQuit, keys["q"])
}

func TestDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TALLY_CONFIG_DIR", dir)

	assert.Equal(t, dir, Dir())
	assert.Equal(t, filepath.Join(dir, "init.lua"), InitFile())
	assert.Equal(t, filepath.Join(dir, "config.toml"), File())
	assert.Equal(t, filepath.Join(dir, "logs"), LogDir())
}

func TestDirXDG(t *testing.T) {
	if filepath.Separator != '/' {
		t.Skip("XDG layout only applies on Unix")
	}
	t.Setenv("TALLY_CONFIG_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/tally", Dir())
}
