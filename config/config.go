package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the contents of config.toml.
type Config struct {
	Engine EngineConfig      `toml:"engine"`
	Log    LogConfig         `toml:"log"`
	UI     UIConfig          `toml:"ui"`
	Watch  WatchConfig       `toml:"watch"`
	Keys   map[string]string `toml:"keys"` // overrides on top of DefaultKeys
}

// EngineConfig tunes calculator behaviour.
type EngineConfig struct {
	// LatchEquals makes a second "=" do nothing instead of re-applying the
	// last operator with a zero operand.
	LatchEquals bool `toml:"latch_equals"`
}

// LogConfig controls the arbor logger.
type LogConfig struct {
	Level      string   `toml:"level"`
	Output     []string `toml:"output"` // "file", "console"
	Format     string   `toml:"format"` // "text" or "json"
	TimeFormat string   `toml:"time_format"`
	File       string   `toml:"file"` // defaults to <LogDir>/tally.log
}

// UIConfig controls the terminal front end.
type UIConfig struct {
	AltScreen bool   `toml:"alt_screen"`
	Mouse     bool   `toml:"mouse"`
	TapeSize  int    `toml:"tape_size"`
	Theme     string `toml:"theme"`
}

// WatchConfig controls reloading scripts when the config directory changes.
type WatchConfig struct {
	Enabled bool `toml:"enabled"`
}

var (
	validLevels  = []string{"trace", "debug", "info", "warn", "error"}
	validThemes  = []string{"dark", "light"}
	validOutputs = []string{"file", "console"}
)

// Actions a key can be mapped to besides calculator key labels.
const (
	KeyActionQuit   = "quit"
	KeyActionReload = "reload"
	KeyActionYank   = "yank"
)

// DefaultKeys maps key strings (as Bubble Tea names them) to calculator key
// labels or actions.
func DefaultKeys() map[string]string {
	keys := map[string]string{
		"+":      "+",
		"-":      "-",
		"*":      "X",
		"x":      "X",
		"X":      "X",
		"/":      "/",
		"=":      "=",
		"enter":  "=",
		".":      ".",
		"q":      KeyActionQuit,
		"ctrl+r": KeyActionReload,
		"y":      KeyActionYank,
	}
	for d := '0'; d <= '9'; d++ {
		keys[string(d)] = string(d)
	}
	return keys
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			Output:     []string{"file"},
			Format:     "text",
			TimeFormat: "15:04:05.000",
		},
		UI: UIConfig{
			AltScreen: true,
			Mouse:     true,
			TapeSize:  50,
			Theme:     "dark",
		},
		Watch: WatchConfig{
			Enabled: true,
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		names := make([]string, len(undecoded))
		for i, k := range undecoded {
			names[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(names, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	if !slices.Contains(validLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level %q: want one of %s", c.Log.Level, strings.Join(validLevels, ", "))
	}
	for _, out := range c.Log.Output {
		if !slices.Contains(validOutputs, out) {
			return fmt.Errorf("log.output %q: want file or console", out)
		}
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format %q: want text or json", c.Log.Format)
	}
	if !slices.Contains(validThemes, c.UI.Theme) {
		return fmt.Errorf("ui.theme %q: want dark or light", c.UI.Theme)
	}
	if c.UI.TapeSize < 0 {
		return fmt.Errorf("ui.tape_size %d: must not be negative", c.UI.TapeSize)
	}
	return nil
}

// KeyMap returns DefaultKeys with the configured overrides applied.
// Mapping a key to "" removes it.
func (c *Config) KeyMap() map[string]string {
	keys := DefaultKeys()
	for k, v := range c.Keys {
		if v == "" {
			delete(keys, k)
			continue
		}
		keys[k] = v
	}
	return keys
}
