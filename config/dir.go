package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the tally configuration directory.
// TALLY_CONFIG_DIR wins; otherwise XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	if dir := os.Getenv("TALLY_CONFIG_DIR"); dir != "" {
		return dir
	}

	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "tally")
}

// InitFile returns the path to init.lua
func InitFile() string {
	return filepath.Join(Dir(), "init.lua")
}

// File returns the path to config.toml
func File() string {
	return filepath.Join(Dir(), "config.toml")
}

// LogDir returns the directory log files are written to.
func LogDir() string {
	return filepath.Join(Dir(), "logs")
}
