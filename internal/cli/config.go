package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user defaults loaded from the TOML config file at
// ~/.config/eegpos/config.toml (or $XDG_CONFIG_HOME/eegpos/config.toml).
// Flags always override config values; config values override built-in
// defaults.
//
// Example file:
//
//	density = "10-10"
//	equator = "Fpz-T8-Oz-T7"
//	precision = 6
type Config struct {
	Density   string `toml:"density"`
	Equator   string `toml:"equator"`
	Precision int    `toml:"precision"`
}

// configFile is the config file name inside the config directory.
const configFile = "config.toml"

// LoadConfig reads the user config file. A missing or unreadable file
// yields a zero Config; a malformed file is ignored the same way so a
// broken config never blocks the CLI.
func LoadConfig() Config {
	dir, err := configDir()
	if err != nil {
		return Config{}
	}
	return loadConfigFile(filepath.Join(dir, configFile))
}

func loadConfigFile(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// fallback returns value if set, otherwise the config default.
func fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
