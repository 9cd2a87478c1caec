package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// defaultListen is the address the serve command binds when neither the
// config file nor the --listen flag sets one.
const defaultListen = "127.0.0.1:8470"

// Config holds the optional settings read from the user's config file.
// Flags override file values; the zero value of each field means "use the
// default".
type Config struct {
	// Listen is the address for the serve command, e.g. "127.0.0.1:8470".
	Listen string `toml:"listen"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`

	// Pretty indents JSON written by the import command.
	Pretty bool `toml:"pretty"`
}

// configPath returns the config file location using the XDG convention
// (~/.config/drafter/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file at path. A missing file is not an
// error: it yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := Config{Listen: defaultListen, LogLevel: "info"}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if cfg.Listen == "" {
		cfg.Listen = defaultListen
	}
	return cfg, nil
}

// loadUserConfig loads the config from the standard location, falling
// back to defaults when no home directory is available.
func loadUserConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{Listen: defaultListen, LogLevel: "info"}, nil
	}
	return loadConfig(path)
}

// level parses the configured log level, defaulting to info.
func (c Config) level() log.Level {
	switch c.LogLevel {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
