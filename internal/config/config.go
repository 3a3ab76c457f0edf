// Package config resolves runtime settings. Values come from flags, then
// WASEARCH_* environment variables, then an optional config file; the result
// is an explicit value handed to the app, never package state. In particular
// the timezone is interpreted at query time only — nothing derived from it
// is ever written into a store.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultTimezone matches the zone the original chat logs were read in.
const DefaultTimezone = "America/Chicago"

type Config struct {
	Timezone    string
	OpenBrowser bool
}

// Load resolves the configuration. tzFlag, when set, wins over everything;
// noOpen forces the browser launch off.
func Load(tzFlag string, noOpen bool) Config {
	v := viper.New()
	v.SetDefault("timezone", DefaultTimezone)
	v.SetDefault("open_browser", true)

	v.SetEnvPrefix("wasearch")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir())
	// Silently ignore a missing config file.
	_ = v.ReadInConfig()

	cfg := Config{
		Timezone:    v.GetString("timezone"),
		OpenBrowser: v.GetBool("open_browser"),
	}
	if strings.TrimSpace(tzFlag) != "" {
		cfg.Timezone = tzFlag
	}
	if noOpen {
		cfg.OpenBrowser = false
	}
	return cfg
}

// Location resolves the configured zone against the timezone database.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func configDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "wasearch")
}
