// Package config loads rovekit's demo configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds demo application configuration.
type Config struct {
	UI UIConfig
}

// UIConfig holds presentation and input settings.
type UIConfig struct {
	VimKeys   bool   // add h/j/k/l and g/G to the navigation bindings
	Mouse     bool   // enable click activation
	Accent    string // ANSI color for titles and selection markers
	Highlight string // ANSI color for the focused row
}

// Load reads configuration from file and env. Env var overrides use prefix
// ROVEKIT_, e.g. ROVEKIT_UI_VIM_KEYS=true.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.vim_keys", false)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.accent", "86")
	v.SetDefault("ui.highlight", "205")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("ROVEKIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "rovekit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ROVEKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing config file is fine; the defaults stand. Anything else (a
	// malformed file, unreadable path) is reported.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return Config{
		UI: UIConfig{
			VimKeys:   v.GetBool("ui.vim_keys"),
			Mouse:     v.GetBool("ui.mouse"),
			Accent:    v.GetString("ui.accent"),
			Highlight: v.GetString("ui.highlight"),
		},
	}, nil
}
