// Package config loads the user's TOML configuration and applies
// environment overrides. The result is passed explicitly into the UI;
// there is no process-wide config state.
package config

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the user-tunable knobs. Key bindings map an action name
// to the keys that trigger it.
type Config struct {
	Fzf               string              `toml:"fzf"`
	UseRunFunctions   bool                `toml:"use_runfunctions"`
	UseCleanFunctions bool                `toml:"use_cleanfunctions"`
	Colors            Colors              `toml:"colors"`
	Keys              map[string][]string `toml:"keys"`
}

// Colors styles the focused row.
type Colors struct {
	FocusFg string `toml:"focus_fg"`
	FocusBg string `toml:"focus_bg"`
}

// Default returns the built-in configuration: vi-style movement keys
// and fzf autodetection.
func Default() *Config {
	return &Config{
		Fzf:               "auto",
		UseRunFunctions:   true,
		UseCleanFunctions: true,
		Colors:            Colors{FocusFg: "black", FocusBg: "cyan"},
		Keys: map[string][]string{
			"up":      {"k"},
			"down":    {"j"},
			"select":  {"l", "enter"},
			"back":    {"h", "q"},
			"help":    {"?"},
			"command": {":"},
			"search":  {"/"},
			"top":     {"g"},
			"bottom":  {"G"},
		},
	}
}

// Path returns the config file location, honoring OF_TUI_CONFIG.
func Path() string {
	if override := os.Getenv("OF_TUI_CONFIG"); override != "" {
		return override
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "of-tui", "config.toml")
}

// Load reads the config file at path (the default location when path
// is empty), merges it over the defaults and applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = Path()
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("OF_TUI_FZF"); v != "" {
		c.Fzf = v
	}
	if v := os.Getenv("OF_TUI_USE_RUNFUNCTIONS"); v != "" {
		c.UseRunFunctions = envBool(v, c.UseRunFunctions)
	}
	if v := os.Getenv("OF_TUI_USE_CLEANFUNCTIONS"); v != "" {
		c.UseCleanFunctions = envBool(v, c.UseCleanFunctions)
	}
}

func (c *Config) normalize() {
	c.Fzf = strings.ToLower(strings.TrimSpace(c.Fzf))
	c.Colors.FocusFg = strings.ToLower(strings.TrimSpace(c.Colors.FocusFg))
	c.Colors.FocusBg = strings.ToLower(strings.TrimSpace(c.Colors.FocusBg))

	defaults := Default().Keys
	if c.Keys == nil {
		c.Keys = defaults
		return
	}
	for action, keys := range defaults {
		if len(c.Keys[action]) == 0 {
			c.Keys[action] = keys
		}
	}
}

// FzfEnabled reports whether fzf-assisted selection should be offered:
// never when configured "off", otherwise only when the binary exists.
func (c *Config) FzfEnabled() bool {
	if c.Fzf == "off" {
		return false
	}
	_, err := exec.LookPath("fzf")
	return err == nil
}

// KeysFor returns the bindings for one action name.
func (c *Config) KeysFor(action string) []string {
	return c.Keys[action]
}

func envBool(value string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}

// NoFoamRequested reports whether the session was forced into no-foam
// mode via the environment.
func NoFoamRequested() bool {
	return envBool(os.Getenv("OF_TUI_NO_FOAM"), false)
}
