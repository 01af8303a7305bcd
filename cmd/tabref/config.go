package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/Hanaasagi/tabref/internal"
	"github.com/Hanaasagi/tabref/pkg/deluxetable"
)

type Config struct {
	Core      CoreConfig      `toml:"core"`
	Footnote  FootnoteConfig  `toml:"footnote"`
	Clipboard ClipboardConfig `toml:"clipboard"`
}

type CoreConfig struct {
	Suffix      string   `toml:"suffix"`
	Macros      []string `toml:"macros"`
	NumericSort bool     `toml:"numeric_sort"`
	LogLevel    string   `toml:"log_level"`
}

type FootnoteConfig struct {
	Macro string `toml:"macro"` // e.g. "citet" renders (1) \citet{key}
}

type ClipboardConfig struct {
	Tmux   bool `toml:"tmux"`
	System bool `toml:"system"`
	OSC52  bool `toml:"osc52"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Core: CoreConfig{
			Suffix:      internal.DefaultSuffix,
			Macros:      deluxetable.DefaultMacros(),
			NumericSort: false,
			LogLevel:    "info",
		},
		Footnote: FootnoteConfig{
			Macro: "",
		},
		Clipboard: ClipboardConfig{
			Tmux:   true,
			System: true,
			OSC52:  true,
		},
	}
}

func LoadConfigFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil // no config file, return defaults
	}

	meta, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode TOML config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config keys in %s: %v", path, undecoded)
	}

	return config, nil
}
