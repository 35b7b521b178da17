// Package config loads canvasedit settings from TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"canvasedit/internal/logger"
	"canvasedit/pkg/richdoc"
)

var ErrInvalidColor = errors.New("config: invalid color")

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config          `toml:"logger"`
	Editor EditorConfig           `toml:"editor"`
	Styles map[string]StyleConfig `toml:"styles"`
}

type EditorConfig struct {
	Width           float64 `toml:"width"`
	HistoryLimit    int     `toml:"history_limit"`
	SystemClipboard bool    `toml:"system_clipboard"`
}

// StyleConfig is a [styles.<Name>] table. Colors are "#rrggbb" or
// "#rrggbbaa"; an empty string leaves the color unset.
type StyleConfig struct {
	Bold       bool    `toml:"bold"`
	Italic     bool    `toml:"italic"`
	FontSize   float64 `toml:"font_size"`
	LineHeight float64 `toml:"line_height"`
	TextColor  string  `toml:"text_color"`
	Highlight  string  `toml:"highlight"`
	Underline  string  `toml:"underline"`
}

func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			Width:           DefaultWidth,
			HistoryLimit:    DefaultHistoryLimit,
			SystemClipboard: SystemClipboard,
		},
	}
}

// DefaultPath is the config file location under the user config dir, or ""
// when that dir is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Debugf("Config file not found: %s", path)
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("error checking config file '%s': %w", path, err)
	}

	metadata, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return NewDefaultConfig(), fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", path, undecoded)
	}
	cfg.validate()
	if _, err := cfg.Presets(); err != nil {
		return NewDefaultConfig(), fmt.Errorf("config file '%s': %w", path, err)
	}
	logger.Infof("Loaded configuration from: %s", path)
	return cfg, nil
}

// validate resets out-of-range values to their defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()
	if c.Editor.Width <= 0 {
		c.Editor.Width = defaults.Editor.Width
	}
	if c.Editor.HistoryLimit < 0 {
		c.Editor.HistoryLimit = defaults.Editor.HistoryLimit
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Presets merges the configured styles over the built-in presets.
func (c *Config) Presets() (richdoc.Presets, error) {
	names := make([]string, 0, len(c.Styles))
	for name := range c.Styles {
		names = append(names, name)
	}
	sort.Strings(names)

	overrides := make(map[string]richdoc.Style, len(names))
	for _, name := range names {
		s, err := c.Styles[name].Style()
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", name, err)
		}
		overrides[name] = s
	}
	return richdoc.DefaultPresets().With(overrides), nil
}

// Style converts the table into a document style. Zero sizes fall back to
// the document defaults.
func (s StyleConfig) Style() (richdoc.Style, error) {
	out := richdoc.Style{
		Bold:       s.Bold,
		Italic:     s.Italic,
		FontSize:   s.FontSize,
		LineHeight: s.LineHeight,
	}
	var err error
	if out.TextColor, err = ParseColor(s.TextColor); err != nil {
		return richdoc.Style{}, err
	}
	if out.Highlight, err = ParseColor(s.Highlight); err != nil {
		return richdoc.Style{}, err
	}
	if out.Underline, err = ParseColor(s.Underline); err != nil {
		return richdoc.Style{}, err
	}
	out = out.Normalize()
	if err := out.Validate(); err != nil {
		return richdoc.Style{}, err
	}
	return out, nil
}

// ParseColor packs "#rrggbb" or "#rrggbbaa" into 0xRRGGBBAA. The empty
// string is 0.
func ParseColor(hex string) (uint32, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return 0, nil
	}
	alpha := uint64(0xFF)
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		alpha, hex = a, hex[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidColor, hex, err)
	}
	r, g, b := c.RGB255()
	return richdoc.PackRGBA(uint32(r), uint32(g), uint32(b), uint32(alpha)), nil
}
