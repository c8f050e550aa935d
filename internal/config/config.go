// Package config provides configuration types and defaults for hew.
package config

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/hew/internal/log"
)

// Config holds all configuration options for hew.
type Config struct {
	ShowLineNumbers bool        `mapstructure:"show_line_numbers" yaml:"show_line_numbers"`
	QuitTimes       int         `mapstructure:"quit_times" yaml:"quit_times"`
	WatchFile       bool        `mapstructure:"watch_file" yaml:"watch_file"`
	Debug           bool        `mapstructure:"debug" yaml:"debug"`
	LogFile         string      `mapstructure:"log_file" yaml:"log_file"`
	Theme           ThemeConfig `mapstructure:"theme" yaml:"theme"`
}

// ThemeConfig holds colour overrides. Values are lipgloss colours:
// ANSI numbers ("240") or hex ("#FF0000"). Empty keeps the built-in style.
type ThemeConfig struct {
	Gutter   string `mapstructure:"gutter" yaml:"gutter"`
	Tilde    string `mapstructure:"tilde" yaml:"tilde"`
	StatusFg string `mapstructure:"status_fg" yaml:"status_fg"`
	StatusBg string `mapstructure:"status_bg" yaml:"status_bg"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		ShowLineNumbers: false,
		QuitTimes:       2,
		WatchFile:       true,
		LogFile:         "debug.log",
	}
}

// Validate reports the first invalid option.
func (c Config) Validate() error {
	if c.QuitTimes < 1 {
		return fmt.Errorf("quit_times must be at least 1, got %d", c.QuitTimes)
	}
	for name, v := range map[string]string{
		"gutter":    c.Theme.Gutter,
		"tilde":     c.Theme.Tilde,
		"status_fg": c.Theme.StatusFg,
		"status_bg": c.Theme.StatusBg,
	} {
		if !validColor(v) {
			return fmt.Errorf("theme.%s: invalid colour %q", name, v)
		}
	}
	return nil
}

func validColor(v string) bool {
	if v == "" {
		return true
	}
	if v[0] == '#' {
		if len(v) != 4 && len(v) != 7 {
			return false
		}
		for _, r := range v[1:] {
			if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F') {
				return false
			}
		}
		return true
	}
	n := 0
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
		n = n*10 + int(r-'0')
		if n > 255 {
			return false
		}
	}
	return true
}

const configHeader = `# hew configuration
#
# theme colours accept ANSI numbers ("240") or hex ("#FF0000").
`

// DefaultConfigYAML renders Defaults() as a commented YAML document.
func DefaultConfigYAML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Defaults()); err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	_ = enc.Close()
	return buf.Bytes(), nil
}

// WriteDefaultConfig creates a config file at the given path with default settings.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(fs afero.Fs, configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	data, err := DefaultConfigYAML()
	if err != nil {
		return err
	}

	dir := filepath.Dir(configPath)
	if err := fs.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := afero.WriteFile(fs, configPath, data, 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
