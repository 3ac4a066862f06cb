package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultTabWidth = 4
	DefaultLogLevel = "info"
	MaxTabWidth     = 16
)

// Config is the complete editor configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	History HistoryConfig `toml:"history"`
	Theme   ThemeConfig   `toml:"theme"`
	Log     LogConfig     `toml:"log"`
}

// EditorConfig holds document settings.
type EditorConfig struct {
	// TabWidth is the number of columns a tab occupies.
	TabWidth int `toml:"tab_width"`
	// InitialText is the document content at startup, recorded as the
	// oldest history entry.
	InitialText string `toml:"initial_text"`
}

// HistoryConfig holds undo/redo settings.
type HistoryConfig struct {
	// MaxEntries caps the undo stack; 0 keeps every state.
	MaxEntries int `toml:"max_entries"`
	// Dedup skips recording a state equal to the current one.
	Dedup bool `toml:"dedup"`
}

// ThemeConfig holds colors as names ("darkgray") or hex ("#404040").
type ThemeConfig struct {
	Background       string `toml:"background"`
	Foreground       string `toml:"foreground"`
	Cursor           string `toml:"cursor"`
	StatusBackground string `toml:"status_background"`
	StatusForeground string `toml:"status_foreground"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// File receives log output; empty discards logs so the terminal stays clean.
	File string `toml:"file"`
}

// Default returns the built-in configuration: an unbounded history and
// a dark theme.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth: DefaultTabWidth,
		},
		Theme: ThemeConfig{
			Background:       "darkgray",
			Foreground:       "lightgray",
			Cursor:           "white",
			StatusBackground: "black",
			StatusForeground: "lightgray",
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads configuration from path.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil // File doesn't exist, not an error
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return Parse(path, data)
}

// Parse decodes TOML data over the defaults and validates the result.
// source names the data in error messages.
func Parse(source string, data []byte) (*Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, newParseError(source, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newParseError(source string, err error) *ParseError {
	pe := &ParseError{
		Path:    source,
		Message: err.Error(),
		Err:     err,
	}

	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		pe.Line, pe.Column = derr.Position()
	}

	var serr *toml.StrictMissingError
	if errors.As(err, &serr) {
		pe.Message = "unknown setting: " + serr.String()
	}
	return pe
}

// Validate checks that every setting holds a usable value.
func (c *Config) Validate() error {
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > MaxTabWidth {
		return &ValidationError{
			Path:    "editor.tab_width",
			Message: fmt.Sprintf("must be between 1 and %d", MaxTabWidth),
			Value:   c.Editor.TabWidth,
		}
	}

	if c.History.MaxEntries < 0 {
		return &ValidationError{
			Path:    "history.max_entries",
			Message: "must not be negative",
			Value:   c.History.MaxEntries,
		}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{
			Path:    "log.level",
			Message: "must be debug, info, warn, or error",
			Value:   c.Log.Level,
		}
	}

	return nil
}

// WriteDefault writes the default configuration to path, creating parent
// directories. An existing file is never overwritten.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	data, err := toml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
