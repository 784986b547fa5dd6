package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/tagedit/internal/config/loader"
	"github.com/dshills/tagedit/internal/renderer/markup"
)

// Config holds every setting.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Log    LogConfig    `toml:"log"`
}

// EditorConfig holds the editing settings.
type EditorConfig struct {
	// TabSize is the number of cells a tab occupies.
	TabSize int `toml:"tabSize"`

	// PageLines is how far page keys and the mouse wheel move.
	PageLines int `toml:"pageLines"`

	// SelectStyle is the style tag wrapped around selected text.
	SelectStyle string `toml:"selectStyle"`

	// InsertMode starts the editor inserting rather than overwriting.
	InsertMode bool `toml:"insertMode"`
}

// LogConfig holds the logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// File receives the log. Empty discards it.
	File string `toml:"file"`
}

// Limits on editor settings.
const (
	MinTabSize = 1
	MaxTabSize = 16
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TabSize:     4,
			PageLines:   10,
			SelectStyle: "{blue-bg}",
			InsertMode:  true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Option configures loading.
type Option func(*options)

type options struct {
	fs        loader.FileSystem
	envPrefix string
	env       bool
}

// WithFileSystem reads the config file from fs.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithEnvPrefix changes the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithoutEnv ignores environment variables.
func WithoutEnv() Option {
	return func(o *options) {
		o.env = false
	}
}

// Load builds the configuration from the defaults, the TOML file at path
// (skipped when empty or missing) and the environment, then validates it.
func Load(path string, opts ...Option) (Config, error) {
	o := options{
		fs:        loader.DefaultFS(),
		envPrefix: loader.DefaultEnvPrefix,
		env:       true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	merged := make(map[string]any)
	if path != "" {
		file, err := loader.NewTOMLLoaderWithFS(o.fs, path).Load()
		if err != nil {
			return Default(), err
		}
		merged = loader.DeepMerge(merged, file)
	}
	if o.env {
		env, err := loader.NewEnvLoader(o.envPrefix).Load()
		if err != nil {
			return Default(), err
		}
		merged = loader.DeepMerge(merged, env)
	}

	cfg, err := decode(merged)
	if err != nil {
		return Default(), &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// decode lays the merged settings over the defaults.
func decode(settings map[string]any) (Config, error) {
	cfg := Default()
	if len(settings) == 0 {
		return cfg, nil
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return cfg, fmt.Errorf("encoding settings: %w", err)
	}
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error

	if c.Editor.TabSize < MinTabSize || c.Editor.TabSize > MaxTabSize {
		errs = append(errs, &ValidationError{
			Path:    "editor.tabSize",
			Message: fmt.Sprintf("must be between %d and %d", MinTabSize, MaxTabSize),
			Value:   c.Editor.TabSize,
		})
	}
	if c.Editor.PageLines < 1 {
		errs = append(errs, &ValidationError{
			Path:    "editor.pageLines",
			Message: "must be positive",
			Value:   c.Editor.PageLines,
		})
	}
	if !isOpenTag(c.Editor.SelectStyle) {
		errs = append(errs, &ValidationError{
			Path:    "editor.selectStyle",
			Message: "must be a single opening style tag such as {blue-bg}",
			Value:   c.Editor.SelectStyle,
		})
	}
	if !logLevels[c.Log.Level] {
		errs = append(errs, &ValidationError{
			Path:    "log.level",
			Message: "must be one of debug, info, warn, error",
			Value:   c.Log.Level,
		})
	}

	return errors.Join(errs...)
}

func isOpenTag(s string) bool {
	tokens := markup.Scan(s)
	return len(tokens) == 1 && tokens[0].Tag && !tokens[0].Close &&
		tokens[0].Name != "" && !tokens[0].IsEscape()
}

// DefaultPath returns the user config file path.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tagedit", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tagedit", "config.toml")
}
