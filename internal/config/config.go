package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dshills/barcode/internal/config/loader"
	"github.com/dshills/barcode/internal/renderer/core"
)

// Config holds every editor setting.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	UI      UIConfig      `toml:"ui"`
	Logging LoggingConfig `toml:"logging"`
	Plugins PluginsConfig `toml:"plugins"`
}

// EditorConfig holds editing and loop settings.
type EditorConfig struct {
	// ScrollMargin is the number of lines kept between the primary cursor
	// and the window edge.
	ScrollMargin int `toml:"scrollMargin"`

	// PollInterval is the input poll timeout in milliseconds.
	PollInterval int `toml:"pollInterval"`
}

// UIConfig holds display settings. Colors are "#RRGGBB" or "#RGB".
type UIConfig struct {
	CursorGlyph          string `toml:"cursorGlyph"`
	GutterWidth          int    `toml:"gutterWidth"`
	MessageSeconds       int    `toml:"messageSeconds"`
	PrimaryCursorColor   string `toml:"primaryCursorColor"`
	SecondaryCursorColor string `toml:"secondaryCursorColor"`
	CurrentLineColor     string `toml:"currentLineColor"`
}

// LoggingConfig holds log settings. An empty File disables logging.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// PluginsConfig holds scripting settings.
type PluginsConfig struct {
	InitScript string `toml:"initScript"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			ScrollMargin: 4,
			PollInterval: 500,
		},
		UI: UIConfig{
			CursorGlyph:          "│",
			GutterWidth:          6,
			MessageSeconds:       3,
			PrimaryCursorColor:   "#808080",
			SecondaryCursorColor: "#0000FF",
			CurrentLineColor:     "#C0A000",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// PollTimeout returns the input poll timeout.
func (c Config) PollTimeout() time.Duration {
	return time.Duration(c.Editor.PollInterval) * time.Millisecond
}

// MessageDuration returns how long transient messages stay visible.
func (c Config) MessageDuration() time.Duration {
	return time.Duration(c.UI.MessageSeconds) * time.Second
}

// Glyph returns the cursor marker rune.
func (c Config) Glyph() rune {
	for _, r := range c.UI.CursorGlyph {
		return r
	}
	return 0
}

// Color parses one of the UI color settings. Invalid values yield the
// default color; Validate reports them.
func Color(hex string) core.Color {
	col, err := core.ColorFromHex(hex)
	if err != nil {
		return core.ColorDefault
	}
	return col
}

var logLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

// Validate checks every setting and returns all problems joined.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, path, msg string, value any, code ValidationErrorCode) {
		if !ok {
			errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value, Code: code})
		}
	}

	check(c.Editor.ScrollMargin >= 0, "editor.scrollMargin",
		"must not be negative", c.Editor.ScrollMargin, ErrCodeOutOfRange)
	check(c.Editor.PollInterval >= 10 && c.Editor.PollInterval <= 60000, "editor.pollInterval",
		"must be between 10 and 60000 milliseconds", c.Editor.PollInterval, ErrCodeOutOfRange)

	glyph := []rune(c.UI.CursorGlyph)
	check(len(glyph) == 1 && core.RuneWidth(glyph[0]) == 1, "ui.cursorGlyph",
		"must be a single one-column character", c.UI.CursorGlyph, ErrCodePatternMismatch)
	check(c.UI.GutterWidth >= 1 && c.UI.GutterWidth <= 12, "ui.gutterWidth",
		"must be between 1 and 12", c.UI.GutterWidth, ErrCodeOutOfRange)
	check(c.UI.MessageSeconds >= 1, "ui.messageSeconds",
		"must be at least 1", c.UI.MessageSeconds, ErrCodeOutOfRange)

	colors := []struct {
		path, value string
	}{
		{"ui.primaryCursorColor", c.UI.PrimaryCursorColor},
		{"ui.secondaryCursorColor", c.UI.SecondaryCursorColor},
		{"ui.currentLineColor", c.UI.CurrentLineColor},
	}
	for _, col := range colors {
		_, err := core.ColorFromHex(col.value)
		check(err == nil, col.path, "must be a hex color", col.value, ErrCodePatternMismatch)
	}

	check(logLevels[strings.ToLower(c.Logging.Level)], "logging.level",
		"must be one of debug, info, warn, error", c.Logging.Level, ErrCodeInvalidEnum)

	return errors.Join(errs...)
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "barcode", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "barcode", "config.toml")
}

// Loader builds a Config from defaults, a TOML file and the environment.
type Loader struct {
	file *loader.TOMLLoader
	env  loader.Loader
}

// Option configures a Loader.
type Option func(*loaderOptions)

type loaderOptions struct {
	fs        loader.FileSystem
	path      string
	envPrefix string
	noEnv     bool
}

// WithPath sets the config file. Without it DefaultPath is used.
func WithPath(path string) Option {
	return func(o *loaderOptions) { o.path = path }
}

// WithFileSystem sets the file system the config file is read from.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(o *loaderOptions) { o.fs = fsys }
}

// WithoutEnv disables environment overrides.
func WithoutEnv() Option {
	return func(o *loaderOptions) { o.noEnv = true }
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	o := loaderOptions{
		fs:        loader.DefaultFS(),
		envPrefix: loader.DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.path == "" {
		o.path = DefaultPath()
	}

	l := &Loader{file: loader.NewTOMLLoaderWithFS(o.fs, o.path)}
	if !o.noEnv {
		env := loader.NewEnvLoader(o.envPrefix)
		if types, err := loader.Encode(Default()); err == nil {
			env.SetTypes(types)
		}
		l.env = env
	}
	return l
}

// Path returns the config file path.
func (l *Loader) Path() string {
	return l.file.Path()
}

// Load merges all layers and validates the result. A missing file is not
// an error.
func (l *Loader) Load() (Config, error) {
	merged, err := loader.Encode(Default())
	if err != nil {
		return Config{}, err
	}

	fileData, err := l.file.Load()
	if err != nil {
		return Config{}, err
	}
	merged = loader.DeepMerge(merged, fileData)

	if l.env != nil {
		envData, err := l.env.Load()
		if err != nil {
			return Config{}, fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, envData)
	}

	var cfg Config
	if err := loader.Decode(merged, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
