// Package config provides configuration data structures for tbtui.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config represents the complete tbtui configuration. Values come from
// defaults, an optional YAML file, TBTUI_* environment variables and
// command-line flags, in increasing order of precedence.
type Config struct {
	// Path is the root directory searched for history files.
	Path string `mapstructure:"path" yaml:"path" json:"path"`
	// Suffix is the file name suffix that marks a history file.
	Suffix string `mapstructure:"suffix" yaml:"suffix" json:"suffix"`
	// EpochColumn is the integer index column present in every history file.
	EpochColumn string `mapstructure:"epoch_column" yaml:"epoch_column" json:"epoch_column"`
	// MaxTicks bounds the x-axis tick subsampling (step = n / MaxTicks).
	MaxTicks int `mapstructure:"max_ticks" yaml:"max_ticks" json:"max_ticks"`
	// Theme is the initial UI theme.
	Theme ThemeName `mapstructure:"theme" yaml:"theme" json:"theme"`
	// Log configures file logging.
	Log LogConfig `mapstructure:"log" yaml:"log" json:"log"`
}

// ThemeName names a UI color theme.
type ThemeName string

const (
	// ThemeDark is the default theme for dark terminals.
	ThemeDark ThemeName = "dark"
	// ThemeLight is tuned for light terminal backgrounds.
	ThemeLight ThemeName = "light"
)

// ThemeNames lists the valid theme names in cycling order.
var ThemeNames = []ThemeName{ThemeDark, ThemeLight}

// LogLevel names a minimum log severity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogConfig configures file logging.
type LogConfig struct {
	// Level is the minimum level written (default: info).
	Level LogLevel `mapstructure:"level" yaml:"level" json:"level"`
	// Dir is the log directory. Empty means the user cache directory.
	Dir string `mapstructure:"dir" yaml:"dir" json:"dir"`
	// MaxFiles is the number of log files kept (default: 10).
	MaxFiles int `mapstructure:"max_files" yaml:"max_files" json:"max_files"`
	// MaxAge is the age after which log files are removed (default: 7 days).
	MaxAge time.Duration `mapstructure:"max_age" yaml:"max_age" json:"max_age"`
	// JSON switches the log format from text to JSON.
	JSON bool `mapstructure:"json" yaml:"json" json:"json"`
}

// Default values.
const (
	DefaultPath        = "."
	DefaultSuffix      = "_history.csv"
	DefaultEpochColumn = "epoch"
	DefaultMaxTicks    = 20
	DefaultTheme       = ThemeDark
	DefaultLogLevel    = LogLevelInfo
	DefaultLogMaxFiles = 10
	DefaultLogMaxAge   = 7 * 24 * time.Hour
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Path:        DefaultPath,
		Suffix:      DefaultSuffix,
		EpochColumn: DefaultEpochColumn,
		MaxTicks:    DefaultMaxTicks,
		Theme:       DefaultTheme,
		Log: LogConfig{
			Level:    DefaultLogLevel,
			MaxFiles: DefaultLogMaxFiles,
			MaxAge:   DefaultLogMaxAge,
		},
	}
}

// ApplyDefaults fills in any unset fields.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if c.Path == "" {
		c.Path = defaults.Path
	}
	if c.Suffix == "" {
		c.Suffix = defaults.Suffix
	}
	if c.EpochColumn == "" {
		c.EpochColumn = defaults.EpochColumn
	}
	if c.MaxTicks == 0 {
		c.MaxTicks = defaults.MaxTicks
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.MaxFiles == 0 {
		c.Log.MaxFiles = defaults.Log.MaxFiles
	}
	if c.Log.MaxAge == 0 {
		c.Log.MaxAge = defaults.Log.MaxAge
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
	// Options lists the accepted values, when the field is an enum.
	Options []string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if strings.TrimSpace(c.Suffix) == "" {
		errs = append(errs, &ValidationError{Field: "suffix", Message: "must not be empty"})
	}
	if strings.TrimSpace(c.EpochColumn) == "" {
		errs = append(errs, &ValidationError{Field: "epoch_column", Message: "must not be empty"})
	}
	if c.MaxTicks < 1 {
		errs = append(errs, &ValidationError{Field: "max_ticks", Message: "must be at least 1"})
	}

	if !c.Theme.Valid() {
		errs = append(errs, &ValidationError{
			Field:   "theme",
			Message: fmt.Sprintf("unknown theme %q", c.Theme),
			Options: themeOptions(),
		})
	}

	switch c.Log.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		// valid
	default:
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("unknown log level %q", c.Log.Level),
			Options: []string{"debug", "info", "warn", "error"},
		})
	}
	if c.Log.MaxFiles < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_files", Message: "must be non-negative"})
	}
	if c.Log.MaxAge < 0 {
		errs = append(errs, &ValidationError{Field: "log.max_age", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Valid reports whether t names a known theme.
func (t ThemeName) Valid() bool {
	for _, name := range ThemeNames {
		if t == name {
			return true
		}
	}
	return false
}

// Next returns the theme after t in ThemeNames, wrapping around.
func (t ThemeName) Next() ThemeName {
	for i, name := range ThemeNames {
		if t == name {
			return ThemeNames[(i+1)%len(ThemeNames)]
		}
	}
	return ThemeNames[0]
}

func themeOptions() []string {
	opts := make([]string, len(ThemeNames))
	for i, name := range ThemeNames {
		opts[i] = string(name)
	}
	return opts
}
