// Package config provides configuration loading and management for tbtui.
package config

import (
	"errors"
	"os"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	tberrors "github.com/Fjolfrin/tbtui/internal/errors"
)

const (
	// DefaultConfigFile is read from the working directory when present.
	DefaultConfigFile = ".tbtui.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "TBTUI"
)

// Loader handles loading configuration from files, environment and flags.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader with defaults registered,
// so that every key can also be set through the environment.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := NewConfig()
	v.SetDefault("path", d.Path)
	v.SetDefault("suffix", d.Suffix)
	v.SetDefault("epoch_column", d.EpochColumn)
	v.SetDefault("max_ticks", d.MaxTicks)
	v.SetDefault("theme", string(d.Theme))
	v.SetDefault("log.level", string(d.Log.Level))
	v.SetDefault("log.dir", d.Log.Dir)
	v.SetDefault("log.max_files", d.Log.MaxFiles)
	v.SetDefault("log.max_age", d.Log.MaxAge)
	v.SetDefault("log.json", d.Log.JSON)

	return &Loader{v: v}
}

// BindFlags binds config keys to command-line flags. Only flags the user
// actually set take precedence over file and environment values.
func (l *Loader) BindFlags(flags *pflag.FlagSet, keys map[string]string) error {
	for key, flagName := range keys {
		f := flags.Lookup(flagName)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// LoadConfig loads configuration from path, merges environment variables
// and bound flags, and validates the result.
// An empty path reads DefaultConfigFile if it exists and defaults otherwise;
// an explicit path that does not exist is an error.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	if _, err := os.Stat(path); err == nil {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, tberrors.ConfigParseError(path, err)
		}
	} else if explicit {
		return nil, tberrors.ConfigNotFound(path).WithCause(err)
	}

	cfg := NewConfig()
	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, tberrors.ConfigParseError(path, err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, validationFailure(err)
	}

	return cfg, nil
}

// ConfigFileUsed returns the config file read by the last LoadConfig call.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func validationFailure(err error) error {
	var verrs ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return tberrors.Wrap(err, tberrors.ErrConfig, "configuration validation failed")
	}
	first := verrs[0]
	return tberrors.ConfigValidationError(first.Field, err.Error(), first.Options)
}

// viperDecodeHook composes the standard mapstructure hooks with our custom ones.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToCustomTypeHookFunc(),
	)
}

// stringToCustomTypeHookFunc normalizes our string enums (case, whitespace).
func stringToCustomTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		s := strings.ToLower(strings.TrimSpace(data.(string)))
		switch to {
		case reflect.TypeOf(ThemeName("")):
			return ThemeName(s), nil
		case reflect.TypeOf(LogLevel("")):
			if s == "warning" {
				s = string(LogLevelWarn)
			}
			return LogLevel(s), nil
		}

		return data, nil
	}
}

// Load is a convenience function that creates a new Loader and loads configuration.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}
