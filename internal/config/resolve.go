// File: internal/config/resolve.go
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"scriptkit/internal/flags"
)

// EnvPrefix scopes the environment variables that can supply optional settings
const EnvPrefix = "SCRIPTKIT"

// Creates an isolated viper instance with defaults and environment bindings for
// the optional settings. Precedence is flag, environment, config file, default.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType(ConfigType)
	v.SetEnvPrefix(EnvPrefix)

	v.SetDefault(flags.Debug, DefaultDebug)
	v.SetDefault(flags.LogFile, "")

	// BindEnv only errors when called without a key
	_ = v.BindEnv(flags.Debug)
	_ = v.BindEnv(flags.LogFile)

	return v
}

// Binds each named flag in fs to the viper key of the same name
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		f := fs.Lookup(name)
		if f == nil {
			return fmt.Errorf("flag %q is not defined", name)
		}
		if err := v.BindPFlag(name, f); err != nil {
			return fmt.Errorf("error binding flag %q: %w", name, err)
		}
	}
	return nil
}

// Reads the YAML config file into v. An explicit path must exist; without one
// only DefaultPath is tried and a missing file is not an error.
func ReadConfigFile(v *viper.Viper, path string) error {
	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil
		}
		path = defaultPath
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !explicit && (errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Decodes the settings held by v into Arguments. Unknown keys, such as a typo
// in the config file, are rejected.
func Resolve(v *viper.Viper) (Arguments, error) {
	var args Arguments
	err := v.Unmarshal(&args, func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = true
	})
	if err != nil {
		return Arguments{}, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	return args, nil
}

// Returns the optional settings as they would be resolved for a run
func Effective(v *viper.Viper) FileConfig {
	return FileConfig{
		Debug:   v.GetString(flags.Debug),
		LogFile: v.GetString(flags.LogFile),
	}
}
