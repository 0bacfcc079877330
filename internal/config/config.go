// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	ConfigFileName = "config.yaml"
	ConfigDirName  = "scriptkit"
	ConfigType     = "yaml"

	// DefaultDebug is the console threshold when nothing else sets one
	DefaultDebug = "ERROR"
)

// ErrConfigExists is returned when writing would replace an existing config file
var ErrConfigExists = errors.New("config file already exists")

// FileConfig is the on-disk YAML config. Only optional settings live here;
// the input and output paths always come from the command line.
type FileConfig struct {
	Debug   string `yaml:"debug" mapstructure:"debug"`
	LogFile string `yaml:"log_file,omitempty" mapstructure:"log_file"`
}

func Defaults() FileConfig {
	return FileConfig{Debug: DefaultDebug}
}

// Returns the config directory under the user's home, without creating it
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", ConfigDirName), nil
}

func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

func (c FileConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("error encoding config: %w", err)
	}
	return data, nil
}

// Writes cfg as YAML to path, creating parent directories. Unless overwrite
// is set, an existing file is left alone and ErrConfigExists is returned.
func WriteFile(path string, cfg FileConfig, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
