// Package config loads papiext settings from defaults, an optional config
// file and PAPIEXT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	papiext "github.com/contriboss/papi-extension-go"
)

const (
	// ConfigFileName is the config file base name, without extension.
	ConfigFileName = "papiext"
	// EnvPrefix prefixes environment overrides, e.g. PAPIEXT_LIBRARY.
	EnvPrefix = "PAPIEXT"

	// RuntimeSearchPathsAuto defers to the platform capability.
	RuntimeSearchPathsAuto = "auto"
)

// Config holds the resolved settings.
type Config struct {
	Library            string   `mapstructure:"library" json:"library"`
	Extension          string   `mapstructure:"extension" json:"extension"`
	Sources            []string `mapstructure:"sources" json:"sources"`
	RootEnv            string   `mapstructure:"root_env" json:"root_env"`
	SearchPathEnv      string   `mapstructure:"search_path_env" json:"search_path_env"`
	PkgConfig          string   `mapstructure:"pkg_config" json:"pkg_config"`
	StrictMatch        bool     `mapstructure:"strict_match" json:"strict_match"`
	RuntimeSearchPaths string   `mapstructure:"runtime_search_paths" json:"runtime_search_paths"`
	LogLevel           string   `mapstructure:"log_level" json:"log_level"`
}

// DefaultConfig returns the settings for the PAPI binding.
func DefaultConfig() *Config {
	return &Config{
		Library:            papiext.DefaultLibrary,
		Extension:          papiext.DefaultExtensionName,
		Sources:            []string{papiext.DefaultSource},
		RootEnv:            papiext.DefaultRootEnvVar,
		SearchPathEnv:      papiext.DefaultSearchPathEnvVar,
		PkgConfig:          "",
		StrictMatch:        false,
		RuntimeSearchPaths: RuntimeSearchPathsAuto,
		LogLevel:           "warn",
	}
}

// LoadOptions controls where Load looks for a config file.
type LoadOptions struct {
	// ConfigFile is an explicit config file. It must exist. "~" is expanded.
	ConfigFile string

	// SearchDirs are searched for papiext.{yaml,toml,json} when ConfigFile is
	// empty. Nil means the working directory and ~/.config/papiext.
	SearchDirs []string
}

// Load resolves the configuration and returns it along with the config file
// used ("" when none was found).
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("library", defaults.Library)
	v.SetDefault("extension", defaults.Extension)
	v.SetDefault("sources", defaults.Sources)
	v.SetDefault("root_env", defaults.RootEnv)
	v.SetDefault("search_path_env", defaults.SearchPathEnv)
	v.SetDefault("pkg_config", defaults.PkgConfig)
	v.SetDefault("strict_match", defaults.StrictMatch)
	v.SetDefault("runtime_search_paths", defaults.RuntimeSearchPaths)
	v.SetDefault("log_level", defaults.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		path, err := homedir.Expand(opts.ConfigFile)
		if err != nil {
			return nil, "", fmt.Errorf("expand config path %s: %w", opts.ConfigFile, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		dirs := opts.SearchDirs
		if dirs == nil {
			dirs = defaultSearchDirs()
		}
		v.SetConfigName(ConfigFileName)
		for _, dir := range dirs {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, "", fmt.Errorf("read config: %w", err)
			}
			// No config file; defaults and environment only.
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, v.ConfigFileUsed(), nil
}

func defaultSearchDirs() []string {
	dirs := []string{"."}
	if home, err := homedir.Dir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", ConfigFileName))
	}
	return dirs
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Library == "" {
		return errors.New("library must not be empty")
	}
	if _, err := parseRuntimeSearchPaths(c.RuntimeSearchPaths); err != nil {
		return err
	}
	return nil
}

// RuntimeSearchPathsEnabled resolves runtime_search_paths for goos. "auto"
// (or empty) defers to the platform capability.
func (c *Config) RuntimeSearchPathsEnabled(goos string) (bool, error) {
	explicit, err := parseRuntimeSearchPaths(c.RuntimeSearchPaths)
	if err != nil {
		return false, err
	}
	if explicit == nil {
		return papiext.PlatformSupportsRuntimeSearchPaths(goos), nil
	}
	return *explicit, nil
}

func parseRuntimeSearchPaths(value string) (*bool, error) {
	if value == "" || strings.EqualFold(value, RuntimeSearchPathsAuto) {
		return nil, nil
	}
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("runtime_search_paths must be auto, true or false, got %q", value)
	}
	return &enabled, nil
}

// NewExtension builds the descriptor named by the config.
func (c *Config) NewExtension() *papiext.Extension {
	return papiext.NewExtension(c.Extension, c.Sources, c.Library)
}
