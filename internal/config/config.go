// Package config handles configuration loading and management for boxtools.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	appName           = "boxtools"
	projectConfigName = ".boxtools.yaml"
	envPrefix         = "BOXTOOLS"
)

// Config holds all configuration for the box and tf commands.
type Config struct {
	Box      BoxConfig      `mapstructure:"box" yaml:"box"`
	Fraction FractionConfig `mapstructure:"fraction" yaml:"fraction"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// BoxConfig holds defaults for the box renderer.
type BoxConfig struct {
	Style       string `mapstructure:"style" yaml:"style"`
	Padding     int    `mapstructure:"padding" yaml:"padding"`
	BorderColor string `mapstructure:"border_color" yaml:"border_color"`
}

// FractionConfig holds defaults for the time fraction calculator.
type FractionConfig struct {
	Precision int `mapstructure:"precision" yaml:"precision"`
}

// LogConfig holds debug logging settings.
type LogConfig struct {
	DebugFile string `mapstructure:"debug_file" yaml:"debug_file"`
}

// Keys lists every configuration key in dot notation.
var Keys = []string{
	"box.style",
	"box.padding",
	"box.border_color",
	"fraction.precision",
	"log.debug_file",
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (BOXTOOLS_BOX_STYLE, BOXTOOLS_FRACTION_PRECISION, ...)
// 2. Project config (.boxtools.yaml in current directory or parent)
// 3. User config (~/.config/boxtools/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading project config %s: %w", projectConfig, err)
		}
		if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := newViper()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	return unmarshal(v)
}

// Save writes the configuration to the user config file.
func Save(cfg *Config) error {
	userConfigDir := getUserConfigDir()
	if err := os.MkdirAll(userConfigDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(GetUserConfigPath())

	v.Set("box.style", cfg.Box.Style)
	v.Set("box.padding", cfg.Box.Padding)
	v.Set("box.border_color", cfg.Box.BorderColor)
	v.Set("fraction.precision", cfg.Fraction.Precision)
	v.Set("log.debug_file", cfg.Log.DebugFile)

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Box: BoxConfig{
			Style:   "simple",
			Padding: 2,
		},
		Fraction: FractionConfig{
			Precision: 6,
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Log.DebugFile = os.ExpandEnv(cfg.Log.DebugFile)
	return cfg, nil
}

// setDefaults configures default values. AutomaticEnv only resolves keys
// viper already knows about, so every key needs a default here.
func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("box.style", d.Box.Style)
	v.SetDefault("box.padding", d.Box.Padding)
	v.SetDefault("box.border_color", d.Box.BorderColor)

	v.SetDefault("fraction.precision", d.Fraction.Precision)

	v.SetDefault("log.debug_file", d.Log.DebugFile)
}

// getUserConfigDir returns the XDG config directory for boxtools.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, appName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", appName)
	}
	return filepath.Join(home, ".config", appName)
}

// findProjectConfig searches for .boxtools.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, projectConfigName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}
