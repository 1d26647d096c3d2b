package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ShayCichocki/boxtools/internal/box"
)

// ErrUnknownKey is returned for keys not listed in Keys.
var ErrUnknownKey = errors.New("unknown configuration key")

// Get retrieves a configuration value by dot-notation key.
func Get(cfg *Config, key string) (string, error) {
	switch strings.ToLower(key) {
	case "box.style":
		return cfg.Box.Style, nil
	case "box.padding":
		return strconv.Itoa(cfg.Box.Padding), nil
	case "box.border_color":
		return cfg.Box.BorderColor, nil
	case "fraction.precision":
		return strconv.Itoa(cfg.Fraction.Precision), nil
	case "log.debug_file":
		return cfg.Log.DebugFile, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets a configuration value by dot-notation key. Values are validated
// the same way the commands validate their flags.
func Set(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "box.style":
		if _, err := box.ParseStyle(value); err != nil {
			return err
		}
		cfg.Box.Style = value
	case "box.padding":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for box.padding: %w", err)
		}
		if n < 0 {
			return fmt.Errorf("%w: must be non-negative, got %d", box.ErrInvalidPadding, n)
		}
		cfg.Box.Padding = n
	case "box.border_color":
		cfg.Box.BorderColor = value
	case "fraction.precision":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for fraction.precision: %w", err)
		}
		if n < 1 {
			return fmt.Errorf("invalid value for fraction.precision: must be at least 1, got %d", n)
		}
		cfg.Fraction.Precision = n
	case "log.debug_file":
		cfg.Log.DebugFile = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}
