// Package config provides configuration management for wallfilter
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"git.asdf.cafe/abs3nt/wallfilter/constants"
	"git.asdf.cafe/abs3nt/wallfilter/errors"
	"git.asdf.cafe/abs3nt/wallfilter/filter"
	"git.asdf.cafe/abs3nt/wallfilter/validator"
)

// Config holds application configuration
type Config struct {
	// Rule selection; nil overrides keep the preset value
	Preset            string
	MinWidth          *int
	MinHeight         *int
	AspectRatioMin    *float64
	AspectRatioMax    *float64
	PortraitThreshold *float64
	AllowExplicit     *bool

	// Harness settings
	ScenarioFile string
	NoColor      bool

	// Application settings
	LogLevel string
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	return &Config{
		Preset:   constants.DefaultPreset,
		LogLevel: constants.LogLevelInfo,
	}
}

// LoadEnvFile loads variables from a .env file into the process
// environment without overriding values that are already set. A missing
// file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = constants.EnvFile
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: loading %s: %v", errors.ErrInvalidConfig, path, err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validatePreset,
		c.validateLogLevel,
		c.validateRule,
		c.validatePaths,
	}

	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) validatePreset() error {
	return validator.NewValidator().ValidatePreset(c.Preset)
}

func (c *Config) validateLogLevel() error {
	return validator.NewValidator().ValidateLogLevel(c.LogLevel)
}

func (c *Config) validateRule() error {
	rule, err := c.Rule()
	if err != nil {
		return err
	}
	return validator.NewValidator().ValidateRule(rule)
}

func (c *Config) validatePaths() error {
	if c.ScenarioFile != "" {
		if _, err := os.Stat(c.ScenarioFile); os.IsNotExist(err) {
			return errors.NewValidationError("scenarios", c.ScenarioFile, "file does not exist")
		}
	}
	return nil
}

// Rule resolves the preset and applies any overrides
func (c *Config) Rule() (filter.Rule, error) {
	rule, err := filter.Preset(c.Preset)
	if err != nil {
		return filter.Rule{}, err
	}

	if c.MinWidth != nil {
		rule.MinWidth = *c.MinWidth
	}
	if c.MinHeight != nil {
		rule.MinHeight = *c.MinHeight
	}
	if c.AspectRatioMin != nil {
		rule.AspectRatioMin = *c.AspectRatioMin
	}
	if c.AspectRatioMax != nil {
		rule.AspectRatioMax = *c.AspectRatioMax
	}
	if c.PortraitThreshold != nil {
		rule.PortraitThreshold = *c.PortraitThreshold
	}
	if c.AllowExplicit != nil {
		rule.AllowExplicit = *c.AllowExplicit
	}

	return rule, nil
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case constants.LogLevelDebug:
		return slog.LevelDebug
	case constants.LogLevelWarn:
		return slog.LevelWarn
	case constants.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
