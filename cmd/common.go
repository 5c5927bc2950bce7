package cmd

import (
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"git.asdf.cafe/abs3nt/wallfilter/config"
	"git.asdf.cafe/abs3nt/wallfilter/constants"
	"git.asdf.cafe/abs3nt/wallfilter/interfaces"
	"git.asdf.cafe/abs3nt/wallfilter/validator"
)

// base carries what every handler needs
type base struct {
	validator interfaces.Validator
	logger    *slog.Logger
	level     *slog.LevelVar
	out       io.Writer
}

func newBase(logger *slog.Logger, level *slog.LevelVar, out io.Writer) base {
	if level == nil {
		level = new(slog.LevelVar)
	}
	return base{
		validator: validator.NewValidator(),
		logger:    logger,
		level:     level,
		out:       out,
	}
}

// baseConfig reads the flags every command declares and applies the
// requested log level
func (b base) baseConfig(c *cli.Command) *config.Config {
	cfg := config.NewConfig()

	if level := c.String("log-level"); level != "" {
		cfg.LogLevel = level
	}
	b.level.Set(cfg.SlogLevel())

	return cfg
}

// validate logs and returns configuration errors
func (b base) validate(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		b.logger.Error("Configuration validation failed", "error", err)
		return err
	}
	return nil
}

// ruleConfig reads the flags from ruleFlags into a validated config; only
// commands that declare those flags call it
func (b base) ruleConfig(c *cli.Command) (*config.Config, error) {
	cfg := b.baseConfig(c)

	if preset := c.String("preset"); preset != "" {
		cfg.Preset = preset
	}
	if c.IsSet("min-width") {
		v := c.Int("min-width")
		cfg.MinWidth = &v
	}
	if c.IsSet("min-height") {
		v := c.Int("min-height")
		cfg.MinHeight = &v
	}
	if c.IsSet("aspect-ratio-min") {
		v := c.Float("aspect-ratio-min")
		cfg.AspectRatioMin = &v
	}
	if c.IsSet("aspect-ratio-max") {
		v := c.Float("aspect-ratio-max")
		cfg.AspectRatioMax = &v
	}
	if c.IsSet("portrait-threshold") {
		v := c.Float("portrait-threshold")
		cfg.PortraitThreshold = &v
	}
	if c.IsSet("allow-explicit") {
		v := c.Bool("allow-explicit")
		cfg.AllowExplicit = &v
	}

	if err := b.validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (b base) logFlag() cli.Flag {
	return &cli.StringFlag{
		Name:      "log-level",
		Aliases:   []string{"l"},
		Value:     constants.LogLevelInfo,
		Sources:   cli.EnvVars(constants.EnvLogLevel),
		Validator: b.validator.ValidateLogLevel,
		Usage:     "Log level: " + strings.Join(constants.ValidLogLevels, ", "),
	}
}

// ruleFlags returns fresh rule flags; each command needs its own instances
func (b base) ruleFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "preset",
			Aliases:   []string{"p"},
			Value:     constants.DefaultPreset,
			Sources:   cli.EnvVars(constants.EnvPreset),
			Validator: b.validator.ValidatePreset,
			Usage:     "Rule preset: " + strings.Join(constants.ValidPresets, ", "),
		},
		&cli.IntFlag{
			Name:    "min-width",
			Aliases: []string{"mw"},
			Sources: cli.EnvVars(constants.EnvMinWidth),
			Usage:   "Minimum width in pixels (overrides the preset)",
		},
		&cli.IntFlag{
			Name:    "min-height",
			Aliases: []string{"mh"},
			Sources: cli.EnvVars(constants.EnvMinHeight),
			Usage:   "Minimum height in pixels (overrides the preset)",
		},
		&cli.FloatFlag{
			Name:    "aspect-ratio-min",
			Aliases: []string{"armin"},
			Sources: cli.EnvVars(constants.EnvAspectRatioMin),
			Usage:   "Lowest accepted aspect ratio, inclusive (overrides the preset)",
		},
		&cli.FloatFlag{
			Name:    "aspect-ratio-max",
			Aliases: []string{"armax"},
			Sources: cli.EnvVars(constants.EnvAspectRatioMax),
			Usage:   "Highest accepted aspect ratio, inclusive (overrides the preset)",
		},
		&cli.FloatFlag{
			Name:    "portrait-threshold",
			Aliases: []string{"pt"},
			Sources: cli.EnvVars(constants.EnvPortraitThreshold),
			Usage:   "Aspect ratio at or below which images are rejected (overrides the preset)",
		},
		&cli.BoolFlag{
			Name:    "allow-explicit",
			Aliases: []string{"nsfw"},
			Sources: cli.EnvVars(constants.EnvAllowExplicit),
			Usage:   "Accept images flagged as explicit",
		},
		b.logFlag(),
	}
}
