package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"git.asdf.cafe/abs3nt/wallfilter/filter"
	"git.asdf.cafe/abs3nt/wallfilter/validator"
)

// CheckHandler evaluates a single image
type CheckHandler struct {
	base
}

// NewCheckHandler creates a new check handler
func NewCheckHandler(logger *slog.Logger, level *slog.LevelVar, out io.Writer) *CheckHandler {
	return &CheckHandler{base: newBase(logger, level, out)}
}

// Handle processes the check command
func (h *CheckHandler) Handle(ctx context.Context, c *cli.Command) error {
	cfg, err := h.ruleConfig(c)
	if err != nil {
		return err
	}

	arg := c.Args().First()
	if err := h.validator.ValidateResolution(arg); err != nil {
		h.logger.Error("Invalid resolution argument", "error", err)
		return err
	}
	width, height, err := validator.ParseResolution(arg)
	if err != nil {
		return err
	}

	rule, err := cfg.Rule()
	if err != nil {
		return err
	}

	img := filter.Image{Width: width, Height: height, Explicit: c.Bool("explicit")}
	accepted := rule.Accepts(img)
	h.logger.Debug("Checked image", "image", img.String(), "explicit", img.Explicit, "accepted", accepted)

	verdict := "rejected"
	if accepted {
		verdict = "accepted"
	}
	fmt.Fprintf(h.out, "%s %s (AR=%.2f)\n", img, verdict, img.AspectRatio())
	fmt.Fprintf(h.out, "rule: %s\n", rule.Description())

	return nil
}

// GetFlags returns the CLI flags for the check command
func (h *CheckHandler) GetFlags() []cli.Flag {
	return append(h.ruleFlags(),
		&cli.BoolFlag{
			Name:    "explicit",
			Aliases: []string{"e"},
			Usage:   "Treat the image as explicit content",
		},
	)
}
