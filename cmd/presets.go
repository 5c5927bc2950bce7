package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"git.asdf.cafe/abs3nt/wallfilter/filter"
)

// PresetsHandler lists the rule presets
type PresetsHandler struct {
	base
}

// NewPresetsHandler creates a new presets handler
func NewPresetsHandler(logger *slog.Logger, level *slog.LevelVar, out io.Writer) *PresetsHandler {
	return &PresetsHandler{base: newBase(logger, level, out)}
}

// Handle processes the presets command
func (h *PresetsHandler) Handle(ctx context.Context, c *cli.Command) error {
	if err := h.validate(h.baseConfig(c)); err != nil {
		return err
	}

	for _, name := range filter.PresetNames() {
		rule, err := filter.Preset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(h.out, "%-10s %s\n", name, rule.Description())
	}
	return nil
}

// GetFlags returns the CLI flags for the presets command
func (h *PresetsHandler) GetFlags() []cli.Flag {
	return []cli.Flag{h.logFlag()}
}
