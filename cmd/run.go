package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"git.asdf.cafe/abs3nt/wallfilter/constants"
	"git.asdf.cafe/abs3nt/wallfilter/harness"
	"git.asdf.cafe/abs3nt/wallfilter/interfaces"
)

const reportTitle = "Testing Wallpaper Filter"

// RunHandler runs scenario groups and prints the report
type RunHandler struct {
	base
}

// NewRunHandler creates a new run handler
func NewRunHandler(logger *slog.Logger, level *slog.LevelVar, out io.Writer) *RunHandler {
	return &RunHandler{base: newBase(logger, level, out)}
}

// Handle processes the run command. Scenario failures are reported but do
// not make the command fail.
func (h *RunHandler) Handle(ctx context.Context, c *cli.Command) error {
	cfg := h.baseConfig(c)
	cfg.ScenarioFile = c.String("scenarios")
	cfg.NoColor = c.Bool("no-color")
	if err := h.validate(cfg); err != nil {
		return err
	}

	var source interfaces.ScenarioSource = harness.Source{Path: cfg.ScenarioFile}
	groups, err := source.Groups()
	if err != nil {
		h.logger.Error("Failed to load scenarios", "path", cfg.ScenarioFile, "error", err)
		return err
	}
	h.logger.Debug("Loaded scenario groups", "count", len(groups), "path", cfg.ScenarioFile)

	results := harness.Run(groups, nil)
	for _, g := range results {
		for _, res := range g.Results {
			h.logger.Debug("Evaluated case", "group", g.Group.Title, "case", res.Case.Name, "got", res.Got, "expected", res.Case.Expected)
		}
	}

	var reporter interfaces.Reporter = harness.NewReporter(h.out, !cfg.NoColor)
	if err := reporter.Report(reportTitle, results); err != nil {
		h.logger.Error("Failed to write report", "error", err)
		return err
	}

	passed, total := harness.Totals(results)
	if passed < total {
		h.logger.Warn("Some scenarios failed", "passed", passed, "total", total)
	} else {
		h.logger.Info("All scenarios passed", "total", total)
	}

	return nil
}

// GetFlags returns the CLI flags for the run command
func (h *RunHandler) GetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "scenarios",
			Aliases:   []string{"s"},
			Sources:   cli.EnvVars(constants.EnvScenarios),
			TakesFile: true,
			Usage:     "YAML file with scenario groups (defaults to the built-in groups)",
		},
		&cli.BoolFlag{
			Name:    "no-color",
			Sources: cli.EnvVars(constants.EnvNoColor),
			Usage:   "Disable coloured PASS/FAIL markers",
		},
		h.logFlag(),
	}
}
