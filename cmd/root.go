// Package cmd provides command handlers for the CLI
package cmd

import (
	"context"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"git.asdf.cafe/abs3nt/wallfilter/constants"
)

// Handler is implemented by every command handler
type Handler interface {
	Handle(ctx context.Context, c *cli.Command) error
	GetFlags() []cli.Flag
}

// NewRootCommand wires the command tree. Output meant for the user goes
// to out; logs go through logger, whose level follows the --log-level flag.
func NewRootCommand(logger *slog.Logger, level *slog.LevelVar, out io.Writer) *cli.Command {
	run := NewRunHandler(logger, level, out)
	check := NewCheckHandler(logger, level, out)
	presets := NewPresetsHandler(logger, level, out)
	query := NewQueryHandler(logger, level, out)

	return &cli.Command{
		Name:           constants.AppName,
		Usage:          "Select wallpaper images by resolution, aspect ratio and content",
		Version:        constants.AppVersion,
		DefaultCommand: "run",
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Run the filter scenario groups and report pass/fail",
				Flags:  run.GetFlags(),
				Action: run.Handle,
			},
			{
				Name:      "check",
				Usage:     "Evaluate one image against the configured rule",
				ArgsUsage: "WIDTHxHEIGHT",
				Flags:     check.GetFlags(),
				Action:    check.Handle,
			},
			{
				Name:   "presets",
				Usage:  "List the built-in rule presets",
				Flags:  presets.GetFlags(),
				Action: presets.Handle,
			},
			{
				Name:      "query",
				Usage:     "Print the wallhaven search URL matching the configured rule",
				ArgsUsage: "[tag...]",
				Flags:     query.GetFlags(),
				Action:    query.Handle,
			},
		},
	}
}

var (
	_ Handler = (*RunHandler)(nil)
	_ Handler = (*CheckHandler)(nil)
	_ Handler = (*PresetsHandler)(nil)
	_ Handler = (*QueryHandler)(nil)
)
