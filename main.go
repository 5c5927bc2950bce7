package main

import (
	"context"
	"log/slog"
	"os"

	"git.asdf.cafe/abs3nt/wallfilter/cmd"
	"git.asdf.cafe/abs3nt/wallfilter/config"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := config.LoadEnvFile(""); err != nil {
		logger.Warn("Failed to load .env file", "error", err)
	}

	if err := cmd.NewRootCommand(logger, level, os.Stdout).Run(context.Background(), os.Args); err != nil {
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
