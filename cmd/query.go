package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"git.asdf.cafe/abs3nt/wallfilter/constants"
	"git.asdf.cafe/abs3nt/wallfilter/filter"
	"git.asdf.cafe/abs3nt/wallfilter/src/wallhaven"
)

// QueryHandler prints search hints derived from the rule
type QueryHandler struct {
	base
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(logger *slog.Logger, level *slog.LevelVar, out io.Writer) *QueryHandler {
	return &QueryHandler{base: newBase(logger, level, out)}
}

// Handle processes the query command
func (h *QueryHandler) Handle(ctx context.Context, c *cli.Command) error {
	cfg, err := h.ruleConfig(c)
	if err != nil {
		return err
	}
	if err := h.validateSearchFlags(c); err != nil {
		h.logger.Error("Invalid search flag", "error", err)
		return err
	}

	rule, err := cfg.Rule()
	if err != nil {
		return err
	}

	tags := c.Args().Slice()
	search := wallhaven.SearchFromRule(rule, tags)
	search.Query.ExcludeTags = c.StringSlice("exclude")
	search.Categories = c.String("categories")
	search.Sorting = c.String("sorting")
	search.Order = c.String("order")
	search.Page = int64(c.Int("page"))
	h.logger.Debug("Built search", "ratios", search.Ratios, "atleast", search.AtLeast, "sorting", search.Sorting, "page", search.Page)

	fmt.Fprintf(h.out, "wallhaven: %s\n", search.URL())
	fmt.Fprintf(h.out, "booru tags: %v\n", filter.LandscapeTags(tags, rule))
	return nil
}

// validateSearchFlags checks the optional search flags that were given
func (h *QueryHandler) validateSearchFlags(c *cli.Command) error {
	if v := c.String("categories"); v != "" {
		if err := h.validator.ValidateCategories(v); err != nil {
			return err
		}
	}
	if v := c.String("sorting"); v != "" {
		if err := h.validator.ValidateSort(v); err != nil {
			return err
		}
	}
	if v := c.String("order"); v != "" {
		if err := h.validator.ValidateOrder(v); err != nil {
			return err
		}
	}
	return h.validator.ValidatePage(c.Int("page"))
}

// GetFlags returns the CLI flags for the query command
func (h *QueryHandler) GetFlags() []cli.Flag {
	return append(h.ruleFlags(),
		&cli.StringSliceFlag{
			Name:    "exclude",
			Aliases: []string{"x"},
			Usage:   "Tag to exclude from results (repeatable)",
		},
		&cli.StringFlag{
			Name:    "categories",
			Aliases: []string{"c"},
			Usage:   "Category filter: 3 chars for General|Anime|People (e.g., '010' for Anime only)",
		},
		&cli.StringFlag{
			Name:    "sorting",
			Aliases: []string{"s"},
			Usage:   "Sort order: " + strings.Join(constants.ValidSorts, ", "),
		},
		&cli.StringFlag{
			Name:    "order",
			Aliases: []string{"o"},
			Usage:   "Order of the wallpapers: " + strings.Join(constants.ValidOrders, ", "),
		},
		&cli.IntFlag{
			Name:    "page",
			Aliases: []string{"pg"},
			Usage:   "Result page to request",
		},
	)
}
