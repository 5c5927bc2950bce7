// Package interfaces defines interfaces for dependency injection
package interfaces

import (
	"git.asdf.cafe/abs3nt/wallfilter/filter"
	"git.asdf.cafe/abs3nt/wallfilter/harness"
)

// Reporter defines the interface for presenting harness results
type Reporter interface {
	Report(title string, results []harness.GroupResult) error
}

// ScenarioSource loads scenario groups
type ScenarioSource interface {
	Groups() ([]harness.Group, error)
}

// Validator defines the interface for input validation
type Validator interface {
	ValidatePreset(value string) error
	ValidateLogLevel(value string) error
	ValidateResolution(value string) error
	ValidateDimension(field string, value int) error
	ValidateRatio(field string, value float64) error
	ValidateRatioBand(minRatio, maxRatio float64) error
	ValidateRule(rule filter.Rule) error
	ValidateSort(value string) error
	ValidateOrder(value string) error
	ValidateCategories(value string) error
	ValidatePage(value int) error
}
