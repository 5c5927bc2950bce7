// Package validator provides input validation functions
package validator

import (
	"fmt"
	"strconv"
	"strings"

	"git.asdf.cafe/abs3nt/wallfilter/constants"
	"git.asdf.cafe/abs3nt/wallfilter/errors"
	"git.asdf.cafe/abs3nt/wallfilter/filter"
)

// Validator provides validation methods
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePreset validates preset parameter
func (v *Validator) ValidatePreset(value string) error {
	for _, valid := range constants.ValidPresets {
		if strings.EqualFold(value, valid) {
			return nil
		}
	}
	return errors.NewValidationError("preset", value, "must be one of: "+strings.Join(constants.ValidPresets, ", "))
}

// ValidateLogLevel validates log level parameter
func (v *Validator) ValidateLogLevel(value string) error {
	for _, valid := range constants.ValidLogLevels {
		if strings.EqualFold(value, valid) {
			return nil
		}
	}
	return errors.NewValidationError("log_level", value, "must be one of: "+strings.Join(constants.ValidLogLevels, ", "))
}

// ValidateDimension validates a pixel dimension; 0 disables the minimum
func (v *Validator) ValidateDimension(field string, value int) error {
	if value < 0 {
		return errors.NewValidationError(field, strconv.Itoa(value), "must not be negative")
	}
	return nil
}

// ValidateRatio validates an aspect ratio or threshold value
func (v *Validator) ValidateRatio(field string, value float64) error {
	if value < 0 {
		return errors.NewValidationError(field, strconv.FormatFloat(value, 'f', -1, 64), "must not be negative")
	}
	return nil
}

// ValidateRatioBand checks that the band is not inverted
func (v *Validator) ValidateRatioBand(minRatio, maxRatio float64) error {
	if minRatio > maxRatio {
		return errors.NewValidationError("aspect_ratio", fmt.Sprintf("%.2f-%.2f", minRatio, maxRatio), "minimum must not exceed maximum")
	}
	return nil
}

// ValidateRule runs the dimension, ratio and band checks over a rule
func (v *Validator) ValidateRule(rule filter.Rule) error {
	checks := []error{
		v.ValidateDimension("min_width", rule.MinWidth),
		v.ValidateDimension("min_height", rule.MinHeight),
		v.ValidateRatio("aspect_ratio_min", rule.AspectRatioMin),
		v.ValidateRatio("aspect_ratio_max", rule.AspectRatioMax),
		v.ValidateRatio("portrait_threshold", rule.PortraitThreshold),
		v.ValidateRatioBand(rule.AspectRatioMin, rule.AspectRatioMax),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// ValidateSort validates sort parameter
func (v *Validator) ValidateSort(value string) error {
	for _, valid := range constants.ValidSorts {
		if value == valid {
			return nil
		}
	}
	return errors.NewValidationError("sorting", value, "must be one of: "+strings.Join(constants.ValidSorts, ", "))
}

// ValidateOrder validates order parameter
func (v *Validator) ValidateOrder(value string) error {
	for _, valid := range constants.ValidOrders {
		if value == valid {
			return nil
		}
	}
	return errors.NewValidationError("order", value, "must be one of: "+strings.Join(constants.ValidOrders, ", "))
}

// ValidateCategories validates categories parameter
func (v *Validator) ValidateCategories(value string) error {
	if len(value) != 3 {
		return errors.NewValidationError("categories", value, "must be 3 characters long")
	}
	for _, char := range value {
		if char != '0' && char != '1' {
			return errors.NewValidationError("categories", value, "must contain only '0' and '1'")
		}
	}
	return nil
}

// ValidatePage validates a result page number; 0 leaves it to the server
func (v *Validator) ValidatePage(value int) error {
	if value < 0 {
		return errors.NewValidationError("page", strconv.Itoa(value), "must not be negative")
	}
	return nil
}

// ValidateResolution validates a WIDTHxHEIGHT string
func (v *Validator) ValidateResolution(value string) error {
	_, _, err := ParseResolution(value)
	return err
}

// ParseResolution splits a WIDTHxHEIGHT string such as "1920x1080"
func ParseResolution(value string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(value)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q is not WIDTHxHEIGHT", errors.ErrInvalidResolution, value)
	}

	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("%w: bad width in %q", errors.ErrInvalidResolution, value)
	}

	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("%w: bad height in %q", errors.ErrInvalidResolution, value)
	}

	return width, height, nil
}
