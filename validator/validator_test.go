package validator

import (
	stderrors "errors"
	"testing"

	"git.asdf.cafe/abs3nt/wallfilter/constants"
	"git.asdf.cafe/abs3nt/wallfilter/errors"
	"git.asdf.cafe/abs3nt/wallfilter/filter"
)

func TestValidator_ValidatePreset(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid hd", constants.PresetHD, false},
		{"valid ultrawide", constants.PresetUltrawide, false},
		{"mixed case", "UHD", false},
		{"invalid value", "8k", true},
		{"empty string", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePreset(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePreset() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidator_ValidateLogLevel(t *testing.T) {
	v := NewValidator()

	for _, level := range constants.ValidLogLevels {
		if err := v.ValidateLogLevel(level); err != nil {
			t.Errorf("Expected valid log level %s to pass validation, got error: %v", level, err)
		}
	}

	if err := v.ValidateLogLevel("trace"); err == nil {
		t.Error("Expected invalid log level to fail validation")
	}
}

func TestValidator_ValidateDimension(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		value   int
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 1920, false},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateDimension("min_width", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimension() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidator_ValidateRatioBand(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		min     float64
		max     float64
		wantErr bool
	}{
		{"normal band", 1.3, 2.4, false},
		{"single point", 2.0, 2.0, false},
		{"inverted", 2.5, 2.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRatioBand(tt.min, tt.max)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRatioBand() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !stderrors.Is(err, errors.ErrValidation) {
				t.Errorf("ValidateRatioBand() error = %v, want ErrValidation", err)
			}
		})
	}

	if err := v.ValidateRatio("portrait_threshold", -0.5); err == nil {
		t.Error("Expected negative ratio to fail validation")
	}
}

func TestParseResolution(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		wantWidth  int
		wantHeight int
		wantErr    bool
	}{
		{"lowercase x", "1920x1080", 1920, 1080, false},
		{"uppercase x", "2560X1440", 2560, 1440, false},
		{"padded", " 3840x2160 ", 3840, 2160, false},
		{"missing separator", "1920", 0, 0, true},
		{"bad width", "abcx1080", 0, 0, true},
		{"zero height", "1920x0", 0, 0, true},
		{"negative width", "-1x1080", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := ParseResolution(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseResolution() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !stderrors.Is(err, errors.ErrInvalidResolution) {
					t.Errorf("ParseResolution() error = %v, want ErrInvalidResolution", err)
				}
				return
			}
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("ParseResolution() = %dx%d, want %dx%d", w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestValidator_ValidateRule(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		mutate  func(*filter.Rule)
		wantErr bool
	}{
		{"default rule", func(*filter.Rule) {}, false},
		{"zero minimums", func(r *filter.Rule) { r.MinWidth, r.MinHeight = 0, 0 }, false},
		{"negative height", func(r *filter.Rule) { r.MinHeight = -1080 }, true},
		{"negative band max", func(r *filter.Rule) { r.AspectRatioMax = -1 }, true},
		{"inverted band", func(r *filter.Rule) { r.AspectRatioMin = 2.5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := filter.DefaultRule()
			tt.mutate(&rule)
			err := v.ValidateRule(rule)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRule() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidator_SearchParameters(t *testing.T) {
	v := NewValidator()

	for _, sort := range constants.ValidSorts {
		if err := v.ValidateSort(sort); err != nil {
			t.Errorf("Expected valid sort %s to pass validation, got error: %v", sort, err)
		}
	}
	if err := v.ValidateSort("newest"); err == nil {
		t.Error("Expected invalid sort to fail validation")
	}

	if err := v.ValidateOrder(constants.OrderAsc); err != nil {
		t.Errorf("Expected valid order to pass validation, got error: %v", err)
	}
	if err := v.ValidateOrder("up"); err == nil {
		t.Error("Expected invalid order to fail validation")
	}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid 010", "010", false},
		{"valid 111", "111", false},
		{"invalid length", "01", true},
		{"invalid chars", "xyz", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateCategories(tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCategories() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if err := v.ValidatePage(0); err != nil {
		t.Errorf("Expected page 0 to pass validation, got error: %v", err)
	}
	if err := v.ValidatePage(-2); err == nil {
		t.Error("Expected negative page to fail validation")
	}
}

func TestValidator_ValidateResolution(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateResolution("2560x1440"); err != nil {
		t.Errorf("Expected valid resolution to pass validation, got error: %v", err)
	}
	if err := v.ValidateResolution("wide"); !stderrors.Is(err, errors.ErrInvalidResolution) {
		t.Errorf("ValidateResolution(\"wide\") error = %v, want ErrInvalidResolution", err)
	}
}
