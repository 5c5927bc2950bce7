package filter

import (
	stderrors "errors"
	"testing"

	"git.asdf.cafe/abs3nt/wallfilter/constants"
	"git.asdf.cafe/abs3nt/wallfilter/errors"
)

func TestPreset(t *testing.T) {
	tests := []struct {
		name string
		want Rule
	}{
		{constants.PresetHD, DefaultRule()},
		{constants.PresetQHD, Rule{MinWidth: 2560, MinHeight: 1440, AspectRatioMin: 1.3, AspectRatioMax: 2.4, PortraitThreshold: 1.0}},
		{constants.PresetUHD, Rule{MinWidth: 3840, MinHeight: 2160, AspectRatioMin: 1.3, AspectRatioMax: 2.4, PortraitThreshold: 1.0}},
		{constants.PresetUltrawide, Rule{MinWidth: 2560, MinHeight: 1080, AspectRatioMin: 2.0, AspectRatioMax: 2.5, PortraitThreshold: 1.0}},
		{constants.PresetAny, Rule{MinWidth: 1920, MinHeight: 1080, AspectRatioMin: 0, AspectRatioMax: 10, PortraitThreshold: 0}},
		{"ULTRAWIDE", Ultrawide()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Preset(tt.name)
			if err != nil {
				t.Fatalf("Preset(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Preset(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestPreset_Unknown(t *testing.T) {
	_, err := Preset("8k")
	if !stderrors.Is(err, errors.ErrUnknownPreset) {
		t.Errorf("Preset(\"8k\") error = %v, want ErrUnknownPreset", err)
	}
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	if len(names) != len(presets) {
		t.Fatalf("PresetNames() returned %d names, registry has %d", len(names), len(presets))
	}
	for _, name := range names {
		if _, err := Preset(name); err != nil {
			t.Errorf("listed preset %q does not resolve: %v", name, err)
		}
	}

	names[0] = "mutated"
	if PresetNames()[0] != constants.PresetHD {
		t.Error("PresetNames() exposed the backing slice")
	}
}

func TestAnyOrientation_AcceptsPortrait(t *testing.T) {
	rule := AnyOrientation()
	if !rule.Accepts(Image{Width: 1920, Height: 3840}) {
		t.Error("expected tall image to pass with any orientation")
	}
	if rule.Accepts(Image{Width: 1080, Height: 1920}) {
		t.Error("expected size minimums to still apply")
	}
}
