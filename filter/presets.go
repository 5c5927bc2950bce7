package filter

import (
	"fmt"
	"strings"

	"git.asdf.cafe/abs3nt/wallfilter/constants"
	"git.asdf.cafe/abs3nt/wallfilter/errors"
)

// HDLandscape is the 1080p landscape rule
func HDLandscape() Rule {
	return DefaultRule()
}

// QHDLandscape is the 1440p landscape rule
func QHDLandscape() Rule {
	r := DefaultRule()
	r.MinWidth = 2560
	r.MinHeight = 1440
	return r
}

// UHDLandscape is the 4K landscape rule
func UHDLandscape() Rule {
	r := DefaultRule()
	r.MinWidth = 3840
	r.MinHeight = 2160
	return r
}

// Ultrawide accepts 21:9 style images
func Ultrawide() Rule {
	r := DefaultRule()
	r.MinWidth = 2560
	r.MinHeight = 1080
	r.AspectRatioMin = 2.0
	r.AspectRatioMax = 2.5
	return r
}

// AnyOrientation keeps the size minimums but accepts portrait and square images
func AnyOrientation() Rule {
	r := DefaultRule()
	r.AspectRatioMin = 0
	r.AspectRatioMax = 10
	r.PortraitThreshold = 0
	return r
}

var presets = map[string]func() Rule{
	constants.PresetHD:        HDLandscape,
	constants.PresetQHD:       QHDLandscape,
	constants.PresetUHD:       UHDLandscape,
	constants.PresetUltrawide: Ultrawide,
	constants.PresetAny:       AnyOrientation,
}

// Preset returns the rule registered under name
func Preset(name string) (Rule, error) {
	build, ok := presets[strings.ToLower(name)]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q (want one of %s)", errors.ErrUnknownPreset, name, strings.Join(constants.ValidPresets, ", "))
	}
	return build(), nil
}

// PresetNames lists the preset names in display order
func PresetNames() []string {
	names := make([]string, len(constants.ValidPresets))
	copy(names, constants.ValidPresets)
	return names
}
