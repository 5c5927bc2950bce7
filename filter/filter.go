// Package filter decides whether an image is usable as a desktop wallpaper
package filter

import (
	"fmt"

	"git.asdf.cafe/abs3nt/wallfilter/constants"
)

// Image describes a candidate wallpaper
type Image struct {
	Width    int
	Height   int
	Explicit bool
}

// AspectRatio returns width divided by height, or 0 when height is 0
func (i Image) AspectRatio() float64 {
	if i.Height == 0 {
		return 0
	}
	return float64(i.Width) / float64(i.Height)
}

func (i Image) String() string {
	return fmt.Sprintf("%dx%d", i.Width, i.Height)
}

// Rule holds the thresholds an image must satisfy
type Rule struct {
	MinWidth          int
	MinHeight         int
	AspectRatioMin    float64
	AspectRatioMax    float64
	PortraitThreshold float64
	AllowExplicit     bool
}

// DefaultRule returns the Full HD landscape rule
func DefaultRule() Rule {
	return Rule{
		MinWidth:          constants.DefaultMinWidth,
		MinHeight:         constants.DefaultMinHeight,
		AspectRatioMin:    constants.DefaultAspectRatioMin,
		AspectRatioMax:    constants.DefaultAspectRatioMax,
		PortraitThreshold: constants.DefaultPortraitThreshold,
		AllowExplicit:     constants.DefaultAllowExplicit,
	}
}

// Accepts reports whether img passes rule. Checks run in order and the
// first failing one rejects; the aspect ratio band is inclusive while the
// portrait threshold is not.
func Accepts(rule Rule, img Image) bool {
	if img.Width < rule.MinWidth || img.Height < rule.MinHeight {
		return false
	}

	ar := img.AspectRatio()

	if ar <= rule.PortraitThreshold {
		return false
	}

	if ar < rule.AspectRatioMin || ar > rule.AspectRatioMax {
		return false
	}

	if img.Explicit && !rule.AllowExplicit {
		return false
	}

	return true
}

// Accepts reports whether img passes the rule
func (r Rule) Accepts(img Image) bool {
	return Accepts(r, img)
}

// Filter returns the accepted images, keeping their order
func Filter(rule Rule, imgs []Image) []Image {
	out := make([]Image, 0, len(imgs))
	for _, img := range imgs {
		if Accepts(rule, img) {
			out = append(out, img)
		}
	}
	return out
}

// Description returns a short human readable summary of the rule
func (r Rule) Description() string {
	content := "SFW only"
	if r.AllowExplicit {
		content = "NSFW allowed"
	}
	return fmt.Sprintf("%dx%d, aspect ratio %.2f-%.2f, %s",
		r.MinWidth, r.MinHeight, r.AspectRatioMin, r.AspectRatioMax, content)
}

// LandscapeTags appends size hint tags understood by booru style sites.
// The base slice is not modified.
func LandscapeTags(base []string, rule Rule) []string {
	tags := make([]string, len(base), len(base)+1)
	copy(tags, base)

	switch {
	case rule.MinWidth >= constants.AbsurdresMinWidth && rule.MinHeight >= constants.AbsurdresMinHeight:
		tags = append(tags, constants.TagAbsurdres)
	case rule.MinWidth >= constants.HighresMinWidth && rule.MinHeight >= constants.HighresMinHeight:
		tags = append(tags, constants.TagHighres)
	}

	return tags
}
