// Package harness runs named groups of filter scenarios and reports the
// outcome on the console
package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"git.asdf.cafe/abs3nt/wallfilter/constants"
	"git.asdf.cafe/abs3nt/wallfilter/errors"
	"git.asdf.cafe/abs3nt/wallfilter/filter"
	"git.asdf.cafe/abs3nt/wallfilter/validator"
)

// Case is a single image with the verdict it should get
type Case struct {
	Name     string
	Image    filter.Image
	Expected bool
}

// Group is a set of cases evaluated against one rule
type Group struct {
	Title string
	Rule  filter.Rule
	Cases []Case
}

func img(w, h int, explicit bool) filter.Image {
	return filter.Image{Width: w, Height: h, Explicit: explicit}
}

// DefaultGroups returns the built-in scenario groups
func DefaultGroups() []Group {
	hd := filter.HDLandscape()

	return []Group{
		{
			Title: "HD Landscape Filter (1920x1080+)",
			Rule:  hd,
			Cases: []Case{
				{"1920x1080 landscape", img(1920, 1080, false), true},
				{"2560x1440 landscape", img(2560, 1440, false), true},
				{"1280x720 too small", img(1280, 720, false), false},
				{"1080x1920 portrait", img(1080, 1920, false), false},
				{"1920x1080 NSFW", img(1920, 1080, true), false},
				{"1920x1920 square", img(1920, 1920, false), false},
			},
		},
		{
			Title: "Aspect Ratio Tests",
			Rule:  hd,
			Cases: []Case{
				{"4:3 (1.33)", img(1920, 1440, false), true},
				{"16:9 (1.77)", img(1920, 1080, false), true},
				{"21:9 (2.33)", img(2560, 1080, false), true},
				{"1:1 (1.0)", img(1920, 1920, false), false},
				{"9:16 (0.56)", img(1080, 1920, false), false},
			},
		},
		{
			Title: "Ultrawide Filter (21:9)",
			Rule:  filter.Ultrawide(),
			Cases: []Case{
				{"2560x1080 (21:9)", img(2560, 1080, false), true},
				{"3440x1440 (21:9)", img(3440, 1440, false), true},
				{"1920x1080 (16:9)", img(1920, 1080, false), false},
			},
		},
		{
			Title: "4K Filter (3840x2160+)",
			Rule:  filter.UHDLandscape(),
			Cases: []Case{
				{"3840x2160 (4K)", img(3840, 2160, false), true},
				{"2560x1440 (2K)", img(2560, 1440, false), false},
			},
		},
	}
}

// Source yields scenario groups from a YAML file, or the built-in groups
// when Path is empty
type Source struct {
	Path string
}

// Groups loads the groups
func (s Source) Groups() ([]Group, error) {
	if s.Path == "" {
		return DefaultGroups(), nil
	}
	return LoadGroups(s.Path)
}

// scenarioFile is the on-disk layout read by LoadGroups
type scenarioFile struct {
	Groups []groupSpec `yaml:"groups"`
}

type groupSpec struct {
	Title  string       `yaml:"title"`
	Preset string       `yaml:"preset"`
	Rule   ruleOverride `yaml:"rule"`
	Cases  []caseSpec   `yaml:"cases"`
}

type ruleOverride struct {
	MinWidth          *int     `yaml:"min_width"`
	MinHeight         *int     `yaml:"min_height"`
	AspectRatioMin    *float64 `yaml:"aspect_ratio_min"`
	AspectRatioMax    *float64 `yaml:"aspect_ratio_max"`
	PortraitThreshold *float64 `yaml:"portrait_threshold"`
	AllowExplicit     *bool    `yaml:"allow_explicit"`
}

func (o ruleOverride) apply(r filter.Rule) filter.Rule {
	if o.MinWidth != nil {
		r.MinWidth = *o.MinWidth
	}
	if o.MinHeight != nil {
		r.MinHeight = *o.MinHeight
	}
	if o.AspectRatioMin != nil {
		r.AspectRatioMin = *o.AspectRatioMin
	}
	if o.AspectRatioMax != nil {
		r.AspectRatioMax = *o.AspectRatioMax
	}
	if o.PortraitThreshold != nil {
		r.PortraitThreshold = *o.PortraitThreshold
	}
	if o.AllowExplicit != nil {
		r.AllowExplicit = *o.AllowExplicit
	}
	return r
}

type caseSpec struct {
	Name     string `yaml:"name"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Explicit bool   `yaml:"explicit"`
	Expected *bool  `yaml:"expected"`
}

// LoadGroups reads scenario groups from a YAML file
func LoadGroups(path string) ([]Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidScenario, err)
	}
	return ParseGroups(data)
}

// ParseGroups decodes scenario groups from YAML
func ParseGroups(data []byte) ([]Group, error) {
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidScenario, err)
	}
	if len(file.Groups) == 0 {
		return nil, fmt.Errorf("%w: no groups defined", errors.ErrInvalidScenario)
	}

	groups := make([]Group, 0, len(file.Groups))
	for i, gs := range file.Groups {
		g, err := gs.build(i)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func (gs groupSpec) build(index int) (Group, error) {
	title := gs.Title
	if title == "" {
		title = fmt.Sprintf("Group %d", index+1)
	}

	preset := gs.Preset
	if preset == "" {
		preset = constants.DefaultPreset
	}
	base, err := filter.Preset(preset)
	if err != nil {
		return Group{}, fmt.Errorf("%w: group %q: %w", errors.ErrInvalidScenario, title, err)
	}

	rule := gs.Rule.apply(base)
	if err := validator.NewValidator().ValidateRule(rule); err != nil {
		return Group{}, fmt.Errorf("%w: group %q: %w", errors.ErrInvalidScenario, title, err)
	}

	g := Group{Title: title, Rule: rule}
	for j, cs := range gs.Cases {
		if cs.Width <= 0 || cs.Height <= 0 {
			return Group{}, fmt.Errorf("%w: group %q case %d: dimensions must be positive", errors.ErrInvalidScenario, title, j+1)
		}
		if cs.Expected == nil {
			return Group{}, fmt.Errorf("%w: group %q case %d: missing expected", errors.ErrInvalidScenario, title, j+1)
		}
		name := cs.Name
		if name == "" {
			name = fmt.Sprintf("%dx%d", cs.Width, cs.Height)
		}
		g.Cases = append(g.Cases, Case{
			Name:     name,
			Image:    img(cs.Width, cs.Height, cs.Explicit),
			Expected: *cs.Expected,
		})
	}
	return g, nil
}
