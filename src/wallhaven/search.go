// Package wallhaven translates filter rules into wallhaven search parameters
package wallhaven

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"git.asdf.cafe/abs3nt/wallfilter/filter"
)

// Q is used to hold the Q params for various fulltext options that the WH Search supports
type Q struct {
	Tags        []string
	ExcludeTags []string
}

func (q Q) toQuery() url.Values {
	var sb strings.Builder
	for _, tag := range q.Tags {
		sb.WriteString("+")
		sb.WriteString(tag)
	}
	for _, etag := range q.ExcludeTags {
		sb.WriteString("-")
		sb.WriteString(etag)
	}
	out := url.Values{}
	val := sb.String()
	if len(val) > 0 {
		out.Set("q", val)
	}
	return out
}

// Search provides various parameters to search for on wallhaven
type Search struct {
	Query      Q
	Categories string
	Purities   string
	Sorting    string
	Order      string
	AtLeast    string
	Ratios     []string
	Page       int64
}

// Values encodes the search as URL query values
func (s Search) Values() url.Values {
	v := s.Query.toQuery()
	if s.Categories != "" {
		v.Add("categories", s.Categories)
	}
	if s.Purities != "" {
		v.Add("purity", s.Purities)
	}
	if s.Sorting != "" {
		v.Add("sorting", s.Sorting)
	}
	if s.Order != "" {
		v.Add("order", s.Order)
	}
	if s.AtLeast != "" {
		v.Add("atleast", s.AtLeast)
	}
	if len(s.Ratios) > 0 {
		v.Add("ratios", strings.Join(s.Ratios, ","))
	}
	if s.Page > 0 {
		v.Add("page", strconv.FormatInt(s.Page, 10))
	}
	return v
}

// URL returns the search endpoint URL for the search
func (s Search) URL() string {
	return baseURL + "/search?" + s.Values().Encode()
}

const baseURL = "https://wallhaven.cc/api/v1"

// Purity strings for SFW|Sketchy|NSFW
const (
	puritySFW = "100"
	purityAll = "111"
)

// Ratio is a named wallhaven aspect ratio
type Ratio struct {
	Horizontal int
	Vertical   int
}

func (r Ratio) String() string {
	return fmt.Sprintf("%dx%d", r.Horizontal, r.Vertical)
}

// Value returns the ratio as a real number
func (r Ratio) Value() float64 {
	return float64(r.Horizontal) / float64(r.Vertical)
}

// KnownRatios are the ratios wallhaven lets a search select
var KnownRatios = []Ratio{
	{9, 18}, {10, 16}, {9, 16}, {1, 1}, {3, 2}, {4, 3}, {5, 4},
	{16, 10}, {16, 9}, {21, 9}, {32, 9}, {48, 9},
}

// RatiosFor returns the known ratios an image shaped like them could pass
// the rule with
func RatiosFor(rule filter.Rule) []string {
	var out []string
	for _, r := range KnownRatios {
		ar := r.Value()
		if ar <= rule.PortraitThreshold || ar < rule.AspectRatioMin || ar > rule.AspectRatioMax {
			continue
		}
		out = append(out, r.String())
	}
	return out
}

// SearchFromRule builds a search whose server side filters approximate rule
func SearchFromRule(rule filter.Rule, tags []string) *Search {
	s := &Search{
		Query:    Q{Tags: tags},
		Purities: puritySFW,
		Ratios:   RatiosFor(rule),
	}
	if rule.AllowExplicit {
		s.Purities = purityAll
	}
	if rule.MinWidth > 0 && rule.MinHeight > 0 {
		s.AtLeast = fmt.Sprintf("%dx%d", rule.MinWidth, rule.MinHeight)
	}
	return s
}
