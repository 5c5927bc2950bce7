package harness

import (
	"git.asdf.cafe/abs3nt/wallfilter/filter"
)

// Result is the outcome of one case
type Result struct {
	Case        Case
	AspectRatio float64
	Got         bool
}

// Passed reports whether the predicate agreed with the expected verdict
func (r Result) Passed() bool {
	return r.Got == r.Case.Expected
}

// GroupResult collects the results of one group
type GroupResult struct {
	Group   Group
	Results []Result
}

// Passed counts the passing cases
func (g GroupResult) Passed() int {
	n := 0
	for _, r := range g.Results {
		if r.Passed() {
			n++
		}
	}
	return n
}

// Total counts the cases
func (g GroupResult) Total() int {
	return len(g.Results)
}

// Evaluator decides a single image against a rule
type Evaluator func(rule filter.Rule, img filter.Image) bool

// Run evaluates every case of every group; a nil eval uses filter.Accepts
func Run(groups []Group, eval Evaluator) []GroupResult {
	if eval == nil {
		eval = filter.Accepts
	}

	out := make([]GroupResult, 0, len(groups))
	for _, g := range groups {
		gr := GroupResult{Group: g, Results: make([]Result, 0, len(g.Cases))}
		for _, c := range g.Cases {
			gr.Results = append(gr.Results, Result{
				Case:        c,
				AspectRatio: c.Image.AspectRatio(),
				Got:         eval(g.Rule, c.Image),
			})
		}
		out = append(out, gr)
	}
	return out
}

// Totals sums passed and total cases across groups
func Totals(results []GroupResult) (passed, total int) {
	for _, g := range results {
		passed += g.Passed()
		total += g.Total()
	}
	return passed, total
}
