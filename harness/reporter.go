package harness

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"git.asdf.cafe/abs3nt/wallfilter/constants"
)

// Reporter prints harness results to a console
type Reporter struct {
	out     io.Writer
	pass    func(a ...interface{}) string
	fail    func(a ...interface{}) string
	heading func(a ...interface{}) string
}

// NewReporter creates a reporter writing to out. With colour off the
// markers are printed as plain text.
func NewReporter(out io.Writer, colour bool) *Reporter {
	r := &Reporter{
		out:     out,
		pass:    fmt.Sprint,
		fail:    fmt.Sprint,
		heading: fmt.Sprint,
	}
	if colour {
		r.pass = color.New(color.FgGreen).SprintFunc()
		r.fail = color.New(color.FgRed, color.Bold).SprintFunc()
		r.heading = color.New(color.FgCyan).SprintFunc()
	}
	return r
}

// Report writes every group followed by an overall banner
func (r *Reporter) Report(title string, results []GroupResult) error {
	rule := strings.Repeat("=", constants.BannerWidth)

	if _, err := fmt.Fprintf(r.out, "%s\n%s\n%s\n", rule, title, rule); err != nil {
		return err
	}

	for i, g := range results {
		if err := r.ReportGroup(i+1, g); err != nil {
			return err
		}
	}

	passed, total := Totals(results)
	_, err := fmt.Fprintf(r.out, "\n%s\nAll Filter Tests Complete! %d/%d passed\n%s\n", rule, passed, total, rule)
	return err
}

// ReportGroup writes one group's case lines and its summary
func (r *Reporter) ReportGroup(n int, g GroupResult) error {
	if _, err := fmt.Fprintf(r.out, "\n%s\n", r.heading(fmt.Sprintf("[TEST %d] %s", n, g.Group.Title))); err != nil {
		return err
	}

	for _, res := range g.Results {
		if _, err := fmt.Fprintln(r.out, r.caseLine(res)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(r.out, "\n  Result: %d/%d tests passed\n", g.Passed(), g.Total())
	return err
}

func (r *Reporter) caseLine(res Result) string {
	marker := r.pass(constants.MarkerPass)
	if !res.Passed() {
		marker = r.fail(constants.MarkerFail)
	}
	return fmt.Sprintf("  %s: %s - AR=%.2f, Got=%t, Expected=%t",
		marker, res.Case.Name, res.AspectRatio, res.Got, res.Case.Expected)
}
