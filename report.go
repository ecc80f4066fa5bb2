package linkscan

import (
	"cmp"
	"slices"
)

// Result is the outcome of checking one link occurrence.
type Result struct {
	Link    RawLink
	Kind    LinkKind
	Target  string // resolved target (absolute path for filesystem links)
	Outcome Outcome
}

// Report collects every result of a run.
type Report struct {
	RunID   string
	Files   int
	Results []Result
}

// Sort orders results by source file, position and target.
// Completion order of concurrent checks is not reproducible, this is.
func (r *Report) Sort() {
	slices.SortStableFunc(r.Results, func(a, b Result) int {
		return cmp.Or(
			cmp.Compare(a.Link.Source, b.Link.Source),
			cmp.Compare(a.Link.Line, b.Link.Line),
			cmp.Compare(a.Link.Column, b.Link.Column),
			cmp.Compare(a.Link.Target, b.Link.Target),
		)
	})
}

// Counts returns the number of results per severity.
func (r *Report) Counts() map[Severity]int {
	counts := make(map[Severity]int, len(AllSeverities()))
	for _, res := range r.Results {
		counts[res.Outcome.Severity]++
	}
	return counts
}

// Failures returns the failed results.
func (r *Report) Failures() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Outcome.IsFailure() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err returns an EFAILED error if any result failed, and nil otherwise.
func (r *Report) Err() error {
	if n := len(r.Failures()); n > 0 {
		return Errorf(EFAILED, "%d of %d links failed", n, len(r.Results))
	}
	return nil
}

// ReportWriter renders a report for humans.
type ReportWriter interface {
	WriteReport(report *Report) error
}
