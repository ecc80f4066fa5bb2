// Package lipgloss renders check reports for the console, coloring severity
// labels with github.com/charmbracelet/lipgloss when the output is a terminal.
package lipgloss

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/linkscan"
)

// Ensure ReportWriter implements linkscan.ReportWriter at compile time.
var _ linkscan.ReportWriter = (*ReportWriter)(nil)

// Label colors.
var (
	colorOK   = lipgloss.Color("2")
	colorWarn = lipgloss.Color("3")
	colorErr  = lipgloss.Color("1")
)

// ReportWriter prints one line per result followed by a summary.
type ReportWriter struct {
	w     io.Writer
	quiet bool

	ok   lipgloss.Style
	warn lipgloss.Style
	err  lipgloss.Style
	bold lipgloss.Style
}

// Option configures a ReportWriter.
type Option func(*ReportWriter)

// WithQuiet limits output to results with issues and the summary.
func WithQuiet(quiet bool) Option {
	return func(rw *ReportWriter) {
		rw.quiet = quiet
	}
}

// NewReportWriter creates a ReportWriter for w. Colors are used only if w is
// a terminal that supports them.
func NewReportWriter(w io.Writer, opts ...Option) *ReportWriter {
	r := lipgloss.NewRenderer(w)
	rw := &ReportWriter{
		w:    w,
		ok:   r.NewStyle().Foreground(colorOK),
		warn: r.NewStyle().Foreground(colorWarn),
		err:  r.NewStyle().Foreground(colorErr),
		bold: r.NewStyle().Bold(true),
	}
	for _, opt := range opts {
		opt(rw)
	}
	return rw
}

// WriteReport writes the report. Results are expected to be sorted.
func (rw *ReportWriter) WriteReport(report *linkscan.Report) error {
	var b strings.Builder

	for _, res := range report.Results {
		if rw.quiet && !res.Outcome.HasIssue() {
			continue
		}
		rw.writeResult(&b, res)
	}

	if failures := report.Failures(); len(failures) > 0 {
		b.WriteString("\n")
		b.WriteString(rw.bold.Render("The following links could not be resolved:"))
		b.WriteString("\n")
		for _, res := range failures {
			rw.writeResult(&b, res)
		}
	}

	counts := report.Counts()
	fmt.Fprintf(&b, "\nResult (%d links): OK %d, Skipped %d, Warnings %d, Errors %d\n",
		len(report.Results),
		counts[linkscan.SeverityOK],
		counts[linkscan.SeverityIgnored],
		counts[linkscan.SeverityWarning]+counts[linkscan.SeverityNotImplemented],
		counts[linkscan.SeverityFailed],
	)

	_, err := io.WriteString(rw.w, b.String())
	return err
}

func (rw *ReportWriter) writeResult(b *strings.Builder, res linkscan.Result) {
	fmt.Fprintf(b, "[%s] %s => %s", rw.label(res.Outcome), position(res.Link), res.Link.Target)
	if res.Outcome.Message != "" {
		b.WriteString(" - ")
		b.WriteString(res.Outcome.Message)
	}
	b.WriteString("\n")
}

func (rw *ReportWriter) label(o linkscan.Outcome) string {
	label := o.Label()
	switch o.Severity {
	case linkscan.SeverityOK, linkscan.SeverityIgnored:
		return rw.ok.Render(label)
	case linkscan.SeverityWarning, linkscan.SeverityNotImplemented:
		return rw.warn.Render(label)
	case linkscan.SeverityFailed:
		return rw.err.Render(label)
	}
	return label
}

// position formats "file:line:col", or just the file when the position is
// unknown.
func position(link linkscan.RawLink) string {
	if link.Line == 0 {
		return link.Source
	}
	return fmt.Sprintf("%s:%d:%d", link.Source, link.Line, link.Column)
}
