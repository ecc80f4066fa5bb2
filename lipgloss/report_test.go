package lipgloss_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fwojciec/linkscan"
	"github.com/fwojciec/linkscan/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *linkscan.Report {
	return &linkscan.Report{
		Files: 2,
		Results: []linkscan.Result{
			{
				Link:    linkscan.RawLink{Source: "README.md", Target: "https://example.com", Line: 3, Column: 7},
				Outcome: linkscan.OK(),
			},
			{
				Link:    linkscan.RawLink{Source: "README.md", Target: "ftp://example.com", Line: 4, Column: 1},
				Outcome: linkscan.NotImplemented("Checking of link type 'Ftp' is not implemented (yet)."),
			},
			{
				Link:    linkscan.RawLink{Source: "docs/a.md", Target: "missing.md", Line: 10, Column: 2},
				Outcome: linkscan.Fail("target file not found"),
			},
			{
				Link:    linkscan.RawLink{Source: "docs/b.html", Target: "https://example.org"},
				Outcome: linkscan.Ignore("Ignore web link because of the offline flag."),
			},
		},
	}
}

func TestReportWriter_WriteReport(t *testing.T) {
	t.Parallel()

	t.Run("writes every result and summary", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		err := lipgloss.NewReportWriter(&buf).WriteReport(sampleReport())

		require.NoError(t, err)
		assert.Equal(t, ""+
			"[OK] README.md:3:7 => https://example.com\n"+
			"[Warn] README.md:4:1 => ftp://example.com - Checking of link type 'Ftp' is not implemented (yet).\n"+
			"[Err] docs/a.md:10:2 => missing.md - target file not found\n"+
			"[Skip] docs/b.html => https://example.org - Ignore web link because of the offline flag.\n"+
			"\n"+
			"The following links could not be resolved:\n"+
			"[Err] docs/a.md:10:2 => missing.md - target file not found\n"+
			"\n"+
			"Result (4 links): OK 1, Skipped 1, Warnings 1, Errors 1\n",
			buf.String())
	})

	t.Run("quiet mode writes issues only", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		err := lipgloss.NewReportWriter(&buf, lipgloss.WithQuiet(true)).WriteReport(sampleReport())

		require.NoError(t, err)
		out := buf.String()
		assert.NotContains(t, out, "[OK]")
		assert.NotContains(t, out, "[Skip]")
		assert.Contains(t, out, "[Warn] README.md:4:1")
		assert.Contains(t, out, "Result (4 links): OK 1, Skipped 1, Warnings 1, Errors 1")
	})

	t.Run("empty report", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer

		err := lipgloss.NewReportWriter(&buf).WriteReport(&linkscan.Report{})

		require.NoError(t, err)
		assert.Equal(t, "\nResult (0 links): OK 0, Skipped 0, Warnings 0, Errors 0\n", buf.String())
	})

	t.Run("returns write errors", func(t *testing.T) {
		t.Parallel()

		err := lipgloss.NewReportWriter(failingWriter{}).WriteReport(sampleReport())

		assert.Error(t, err)
	})
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}
