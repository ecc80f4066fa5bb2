package linkscan

import "context"

// Severity ranks the result of a single link check.
// Only SeverityFailed marks the run as failed.
type Severity int

// Severities in increasing order of concern.
const (
	SeverityOK Severity = iota
	SeverityIgnored
	SeverityNotImplemented
	SeverityWarning
	SeverityFailed
)

// AllSeverities returns every Severity in ascending order.
func AllSeverities() []Severity {
	return []Severity{SeverityOK, SeverityIgnored, SeverityNotImplemented, SeverityWarning, SeverityFailed}
}

func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "ok"
	case SeverityIgnored:
		return "ignored"
	case SeverityNotImplemented:
		return "not_implemented"
	case SeverityWarning:
		return "warning"
	case SeverityFailed:
		return "failed"
	}
	return "unknown"
}

// ParseSeverity is the inverse of Severity.String.
func ParseSeverity(s string) (Severity, error) {
	for _, sev := range AllSeverities() {
		if sev.String() == s {
			return sev, nil
		}
	}
	return 0, Errorf(EINVALID, "unknown severity %q", s)
}

// Outcome is the immutable result of checking one link.
type Outcome struct {
	Severity Severity
	Message  string
}

// OK returns a successful outcome.
func OK() Outcome { return Outcome{Severity: SeverityOK} }

// Warn returns a warning outcome.
func Warn(msg string) Outcome { return Outcome{Severity: SeverityWarning, Message: msg} }

// Fail returns a failed outcome.
func Fail(msg string) Outcome { return Outcome{Severity: SeverityFailed, Message: msg} }

// Ignore returns an ignored outcome.
func Ignore(msg string) Outcome { return Outcome{Severity: SeverityIgnored, Message: msg} }

// NotImplemented returns an outcome for link kinds that cannot be checked.
func NotImplemented(msg string) Outcome {
	return Outcome{Severity: SeverityNotImplemented, Message: msg}
}

// IsFailure reports whether the outcome fails the run.
func (o Outcome) IsFailure() bool {
	return o.Severity == SeverityFailed
}

// HasIssue reports whether the outcome deserves the reader's attention.
func (o Outcome) HasIssue() bool {
	switch o.Severity {
	case SeverityFailed, SeverityWarning, SeverityNotImplemented:
		return true
	case SeverityOK, SeverityIgnored:
		return false
	}
	return true
}

// Label returns the short status label printed in reports.
func (o Outcome) Label() string {
	switch o.Severity {
	case SeverityOK:
		return "OK"
	case SeverityIgnored:
		return "Skip"
	case SeverityNotImplemented, SeverityWarning:
		return "Warn"
	case SeverityFailed:
		return "Err"
	}
	return "????"
}

// Validator checks a single link target of one kind.
// Validation problems are reported as outcomes, never as errors.
type Validator interface {
	Validate(ctx context.Context, target string) Outcome
}

// HostLimiter delays requests so that a single host is not overwhelmed.
type HostLimiter interface {
	// Wait blocks until a request to host may be dispatched.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}

// OutcomeCache stores HTTP outcomes across runs.
type OutcomeCache interface {
	// FindOutcome returns the cached outcome for url, if a fresh one exists.
	FindOutcome(ctx context.Context, url string) (Outcome, bool, error)

	// SaveOutcome stores the outcome for url.
	SaveOutcome(ctx context.Context, url string, outcome Outcome) error
}
