// Package slog provides logging decorators for linkscan services using
// log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkscan"
)

// Ensure LoggingValidator implements linkscan.Validator.
var _ linkscan.Validator = (*LoggingValidator)(nil)

// LoggingValidator wraps a Validator with debug logging.
type LoggingValidator struct {
	next   linkscan.Validator
	kind   linkscan.LinkKind
	logger *slog.Logger
}

// NewLoggingValidator creates a new LoggingValidator for links of kind.
func NewLoggingValidator(next linkscan.Validator, kind linkscan.LinkKind, logger *slog.Logger) *LoggingValidator {
	return &LoggingValidator{next: next, kind: kind, logger: logger}
}

// Validate delegates to the wrapped validator and logs the outcome.
func (v *LoggingValidator) Validate(ctx context.Context, target string) (outcome linkscan.Outcome) {
	defer func(begin time.Time) {
		v.logger.Debug("validate",
			"kind", v.kind.String(),
			"target", target,
			"severity", outcome.Severity.String(),
			"message", outcome.Message,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return v.next.Validate(ctx, target)
}
