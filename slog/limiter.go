package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkscan"
)

// Ensure LoggingLimiter implements linkscan.HostLimiter.
var _ linkscan.HostLimiter = (*LoggingLimiter)(nil)

// LoggingLimiter wraps a HostLimiter and logs how long each request waited.
type LoggingLimiter struct {
	next   linkscan.HostLimiter
	logger *slog.Logger
}

// NewLoggingLimiter creates a new LoggingLimiter.
func NewLoggingLimiter(next linkscan.HostLimiter, logger *slog.Logger) *LoggingLimiter {
	return &LoggingLimiter{next: next, logger: logger}
}

// Wait delegates to the wrapped limiter and logs the wait.
func (l *LoggingLimiter) Wait(ctx context.Context, host string) (err error) {
	defer func(begin time.Time) {
		l.logger.Debug("throttle",
			"host", host,
			"waited", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Wait(ctx, host)
}
