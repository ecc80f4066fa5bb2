package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/linkscan"
)

// Ensure LoggingExtractor implements linkscan.LinkExtractor.
var _ linkscan.LinkExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a LinkExtractor with debug logging.
type LoggingExtractor struct {
	next   linkscan.LinkExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next linkscan.LinkExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractLinks delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) ExtractLinks(source string, content []byte) (links []linkscan.RawLink, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract links",
			"source", source,
			"bytes", len(content),
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractLinks(source, content)
}
