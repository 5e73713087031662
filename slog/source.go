// Package slog provides logging decorators for rsdoc interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rsdoc"
)

// Ensure LoggingSource implements rsdoc.Source.
var _ rsdoc.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source with timing and outcome logging.
type LoggingSource struct {
	next   rsdoc.Source
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next rsdoc.Source, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Open delegates to the wrapped source and logs the crate, base
// location, duration, and error code of the attempt.
func (s *LoggingSource) Open(ctx context.Context, crate string) (string, string, error) {
	begin := time.Now()
	html, base, err := s.next.Open(ctx, crate)

	if err != nil {
		s.logger.Error("open index page",
			"crate", crate,
			"code", rsdoc.ErrorCode(err),
			"error", rsdoc.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return html, base, err
	}

	s.logger.Info("open index page",
		"crate", crate,
		"base", base,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, base, nil
}
