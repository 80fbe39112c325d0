// Package slog provides logging decorators for notestrip interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/notestrip"
)

// Ensure LoggingFilter implements notestrip.Filter.
var _ notestrip.Filter = (*LoggingFilter)(nil)

// LoggingFilter wraps a Filter with per-call logging.
type LoggingFilter struct {
	next   notestrip.Filter
	logger *slog.Logger
}

// NewLoggingFilter creates a new LoggingFilter.
func NewLoggingFilter(next notestrip.Filter, logger *slog.Logger) *LoggingFilter {
	return &LoggingFilter{next: next, logger: logger}
}

// Filter delegates to the wrapped filter and logs the outcome.
func (f *LoggingFilter) Filter(html string) (string, int, error) {
	begin := time.Now()
	filtered, removed, err := f.next.Filter(html)
	if err != nil {
		f.logger.Error("hidden section filter failed",
			"error", err,
			"duration", time.Since(begin),
		)
		return "", 0, err
	}
	f.logger.Info("hidden section filter",
		"removed", removed,
		"input_bytes", len(html),
		"output_bytes", len(filtered),
		"duration", time.Since(begin),
	)
	return filtered, removed, nil
}
