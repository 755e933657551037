package slog

import (
	"log/slog"

	"github.com/fwojciec/storefind"
)

var _ storefind.FilterPublisher = (*LoggingPublisher)(nil)

// LoggingPublisher wraps a FilterPublisher with logging of published states.
type LoggingPublisher struct {
	next   storefind.FilterPublisher
	logger *slog.Logger
}

// NewLoggingPublisher creates a new LoggingPublisher.
func NewLoggingPublisher(next storefind.FilterPublisher, logger *slog.Logger) *LoggingPublisher {
	return &LoggingPublisher{next: next, logger: logger}
}

// Publish logs the state and delegates to the wrapped publisher.
func (p *LoggingPublisher) Publish(state storefind.FilterState) {
	p.logger.Debug("publish",
		"category", state.Category,
		"sort", string(state.SortBy),
		"query", state.Query,
		"issued_at", state.IssuedAt,
	)
	p.next.Publish(state)
}
