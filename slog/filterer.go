package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/storefind"
)

var _ storefind.ProductFilterer = (*LoggingFilterer)(nil)

// LoggingFilterer wraps a ProductFilterer with logging of match counts.
type LoggingFilterer struct {
	next   storefind.ProductFilterer
	logger *slog.Logger
}

// NewLoggingFilterer creates a new LoggingFilterer.
func NewLoggingFilterer(next storefind.ProductFilterer, logger *slog.Logger) *LoggingFilterer {
	return &LoggingFilterer{next: next, logger: logger}
}

// FilterProducts delegates to the wrapped filterer and logs the match count.
func (f *LoggingFilterer) FilterProducts(state storefind.FilterState) []*storefind.Product {
	begin := time.Now()
	products := f.next.FilterProducts(state)
	f.logger.Debug("filter",
		"category", state.Category,
		"sort", string(state.SortBy),
		"query", state.Query,
		"matched", len(products),
		"duration", time.Since(begin),
	)
	return products
}
