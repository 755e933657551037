// Package slog provides logging decorators for storefind services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/storefind"
)

// Ensure LoggingInterpreter implements storefind.QueryInterpreter.
var _ storefind.QueryInterpreter = (*LoggingInterpreter)(nil)

// LoggingInterpreter wraps a QueryInterpreter with logging of every produced state.
type LoggingInterpreter struct {
	next   storefind.QueryInterpreter
	logger *slog.Logger
}

// NewLoggingInterpreter creates a new LoggingInterpreter.
func NewLoggingInterpreter(next storefind.QueryInterpreter, logger *slog.Logger) *LoggingInterpreter {
	return &LoggingInterpreter{next: next, logger: logger}
}

// Interpret delegates to the wrapped interpreter and logs the resulting state.
func (i *LoggingInterpreter) Interpret(utterance string, mode storefind.InterpretMode, current storefind.Selection) storefind.FilterState {
	begin := time.Now()
	state := i.next.Interpret(utterance, mode, current)
	i.logger.Debug("interpret",
		"mode", string(mode),
		"utterance", utterance,
		"category", state.Category,
		"sort", string(state.SortBy),
		"query", state.Query,
		"duration", time.Since(begin),
	)
	return state
}

// Select delegates to the wrapped interpreter and logs the selection.
func (i *LoggingInterpreter) Select(category string, sortBy storefind.SortMode) (storefind.FilterState, error) {
	state, err := i.next.Select(category, sortBy)
	if err != nil {
		i.logger.Debug("select",
			"category", category,
			"sort", string(sortBy),
			"err", err,
		)
		return state, err
	}
	i.logger.Debug("select",
		"category", state.Category,
		"sort", string(state.SortBy),
	)
	return state, nil
}
