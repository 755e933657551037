package mock

import "github.com/fwojciec/storefind"

var _ storefind.QueryInterpreter = (*QueryInterpreter)(nil)

// QueryInterpreter is a mock implementation of storefind.QueryInterpreter.
type QueryInterpreter struct {
	InterpretFn func(utterance string, mode storefind.InterpretMode, current storefind.Selection) storefind.FilterState
	SelectFn    func(category string, sortBy storefind.SortMode) (storefind.FilterState, error)
}

func (i *QueryInterpreter) Interpret(utterance string, mode storefind.InterpretMode, current storefind.Selection) storefind.FilterState {
	return i.InterpretFn(utterance, mode, current)
}

func (i *QueryInterpreter) Select(category string, sortBy storefind.SortMode) (storefind.FilterState, error) {
	return i.SelectFn(category, sortBy)
}
