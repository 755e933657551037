package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/storefind"
)

// Run executes the interpret command.
func (c *InterpretCmd) Run(deps *Dependencies) error {
	state, err := interpret(deps, c.Utterance, c.Mode, c.Category, c.Sort)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", storefind.ErrorMessage(err))
		return err
	}

	printState(deps.Stdout, state)
	return nil
}

// interpret parses the command-line mode and sticky selection and runs
// the interpreter on utterance.
func interpret(deps *Dependencies, utterance, mode, category, sort string) (storefind.FilterState, error) {
	m, err := storefind.ParseInterpretMode(mode)
	if err != nil {
		return storefind.FilterState{}, err
	}
	sortBy, err := storefind.ParseSortMode(sort)
	if err != nil {
		return storefind.FilterState{}, err
	}

	current := storefind.Selection{Category: category, SortBy: sortBy}
	return deps.Interpreter.Interpret(utterance, m, current), nil
}

func printState(w io.Writer, state storefind.FilterState) {
	fmt.Fprintf(w, "category: %s\n", state.Category)
	fmt.Fprintf(w, "sort:     %s\n", state.SortBy)
	fmt.Fprintf(w, "query:    %q\n", state.Query)
}
