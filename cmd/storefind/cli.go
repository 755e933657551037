package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/storefind"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Vocabulary  *storefind.Vocabulary
	Interpreter storefind.QueryInterpreter
	LoadCatalog func(path string) (storefind.ProductFilterer, error)

	// Window is the staleness window applied by display surfaces.
	Window time.Duration
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Vocabulary string        `type:"path" env:"STOREFIND_VOCABULARY" help:"Vocabulary YAML file (defaults to the built-in vocabulary)"`
	Stale      time.Duration `default:"5s" help:"Staleness window for published filters"`
	Debug      bool          `help:"Log interpretation and filtering to stderr"`

	Interpret InterpretCmd `cmd:"" help:"Interpret an utterance and print the resulting filter"`
	Search    SearchCmd    `cmd:"" help:"Interpret an utterance and list matching products"`
	Session   SessionCmd   `cmd:"" help:"Read say/type/tile/more events from stdin and show the catalog"`
	Vocab     VocabCmd     `cmd:"" help:"Validate and print the vocabulary"`
}

// InterpretCmd is the "interpret" subcommand.
type InterpretCmd struct {
	Utterance string `arg:"" optional:"" help:"Utterance to interpret"`
	Mode      string `short:"m" enum:"full,light" default:"full" help:"Interpretation mode (full, light)"`
	Category  string `short:"c" default:"All" help:"Current category used when the utterance names none"`
	Sort      string `short:"s" enum:"default,price-asc,price-desc,rating-desc" default:"default" help:"Current sort mode used when the utterance names none"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Utterance string `arg:"" optional:"" help:"Utterance to interpret"`
	Catalog   string `type:"path" required:"" env:"STOREFIND_CATALOG" help:"Catalog YAML file"`
	Mode      string `short:"m" enum:"full,light" default:"full" help:"Interpretation mode (full, light)"`
	Category  string `short:"c" default:"All" help:"Current category used when the utterance names none"`
	Sort      string `short:"s" enum:"default,price-asc,price-desc,rating-desc" default:"default" help:"Current sort mode used when the utterance names none"`
	More      int    `default:"0" help:"Number of times to load more products"`
}

// SessionCmd is the "session" subcommand.
type SessionCmd struct {
	Catalog string `type:"path" required:"" env:"STOREFIND_CATALOG" help:"Catalog YAML file"`
}

// VocabCmd is the "vocab" subcommand.
type VocabCmd struct{}
