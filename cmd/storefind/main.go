package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/storefind"
	"github.com/fwojciec/storefind/cache"
	sfslog "github.com/fwojciec/storefind/slog"
	"github.com/fwojciec/storefind/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Input for the session command. Set before calling Run().
	Stdin io.Reader

	// Interpreter compiled from the active vocabulary, for end-to-end testing.
	Interpreter *storefind.Interpreter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("storefind"),
		kong.Description("Interpret shopping utterances and filter a product catalog."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'storefind --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	vocab := storefind.DefaultVocabulary()
	if cli.Vocabulary != "" {
		vocab, err = yaml.LoadVocabularyFile(cli.Vocabulary)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Set STOREFIND_VOCABULARY to use a different vocabulary file")
			return fmt.Errorf("failed to load vocabulary: %w", err)
		}
	}

	m.Interpreter, err = storefind.NewInterpreter(vocab)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", storefind.ErrorMessage(err))
		return err
	}

	deps.Logger = logger
	deps.Vocabulary = vocab
	deps.Interpreter = sfslog.NewLoggingInterpreter(m.Interpreter, logger)
	deps.Window = cli.Stale
	deps.LoadCatalog = func(path string) (storefind.ProductFilterer, error) {
		products, err := yaml.LoadCatalogFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("catalog loaded", "path", path, "products", len(products))
		return sfslog.NewLoggingFilterer(cache.NewFilterer(storefind.NewCatalog(products)), logger), nil
	}

	return kongCtx.Run(deps)
}
