package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/storefind"
	"github.com/fwojciec/storefind/broadcast"
	"github.com/fwojciec/storefind/display"
	sfslog "github.com/fwojciec/storefind/slog"
	"golang.org/x/sync/errgroup"
)

// Run executes the session command. Input lines are producer events:
//
//	say <text>               spoken utterance, full interpretation
//	type <text>              typed search text, light interpretation
//	tile <category> [sort]   explicit category tile selection
//	more                     load the next page
//
// Blank lines and lines starting with # are ignored. The display runs in
// its own goroutine and prints a page whenever its filter or window changes.
func (c *SessionCmd) Run(deps *Dependencies) error {
	catalog, err := deps.LoadCatalog(c.Catalog)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", storefind.ErrorMessage(err))
		return err
	}

	hub := broadcast.NewHub()
	defer hub.Close()

	surface := newSurface(deps, catalog)
	sub := hub.Subscribe()
	more := make(chan struct{})

	s := &session{
		interpreter: deps.Interpreter,
		publisher:   sfslog.NewLoggingPublisher(hub, deps.Logger),
		hub:         hub,
		surface:     surface,
		more:        more,
		stderr:      deps.Stderr,
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		return surface.Listen(ctx, sub.C(), more, func(p display.Page) {
			printPage(deps.Stdout, p)
		})
	})
	g.Go(func() error {
		defer hub.Close()
		return s.read(ctx, deps.Stdin)
	})
	return g.Wait()
}

// session is the producer side of the session command.
type session struct {
	interpreter storefind.QueryInterpreter
	publisher   storefind.FilterPublisher
	hub         *broadcast.Hub
	surface     *display.Surface
	more        chan<- struct{}
	stderr      io.Writer
}

func (s *session) read(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := s.handle(ctx, line); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(s.stderr, "error: %s\n", storefind.ErrorMessage(err))
		}
	}
	return scanner.Err()
}

func (s *session) handle(ctx context.Context, line string) error {
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(verb) {
	case "say":
		s.publisher.Publish(s.interpreter.Interpret(rest, storefind.ModeFull, s.current()))
	case "type":
		s.publisher.Publish(s.interpreter.Interpret(rest, storefind.ModeLight, s.current()))
	case "tile":
		fields := strings.Fields(rest)
		if len(fields) == 0 || len(fields) > 2 {
			return storefind.Errorf(storefind.EINVALID, "usage: tile <category> [sort]")
		}
		sortBy := s.current().SortBy
		if len(fields) == 2 {
			var err error
			if sortBy, err = storefind.ParseSortMode(fields[1]); err != nil {
				return err
			}
		}
		state, err := s.interpreter.Select(fields[0], sortBy)
		if err != nil {
			return err
		}
		s.publisher.Publish(state)
	case "more":
		// The display applies anything published before this request first.
		select {
		case s.more <- struct{}{}:
		case <-ctx.Done():
			return ctx.Err()
		}
	default:
		return storefind.Errorf(storefind.EINVALID, "unknown event %q", verb)
	}
	return nil
}

// current returns the sticky selection for the next event: the last
// published filter, or the display's active filter before any publish.
func (s *session) current() storefind.Selection {
	if last, ok := s.hub.Last(); ok {
		return last.Selection()
	}
	return s.surface.Selection()
}
