package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/storefind"
	"github.com/fwojciec/storefind/display"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	catalog, err := deps.LoadCatalog(c.Catalog)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", storefind.ErrorMessage(err))
		return err
	}

	state, err := interpret(deps, c.Utterance, c.Mode, c.Category, c.Sort)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", storefind.ErrorMessage(err))
		return err
	}

	surface := newSurface(deps, catalog)
	if !surface.Apply(state) {
		return storefind.Errorf(storefind.EINTERNAL, "filter went stale before it could be applied")
	}
	for range c.More {
		surface.LoadMore()
	}

	printPage(deps.Stdout, surface.Page())
	return nil
}

func newSurface(deps *Dependencies, catalog storefind.ProductFilterer) *display.Surface {
	surface := display.NewSurface(catalog)
	if deps.Window > 0 {
		surface.Window = deps.Window
	}
	return surface
}

func printPage(w io.Writer, page display.Page) {
	fmt.Fprintf(w, "%s / %s / %q: showing %d of %d\n",
		page.State.Category, page.State.SortBy, page.State.Query, len(page.Products), page.Total)

	if page.Total == 0 {
		fmt.Fprintln(w, "  No products match.")
		return
	}

	for _, p := range page.Products {
		fmt.Fprintf(w, "  %-10s %-32s %-12s %9.2f  %.1f (%d)\n",
			p.ID, p.Name, p.Category, p.Price, p.Rating, p.ReviewCount)
	}

	if page.HasMore {
		fmt.Fprintln(w, "  ...")
	}
}
