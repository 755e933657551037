// Package display implements a catalog display surface that consumes
// FilterStates and exposes a windowed page of matching products.
package display

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/storefind"
)

// DefaultPageSize is the initial number of visible products and the
// increment added by LoadMore.
const DefaultPageSize = 12

// Page is the visible window of a filtered catalog.
type Page struct {
	State    storefind.FilterState
	Products []*storefind.Product
	Total    int
	HasMore  bool
}

// Surface is a consumer of FilterStates. It gates every state for
// freshness when it is applied, not when it was produced, and keeps the
// previously active state when a stale one arrives.
// It is safe for concurrent use.
type Surface struct {
	catalog storefind.ProductFilterer

	// Window is the staleness window. Defaults to storefind.DefaultStalenessWindow.
	Window time.Duration

	// PageSize is the initial window and the LoadMore increment.
	// Defaults to DefaultPageSize.
	PageSize int

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	mu     sync.Mutex
	active storefind.FilterState
	pages  int
}

// NewSurface creates a Surface over catalog showing every product in
// catalog order.
func NewSurface(catalog storefind.ProductFilterer) *Surface {
	return &Surface{
		catalog:  catalog,
		Window:   storefind.DefaultStalenessWindow,
		PageSize: DefaultPageSize,
		Now:      time.Now,
		active:   storefind.FilterState{Category: storefind.CategoryAll, SortBy: storefind.SortDefault},
		pages:    1,
	}
}

// Apply makes state the active state if it is fresh. It reports whether
// the state was applied. The visible window resets to the page size when
// the category, query or sort mode changes.
func (s *Surface) Apply(state storefind.FilterState) bool {
	if !state.FreshAt(s.Now(), s.Window) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !state.SameFilter(s.active) {
		s.pages = 1
	}
	s.active = state
	return true
}

// Active returns the active state.
func (s *Surface) Active() storefind.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Selection returns the active category and sort mode, for use as the
// sticky fallback of the next interpretation.
func (s *Surface) Selection() storefind.Selection {
	return s.Active().Selection()
}

// LoadMore grows the visible window by one page.
func (s *Surface) LoadMore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages++
}

// Page filters the catalog with the active state and returns the visible window.
func (s *Surface) Page() Page {
	s.mu.Lock()
	state, visible := s.active, s.pages*s.pageSize()
	s.mu.Unlock()

	products := s.catalog.FilterProducts(state)
	n := min(visible, len(products))
	return Page{
		State:    state,
		Products: products[:n:n],
		Total:    len(products),
		HasMore:  n < len(products),
	}
}

func (s *Surface) pageSize() int {
	if s.PageSize <= 0 {
		return DefaultPageSize
	}
	return s.PageSize
}

// Listen applies states received from states until the channel is closed
// or ctx is done. Every value received from more grows the visible window
// by one page, after any state already pending on states has been applied,
// so a load-more request never lands on the filter it was meant to follow.
// A nil more channel never fires. After each change onChange, if not nil,
// receives the new page. Stale states are dropped silently.
func (s *Surface) Listen(ctx context.Context, states <-chan storefind.FilterState, more <-chan struct{}, onChange func(Page)) error {
	notify := func() {
		if onChange != nil {
			onChange(s.Page())
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case state, ok := <-states:
			if !ok {
				return nil
			}
			if s.Apply(state) {
				notify()
			}
		case _, ok := <-more:
			if !ok {
				more = nil
				continue
			}
			closed := false
			select {
			case state, ok := <-states:
				if !ok {
					closed = true
				} else if s.Apply(state) {
					notify()
				}
			default:
			}
			s.LoadMore()
			notify()
			if closed {
				return nil
			}
		}
	}
}
