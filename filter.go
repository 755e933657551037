package storefind

import "time"

// CategoryAll is the category that matches every product.
const CategoryAll = "All"

// SortMode represents the ordering applied to filtered products.
type SortMode string

// SortMode constants for FilterState.
const (
	SortDefault    SortMode = "default"
	SortPriceAsc   SortMode = "price-asc"
	SortPriceDesc  SortMode = "price-desc"
	SortRatingDesc SortMode = "rating-desc"
)

// Valid reports whether m is one of the enumerated sort modes.
func (m SortMode) Valid() bool {
	switch m {
	case SortDefault, SortPriceAsc, SortPriceDesc, SortRatingDesc:
		return true
	}
	return false
}

// ParseSortMode returns the sort mode named by s.
// An empty string is the default mode.
func ParseSortMode(s string) (SortMode, error) {
	if s == "" {
		return SortDefault, nil
	}
	m := SortMode(s)
	if !m.Valid() {
		return "", Errorf(EINVALID, "unknown sort mode %q", s)
	}
	return m, nil
}

// DefaultStalenessWindow is the maximum age of a FilterState that a
// consumer still applies.
const DefaultStalenessWindow = 5 * time.Second

// FilterState is the structured result of interpreting one utterance.
// It is a value: a newer state supersedes an older one, it is never mutated.
type FilterState struct {
	Category string    `json:"category"`
	SortBy   SortMode  `json:"sortBy"`
	Query    string    `json:"query"`
	IssuedAt time.Time `json:"issuedAt"`
}

// Selection returns the category and sort mode of the state.
func (s FilterState) Selection() Selection {
	return Selection{Category: s.Category, SortBy: s.SortBy}
}

// SameFilter reports whether both states select the same products in the
// same order, ignoring when they were issued.
func (s FilterState) SameFilter(other FilterState) bool {
	return s.Category == other.Category && s.SortBy == other.SortBy && s.Query == other.Query
}

// FreshAt reports whether the state may still be applied at now.
func (s FilterState) FreshAt(now time.Time, window time.Duration) bool {
	return FreshnessGate(s.IssuedAt, now, window)
}

// Selection is the caller's current category and sort mode, used as the
// sticky fallback when an utterance names neither.
type Selection struct {
	Category string   `json:"category"`
	SortBy   SortMode `json:"sortBy"`
}

// ClearedState returns the state that clears every filter.
func ClearedState(issuedAt time.Time) FilterState {
	return FilterState{
		Category: CategoryAll,
		SortBy:   SortDefault,
		IssuedAt: issuedAt,
	}
}

// FreshnessGate reports whether a state issued at issuedAt may be applied at
// now: its age must be strictly less than window. A zero issuedAt or a
// non-positive window is never fresh.
func FreshnessGate(issuedAt, now time.Time, window time.Duration) bool {
	if issuedAt.IsZero() || window <= 0 {
		return false
	}
	return now.Sub(issuedAt) < window
}
