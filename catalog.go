package storefind

import (
	"cmp"
	"slices"
	"strings"
)

// ApplyFilter returns the products that match state, ordered by its sort
// mode. Products match when the state's category is CategoryAll or equals
// the product category, and the product name contains the query
// case-insensitively. Sorting is stable with no secondary key, so products
// with equal keys keep their catalog order. The input slice is not modified.
func ApplyFilter(products []*Product, state FilterState) []*Product {
	query := strings.ToLower(state.Query)

	out := make([]*Product, 0, len(products))
	for _, p := range products {
		if state.Category != CategoryAll && p.Category != state.Category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		out = append(out, p)
	}

	switch state.SortBy {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b *Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b *Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortRatingDesc:
		slices.SortStableFunc(out, func(a, b *Product) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	}

	return out
}
