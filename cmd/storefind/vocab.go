package main

import (
	"fmt"
	"strings"
)

// Run executes the vocab command. The vocabulary has already been
// validated when the interpreter was built.
func (c *VocabCmd) Run(deps *Dependencies) error {
	v := deps.Vocabulary

	fmt.Fprintln(deps.Stdout, "Categories:")
	for _, cat := range v.Categories {
		fmt.Fprintf(deps.Stdout, "  %-12s %s\n", cat.ID, strings.Join(cat.Synonyms, ", "))
	}

	fmt.Fprintln(deps.Stdout, "Sort:")
	fmt.Fprintf(deps.Stdout, "  %-12s %s\n", "price-asc", strings.Join(v.Sort.PriceAsc, ", "))
	fmt.Fprintf(deps.Stdout, "  %-12s %s\n", "price-desc", strings.Join(v.Sort.PriceDesc, ", "))
	fmt.Fprintf(deps.Stdout, "  %-12s %s\n", "rating-desc", strings.Join(v.Sort.RatingDesc, ", "))

	fmt.Fprintf(deps.Stdout, "Fillers: %d\n", len(v.Fillers))
	return nil
}
