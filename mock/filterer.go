package mock

import "github.com/fwojciec/storefind"

var _ storefind.ProductFilterer = (*ProductFilterer)(nil)

// ProductFilterer is a mock implementation of storefind.ProductFilterer.
type ProductFilterer struct {
	FilterProductsFn func(state storefind.FilterState) []*storefind.Product
}

func (f *ProductFilterer) FilterProducts(state storefind.FilterState) []*storefind.Product {
	return f.FilterProductsFn(state)
}
