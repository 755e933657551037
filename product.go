package storefind

// Product represents a catalog item. Products are immutable once loaded.
type Product struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Category    string  `json:"category" yaml:"category"`
	Price       float64 `json:"price" yaml:"price"`
	Rating      float64 `json:"rating" yaml:"rating"`
	ReviewCount int     `json:"reviewCount" yaml:"reviewCount"`
	StockQty    int     `json:"stockQty" yaml:"stockQty"`
}

// Validate returns an error if the product contains invalid fields.
func (p *Product) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "product name required")
	}
	if p.Category == "" {
		return Errorf(EINVALID, "product %q category required", p.Name)
	}
	if p.Price < 0 {
		return Errorf(EINVALID, "product %q price must not be negative", p.Name)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return Errorf(EINVALID, "product %q rating must be between 0 and 5", p.Name)
	}
	if p.ReviewCount < 0 {
		return Errorf(EINVALID, "product %q review count must not be negative", p.Name)
	}
	if p.StockQty < 0 {
		return Errorf(EINVALID, "product %q stock quantity must not be negative", p.Name)
	}
	return nil
}

// ProductFilterer applies a FilterState to a product collection.
type ProductFilterer interface {
	// FilterProducts returns the products matching the state, ordered by
	// the state's sort mode. The result is total, not paginated.
	FilterProducts(state FilterState) []*Product
}

// Compile-time interface verification.
var _ ProductFilterer = (*Catalog)(nil)

// Catalog is an immutable snapshot of products in catalog order.
type Catalog struct {
	products []*Product
}

// NewCatalog returns a catalog over a copy of products.
func NewCatalog(products []*Product) *Catalog {
	return &Catalog{products: append([]*Product(nil), products...)}
}

// Products returns the catalog's products in catalog order.
func (c *Catalog) Products() []*Product {
	return append([]*Product(nil), c.products...)
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// FilterProducts runs ApplyFilter over the catalog snapshot.
func (c *Catalog) FilterProducts(state FilterState) []*Product {
	return ApplyFilter(c.products, state)
}
