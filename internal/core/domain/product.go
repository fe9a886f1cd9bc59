package domain

import "github.com/niksmo/storefront/pkg/currency"

type (
	// A Product is one catalog record as scraped from the shop.
	// The catalog is static and read-only for the core.
	Product struct {
		SKU         string
		Title       string
		Price       string // locale formatted, e.g. "1.028,00"
		ImageURL    string
		Categories  []string
		Description string
	}

	SortKey string

	// A FilterQuery describes one catalog view request.
	// An empty Category means "all categories".
	FilterQuery struct {
		SearchText string
		Category   string
		PriceMin   currency.Cents
		PriceMax   currency.Cents
		SortKey    SortKey
		Page       int
	}

	// A QueryResult is the cumulative page for a FilterQuery:
	// page p holds the first p*pageSize filtered products.
	QueryResult struct {
		Products []Product
		HasMore  bool
	}
)

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// PriceCents interprets the formatted price string.
// Malformed prices degrade to 0, see [currency.Parse].
func (p Product) PriceCents() currency.Cents {
	return currency.Parse(p.Price)
}

// PrimaryCategory is the first category of the product, or the
// empty string for an uncategorized one.
func (p Product) PrimaryCategory() string {
	if len(p.Categories) == 0 {
		return ""
	}
	return p.Categories[0]
}

// HasCategory reports whether cat appears among the product
// categories.
func (p Product) HasCategory(cat string) bool {
	for _, c := range p.Categories {
		if c == cat {
			return true
		}
	}
	return false
}
