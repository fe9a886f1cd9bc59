package service

import (
	"sort"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// PageSize is the fixed number of products added per catalog page.
const PageSize = 24

// Query filters, sorts and paginates the catalog for q.
//
// It is pure: the catalog is never mutated and nothing is cached
// between calls, every call recomputes from the full slice. Pages
// are cumulative, page p holds the first p*PageSize matches ("load
// more" model). An inverted price range simply matches nothing,
// keeping Min <= Max is the caller's job.
func Query(catalog []domain.Product, q domain.FilterQuery) domain.QueryResult {
	filtered := filterProducts(catalog, q)
	sortProducts(filtered, q.SortKey)

	page := q.Page
	if page < 1 {
		page = 1
	}

	limit := page * PageSize
	hasMore := limit < len(filtered)
	if !hasMore {
		limit = len(filtered)
	}

	return domain.QueryResult{Products: filtered[:limit], HasMore: hasMore}
}

func filterProducts(
	catalog []domain.Product, q domain.FilterQuery,
) []domain.Product {
	search := strings.ToLower(q.SearchText)

	filtered := make([]domain.Product, 0, len(catalog))
	for _, p := range catalog {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		if q.Category != "" && !p.HasCategory(q.Category) {
			continue
		}
		price := p.PriceCents()
		if price < q.PriceMin || price > q.PriceMax {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// sortProducts orders ps in place. The sort is stable: products
// tied on price keep their original catalog order, and "featured"
// keeps the catalog order entirely.
func sortProducts(ps []domain.Product, key domain.SortKey) {
	switch key {
	case domain.SortPriceAsc:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].PriceCents() < ps[j].PriceCents()
		})
	case domain.SortPriceDesc:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].PriceCents() > ps[j].PriceCents()
		})
	}
}

var _ port.CatalogQuerier = (*CatalogService)(nil)

// A CatalogService binds the pure Query to the static catalog
// loaded at boot.
type CatalogService struct {
	catalog    []domain.Product
	categories []string
}

func NewCatalogService(catalog []domain.Product) CatalogService {
	return CatalogService{
		catalog:    catalog,
		categories: distinctPrimaryCategories(catalog),
	}
}

func (s CatalogService) QueryCatalog(
	q domain.FilterQuery,
) domain.QueryResult {
	return Query(s.catalog, q)
}

// Categories lists the distinct primary categories in first-seen
// catalog order.
func (s CatalogService) Categories() []string {
	return s.categories
}

func distinctPrimaryCategories(catalog []domain.Product) []string {
	seen := make(map[string]struct{})
	var cats []string
	for _, p := range catalog {
		c := p.PrimaryCategory()
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		cats = append(cats, c)
	}
	return cats
}
