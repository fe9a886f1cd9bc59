package service_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anyPrice() (min, max currency.Cents) {
	return 0, currency.Cents(math.MaxInt64)
}

func allQuery() domain.FilterQuery {
	min, max := anyPrice()
	return domain.FilterQuery{
		PriceMin: min,
		PriceMax: max,
		SortKey:  domain.SortFeatured,
		Page:     1,
	}
}

func testCatalog() []domain.Product {
	return []domain.Product{
		{SKU: "A", Title: "Aspiradora", Price: "10,00", Categories: []string{"Hogar"}},
		{SKU: "B", Title: "Batidora", Price: "50,00", Categories: []string{"Cocina"}},
		{SKU: "C", Title: "Cafetera", Price: "10,00", Categories: []string{"Cocina", "Hogar"}},
	}
}

func skus(ps []domain.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.SKU)
	}
	return out
}

func TestQueryFilter(t *testing.T) {
	t.Run("EmptyQueryMatchesAll", func(t *testing.T) {
		res := service.Query(testCatalog(), allQuery())
		assert.Equal(t, []string{"A", "B", "C"}, skus(res.Products))
		assert.False(t, res.HasMore)
	})

	t.Run("SearchIsCaseInsensitiveSubstring", func(t *testing.T) {
		q := allQuery()
		q.SearchText = "CAFE"
		res := service.Query(testCatalog(), q)
		assert.Equal(t, []string{"C"}, skus(res.Products))
	})

	t.Run("SearchWithNoMatches", func(t *testing.T) {
		q := allQuery()
		q.SearchText = "televisor"
		res := service.Query(testCatalog(), q)
		assert.Empty(t, res.Products)
		assert.False(t, res.HasMore)
	})

	t.Run("CategoryMatchesAnyOfProductCategories", func(t *testing.T) {
		q := allQuery()
		q.Category = "Hogar"
		res := service.Query(testCatalog(), q)
		assert.Equal(t, []string{"A", "C"}, skus(res.Products))
	})

	t.Run("PriceRangeBoundsAreInclusive", func(t *testing.T) {
		q := allQuery()
		q.PriceMin = 1000
		q.PriceMax = 1000
		res := service.Query(testCatalog(), q)
		assert.Equal(t, []string{"A", "C"}, skus(res.Products))
	})

	t.Run("InvertedPriceRangeYieldsEmpty", func(t *testing.T) {
		q := allQuery()
		q.PriceMin = 5000
		q.PriceMax = 1000
		require.NotPanics(t, func() {
			res := service.Query(testCatalog(), q)
			assert.Empty(t, res.Products)
			assert.False(t, res.HasMore)
		})
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		res := service.Query(nil, allQuery())
		assert.Empty(t, res.Products)
		assert.False(t, res.HasMore)
	})
}

func TestQuerySort(t *testing.T) {
	t.Run("FeaturedKeepsCatalogOrder", func(t *testing.T) {
		res := service.Query(testCatalog(), allQuery())
		assert.Equal(t, []string{"A", "B", "C"}, skus(res.Products))
	})

	t.Run("PriceAscBreaksTiesByCatalogOrder", func(t *testing.T) {
		q := allQuery()
		q.SortKey = domain.SortPriceAsc
		res := service.Query(testCatalog(), q)
		// A and C tie on 10,00: A stays first
		assert.Equal(t, []string{"A", "C", "B"}, skus(res.Products))
		assert.False(t, res.HasMore)
	})

	t.Run("PriceDescReversesDistinctPrices", func(t *testing.T) {
		catalog := []domain.Product{
			{SKU: "A", Title: "a", Price: "10,00"},
			{SKU: "B", Title: "b", Price: "50,00"},
			{SKU: "C", Title: "c", Price: "30,00"},
		}

		asc := allQuery()
		asc.SortKey = domain.SortPriceAsc
		desc := allQuery()
		desc.SortKey = domain.SortPriceDesc

		ascSKUs := skus(service.Query(catalog, asc).Products)
		descSKUs := skus(service.Query(catalog, desc).Products)

		require.Len(t, descSKUs, len(ascSKUs))
		for i := range ascSKUs {
			assert.Equal(t, ascSKUs[i], descSKUs[len(descSKUs)-1-i])
		}
	})

	t.Run("PriceDescKeepsTieOrder", func(t *testing.T) {
		q := allQuery()
		q.SortKey = domain.SortPriceDesc
		res := service.Query(testCatalog(), q)
		assert.Equal(t, []string{"B", "A", "C"}, skus(res.Products))
	})
}

func bigCatalog(n int) []domain.Product {
	ps := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		ps = append(ps, domain.Product{
			SKU:   fmt.Sprintf("SKU-%03d", i),
			Title: fmt.Sprintf("Producto %d", i),
			Price: "27,00",
		})
	}
	return ps
}

func TestQueryPagination(t *testing.T) {
	t.Run("FirstPageCapsAtPageSize", func(t *testing.T) {
		res := service.Query(bigCatalog(30), allQuery())
		assert.Len(t, res.Products, service.PageSize)
		assert.True(t, res.HasMore)
	})

	t.Run("PagesAreCumulative", func(t *testing.T) {
		q := allQuery()
		q.Page = 2
		res := service.Query(bigCatalog(30), q)
		assert.Len(t, res.Products, 30)
		assert.False(t, res.HasMore)
	})

	t.Run("CumulativePageExtendsPriorPage", func(t *testing.T) {
		catalog := bigCatalog(60)

		q1 := allQuery()
		page1 := service.Query(catalog, q1)

		q2 := allQuery()
		q2.Page = 2
		page2 := service.Query(catalog, q2)

		require.Len(t, page2.Products, 2*service.PageSize)
		assert.Equal(t, page1.Products, page2.Products[:service.PageSize])
		assert.True(t, page2.HasMore)
	})

	t.Run("SmallCatalogFitsFirstPage", func(t *testing.T) {
		res := service.Query(bigCatalog(3), allQuery())
		assert.Len(t, res.Products, 3)
		assert.False(t, res.HasMore)
	})

	t.Run("NonPositivePageIsFirstPage", func(t *testing.T) {
		q := allQuery()
		q.Page = 0
		res := service.Query(bigCatalog(30), q)
		assert.Len(t, res.Products, service.PageSize)
		assert.True(t, res.HasMore)
	})
}

func TestCatalogService(t *testing.T) {
	t.Run("QueryCatalogUsesLoadedProducts", func(t *testing.T) {
		s := service.NewCatalogService(testCatalog())
		res := s.QueryCatalog(allQuery())
		assert.Equal(t, []string{"A", "B", "C"}, skus(res.Products))
	})

	t.Run("CategoriesAreDistinctPrimariesInFirstSeenOrder", func(t *testing.T) {
		catalog := []domain.Product{
			{SKU: "1", Categories: []string{"Hogar", "Cocina"}},
			{SKU: "2", Categories: []string{"Cocina"}},
			{SKU: "3", Categories: []string{"Hogar"}},
			{SKU: "4"},
		}
		s := service.NewCatalogService(catalog)
		assert.Equal(t, []string{"Hogar", "Cocina"}, s.Categories())
	})
}
