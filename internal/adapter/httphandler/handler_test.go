package httphandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogMux() *http.ServeMux {
	catalog := []domain.Product{
		{SKU: "A", Title: "Aspiradora", Price: "10,00", Categories: []string{"Hogar"}},
		{SKU: "B", Title: "Batidora", Price: "50,00", Categories: []string{"Cocina"}},
		{SKU: "C", Title: "Cafetera", Price: "10,00", Categories: []string{"Cocina"}},
	}
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, service.NewCatalogService(catalog))
	return mux
}

func doJSON(
	t *testing.T, mux *http.ServeMux, method, target, body string,
) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	return w
}

func TestCatalogHandler(t *testing.T) {
	t.Run("DefaultQueryReturnsAll", func(t *testing.T) {
		w := doJSON(t, newCatalogMux(), http.MethodGet, "/v1/catalog", "")
		require.Equal(t, http.StatusOK, w.Code)

		var page httphandler.CatalogPage
		require.NoError(t, json.NewDecoder(w.Body).Decode(&page))
		assert.Len(t, page.Products, 3)
		assert.False(t, page.HasMore)
	})

	t.Run("SortAndRangeParams", func(t *testing.T) {
		w := doJSON(t, newCatalogMux(), http.MethodGet,
			"/v1/catalog?sort=price-asc&min=0&max=5000", "")
		require.Equal(t, http.StatusOK, w.Code)

		var page httphandler.CatalogPage
		require.NoError(t, json.NewDecoder(w.Body).Decode(&page))
		require.Len(t, page.Products, 3)
		assert.Equal(t, "A", page.Products[0].SKU)
		assert.Equal(t, "C", page.Products[1].SKU)
		assert.Equal(t, "B", page.Products[2].SKU)
	})

	t.Run("InvalidSortParam", func(t *testing.T) {
		w := doJSON(t, newCatalogMux(), http.MethodGet, "/v1/catalog?sort=name", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("InvalidPageParam", func(t *testing.T) {
		w := doJSON(t, newCatalogMux(), http.MethodGet, "/v1/catalog?page=0", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Categories", func(t *testing.T) {
		w := doJSON(t, newCatalogMux(), http.MethodGet, "/v1/categories", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp httphandler.CategoriesResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, []string{"Hogar", "Cocina"}, resp.Categories)
	})
}

func newCartMux() (*http.ServeMux, *service.CartStore) {
	cart := service.NewCartStore()
	mux := http.NewServeMux()
	httphandler.RegisterCart(mux, cart)
	return mux, cart
}

func TestCartHandler(t *testing.T) {
	addBody := `{"id":"AE-001","title":"Cafetera","price":"1.028,00","image":"img"}`

	t.Run("PostItemAddsAndOpensCart", func(t *testing.T) {
		mux, cart := newCartMux()

		w := doJSON(t, mux, http.MethodPost, "/v1/cart/items", addBody)
		require.Equal(t, http.StatusOK, w.Code)

		var resp httphandler.Cart
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, int64(102800), resp.Items[0].PriceCents)
		assert.Equal(t, "$1.028,00", resp.Items[0].Price)
		assert.True(t, resp.IsOpen)

		assert.Len(t, cart.Snapshot().Items, 1)
	})

	t.Run("PostItemWithoutID", func(t *testing.T) {
		mux, _ := newCartMux()
		w := doJSON(t, mux, http.MethodPost, "/v1/cart/items", `{"title":"x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("PatchQuantityZeroRemoves", func(t *testing.T) {
		mux, cart := newCartMux()
		doJSON(t, mux, http.MethodPost, "/v1/cart/items", addBody)

		w := doJSON(t, mux, http.MethodPatch, "/v1/cart/items/AE-001",
			`{"quantity":0}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, cart.Snapshot().Items)
	})

	t.Run("DeleteItem", func(t *testing.T) {
		mux, cart := newCartMux()
		doJSON(t, mux, http.MethodPost, "/v1/cart/items", addBody)

		w := doJSON(t, mux, http.MethodDelete, "/v1/cart/items/AE-001", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, cart.Snapshot().Items)
	})

	t.Run("PutOpen", func(t *testing.T) {
		mux, cart := newCartMux()
		doJSON(t, mux, http.MethodPost, "/v1/cart/items", addBody)

		w := doJSON(t, mux, http.MethodPut, "/v1/cart/open", `{"open":false}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, cart.Snapshot().IsOpen)
	})

	t.Run("GetCartReportsDerivedViews", func(t *testing.T) {
		mux, _ := newCartMux()
		doJSON(t, mux, http.MethodPost, "/v1/cart/items", addBody)
		doJSON(t, mux, http.MethodPost, "/v1/cart/items", addBody)

		w := doJSON(t, mux, http.MethodGet, "/v1/cart", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp httphandler.Cart
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, 2, resp.Count)
		assert.Equal(t, int64(205600), resp.SubtotalCents)
		assert.Equal(t, "$2.056,00", resp.Subtotal)
	})
}

type stubSubmitter struct {
	order domain.Order
	err   error
}

func (s stubSubmitter) Submit(
	_ context.Context, _ domain.OrderDraft,
) (domain.Order, error) {
	return s.order, s.err
}

func newCheckoutMux(s stubSubmitter) *http.ServeMux {
	mux := http.NewServeMux()
	httphandler.RegisterCheckout(mux, func() port.CheckoutSubmitter {
		return s
	})
	return mux
}

func TestCheckoutHandler(t *testing.T) {
	draft := `{"name":"Juan","email":"j@e.com","address":"Av. 1","city":"Quito","card":"0000"}`

	t.Run("Success", func(t *testing.T) {
		stub := stubSubmitter{
			order: domain.Order{ID: "order-1", Total: 103300},
		}
		w := doJSON(t, newCheckoutMux(stub), http.MethodPost, "/v1/checkout", draft)
		require.Equal(t, http.StatusOK, w.Code)

		var resp httphandler.CheckoutResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "order-1", resp.OrderID)
		assert.Equal(t, int64(103300), resp.TotalCents)
		assert.Equal(t, "$1.033,00", resp.Total)
	})

	t.Run("MissingField", func(t *testing.T) {
		stub := stubSubmitter{}
		w := doJSON(t, newCheckoutMux(stub), http.MethodPost, "/v1/checkout",
			`{"name":"Juan"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("EmptyCartConflict", func(t *testing.T) {
		stub := stubSubmitter{err: service.ErrEmptyCart}
		w := doJSON(t, newCheckoutMux(stub), http.MethodPost, "/v1/checkout", draft)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
