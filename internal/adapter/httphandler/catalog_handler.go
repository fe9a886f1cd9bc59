package httphandler

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/currency"
)

// GET /v1/catalog?search=&category=&min=&max=&sort=&page= (200 OK, 400 Bad request)
// GET /v1/categories (200 OK)

type CatalogHandler struct {
	querier port.CatalogQuerier
}

func RegisterCatalog(mux *http.ServeMux, querier port.CatalogQuerier) {
	h := CatalogHandler{querier}
	mux.HandleFunc("GET /v1/catalog", h.GetCatalog)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
}

func (h CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCatalog"
	log := slog.With("op", op)

	q, err := h.parseQuery(r)
	if err != nil {
		http.Error(w, "invalid query params", http.StatusBadRequest)
		log.Warn("failed to parse query", "err", err)
		return
	}

	res := h.querier.QueryCatalog(q)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.toCatalogPage(res)); err != nil {
		log.Error("failed to write response body", "err", err)
		return
	}

	log.Info("catalog page served",
		"nProducts", len(res.Products), "hasMore", res.HasMore)
}

func (h CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCategories"
	log := slog.With("op", op)

	resp := CategoriesResponse{Categories: h.querier.Categories()}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

// parseQuery reads the filter params. Prices arrive as whole
// dollars, the way the shop price slider sends them; max is
// unbounded when absent.
func (h CatalogHandler) parseQuery(r *http.Request) (domain.FilterQuery, error) {
	vs := r.URL.Query()

	q := domain.FilterQuery{
		SearchText: vs.Get("search"),
		Category:   vs.Get("category"),
		PriceMin:   0,
		PriceMax:   currency.Cents(math.MaxInt64),
		SortKey:    domain.SortFeatured,
		Page:       1,
	}

	if s := vs.Get("min"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 0 {
			return domain.FilterQuery{}, errBadParam("min", s, err)
		}
		q.PriceMin = currency.Cents(n * 100)
	}

	if s := vs.Get("max"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 0 {
			return domain.FilterQuery{}, errBadParam("max", s, err)
		}
		q.PriceMax = currency.Cents(n * 100)
	}

	if s := vs.Get("sort"); s != "" {
		switch key := domain.SortKey(s); key {
		case domain.SortFeatured, domain.SortPriceAsc, domain.SortPriceDesc:
			q.SortKey = key
		default:
			return domain.FilterQuery{}, errBadParam("sort", s, nil)
		}
	}

	if s := vs.Get("page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return domain.FilterQuery{}, errBadParam("page", s, err)
		}
		q.Page = n
	}

	return q, nil
}

func (h CatalogHandler) toCatalogPage(res domain.QueryResult) CatalogPage {
	page := CatalogPage{
		Products: make([]Product, 0, len(res.Products)),
		HasMore:  res.HasMore,
	}
	for _, p := range res.Products {
		page.Products = append(page.Products, Product{
			SKU:         p.SKU,
			Title:       p.Title,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
			Categories:  p.Categories,
			Description: p.Description,
		})
	}
	return page
}
