package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/port"
)

// GET /v1/bestsellers?sku= (200 OK, 400 Bad request, 503 Service unavailable)

type SalesHandler struct {
	viewer port.SalesViewer
}

func RegisterSales(mux *http.ServeMux, viewer port.SalesViewer) {
	h := SalesHandler{viewer}
	mux.HandleFunc("GET /v1/bestsellers", h.GetBestseller)
}

func (h SalesHandler) GetBestseller(w http.ResponseWriter, r *http.Request) {
	const op = "SalesHandler.GetBestseller"
	log := slog.With("op", op)

	sku := r.URL.Query().Get("sku")
	if sku == "" {
		http.Error(w, "sku is required", http.StatusBadRequest)
		return
	}

	units, err := h.viewer.UnitsSold(sku)
	if err != nil {
		http.Error(w, "sales data unavailable", http.StatusServiceUnavailable)
		log.Error("failed to read sales view", "err", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	resp := Bestseller{SKU: sku, UnitsSold: units}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}
