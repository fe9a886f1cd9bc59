package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/currency"
)

// POST /v1/checkout JSON {name, email, address, city, card}
// (200 OK, 400 Bad request, 409 Conflict on empty cart)

// A SubmitterFactory builds a fresh checkout per request: the
// checkout machine is single use.
type SubmitterFactory func() port.CheckoutSubmitter

type CheckoutHandler struct {
	newSubmitter SubmitterFactory
}

func RegisterCheckout(mux *http.ServeMux, factory SubmitterFactory) {
	h := CheckoutHandler{factory}
	mux.HandleFunc("POST /v1/checkout", h.PostCheckout)
}

func (h CheckoutHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PostCheckout"
	log := slog.With("op", op)

	var v CheckoutDraft
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if missing := h.missingFields(v); missing != "" {
		http.Error(w, missing+" is required", http.StatusBadRequest)
		return
	}

	order, err := h.newSubmitter().Submit(r.Context(), h.toDraft(v))
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			http.Error(w, "cart is empty", http.StatusConflict)
			return
		}
		http.Error(w, "failed to process order", http.StatusInternalServerError)
		log.Error("failed to submit", "err", err)
		return
	}

	resp := CheckoutResult{
		OrderID:    order.ID,
		TotalCents: int64(order.Total),
		Total:      currency.Format(order.Total),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error("failed to write response body", "err", err)
		return
	}

	log.Info("order placed", "orderID", order.ID)
}

// missingFields reports the first empty required field. Required
// here means non-empty only, richer validation is out of scope for
// the core.
func (h CheckoutHandler) missingFields(v CheckoutDraft) string {
	switch {
	case v.Name == "":
		return "name"
	case v.Email == "":
		return "email"
	case v.Address == "":
		return "address"
	case v.City == "":
		return "city"
	case v.Card == "":
		return "card"
	}
	return ""
}

func (h CheckoutHandler) toDraft(v CheckoutDraft) domain.OrderDraft {
	return domain.OrderDraft{
		Name:    v.Name,
		Email:   v.Email,
		Address: v.Address,
		City:    v.City,
		Card:    v.Card,
	}
}
