package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/currency"
)

// GET    /v1/cart (200 OK)
// POST   /v1/cart/items JSON {id, title, price, image} (200 OK, 400 Bad request)
// DELETE /v1/cart/items/{id} (200 OK)
// PATCH  /v1/cart/items/{id} JSON {quantity} (200 OK, 400 Bad request)
// PUT    /v1/cart/open JSON {open} (200 OK, 400 Bad request)

type CartHandler struct {
	cart port.CartOperator
}

func RegisterCart(mux *http.ServeMux, cart port.CartOperator) {
	h := CartHandler{cart}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostItem)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.DeleteItem)
	mux.HandleFunc("PATCH /v1/cart/items/{id}", h.PatchItem)
	mux.HandleFunc("PUT /v1/cart/open", h.PutOpen)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	h.writeSnapshot(w, op)
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var v AddItem
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if v.ID == "" {
		http.Error(w, "item id is required", http.StatusBadRequest)
		return
	}

	h.cart.Add(domain.CartItem{
		ID:    v.ID,
		Title: v.Title,
		Price: currency.Parse(v.Price),
		Image: v.Image,
	})

	log.Info("item added", "id", v.ID)
	h.writeSnapshot(w, op)
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteItem"
	log := slog.With("op", op)

	id := r.PathValue("id")
	h.cart.Remove(id)

	log.Info("item removed", "id", id)
	h.writeSnapshot(w, op)
}

func (h CartHandler) PatchItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PatchItem"
	log := slog.With("op", op)

	var v QuantityUpdate
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	id := r.PathValue("id")
	h.cart.UpdateQuantity(id, v.Quantity)

	log.Info("quantity updated", "id", id, "quantity", v.Quantity)
	h.writeSnapshot(w, op)
}

func (h CartHandler) PutOpen(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PutOpen"
	log := slog.With("op", op)

	var v OpenFlag
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	h.cart.SetOpen(v.Open)
	h.writeSnapshot(w, op)
}

func (h CartHandler) writeSnapshot(w http.ResponseWriter, op string) {
	log := slog.With("op", op)

	snap := h.cart.Snapshot()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.toCart(snap)); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}

// toCart flattens the snapshot into a DTO with the items ordered by
// id, so responses are deterministic.
func (h CartHandler) toCart(snap domain.CartState) Cart {
	items := make([]CartItem, 0, len(snap.Items))
	for _, it := range snap.Items {
		items = append(items, CartItem{
			ID:         it.ID,
			Title:      it.Title,
			PriceCents: int64(it.Price),
			Price:      currency.Format(it.Price),
			Image:      it.Image,
			Quantity:   it.Quantity,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})

	subtotal := snap.Subtotal()
	return Cart{
		Items:         items,
		IsOpen:        snap.IsOpen,
		Count:         snap.Count(),
		SubtotalCents: int64(subtotal),
		Subtotal:      currency.Format(subtotal),
	}
}
