package service

import (
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CartOperator = (*CartStore)(nil)
var _ port.CheckoutCart = (*CartStore)(nil)

// A SubscribeFn observes the cart. It is called synchronously after
// each completed mutation with the new state snapshot.
type SubscribeFn func(domain.CartState)

// A CartStore holds the shopper's cart lines and the drawer
// visibility flag. Mutations are serialized: no observer ever sees
// a half-applied one. Every consumer gets its own instance, there
// is no process wide cart.
type CartStore struct {
	mu     sync.Mutex
	items  map[string]domain.CartItem
	isOpen bool

	subMu  sync.Mutex
	subSeq int
	subs   map[int]SubscribeFn
}

func NewCartStore() *CartStore {
	return &CartStore{
		items: make(map[string]domain.CartItem),
		subs:  make(map[int]SubscribeFn),
	}
}

// Add inserts the item with quantity 1, or increments the quantity
// of an already present line. Title, price and image stay as they
// were on the first insertion. The cart drawer opens on every add.
func (s *CartStore) Add(item domain.CartItem) {
	s.mu.Lock()
	if existing, ok := s.items[item.ID]; ok {
		existing.Quantity++
		s.items[item.ID] = existing
	} else {
		item.Quantity = 1
		s.items[item.ID] = item
	}
	s.isOpen = true
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// Remove deletes the line for id. Removing an absent id is a no-op,
// not an error.
func (s *CartStore) Remove(id string) {
	s.mu.Lock()
	delete(s.items, id)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// UpdateQuantity replaces the quantity of the line for id.
// A quantity of zero or less removes the line entirely. An absent
// id is a no-op.
func (s *CartStore) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		s.Remove(id)
		return
	}

	s.mu.Lock()
	existing, ok := s.items[id]
	if ok {
		existing.Quantity = quantity
		s.items[id] = existing
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// SetOpen sets the drawer visibility flag without touching items.
func (s *CartStore) SetOpen(flag bool) {
	s.mu.Lock()
	s.isOpen = flag
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// Clear empties the cart. The checkout uses it after a completed
// payment.
func (s *CartStore) Clear() {
	s.mu.Lock()
	s.items = make(map[string]domain.CartItem)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// Snapshot returns a deep copy of the current state.
func (s *CartStore) Snapshot() domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn and returns its deregistration func.
func (s *CartStore) Subscribe(fn SubscribeFn) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.subSeq++
	id := s.subSeq
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *CartStore) snapshotLocked() domain.CartState {
	items := make(map[string]domain.CartItem, len(s.items))
	for id, it := range s.items {
		items[id] = it
	}
	return domain.CartState{Items: items, IsOpen: s.isOpen}
}

func (s *CartStore) notify(snap domain.CartState) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, fn := range s.subs {
		fn(snap)
	}
}
