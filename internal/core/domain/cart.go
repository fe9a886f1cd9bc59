package domain

import "github.com/niksmo/storefront/pkg/currency"

type (
	// A CartItem is one cart line keyed by the product SKU.
	// An item with Quantity <= 0 never exists in a cart.
	CartItem struct {
		ID       string
		Title    string
		Price    currency.Cents
		Image    string
		Quantity int
	}

	// A CartState is an immutable snapshot of the cart: the line
	// items plus the drawer visibility flag.
	CartState struct {
		Items  map[string]CartItem
		IsOpen bool
	}
)

// Count is the total number of units across all lines.
func (s CartState) Count() int {
	var n int
	for _, it := range s.Items {
		n += it.Quantity
	}
	return n
}

// Subtotal is the sum of price times quantity across all lines.
func (s CartState) Subtotal() currency.Cents {
	var sum currency.Cents
	for _, it := range s.Items {
		sum += it.Price * currency.Cents(it.Quantity)
	}
	return sum
}
