package domain

import (
	"time"

	"github.com/niksmo/storefront/pkg/currency"
)

// ShippingCents is the flat shipping fee added to every order.
const ShippingCents currency.Cents = 500

type (
	// An OrderDraft holds the checkout form fields. Required-field
	// validation belongs to the inbound adapter, not to the core.
	OrderDraft struct {
		Name    string
		Email   string
		Address string
		City    string
		Card    string
	}

	OrderItem struct {
		SKU      string
		Title    string
		Price    currency.Cents
		Quantity int
	}

	// An Order is a completed checkout.
	Order struct {
		ID        string
		Name      string
		Email     string
		Address   string
		City      string
		Items     []OrderItem
		Subtotal  currency.Cents
		Shipping  currency.Cents
		Total     currency.Cents
		CreatedAt time.Time
	}

	// A SKUSales is the cumulative units sold for one product.
	SKUSales struct {
		SKU   string
		Units int64
	}
)
