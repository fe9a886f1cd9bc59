package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Inbound ports implemented by the core services.

type CatalogQuerier interface {
	QueryCatalog(domain.FilterQuery) domain.QueryResult
	Categories() []string
}

type CartOperator interface {
	Add(domain.CartItem)
	Remove(id string)
	UpdateQuantity(id string, quantity int)
	SetOpen(flag bool)
	Snapshot() domain.CartState
}

type CheckoutSubmitter interface {
	Submit(context.Context, domain.OrderDraft) (domain.Order, error)
}

// Outbound ports implemented by the adapters.

type CheckoutCart interface {
	Snapshot() domain.CartState
	Clear()
}

type OrdersStorage interface {
	StoreOrder(context.Context, domain.Order) error
}

type OrderEventsProducer interface {
	ProduceOrderPlaced(context.Context, domain.Order) error
}

type SalesViewer interface {
	UnitsSold(sku string) (int64, error)
}
