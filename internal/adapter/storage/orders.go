package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.OrdersStorage = (*OrdersRepository)(nil)

type OrdersRepository struct {
	sqldb sqldb
}

func NewOrdersRepository(sqldb sqldb) OrdersRepository {
	return OrdersRepository{sqldb}
}

// StoreOrder persists the order and its line items in one
// transaction.
func (r OrdersRepository) StoreOrder(
	ctx context.Context, v domain.Order,
) (storeErr error) {
	const op = "OrdersRepository.StoreOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if storeErr == nil {
			if err := tx.Commit(); err != nil {
				storeErr = fmt.Errorf("%s: failed to commit: %w", op, err)
			}
			return
		}

		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	orderQuery := `
		INSERT INTO orders (
			order_id, name, email, address, city,
			subtotal_cents, shipping_cents, total_cents, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err = tx.ExecContext(ctx, orderQuery,
		v.ID, v.Name, v.Email, v.Address, v.City,
		int64(v.Subtotal), int64(v.Shipping), int64(v.Total), v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to insert order: %w", op, err)
	}

	itemQuery := `
		INSERT INTO order_items (
			order_id, sku, title, price_cents, quantity
		)
		VALUES ($1, $2, $3, $4, $5);
	`

	stmt, err := tx.PrepareContext(ctx, itemQuery)
	if err != nil {
		return fmt.Errorf("%s: failed to prepare stmt: %w", op, err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			log.Error("failed to close prepared stmt", "err", err)
		}
	}()

	for _, it := range v.Items {
		_, err := stmt.ExecContext(ctx,
			v.ID, it.SKU, it.Title, int64(it.Price), it.Quantity,
		)
		if err != nil {
			return fmt.Errorf("%s: failed to insert item: %w", op, err)
		}
	}

	return nil
}
