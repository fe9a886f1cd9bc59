package kafka

import (
	"context"
	"log/slog"

	"github.com/lovoo/goka"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.SalesViewer = (*SalesView)(nil)

// A SalesView reads the sales counter group table to answer
// units-sold lookups for the bestsellers endpoint.
type SalesView struct {
	gv *goka.View
}

func NewSalesView(
	seedBrokers []string, group string,
) (SalesView, error) {
	const op = "NewSalesView"

	gv, err := goka.NewView(
		seedBrokers,
		goka.GroupTable(goka.Group(group)),
		unitsValueCodec{},
	)
	if err != nil {
		return SalesView{}, opErr(err, op)
	}

	return SalesView{gv}, nil
}

func (v SalesView) Run(ctx context.Context) {
	const op = "SalesView.Run"
	log := slog.With("op", op)

	err := v.gv.Run(ctx)
	if err != nil {
		log.Error("unexpected fail on run", "err", err)
	}
}

// UnitsSold returns the cumulative units sold for sku. A SKU that
// never sold yields 0.
func (v SalesView) UnitsSold(sku string) (int64, error) {
	const op = "SalesView.UnitsSold"

	val, err := v.gv.Get(sku)
	if err != nil {
		return 0, opErr(err, op)
	}
	if val == nil {
		return 0, nil
	}

	units, ok := val.(UnitsValue)
	if !ok {
		return 0, opErr(ErrInvalidValueType, op)
	}
	return int64(units), nil
}
