package kafka

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/lovoo/goka"
	"github.com/niksmo/storefront/pkg/schema"
)

// An orderEventCodec adapts the registry serde to goka.
type orderEventCodec struct {
	serde Serde
}

func newOrderEventCodec(s Serde) orderEventCodec {
	return orderEventCodec{s}
}

func (c orderEventCodec) Encode(v any) ([]byte, error) {
	const op = "orderEventCodec.Encode"
	if _, ok := v.(schema.OrderPlacedV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c orderEventCodec) Decode(data []byte) (any, error) {
	const op = "orderEventCodec.Decode"
	var s schema.OrderPlacedV1
	err := c.serde.Decode(data, &s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return s, err
}

// A UnitsValue is the running units-sold counter persisted per SKU.
type UnitsValue int64

type unitsValueCodec struct{}

func (unitsValueCodec) Encode(v any) ([]byte, error) {
	const op = "unitsValueCodec.Encode"
	uv, ok := v.(UnitsValue)
	if !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return strconv.AppendInt([]byte(nil), int64(uv), 10), nil
}

func (unitsValueCodec) Decode(data []byte) (any, error) {
	const op = "unitsValueCodec.Decode"
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return nil, opErr(err, op)
	}
	return UnitsValue(n), nil
}

// A SalesCounterProcessor consumes order events, fans each line
// item out by SKU through the loopback stream and persists the
// cumulative units sold per SKU into the group table.
type SalesCounterProcessor struct {
	gp *goka.Processor
}

func NewSalesCounterProcessor(
	seedBrokers []string, stream string, group string, orderSerde Serde,
) (SalesCounterProcessor, error) {
	const op = "NewSalesCounterProcessor"
	var p SalesCounterProcessor

	gg := goka.DefineGroup(goka.Group(group),
		goka.Input(goka.Stream(stream), newOrderEventCodec(orderSerde), p.processOrder),
		goka.Loop(unitsValueCodec{}, p.countItem),
		goka.Persist(unitsValueCodec{}),
	)

	gp, err := goka.NewProcessor(seedBrokers, gg, withNonlogProcOpt())
	if err != nil {
		return SalesCounterProcessor{}, opErr(err, op)
	}

	p.gp = gp
	return p, nil
}

func (p SalesCounterProcessor) Run(ctx context.Context) {
	const op = "SalesCounterProcessor.Run"
	log := slog.With("op", op)

	err := p.gp.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p SalesCounterProcessor) Close() {
	const op = "SalesCounterProcessor.Close"
	log := slog.With("op", op)

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

func (p SalesCounterProcessor) processOrder(ctx goka.Context, msg any) {
	evt, ok := msg.(schema.OrderPlacedV1)
	if !ok {
		return
	}
	for _, it := range evt.Items {
		ctx.Loopback(it.SKU, UnitsValue(it.Quantity))
	}
}

func (p SalesCounterProcessor) countItem(ctx goka.Context, msg any) {
	units, ok := msg.(UnitsValue)
	if !ok {
		return
	}
	prior, _ := ctx.Value().(UnitsValue)
	ctx.SetValue(prior + units)
}
