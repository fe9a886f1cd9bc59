package kafka

import (
	"context"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.OrderEventsProducer = (*OrderEventsProducer)(nil)

// An OrderEventsProducer publishes completed checkouts to the order
// events topic, keyed by the order id.
type OrderEventsProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewOrderEventsProducer(
	opts ...ProducerOpt,
) (OrderEventsProducer, error) {
	const op = "NewOrderEventsProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return OrderEventsProducer{}, opErr(err, op)
		}
	}
	return OrderEventsProducer{options.cl, options.encoder}, nil
}

func (p OrderEventsProducer) Close() {
	const op = "OrderEventsProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p OrderEventsProducer) ProduceOrderPlaced(
	ctx context.Context, order domain.Order,
) error {
	const op = "OrderEventsProducer.ProduceOrderPlaced"

	if err := ctx.Err(); err != nil {
		return opErr(err, op)
	}

	r, err := p.createRecord(order)
	if err != nil {
		return opErr(err, op)
	}

	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return opErr(err, op)
	}

	return nil
}

func (p OrderEventsProducer) createRecord(
	order domain.Order,
) (*kgo.Record, error) {
	const op = "createRecord"

	s := orderToSchemaV1(order)
	b, err := p.encoder.Encode(s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return &kgo.Record{Key: []byte(s.OrderID), Value: b}, nil
}
