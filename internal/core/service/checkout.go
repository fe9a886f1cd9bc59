package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/retry"
)

var _ port.CheckoutSubmitter = (*Checkout)(nil)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrAlreadySubmitted = errors.New("checkout already submitted")
)

type CheckoutState string

const (
	StateForm       CheckoutState = "form"
	StateProcessing CheckoutState = "processing"
	StateSuccess    CheckoutState = "success"
)

// A CheckoutConfig sets the two artificial pauses of the simulated
// payment flow.
type CheckoutConfig struct {
	// ProcessingDelay imitates the payment round trip.
	ProcessingDelay time.Duration
	// ClearDelay postpones emptying the cart after success, so the
	// order summary is not wiped before the success view shows.
	ClearDelay time.Duration
}

// A Checkout walks one order through form -> processing -> success.
// The machine is linear and terminal: a fresh checkout needs a
// fresh instance. The simulated payment never fails.
type Checkout struct {
	cfg    CheckoutConfig
	cart   port.CheckoutCart
	orders port.OrdersStorage
	events port.OrderEventsProducer

	mu    sync.Mutex
	state CheckoutState

	subMu  sync.Mutex
	subSeq int
	subs   map[int]func()
}

func NewCheckout(
	cfg CheckoutConfig,
	cart port.CheckoutCart,
	orders port.OrdersStorage,
	events port.OrderEventsProducer,
) *Checkout {
	return &Checkout{
		cfg:    cfg,
		cart:   cart,
		orders: orders,
		events: events,
		state:  StateForm,
		subs:   make(map[int]func()),
	}
}

func (c *Checkout) State() CheckoutState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// OnCelebrate registers fn to be called once, when the checkout
// reaches success. Returns the deregistration func.
func (c *Checkout) OnCelebrate(fn func()) (unsubscribe func()) {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	c.subSeq++
	id := c.subSeq
	c.subs[id] = fn

	return func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		delete(c.subs, id)
	}
}

// Submit runs the whole flow: it guards on a non-empty cart,
// simulates the payment round trip, emits the celebrate signal,
// records the order, and finally clears the cart. The cart is
// cleared strictly after the celebrate signal. Persistence and
// event fan-out failures are logged, they never fail the shopper
// visible flow.
func (c *Checkout) Submit(
	ctx context.Context, draft domain.OrderDraft,
) (domain.Order, error) {
	const op = "Checkout.Submit"
	log := slog.With("op", op)

	snap, err := c.enterProcessing()
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := c.wait(ctx, c.cfg.ProcessingDelay); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	order := c.buildOrder(draft, snap)

	c.mu.Lock()
	c.state = StateSuccess
	c.mu.Unlock()

	c.celebrate()
	log.Info("payment confirmed", "orderID", order.ID)

	if err := c.storeOrder(ctx, order); err != nil {
		log.Error("failed to store order", "err", err)
	}

	if err := c.events.ProduceOrderPlaced(ctx, order); err != nil {
		log.Error("failed to produce order event", "err", err)
	}

	if err := c.wait(ctx, c.cfg.ClearDelay); err != nil {
		log.Warn("clear delay interrupted", "err", err)
	}
	c.cart.Clear()

	return order, nil
}

// enterProcessing moves form -> processing and captures the cart.
func (c *Checkout) enterProcessing() (domain.CartState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateForm {
		return domain.CartState{}, ErrAlreadySubmitted
	}

	snap := c.cart.Snapshot()
	if len(snap.Items) == 0 {
		return domain.CartState{}, ErrEmptyCart
	}

	c.state = StateProcessing
	return snap, nil
}

func (c *Checkout) buildOrder(
	draft domain.OrderDraft, snap domain.CartState,
) domain.Order {
	items := make([]domain.OrderItem, 0, len(snap.Items))
	for _, it := range snap.Items {
		items = append(items, domain.OrderItem{
			SKU:      it.ID,
			Title:    it.Title,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].SKU < items[j].SKU
	})

	subtotal := snap.Subtotal()
	return domain.Order{
		ID:        uuid.NewString(),
		Name:      draft.Name,
		Email:     draft.Email,
		Address:   draft.Address,
		City:      draft.City,
		Items:     items,
		Subtotal:  subtotal,
		Shipping:  domain.ShippingCents,
		Total:     subtotal + domain.ShippingCents,
		CreatedAt: time.Now().UTC(),
	}
}

func (c *Checkout) celebrate() {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	for _, fn := range c.subs {
		fn()
	}
}

func (c *Checkout) storeOrder(
	ctx context.Context, order domain.Order,
) error {
	retryCfg := retry.RetryConfig{
		MaxAttempts: 3,
		Backoff:     retry.ConstantBackoff(50 * time.Millisecond),
	}
	return retry.Do(ctx, retryCfg, func() error {
		return c.orders.StoreOrder(ctx, order)
	})
}

func (c *Checkout) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
