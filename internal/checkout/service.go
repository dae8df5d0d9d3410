// Package checkout prices a store's cart lines and places simulated orders.
package checkout

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fjod/go_storefront/internal/domain"
)

var ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

// Cart is the part of the cart store checkout needs.
type Cart interface {
	LinesForStore(storeID string) []domain.CartLine
	Clear(ctx context.Context) domain.CartState
}

type Order struct {
	ID       string            `json:"id"`
	StoreID  string            `json:"storeId"`
	Items    []domain.CartLine `json:"items"`
	Summary  Summary           `json:"summary"`
	Customer CustomerInfo      `json:"customer"`
	PlacedAt time.Time         `json:"placedAt"`
}

type Service struct {
	cart      Cart
	publisher Publisher
	delay     time.Duration
	log       *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewService returns a checkout service. delay simulates payment processing.
func NewService(cart Cart, publisher Publisher, delay time.Duration, log *slog.Logger) *Service {
	return &Service{
		cart:      cart,
		publisher: publisher,
		delay:     delay,
		log:       log.With("component", "checkout"),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Summary prices the cart lines of one store.
func (s *Service) Summary(storeID string) ([]domain.CartLine, Summary) {
	lines := s.cart.LinesForStore(storeID)
	return lines, Summarize(lines)
}

// PlaceOrder checks out the lines of storeID and clears the cart.
func (s *Service) PlaceOrder(ctx context.Context, storeID string, customer CustomerInfo) (Order, error) {
	if err := customer.Validate(); err != nil {
		return Order{}, err
	}
	lines, summary := s.Summary(storeID)
	if len(lines) == 0 {
		return Order{}, ErrEmptyCart
	}

	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return Order{}, ctx.Err()
		case <-t.C:
		}
	}

	order := Order{
		ID:       s.newID(),
		StoreID:  storeID,
		Items:    lines,
		Summary:  summary,
		Customer: customer,
		PlacedAt: s.now().UTC(),
	}

	if err := s.publisher.Publish(context.WithoutCancel(ctx), order); err != nil {
		s.log.ErrorContext(ctx, "failed to publish order", "order_id", order.ID, "error", err)
	}

	s.cart.Clear(ctx)
	s.log.InfoContext(ctx, "order placed", "order_id", order.ID, "store_id", storeID, "total", summary.Total)
	return order, nil
}
