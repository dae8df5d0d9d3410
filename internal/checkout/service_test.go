package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/logger"
	"github.com/fjod/go_storefront/internal/storage"
)

type mockPublisher struct {
	mu     sync.Mutex
	orders []Order
	err    error
}

func (m *mockPublisher) Publish(_ context.Context, o Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, o)
	return m.err
}

func (m *mockPublisher) Close() error { return nil }

func validCustomer() CustomerInfo {
	return CustomerInfo{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Address:   "1 Analytical Way",
		City:      "London",
		ZipCode:   "N1",
		Country:   "UK",
	}
}

func newTestService(t *testing.T, pub Publisher) (*Service, *cart.Store) {
	t.Helper()
	c := cart.New(context.Background(), storage.NewMemory(), logger.Discard())
	s := NewService(c, pub, 0, logger.Discard())
	s.newID = func() string { return "order-1" }
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s, c
}

func TestCustomerInfo_Validate(t *testing.T) {
	require.NoError(t, validCustomer().Validate())

	c := validCustomer()
	c.Phone = ""
	assert.NoError(t, c.Validate())

	c = validCustomer()
	c.City = "  "
	c.Country = ""
	err := c.Validate()
	assert.ErrorIs(t, err, ErrIncompleteCustomer)
	assert.Contains(t, err.Error(), "city, country")

	c = validCustomer()
	c.Email = "not-an-email"
	assert.ErrorIs(t, c.Validate(), ErrIncompleteCustomer)
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()
	pub := &mockPublisher{}
	s, c := newTestService(t, pub)

	c.AddItem(ctx, domain.Product{ID: "beans", Name: "Beans", Price: 12.5}, "s1", 2)
	c.AddItem(ctx, domain.Product{ID: "book", Name: "Book", Price: 20}, "s2", 1)

	order, err := s.PlaceOrder(ctx, "s1", validCustomer())
	require.NoError(t, err)

	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, "s1", order.StoreID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "beans", order.Items[0].Product.ID)
	assert.Equal(t, Summary{Subtotal: 25, Tax: 2, Shipping: 5.99, Total: 32.99}, order.Summary)

	require.Len(t, pub.orders, 1)
	assert.Equal(t, order, pub.orders[0])

	assert.Empty(t, c.State().Items)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	ctx := context.Background()
	pub := &mockPublisher{}
	s, c := newTestService(t, pub)
	c.AddItem(ctx, domain.Product{ID: "book", Price: 20}, "s2", 1)

	_, err := s.PlaceOrder(ctx, "s1", validCustomer())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, pub.orders)
	assert.Len(t, c.State().Items, 1)
}

func TestPlaceOrder_InvalidCustomer(t *testing.T) {
	ctx := context.Background()
	s, c := newTestService(t, &mockPublisher{})
	c.AddItem(ctx, domain.Product{ID: "beans", Price: 1}, "s1", 1)

	_, err := s.PlaceOrder(ctx, "s1", CustomerInfo{})
	assert.ErrorIs(t, err, ErrIncompleteCustomer)
	assert.Len(t, c.State().Items, 1)
}

func TestPlaceOrder_PublishFailureStillCompletes(t *testing.T) {
	ctx := context.Background()
	s, c := newTestService(t, &mockPublisher{err: errors.New("broker down")})
	c.AddItem(ctx, domain.Product{ID: "beans", Price: 1}, "s1", 1)

	_, err := s.PlaceOrder(ctx, "s1", validCustomer())
	require.NoError(t, err)
	assert.Empty(t, c.State().Items)
}

func TestPlaceOrder_CancelledDuringDelay(t *testing.T) {
	pub := &mockPublisher{}
	s, c := newTestService(t, pub)
	s.delay = time.Minute
	c.AddItem(context.Background(), domain.Product{ID: "beans", Price: 1}, "s1", 1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := s.PlaceOrder(ctx, "s1", validCustomer())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, pub.orders)
	assert.Len(t, c.State().Items, 1)
}
