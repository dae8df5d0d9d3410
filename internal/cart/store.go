package cart

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/storage"
)

// StorageKey is where the serialized cart lives.
const StorageKey = "shopping_cart"

const saveTimeout = 5 * time.Second

// Store is the process-wide cart. Every mutation is applied through Reduce
// and the whole state is written back to storage before the call returns.
// Persistence failures are logged and never returned.
type Store struct {
	mu      sync.Mutex
	state   domain.CartState
	storage storage.Storage
	log     *slog.Logger
	newID   IDFunc
}

type Option func(*Store)

// WithIDFunc replaces the uuid generator used for new lines.
func WithIDFunc(f IDFunc) Option {
	return func(s *Store) { s.newID = f }
}

// New builds the cart and loads any snapshot found in st.
func New(ctx context.Context, st storage.Storage, log *slog.Logger, opts ...Option) *Store {
	s := &Store{
		state:   domain.EmptyCart(),
		storage: st,
		log:     log.With("component", "cart"),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	raw, err := s.storage.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return
	}
	if err != nil {
		s.log.WarnContext(ctx, "error loading cart, starting empty", "error", err)
		return
	}

	snapshot, err := Decode([]byte(raw))
	if err != nil {
		s.log.WarnContext(ctx, "discarding stored cart", "error", err)
		return
	}
	s.state = Reduce(s.state, Load{State: snapshot}, s.newID)
	s.log.DebugContext(ctx, "cart loaded", "lines", len(s.state.Items), "item_count", s.state.ItemCount)
}

func (s *Store) AddItem(ctx context.Context, product domain.Product, storeID string, quantity int) domain.CartState {
	return s.dispatch(ctx, AddItem{Product: product, StoreID: storeID, Quantity: quantity})
}

func (s *Store) RemoveItem(ctx context.Context, lineID string) domain.CartState {
	return s.dispatch(ctx, RemoveItem{LineID: lineID})
}

func (s *Store) UpdateQuantity(ctx context.Context, lineID string, quantity int) domain.CartState {
	return s.dispatch(ctx, UpdateQuantity{LineID: lineID, Quantity: quantity})
}

func (s *Store) Clear(ctx context.Context) domain.CartState {
	return s.dispatch(ctx, Clear{})
}

// State returns a copy of the current cart.
func (s *Store) State() domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Items = copyLines(s.state.Items)
	return st
}

func (s *Store) LinesForStore(storeID string) []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return LinesForStore(s.state, storeID)
}

func (s *Store) LinesAll() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return LinesAll(s.state)
}

func (s *Store) dispatch(ctx context.Context, cmd Command) domain.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, cmd, s.newID)
	s.save(ctx)

	out := s.state
	out.Items = copyLines(s.state.Items)
	return out
}

func (s *Store) save(ctx context.Context) {
	data, err := Encode(s.state)
	if err != nil {
		s.log.ErrorContext(ctx, "error encoding cart", "error", err)
		return
	}
	// the write must finish even if the caller's request is cancelled
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), saveTimeout)
	defer cancel()
	if err := s.storage.Set(saveCtx, StorageKey, string(data)); err != nil {
		s.log.ErrorContext(ctx, "error saving cart", "error", err)
	}
}
