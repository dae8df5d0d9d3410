// Package catalog persists generated stores as one JSON list under a single
// storage key and manages the products inside them.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/storage"
)

const StorageKey = "claude_stores"

var (
	ErrStoreNotFound   = errors.New("store not found")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
)

// Catalog does read-modify-write over the whole list. The mutex makes each
// operation atomic within the process.
type Catalog struct {
	mu      sync.Mutex
	storage storage.Storage
	log     *slog.Logger
	newID   func() string
}

func New(st storage.Storage, log *slog.Logger) *Catalog {
	return &Catalog{
		storage: st,
		log:     log.With("component", "catalog"),
		newID:   uuid.NewString,
	}
}

// All returns every saved store. Unreadable data yields an empty list.
func (c *Catalog) All(ctx context.Context) []domain.Store {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

func (c *Catalog) Get(ctx context.Context, storeID string) (domain.Store, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range c.load(ctx) {
		if s.ID == storeID {
			return s, nil
		}
	}
	return domain.Store{}, ErrStoreNotFound
}

// Save replaces the store with the same id or appends it.
func (c *Catalog) Save(ctx context.Context, store domain.Store) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stores := c.load(ctx)
	replaced := false
	for i := range stores {
		if stores[i].ID == store.ID {
			stores[i] = store
			replaced = true
			break
		}
	}
	if !replaced {
		stores = append(stores, store)
	}
	return c.write(ctx, stores)
}

func (c *Catalog) Delete(ctx context.Context, storeID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stores := c.load(ctx)
	kept := make([]domain.Store, 0, len(stores))
	for _, s := range stores {
		if s.ID != storeID {
			kept = append(kept, s)
		}
	}
	return c.write(ctx, kept)
}

// ProductInput is the manager form for creating or editing a product.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	InStock     bool    `json:"inStock"`
}

func (in ProductInput) product(id string) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		InStock:     in.InStock,
	}
}

func (c *Catalog) AddProduct(ctx context.Context, storeID string, in ProductInput) (domain.Product, error) {
	p := in.product(c.newID())
	if err := p.Validate(); err != nil {
		return domain.Product{}, fmt.Errorf("%w: %w", ErrInvalidProduct, err)
	}

	err := c.update(ctx, storeID, func(s *domain.Store) error {
		s.Products = append(s.Products, p)
		return nil
	})
	if err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (c *Catalog) UpdateProduct(ctx context.Context, storeID, productID string, in ProductInput) (domain.Product, error) {
	p := in.product(productID)
	if err := p.Validate(); err != nil {
		return domain.Product{}, fmt.Errorf("%w: %w", ErrInvalidProduct, err)
	}

	err := c.update(ctx, storeID, func(s *domain.Store) error {
		for i := range s.Products {
			if s.Products[i].ID == productID {
				s.Products[i] = p
				return nil
			}
		}
		return ErrProductNotFound
	})
	if err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (c *Catalog) DeleteProduct(ctx context.Context, storeID, productID string) error {
	return c.update(ctx, storeID, func(s *domain.Store) error {
		kept := make([]domain.Product, 0, len(s.Products))
		for _, p := range s.Products {
			if p.ID != productID {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(s.Products) {
			return ErrProductNotFound
		}
		s.Products = kept
		return nil
	})
}

func (c *Catalog) update(ctx context.Context, storeID string, fn func(*domain.Store) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stores := c.load(ctx)
	for i := range stores {
		if stores[i].ID != storeID {
			continue
		}
		if err := fn(&stores[i]); err != nil {
			return err
		}
		return c.write(ctx, stores)
	}
	return ErrStoreNotFound
}

func (c *Catalog) load(ctx context.Context) []domain.Store {
	raw, err := c.storage.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return []domain.Store{}
	}
	if err != nil {
		c.log.ErrorContext(ctx, "error loading stores", "error", err)
		return []domain.Store{}
	}

	var stores []domain.Store
	if err := json.Unmarshal([]byte(raw), &stores); err != nil {
		c.log.ErrorContext(ctx, "error parsing stores", "error", err)
		return []domain.Store{}
	}
	if stores == nil {
		stores = []domain.Store{}
	}
	return stores
}

func (c *Catalog) write(ctx context.Context, stores []domain.Store) error {
	data, err := json.Marshal(stores)
	if err != nil {
		return fmt.Errorf("marshal stores failed: %w", err)
	}
	if err := c.storage.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to save stores: %w", err)
	}
	return nil
}
