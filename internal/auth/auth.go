// Package auth keeps the single manager login flag in storage.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fjod/go_storefront/internal/storage"
)

const StorageKey = "isAuthenticated"

const authenticated = "true"

type Auth struct {
	storage storage.Storage
	log     *slog.Logger
}

func New(st storage.Storage, log *slog.Logger) *Auth {
	return &Auth{storage: st, log: log.With("component", "auth")}
}

func (a *Auth) Login(ctx context.Context) error {
	if err := a.storage.Set(ctx, StorageKey, authenticated); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	a.log.InfoContext(ctx, "manager logged in")
	return nil
}

func (a *Auth) Logout(ctx context.Context) error {
	if err := a.storage.Remove(ctx, StorageKey); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.log.InfoContext(ctx, "manager logged out")
	return nil
}

// IsAuthenticated reports whether the flag is set. Storage errors count as
// logged out.
func (a *Auth) IsAuthenticated(ctx context.Context) bool {
	v, err := a.storage.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.log.WarnContext(ctx, "error reading auth flag", "error", err)
		}
		return false
	}
	return v == authenticated
}
