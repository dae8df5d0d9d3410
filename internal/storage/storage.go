// Package storage is the key-value persistence used for the cart, the store
// catalog and the manager session flag. Every backend stores opaque strings
// under string keys with last-write-wins semantics.
package storage

import (
	"context"
	"errors"
)

type Storage interface {
	// Get returns ErrNotFound when nothing is stored under key.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes key; removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

var (
	ErrNotFound       = errors.New("key not found")
	ErrUnknownBackend = errors.New("unknown storage backend")
)
