package cart

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fjod/go_storefront/internal/domain"
)

var ErrInvalidSnapshot = errors.New("invalid cart snapshot")

func Encode(state domain.CartState) ([]byte, error) {
	if state.Items == nil {
		state.Items = []domain.CartLine{}
	}
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("marshal cart failed: %w", err)
	}
	return data, nil
}

// Decode parses a persisted cart and rejects snapshots whose lines lack an
// identity. Quantities and prices are taken as stored, since the reducer can
// produce any integer quantity. Aggregates are recomputed rather than trusted.
func Decode(data []byte) (domain.CartState, error) {
	var state domain.CartState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.CartState{}, fmt.Errorf("%w: unmarshal cart failed: %v", ErrInvalidSnapshot, err)
	}

	seen := make(map[string]struct{}, len(state.Items))
	for i, l := range state.Items {
		switch {
		case l.ID == "":
			return domain.CartState{}, fmt.Errorf("%w: line %d has no id", ErrInvalidSnapshot, i)
		case l.StoreID == "":
			return domain.CartState{}, fmt.Errorf("%w: line %s has no store id", ErrInvalidSnapshot, l.ID)
		case l.Product.ID == "":
			return domain.CartState{}, fmt.Errorf("%w: line %s has no product id", ErrInvalidSnapshot, l.ID)
		}
		if _, dup := seen[l.ID]; dup {
			return domain.CartState{}, fmt.Errorf("%w: duplicate line id %s", ErrInvalidSnapshot, l.ID)
		}
		seen[l.ID] = struct{}{}
	}

	if state.Items == nil {
		state.Items = []domain.CartLine{}
	}
	return withTotals(state.Items), nil
}
