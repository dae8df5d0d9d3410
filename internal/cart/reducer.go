// Package cart holds the shopping cart state machine. Reduce is a pure
// function from (state, command) to a new state; Store wraps it with
// persistence.
package cart

import "github.com/fjod/go_storefront/internal/domain"

// Command is one of AddItem, RemoveItem, UpdateQuantity, Clear or Load.
type Command interface {
	isCommand()
}

// AddItem merges into the line with the same product and store, or appends a
// new line. Quantity 0 means 1.
type AddItem struct {
	Product  domain.Product
	StoreID  string
	Quantity int
}

type RemoveItem struct {
	LineID string
}

// UpdateQuantity with Quantity <= 0 removes the line.
type UpdateQuantity struct {
	LineID   string
	Quantity int
}

type Clear struct{}

// Load replaces the state with a persisted snapshot.
type Load struct {
	State domain.CartState
}

func (AddItem) isCommand()        {}
func (RemoveItem) isCommand()     {}
func (UpdateQuantity) isCommand() {}
func (Clear) isCommand()          {}
func (Load) isCommand()           {}

// IDFunc generates identifiers for new cart lines.
type IDFunc func() string

// Reduce applies cmd to state and returns the resulting state. state is not
// modified. Unknown line ids are no-ops.
func Reduce(state domain.CartState, cmd Command, newID IDFunc) domain.CartState {
	var lines []domain.CartLine

	switch c := cmd.(type) {
	case AddItem:
		qty := c.Quantity
		if qty == 0 {
			qty = 1
		}
		lines = copyLines(state.Items)
		idx := indexOf(lines, func(l domain.CartLine) bool {
			return l.Product.ID == c.Product.ID && l.StoreID == c.StoreID
		})
		if idx >= 0 {
			lines[idx].Quantity += qty
		} else {
			lines = append(lines, domain.CartLine{
				ID:       newID(),
				Product:  c.Product,
				Quantity: qty,
				StoreID:  c.StoreID,
			})
		}

	case RemoveItem:
		lines = without(state.Items, c.LineID)

	case UpdateQuantity:
		if c.Quantity <= 0 {
			lines = without(state.Items, c.LineID)
			break
		}
		lines = copyLines(state.Items)
		for i := range lines {
			if lines[i].ID == c.LineID {
				lines[i].Quantity = c.Quantity
			}
		}

	case Clear:
		return domain.EmptyCart()

	case Load:
		lines = copyLines(c.State.Items)

	default:
		return state
	}

	return withTotals(lines)
}

// Totals recomputes the aggregates from scratch.
func Totals(lines []domain.CartLine) (total float64, itemCount int) {
	for _, l := range lines {
		total += l.Product.Price * float64(l.Quantity)
		itemCount += l.Quantity
	}
	return total, itemCount
}

// LinesForStore returns, in cart order, the lines added from storeID.
func LinesForStore(state domain.CartState, storeID string) []domain.CartLine {
	out := make([]domain.CartLine, 0)
	for _, l := range state.Items {
		if l.StoreID == storeID {
			out = append(out, l)
		}
	}
	return out
}

func LinesAll(state domain.CartState) []domain.CartLine {
	return copyLines(state.Items)
}

func withTotals(lines []domain.CartLine) domain.CartState {
	total, count := Totals(lines)
	return domain.CartState{Items: lines, Total: total, ItemCount: count}
}

func copyLines(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out
}

func without(lines []domain.CartLine, lineID string) []domain.CartLine {
	out := make([]domain.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ID != lineID {
			out = append(out, l)
		}
	}
	return out
}

func indexOf(lines []domain.CartLine, match func(domain.CartLine) bool) int {
	for i, l := range lines {
		if match(l) {
			return i
		}
	}
	return -1
}
