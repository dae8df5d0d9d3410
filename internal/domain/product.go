package domain

import (
	"errors"
	"strings"
)

var (
	ErrMissingField = errors.New("please fill in all required fields")
	ErrInvalidPrice = errors.New("please enter a valid price")
)

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	InStock     bool    `json:"inStock"`
}

// Validate runs the manager form checks. The cart and catalog storage never call it.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" ||
		strings.TrimSpace(p.Description) == "" ||
		strings.TrimSpace(p.Category) == "" {
		return ErrMissingField
	}
	if p.Price <= 0 {
		return ErrInvalidPrice
	}
	return nil
}
