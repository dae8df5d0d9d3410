package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidContent = errors.New("invalid store content")

// ProductDraft is a generated product before it gets an id and stock flag.
type ProductDraft struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// StoreContent is what a content generator returns for a prompt.
type StoreContent struct {
	StoreName        string         `json:"storeName"`
	StoreDescription string         `json:"storeDescription"`
	AboutContent     string         `json:"aboutContent"`
	Products         []ProductDraft `json:"products"`
}

func (c StoreContent) Validate() error {
	if strings.TrimSpace(c.StoreName) == "" {
		return fmt.Errorf("%w: storeName is empty", ErrInvalidContent)
	}
	if len(c.Products) == 0 {
		return fmt.Errorf("%w: no products", ErrInvalidContent)
	}
	for i, p := range c.Products {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: product %d has no name", ErrInvalidContent, i)
		}
		if p.Price < 0 {
			return fmt.Errorf("%w: product %q has a negative price", ErrInvalidContent, p.Name)
		}
	}
	return nil
}
