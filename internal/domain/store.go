package domain

import "time"

type StoreTheme struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	AccentColor     string `json:"accentColor"`
}

type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Store struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Category     string      `json:"category"`
	Theme        StoreTheme  `json:"theme"`
	Products     []Product   `json:"products"`
	AboutContent string      `json:"aboutContent"`
	ContactInfo  ContactInfo `json:"contactInfo"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// Product returns the product with the given id.
func (s Store) Product(id string) (Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
