package domain

// CartLine is one product in the cart, scoped to the store it was added from.
// Lines merge on (Product.ID, StoreID) and are addressed by ID.
type CartLine struct {
	ID       string  `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	StoreID  string  `json:"storeId"`
}

// CartState is the full cart snapshot. Total and ItemCount are derived from Items.
type CartState struct {
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}

func EmptyCart() CartState {
	return CartState{Items: []CartLine{}}
}
