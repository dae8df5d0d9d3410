package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_storefront/internal/catalog"
)

const maxAddQuantity = 99

type AddItemRequestDTO struct {
	StoreID   string `json:"storeId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

func (h *handler) getCart(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.Cart.State())
}

func (h *handler) getStoreCart(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, newStoreCart(h.Cart.LinesForStore(chi.URLParam(r, "storeID"))))
}

// addItem puts a catalog product into the cart. Quantity 0 means one.
func (h *handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := decodeJSON(w, r, h.MaxBodySize, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.StoreID) == "" || strings.TrimSpace(req.ProductID) == "" {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "storeId and productId are required")
		return
	}
	if req.Quantity < 0 || req.Quantity > maxAddQuantity {
		h.respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	s, err := h.Catalog.Get(r.Context(), req.StoreID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	p, ok := s.Product(req.ProductID)
	if !ok {
		h.handleError(w, r, catalog.ErrProductNotFound)
		return
	}

	h.respondJSON(w, http.StatusCreated, h.Cart.AddItem(r.Context(), p, s.ID, req.Quantity))
}

// updateQuantity sets a line's quantity. Zero or less removes the line and an
// unknown line leaves the cart unchanged.
func (h *handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequestDTO
	if err := decodeJSON(w, r, h.MaxBodySize, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	h.respondJSON(w, http.StatusOK, h.Cart.UpdateQuantity(r.Context(), chi.URLParam(r, "lineID"), req.Quantity))
}

// removeItem is idempotent: removing a line twice answers with the same cart.
func (h *handler) removeItem(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.Cart.RemoveItem(r.Context(), chi.URLParam(r, "lineID")))
}

func (h *handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.Cart.Clear(r.Context()))
}
