package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/domain"
)

const contactThanks = "Thank you for your message! We will get back to you soon."

type checkoutSummaryDTO struct {
	Items   []domain.CartLine `json:"items"`
	Summary checkout.Summary  `json:"summary"`
}

type ContactRequestDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *handler) checkoutSummary(w http.ResponseWriter, r *http.Request) {
	s, err := h.Catalog.Get(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	lines, summary := h.Checkout.Summary(s.ID)
	h.respondJSON(w, http.StatusOK, checkoutSummaryDTO{Items: lines, Summary: summary})
}

func (h *handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	s, err := h.Catalog.Get(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	var customer checkout.CustomerInfo
	if err := decodeJSON(w, r, h.MaxBodySize, &customer); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	order, err := h.Checkout.PlaceOrder(r.Context(), s.ID, customer)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, order)
}

// contact accepts the store contact form. Messages are only logged.
func (h *handler) contact(w http.ResponseWriter, r *http.Request) {
	s, err := h.Catalog.Get(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	var req ContactRequestDTO
	if err := decodeJSON(w, r, h.MaxBodySize, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "name, email and message are required")
		return
	}

	h.Log.InfoContext(r.Context(), "contact message received", "store_id", s.ID, "email", req.Email)
	h.respondJSON(w, http.StatusOK, map[string]string{"message": contactThanks})
}
