package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_storefront/internal/catalog"
)

type SuggestRequestDTO struct {
	Name string `json:"name"`
}

type authStatusDTO struct {
	Authenticated bool `json:"authenticated"`
}

func (h *handler) authStatus(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, authStatusDTO{Authenticated: h.Auth.IsAuthenticated(r.Context())})
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Login(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, authStatusDTO{Authenticated: true})
}

func (h *handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, authStatusDTO{Authenticated: false})
}

func (h *handler) deleteStore(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")
	if _, err := h.Catalog.Get(r.Context(), storeID); err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.Catalog.Delete(r.Context(), storeID); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) addProduct(w http.ResponseWriter, r *http.Request) {
	var in catalog.ProductInput
	if err := decodeJSON(w, r, h.MaxBodySize, &in); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	p, err := h.Catalog.AddProduct(r.Context(), chi.URLParam(r, "storeID"), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, p)
}

func (h *handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var in catalog.ProductInput
	if err := decodeJSON(w, r, h.MaxBodySize, &in); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	p, err := h.Catalog.UpdateProduct(r.Context(), chi.URLParam(r, "storeID"), chi.URLParam(r, "productID"), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, p)
}

func (h *handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteProduct(r.Context(), chi.URLParam(r, "storeID"), chi.URLParam(r, "productID")); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// suggestProduct asks the LLM for a description, price and category.
func (h *handler) suggestProduct(w http.ResponseWriter, r *http.Request) {
	s, err := h.Catalog.Get(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	var req SuggestRequestDTO
	if err := decodeJSON(w, r, h.MaxBodySize, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}
	if h.Suggester == nil {
		h.respondError(w, http.StatusServiceUnavailable, "ai_unavailable", "product suggestions are not configured")
		return
	}

	sug, err := h.Suggester.ProductDetails(r.Context(), s.Category, req.Name)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, sug)
}
