package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/placeholder"
)

type GenerateRequestDTO struct {
	Prompt string `json:"prompt"`
}

type productView struct {
	domain.Product
	Image string `json:"image"`
}

type storeView struct {
	domain.Store
	Products []productView `json:"products"`
	URL      string        `json:"url"`
}

type GenerateResponseDTO struct {
	Store    storeView `json:"store"`
	URL      string    `json:"url"`
	Fallback bool      `json:"fallback"`
	Notice   string    `json:"notice,omitempty"`
}

type storeCartDTO struct {
	Items     []domain.CartLine `json:"items"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"itemCount"`
}

type storePageDTO struct {
	Store storeView    `json:"store"`
	Cart  storeCartDTO `json:"cart"`
}

func imagePath(storeID, productID string) string {
	return fmt.Sprintf("/api/v1/stores/%s/products/%s/image.png", storeID, productID)
}

func newStoreView(s domain.Store) storeView {
	products := make([]productView, 0, len(s.Products))
	for _, p := range s.Products {
		products = append(products, productView{
			Product: p,
			Image:   placeholder.ImageSource(p, imagePath(s.ID, p.ID)),
		})
	}
	return storeView{Store: s, Products: products, URL: catalog.URL(s)}
}

func newStoreCart(lines []domain.CartLine) storeCartDTO {
	total, count := cart.Totals(lines)
	return storeCartDTO{Items: lines, Total: total, ItemCount: count}
}

func (h *handler) generateStore(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequestDTO
	if err := decodeJSON(w, r, h.MaxBodySize, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		h.respondError(w, http.StatusBadRequest, "invalid_prompt", "prompt is required")
		return
	}

	res, err := h.Generator.Generate(r.Context(), req.Prompt)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.Catalog.Save(r.Context(), res.Store); err != nil {
		h.handleError(w, r, err)
		return
	}

	view := newStoreView(res.Store)
	h.respondJSON(w, http.StatusCreated, GenerateResponseDTO{
		Store:    view,
		URL:      view.URL,
		Fallback: res.Fallback,
		Notice:   res.Notice,
	})
}

func (h *handler) listStores(w http.ResponseWriter, r *http.Request) {
	stores := h.Catalog.All(r.Context())
	views := make([]storeView, 0, len(stores))
	for _, s := range stores {
		views = append(views, newStoreView(s))
	}
	h.respondJSON(w, http.StatusOK, views)
}

func (h *handler) getStore(w http.ResponseWriter, r *http.Request) {
	s, err := h.Catalog.Get(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, newStoreView(s))
}

func (h *handler) redirectToStore(w http.ResponseWriter, r *http.Request) {
	s, err := h.Catalog.Get(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	http.Redirect(w, r, catalog.URL(s), http.StatusMovedPermanently)
}

// storePage serves a store by its public URL. A stale slug redirects to the
// current one.
func (h *handler) storePage(w http.ResponseWriter, r *http.Request) {
	s, err := h.Catalog.Get(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if chi.URLParam(r, "slug") != catalog.Slug(s.Name) {
		http.Redirect(w, r, catalog.URL(s), http.StatusMovedPermanently)
		return
	}
	h.respondJSON(w, http.StatusOK, storePageDTO{
		Store: newStoreView(s),
		Cart:  newStoreCart(h.Cart.LinesForStore(s.ID)),
	})
}

func (h *handler) productImage(w http.ResponseWriter, r *http.Request) {
	s, err := h.Catalog.Get(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	p, ok := s.Product(chi.URLParam(r, "productID"))
	if !ok {
		h.handleError(w, r, catalog.ErrProductNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if err := placeholder.PNG(w, p.Name, placeholder.DefaultWidth, placeholder.DefaultHeight); err != nil {
		h.Log.ErrorContext(r.Context(), "failed to encode placeholder", "product_id", p.ID, "error", err)
	}
}
