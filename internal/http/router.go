// Package http exposes the storefront over a JSON API.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fjod/go_storefront/internal/auth"
	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/generator"
)

const defaultMaxBodySize = 1 << 20

// Suggester fills in product details for the manager form.
type Suggester interface {
	ProductDetails(ctx context.Context, storeType, productName string) (generator.ProductSuggestion, error)
}

type Deps struct {
	Cart      *cart.Store
	Catalog   *catalog.Catalog
	Generator *generator.Service
	Checkout  *checkout.Service
	Auth      *auth.Auth
	Suggester Suggester
	Log       *slog.Logger

	RequestTimeout time.Duration
	MaxBodySize    int64
}

type handler struct {
	Deps
}

// NewRouter wires every route and wraps the result in otel instrumentation.
func NewRouter(d Deps) http.Handler {
	if d.MaxBodySize <= 0 {
		d.MaxBodySize = defaultMaxBodySize
	}
	if d.RequestTimeout <= 0 {
		d.RequestTimeout = 30 * time.Second
	}
	d.Log = d.Log.With("component", "http")
	h := &handler{Deps: d}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(d.Log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(d.RequestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/stores/{storeID}", h.redirectToStore)
	r.Get("/stores/{storeID}/{slug}", h.storePage)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/stores", func(r chi.Router) {
			r.Get("/", h.listStores)
			r.Post("/generate", h.generateStore)
			r.Route("/{storeID}", func(r chi.Router) {
				r.Get("/", h.getStore)
				r.Get("/products/{productID}/image.png", h.productImage)
				r.Get("/checkout", h.checkoutSummary)
				r.Post("/checkout", h.placeOrder)
				r.Post("/contact", h.contact)
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.getCart)
			r.Delete("/", h.clearCart)
			r.Get("/stores/{storeID}", h.getStoreCart)
			r.Post("/items", h.addItem)
			r.Put("/items/{lineID}", h.updateQuantity)
			r.Delete("/items/{lineID}", h.removeItem)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Get("/", h.authStatus)
			r.Post("/login", h.login)
			r.Post("/logout", h.logout)
		})

		r.Route("/manager", func(r chi.Router) {
			r.Use(RequireManager(d.Auth, d.Log))
			r.Delete("/stores/{storeID}", h.deleteStore)
			r.Post("/stores/{storeID}/products", h.addProduct)
			r.Post("/stores/{storeID}/products/suggest", h.suggestProduct)
			r.Put("/stores/{storeID}/products/{productID}", h.updateProduct)
			r.Delete("/stores/{storeID}/products/{productID}", h.deleteProduct)
		})
	})

	return otelhttp.NewHandler(r, "storefront")
}
