package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/generator"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func writeJSON(log *slog.Logger, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("failed to encode response", "status", status, "error", err)
	}
}

func writeError(log *slog.Logger, w http.ResponseWriter, status int, code, message, details string) {
	writeJSON(log, w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

func (h *handler) respondJSON(w http.ResponseWriter, status int, data any) {
	writeJSON(h.Log, w, status, data)
}

func (h *handler) respondError(w http.ResponseWriter, status int, code, message string) {
	writeError(h.Log, w, status, code, message, "")
}

// decodeJSON reads a size-limited JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// handleError maps service errors onto HTTP statuses, the way the gateway
// maps gRPC codes.
func (h *handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var code string

	switch {
	case errors.Is(err, catalog.ErrStoreNotFound):
		status, code = http.StatusNotFound, "store_not_found"
	case errors.Is(err, catalog.ErrProductNotFound):
		status, code = http.StatusNotFound, "product_not_found"
	case errors.Is(err, catalog.ErrInvalidProduct):
		status, code = http.StatusBadRequest, "invalid_product"
	case errors.Is(err, checkout.ErrIncompleteCustomer):
		status, code = http.StatusBadRequest, "incomplete_customer"
	case errors.Is(err, generator.ErrEmptyPrompt):
		status, code = http.StatusBadRequest, "invalid_prompt"
	case errors.Is(err, checkout.ErrEmptyCart):
		status, code = http.StatusConflict, "empty_cart"
	case errors.Is(err, generator.ErrNotConfigured):
		status, code = http.StatusServiceUnavailable, "ai_unavailable"
	case errors.Is(err, generator.ErrEmptyResponse), errors.Is(err, generator.ErrInvalidResponse):
		status, code = http.StatusBadGateway, "ai_invalid_response"
	case errors.Is(err, context.DeadlineExceeded):
		status, code = http.StatusGatewayTimeout, "timeout"
	default:
		h.Log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		h.respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeError(h.Log, w, status, code, http.StatusText(status), err.Error())
}
