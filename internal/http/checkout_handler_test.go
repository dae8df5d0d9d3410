package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_storefront/internal/checkout"
)

func customer() checkout.CustomerInfo {
	return checkout.CustomerInfo{
		Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace",
		Address: "1 Analytical Way", City: "London", ZipCode: "N1", Country: "UK",
	}
}

func TestCheckout(t *testing.T) {
	env := newTestEnv(t)
	env.seedStore(t)
	env.do(t, http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{StoreID: "s1", ProductID: "p2", Quantity: 2})

	rec := env.do(t, http.MethodGet, "/api/v1/stores/s1/checkout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sum := decode[checkoutSummaryDTO](t, rec)
	assert.Len(t, sum.Items, 1)
	assert.Equal(t, checkout.Summary{Subtotal: 20, Tax: 1.6, Shipping: 5.99, Total: 27.59}, sum.Summary)

	rec = env.do(t, http.MethodPost, "/api/v1/stores/s1/checkout", customer())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	order := decode[checkout.Order](t, rec)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 27.59, order.Summary.Total)

	assert.Empty(t, env.cart.State().Items)

	rec = env.do(t, http.MethodPost, "/api/v1/stores/s1/checkout", customer())
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "empty_cart", decode[ErrorResponse](t, rec).Code)
}

func TestCheckout_IncompleteCustomer(t *testing.T) {
	env := newTestEnv(t)
	env.seedStore(t)
	env.do(t, http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{StoreID: "s1", ProductID: "p2"})

	c := customer()
	c.ZipCode = ""
	rec := env.do(t, http.MethodPost, "/api/v1/stores/s1/checkout", c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[ErrorResponse](t, rec)
	assert.Equal(t, "incomplete_customer", resp.Code)
	assert.Contains(t, resp.Details, "zipCode")
	assert.Len(t, env.cart.State().Items, 1)
}

func TestCheckout_UnknownStore(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/v1/stores/nope/checkout", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContact(t *testing.T) {
	env := newTestEnv(t)
	env.seedStore(t)

	rec := env.do(t, http.MethodPost, "/api/v1/stores/s1/contact", ContactRequestDTO{Name: "Ada", Email: "ada@example.com", Message: "Hi"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contactThanks, decode[map[string]string](t, rec)["message"])

	rec = env.do(t, http.MethodPost, "/api/v1/stores/s1/contact", ContactRequestDTO{Name: "Ada"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
