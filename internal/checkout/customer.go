package checkout

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIncompleteCustomer = errors.New("customer information is incomplete")

type CustomerInfo struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

// Validate requires every field except Phone.
func (c CustomerInfo) Validate() error {
	required := []struct {
		name, value string
	}{
		{"email", c.Email},
		{"firstName", c.FirstName},
		{"lastName", c.LastName},
		{"address", c.Address},
		{"city", c.City},
		{"zipCode", c.ZipCode},
		{"country", c.Country},
	}
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteCustomer, strings.Join(missing, ", "))
	}
	if !strings.Contains(c.Email, "@") {
		return fmt.Errorf("%w: email is not valid", ErrIncompleteCustomer)
	}
	return nil
}
