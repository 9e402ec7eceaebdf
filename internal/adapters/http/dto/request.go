package dto

import (
	"errors"
	"strings"

	"github.com/jsamuelsen11/go-domain-primitives/domain"
	"github.com/jsamuelsen11/go-domain-primitives/internal/orders"
)

// AddressRequest is the JSON form of a shipping address.
type AddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// MoneyRequest is the JSON form of an amount in minor units.
type MoneyRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PlaceOrderRequest represents the JSON body for placing a new order.
type PlaceOrderRequest struct {
	Customer string         `json:"customer"`
	ShipTo   AddressRequest `json:"ship_to"`
}

// Validate checks that required fields are present and converts the address
// into a value object. Returns a *domain.ValidationError if any checks fail.
func (r *PlaceOrderRequest) Validate() (orders.Address, error) {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Customer) == "" {
		fields["customer"] = domain.MsgRequired
	}

	addr, err := orders.NewAddress(r.ShipTo.Street, r.ShipTo.City, r.ShipTo.PostalCode, r.ShipTo.Country)
	mergeFields(fields, "ship_to.", err)

	if len(fields) > 0 {
		return orders.Address{}, &domain.ValidationError{Fields: fields}
	}
	return addr, nil
}

// AddLineRequest represents the JSON body for adding a line to an order.
type AddLineRequest struct {
	SKU       string       `json:"sku"`
	Quantity  int          `json:"quantity"`
	UnitPrice MoneyRequest `json:"unit_price"`
}

// Validate checks the line fields and converts the unit price into a value
// object. Returns a *domain.ValidationError if any checks fail.
func (r *AddLineRequest) Validate() (orders.Money, error) {
	fields := make(map[string]string)

	if strings.TrimSpace(r.SKU) == "" {
		fields["sku"] = domain.MsgRequired
	}
	if r.Quantity <= 0 {
		fields["quantity"] = domain.MsgPositive
	}

	price, err := orders.NewMoney(r.UnitPrice.Amount, r.UnitPrice.Currency)
	mergeFields(fields, "unit_price.", err)

	if len(fields) > 0 {
		return orders.Money{}, &domain.ValidationError{Fields: fields}
	}
	return price, nil
}

// CancelOrderRequest represents the JSON body for cancelling an order.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// Validate checks that a reason is given.
func (r *CancelOrderRequest) Validate() error {
	if strings.TrimSpace(r.Reason) == "" {
		return domain.NewValidationError("reason", domain.MsgRequired)
	}
	return nil
}

// mergeFields copies the fields of a validation error into fields under
// prefix. Other errors are recorded against the bare prefix.
func mergeFields(fields map[string]string, prefix string, err error) {
	if err == nil {
		return
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		for k, v := range verr.Fields {
			fields[prefix+k] = v
		}
		return
	}
	fields[strings.TrimSuffix(prefix, ".")] = err.Error()
}
