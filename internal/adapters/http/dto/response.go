// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/go-domain-primitives/internal/orders"
	"github.com/jsamuelsen11/go-domain-primitives/internal/ports"
)

// MoneyResponse is the JSON form of an amount in minor units.
type MoneyResponse struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency,omitempty"`
}

// AddressResponse is the JSON form of a shipping address.
type AddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// LineResponse represents a single order line in HTTP responses.
type LineResponse struct {
	SKU       string        `json:"sku"`
	Quantity  int           `json:"quantity"`
	UnitPrice MoneyResponse `json:"unit_price"`
	Subtotal  MoneyResponse `json:"subtotal"`
}

// OrderResponse represents a single order in HTTP responses.
type OrderResponse struct {
	ID       int             `json:"id"`
	Customer string          `json:"customer"`
	ShipTo   AddressResponse `json:"ship_to"`
	Status   string          `json:"status"`
	Lines    []LineResponse  `json:"lines"`
	Total    MoneyResponse   `json:"total"`
	PlacedAt string          `json:"placed_at"`
}

// OrderListResponse represents a list of orders in HTTP responses.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Count  int             `json:"count"`
}

// OrderEventResponse represents one delivered order event.
type OrderEventResponse struct {
	EventID    string `json:"event_id"`
	Type       string `json:"type"`
	Message    string `json:"message"`
	OccurredAt string `json:"occurred_at"`
}

// OrderStreamEvent is one message of the live order event stream.
type OrderStreamEvent struct {
	OrderID int `json:"order_id"`
	OrderEventResponse
}

// OrderHistoryResponse lists the delivered events of an order.
type OrderHistoryResponse struct {
	OrderID int                  `json:"order_id"`
	Events  []OrderEventResponse `json:"events"`
	Count   int                  `json:"count"`
}

func toMoneyResponse(m orders.Money) MoneyResponse {
	return MoneyResponse{Amount: m.Amount, Currency: m.Currency}
}

// ToOrderResponse converts a domain Order to an HTTP response DTO.
func ToOrderResponse(o *orders.Order) OrderResponse {
	src := o.Lines()
	lines := make([]LineResponse, len(src))
	for i, l := range src {
		lines[i] = LineResponse{
			SKU:       l.SKU,
			Quantity:  l.Quantity,
			UnitPrice: toMoneyResponse(l.UnitPrice),
			Subtotal:  toMoneyResponse(l.Subtotal()),
		}
	}

	addr := o.ShipTo()
	return OrderResponse{
		ID:       o.ID(),
		Customer: o.Customer(),
		ShipTo: AddressResponse{
			Street:     addr.Street,
			City:       addr.City,
			PostalCode: addr.PostalCode,
			Country:    addr.Country,
		},
		Status:   o.Status().String(),
		Lines:    lines,
		Total:    toMoneyResponse(o.Total()),
		PlacedAt: o.PlacedAt().Format(time.RFC3339),
	}
}

// ToOrderListResponse converts a slice of domain Orders to an HTTP list
// response DTO.
func ToOrderListResponse(list []*orders.Order) OrderListResponse {
	items := make([]OrderResponse, len(list))
	for i, o := range list {
		items[i] = ToOrderResponse(o)
	}
	return OrderListResponse{
		Orders: items,
		Count:  len(items),
	}
}

// ToOrderHistoryResponse converts delivered order events to an HTTP response
// DTO.
func ToOrderHistoryResponse(orderID int, entries []ports.OrderEvent) OrderHistoryResponse {
	items := make([]OrderEventResponse, len(entries))
	for i, e := range entries {
		items[i] = toOrderEventResponse(e)
	}
	return OrderHistoryResponse{
		OrderID: orderID,
		Events:  items,
		Count:   len(items),
	}
}

// ToOrderStreamEvent converts a delivered order event to a stream message.
func ToOrderStreamEvent(e ports.OrderEvent) OrderStreamEvent {
	return OrderStreamEvent{
		OrderID:            e.OrderID,
		OrderEventResponse: toOrderEventResponse(e),
	}
}

func toOrderEventResponse(e ports.OrderEvent) OrderEventResponse {
	return OrderEventResponse{
		EventID:    e.EventID.String(),
		Type:       e.Type,
		Message:    e.Message,
		OccurredAt: e.OccurredAt.Format(time.RFC3339Nano),
	}
}
