package webhook

// EventDTO is the JSON body POSTed for every order event.
type EventDTO struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	OrderID    int       `json:"order_id"`
	Message    string    `json:"message"`
	OccurredAt string    `json:"occurred_at"`
	Data       EventData `json:"data"`
}

// EventData carries the fields specific to the event type. Unused fields are
// omitted.
type EventData struct {
	Customer string      `json:"customer,omitempty"`
	ShipTo   *AddressDTO `json:"ship_to,omitempty"`
	Line     *LineDTO    `json:"line,omitempty"`
	Total    *MoneyDTO   `json:"total,omitempty"`
	Reason   string      `json:"reason,omitempty"`
}

// AddressDTO is a shipping address.
type AddressDTO struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// LineDTO is an order line.
type LineDTO struct {
	SKU       string   `json:"sku"`
	Quantity  int      `json:"quantity"`
	UnitPrice MoneyDTO `json:"unit_price"`
}

// MoneyDTO is an amount in minor units.
type MoneyDTO struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency,omitempty"`
}
