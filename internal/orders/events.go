package orders

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-domain-primitives/domain"
)

// Header carries the fields shared by every order event.
type Header struct {
	domain.Message
	EventID    uuid.UUID
	OccurredAt time.Time
}

// Event is implemented by every order event.
type Event interface {
	domain.NotificationMessage
	// Meta returns the shared event fields.
	Meta() Header
	// Order returns the ID of the order the event belongs to.
	Order() int
}

var (
	_ Event = OrderPlaced{}
	_ Event = LineAdded{}
	_ Event = OrderShipped{}
	_ Event = OrderCancelled{}
)

// Meta returns h.
func (h Header) Meta() Header { return h }

func newHeader(text string) Header {
	return Header{
		Message:    domain.NewMessage(text),
		EventID:    uuid.New(),
		OccurredAt: time.Now().UTC(),
	}
}

// OrderPlaced is recorded when an order is created.
type OrderPlaced struct {
	Header
	OrderID  int
	Customer string
	ShipTo   Address
}

func (e OrderPlaced) Order() int { return e.OrderID }

// LineAdded is recorded when a line is added to a pending order.
type LineAdded struct {
	Header
	OrderID int
	Line    Line
}

func (e LineAdded) Order() int { return e.OrderID }

// OrderShipped is recorded when an order leaves the warehouse.
type OrderShipped struct {
	Header
	OrderID int
	Total   Money
}

func (e OrderShipped) Order() int { return e.OrderID }

// OrderCancelled is recorded when a pending order is abandoned.
type OrderCancelled struct {
	Header
	OrderID int
	Reason  string
}

func (e OrderCancelled) Order() int { return e.OrderID }

func newOrderPlaced(o *Order) OrderPlaced {
	return OrderPlaced{
		Header:   newHeader(fmt.Sprintf("Order %d placed by %s.", o.ID(), o.customer)),
		OrderID:  o.ID(),
		Customer: o.customer,
		ShipTo:   o.shipTo,
	}
}

func newLineAdded(o *Order, l Line) LineAdded {
	return LineAdded{
		Header:  newHeader(fmt.Sprintf("%d x %s added to order %d.", l.Quantity, l.SKU, o.ID())),
		OrderID: o.ID(),
		Line:    l,
	}
}

func newOrderShipped(o *Order) OrderShipped {
	total := o.Total()
	return OrderShipped{
		Header:  newHeader(fmt.Sprintf("Order %d shipped, total %s.", o.ID(), total)),
		OrderID: o.ID(),
		Total:   total,
	}
}

func newOrderCancelled(o *Order, reason string) OrderCancelled {
	return OrderCancelled{
		Header:  newHeader(fmt.Sprintf("Order %d cancelled: %s.", o.ID(), reason)),
		OrderID: o.ID(),
		Reason:  reason,
	}
}
