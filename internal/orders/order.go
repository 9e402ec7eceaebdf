// Package orders is a small ordering domain built on the domain primitives.
// Order is an aggregate root that records an event for every state change;
// Money and Address are value objects.
package orders

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/go-domain-primitives/domain"
)

// AggregateName is the aggregate name reported by Order.
const AggregateName = "order"

var _ domain.AggregateRoot = (*Order)(nil)

// Line is a single product line of an order.
type Line struct {
	SKU       string
	Quantity  int
	UnitPrice Money
}

// Subtotal returns the quantity times the unit price. Lines accepted by
// Order.AddLine never overflow.
func (l Line) Subtotal() Money {
	sub, _ := l.UnitPrice.Times(l.Quantity)
	return sub
}

// Order is a customer order. All mutation goes through its methods, each of
// which records a domain event.
type Order struct {
	domain.Entity

	customer string
	shipTo   Address
	lines    []Line
	status   Status
	placedAt time.Time
}

// Place creates a pending order and records OrderPlaced.
func Place(id int, customer string, shipTo Address) (*Order, error) {
	customer = strings.TrimSpace(customer)

	fields := make(map[string]string)
	if id <= 0 {
		fields["id"] = domain.MsgPositive
	}
	if customer == "" {
		fields["customer"] = domain.MsgRequired
	}
	if shipTo == (Address{}) {
		fields["ship_to"] = domain.MsgRequired
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	o := &Order{
		Entity:   domain.NewEntity(id),
		customer: customer,
		shipTo:   shipTo,
		status:   StatusPending,
		placedAt: time.Now().UTC(),
	}
	o.AddDomainEvent(newOrderPlaced(o))

	return o, nil
}

// AggregateName tags Order as an aggregate root.
func (o *Order) AggregateName() string { return AggregateName }

// Customer returns the customer name.
func (o *Order) Customer() string { return o.customer }

// ShipTo returns the shipping address.
func (o *Order) ShipTo() Address { return o.shipTo }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// PlacedAt returns when the order was created.
func (o *Order) PlacedAt() time.Time { return o.placedAt }

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line { return slices.Clone(o.lines) }

// Total returns the sum of all line subtotals. An order without lines has a
// zero total with no currency.
func (o *Order) Total() Money {
	var total Money
	for i, l := range o.lines {
		if i == 0 {
			total = l.Subtotal()
			continue
		}
		// AddLine guarantees a single currency and an in-range sum.
		total, _ = total.Add(l.Subtotal())
	}
	return total
}

// AddLine appends a product line and records LineAdded. Only pending orders
// accept lines, and all lines must share a currency.
func (o *Order) AddLine(sku string, quantity int, unitPrice Money) error {
	if err := o.requireStatus(StatusPending, "add a line to"); err != nil {
		return err
	}

	sku = strings.TrimSpace(sku)

	fields := make(map[string]string)
	if sku == "" {
		fields["sku"] = domain.MsgRequired
	}
	if quantity <= 0 {
		fields["quantity"] = domain.MsgPositive
	}
	if unitPrice.Currency == "" {
		fields["unit_price"] = domain.MsgRequired
	} else if len(o.lines) > 0 && o.lines[0].UnitPrice.Currency != unitPrice.Currency {
		fields["unit_price.currency"] = fmt.Sprintf("%s: order is priced in %s",
			ErrCurrencyMismatch, o.lines[0].UnitPrice.Currency)
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}

	l := Line{SKU: sku, Quantity: quantity, UnitPrice: unitPrice}
	if err := o.checkAmounts(l); err != nil {
		return err
	}
	o.lines = append(o.lines, l)
	o.AddDomainEvent(newLineAdded(o, l))

	return nil
}

// checkAmounts rejects a line whose subtotal, or the order total including
// it, does not fit in an int64.
func (o *Order) checkAmounts(l Line) error {
	sub, err := l.UnitPrice.Times(l.Quantity)
	if err == nil && len(o.lines) > 0 {
		_, err = o.Total().Add(sub)
	}
	if err != nil {
		return &domain.ValidationError{Fields: map[string]string{
			"quantity": fmt.Sprintf("%s for quantity %d at %s", ErrAmountOverflow, l.Quantity, l.UnitPrice),
		}}
	}
	return nil
}

// Ship marks a pending order with at least one line as shipped and records
// OrderShipped.
func (o *Order) Ship() error {
	if err := o.requireStatus(StatusPending, "ship"); err != nil {
		return err
	}
	if len(o.lines) == 0 {
		return fmt.Errorf("%w: order %d has no lines", domain.ErrConflict, o.ID())
	}

	o.status = StatusShipped
	o.AddDomainEvent(newOrderShipped(o))

	return nil
}

// Cancel abandons a pending order and records OrderCancelled.
func (o *Order) Cancel(reason string) error {
	if err := o.requireStatus(StatusPending, "cancel"); err != nil {
		return err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domain.NewValidationError("reason", domain.MsgRequired)
	}

	o.status = StatusCancelled
	o.AddDomainEvent(newOrderCancelled(o, reason))

	return nil
}

// Clone returns a deep copy of o, including its pending domain events.
func (o *Order) Clone() *Order {
	c := *o
	c.lines = slices.Clone(o.lines)
	c.ClearDomainEvents()
	for _, ev := range o.DomainEvents() {
		c.AddDomainEvent(ev)
	}
	return &c
}

func (o *Order) requireStatus(want Status, action string) error {
	if o.status != want {
		return fmt.Errorf("%w: cannot %s order %d in status %s", domain.ErrConflict, action, o.ID(), o.status)
	}
	return nil
}
