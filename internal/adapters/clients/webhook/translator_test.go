package webhook

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/go-domain-primitives/internal/orders"
)

// recordedEvents returns the events of a shipped order followed by the
// cancellation of a second one.
func recordedEvents(t *testing.T) []orders.Event {
	t.Helper()

	addr, err := orders.NewAddress("1 Main St", "Springfield", "12345", "us")
	if err != nil {
		t.Fatalf("NewAddress() error = %v", err)
	}
	price, err := orders.NewMoney(250, "EUR")
	if err != nil {
		t.Fatalf("NewMoney() error = %v", err)
	}

	shipped, err := orders.Place(1, "Ada", addr)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if err := shipped.AddLine("SKU-1", 2, price); err != nil {
		t.Fatalf("AddLine() error = %v", err)
	}
	if err := shipped.Ship(); err != nil {
		t.Fatalf("Ship() error = %v", err)
	}

	cancelled, err := orders.Place(2, "Grace", addr)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	cancelled.ClearDomainEvents()
	if err := cancelled.Cancel("duplicate"); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}

	var out []orders.Event
	for _, o := range []*orders.Order{shipped, cancelled} {
		for _, msg := range o.DomainEvents() {
			ev, ok := msg.(orders.Event)
			if !ok {
				t.Fatalf("event %T does not implement orders.Event", msg)
			}
			out = append(out, ev)
		}
	}
	return out
}

func TestToEventDTO(t *testing.T) {
	t.Parallel()

	evs := recordedEvents(t)
	if len(evs) != 4 {
		t.Fatalf("events = %d, want 4", len(evs))
	}

	placed := ToEventDTO(evs[0])
	if placed.Type != "OrderPlaced" || placed.OrderID != 1 {
		t.Errorf("placed = %s/%d, want OrderPlaced/1", placed.Type, placed.OrderID)
	}
	if placed.Data.Customer != "Ada" || placed.Data.ShipTo == nil || placed.Data.ShipTo.Country != "US" {
		t.Errorf("placed data = %+v, want customer Ada shipping to US", placed.Data)
	}
	if placed.EventID != evs[0].Meta().EventID.String() {
		t.Errorf("EventID = %q, want %q", placed.EventID, evs[0].Meta().EventID)
	}
	if _, err := time.Parse(time.RFC3339Nano, placed.OccurredAt); err != nil {
		t.Errorf("OccurredAt %q is not RFC 3339: %v", placed.OccurredAt, err)
	}
	if placed.Message != evs[0].NotificationMessage() {
		t.Errorf("Message = %q, want %q", placed.Message, evs[0].NotificationMessage())
	}

	line := ToEventDTO(evs[1])
	if line.Type != "LineAdded" || line.Data.Line == nil {
		t.Fatalf("line = %+v, want LineAdded with a line", line)
	}
	if got := *line.Data.Line; got.SKU != "SKU-1" || got.Quantity != 2 || got.UnitPrice != (MoneyDTO{250, "EUR"}) {
		t.Errorf("line data = %+v, want 2 x SKU-1 at 250 EUR", got)
	}

	shipped := ToEventDTO(evs[2])
	if shipped.Type != "OrderShipped" || shipped.Data.Total == nil || *shipped.Data.Total != (MoneyDTO{500, "EUR"}) {
		t.Errorf("shipped = %+v, want total 500 EUR", shipped)
	}

	cancelled := ToEventDTO(evs[3])
	if cancelled.Type != "OrderCancelled" || cancelled.OrderID != 2 || cancelled.Data.Reason != "duplicate" {
		t.Errorf("cancelled = %+v, want order 2 cancelled as duplicate", cancelled)
	}
	if cancelled.Data.ShipTo != nil || cancelled.Data.Line != nil || cancelled.Data.Total != nil {
		t.Errorf("cancelled data = %+v, want only a reason", cancelled.Data)
	}
}
