package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-domain-primitives/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-domain-primitives/internal/orders"
	"github.com/jsamuelsen11/go-domain-primitives/internal/ports"
)

func placedOrder(t *testing.T) *orders.Order {
	t.Helper()
	addr, err := orders.NewAddress("1 Main St", "Springfield", "12345", "US")
	if err != nil {
		t.Fatalf("NewAddress() error = %v", err)
	}
	o, err := orders.Place(7, "Ada", addr)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	price, err := orders.NewMoney(150, "EUR")
	if err != nil {
		t.Fatalf("NewMoney() error = %v", err)
	}
	if err := o.AddLine("SKU-1", 2, price); err != nil {
		t.Fatalf("AddLine() error = %v", err)
	}
	return o
}

func TestToOrderResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToOrderResponse(placedOrder(t))

	if got.ID != 7 {
		t.Errorf("ID = %d, want 7", got.ID)
	}
	if got.Customer != "Ada" {
		t.Errorf("Customer = %q, want %q", got.Customer, "Ada")
	}
	if got.Status != "pending" {
		t.Errorf("Status = %q, want %q", got.Status, "pending")
	}
	if got.ShipTo.Country != "US" {
		t.Errorf("ShipTo.Country = %q, want %q", got.ShipTo.Country, "US")
	}
	if len(got.Lines) != 1 {
		t.Fatalf("len(Lines) = %d, want 1", len(got.Lines))
	}
	if got.Lines[0].Subtotal.Amount != 300 {
		t.Errorf("Lines[0].Subtotal.Amount = %d, want 300", got.Lines[0].Subtotal.Amount)
	}
	if got.Total != (dto.MoneyResponse{Amount: 300, Currency: "EUR"}) {
		t.Errorf("Total = %+v, want 300 EUR", got.Total)
	}
	if _, err := time.Parse(time.RFC3339, got.PlacedAt); err != nil {
		t.Errorf("PlacedAt %q is not RFC 3339: %v", got.PlacedAt, err)
	}
}

func TestToOrderResponse_EmptyLinesEncodeAsArray(t *testing.T) {
	t.Parallel()

	addr, _ := orders.NewAddress("1 Main St", "Springfield", "12345", "US")
	o, err := orders.Place(1, "Ada", addr)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	b, err := json.Marshal(dto.ToOrderResponse(o))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, ok := raw["lines"].([]any); !ok {
		t.Errorf("lines = %v, want a JSON array", raw["lines"])
	}
}

func TestToOrderListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToOrderListResponse([]*orders.Order{placedOrder(t), placedOrder(t)})
	if got.Count != 2 || len(got.Orders) != 2 {
		t.Errorf("Count = %d, len(Orders) = %d, want 2", got.Count, len(got.Orders))
	}

	empty := dto.ToOrderListResponse(nil)
	if empty.Orders == nil || empty.Count != 0 {
		t.Errorf("empty list = %+v, want non-nil empty slice", empty)
	}
}

func TestToOrderHistoryResponse(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	at := time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)
	got := dto.ToOrderHistoryResponse(3, []ports.OrderEvent{
		{EventID: id, Type: "OrderPlaced", Message: "Order 3 placed by Ada.", OccurredAt: at},
	})

	if got.OrderID != 3 || got.Count != 1 {
		t.Fatalf("OrderID = %d, Count = %d, want 3 and 1", got.OrderID, got.Count)
	}
	ev := got.Events[0]
	if ev.EventID != id.String() {
		t.Errorf("EventID = %q, want %q", ev.EventID, id.String())
	}
	if ev.Type != "OrderPlaced" {
		t.Errorf("Type = %q, want %q", ev.Type, "OrderPlaced")
	}
	if ev.OccurredAt != "2026-02-12T15:04:05Z" {
		t.Errorf("OccurredAt = %q, want %q", ev.OccurredAt, "2026-02-12T15:04:05Z")
	}
}

func TestToOrderStreamEvent_FlattensJSON(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	msg := dto.ToOrderStreamEvent(ports.OrderEvent{
		OrderID:    7,
		EventID:    id,
		Type:       "OrderShipped",
		Message:    "Order 7 shipped.",
		OccurredAt: time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC),
	})

	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if fields["order_id"] != float64(7) {
		t.Errorf("order_id = %v, want 7", fields["order_id"])
	}
	if fields["event_id"] != id.String() {
		t.Errorf("event_id = %v, want %s", fields["event_id"], id)
	}
	if fields["type"] != "OrderShipped" {
		t.Errorf("type = %v, want OrderShipped", fields["type"])
	}
}
