package webhook

import (
	"reflect"
	"time"

	"github.com/jsamuelsen11/go-domain-primitives/internal/orders"
)

// ToEventDTO converts an order event to its webhook body. The type name is
// the event's Go type name, matching the order history.
func ToEventDTO(ev orders.Event) EventDTO {
	meta := ev.Meta()
	return EventDTO{
		EventID:    meta.EventID.String(),
		Type:       reflect.TypeOf(ev).Name(),
		OrderID:    ev.Order(),
		Message:    ev.NotificationMessage(),
		OccurredAt: meta.OccurredAt.UTC().Format(time.RFC3339Nano),
		Data:       toEventData(ev),
	}
}

func toEventData(ev orders.Event) EventData {
	switch e := ev.(type) {
	case orders.OrderPlaced:
		return EventData{
			Customer: e.Customer,
			ShipTo: &AddressDTO{
				Street:     e.ShipTo.Street,
				City:       e.ShipTo.City,
				PostalCode: e.ShipTo.PostalCode,
				Country:    e.ShipTo.Country,
			},
		}
	case orders.LineAdded:
		return EventData{
			Line: &LineDTO{
				SKU:       e.Line.SKU,
				Quantity:  e.Line.Quantity,
				UnitPrice: toMoneyDTO(e.Line.UnitPrice),
			},
		}
	case orders.OrderShipped:
		total := toMoneyDTO(e.Total)
		return EventData{Total: &total}
	case orders.OrderCancelled:
		return EventData{Reason: e.Reason}
	default:
		return EventData{}
	}
}

func toMoneyDTO(m orders.Money) MoneyDTO {
	return MoneyDTO{Amount: m.Amount, Currency: m.Currency}
}
