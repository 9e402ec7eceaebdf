// Package domain provides the building blocks for object-oriented business
// models: notification messages, entities that buffer domain events, and value
// objects compared by their attributes rather than their identity.
//
// An entity embeds Entity and records events from its own business methods:
//
//	type Order struct {
//	    domain.Entity
//	    status Status
//	}
//
//	func (o *Order) Ship() {
//	    o.status = StatusShipped
//	    o.AddDomainEvent(OrderShipped{Message: domain.NewMessage("order shipped")})
//	}
//
// The buffered events are later handed to an events.Publisher, which only sees
// the read-only EventSource view.
//
// AddDomainEvent and ClearDomainEvents are exported methods of Entity and are
// promoted onto every embedding type, so any package holding the entity can
// call them. Recording events only from the entity's own methods, and clearing
// them only from the code that dispatched them, is a convention the compiler
// does not enforce. To keep them off an entity's public API, hold Entity in an
// unexported field and forward DomainEvents explicitly.
//
// A value object lists the attributes that take part in equality, in order:
//
//	func (m Money) EqualityComponents() []any { return []any{m.Currency, m.Amount} }
//	func (m Money) Equals(o domain.ValueObject) bool { return domain.Equal(m, o) }
//	func (m Money) HashCode() int32 { return domain.Hash(m) }
package domain
