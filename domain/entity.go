package domain

import "slices"

// EventSource is the read-only view of an entity's event buffer. It is the
// capability the publisher dispatches on: a NotificationMessage that also
// satisfies EventSource has its buffered events forwarded, anything else is
// rejected.
type EventSource interface {
	NotificationMessage

	// ID returns the entity identity.
	ID() int

	// DomainEvents returns the buffered events in insertion order. The
	// returned slice is a snapshot; modifying it does not touch the buffer.
	DomainEvents() []NotificationMessage
}

// Entity is the embeddable base for entities. It carries an integer identity
// and an append-only buffer of domain events.
//
// The zero value is an anonymous entity with ID 0 and an empty buffer.
// Entity is not safe for concurrent mutation.
type Entity struct {
	Message

	id     int
	events []NotificationMessage
}

var _ EventSource = (*Entity)(nil)

// NewEntity returns an Entity with the given identity. The id is not
// validated; rules about valid identities belong to the embedding type.
func NewEntity(id int) Entity {
	return Entity{id: id}
}

// ID returns the entity identity, 0 when none was assigned.
func (e *Entity) ID() int {
	return e.id
}

// DomainEvents returns a copy of the buffered events in the order they were
// added.
func (e *Entity) DomainEvents() []NotificationMessage {
	return slices.Clone(e.events)
}

// AddDomainEvent appends an event to the end of the buffer. It is meant to be
// called from the embedding type's business methods only.
func (e *Entity) AddDomainEvent(event NotificationMessage) {
	e.events = append(e.events, event)
}

// ClearDomainEvents empties the buffer. Publishing never clears it; the owner
// of the unit of work calls this once the events have been dispatched.
func (e *Entity) ClearDomainEvents() {
	e.events = nil
}
