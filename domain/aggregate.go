package domain

// AggregateRoot tags an entity as the root of an aggregate. It carries no
// behavior; the name is used for documentation and as a log and trace
// attribute when the root's events are published.
type AggregateRoot interface {
	EventSource

	// AggregateName returns a short name for the aggregate, e.g. "order".
	AggregateName() string
}

// AggregateNameOf returns the aggregate name of src, or "" when src is not
// tagged as an aggregate root.
func AggregateNameOf(src EventSource) string {
	if root, ok := src.(AggregateRoot); ok {
		return root.AggregateName()
	}
	return ""
}
