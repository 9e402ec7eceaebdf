package domain

// DefaultMessage is the text reported by a Message built without one.
const DefaultMessage = "Default message."

// NotificationMessage is anything that can be dispatched to a notification bus.
type NotificationMessage interface {
	// NotificationMessage returns a human-readable description of the message.
	NotificationMessage() string
}

// Message is the embeddable base for notification messages. Its zero value
// reports DefaultMessage. The text is fixed at construction; only the
// embedding type should replace it.
type Message struct {
	text string
	set  bool
}

// Compile-time interface check.
var _ NotificationMessage = Message{}

// NewMessage returns a Message carrying the given text.
func NewMessage(text string) Message {
	return Message{text: text, set: true}
}

// NotificationMessage returns the message text, or DefaultMessage when none
// was supplied.
func (m Message) NotificationMessage() string {
	if !m.set {
		return DefaultMessage
	}
	return m.text
}
