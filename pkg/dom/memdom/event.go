package memdom

// Event is a synthetic dom.Event for use with Element.Dispatch.
type Event struct {
	EventType string
	KeyValue  string

	defaultPrevented bool
}

// NewEvent returns a synthetic event of the given type.
func NewEvent(eventType string) *Event {
	return &Event{EventType: eventType}
}

// NewKeyEvent returns a synthetic keyboard event carrying the given key.
func NewKeyEvent(eventType, key string) *Event {
	return &Event{EventType: eventType, KeyValue: key}
}

func (e *Event) Type() string { return e.EventType }
func (e *Event) Key() string  { return e.KeyValue }

func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }
