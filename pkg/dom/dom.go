package dom

// Window is the top-level host surface an indicator renders into. Real
// browsers are reached through the jsdom binding; tests and server-side
// rendering use memdom.
type Window interface {
	Document() Document
	Location() Location
	Navigator() Navigator

	// RequestAnimationFrame schedules fn for the host's next render tick and
	// returns a cancel function. Cancel is a no-op once fn has run.
	RequestAnimationFrame(fn func()) (cancel func())
}

// Location exposes the subset of the host location used for detection.
type Location interface {
	Hostname() string
}

// Navigator exposes host client metadata.
type Navigator interface {
	UserAgent() string
}

// Document is a minimal element factory and lookup surface.
type Document interface {
	CreateElement(tag string) Element
	// ElementByID returns the element with the given id, if any.
	ElementByID(id string) (Element, bool)
	// Body returns the document body. ok is false when the document has no
	// body yet, e.g. when scripts run before the body is parsed.
	Body() (Element, bool)
}

// Element is a single host element. Implementations own their backing
// resources; Remove detaches the element from its parent.
type Element interface {
	ID() string
	SetID(id string)
	SetAttribute(name, value string)
	Attribute(name string) string
	SetStyle(name, value string)
	Style(name string) string
	SetText(text string)
	Text() string
	AppendChild(child Element)
	Remove()

	// AddEventListener registers fn for the named event and returns a
	// handle that deregisters it and releases any host resources.
	AddEventListener(event string, fn func(Event)) Listener
}

// Listener is a registered event handler. Remove is idempotent.
type Listener interface {
	Remove()
}

// Event is a host event delivered to a listener.
type Event interface {
	Type() string
	// Key returns the key value for keyboard events, "" otherwise.
	Key() string
	PreventDefault()
}
