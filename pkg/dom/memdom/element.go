package memdom

import (
	"slices"

	"github.com/dmitrymomot/envbadge/pkg/dom"
)

// Element is an in-memory dom.Element. Test code may type-assert the
// dom.Element values produced by this package to *Element to dispatch
// synthetic events or inspect the tree.
type Element struct {
	tag      string
	id       string
	doc      *Document
	parent   *Element
	children []*Element
	attrs    map[string]string
	styles   map[string]string
	text     string

	listenerSeq int
	listeners   []*listener
}

type listener struct {
	id      int
	event   string
	fn      func(dom.Event)
	owner   *Element
	removed bool
}

// Remove deregisters the listener. Safe to call more than once.
func (l *listener) Remove() {
	if l.removed {
		return
	}
	l.removed = true
	l.owner.listeners = slices.DeleteFunc(l.owner.listeners, func(r *listener) bool { return r.id == l.id })
}

func (e *Element) Tag() string { return e.tag }

func (e *Element) ID() string { return e.id }

func (e *Element) SetID(id string) { e.id = id }

func (e *Element) SetAttribute(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

func (e *Element) Attribute(name string) string { return e.attrs[name] }

func (e *Element) SetStyle(name, value string) {
	if e.styles == nil {
		e.styles = make(map[string]string)
	}
	e.styles[name] = value
}

func (e *Element) Style(name string) string { return e.styles[name] }

func (e *Element) SetText(text string) { e.text = text }
func (e *Element) Text() string        { return e.text }

func (e *Element) AppendChild(child dom.Element) {
	c, ok := child.(*Element)
	if !ok {
		return
	}
	if c.parent != nil {
		c.detach()
	}
	c.parent = e
	e.children = append(e.children, c)
}

// Remove detaches the element from its parent. Listeners stay registered so
// a detached element can be re-attached, matching live-DOM semantics.
func (e *Element) Remove() {
	e.detach()
}

func (e *Element) detach() {
	if e.parent == nil {
		return
	}
	e.parent.children = slices.DeleteFunc(e.parent.children, func(c *Element) bool { return c == e })
	e.parent = nil
}

// Attached reports whether the element is reachable from the document body.
func (e *Element) Attached() bool {
	for cur := e; cur != nil; cur = cur.parent {
		if e.doc != nil && cur == e.doc.body {
			return true
		}
	}
	return false
}

// Children returns the element's direct children.
func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

func (e *Element) AddEventListener(event string, fn func(dom.Event)) dom.Listener {
	e.listenerSeq++
	l := &listener{id: e.listenerSeq, event: event, fn: fn, owner: e}
	e.listeners = append(e.listeners, l)
	return l
}

// ListenerCount reports the number of registered listeners across all events.
func (e *Element) ListenerCount() int { return len(e.listeners) }

// Dispatch delivers a synthetic event to every listener registered for its
// type, in registration order.
func (e *Element) Dispatch(ev dom.Event) {
	for _, l := range slices.Clone(e.listeners) {
		if !l.removed && l.event == ev.Type() {
			l.fn(ev)
		}
	}
}

func (e *Element) findByID(id string) *Element {
	if e.id == id {
		return e
	}
	for _, c := range e.children {
		if found := c.findByID(id); found != nil {
			return found
		}
	}
	return nil
}
