//go:build js && wasm

package jsdom

import (
	"syscall/js"

	"github.com/dmitrymomot/envbadge/pkg/dom"
)

// Window wraps the browser's global window object.
type Window struct {
	value js.Value
}

// Current returns the running page's window. ok is false when the global
// window object is absent, e.g. in a worker without a document.
func Current() (*Window, bool) {
	w := js.Global().Get("window")
	if w.IsUndefined() || w.IsNull() {
		return nil, false
	}
	if doc := w.Get("document"); doc.IsUndefined() || doc.IsNull() {
		return nil, false
	}
	return &Window{value: w}, true
}

func (w *Window) Document() dom.Document {
	return &document{value: w.value.Get("document")}
}

func (w *Window) Location() dom.Location {
	return location{value: w.value.Get("location")}
}

func (w *Window) Navigator() dom.Navigator {
	return navigator{value: w.value.Get("navigator")}
}

// RequestAnimationFrame schedules fn on the browser's next render tick. The
// wrapping js.Func is released after the callback fires or on cancel.
func (w *Window) RequestAnimationFrame(fn func()) (cancel func()) {
	released := false
	var cb js.Func
	release := func() {
		if released {
			return
		}
		released = true
		cb.Release()
	}
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		defer release()
		fn()
		return nil
	})
	id := w.value.Call("requestAnimationFrame", cb)
	return func() {
		if released {
			return
		}
		w.value.Call("cancelAnimationFrame", id)
		release()
	}
}

type location struct{ value js.Value }

func (l location) Hostname() string {
	if l.value.IsUndefined() || l.value.IsNull() {
		return ""
	}
	return l.value.Get("hostname").String()
}

type navigator struct{ value js.Value }

func (n navigator) UserAgent() string {
	if n.value.IsUndefined() || n.value.IsNull() {
		return ""
	}
	return n.value.Get("userAgent").String()
}

type document struct{ value js.Value }

func (d *document) CreateElement(tag string) dom.Element {
	return &element{value: d.value.Call("createElement", tag)}
}

func (d *document) ElementByID(id string) (dom.Element, bool) {
	v := d.value.Call("getElementById", id)
	if v.IsUndefined() || v.IsNull() {
		return nil, false
	}
	return &element{value: v}, true
}

func (d *document) Body() (dom.Element, bool) {
	v := d.value.Get("body")
	if v.IsUndefined() || v.IsNull() {
		return nil, false
	}
	return &element{value: v}, true
}

type element struct{ value js.Value }

func (e *element) ID() string { return e.value.Get("id").String() }

func (e *element) SetID(id string) { e.value.Set("id", id) }

func (e *element) SetAttribute(name, value string) {
	e.value.Call("setAttribute", name, value)
}

func (e *element) Attribute(name string) string {
	v := e.value.Call("getAttribute", name)
	if v.IsNull() || v.IsUndefined() {
		return ""
	}
	return v.String()
}

func (e *element) SetStyle(name, value string) {
	e.value.Get("style").Call("setProperty", name, value)
}

func (e *element) Style(name string) string {
	return e.value.Get("style").Call("getPropertyValue", name).String()
}

func (e *element) SetText(text string) { e.value.Set("textContent", text) }
func (e *element) Text() string        { return e.value.Get("textContent").String() }

func (e *element) AppendChild(child dom.Element) {
	c, ok := child.(*element)
	if !ok {
		return
	}
	e.value.Call("appendChild", c.value)
}

func (e *element) Remove() {
	e.value.Call("remove")
}

func (e *element) AddEventListener(event string, fn func(dom.Event)) dom.Listener {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		fn(&jsEvent{value: ev, eventType: event})
		return nil
	})
	e.value.Call("addEventListener", event, cb)
	return &jsListener{target: e.value, event: event, cb: cb}
}

type jsListener struct {
	target  js.Value
	event   string
	cb      js.Func
	removed bool
}

func (l *jsListener) Remove() {
	if l.removed {
		return
	}
	l.removed = true
	l.target.Call("removeEventListener", l.event, l.cb)
	l.cb.Release()
}

type jsEvent struct {
	value     js.Value
	eventType string
}

func (e *jsEvent) Type() string { return e.eventType }

func (e *jsEvent) Key() string {
	if e.value.IsUndefined() || e.value.IsNull() {
		return ""
	}
	if k := e.value.Get("key"); !k.IsUndefined() && !k.IsNull() {
		return k.String()
	}
	return ""
}

func (e *jsEvent) PreventDefault() {
	if !e.value.IsUndefined() && !e.value.IsNull() {
		e.value.Call("preventDefault")
	}
}
