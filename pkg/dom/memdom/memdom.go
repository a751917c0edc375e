package memdom

import (
	"slices"

	"github.com/dmitrymomot/envbadge/pkg/dom"
)

// Option configures the window.
type Option func(*Window)

// WithHostname sets the hostname reported by the window location.
func WithHostname(hostname string) Option {
	return func(w *Window) { w.hostname = hostname }
}

// WithUserAgent sets the user agent reported by the window navigator.
func WithUserAgent(ua string) Option {
	return func(w *Window) { w.userAgent = ua }
}

// WithoutBody creates the document without a body element, modeling scripts
// that run before the body is parsed.
func WithoutBody() Option {
	return func(w *Window) { w.doc.body = nil }
}

// Window is an in-memory dom.Window. It is not safe for concurrent use; the
// host surface it models is single-threaded.
type Window struct {
	doc       *Document
	hostname  string
	userAgent string

	deferFrames bool
	frameSeq    int
	frames      []frame
}

type frame struct {
	id int
	fn func()
}

// NewWindow returns a window with an empty document body. Animation frames
// run synchronously unless DeferFrames is enabled.
func NewWindow(opts ...Option) *Window {
	w := &Window{doc: &Document{}}
	w.doc.body = &Element{tag: "body", doc: w.doc}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Window) Document() dom.Document   { return w.doc }
func (w *Window) Location() dom.Location   { return location{hostname: w.hostname} }
func (w *Window) Navigator() dom.Navigator { return navigator{userAgent: w.userAgent} }

// RequestAnimationFrame runs fn immediately, or queues it until Flush when
// DeferFrames is enabled. The returned cancel drops a still-pending frame.
func (w *Window) RequestAnimationFrame(fn func()) (cancel func()) {
	if !w.deferFrames {
		fn()
		return func() {}
	}
	w.frameSeq++
	id := w.frameSeq
	w.frames = append(w.frames, frame{id: id, fn: fn})
	return func() {
		w.frames = slices.DeleteFunc(w.frames, func(f frame) bool { return f.id == id })
	}
}

// DeferFrames switches the window to queued animation frames so tests can
// observe the state between scheduling and the frame tick.
func (w *Window) DeferFrames() { w.deferFrames = true }

// Flush runs all queued animation frames in scheduling order.
func (w *Window) Flush() {
	pending := w.frames
	w.frames = nil
	for _, f := range pending {
		f.fn()
	}
}

// PendingFrames reports how many animation frames are queued.
func (w *Window) PendingFrames() int { return len(w.frames) }

type location struct{ hostname string }

func (l location) Hostname() string { return l.hostname }

type navigator struct{ userAgent string }

func (n navigator) UserAgent() string { return n.userAgent }

// Document is an in-memory dom.Document.
type Document struct {
	body *Element
}

func (d *Document) CreateElement(tag string) dom.Element {
	return &Element{tag: tag, doc: d}
}

func (d *Document) ElementByID(id string) (dom.Element, bool) {
	if d.body == nil || id == "" {
		return nil, false
	}
	if el := d.body.findByID(id); el != nil {
		return el, true
	}
	return nil, false
}

func (d *Document) Body() (dom.Element, bool) {
	if d.body == nil {
		return nil, false
	}
	return d.body, true
}
