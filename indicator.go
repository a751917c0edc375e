package envbadge

import (
	"log/slog"

	"github.com/dmitrymomot/envbadge/pkg/dom"
	"github.com/dmitrymomot/envbadge/pkg/environment"
	"github.com/dmitrymomot/envbadge/pkg/logger"
)

// Indicator renders a fixed-position badge showing the current runtime
// environment. One instance owns at most one badge element at a time; Init
// and Destroy are idempotent and never return errors. The indicator is not
// safe for concurrent use; the host surface it drives is single-threaded.
type Indicator struct {
	cfg *config

	el          dom.Element
	listeners   []dom.Listener
	cancelFrame func()
}

// New constructs an indicator with a fully resolved configuration; opts
// merge over documented defaults.
func New(opts ...Option) *Indicator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Indicator{cfg: cfg}
}

// Init renders the badge. Any existing badge from this instance is torn
// down first, so repeated calls never duplicate the element. Init no-ops
// when the host has no document surface or the indicator is disabled.
// Failures are recovered, logged on the debug channel, and leave the
// indicator absent.
func (i *Indicator) Init() {
	defer i.recovered("init")

	log := i.cfg.debugLogger()

	i.teardown(log)

	if !i.cfg.enabled {
		log.Debug("indicator disabled, skipping render")
		return
	}
	if !i.renderable() {
		log.Debug("no document surface, skipping render")
		return
	}

	env := resolve(i.cfg)
	log.Debug("environment resolved",
		logger.Env(env.String()),
		logger.Hostname(i.cfg.hostname()),
		logger.UserAgent(i.cfg.userAgent()),
	)

	doc := i.cfg.window.Document()

	// A stale element under the same id (e.g. left by a previous page
	// script) is replaced, keeping the zero-or-one invariant.
	if stale, ok := doc.ElementByID(i.cfg.elementID); ok {
		stale.Remove()
	}

	el := i.createElement(doc, env)
	i.attachListeners(el)
	i.el = el

	// Insertion batches with the host's next render tick.
	i.cancelFrame = i.cfg.window.RequestAnimationFrame(func() {
		i.cancelFrame = nil
		body, ok := doc.Body()
		if !ok {
			log.Debug("document has no body, dropping badge", logger.ElementID(i.cfg.elementID))
			return
		}
		body.AppendChild(el)
		log.Debug("badge attached", logger.ElementID(i.cfg.elementID))
	})
}

// Destroy removes all registered listeners and the badge element. Calling
// it with nothing present is a no-op.
func (i *Indicator) Destroy() {
	defer i.recovered("destroy")
	i.teardown(i.cfg.debugLogger())
}

// UpdateConfig merges the given options over the current configuration and
// re-initializes so new styling, text and position take effect immediately.
func (i *Indicator) UpdateConfig(opts ...Option) {
	for _, opt := range opts {
		opt(i.cfg)
	}
	i.Init()
}

// CurrentEnvironment resolves the environment fresh on every call; nothing
// is cached, so late-bound variables are honored.
func (i *Indicator) CurrentEnvironment() environment.Environment {
	return resolve(i.cfg)
}

// renderable reports whether the host has a document surface to render
// into. Checked before any element work so non-browser hosts no-op.
func (i *Indicator) renderable() bool {
	return i.cfg.window != nil && i.cfg.window.Document() != nil
}

func (i *Indicator) teardown(log *slog.Logger) {
	if i.cancelFrame != nil {
		i.cancelFrame()
		i.cancelFrame = nil
	}
	for _, l := range i.listeners {
		l.Remove()
	}
	i.listeners = nil
	if i.el != nil {
		i.el.Remove()
		i.el = nil
		log.Debug("badge removed", logger.ElementID(i.cfg.elementID))
	}
}

func (i *Indicator) createElement(doc dom.Document, env environment.Environment) dom.Element {
	el := doc.CreateElement("div")
	el.SetID(i.cfg.elementID)
	el.SetText(i.cfg.labels[env])

	// Keyboard-focusable with a status role for assistive technology.
	el.SetAttribute("role", "status")
	el.SetAttribute("tabindex", "0")
	el.SetAttribute("aria-label", "Current environment: "+env.String())

	size := sizeStyles[i.cfg.size]
	pos := positionStyles[i.cfg.position]

	el.SetStyle("position", "fixed")
	el.SetStyle(pos.edges[0], "0")
	el.SetStyle(pos.edges[1], "0")
	el.SetStyle("border-radius", pos.borderRadius)
	el.SetStyle("background-color", i.cfg.colors[env])
	el.SetStyle("color", "#ffffff")
	el.SetStyle("font-family", "monospace")
	el.SetStyle("font-size", size.fontSize)
	el.SetStyle("font-weight", "bold")
	el.SetStyle("padding", size.padding)
	el.SetStyle("z-index", "99999")
	el.SetStyle("cursor", "pointer")
	el.SetStyle("opacity", "0.8")
	el.SetStyle("transform", "scale(1)")
	el.SetStyle("transition", "opacity 0.2s ease, transform 0.2s ease")

	return el
}

func (i *Indicator) attachListeners(el dom.Element) {
	i.listeners = append(i.listeners,
		el.AddEventListener("click", func(dom.Event) {
			i.Destroy()
		}),
		el.AddEventListener("mouseenter", func(dom.Event) {
			el.SetStyle("opacity", "1")
			el.SetStyle("transform", "scale(1.05)")
		}),
		el.AddEventListener("mouseleave", func(dom.Event) {
			el.SetStyle("opacity", "0.8")
			el.SetStyle("transform", "scale(1)")
		}),
		el.AddEventListener("keydown", func(ev dom.Event) {
			switch ev.Key() {
			case "Enter", " ", "Spacebar":
				ev.PreventDefault()
				i.Destroy()
			}
		}),
	)
}

// recovered is the top-level failure boundary for Init and Destroy: the
// panic is reported on the debug channel and the indicator is left in the
// same state as after a clean Destroy.
func (i *Indicator) recovered(op string) {
	r := recover()
	if r == nil {
		return
	}

	i.cancelFrame = nil
	i.listeners = nil
	if el := i.el; el != nil {
		i.el = nil
		func() {
			defer func() { _ = recover() }()
			el.Remove()
		}()
	}

	i.cfg.debugLogger().Debug("recovered from host failure",
		logger.Event(op),
		slog.Any("panic", r),
	)
}
