//go:build js && wasm

// Package jsdom binds the dom interfaces to a real browser through
// syscall/js. It only builds for js/wasm targets.
//
// Event listeners are wrapped in js.Func values; the handle returned from
// AddEventListener releases the wrapper when removed, so tearing down all
// registered listeners also frees the associated callbacks.
//
// # Usage
//
//	w, ok := jsdom.Current()
//	if !ok {
//	    return // no window/document surface
//	}
//	badge := envbadge.New(envbadge.WithWindow(w))
//	badge.Init()
package jsdom
