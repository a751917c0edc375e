// Package dom abstracts the host document surface the indicator renders
// into. The core component only ever talks to these interfaces, which keeps
// environment detection and badge lifecycle fully testable without a browser
// and lets the same code run against different hosts.
//
// Two implementations ship with this module:
//
//   - memdom: an in-memory document for tests and server-side rendering.
//   - jsdom: a syscall/js binding for js/wasm builds targeting real browsers.
//
// # Usage
//
//	var w dom.Window = memdom.NewWindow(memdom.WithHostname("localhost"))
//	body, _ := w.Document().Body()
//	el := w.Document().CreateElement("div")
//	body.AppendChild(el)
//
// # Error Handling
//
// The interfaces return no errors. Lookups that can miss (ElementByID, Body)
// report presence with a boolean; everything else is a plain side effect on
// the host surface.
package dom
