// Package memdom is an in-memory implementation of the dom interfaces. It
// backs the indicator tests and doubles as a server-side renderer: a badge
// initialized into a memdom document can be serialized to HTML with Render
// and injected into a page.
//
// The package models just enough of a live document for the indicator:
// element trees with attributes, inline styles and text, event listeners
// with synthetic dispatch, and animation-frame scheduling that either runs
// callbacks synchronously or queues them behind DeferFrames/Flush.
//
// # Usage
//
//	w := memdom.NewWindow(memdom.WithHostname("staging.example.com"))
//	doc := w.Document()
//	el := doc.CreateElement("div")
//	body, _ := doc.Body()
//	body.AppendChild(el)
//
//	el.(*memdom.Element).Dispatch(memdom.NewEvent("click"))
//	html := memdom.Render(el.(*memdom.Element))
//
// # Error Handling
//
// No operation returns an error. The window is not safe for concurrent use;
// the surface it models is single-threaded.
package memdom
