package memdom

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// Render serializes the element and its subtree to HTML. Attributes and
// style properties are emitted in sorted order so output is deterministic.
func Render(el *Element) string {
	var b strings.Builder
	render(&b, el)
	return b.String()
}

func render(b *strings.Builder, el *Element) {
	b.WriteString("<")
	b.WriteString(el.tag)

	if el.id != "" {
		fmt.Fprintf(b, ` id=%q`, html.EscapeString(el.id))
	}

	for _, name := range sortedKeys(el.attrs) {
		fmt.Fprintf(b, ` %s=%q`, name, html.EscapeString(el.attrs[name]))
	}

	if len(el.styles) > 0 {
		props := make([]string, 0, len(el.styles))
		for _, name := range sortedKeys(el.styles) {
			props = append(props, html.EscapeString(name)+":"+html.EscapeString(el.styles[name]))
		}
		fmt.Fprintf(b, ` style=%q`, strings.Join(props, ";"))
	}

	b.WriteString(">")
	b.WriteString(html.EscapeString(el.text))
	for _, c := range el.children {
		render(b, c)
	}
	b.WriteString("</")
	b.WriteString(el.tag)
	b.WriteString(">")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
