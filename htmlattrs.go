package delta2html

import (
	"html"
	"sort"
	"strings"
)

// HTMLAttrs accumulates element attributes contributed by attributors and
// block-attribute resolvers: CSS classes, style declarations, and plain
// attributes. It is the collected-attribute type of the HTML format.
type HTMLAttrs struct {
	Classes []string
	Styles  []string // individual declarations, e.g. "color: #e60000"
	Attrs   map[string]string
}

// IsZero reports whether the value carries nothing to render.
func (a HTMLAttrs) IsZero() bool {
	return len(a.Classes) == 0 && len(a.Styles) == 0 && len(a.Attrs) == 0
}

// mergeHTMLAttrs combines two contributions: classes and styles append in
// order, plain attributes merge with later values winning.
func mergeHTMLAttrs(into, from HTMLAttrs) HTMLAttrs {
	out := HTMLAttrs{
		Classes: append(append([]string(nil), into.Classes...), from.Classes...),
		Styles:  append(append([]string(nil), into.Styles...), from.Styles...),
	}
	if len(into.Attrs) > 0 || len(from.Attrs) > 0 {
		out.Attrs = make(map[string]string, len(into.Attrs)+len(from.Attrs))
		for k, v := range into.Attrs {
			out.Attrs[k] = v
		}
		for k, v := range from.Attrs {
			out.Attrs[k] = v
		}
	}
	return out
}

// String renders the accumulated attributes as HTML attribute text with a
// leading space, e.g. ` class="ql-align-center" style="color: red"`.
// Values are escaped; plain attributes are emitted in sorted key order so
// output is deterministic.
func (a HTMLAttrs) String() string {
	if a.IsZero() {
		return ""
	}

	var b strings.Builder
	if len(a.Classes) > 0 {
		b.WriteString(` class="`)
		b.WriteString(html.EscapeString(strings.Join(a.Classes, " ")))
		b.WriteString(`"`)
	}
	if len(a.Styles) > 0 {
		b.WriteString(` style="`)
		b.WriteString(html.EscapeString(strings.Join(a.Styles, "; ")))
		b.WriteString(`"`)
	}

	keys := make([]string, 0, len(a.Attrs))
	for k := range a.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Attrs[k]))
		b.WriteString(`"`)
	}
	return b.String()
}

// attrsOf is a small constructor for single plain-attribute contributions.
func attrsOf(key, value string) HTMLAttrs {
	return HTMLAttrs{Attrs: map[string]string{key: value}}
}

// styleOf is a small constructor for single style declarations.
func styleOf(property, value string) HTMLAttrs {
	return HTMLAttrs{Styles: []string{property + ": " + value}}
}

// classOf is a small constructor for single class contributions.
func classOf(class string) HTMLAttrs {
	return HTMLAttrs{Classes: []string{class}}
}
