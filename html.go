package delta2html

import (
	"bytes"
	"html"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

// defaultHighlightTheme is the chroma style used for code blocks when no
// theme is configured.
const defaultHighlightTheme = "github"

// Default mark nesting priorities. Lower priority nests innermost, so an
// inline code run sits closest to the text and a link wraps everything.
const (
	PriorityCode      = 0
	PriorityScript    = 10
	PriorityUnderline = 20
	PriorityStrike    = 30
	PriorityItalic    = 40
	PriorityBold      = 50
	PriorityLink      = 60
)

// HTMLOptions configures the packaged HTML renderer.
type HTMLOptions struct {
	// InlineStyles emits style declarations for align/font/size instead of
	// ql- classes.
	InlineStyles bool
	// HighlightTheme selects the chroma style for code blocks
	// ("" = github).
	HighlightTheme string
	// LinkTarget and LinkRel, when set, are added to every rendered link.
	LinkTarget string
	LinkRel    string
}

// HTMLFormat returns the Format primitives for string/HTMLAttrs output.
func HTMLFormat() Format[string, HTMLAttrs] {
	return Format[string, HTMLAttrs]{
		Join: func(children []string) string { return strings.Join(children, "") },
		Text: html.EscapeString,

		MergeAttrs: mergeHTMLAttrs,
		EmptyAttrs: func() HTMLAttrs { return HTMLAttrs{} },
		HasAttrs:   func(a HTMLAttrs) bool { return !a.IsZero() },
		WrapAttrs: func(content string, a HTMLAttrs) string {
			return htmlTag("span", content, a)
		},
		Tag: htmlTag,
	}
}

// htmlTag wraps content in a named element carrying the given attributes.
func htmlTag(tag, content string, a HTMLAttrs) string {
	return "<" + tag + a.String() + ">" + content + "</" + tag + ">"
}

// NewHTMLRenderer returns a renderer covering the Quill block and inline
// vocabulary: p, h1-h6, blockquote, highlighted code blocks, nested lists,
// tables, image/video/formula embeds, the standard element marks, and
// style/class attributors for color, background, font, and size.
func NewHTMLRenderer(opts HTMLOptions) *Renderer[string, HTMLAttrs] {
	theme := opts.HighlightTheme
	if theme == "" {
		theme = defaultHighlightTheme
	}

	r := NewRenderer(HTMLFormat()).
		WithBlock(NodeParagraph, BlockRule[string, HTMLAttrs]{Tag: "p"}).
		WithBlock(NodeHeader, BlockRule[string, HTMLAttrs]{Render: headerBlock}).
		WithBlock(NodeBlockquote, BlockRule[string, HTMLAttrs]{Tag: "blockquote"}).
		WithBlock(NodeList, BlockRule[string, HTMLAttrs]{Render: listBlock}).
		WithBlock(NodeListItem, BlockRule[string, HTMLAttrs]{Render: listItemBlock}).
		WithBlock(NodeTable, BlockRule[string, HTMLAttrs]{Render: tableBlock}).
		WithBlock(NodeTableRow, BlockRule[string, HTMLAttrs]{Tag: "tr"}).
		WithBlock(NodeTableCell, BlockRule[string, HTMLAttrs]{Tag: "td"}).
		WithBlock(NodeCodeBlock, BlockRule[string, HTMLAttrs]{Render: codeLineBlock}).
		WithBlock("image", BlockRule[string, HTMLAttrs]{Render: imageEmbed}).
		WithBlock("video", BlockRule[string, HTMLAttrs]{Render: videoEmbed}).
		WithBlock("formula", BlockRule[string, HTMLAttrs]{Render: formulaEmbed}).
		WithBlock("divider", BlockRule[string, HTMLAttrs]{Render: dividerEmbed}).
		WithOverride(NodeCodeBlockContainer, codeContainerOverride(theme)).
		WithMark("code", MarkRule[string, HTMLAttrs]{Tag: "code", Priority: PriorityCode}).
		WithMark("script", MarkRule[string, HTMLAttrs]{Render: scriptMark, Priority: PriorityScript}).
		WithMark("underline", MarkRule[string, HTMLAttrs]{Tag: "u", Priority: PriorityUnderline}).
		WithMark("strike", MarkRule[string, HTMLAttrs]{Tag: "s", Priority: PriorityStrike}).
		WithMark("italic", MarkRule[string, HTMLAttrs]{Tag: "em", Priority: PriorityItalic}).
		WithMark("bold", MarkRule[string, HTMLAttrs]{Tag: "strong", Priority: PriorityBold}).
		WithMark("link", MarkRule[string, HTMLAttrs]{Render: linkMark(opts), Priority: PriorityLink}).
		WithAttributor("color", styleAttributor("color")).
		WithAttributor("background", styleAttributor("background-color")).
		WithAttributor("font", valueAttributor(opts.InlineStyles, "font-family")).
		WithAttributor("size", valueAttributor(opts.InlineStyles, "font-size")).
		WithBlockAttrResolver(alignResolver(opts.InlineStyles)).
		WithBlockAttrResolver(directionResolver).
		WithBlockAttrResolver(indentResolver)

	return r
}

// headerBlock renders h1-h6, clamping out-of-range levels.
func headerBlock(n *Node, children string, attrs HTMLAttrs) string {
	level := intAttr(n.Attributes, "header", 1)
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return htmlTag("h"+strconv.Itoa(level), children, attrs)
}

// listBlock renders the list container: ol for ordered, ul otherwise.
// Checklists get a marker class so items can hide the default bullet.
func listBlock(n *Node, children string, attrs HTMLAttrs) string {
	tag := "ul"
	switch stringAttr(n.Attributes, "list", "") {
	case "ordered":
		tag = "ol"
	case checklistFamily:
		attrs = mergeHTMLAttrs(attrs, classOf("ql-checklist"))
	}
	return htmlTag(tag, children, attrs)
}

// listItemBlock renders li, carrying per-item checked state.
func listItemBlock(n *Node, children string, attrs HTMLAttrs) string {
	switch stringAttr(n.Attributes, "list", "") {
	case "checked":
		attrs = mergeHTMLAttrs(attrs, attrsOf("data-checked", "true"))
	case "unchecked":
		attrs = mergeHTMLAttrs(attrs, attrsOf("data-checked", "false"))
	}
	return htmlTag("li", children, attrs)
}

// tableBlock wraps grouped rows in table/tbody.
func tableBlock(_ *Node, children string, attrs HTMLAttrs) string {
	return htmlTag("table", htmlTag("tbody", children, HTMLAttrs{}), attrs)
}

// codeLineBlock renders a lone code-block line that was not grouped into a
// container (e.g. when the grouping pass is disabled).
func codeLineBlock(n *Node, children string, attrs HTMLAttrs) string {
	return htmlTag("pre", htmlTag("code", children, HTMLAttrs{}), attrs)
}

// codeContainerOverride renders a grouped code block. It needs the raw
// line text rather than rendered children, so it hooks in as a node
// override. Lines with a known language are highlighted through chroma;
// anything else, including highlighter failures, falls back to escaped
// text. Rendering stays total either way.
func codeContainerOverride(theme string) OverrideHandler[string, HTMLAttrs] {
	return func(n *Node, _ func(*Node) string) string {
		lines := make([]string, 0, len(n.Children))
		language := ""
		for _, line := range n.Children {
			if language == "" {
				language = stringAttr(line.Attributes, "language", "")
			}
			lines = append(lines, rawText(line))
		}
		code := strings.Join(lines, "\n")

		if language != "" && language != "plain" {
			var buf bytes.Buffer
			if err := quick.Highlight(&buf, code, language, "html", theme); err == nil {
				return buf.String()
			}
		}
		return "<pre><code>" + html.EscapeString(code) + "</code></pre>"
	}
}

// rawText concatenates the unescaped text of a block's inline children.
func rawText(n *Node) string {
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.Text())
	}
	return b.String()
}

// imageEmbed renders an inline image embed. Sizing and alt attributes on
// the op carry over to the element.
func imageEmbed(n *Node, _ string, attrs HTMLAttrs) string {
	attrs = mergeHTMLAttrs(attrs, attrsOf("src", stringValue(n.Data)))
	for _, key := range []string{"alt", "width", "height"} {
		if v, ok := n.Attributes[key]; ok {
			attrs = mergeHTMLAttrs(attrs, attrsOf(key, stringValue(v)))
		}
	}
	return "<img" + attrs.String() + ">"
}

// videoEmbed renders a block video embed as an iframe.
func videoEmbed(n *Node, _ string, attrs HTMLAttrs) string {
	attrs = mergeHTMLAttrs(attrs, classOf("ql-video"))
	attrs = mergeHTMLAttrs(attrs, HTMLAttrs{Attrs: map[string]string{
		"allowfullscreen": "true",
		"frameborder":     "0",
		"src":             stringValue(n.Data),
	}})
	return htmlTag("iframe", "", attrs)
}

// formulaEmbed renders a formula embed with its source as text content.
func formulaEmbed(n *Node, _ string, attrs HTMLAttrs) string {
	attrs = mergeHTMLAttrs(attrs, classOf("ql-formula"))
	return htmlTag("span", html.EscapeString(stringValue(n.Data)), attrs)
}

// dividerEmbed renders a horizontal rule.
func dividerEmbed(_ *Node, _ string, _ HTMLAttrs) string {
	return "<hr>"
}

// scriptMark renders sub/superscript from the mark value.
func scriptMark(m Mark, inner string, attrs HTMLAttrs) string {
	tag := "sub"
	if stringValue(m.Value) == "super" {
		tag = "sup"
	}
	return htmlTag(tag, inner, attrs)
}

// linkMark renders an anchor with configured target/rel.
func linkMark(opts HTMLOptions) MarkHandler[string, HTMLAttrs] {
	return func(m Mark, inner string, attrs HTMLAttrs) string {
		attrs = mergeHTMLAttrs(attrs, attrsOf("href", stringValue(m.Value)))
		if opts.LinkTarget != "" {
			attrs = mergeHTMLAttrs(attrs, attrsOf("target", opts.LinkTarget))
		}
		if opts.LinkRel != "" {
			attrs = mergeHTMLAttrs(attrs, attrsOf("rel", opts.LinkRel))
		}
		return htmlTag("a", inner, attrs)
	}
}

// styleAttributor contributes one CSS declaration from the mark value.
func styleAttributor(property string) AttributorHandler[HTMLAttrs] {
	return func(_ string, value any) HTMLAttrs {
		return styleOf(property, stringValue(value))
	}
}

// valueAttributor contributes either a ql- class (the editor's stylesheet
// maps it) or, with inline styles, a direct CSS declaration.
func valueAttributor(inlineStyles bool, property string) AttributorHandler[HTMLAttrs] {
	return func(name string, value any) HTMLAttrs {
		if inlineStyles {
			return styleOf(property, stringValue(value))
		}
		return classOf("ql-" + name + "-" + stringValue(value))
	}
}

// alignResolver contributes alignment from block attributes.
func alignResolver(inlineStyles bool) BlockAttrResolver[HTMLAttrs] {
	return func(n *Node) HTMLAttrs {
		v := stringAttr(n.Attributes, "align", "")
		if v == "" {
			return HTMLAttrs{}
		}
		if inlineStyles {
			return styleOf("text-align", v)
		}
		return classOf("ql-align-" + v)
	}
}

// directionResolver contributes text direction from block attributes.
func directionResolver(n *Node) HTMLAttrs {
	v := stringAttr(n.Attributes, "direction", "")
	if v == "" {
		return HTMLAttrs{}
	}
	return classOf("ql-direction-" + v)
}

// indentResolver contributes indent classes for non-list blocks; list
// indentation is already expressed structurally by the nesting pass.
func indentResolver(n *Node) HTMLAttrs {
	if n.Type == NodeListItem || n.Type == NodeList {
		return HTMLAttrs{}
	}
	indent := intAttr(n.Attributes, "indent", 0)
	if indent <= 0 {
		return HTMLAttrs{}
	}
	return classOf("ql-indent-" + strconv.Itoa(indent))
}
