package delta2html

import "strconv"

// Node type constants for the document tree.
const (
	NodeRoot               = "root"
	NodeText               = "text"
	NodeParagraph          = "paragraph"
	NodeHeader             = "header"
	NodeBlockquote         = "blockquote"
	NodeCodeBlock          = "code-block"
	NodeCodeBlockContainer = "code-block-container"
	NodeList               = "list"
	NodeListItem           = "list-item"
	NodeTable              = "table"
	NodeTableRow           = "table-row"
	NodeTableCell          = "table-cell"
)

// Op is a single Delta operation. Only insert ops are consumed by the
// parser; retain and delete are carried for interchange completeness.
type Op struct {
	Insert     any            `json:"insert,omitempty"` // string or one-key embed object
	Retain     int            `json:"retain,omitempty"`
	Delete     int            `json:"delete,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Delta is a flat, attribute-tagged sequence of rich-text operations.
type Delta struct {
	Ops []Op `json:"ops"`
}

// Node is one node of the document tree produced by Parse and rewritten by
// transformers. Text nodes carry a string Data and no children; embed nodes
// carry the embed payload in Data; container nodes carry only children.
// Trees are treated as immutable across pipeline stages: transformers return
// new trees and may share untouched subtrees, but never mutate their input.
type Node struct {
	Type       string
	Attributes map[string]any
	Children   []*Node
	Data       any
	Inline     bool
}

// NewRoot returns a document root wrapping the given blocks.
func NewRoot(children ...*Node) *Node {
	return &Node{Type: NodeRoot, Attributes: map[string]any{}, Children: children}
}

// NewTextNode returns an inline text leaf carrying the given formatting.
func NewTextNode(text string, attrs map[string]any) *Node {
	return &Node{Type: NodeText, Attributes: attrs, Data: text, Inline: true}
}

// IsText reports whether the node is an inline text leaf.
func (n *Node) IsText() bool {
	return n.Type == NodeText
}

// Text returns the node's text payload, or "" for non-text nodes.
func (n *Node) Text() string {
	if s, ok := n.Data.(string); ok {
		return s
	}
	return ""
}

// BlockSpec is the result of a block-attribute handler: the block type the
// attribute selects (empty means the handler contributes attributes only)
// and block attributes to merge into the flushed block.
type BlockSpec struct {
	Type  string
	Attrs map[string]any
}

// BlockAttributeHandler maps a block-attribute value found on a newline op
// to the block type and attributes it implies.
type BlockAttributeHandler func(value any) BlockSpec

// ParserConfig supplies the block-attribute vocabulary to the parser,
// decoupling it from any specific editor. Attributes without a registered
// handler are treated as inline formatting.
type ParserConfig struct {
	BlockAttributes map[string]BlockAttributeHandler
	BlockEmbeds     map[string]bool
}

// stringAttr reads a string attribute, returning def when absent or not a string.
func stringAttr(attrs map[string]any, key, def string) string {
	if v, ok := attrs[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// intAttr reads an integer attribute, coercing JSON numbers and numeric
// strings. Invalid or missing values read as def.
func intAttr(attrs map[string]any, key string, def int) int {
	v, ok := attrs[key]
	if !ok {
		return def
	}
	return coerceInt(v, def)
}

// coerceInt converts a scalar attribute value to int, falling back to def.
func coerceInt(v any, def int) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
	}
	return def
}

// stringValue renders a scalar attribute value as a string.
func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case int:
		return strconv.Itoa(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}
