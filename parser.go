package delta2html

import (
	"sort"
	"strings"
)

// Parse reconstructs the document tree from a flat op stream.
// Only insert ops are consumed; retain and delete ops are skipped.
// Parsing is all-or-nothing: on a shape error no partial tree is returned.
func Parse(delta Delta, cfg ParserConfig) (*Node, error) {
	if delta.Ops == nil {
		return nil, ErrMissingOps
	}

	p := &opParser{cfg: cfg}
	for _, op := range delta.Ops {
		switch v := op.Insert.(type) {
		case string:
			p.pushText(v, op.Attributes)
		case map[string]any:
			if err := p.pushEmbed(v, op.Attributes); err != nil {
				return nil, err
			}
		}
	}
	p.flushTrailing()

	return NewRoot(p.blocks...), nil
}

// opParser accumulates inline content in a buffer and flushes it into
// finished blocks on every embedded newline.
type opParser struct {
	cfg    ParserConfig
	buffer []*Node
	blocks []*Node
}

// pushText splits a text insert on newlines. Non-empty segments join the
// inline buffer carrying the op's non-block attributes; each embedded
// newline flushes the buffer into a block whose type and attributes come
// from the newline op's registered block attributes.
func (p *opParser) pushText(text string, attrs map[string]any) {
	segments := strings.Split(text, "\n")
	for i, seg := range segments {
		if seg != "" {
			p.buffer = append(p.buffer, NewTextNode(seg, p.inlineAttrs(attrs)))
		}
		if i < len(segments)-1 {
			p.flushBlock(attrs)
		}
	}
}

// pushEmbed resolves (type, data) from the embed object's single key.
// Block embeds flush the pending buffer as a paragraph and become
// standalone sibling blocks; anything else joins the inline buffer.
func (p *opParser) pushEmbed(embed map[string]any, attrs map[string]any) error {
	if len(embed) == 0 {
		return ErrEmptyEmbed
	}

	keys := make([]string, 0, len(embed))
	for k := range embed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	embedType := keys[0]
	embedData := embed[embedType]

	if p.cfg.BlockEmbeds[embedType] {
		if len(p.buffer) > 0 {
			p.flushBlock(nil)
		}
		p.blocks = append(p.blocks, &Node{
			Type:       embedType,
			Attributes: copyAttrs(attrs),
			Data:       embedData,
		})
		return nil
	}

	p.buffer = append(p.buffer, &Node{
		Type:       embedType,
		Attributes: copyAttrs(attrs),
		Data:       embedData,
		Inline:     true,
	})
	return nil
}

// flushBlock moves the inline buffer into a finished block. Every
// registered block attribute on the newline op is consulted in lexicographic
// key order: the last non-empty block type wins, block attributes are
// shallow-merged cumulatively.
func (p *opParser) flushBlock(attrs map[string]any) {
	blockType := NodeParagraph
	blockAttrs := map[string]any{}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if p.cfg.BlockAttributes[k] != nil {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		spec := p.cfg.BlockAttributes[k](attrs[k])
		if spec.Type != "" {
			blockType = spec.Type
		}
		for ak, av := range spec.Attrs {
			blockAttrs[ak] = av
		}
	}

	p.blocks = append(p.blocks, &Node{
		Type:       blockType,
		Attributes: blockAttrs,
		Children:   p.buffer,
	})
	p.buffer = nil
}

// flushTrailing emits trailing text without a final newline as a paragraph.
func (p *opParser) flushTrailing() {
	if len(p.buffer) > 0 {
		p.flushBlock(nil)
	}
}

// inlineAttrs strips registered block-attribute keys from an op's attribute
// map: those are block metadata, not inline formatting. Returns nil when
// nothing remains.
func (p *opParser) inlineAttrs(attrs map[string]any) map[string]any {
	var out map[string]any
	for k, v := range attrs {
		if p.cfg.BlockAttributes[k] != nil {
			continue
		}
		if out == nil {
			out = make(map[string]any, len(attrs))
		}
		out[k] = v
	}
	return out
}

// copyAttrs shallow-copies an attribute map, returning nil for empty input.
func copyAttrs(attrs map[string]any) map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}
