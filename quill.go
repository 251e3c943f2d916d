package delta2html

// QuillParserConfig returns the block-attribute vocabulary of the Quill
// editor: newline attributes selecting header, list-item, blockquote,
// code-block, and table-cell blocks, plus indent/align/direction metadata
// that rides along without changing the block type. Video and divider are
// block embeds; image and formula stay inline.
func QuillParserConfig() ParserConfig {
	return ParserConfig{
		BlockAttributes: map[string]BlockAttributeHandler{
			"header": func(v any) BlockSpec {
				return BlockSpec{Type: NodeHeader, Attrs: map[string]any{"header": coerceInt(v, 1)}}
			},
			"list": func(v any) BlockSpec {
				return BlockSpec{Type: NodeListItem, Attrs: map[string]any{"list": stringValue(v)}}
			},
			"blockquote": func(v any) BlockSpec {
				return BlockSpec{Type: NodeBlockquote}
			},
			"code-block": func(v any) BlockSpec {
				// Value is true for a plain code line or a language name.
				attrs := map[string]any{}
				if s, ok := v.(string); ok && s != "" && s != "true" {
					attrs["language"] = s
				}
				return BlockSpec{Type: NodeCodeBlock, Attrs: attrs}
			},
			"table": func(v any) BlockSpec {
				return BlockSpec{Type: NodeTableCell, Attrs: map[string]any{"row": stringValue(v)}}
			},
			"indent": func(v any) BlockSpec {
				return BlockSpec{Attrs: map[string]any{"indent": coerceInt(v, 0)}}
			},
			"align": func(v any) BlockSpec {
				return BlockSpec{Attrs: map[string]any{"align": stringValue(v)}}
			},
			"direction": func(v any) BlockSpec {
				return BlockSpec{Attrs: map[string]any{"direction": stringValue(v)}}
			},
		},
		BlockEmbeds: map[string]bool{
			"video":   true,
			"divider": true,
		},
	}
}
