package delta2html_test

import (
	"fmt"
	"strings"

	delta2html "github.com/alnah/go-delta2html"
)

// Example demonstrates basic delta to HTML conversion.
func Example() {
	conv := delta2html.NewConverter()

	out, err := conv.ConvertJSON([]byte(
		`{"ops":[{"insert":"Hello "},{"insert":"world","attributes":{"bold":true}},{"insert":"\n"}]}`,
	))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(out)
	// Output: <p>Hello <strong>world</strong></p>
}

// Example_lists demonstrates list nesting reconstructed from flat ops.
func Example_lists() {
	conv := delta2html.NewConverter()

	out, err := conv.Convert(delta2html.Delta{Ops: []delta2html.Op{
		{Insert: "Fruit"},
		{Insert: "\n", Attributes: map[string]any{"list": "bullet"}},
		{Insert: "Apple"},
		{Insert: "\n", Attributes: map[string]any{"list": "bullet", "indent": 1}},
		{Insert: "Pear"},
		{Insert: "\n", Attributes: map[string]any{"list": "bullet", "indent": 1}},
	}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(out)
	// Output: <ul><li>Fruit<ul><li>Apple</li><li>Pear</li></ul></li></ul>
}

// Example_customRenderer derives a renderer with an extra mark. The
// packaged renderer is untouched by the derivation.
func Example_customRenderer() {
	r := delta2html.NewHTMLRenderer(delta2html.HTMLOptions{}).
		WithMark("spoiler", delta2html.MarkRule[string, delta2html.HTMLAttrs]{
			Tag:      "details",
			Priority: 90,
		})
	conv := delta2html.NewConverter(delta2html.WithRenderer(r))

	out, err := conv.Convert(delta2html.Delta{Ops: []delta2html.Op{
		{Insert: "secret", Attributes: map[string]any{"spoiler": true}},
		{Insert: "\n"},
	}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(out)
	// Output: <p><details>secret</details></p>
}

// Example_genericOutput renders the same tree into a non-HTML output
// type: plain text with one line per block.
func Example_genericOutput() {
	plain := delta2html.NewRenderer(delta2html.Format[string, struct{}]{
		Join: func(children []string) string { return strings.Join(children, "") },
		Text: func(s string) string { return s },
	}).WithBlock("paragraph", delta2html.BlockRule[string, struct{}]{
		Render: func(_ *delta2html.Node, children string, _ struct{}) string {
			return children + "\n"
		},
	})

	root, err := delta2html.Parse(delta2html.Delta{Ops: []delta2html.Op{
		{Insert: "one\ntwo\n"},
	}}, delta2html.QuillParserConfig())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(plain.Render(root))
	// Output:
	// one
	// two
}
