package delta2html

import (
	"fmt"
	"strings"
	"testing"
)

// convert runs the default pipeline over ops and fails the test on error.
func convert(t *testing.T, ops ...Op) string {
	t.Helper()
	out, err := NewConverter().Convert(Delta{Ops: ops})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	return out
}

func TestHTMLRenderer_Blocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ops  []Op
		want string
	}{
		{
			name: "paragraph",
			ops:  []Op{{Insert: "Hello\n"}},
			want: "<p>Hello</p>",
		},
		{
			name: "blockquote",
			ops: []Op{
				{Insert: "Wise words"},
				{Insert: "\n", Attributes: map[string]any{"blockquote": true}},
			},
			want: "<blockquote>Wise words</blockquote>",
		},
		{
			name: "bullet list from the flat op stream",
			ops: []Op{
				{Insert: "Item 1"},
				{Insert: "\n", Attributes: map[string]any{"list": "bullet"}},
				{Insert: "Item 2"},
				{Insert: "\n", Attributes: map[string]any{"list": "bullet"}},
			},
			want: "<ul><li>Item 1</li><li>Item 2</li></ul>",
		},
		{
			name: "ordered list",
			ops: []Op{
				{Insert: "First"},
				{Insert: "\n", Attributes: map[string]any{"list": "ordered"}},
			},
			want: "<ol><li>First</li></ol>",
		},
		{
			name: "nested list renders nested elements",
			ops: []Op{
				{Insert: "A"},
				{Insert: "\n", Attributes: map[string]any{"list": "bullet"}},
				{Insert: "B"},
				{Insert: "\n", Attributes: map[string]any{"list": "bullet", "indent": 1}},
			},
			want: "<ul><li>A<ul><li>B</li></ul></li></ul>",
		},
		{
			name: "checklist with per-item state",
			ops: []Op{
				{Insert: "Done"},
				{Insert: "\n", Attributes: map[string]any{"list": "checked"}},
				{Insert: "Todo"},
				{Insert: "\n", Attributes: map[string]any{"list": "unchecked"}},
			},
			want: `<ul class="ql-checklist"><li data-checked="true">Done</li><li data-checked="false">Todo</li></ul>`,
		},
		{
			name: "table from consecutive cells",
			ops: []Op{
				{Insert: "A"},
				{Insert: "\n", Attributes: map[string]any{"table": "row-1"}},
				{Insert: "B"},
				{Insert: "\n", Attributes: map[string]any{"table": "row-1"}},
				{Insert: "C"},
				{Insert: "\n", Attributes: map[string]any{"table": "row-2"}},
			},
			want: "<table><tbody><tr><td>A</td><td>B</td></tr><tr><td>C</td></tr></tbody></table>",
		},
		{
			name: "aligned header",
			ops: []Op{
				{Insert: "Centered"},
				{Insert: "\n", Attributes: map[string]any{"header": 1, "align": "center"}},
			},
			want: `<h1 class="ql-align-center">Centered</h1>`,
		},
		{
			name: "indented paragraph gets an indent class",
			ops: []Op{
				{Insert: "Deep"},
				{Insert: "\n", Attributes: map[string]any{"indent": 2}},
			},
			want: `<p class="ql-indent-2">Deep</p>`,
		},
		{
			name: "rtl direction",
			ops: []Op{
				{Insert: "שלום"},
				{Insert: "\n", Attributes: map[string]any{"direction": "rtl"}},
			},
			want: `<p class="ql-direction-rtl">שלום</p>`,
		},
		{
			name: "text is escaped",
			ops:  []Op{{Insert: "<script>\n"}},
			want: "<p>&lt;script&gt;</p>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := convert(t, tt.ops...); got != tt.want {
				t.Errorf("Convert() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHTMLRenderer_Headers(t *testing.T) {
	t.Parallel()

	for level := 1; level <= 6; level++ {
		got := convert(t,
			Op{Insert: "Title"},
			Op{Insert: "\n", Attributes: map[string]any{"header": level}},
		)
		want := fmt.Sprintf("<h%d>Title</h%d>", level, level)
		if got != want {
			t.Errorf("header %d: Convert() = %q, want %q", level, got, want)
		}
	}
}

func TestHTMLRenderer_Marks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		attrs map[string]any
		want  string
	}{
		{
			name:  "bold",
			attrs: map[string]any{"bold": true},
			want:  "<p><strong>x</strong></p>",
		},
		{
			name:  "bold and italic nest deterministically",
			attrs: map[string]any{"bold": true, "italic": true},
			want:  "<p><strong><em>x</em></strong></p>",
		},
		{
			name:  "underline inside strike",
			attrs: map[string]any{"underline": true, "strike": true},
			want:  "<p><s><u>x</u></s></p>",
		},
		{
			name:  "link wraps outermost",
			attrs: map[string]any{"link": "https://example.com", "bold": true},
			want:  `<p><a href="https://example.com"><strong>x</strong></a></p>`,
		},
		{
			name:  "inline code nests innermost",
			attrs: map[string]any{"code": true, "bold": true},
			want:  "<p><strong><code>x</code></strong></p>",
		},
		{
			name:  "superscript",
			attrs: map[string]any{"script": "super"},
			want:  "<p><sup>x</sup></p>",
		},
		{
			name:  "subscript",
			attrs: map[string]any{"script": "sub"},
			want:  "<p><sub>x</sub></p>",
		},
		{
			name:  "color alone uses a synthetic span",
			attrs: map[string]any{"color": "#e60000"},
			want:  `<p><span style="color: #e60000">x</span></p>`,
		},
		{
			name:  "color attaches to the innermost mark",
			attrs: map[string]any{"color": "#e60000", "bold": true},
			want:  `<p><strong style="color: #e60000">x</strong></p>`,
		},
		{
			name:  "color and background merge into one attribute set",
			attrs: map[string]any{"color": "#e60000", "background": "#ffff00"},
			want:  `<p><span style="color: #e60000; background-color: #ffff00">x</span></p>`,
		},
		{
			name:  "font and size become classes",
			attrs: map[string]any{"font": "serif", "size": "large"},
			want:  `<p><span class="ql-font-serif ql-size-large">x</span></p>`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := convert(t, Op{Insert: "x", Attributes: tt.attrs}, Op{Insert: "\n"})
			if got != tt.want {
				t.Errorf("Convert() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHTMLRenderer_InlineStyleOptions(t *testing.T) {
	t.Parallel()

	conv := NewConverter(WithHTMLOptions(HTMLOptions{InlineStyles: true}))

	got, err := conv.Convert(Delta{Ops: []Op{
		{Insert: "x", Attributes: map[string]any{"size": "18px"}},
		{Insert: "\n", Attributes: map[string]any{"align": "right"}},
	}})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	want := `<p style="text-align: right"><span style="font-size: 18px">x</span></p>`
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

func TestHTMLRenderer_Embeds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ops  []Op
		want string
	}{
		{
			name: "inline image inside a paragraph",
			ops: []Op{
				{Insert: map[string]any{"image": "pic.png"}, Attributes: map[string]any{"alt": "A"}},
				{Insert: "\n"},
			},
			want: `<p><img alt="A" src="pic.png"></p>`,
		},
		{
			name: "video is a standalone block",
			ops: []Op{
				{Insert: map[string]any{"video": "https://example.com/v"}},
			},
			want: `<iframe class="ql-video" allowfullscreen="true" frameborder="0" src="https://example.com/v"></iframe>`,
		},
		{
			name: "formula stays inline",
			ops: []Op{
				{Insert: map[string]any{"formula": "e=mc^2"}},
				{Insert: "\n"},
			},
			want: `<p><span class="ql-formula">e=mc^2</span></p>`,
		},
		{
			name: "divider",
			ops: []Op{
				{Insert: map[string]any{"divider": true}},
			},
			want: "<hr>",
		},
		{
			name: "unknown embed degrades to nothing instead of failing",
			ops: []Op{
				{Insert: "before "},
				{Insert: map[string]any{"gadget": "g1"}},
				{Insert: "\n"},
			},
			want: "<p>before </p>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := convert(t, tt.ops...); got != tt.want {
				t.Errorf("Convert() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHTMLRenderer_CodeBlocks(t *testing.T) {
	t.Parallel()

	t.Run("without language renders escaped pre", func(t *testing.T) {
		t.Parallel()
		got := convert(t,
			Op{Insert: "a < b"},
			Op{Insert: "\n", Attributes: map[string]any{"code-block": true}},
		)
		want := "<pre><code>a &lt; b</code></pre>"
		if got != want {
			t.Errorf("Convert() = %q, want %q", got, want)
		}
	})

	t.Run("consecutive lines join into one block", func(t *testing.T) {
		t.Parallel()
		got := convert(t,
			Op{Insert: "line one"},
			Op{Insert: "\n", Attributes: map[string]any{"code-block": true}},
			Op{Insert: "line two"},
			Op{Insert: "\n", Attributes: map[string]any{"code-block": true}},
		)
		want := "<pre><code>line one\nline two</code></pre>"
		if got != want {
			t.Errorf("Convert() = %q, want %q", got, want)
		}
	})

	t.Run("with language highlights through chroma", func(t *testing.T) {
		t.Parallel()
		got := convert(t,
			Op{Insert: "func main() {}"},
			Op{Insert: "\n", Attributes: map[string]any{"code-block": "go"}},
		)
		for _, want := range []string{"<pre", "main"} {
			if !strings.Contains(got, want) {
				t.Errorf("Convert() = %q, missing %q", got, want)
			}
		}
	})

	t.Run("unknown language falls back to escaped text", func(t *testing.T) {
		t.Parallel()
		got := convert(t,
			Op{Insert: "plain text"},
			Op{Insert: "\n", Attributes: map[string]any{"code-block": "plain"}},
		)
		want := "<pre><code>plain text</code></pre>"
		if got != want {
			t.Errorf("Convert() = %q, want %q", got, want)
		}
	})
}

func TestHTMLRenderer_MixedDocument(t *testing.T) {
	t.Parallel()

	got := convert(t,
		Op{Insert: "Report"},
		Op{Insert: "\n", Attributes: map[string]any{"header": 1}},
		Op{Insert: "An "},
		Op{Insert: "important", Attributes: map[string]any{"bold": true}},
		Op{Insert: " finding.\n"},
		Op{Insert: "First"},
		Op{Insert: "\n", Attributes: map[string]any{"list": "ordered"}},
		Op{Insert: "Second"},
		Op{Insert: "\n", Attributes: map[string]any{"list": "ordered"}},
	)

	want := "<h1>Report</h1>" +
		"<p>An <strong>important</strong> finding.</p>" +
		"<ol><li>First</li><li>Second</li></ol>"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}
