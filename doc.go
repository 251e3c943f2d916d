// Package delta2html converts Quill Delta operation streams into HTML.
//
// # Quick Start
//
// Create a converter and feed it delta JSON:
//
//	conv := delta2html.NewConverter()
//	out, err := conv.ConvertJSON([]byte(`{"ops":[{"insert":"Hello\n"}]}`))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out) // <p>Hello</p>
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Operation stream parsing (flat ops to an initial block tree)
//  2. Structural transformation (list nesting, table grouping,
//     code-block grouping), each stage a pure tree-to-tree pass
//  3. Rendering through a registry of type-keyed handlers
//
// Each stage returns a new tree rather than mutating its input, so stages
// can be reordered, replaced, or tested in isolation:
//
//	conv := delta2html.NewConverter(
//	    delta2html.WithTransformers(delta2html.NestLists),
//	)
//
// # Rendering Other Output Types
//
// The rendering engine is generic over the output type. A concrete format
// supplies Join and Text primitives (plus attribute-merging primitives for
// formats that compose attributes) and registers handlers per node type:
//
//	r := delta2html.NewRenderer(delta2html.Format[string, struct{}]{
//	    Join: func(c []string) string { return strings.Join(c, "") },
//	    Text: func(s string) string { return s },
//	})
//	r = r.WithBlock("paragraph", delta2html.BlockRule[string, struct{}]{
//	    Render: func(_ *delta2html.Node, children string, _ struct{}) string {
//	        return children + "\n"
//	    },
//	})
//
// Every With method returns a new renderer; the original is never
// mutated. Inline marks nest by ascending priority (lowest innermost),
// attributors contribute merged attributes to the innermost mark, and
// unregistered node types render as their children, so output is produced
// for any tree.
//
// # Parallel Processing
//
// For batch conversion, use ConverterPool to bound parallelism:
//
//	pool := delta2html.NewConverterPool(4)
//
//	conv := pool.Acquire()
//	defer pool.Release(conv)
//	out, err := conv.ConvertJSON(data)
package delta2html
