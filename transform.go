package delta2html

// Transformer is a pure tree-to-tree pass over the document. Transformers
// return a new tree (structural sharing of untouched subtrees is fine) and
// never mutate their input, so they compose and reorder freely.
type Transformer func(root *Node) *Node

// DefaultTransformers returns the standard structural pipeline in
// application order: list nesting, table grouping, code-block grouping.
func DefaultTransformers() []Transformer {
	return []Transformer{NestLists, GroupTables, GroupCodeBlocks}
}

// applyTransformers runs the pipeline stages in registration order.
func applyTransformers(root *Node, transformers []Transformer) *Node {
	for _, t := range transformers {
		root = t(root)
	}
	return root
}
