package delta2html

// partitionAdjacent splits nodes into runs where same holds between every
// pair of neighbors. Shared by the table and code-block groupers.
func partitionAdjacent(nodes []*Node, same func(a, b *Node) bool) [][]*Node {
	var runs [][]*Node
	for _, n := range nodes {
		if len(runs) > 0 {
			run := runs[len(runs)-1]
			if same(run[len(run)-1], n) {
				runs[len(runs)-1] = append(run, n)
				continue
			}
		}
		runs = append(runs, []*Node{n})
	}
	return runs
}

// GroupTables wraps each contiguous run of table-cell blocks in a table
// container of table-row containers. Rows are sub-grouped by row-id
// equality between consecutive cells only: the same row id separated by an
// unrelated block is never merged.
func GroupTables(root *Node) *Node {
	out := make([]*Node, 0, len(root.Children))
	children := root.Children

	for i := 0; i < len(children); {
		if children[i].Type != NodeTableCell {
			out = append(out, children[i])
			i++
			continue
		}

		j := i
		for j < len(children) && children[j].Type == NodeTableCell {
			j++
		}

		rows := partitionAdjacent(children[i:j], func(a, b *Node) bool {
			return stringAttr(a.Attributes, "row", "") == stringAttr(b.Attributes, "row", "")
		})

		rowNodes := make([]*Node, 0, len(rows))
		for _, cells := range rows {
			rowNodes = append(rowNodes, &Node{
				Type:       NodeTableRow,
				Attributes: map[string]any{"row": stringAttr(cells[0].Attributes, "row", "")},
				Children:   cells,
			})
		}
		out = append(out, &Node{
			Type:       NodeTable,
			Attributes: map[string]any{},
			Children:   rowNodes,
		})
		i = j
	}

	return &Node{Type: root.Type, Attributes: root.Attributes, Children: out}
}

// GroupCodeBlocks merges consecutive code-block nodes into one
// code-block-container. Each line keeps its own attributes, so per-line
// language metadata survives the merge.
func GroupCodeBlocks(root *Node) *Node {
	out := make([]*Node, 0, len(root.Children))
	children := root.Children

	for i := 0; i < len(children); {
		if children[i].Type != NodeCodeBlock {
			out = append(out, children[i])
			i++
			continue
		}

		j := i
		for j < len(children) && children[j].Type == NodeCodeBlock {
			j++
		}
		out = append(out, &Node{
			Type:       NodeCodeBlockContainer,
			Attributes: map[string]any{},
			Children:   children[i:j],
		})
		i = j
	}

	return &Node{Type: root.Type, Attributes: root.Attributes, Children: out}
}
