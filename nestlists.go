package delta2html

import "sort"

// checklistFamily is the shared type family for checked and unchecked
// items: mixed task lists nest and merge as one list, while each item
// keeps its own checked state in its attributes.
const checklistFamily = "checklist"

// NestLists rebuilds flat runs of list-item blocks into nested list
// containers using each item's list-type and indent attributes. Non-list
// blocks pass through untouched. The pass works in four phases:
//
//  1. group consecutive items sharing (type family, indent)
//  2. collect contiguous all-list runs into sections; cross-indent nesting
//     never crosses a section boundary
//  3. per section, nest deeper groups under the nearest preceding
//     shallower group, deepest indent first
//  4. merge consecutive surviving top-level groups of the same family
//
// Item order is always preserved, a missing indent reads as 0, and running
// the pass on its own output is a no-op.
func NestLists(root *Node) *Node {
	out := make([]*Node, 0, len(root.Children))
	children := root.Children

	for i := 0; i < len(children); {
		if children[i].Type != NodeListItem {
			out = append(out, children[i])
			i++
			continue
		}

		// Section: a maximal run of consecutive list items.
		j := i
		for j < len(children) && children[j].Type == NodeListItem {
			j++
		}

		section := groupListItems(children[i:j])
		section = nestByIndent(section)
		section = mergeAdjacentFamilies(section)
		for _, g := range section {
			out = append(out, g.toNode())
		}
		i = j
	}

	return &Node{Type: root.Type, Attributes: root.Attributes, Children: out}
}

// listGroup is a transient run of same-family, same-indent list items.
// Groups exist only inside this pass and are discarded once converted
// back to nodes.
type listGroup struct {
	family string
	typ    string
	indent int
	items  []*listItem
}

// listItem pairs an original list-item block with the list nested under it.
type listItem struct {
	node   *Node
	nested *listGroup
}

// listFamily resolves an item's type family and the list type its group
// will render as. Checked and unchecked collapse into one family; every
// other list-type value is its own family.
func listFamily(n *Node) (family, typ string) {
	v := stringAttr(n.Attributes, "list", "")
	if v == "checked" || v == "unchecked" {
		return checklistFamily, checklistFamily
	}
	return v, v
}

// groupListItems partitions consecutive items sharing (family, indent).
func groupListItems(items []*Node) []*listGroup {
	var groups []*listGroup
	for _, n := range items {
		family, typ := listFamily(n)
		indent := intAttr(n.Attributes, "indent", 0)

		if len(groups) > 0 {
			last := groups[len(groups)-1]
			if last.family == family && last.indent == indent {
				last.items = append(last.items, &listItem{node: n})
				continue
			}
		}
		groups = append(groups, &listGroup{
			family: family,
			typ:    typ,
			indent: indent,
			items:  []*listItem{{node: n}},
		})
	}
	return groups
}

// nestByIndent attaches deeper groups under shallower ones, processing
// indents deepest first. Each group attaches to the nearest preceding
// group with a strictly lower indent, so indent gaps (0, 1, 3) nest under
// the closest real level instead of inventing a synthetic one. A group
// with no qualifying predecessor stays at the top level.
func nestByIndent(section []*listGroup) []*listGroup {
	depths := map[int]bool{}
	for _, g := range section {
		depths[g.indent] = true
	}
	indents := make([]int, 0, len(depths))
	for d := range depths {
		indents = append(indents, d)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(indents)))

	for _, d := range indents {
		for idx := 0; idx < len(section); idx++ {
			g := section[idx]
			if g.indent != d {
				continue
			}

			var parent *listGroup
			for k := idx - 1; k >= 0; k-- {
				if section[k].indent < d {
					parent = section[k]
					break
				}
			}
			if parent == nil {
				continue
			}

			last := parent.items[len(parent.items)-1]
			if last.nested != nil {
				last.nested.items = append(last.nested.items, g.items...)
			} else {
				last.nested = g
			}
			section = append(section[:idx], section[idx+1:]...)
			idx--
		}
	}
	return section
}

// mergeAdjacentFamilies joins consecutive top-level groups of the same
// family into one list, even when a now-nested sub-group separated them
// in the flat sequence.
func mergeAdjacentFamilies(section []*listGroup) []*listGroup {
	var out []*listGroup
	for _, g := range section {
		if len(out) > 0 && out[len(out)-1].family == g.family {
			prev := out[len(out)-1]
			prev.items = append(prev.items, g.items...)
			continue
		}
		out = append(out, g)
	}
	return out
}

// toNode converts a surviving group into a list node whose children are
// list-item nodes. An item's inline children are followed, if present, by
// its nested list as the last child. Original blocks are never mutated.
func (g *listGroup) toNode() *Node {
	children := make([]*Node, 0, len(g.items))
	for _, it := range g.items {
		children = append(children, it.toNode())
	}
	return &Node{
		Type:       NodeList,
		Attributes: map[string]any{"list": g.typ},
		Children:   children,
	}
}

func (it *listItem) toNode() *Node {
	children := make([]*Node, 0, len(it.node.Children)+1)
	children = append(children, it.node.Children...)
	if it.nested != nil {
		children = append(children, it.nested.toNode())
	}
	return &Node{
		Type:       NodeListItem,
		Attributes: it.node.Attributes,
		Children:   children,
	}
}
