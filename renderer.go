package delta2html

import "sort"

// Format supplies the output-type primitives for a Renderer. Join and Text
// are required; the remaining primitives enable attribute composition and
// declarative tag rules for formats that support them.
type Format[O, A any] struct {
	// Join concatenates rendered children into one output value.
	Join func(children []O) O
	// Text renders raw text; this is the escaping hook.
	Text func(text string) O

	// MergeAttrs combines two collected-attribute values; later values win
	// on conflict. Nil means the last contribution replaces earlier ones.
	MergeAttrs func(into, from A) A
	// EmptyAttrs returns the neutral collected-attribute value. Nil means
	// the zero value of A.
	EmptyAttrs func() A
	// HasAttrs reports whether a collected-attribute value carries anything.
	HasAttrs func(attrs A) bool
	// WrapAttrs wraps content in a synthetic default element carrying
	// collected attributes, used when no element marks apply to a run.
	WrapAttrs func(content O, attrs A) O
	// Tag wraps content in a named element; required for declarative
	// {Tag: ...} block and mark rules.
	Tag func(tag string, content O, attrs A) O
}

// Mark is one inline attribute applied to a text run.
type Mark struct {
	Name  string
	Value any
}

// Handler signatures for the renderer registries.
type (
	// BlockHandler renders a block node from its already-rendered children
	// and resolved block attributes.
	BlockHandler[O, A any] func(node *Node, children O, attrs A) O
	// MarkHandler wraps rendered inline content. The attrs value carries
	// collected attributor contributions for the innermost mark only.
	MarkHandler[O, A any] func(mark Mark, inner O, attrs A) O
	// AttributorHandler contributes mergeable attributes instead of
	// wrapping content in its own element.
	AttributorHandler[A any] func(name string, value any) A
	// BlockAttrResolver contributes partial block attributes; resolvers
	// are merged left-to-right in registration order.
	BlockAttrResolver[A any] func(node *Node) A
	// OverrideHandler bypasses the standard block-handler lookup for one
	// node type, with full control over child rendering.
	OverrideHandler[O, A any] func(node *Node, renderChild func(*Node) O) O
	// UnknownNodeHandler supplies a fallback for unregistered node types.
	UnknownNodeHandler[O any] func(node *Node, children O) O
)

// BlockRule is a two-case union: a declarative tag rendered through
// Format.Tag, or a custom handler. Render wins when both are set.
type BlockRule[O, A any] struct {
	Tag    string
	Render BlockHandler[O, A]
}

// MarkRule is the mark-side union plus its nesting priority. Marks apply
// in ascending priority order, lowest priority innermost; ties break by
// registration order.
type MarkRule[O, A any] struct {
	Tag      string
	Render   MarkHandler[O, A]
	Priority int
}

// Renderer walks a document tree and folds it into an arbitrary output
// type, driven by type-keyed handler registries. Renderers are immutable:
// every WithX method returns a clone with one entry added or replaced, so
// a configured renderer can be shared and derived from freely. Clones may
// render concurrently as long as caller-supplied handlers are
// side-effect-free; that contract is documented, not enforced.
type Renderer[O, A any] struct {
	format      Format[O, A]
	blocks      map[string]BlockRule[O, A]
	marks       map[string]MarkRule[O, A]
	markOrder   []string
	attributors map[string]AttributorHandler[A]
	attrOrder   []string
	resolvers   []BlockAttrResolver[A]
	overrides   map[string]OverrideHandler[O, A]
	onUnknown   UnknownNodeHandler[O]
}

// NewRenderer creates an empty renderer for the given format.
// Panics if Join or Text is missing (programmer error).
func NewRenderer[O, A any](format Format[O, A]) *Renderer[O, A] {
	if format.Join == nil || format.Text == nil {
		panic("delta2html: Format.Join and Format.Text are required")
	}
	return &Renderer[O, A]{
		format:      format,
		blocks:      map[string]BlockRule[O, A]{},
		marks:       map[string]MarkRule[O, A]{},
		attributors: map[string]AttributorHandler[A]{},
		overrides:   map[string]OverrideHandler[O, A]{},
	}
}

// clone copies the renderer and its registries; the original is untouched.
func (r *Renderer[O, A]) clone() *Renderer[O, A] {
	out := &Renderer[O, A]{
		format:      r.format,
		blocks:      make(map[string]BlockRule[O, A], len(r.blocks)+1),
		marks:       make(map[string]MarkRule[O, A], len(r.marks)+1),
		markOrder:   append([]string(nil), r.markOrder...),
		attributors: make(map[string]AttributorHandler[A], len(r.attributors)+1),
		attrOrder:   append([]string(nil), r.attrOrder...),
		resolvers:   append([]BlockAttrResolver[A](nil), r.resolvers...),
		overrides:   make(map[string]OverrideHandler[O, A], len(r.overrides)+1),
		onUnknown:   r.onUnknown,
	}
	for k, v := range r.blocks {
		out.blocks[k] = v
	}
	for k, v := range r.marks {
		out.marks[k] = v
	}
	for k, v := range r.attributors {
		out.attributors[k] = v
	}
	for k, v := range r.overrides {
		out.overrides[k] = v
	}
	return out
}

// WithBlock returns a copy with a block rule registered for a node type.
func (r *Renderer[O, A]) WithBlock(nodeType string, rule BlockRule[O, A]) *Renderer[O, A] {
	out := r.clone()
	out.blocks[nodeType] = rule
	return out
}

// WithMark returns a copy with a mark rule registered for an inline
// attribute name. Re-registering a name keeps its original position in the
// tie-break order.
func (r *Renderer[O, A]) WithMark(name string, rule MarkRule[O, A]) *Renderer[O, A] {
	out := r.clone()
	if _, exists := out.marks[name]; !exists {
		out.markOrder = append(out.markOrder, name)
	}
	out.marks[name] = rule
	return out
}

// WithAttributor returns a copy with an attributor registered for an
// inline attribute name. Contributions merge in registration order.
func (r *Renderer[O, A]) WithAttributor(name string, h AttributorHandler[A]) *Renderer[O, A] {
	out := r.clone()
	if _, exists := out.attributors[name]; !exists {
		out.attrOrder = append(out.attrOrder, name)
	}
	out.attributors[name] = h
	return out
}

// WithBlockAttrResolver returns a copy with a block-attribute resolver
// appended; resolvers merge left-to-right.
func (r *Renderer[O, A]) WithBlockAttrResolver(res BlockAttrResolver[A]) *Renderer[O, A] {
	out := r.clone()
	out.resolvers = append(out.resolvers, res)
	return out
}

// WithOverride returns a copy with a node override registered for a type.
func (r *Renderer[O, A]) WithOverride(nodeType string, h OverrideHandler[O, A]) *Renderer[O, A] {
	out := r.clone()
	out.overrides[nodeType] = h
	return out
}

// WithUnknownNode returns a copy with a fallback for unregistered types.
func (r *Renderer[O, A]) WithUnknownNode(h UnknownNodeHandler[O]) *Renderer[O, A] {
	out := r.clone()
	out.onUnknown = h
	return out
}

// Render folds the document tree into the output type. Rendering is
// best-effort and total: unregistered node types degrade to pass-through
// (children only) instead of failing, so one unknown embed never breaks a
// whole document.
func (r *Renderer[O, A]) Render(root *Node) O {
	return r.renderNode(root)
}

func (r *Renderer[O, A]) renderNode(n *Node) O {
	if n.Type == NodeRoot {
		return r.renderChildren(n)
	}
	if n.IsText() {
		return r.renderText(n)
	}

	if override, ok := r.overrides[n.Type]; ok {
		return override(n, r.renderNode)
	}

	children := r.renderChildren(n)
	rule, ok := r.blocks[n.Type]
	if !ok {
		if r.onUnknown != nil {
			return r.onUnknown(n, children)
		}
		return children
	}

	attrs := r.resolveBlockAttrs(n)
	if rule.Render != nil {
		return rule.Render(n, children, attrs)
	}
	return r.format.Tag(rule.Tag, children, attrs)
}

func (r *Renderer[O, A]) renderChildren(n *Node) O {
	outs := make([]O, 0, len(n.Children))
	for _, c := range n.Children {
		outs = append(outs, r.renderNode(c))
	}
	return r.format.Join(outs)
}

// renderText renders a text run in two phases: collect attributor
// contributions and applicable marks, then fold the marks outward from the
// innermost. The collected payload is injected only at index 0 (the
// innermost mark), or into a synthetic wrapper when no marks apply.
func (r *Renderer[O, A]) renderText(n *Node) O {
	out := r.format.Text(n.Text())

	collected := r.emptyAttrs()
	hasCollected := false
	for _, name := range r.attrOrder {
		v, ok := n.Attributes[name]
		if !ok {
			continue
		}
		collected = r.mergeAttrs(collected, r.attributors[name](name, v))
		hasCollected = true
	}

	type appliedMark struct {
		rule MarkRule[O, A]
		mark Mark
	}
	var marks []appliedMark
	for _, name := range r.markOrder {
		v, ok := n.Attributes[name]
		if !ok {
			continue
		}
		marks = append(marks, appliedMark{rule: r.marks[name], mark: Mark{Name: name, Value: v}})
	}
	sort.SliceStable(marks, func(i, j int) bool {
		return marks[i].rule.Priority < marks[j].rule.Priority
	})

	if len(marks) == 0 {
		if hasCollected && r.format.WrapAttrs != nil && r.hasAttrs(collected) {
			return r.format.WrapAttrs(out, collected)
		}
		return out
	}

	for i, m := range marks {
		attrs := r.emptyAttrs()
		if i == 0 {
			attrs = collected
		}
		if m.rule.Render != nil {
			out = m.rule.Render(m.mark, out, attrs)
		} else {
			out = r.format.Tag(m.rule.Tag, out, attrs)
		}
	}
	return out
}

// resolveBlockAttrs merges resolver contributions left-to-right.
func (r *Renderer[O, A]) resolveBlockAttrs(n *Node) A {
	attrs := r.emptyAttrs()
	for _, res := range r.resolvers {
		attrs = r.mergeAttrs(attrs, res(n))
	}
	return attrs
}

func (r *Renderer[O, A]) emptyAttrs() A {
	if r.format.EmptyAttrs != nil {
		return r.format.EmptyAttrs()
	}
	var zero A
	return zero
}

func (r *Renderer[O, A]) mergeAttrs(into, from A) A {
	if r.format.MergeAttrs != nil {
		return r.format.MergeAttrs(into, from)
	}
	return from
}

func (r *Renderer[O, A]) hasAttrs(attrs A) bool {
	if r.format.HasAttrs != nil {
		return r.format.HasAttrs(attrs)
	}
	return true
}
