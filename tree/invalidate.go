package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// StyleInvalidationReason says why a node's style became stale. Some reasons
// always require the node itself to be restyled; others only mark the
// ancestor chain so a later top-down pass descends into the subtree.
type StyleInvalidationReason int

const (
	StyleInvalidationOther StyleInvalidationReason = iota
	StyleInvalidationNodeInsertBefore
	StyleInvalidationNodeRemove
	StyleInvalidationNodeSetTextContent
	StyleInvalidationParentOfInsertedNode
	StyleInvalidationElementAttributeChange
	StyleInvalidationEditingInsertion
)

func (r StyleInvalidationReason) String() string {
	switch r {
	case StyleInvalidationNodeInsertBefore:
		return "NodeInsertBefore"
	case StyleInvalidationNodeRemove:
		return "NodeRemove"
	case StyleInvalidationNodeSetTextContent:
		return "NodeSetTextContent"
	case StyleInvalidationParentOfInsertedNode:
		return "ParentOfInsertedNode"
	case StyleInvalidationElementAttributeChange:
		return "ElementAttributeChange"
	case StyleInvalidationEditingInsertion:
		return "EditingInsertion"
	}
	return "Other"
}

// alwaysInvalidatesSelf reports whether the reason requires the node's own
// needs-style flag, not just descent marks on the ancestor chain.
func (r StyleInvalidationReason) alwaysInvalidatesSelf() bool {
	switch r {
	case StyleInvalidationNodeInsertBefore, StyleInvalidationNodeRemove,
		StyleInvalidationNodeSetTextContent, StyleInvalidationEditingInsertion,
		StyleInvalidationElementAttributeChange:
		return true
	}
	return false
}

// InvalidationProperty names a style property affected by an invalidation,
// vocabulary shared with the external style subsystem.
type InvalidationProperty string

// --- Flag accessors --------------------------------------------------------

// NeedsLayoutTreeUpdate reports whether the node's layout tree slice is stale.
func (n *Node) NeedsLayoutTreeUpdate() bool { return n.needsLayoutTreeUpdate }

// ChildNeedsLayoutTreeUpdate reports whether some descendant needs a layout
// tree update.
func (n *Node) ChildNeedsLayoutTreeUpdate() bool { return n.childNeedsLayoutTreeUpdate }

// SetChildNeedsLayoutTreeUpdate is used by the layout subsystem when clearing
// flags after a pass.
func (n *Node) SetChildNeedsLayoutTreeUpdate(b bool) { n.childNeedsLayoutTreeUpdate = b }

// NeedsStyleUpdate reports whether the node's computed style is stale.
func (n *Node) NeedsStyleUpdate() bool { return n.needsStyleUpdate }

// NeedsInheritedStyleUpdate reports whether only inherited properties are
// stale.
func (n *Node) NeedsInheritedStyleUpdate() bool { return n.needsInheritedStyleUpdate }

// ChildNeedsStyleUpdate reports whether some descendant needs a style update.
func (n *Node) ChildNeedsStyleUpdate() bool { return n.childNeedsStyleUpdate }

// SetChildNeedsStyleUpdate is used by the style subsystem when clearing flags.
func (n *Node) SetChildNeedsStyleUpdate(b bool) { n.childNeedsStyleUpdate = b }

// EntireSubtreeNeedsStyleUpdate reports whether every descendant must be
// restyled.
func (n *Node) EntireSubtreeNeedsStyleUpdate() bool { return n.entireSubtreeNeedsStyleUpdate }

// SetEntireSubtreeNeedsStyleUpdate marks or clears the whole-subtree flag.
func (n *Node) SetEntireSubtreeNeedsStyleUpdate(b bool) { n.entireSubtreeNeedsStyleUpdate = b }

// --- Propagating setters ---------------------------------------------------

// SetNeedsLayoutTreeUpdate sets the node's layout-dirty flag; raising it also
// raises ChildNeedsLayoutTreeUpdate on every ancestor up to the root, so the
// layout pass can find the dirty subtree in O(depth).
func (n *Node) SetNeedsLayoutTreeUpdate(b bool) {
	n.needsLayoutTreeUpdate = b
	if !b {
		return
	}
	for anc := n.parent; anc != nil; anc = anc.parent {
		anc.childNeedsLayoutTreeUpdate = true
	}
}

// SetNeedsStyleUpdate sets the node's style-dirty flag and, when raising it,
// marks the ancestor chain.
func (n *Node) SetNeedsStyleUpdate(b bool) {
	n.needsStyleUpdate = b
	if b {
		n.markAncestorsChildNeedsStyleUpdate()
	}
}

// SetNeedsInheritedStyleUpdate sets the inherited-style-dirty flag and, when
// raising it, marks the ancestor chain.
func (n *Node) SetNeedsInheritedStyleUpdate(b bool) {
	n.needsInheritedStyleUpdate = b
	if b {
		n.markAncestorsChildNeedsStyleUpdate()
	}
}

func (n *Node) markAncestorsChildNeedsStyleUpdate() {
	for anc := n.parent; anc != nil; anc = anc.parent {
		anc.childNeedsStyleUpdate = true
	}
}

// InvalidateStyle records that the node's style may have changed for the
// given reason. The node's own dirty bit is set only if the reason requires
// it; the ancestor chain is marked unconditionally.
func (n *Node) InvalidateStyle(reason StyleInvalidationReason) {
	n.InvalidateStyleWithProperties(reason, nil, false)
}

// InvalidateStyleWithProperties is InvalidateStyle with an affected-property
// set for the style subsystem and an override forcing self-invalidation.
func (n *Node) InvalidateStyleWithProperties(reason StyleInvalidationReason, props []InvalidationProperty, forceSelf bool) {
	if forceSelf || reason.alwaysInvalidatesSelf() {
		n.needsStyleUpdate = true
	}
	n.markAncestorsChildNeedsStyleUpdate()
	tracer().P("reason", reason.String()).Debugf("invalidated style of %v (%d properties)", n, len(props))
}
