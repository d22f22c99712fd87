package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// TraversalDecision is returned by subtree visitor callbacks to steer a
// depth-first traversal.
type TraversalDecision int

const (
	// TraversalContinue descends into children and continues with siblings.
	TraversalContinue TraversalDecision = iota
	// TraversalSkipChildren continues with siblings but does not descend.
	TraversalSkipChildren
	// TraversalBreak aborts the whole traversal.
	TraversalBreak
)

// IterationDecision is returned by single-axis visitor callbacks (ancestors,
// children, siblings).
type IterationDecision int

const (
	IterationContinue IterationDecision = iota
	IterationBreak
)

// --- Pre-order stepping ----------------------------------------------------

// NextInPreOrder returns the node following n in tree order, without
// recursion: first child if present, otherwise the next sibling of the
// nearest ancestor that has one.
func (n *Node) NextInPreOrder() *Node {
	if n.firstChild != nil {
		return n.firstChild
	}
	node := n
	for node != nil && node.nextSibling == nil {
		node = node.parent
	}
	if node != nil {
		return node.nextSibling
	}
	return nil
}

// NextInPreOrderWithin behaves like NextInPreOrder but never leaves the
// subtree rooted at stayWithin.
func (n *Node) NextInPreOrderWithin(stayWithin *Node) *Node {
	if n.firstChild != nil {
		return n.firstChild
	}
	node := n
	for node.nextSibling == nil {
		node = node.parent
		if node == nil || node == stayWithin {
			return nil
		}
	}
	return node.nextSibling
}

// PreviousInPreOrder returns the node preceding n in tree order: the deepest
// last descendant of the previous sibling, or the parent.
func (n *Node) PreviousInPreOrder() *Node {
	if node := n.prevSibling; node != nil {
		for node.lastChild != nil {
			node = node.lastChild
		}
		return node
	}
	return n.parent
}

// IsBefore reports whether n precedes other in tree order, by walking
// forward in pre-order from n. This is the canonical tree-order comparator.
func (n *Node) IsBefore(other *Node) bool {
	if n == other {
		return false
	}
	for node := n; node != nil; node = node.NextInPreOrder() {
		if node == other {
			return true
		}
	}
	return false
}

// IsFollowing reports whether n follows other in tree order.
func (n *Node) IsFollowing(other *Node) bool {
	return other != nil && other.IsBefore(n)
}

// --- Subtree traversal -----------------------------------------------------

// ForEachInInclusiveSubtree visits n and every descendant in tree order.
// The callback's decision steers descent and may abort the traversal.
func (n *Node) ForEachInInclusiveSubtree(callback func(*Node) TraversalDecision) TraversalDecision {
	decision := callback(n)
	if decision == TraversalBreak {
		return TraversalBreak
	}
	if decision == TraversalSkipChildren {
		return TraversalContinue
	}
	for child := n.firstChild; child != nil; child = child.nextSibling {
		if child.ForEachInInclusiveSubtree(callback) == TraversalBreak {
			return TraversalBreak
		}
	}
	return TraversalContinue
}

// ForEachInSubtree visits every descendant of n in tree order, excluding n.
func (n *Node) ForEachInSubtree(callback func(*Node) TraversalDecision) TraversalDecision {
	for child := n.firstChild; child != nil; child = child.nextSibling {
		if child.ForEachInInclusiveSubtree(callback) == TraversalBreak {
			return TraversalBreak
		}
	}
	return TraversalContinue
}

// ForEachShadowIncludingInclusiveDescendant visits n and every
// shadow-including descendant: traversal descends from a shadow host into
// its attached shadow root.
func (n *Node) ForEachShadowIncludingInclusiveDescendant(callback func(*Node) TraversalDecision) TraversalDecision {
	decision := callback(n)
	if decision == TraversalBreak {
		return TraversalBreak
	}
	if decision == TraversalSkipChildren {
		return TraversalContinue
	}
	if elem, ok := ElementOf(n); ok && elem.shadowRoot != nil {
		if elem.shadowRoot.ForEachShadowIncludingInclusiveDescendant(callback) == TraversalBreak {
			return TraversalBreak
		}
	}
	for child := n.firstChild; child != nil; child = child.nextSibling {
		if child.ForEachShadowIncludingInclusiveDescendant(callback) == TraversalBreak {
			return TraversalBreak
		}
	}
	return TraversalContinue
}

// ForEachShadowIncludingDescendant is the exclusive variant of
// ForEachShadowIncludingInclusiveDescendant.
func (n *Node) ForEachShadowIncludingDescendant(callback func(*Node) TraversalDecision) TraversalDecision {
	if elem, ok := ElementOf(n); ok && elem.shadowRoot != nil {
		if elem.shadowRoot.ForEachShadowIncludingInclusiveDescendant(callback) == TraversalBreak {
			return TraversalBreak
		}
	}
	for child := n.firstChild; child != nil; child = child.nextSibling {
		if child.ForEachShadowIncludingInclusiveDescendant(callback) == TraversalBreak {
			return TraversalBreak
		}
	}
	return TraversalContinue
}

// --- Single-axis traversal -------------------------------------------------

// ForEachAncestor visits the node's ancestors, nearest first.
func (n *Node) ForEachAncestor(callback func(*Node) IterationDecision) {
	for anc := n.parent; anc != nil; anc = anc.parent {
		if callback(anc) == IterationBreak {
			return
		}
	}
}

// ForEachInclusiveAncestor visits n and then its ancestors, nearest first.
func (n *Node) ForEachInclusiveAncestor(callback func(*Node) IterationDecision) {
	for anc := n; anc != nil; anc = anc.parent {
		if callback(anc) == IterationBreak {
			return
		}
	}
}

// ForEachChild visits the node's direct children in order.
func (n *Node) ForEachChild(callback func(*Node) IterationDecision) {
	for child := n.firstChild; child != nil; child = child.nextSibling {
		if callback(child) == IterationBreak {
			return
		}
	}
}

// --- Typed filters ---------------------------------------------------------

// FirstChildOfType returns the payload and node of the first child whose
// payload is of dynamic kind T, or a zero payload and nil.
func FirstChildOfType[T NodeData](n *Node) (T, *Node) {
	for child := n.firstChild; child != nil; child = child.nextSibling {
		if d, ok := As[T](child); ok {
			return d, child
		}
	}
	var zero T
	return zero, nil
}

// LastChildOfType returns the last child of payload kind T.
func LastChildOfType[T NodeData](n *Node) (T, *Node) {
	for child := n.lastChild; child != nil; child = child.prevSibling {
		if d, ok := As[T](child); ok {
			return d, child
		}
	}
	var zero T
	return zero, nil
}

// NextSiblingOfType returns the nearest following sibling of payload kind T.
func NextSiblingOfType[T NodeData](n *Node) (T, *Node) {
	for sib := n.nextSibling; sib != nil; sib = sib.nextSibling {
		if d, ok := As[T](sib); ok {
			return d, sib
		}
	}
	var zero T
	return zero, nil
}

// PreviousSiblingOfType returns the nearest preceding sibling of payload
// kind T.
func PreviousSiblingOfType[T NodeData](n *Node) (T, *Node) {
	for sib := n.prevSibling; sib != nil; sib = sib.prevSibling {
		if d, ok := As[T](sib); ok {
			return d, sib
		}
	}
	var zero T
	return zero, nil
}

// FirstAncestorOfType returns the nearest ancestor of payload kind T.
func FirstAncestorOfType[T NodeData](n *Node) (T, *Node) {
	for anc := n.parent; anc != nil; anc = anc.parent {
		if d, ok := As[T](anc); ok {
			return d, anc
		}
	}
	var zero T
	return zero, nil
}

// HasChildOfType reports whether n has a direct child of payload kind T.
func HasChildOfType[T NodeData](n *Node) bool {
	_, child := FirstChildOfType[T](n)
	return child != nil
}

// ForEachChildOfType visits the direct children of payload kind T.
func ForEachChildOfType[T NodeData](n *Node, callback func(T, *Node) IterationDecision) {
	for child := n.firstChild; child != nil; child = child.nextSibling {
		if d, ok := As[T](child); ok {
			if callback(d, child) == IterationBreak {
				return
			}
		}
	}
}

// ForEachInInclusiveSubtreeOfType visits n and its descendants whose payload
// is of kind T, in tree order.
func ForEachInInclusiveSubtreeOfType[T NodeData](n *Node, callback func(T, *Node) TraversalDecision) TraversalDecision {
	return n.ForEachInInclusiveSubtree(func(node *Node) TraversalDecision {
		if d, ok := As[T](node); ok {
			return callback(d, node)
		}
		return TraversalContinue
	})
}

// ForEachInSubtreeOfType visits the descendants of n whose payload is of
// kind T, in tree order.
func ForEachInSubtreeOfType[T NodeData](n *Node, callback func(T, *Node) TraversalDecision) TraversalDecision {
	return n.ForEachInSubtree(func(node *Node) TraversalDecision {
		if d, ok := As[T](node); ok {
			return callback(d, node)
		}
		return TraversalContinue
	})
}

// HasPrecedingNodeOfTypeInTreeOrder reports whether a node of payload kind T
// precedes n in tree order.
func HasPrecedingNodeOfTypeInTreeOrder[T NodeData](n *Node) bool {
	for node := n.PreviousInPreOrder(); node != nil; node = node.PreviousInPreOrder() {
		if Is[T](node) {
			return true
		}
	}
	return false
}

// HasFollowingNodeOfTypeInTreeOrder reports whether a node of payload kind T
// follows n in tree order.
func HasFollowingNodeOfTypeInTreeOrder[T NodeData](n *Node) bool {
	for node := n.NextInPreOrder(); node != nil; node = node.NextInPreOrder() {
		if Is[T](node) {
			return true
		}
	}
	return false
}
