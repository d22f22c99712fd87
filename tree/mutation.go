package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

/*
The mutation protocol below follows the DOM standard's insertion, removal
and replacement algorithms. Every public operation validates completely
before the first link is touched; a validation failure leaves the tree and
all dirty flags unchanged. Lifecycle callbacks and observer records are
issued only after the structural change is committed, so reentrant mutation
from a callback never observes a half-linked chain.
*/

// isInsertable reports whether a node kind may be given a parent at all.
func (n *Node) isInsertable() bool {
	switch n.kind {
	case DocumentFragmentNode, DocumentTypeNode, ElementNode,
		TextNode, CDATASectionNode, ProcessingInstructionNode, CommentNode:
		return true
	}
	return false
}

// EnsurePreInsertionValidity is the shared validator used by InsertBefore and
// AppendChild. It checks, in order: the cycle rule, the reference child's
// parentage, the parent's child-veto capability, node insertability, and the
// document cardinality constraints. The order matters for the error kind: a
// bad reference child reports NotFound even when the node would also be
// vetoed. On failure it returns a *DOMError and guarantees that no structural
// change has occurred.
func (parent *Node) EnsurePreInsertionValidity(node, child *Node) error {
	const op = "ensure-pre-insertion-validity"
	if !parent.IsParentNode() {
		return hierarchyError(op, "%s cannot have children", parent.kind)
	}
	if node.IsHostIncludingInclusiveAncestorOf(parent) {
		return hierarchyError(op, "insertion would create a cycle")
	}
	if child != nil && child.parent != parent {
		return notFoundError(op, "reference child %v is not a child of %v", child, parent)
	}
	if veto, ok := parent.data.(ChildVeto); ok && !veto.IsChildAllowed(node) {
		return hierarchyError(op, "%s is not an allowed child of %s", node.kind, parent.kind)
	}
	if !node.isInsertable() {
		return hierarchyError(op, "%s nodes cannot be inserted", node.kind)
	}
	if node.IsText() && parent.IsDocument() {
		return hierarchyError(op, "text nodes cannot be children of a document")
	}
	if node.IsDocumentType() && !parent.IsDocument() {
		return hierarchyError(op, "document types can only be children of a document")
	}
	if parent.IsDocument() {
		return parent.checkDocumentInsertion(node, child)
	}
	return nil
}

// checkDocumentInsertion enforces the element/doctype cardinality and order
// rules when inserting into a document.
func (parent *Node) checkDocumentInsertion(node, child *Node) error {
	const op = "ensure-pre-insertion-validity"
	doc := parent.data.(*Document)
	switch node.kind {
	case DocumentFragmentNode:
		elements := 0
		for ch := node.firstChild; ch != nil; ch = ch.nextSibling {
			if ch.IsElement() {
				elements++
			}
			if ch.IsText() {
				return hierarchyError(op, "fragment with text child cannot be inserted into a document")
			}
		}
		if elements > 1 {
			return hierarchyError(op, "fragment with %d element children cannot be inserted into a document", elements)
		}
		if elements == 1 {
			return parent.checkDocumentElementInsertion(child)
		}
	case ElementNode:
		return parent.checkDocumentElementInsertion(child)
	case DocumentTypeNode:
		if doc.Doctype() != nil {
			return hierarchyError(op, "document already has a document type")
		}
		if child != nil {
			for prev := child.prevSibling; prev != nil; prev = prev.prevSibling {
				if prev.IsElement() {
					return hierarchyError(op, "document type cannot follow the document element")
				}
			}
		} else if doc.DocumentElement() != nil {
			return hierarchyError(op, "document type cannot follow the document element")
		}
	}
	return nil
}

func (parent *Node) checkDocumentElementInsertion(child *Node) error {
	const op = "ensure-pre-insertion-validity"
	doc := parent.data.(*Document)
	if doc.DocumentElement() != nil {
		return hierarchyError(op, "document already has a document element")
	}
	if child != nil {
		if child.IsDocumentType() {
			return hierarchyError(op, "element cannot precede the document type")
		}
		for next := child.nextSibling; next != nil; next = next.nextSibling {
			if next.IsDocumentType() {
				return hierarchyError(op, "element cannot precede the document type")
			}
		}
	}
	return nil
}

// --- Validated operations --------------------------------------------------

// InsertBefore validates and then inserts node into parent's child list
// immediately before child; a nil child appends. It implements the standard
// pre-insert operation and returns the inserted node.
func (parent *Node) InsertBefore(node, child *Node) (*Node, error) {
	if err := parent.EnsurePreInsertionValidity(node, child); err != nil {
		tracer().Errorf(err.Error())
		return nil, err
	}
	reference := child
	if reference == node {
		// Inserting before itself is a same-position move; the reference
		// shifts to the next sibling, per the platform quirk.
		reference = node.nextSibling
	}
	parent.Insert(node, reference, false)
	return node, nil
}

// AppendChild validates and appends node as parent's last child.
func (parent *Node) AppendChild(node *Node) (*Node, error) {
	return parent.InsertBefore(node, nil)
}

// PreRemove validates that child is currently a child of parent.
func (parent *Node) PreRemove(child *Node) error {
	if child.parent != parent {
		return notFoundError("pre-remove", "%v is not a child of %v", child, parent)
	}
	return nil
}

// RemoveChild validates and removes child from parent, returning it.
func (parent *Node) RemoveChild(child *Node) (*Node, error) {
	if err := parent.PreRemove(child); err != nil {
		tracer().Errorf(err.Error())
		return nil, err
	}
	child.Remove(false)
	return child, nil
}

// ReplaceChild validates and replaces child with node inside parent, as one
// externally atomic step: the validity rules are applied against the state
// after the hypothetical removal of child, a single childList record carries
// both the addition and the removal. The replaced child is returned.
func (parent *Node) ReplaceChild(node, child *Node) (*Node, error) {
	const op = "replace-child"
	if !parent.IsParentNode() {
		return nil, hierarchyError(op, "%s cannot have children", parent.kind)
	}
	if node.IsHostIncludingInclusiveAncestorOf(parent) {
		return nil, hierarchyError(op, "replacement would create a cycle")
	}
	if child.parent != parent {
		return nil, notFoundError(op, "%v is not a child of %v", child, parent)
	}
	if !node.isInsertable() {
		return nil, hierarchyError(op, "%s nodes cannot be inserted", node.kind)
	}
	if node.IsText() && parent.IsDocument() {
		return nil, hierarchyError(op, "text nodes cannot be children of a document")
	}
	if node.IsDocumentType() && !parent.IsDocument() {
		return nil, hierarchyError(op, "document types can only be children of a document")
	}
	if parent.IsDocument() {
		if err := parent.checkDocumentReplacement(node, child); err != nil {
			return nil, err
		}
	}
	reference := child.nextSibling
	if reference == node {
		reference = node.nextSibling
	}
	previousSibling := child.prevSibling
	var removedNodes []*Node
	if child.parent != nil {
		removedNodes = []*Node{child}
		child.Remove(true)
	}
	var addedNodes []*Node
	if node.IsDocumentFragment() {
		addedNodes = node.Children()
	} else {
		addedNodes = []*Node{node}
	}
	parent.Insert(node, reference, true)
	queueTreeMutationRecord(parent, addedNodes, removedNodes, previousSibling, reference)
	return child, nil
}

// checkDocumentReplacement mirrors checkDocumentInsertion but discounts the
// child being replaced.
func (parent *Node) checkDocumentReplacement(node, child *Node) error {
	const op = "replace-child"
	doc := parent.data.(*Document)
	switch node.kind {
	case DocumentFragmentNode:
		elements := 0
		for ch := node.firstChild; ch != nil; ch = ch.nextSibling {
			if ch.IsElement() {
				elements++
			}
			if ch.IsText() {
				return hierarchyError(op, "fragment with text child cannot be inserted into a document")
			}
		}
		if elements > 1 {
			return hierarchyError(op, "fragment with %d element children cannot be inserted into a document", elements)
		}
		if elements == 1 {
			if de := doc.DocumentElement(); de != nil && de != child {
				return hierarchyError(op, "document already has a document element")
			}
			if doctypeFollows(child) {
				return hierarchyError(op, "element cannot precede the document type")
			}
		}
	case ElementNode:
		if de := doc.DocumentElement(); de != nil && de != child {
			return hierarchyError(op, "document already has a document element")
		}
		if doctypeFollows(child) {
			return hierarchyError(op, "element cannot precede the document type")
		}
	case DocumentTypeNode:
		if dt := doc.Doctype(); dt != nil && dt != child {
			return hierarchyError(op, "document already has a document type")
		}
		for prev := child.prevSibling; prev != nil; prev = prev.prevSibling {
			if prev.IsElement() {
				return hierarchyError(op, "document type cannot follow the document element")
			}
		}
	}
	return nil
}

func doctypeFollows(child *Node) bool {
	for next := child.nextSibling; next != nil; next = next.nextSibling {
		if next.IsDocumentType() {
			return true
		}
	}
	return false
}

// --- Unvalidated insert/remove ---------------------------------------------

// Insert splices node into parent's sibling chain immediately before child
// (or at the end if child is nil) without validation. A node that still has
// a parent is implicitly removed first; a document fragment contributes its
// children instead of itself. Adoption runs if node belongs to a different
// document. Unless suppressObservers is set, a childList record is queued
// for the parent. Callers wanting validation use InsertBefore or
// AppendChild.
func (parent *Node) Insert(node, child *Node, suppressObservers bool) {
	var nodes []*Node
	if node.IsDocumentFragment() {
		nodes = node.Children()
	} else {
		nodes = []*Node{node}
	}
	if len(nodes) == 0 {
		return
	}
	if node.IsDocumentFragment() {
		for _, ch := range nodes {
			ch.Remove(true)
		}
		// The fragment's loss of children is reported as one coalesced
		// record on the fragment itself.
		queueTreeMutationRecord(node, nil, nodes, nil, nil)
	}
	// The sibling context for the record is captured before the per-node
	// adopt/remove step below, so a same-parent move reports the node's old
	// neighborhood.
	var previousSibling *Node
	if child != nil {
		previousSibling = child.prevSibling
	} else {
		previousSibling = parent.lastChild
	}
	for _, ch := range nodes {
		if ch.parent != nil {
			ch.Remove(suppressObservers)
		}
		if ch.doc != parent.doc {
			parent.doc.adoptSubtree(ch, ch.doc)
		}
		if child == nil {
			parent.appendChildImpl(ch)
		} else {
			parent.insertBeforeImpl(ch, child)
		}
		ch.ForEachShadowIncludingInclusiveDescendant(func(d *Node) TraversalDecision {
			if cb, ok := d.data.(InsertionCallbacks); ok {
				cb.Inserted(d)
			}
			return TraversalContinue
		})
	}
	if !suppressObservers {
		queueTreeMutationRecord(parent, nodes, nil, previousSibling, child)
	}
	if cb, ok := parent.data.(ChildrenChangedCallback); ok {
		cb.ChildrenChanged(parent)
	}
	for _, ch := range nodes {
		if !ch.IsConnected() {
			continue
		}
		ch.ForEachShadowIncludingInclusiveDescendant(func(d *Node) TraversalDecision {
			if cb, ok := d.data.(InsertionCallbacks); ok {
				cb.PostConnection(d)
			}
			if d.doc != nil && d.doc.axBuilder != nil {
				d.doc.axBuilder(d)
			}
			return TraversalContinue
		})
	}
	for _, ch := range nodes {
		ch.SetNeedsLayoutTreeUpdate(true)
		ch.InvalidateStyle(StyleInvalidationNodeInsertBefore)
	}
	parent.InvalidateStyle(StyleInvalidationParentOfInsertedNode)
	tracer().Debugf("inserted %d node(s) into %v", len(nodes), parent)
}

// Remove unlinks n from its parent's sibling chain. The former parent,
// previous and next sibling are captured first so that removal callbacks and
// the queued record can still see the prior context. Unless
// suppressObservers is set, a childList record is queued and transient
// observers are installed for subtree subscriptions on former ancestors.
func (n *Node) Remove(suppressObservers bool) {
	parent := n.parent
	if parent == nil {
		return
	}
	oldRoot := n.Root()
	oldPrevious := n.prevSibling
	oldNext := n.nextSibling
	// Subtree subscriptions on former ancestors keep observing the removed
	// node through transient registered observers.
	for anc := parent; anc != nil; anc = anc.parent {
		for _, reg := range anc.observers {
			if reg.Options.Subtree {
				n.addTransientObserver(reg)
			}
		}
	}
	parent.removeChildImpl(n)
	if cb, ok := n.data.(RemovalCallbacks); ok {
		cb.RemovedFrom(n, parent, oldRoot)
	}
	n.ForEachShadowIncludingDescendant(func(d *Node) TraversalDecision {
		if cb, ok := d.data.(RemovalCallbacks); ok {
			cb.RemovedFrom(d, nil, oldRoot)
		}
		return TraversalContinue
	})
	if cb, ok := parent.data.(ChildrenChangedCallback); ok {
		cb.ChildrenChanged(parent)
	}
	parent.SetNeedsLayoutTreeUpdate(true)
	parent.InvalidateStyle(StyleInvalidationNodeRemove)
	// The record is queued last, so a reentrant removal callback still sees
	// the queue as it was before this removal.
	if !suppressObservers {
		queueTreeMutationRecord(parent, nil, []*Node{n}, oldPrevious, oldNext)
	}
	tracer().Debugf("removed %v from %v", n, parent)
}

// RemoveAllChildren removes every child of n in order.
func (n *Node) RemoveAllChildren(suppressObservers bool) {
	for n.firstChild != nil {
		n.firstChild.Remove(suppressObservers)
	}
}

// ReplaceAll replaces all of parent's children with node (or with node's
// children, for a fragment; or with nothing, for nil). A single childList
// record carries the entire exchange.
func (parent *Node) ReplaceAll(node *Node) {
	removedNodes := parent.Children()
	var addedNodes []*Node
	if node != nil {
		if node.IsDocumentFragment() {
			addedNodes = node.Children()
		} else {
			addedNodes = []*Node{node}
		}
	}
	parent.RemoveAllChildren(true)
	if node != nil {
		parent.Insert(node, nil, true)
	}
	if len(addedNodes) > 0 || len(removedNodes) > 0 {
		queueTreeMutationRecord(parent, addedNodes, removedNodes, nil, nil)
	}
}

// StringReplaceAll replaces all of parent's children with a single text node
// carrying s, or with nothing if s is empty.
func (parent *Node) StringReplaceAll(s string) {
	var node *Node
	if s != "" {
		node = NewText(parent.doc, s)
	}
	parent.ReplaceAll(node)
}

// --- Link surgery ----------------------------------------------------------

// appendChildImpl links a parentless node at the end of the child list.
func (parent *Node) appendChildImpl(node *Node) {
	if parent.lastChild != nil {
		parent.lastChild.nextSibling = node
		node.prevSibling = parent.lastChild
	} else {
		parent.firstChild = node
	}
	parent.lastChild = node
	node.parent = parent
}

// insertBeforeImpl links a parentless node immediately before child.
func (parent *Node) insertBeforeImpl(node, child *Node) {
	prev := child.prevSibling
	node.prevSibling = prev
	node.nextSibling = child
	child.prevSibling = node
	if prev != nil {
		prev.nextSibling = node
	} else {
		parent.firstChild = node
	}
	node.parent = parent
}

// removeChildImpl unlinks node from parent's chain and clears the node's
// back-references to a detached state.
func (parent *Node) removeChildImpl(node *Node) {
	prev, next := node.prevSibling, node.nextSibling
	if prev != nil {
		prev.nextSibling = next
	} else {
		parent.firstChild = next
	}
	if next != nil {
		next.prevSibling = prev
	} else {
		parent.lastChild = prev
	}
	node.parent = nil
	node.prevSibling = nil
	node.nextSibling = nil
}
