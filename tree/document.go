package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// Document is the mandatory owner context for every node. It is itself a
// node of kind DocumentNode, so the usual tree machinery applies to it, and
// additionally carries the hooks through which external collaborators (the
// event loop's observer delivery, the accessibility tree builder) plug in.
type Document struct {
	Node

	// notify is invoked whenever a mutation observer's record queue goes
	// from empty to non-empty; delivery scheduling is the event loop's
	// responsibility, not ours.
	notify func(*MutationObserver)

	// axBuilder, if set, is invoked for every node newly connected to this
	// document's tree.
	axBuilder func(*Node)
}

// NewDocument creates an empty document. The document is its own owner
// context.
func NewDocument() *Document {
	d := &Document{}
	d.Node.kind = DocumentNode
	d.Node.data = d
	d.Node.doc = d
	registerNode(&d.Node)
	return d
}

// NodeName implements NodeData for the document payload.
func (d *Document) NodeName() string { return "#document" }

// CloneData implements NodeData; cloning a document produces a fresh, empty
// document whose node is returned by CloneNode.
func (d *Document) CloneData() NodeData {
	return NewDocument()
}

// AsNode returns the document's node facet.
func (d *Document) AsNode() *Node { return &d.Node }

// Doctype returns the document's document-type child, or nil.
func (d *Document) Doctype() *Node {
	for child := d.firstChild; child != nil; child = child.nextSibling {
		if child.IsDocumentType() {
			return child
		}
	}
	return nil
}

// DocumentElement returns the document's element child, or nil.
func (d *Document) DocumentElement() *Node {
	for child := d.firstChild; child != nil; child = child.nextSibling {
		if child.IsElement() {
			return child
		}
	}
	return nil
}

// IsChildAllowed implements the document's type-compatibility rule: only
// comments, processing instructions, at most one element and at most one
// document type may become direct children.
func (d *Document) IsChildAllowed(child *Node) bool {
	switch child.kind {
	case CommentNode, ProcessingInstructionNode:
		return true
	case ElementNode:
		return d.DocumentElement() == nil
	case DocumentTypeNode:
		return d.Doctype() == nil
	case DocumentFragmentNode:
		return true // fragment contents are validated piecewise
	}
	return false
}

// SetNotifyObservers installs the event-loop hook invoked when an observer
// acquires its first pending record.
func (d *Document) SetNotifyObservers(fn func(*MutationObserver)) {
	d.notify = fn
}

// SetAccessibilityBuilder installs the accessibility-tree builder callback,
// invoked for every node that becomes connected to this document.
func (d *Document) SetAccessibilityBuilder(fn func(*Node)) {
	d.axBuilder = fn
}

// Adopt reassigns node and its descendants to this document. The node is
// first removed from its current parent, if any. Adopting a document fails
// with ErrHierarchyRequest.
func (d *Document) Adopt(node *Node) error {
	if node.IsDocument() {
		return hierarchyError("adopt", "cannot adopt a document")
	}
	old := node.doc
	if node.parent != nil {
		node.Remove(false)
	}
	if old != d {
		d.adoptSubtree(node, old)
	}
	return nil
}

// adoptSubtree re-documents node and all its shadow-including descendants and
// fires their adoption callbacks.
func (d *Document) adoptSubtree(node *Node, old *Document) {
	node.ForEachShadowIncludingInclusiveDescendant(func(desc *Node) TraversalDecision {
		desc.doc = d
		if cb, ok := desc.data.(AdoptionCallback); ok {
			cb.AdoptedFrom(desc, old)
		}
		return TraversalContinue
	})
	tracer().Debugf("document adopted subtree rooted at %v", node)
}
