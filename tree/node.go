package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"weak"
)

/*
We manage a tree of mutable nodes. A node owns its children through the
sibling chain hung off firstChild/lastChild; parent and sibling links are
non-owning back-references, cleared to nil on removal. Node lifetime is
governed by the Go garbage collector: a removed node survives as long as
script references or pending mutation records reach it, which is why the
unique-id registry stores weak pointers only.
*/

// NodeID is a process-wide unique, stable identifier for a node, usable for
// reverse lookup via FromUniqueID.
type NodeID int64

// Node is the fundamental tree participant. It carries a fixed kind tag, the
// five navigation links, the owning-document back-reference, the dirty flags
// consumed by the style/layout subsystems, and a lazily allocated list of
// registered mutation observers.
type Node struct {
	kind NodeType
	id   NodeID
	doc  *Document
	data NodeData

	parent      *Node
	firstChild  *Node
	lastChild   *Node
	prevSibling *Node
	nextSibling *Node

	// Back-references owned by external subsystems, opaque to this core.
	layoutNode any
	paintable  any

	needsLayoutTreeUpdate         bool
	childNeedsLayoutTreeUpdate    bool
	needsStyleUpdate              bool
	needsInheritedStyleUpdate     bool
	childNeedsStyleUpdate         bool
	entireSubtreeNeedsStyleUpdate bool

	observers []*RegisteredObserver // lazily allocated
}

// --- Unique-id registry ----------------------------------------------------

var (
	lastNodeID   atomic.Int64
	registryLock sync.Mutex
	nodeRegistry = make(map[NodeID]weak.Pointer[Node])
)

func registerNode(n *Node) {
	n.id = NodeID(lastNodeID.Add(1))
	registryLock.Lock()
	nodeRegistry[n.id] = weak.Make(n)
	registryLock.Unlock()
	// The registry must not extend the node's lifetime, so the entry is
	// dropped from a GC cleanup hook keyed by id only.
	runtime.AddCleanup(n, func(id NodeID) {
		registryLock.Lock()
		delete(nodeRegistry, id)
		registryLock.Unlock()
	}, n.id)
}

// FromUniqueID performs reverse lookup of a node by its unique id. It returns
// nil for unknown ids and for nodes that have been collected.
func FromUniqueID(id NodeID) *Node {
	registryLock.Lock()
	wp, ok := nodeRegistry[id]
	registryLock.Unlock()
	if !ok {
		return nil
	}
	return wp.Value()
}

// --- Construction ----------------------------------------------------------

// NewNode creates a node of the given kind bound to a document and a payload.
// Nodes are always created parentless. Most callers will prefer the
// type-specific constructors below.
func NewNode(d *Document, kind NodeType, data NodeData) *Node {
	if data == nil {
		panic("tree: node payload must not be nil")
	}
	n := &Node{kind: kind, doc: d, data: data}
	registerNode(n)
	return n
}

// NewElement creates an element node.
func NewElement(d *Document, tag string) *Node {
	return NewNode(d, ElementNode, &ElementData{TagName: tag})
}

// NewText creates an exclusive text node.
func NewText(d *Document, data string) *Node {
	return NewNode(d, TextNode, &CharData{name: "#text", data: data})
}

// NewCDATASection creates a CDATA-section node.
func NewCDATASection(d *Document, data string) *Node {
	return NewNode(d, CDATASectionNode, &CharData{name: "#cdata-section", data: data})
}

// NewComment creates a comment node.
func NewComment(d *Document, data string) *Node {
	return NewNode(d, CommentNode, &CharData{name: "#comment", data: data})
}

// NewProcessingInstruction creates a processing-instruction node.
func NewProcessingInstruction(d *Document, target, data string) *Node {
	return NewNode(d, ProcessingInstructionNode, &ProcessingInstructionData{
		CharData: CharData{name: target, data: data},
		Target:   target,
	})
}

// NewDocumentType creates a document-type node.
func NewDocumentType(d *Document, name, publicID, systemID string) *Node {
	return NewNode(d, DocumentTypeNode, &DocumentTypeData{Name: name, PublicID: publicID, SystemID: systemID})
}

// NewDocumentFragment creates a plain document-fragment node.
func NewDocumentFragment(d *Document) *Node {
	return NewNode(d, DocumentFragmentNode, &DocumentFragmentData{})
}

// NewAttribute creates a standalone attribute node.
func NewAttribute(d *Document, key, value string) *Node {
	return NewNode(d, AttributeNode, &AttributeData{Attr: Attr{Key: key, Value: value}})
}

// AttachShadowRoot creates a shadow root and attaches it to a host element.
// It fails with ErrHierarchyRequest if host is not an element or already has
// a shadow root attached.
func AttachShadowRoot(host *Node) (*Node, error) {
	elem, ok := ElementOf(host)
	if !ok {
		return nil, hierarchyError("attach-shadow", "shadow host must be an element, have %s", host.kind)
	}
	if elem.shadowRoot != nil {
		return nil, hierarchyError("attach-shadow", "element already hosts a shadow root")
	}
	sr := NewNode(host.doc, DocumentFragmentNode, &ShadowRootData{host: host})
	elem.shadowRoot = sr
	return sr, nil
}

// --- Navigation ------------------------------------------------------------

// Type returns the node's kind tag.
func (n *Node) Type() NodeType { return n.kind }

// UniqueID returns the node's process-wide unique identifier.
func (n *Node) UniqueID() NodeID { return n.id }

// Data returns the node's type-specific payload.
func (n *Node) Data() NodeData { return n.data }

// Document returns the node's owning document. It is non-nil for every node
// after construction and changes only through adoption.
func (n *Node) Document() *Document { return n.doc }

// Parent returns the parent node or nil for the root of a tree.
func (n *Node) Parent() *Node { return n.parent }

// FirstChild returns the node's first child or nil.
func (n *Node) FirstChild() *Node { return n.firstChild }

// LastChild returns the node's last child or nil.
func (n *Node) LastChild() *Node { return n.lastChild }

// NextSibling returns the node's next sibling or nil if it is the last child.
func (n *Node) NextSibling() *Node { return n.nextSibling }

// PreviousSibling returns the node's previous sibling or nil.
func (n *Node) PreviousSibling() *Node { return n.prevSibling }

// HasChildren reports whether the node has any children.
func (n *Node) HasChildren() bool { return n.firstChild != nil }

// ChildCount returns the number of children by walking the sibling chain.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.firstChild; child != nil; child = child.nextSibling {
		count++
	}
	return count
}

// ChildAtIndex returns the index-th child, or nil if out of range.
func (n *Node) ChildAtIndex(index int) *Node {
	count := 0
	for child := n.firstChild; child != nil; child = child.nextSibling {
		if count == index {
			return child
		}
		count++
	}
	return nil
}

// Index returns the node's number of preceding siblings, or 0 if it has none.
func (n *Node) Index() int {
	index := 0
	for node := n.prevSibling; node != nil; node = node.prevSibling {
		index++
	}
	return index
}

// Children returns a slice with all children of a node.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.firstChild; child != nil; child = child.nextSibling {
		children = append(children, child)
	}
	return children
}

// IndexOfChild returns the index of ch within n's children, or -1 if ch is
// not a child of n.
func (n *Node) IndexOfChild(ch *Node) int {
	index := 0
	for child := n.firstChild; child != nil; child = child.nextSibling {
		if child == ch {
			return index
		}
		index++
	}
	return -1
}

// Root walks the parent links to their fixed point.
func (n *Node) Root() *Node {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// ShadowIncludingRoot returns the node's root, additionally crossing from a
// shadow root to its host's own shadow-including root.
func (n *Node) ShadowIncludingRoot() *Node {
	root := n.Root()
	if sr, ok := As[*ShadowRootData](root); ok && sr.host != nil {
		return sr.host.ShadowIncludingRoot()
	}
	return root
}

// GetRootNode returns the node's root; with composed set it crosses shadow
// boundaries like ShadowIncludingRoot.
func (n *Node) GetRootNode(composed bool) *Node {
	if composed {
		return n.ShadowIncludingRoot()
	}
	return n.Root()
}

// InDocumentTree reports whether the node's root is a document.
func (n *Node) InDocumentTree() bool {
	return n.Root().IsDocument()
}

// IsConnected reports whether the node's shadow-including root is a document.
func (n *Node) IsConnected() bool {
	return n.ShadowIncludingRoot().IsDocument()
}

// --- Containment predicates ------------------------------------------------

// IsParentOf reports whether other is a direct child of n.
func (n *Node) IsParentOf(other *Node) bool {
	return other != nil && other.parent == n
}

// IsAncestorOf reports whether n is a proper ancestor of other.
func (n *Node) IsAncestorOf(other *Node) bool {
	if other == nil {
		return false
	}
	for anc := other.parent; anc != nil; anc = anc.parent {
		if anc == n {
			return true
		}
	}
	return false
}

// IsInclusiveAncestorOf reports whether n is other or an ancestor of other.
func (n *Node) IsInclusiveAncestorOf(other *Node) bool {
	return n == other || n.IsAncestorOf(other)
}

// IsDescendantOf reports whether n is a proper descendant of other.
func (n *Node) IsDescendantOf(other *Node) bool {
	return other != nil && other.IsAncestorOf(n)
}

// IsInclusiveDescendantOf reports whether n is other or a descendant of other.
func (n *Node) IsInclusiveDescendantOf(other *Node) bool {
	return n == other || n.IsDescendantOf(other)
}

// Contains reports whether other is an inclusive descendant of n, via an
// ancestor walk from other.
func (n *Node) Contains(other *Node) bool {
	return other != nil && other.IsInclusiveDescendantOf(n)
}

// IsHostIncludingInclusiveAncestorOf implements the cycle check used by
// insertion validation: it additionally follows the host link of document
// fragments, so a fragment's host chain cannot be inserted into the fragment.
func (n *Node) IsHostIncludingInclusiveAncestorOf(other *Node) bool {
	if n.IsInclusiveAncestorOf(other) {
		return true
	}
	root := other.Root()
	if sr, ok := As[*ShadowRootData](root); ok && sr.host != nil {
		return n.IsHostIncludingInclusiveAncestorOf(sr.host)
	}
	return false
}

// IsShadowIncludingDescendantOf reports whether n is a descendant of other
// when shadow-root/host boundaries are crossed.
func (n *Node) IsShadowIncludingDescendantOf(other *Node) bool {
	if n.IsDescendantOf(other) {
		return true
	}
	root := n.Root()
	if sr, ok := As[*ShadowRootData](root); ok && sr.host != nil {
		return sr.host.IsShadowIncludingInclusiveDescendantOf(other)
	}
	return false
}

// IsShadowIncludingInclusiveDescendantOf reports whether n is other or a
// shadow-including descendant of other.
func (n *Node) IsShadowIncludingInclusiveDescendantOf(other *Node) bool {
	return n == other || n.IsShadowIncludingDescendantOf(other)
}

// IsShadowIncludingAncestorOf is the inverse of IsShadowIncludingDescendantOf.
func (n *Node) IsShadowIncludingAncestorOf(other *Node) bool {
	return other != nil && other.IsShadowIncludingDescendantOf(n)
}

// IsShadowIncludingInclusiveAncestorOf reports whether n is other or a
// shadow-including ancestor of other.
func (n *Node) IsShadowIncludingInclusiveAncestorOf(other *Node) bool {
	return n == other || n.IsShadowIncludingAncestorOf(other)
}

// --- Identity and length ---------------------------------------------------

// IsSameNode reports reference identity.
func (n *Node) IsSameNode(other *Node) bool { return n == other }

// IsEqualNode reports deep structural equality: same kind, equal payload
// state, and pairwise equal children.
func (n *Node) IsEqualNode(other *Node) bool {
	if other == nil || n.kind != other.kind {
		return false
	}
	if eq, ok := n.data.(EqualData); ok {
		if !eq.EqualData(other.data) {
			return false
		}
	}
	a, b := n.firstChild, other.firstChild
	for a != nil && b != nil {
		if !a.IsEqualNode(b) {
			return false
		}
		a, b = a.nextSibling, b.nextSibling
	}
	return a == nil && b == nil
}

// Length returns the node length: 0 for document types and attributes, the
// character-data length for character data, the child count otherwise.
func (n *Node) Length() int {
	switch {
	case n.kind == DocumentTypeNode || n.kind == AttributeNode:
		return 0
	case n.IsCharacterData():
		if cd, ok := n.data.(CharacterDataLike); ok {
			return len(cd.Data())
		}
		return 0
	}
	return n.ChildCount()
}

// NodeName returns the payload-defined name, e.g. the tag name for elements
// or "#text" for text nodes.
func (n *Node) NodeName() string { return n.data.NodeName() }

// --- Layout/paint back-references ------------------------------------------

// LayoutNode returns the opaque layout back-reference.
func (n *Node) LayoutNode() any { return n.layoutNode }

// SetLayoutNode installs the layout back-reference; owned by the layout
// subsystem.
func (n *Node) SetLayoutNode(ln any) { n.layoutNode = ln }

// DetachLayoutNode clears the layout back-reference.
func (n *Node) DetachLayoutNode() { n.layoutNode = nil }

// Paintable returns the opaque paint back-reference.
func (n *Node) Paintable() any { return n.paintable }

// SetPaintable installs the paint back-reference.
func (n *Node) SetPaintable(p any) { n.paintable = p }

// ClearPaintable clears the paint back-reference.
func (n *Node) ClearPaintable() { n.paintable = nil }

// --- Debugging -------------------------------------------------------------

// DebugDescription renders a short description of the node for diagnostics.
func (n *Node) DebugDescription() string {
	return fmt.Sprintf("%s#%d(%s)", n.kind, n.id, n.data.NodeName())
}

func (n *Node) String() string {
	return fmt.Sprintf("(Node #ch=%d %s)", n.ChildCount(), n.DebugDescription())
}
