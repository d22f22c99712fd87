package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// NodeType is the closed enumeration of node kinds. The numeric values are
// the ones mandated for the DOM nodeType attribute and are immutable after
// construction.
type NodeType uint16

const (
	InvalidNode               NodeType = 0
	ElementNode               NodeType = 1
	AttributeNode             NodeType = 2
	TextNode                  NodeType = 3
	CDATASectionNode          NodeType = 4
	EntityReferenceNode       NodeType = 5
	EntityNode                NodeType = 6
	ProcessingInstructionNode NodeType = 7
	CommentNode               NodeType = 8
	DocumentNode              NodeType = 9
	DocumentTypeNode          NodeType = 10
	DocumentFragmentNode      NodeType = 11
	NotationNode              NodeType = 12
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case AttributeNode:
		return "attribute"
	case TextNode:
		return "text"
	case CDATASectionNode:
		return "cdata-section"
	case EntityReferenceNode:
		return "entity-reference"
	case EntityNode:
		return "entity"
	case ProcessingInstructionNode:
		return "processing-instruction"
	case CommentNode:
		return "comment"
	case DocumentNode:
		return "document"
	case DocumentTypeNode:
		return "document-type"
	case DocumentFragmentNode:
		return "document-fragment"
	case NotationNode:
		return "notation"
	}
	return "invalid"
}

// --- Kind predicates -------------------------------------------------------

// IsElement returns true for element nodes.
func (n *Node) IsElement() bool { return n.kind == ElementNode }

// IsText returns true for text and CDATA-section nodes.
func (n *Node) IsText() bool { return n.kind == TextNode || n.kind == CDATASectionNode }

// IsExclusiveText returns true for text nodes, excluding CDATA sections.
func (n *Node) IsExclusiveText() bool { return n.kind == TextNode }

// IsDocument returns true for document nodes.
func (n *Node) IsDocument() bool { return n.kind == DocumentNode }

// IsDocumentType returns true for document-type nodes.
func (n *Node) IsDocumentType() bool { return n.kind == DocumentTypeNode }

// IsComment returns true for comment nodes.
func (n *Node) IsComment() bool { return n.kind == CommentNode }

// IsCDATASection returns true for CDATA-section nodes.
func (n *Node) IsCDATASection() bool { return n.kind == CDATASectionNode }

// IsAttribute returns true for attribute nodes.
func (n *Node) IsAttribute() bool { return n.kind == AttributeNode }

// IsDocumentFragment returns true for document-fragment nodes, including
// shadow roots.
func (n *Node) IsDocumentFragment() bool { return n.kind == DocumentFragmentNode }

// IsCharacterData returns true for nodes carrying character data: text,
// CDATA-section, comment and processing-instruction nodes.
func (n *Node) IsCharacterData() bool {
	switch n.kind {
	case TextNode, CDATASectionNode, CommentNode, ProcessingInstructionNode:
		return true
	}
	return false
}

// IsParentNode returns true for the kinds that may have children: elements,
// documents and document fragments.
func (n *Node) IsParentNode() bool {
	return n.kind == ElementNode || n.kind == DocumentNode || n.kind == DocumentFragmentNode
}

// IsShadowRoot returns true for document fragments attached to a shadow host.
func (n *Node) IsShadowRoot() bool {
	_, ok := n.data.(*ShadowRootData)
	return ok
}
