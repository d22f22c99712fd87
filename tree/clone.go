package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// CloneNode produces a new node of the same kind and type-specific state,
// owned by document (nil means the original's document). With subtree set,
// children are cloned recursively in original order. The clone is parentless
// unless parent is supplied, in which case it is appended there under full
// validation. Cloning a document yields a fresh document that also becomes
// the owner of the cloned descendants.
func (n *Node) CloneNode(document *Document, subtree bool, parent *Node) (*Node, error) {
	if document == nil {
		document = n.doc
	}
	copied := n.cloneSingleNode(document)
	if cb, ok := copied.data.(CloneCallback); ok {
		if err := cb.Cloned(copied, n, subtree); err != nil {
			return nil, err
		}
	}
	if parent != nil {
		if _, err := parent.AppendChild(copied); err != nil {
			return nil, err
		}
	}
	if subtree {
		childOwner := document
		if copyDoc, ok := copied.data.(*Document); ok {
			childOwner = copyDoc
		}
		for child := n.firstChild; child != nil; child = child.nextSibling {
			if _, err := child.CloneNode(childOwner, true, copied); err != nil {
				return nil, err
			}
		}
	}
	return copied, nil
}

// cloneSingleNode duplicates one node without children, delegating the
// type-specific state to the payload's CloneData.
func (n *Node) cloneSingleNode(document *Document) *Node {
	data := n.data.CloneData()
	if doc, ok := data.(*Document); ok {
		// CloneData for documents builds a complete fresh document node.
		return &doc.Node
	}
	return NewNode(document, n.kind, data)
}
