package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "strings"

// NodeValue returns the attribute value or character data of the node, and
// false for kinds that have no value.
func (n *Node) NodeValue() (string, bool) {
	if attr, ok := As[*AttributeData](n); ok {
		return attr.Value, true
	}
	if cd, ok := n.data.(CharacterDataLike); ok {
		return cd.Data(), true
	}
	return "", false
}

// SetNodeValue sets the attribute value or character data; a no-op for other
// kinds.
func (n *Node) SetNodeValue(s string) {
	if attr, ok := As[*AttributeData](n); ok {
		attr.Value = s
		return
	}
	if _, ok := n.data.(CharacterDataLike); ok {
		n.ReplaceData(s)
	}
}

// TextContent returns the text content of the node: the descendant text for
// elements and fragments, the data for character data, the value for
// attributes; false for documents and document types.
func (n *Node) TextContent() (string, bool) {
	switch {
	case n.IsElement() || n.IsDocumentFragment():
		return n.DescendantTextContent(), true
	case n.IsCharacterData():
		cd := n.data.(CharacterDataLike)
		return cd.Data(), true
	case n.IsAttribute():
		return n.data.(*AttributeData).Value, true
	}
	return "", false
}

// SetTextContent replaces the node's contents with a single text node (for
// elements and fragments), replaces the data (for character data), or sets
// the value (for attributes). Dirty flags are raised accordingly.
func (n *Node) SetTextContent(s string) {
	switch {
	case n.IsElement() || n.IsDocumentFragment():
		n.StringReplaceAll(s)
		n.InvalidateStyle(StyleInvalidationNodeSetTextContent)
		n.SetNeedsLayoutTreeUpdate(true)
	case n.IsCharacterData():
		n.ReplaceData(s)
	case n.IsAttribute():
		n.data.(*AttributeData).Value = s
	}
}

// DescendantTextContent concatenates the data of every text descendant in
// tree order.
func (n *Node) DescendantTextContent() string {
	var sb strings.Builder
	n.ForEachInSubtree(func(d *Node) TraversalDecision {
		if d.IsText() {
			sb.WriteString(d.data.(CharacterDataLike).Data())
		}
		return TraversalContinue
	})
	return sb.String()
}

// ChildTextContent concatenates the data of the node's exclusive-text
// children.
func (n *Node) ChildTextContent() string {
	var sb strings.Builder
	for child := n.firstChild; child != nil; child = child.nextSibling {
		if child.IsExclusiveText() {
			sb.WriteString(child.data.(CharacterDataLike).Data())
		}
	}
	return sb.String()
}

// ReplaceData replaces the node's character data, queueing a characterData
// record carrying the old value and invalidating style and layout. A record
// is queued even for a same-value write. A no-op for nodes without character
// data.
func (n *Node) ReplaceData(s string) {
	cd, ok := n.data.(CharacterDataLike)
	if !ok {
		return
	}
	old := cd.Data()
	cd.SetData(s)
	n.QueueMutationRecord(MutationCharacterData, "", "", &old, nil, nil, nil, nil)
	n.InvalidateStyle(StyleInvalidationNodeSetTextContent)
	n.SetNeedsLayoutTreeUpdate(true)
}

// --- Element attributes ----------------------------------------------------

// Attribute returns an element attribute value by key.
func (n *Node) Attribute(key string) (string, bool) {
	if elem, ok := ElementOf(n); ok {
		return elem.Attribute(key)
	}
	return "", false
}

// SetAttribute sets or adds an element attribute, queueing an attributes
// record with the previous value and invalidating style. A no-op for
// non-elements.
func (n *Node) SetAttribute(key, value string) {
	elem, ok := ElementOf(n)
	if !ok {
		return
	}
	var oldValue *string
	updated := false
	for i := range elem.Attributes {
		if elem.Attributes[i].Key == key {
			old := elem.Attributes[i].Value
			oldValue = &old
			elem.Attributes[i].Value = value
			updated = true
			break
		}
	}
	if !updated {
		elem.Attributes = append(elem.Attributes, Attr{Key: key, Value: value})
	}
	n.QueueMutationRecord(MutationAttributes, key, "", oldValue, nil, nil, nil, nil)
	n.InvalidateStyle(StyleInvalidationElementAttributeChange)
}

// RemoveAttribute removes an element attribute if present, queueing an
// attributes record with the previous value.
func (n *Node) RemoveAttribute(key string) {
	elem, ok := ElementOf(n)
	if !ok {
		return
	}
	for i := range elem.Attributes {
		if elem.Attributes[i].Key == key {
			old := elem.Attributes[i].Value
			elem.Attributes = append(elem.Attributes[:i], elem.Attributes[i+1:]...)
			n.QueueMutationRecord(MutationAttributes, key, "", &old, nil, nil, nil, nil)
			n.InvalidateStyle(StyleInvalidationElementAttributeChange)
			return
		}
	}
}
