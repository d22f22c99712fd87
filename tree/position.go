package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// DocumentPosition is the bitmask returned by CompareDocumentPosition.
type DocumentPosition uint16

const (
	PositionEqual                  DocumentPosition = 0
	PositionDisconnected           DocumentPosition = 0x01
	PositionPreceding              DocumentPosition = 0x02
	PositionFollowing              DocumentPosition = 0x04
	PositionContains               DocumentPosition = 0x08
	PositionContainedBy            DocumentPosition = 0x10
	PositionImplementationSpecific DocumentPosition = 0x20
)

// CompareDocumentPosition compares other against n in tree order and returns
// the position bitmask describing where other stands relative to n.
// Attribute nodes compare through their owner elements; two attributes of
// the same element compare as implementation-specific. Disconnected nodes
// (different roots) get a consistent, implementation-specific ordering based
// on unique ids; only the two root walks are needed, never a whole-document
// traversal.
func (n *Node) CompareDocumentPosition(other *Node) DocumentPosition {
	if n == other {
		return PositionEqual
	}
	node1, node2 := other, n
	var attr1, attr2 *AttributeData
	if a, ok := As[*AttributeData](node1); ok {
		attr1 = a
		node1 = a.ownerElement
	}
	if a, ok := As[*AttributeData](node2); ok {
		attr2 = a
		node2 = a.ownerElement
		if attr1 != nil && node1 != nil && node1 == node2 {
			// Two attributes of the same element: order by slot.
			if elem, ok := ElementOf(node2); ok {
				for _, a := range elem.Attributes {
					if a == attr1.Attr {
						return PositionImplementationSpecific | PositionPreceding
					}
					if a == attr2.Attr {
						return PositionImplementationSpecific | PositionFollowing
					}
				}
			}
		}
	}
	if node1 == nil || node2 == nil || node1.Root() != node2.Root() {
		pos := PositionDisconnected | PositionImplementationSpecific
		// Arbitrary but consistent: the node with the smaller unique id is
		// treated as preceding.
		if other.id < n.id {
			pos |= PositionPreceding
		} else {
			pos |= PositionFollowing
		}
		return pos
	}
	if (node1.IsAncestorOf(node2) && attr1 == nil) || (node1 == node2 && attr2 != nil) {
		return PositionContains | PositionPreceding
	}
	if (node2.IsAncestorOf(node1) && attr2 == nil) || (node1 == node2 && attr1 != nil) {
		return PositionContainedBy | PositionFollowing
	}
	if node1.IsBefore(node2) {
		return PositionPreceding
	}
	return PositionFollowing
}
