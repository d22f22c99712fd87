package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// NodeData is the type-specific payload of a Node. Every node carries exactly
// one payload, created together with the node; the payload determines the
// node's name and knows how to duplicate its own state for cloning.
//
// Payloads opt into mutation-lifecycle callbacks by additionally implementing
// one or more of the capability interfaces below. The callbacks fire only
// after the structural change they describe has been fully committed, and may
// themselves trigger further mutations.
type NodeData interface {
	NodeName() string
	CloneData() NodeData
}

// ChildVeto lets a payload reject children beyond the standard validity
// rules. Consulted by EnsurePreInsertionValidity after the cycle and
// reference-child checks.
type ChildVeto interface {
	IsChildAllowed(child *Node) bool
}

// InsertionCallbacks is implemented by payloads that want to know when their
// node has been inserted into a parent. PostConnection additionally fires
// when the insertion made the node connected to a document tree.
type InsertionCallbacks interface {
	Inserted(n *Node)
	PostConnection(n *Node)
}

// RemovalCallbacks is implemented by payloads that want to know when their
// node has been removed. oldParent is nil when the callback fires for a
// descendant of the removed node; oldRoot is the root the node belonged to
// before removal.
type RemovalCallbacks interface {
	RemovedFrom(n *Node, oldParent *Node, oldRoot *Node)
}

// ChildrenChangedCallback fires on a parent after any change to its child
// list (insertion, removal, replacement).
type ChildrenChangedCallback interface {
	ChildrenChanged(n *Node)
}

// AdoptionCallback fires after a node's owning document has been reassigned.
type AdoptionCallback interface {
	AdoptedFrom(n *Node, old *Document)
}

// CloneCallback fires on the payload of a freshly cloned node for
// type-specific post-clone fixups.
type CloneCallback interface {
	Cloned(copy *Node, original *Node, subtree bool) error
}

// CharacterDataLike is the capability of payloads backing text, comment,
// CDATA-section and processing-instruction nodes.
type CharacterDataLike interface {
	Data() string
	SetData(string)
}

// EqualData is consulted by Node.IsEqualNode; payloads not implementing it
// compare equal whenever their node kinds match.
type EqualData interface {
	EqualData(other NodeData) bool
}

// ElementDataHolder is the capability of element payloads. ElementData
// implements it directly; payload types of other packages embed ElementData
// and inherit the implementation, so element-generic operations reach the
// embedded state regardless of the wrapper type.
type ElementDataHolder interface {
	Element() *ElementData
}

// ElementOf returns the element state of n's payload, unwrapping wrapper
// payloads. It returns (nil, false) for non-elements.
func ElementOf(n *Node) (*ElementData, bool) {
	if n == nil {
		return nil, false
	}
	holder, ok := n.data.(ElementDataHolder)
	if !ok {
		return nil, false
	}
	return holder.Element(), true
}

// As queries a node for a payload capability, the dynamic counterpart of a
// downcast in a class hierarchy. It returns the node's payload as T, or the
// zero T if the payload is of a different kind.
func As[T NodeData](n *Node) (T, bool) {
	var zero T
	if n == nil {
		return zero, false
	}
	d, ok := n.data.(T)
	return d, ok
}

// Is reports whether a node's payload is of dynamic kind T.
func Is[T NodeData](n *Node) bool {
	_, ok := As[T](n)
	return ok
}

// --- Concrete payloads -----------------------------------------------------

// Attr is a single element attribute.
type Attr struct {
	Namespace string
	Key       string
	Value     string
}

// ElementData is the payload of element nodes.
type ElementData struct {
	TagName    string
	Namespace  string
	Attributes []Attr
	shadowRoot *Node
}

func (d *ElementData) NodeName() string { return d.TagName }

// Element returns the payload itself. Wrapper payloads that embed ElementData
// inherit the method, which lets element-generic operations unwrap them.
func (d *ElementData) Element() *ElementData { return d }

func (d *ElementData) CloneData() NodeData {
	attrs := make([]Attr, len(d.Attributes))
	copy(attrs, d.Attributes)
	return &ElementData{TagName: d.TagName, Namespace: d.Namespace, Attributes: attrs}
}

func (d *ElementData) EqualData(other NodeData) bool {
	holder, ok := other.(ElementDataHolder)
	if !ok {
		return false
	}
	o := holder.Element()
	if d.TagName != o.TagName || d.Namespace != o.Namespace {
		return false
	}
	if len(d.Attributes) != len(o.Attributes) {
		return false
	}
	for i, a := range d.Attributes {
		if o.Attributes[i] != a {
			return false
		}
	}
	return true
}

// Attribute looks up an attribute value by key.
func (d *ElementData) Attribute(key string) (string, bool) {
	for _, a := range d.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// ShadowRoot returns the element's attached shadow root, if any.
func (d *ElementData) ShadowRoot() *Node { return d.shadowRoot }

// CharData is the payload shared by the character-data node kinds.
type CharData struct {
	name string
	data string
}

func (d *CharData) NodeName() string    { return d.name }
func (d *CharData) Data() string        { return d.data }
func (d *CharData) SetData(s string)    { d.data = s }
func (d *CharData) CloneData() NodeData { return &CharData{name: d.name, data: d.data} }

func (d *CharData) EqualData(other NodeData) bool {
	o, ok := other.(*CharData)
	return ok && d.name == o.name && d.data == o.data
}

// ProcessingInstructionData is the payload of processing-instruction nodes.
type ProcessingInstructionData struct {
	CharData
	Target string
}

func (d *ProcessingInstructionData) NodeName() string { return d.Target }

func (d *ProcessingInstructionData) CloneData() NodeData {
	return &ProcessingInstructionData{
		CharData: CharData{name: d.Target, data: d.data},
		Target:   d.Target,
	}
}

func (d *ProcessingInstructionData) EqualData(other NodeData) bool {
	o, ok := other.(*ProcessingInstructionData)
	return ok && d.Target == o.Target && d.data == o.data
}

// DocumentTypeData is the payload of document-type nodes.
type DocumentTypeData struct {
	Name     string
	PublicID string
	SystemID string
}

func (d *DocumentTypeData) NodeName() string { return d.Name }

func (d *DocumentTypeData) CloneData() NodeData {
	return &DocumentTypeData{Name: d.Name, PublicID: d.PublicID, SystemID: d.SystemID}
}

func (d *DocumentTypeData) EqualData(other NodeData) bool {
	o, ok := other.(*DocumentTypeData)
	return ok && *d == *o
}

// AttributeData is the payload of standalone attribute nodes.
type AttributeData struct {
	Attr
	ownerElement *Node
}

func (d *AttributeData) NodeName() string { return d.Key }

func (d *AttributeData) CloneData() NodeData {
	return &AttributeData{Attr: d.Attr}
}

// OwnerElement returns the element the attribute belongs to, or nil.
func (d *AttributeData) OwnerElement() *Node { return d.ownerElement }

// SetOwnerElement links the attribute node to its element. The link is a
// non-owning back-reference.
func (d *AttributeData) SetOwnerElement(e *Node) { d.ownerElement = e }

// DocumentFragmentData is the payload of plain document-fragment nodes.
type DocumentFragmentData struct{}

func (d *DocumentFragmentData) NodeName() string    { return "#document-fragment" }
func (d *DocumentFragmentData) CloneData() NodeData { return &DocumentFragmentData{} }

// ShadowRootData is the payload of a document fragment serving as a shadow
// root. The host back-reference is non-owning.
type ShadowRootData struct {
	host *Node
}

func (d *ShadowRootData) NodeName() string    { return "#shadow-root" }
func (d *ShadowRootData) CloneData() NodeData { return &ShadowRootData{} }

// Host returns the shadow host element.
func (d *ShadowRootData) Host() *Node { return d.host }
