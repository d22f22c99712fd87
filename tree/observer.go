package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// MutationType tags a MutationRecord.
type MutationType string

const (
	MutationChildList     MutationType = "childList"
	MutationAttributes    MutationType = "attributes"
	MutationCharacterData MutationType = "characterData"
)

// MutationRecord is an immutable snapshot describing one structural or
// content change. Records are never mutated after creation; they are queued
// on interested observers for asynchronous delivery by the event loop.
type MutationRecord struct {
	Type               MutationType
	Target             *Node
	AddedNodes         []*Node
	RemovedNodes       []*Node
	PreviousSibling    *Node
	NextSibling        *Node
	AttributeName      string
	AttributeNamespace string
	OldValue           *string
}

// ObserverOptions selects which mutations an observer is interested in.
type ObserverOptions struct {
	ChildList             bool
	Attributes            bool
	CharacterData         bool
	Subtree               bool
	AttributeOldValue     bool
	CharacterDataOldValue bool
	AttributeFilter       []string // nil means all attributes
}

func (o ObserverOptions) wantsAttribute(name string) bool {
	if !o.Attributes {
		return false
	}
	if o.AttributeFilter == nil {
		return true
	}
	for _, f := range o.AttributeFilter {
		if f == name {
			return true
		}
	}
	return false
}

// RegisteredObserver represents one subscription of an observer to a node
// (or its subtree). The node's observer list holds it strongly: a registered
// observer must survive collection while registered.
type RegisteredObserver struct {
	Observer *MutationObserver
	Options  ObserverOptions
	node     *Node
	// source is non-nil for transient observers created on subtree removal;
	// they forward to the source subscription and die with the next
	// TakeRecords or Disconnect.
	source *RegisteredObserver
}

// MutationObserver collects mutation records for script-visible delivery.
// Record construction and enqueueing happen here; delivery scheduling is the
// event loop's business, signalled through the owning document's notify hook.
type MutationObserver struct {
	records    []*MutationRecord
	registered []*RegisteredObserver
}

// NewMutationObserver creates an observer with an empty record queue.
func NewMutationObserver() *MutationObserver {
	return &MutationObserver{}
}

// Observe registers the observer on target. Re-observing a target replaces
// the previous subscription's options. The option set must select at least
// one mutation type, and old-value options imply their mutation type.
func (mo *MutationObserver) Observe(target *Node, options ObserverOptions) error {
	if options.AttributeOldValue || options.AttributeFilter != nil {
		options.Attributes = true
	}
	if options.CharacterDataOldValue {
		options.CharacterData = true
	}
	if !options.ChildList && !options.Attributes && !options.CharacterData {
		return &DOMError{Kind: ErrInvalidObserverOptions, Op: "observe",
			Msg: "at least one of childList/attributes/characterData must be set"}
	}
	for _, reg := range target.observers {
		if reg.Observer == mo && reg.source == nil {
			reg.Options = options
			mo.dropTransientsOf(reg)
			return nil
		}
	}
	reg := &RegisteredObserver{Observer: mo, Options: options, node: target}
	target.observers = append(target.observers, reg)
	mo.registered = append(mo.registered, reg)
	return nil
}

// Disconnect removes all of the observer's subscriptions, transient ones
// included, and empties the record queue.
func (mo *MutationObserver) Disconnect() {
	for _, reg := range mo.registered {
		reg.node.removeRegisteredObserver(reg)
	}
	mo.registered = nil
	mo.records = nil
}

// TakeRecords empties and returns the observer's record queue. Transient
// subscriptions are dropped, matching the delivery semantics of the platform.
func (mo *MutationObserver) TakeRecords() []*MutationRecord {
	records := mo.records
	mo.records = nil
	mo.dropTransients()
	return records
}

// PendingRecords returns the number of queued records without consuming them.
func (mo *MutationObserver) PendingRecords() int { return len(mo.records) }

func (mo *MutationObserver) dropTransients() {
	kept := mo.registered[:0]
	for _, reg := range mo.registered {
		if reg.source != nil {
			reg.node.removeRegisteredObserver(reg)
			continue
		}
		kept = append(kept, reg)
	}
	mo.registered = kept
}

func (mo *MutationObserver) dropTransientsOf(source *RegisteredObserver) {
	kept := mo.registered[:0]
	for _, reg := range mo.registered {
		if reg.source == source {
			reg.node.removeRegisteredObserver(reg)
			continue
		}
		kept = append(kept, reg)
	}
	mo.registered = kept
}

// --- Node-side observer list -----------------------------------------------

// AddRegisteredObserver appends an externally built subscription to the
// node's observer list.
func (n *Node) AddRegisteredObserver(reg *RegisteredObserver) {
	reg.node = n
	n.observers = append(n.observers, reg)
}

// RegisteredObservers exposes the node's observer list.
func (n *Node) RegisteredObservers() []*RegisteredObserver { return n.observers }

func (n *Node) removeRegisteredObserver(reg *RegisteredObserver) {
	for i, r := range n.observers {
		if r == reg {
			n.observers = append(n.observers[:i], n.observers[i+1:]...)
			return
		}
	}
}

// addTransientObserver installs a transient subscription forwarding to source
// on n, so a subtree observer keeps seeing the removed node.
func (n *Node) addTransientObserver(source *RegisteredObserver) {
	reg := &RegisteredObserver{
		Observer: source.Observer,
		Options:  source.Options,
		node:     n,
		source:   source,
	}
	n.observers = append(n.observers, reg)
	source.Observer.registered = append(source.Observer.registered, reg)
}

// --- Record construction & enqueueing --------------------------------------

// QueueMutationRecord builds an immutable record and delivers it to every
// observer interested in target, walking target's inclusive ancestors and
// honoring each subscription's options. Delivery scheduling is left to the
// event loop through the document's notify hook.
func (target *Node) QueueMutationRecord(typ MutationType, attributeName, attributeNamespace string,
	oldValue *string, addedNodes, removedNodes []*Node, previousSibling, nextSibling *Node) {
	//
	// Interested observers are collected first, paired with the old value
	// each one asked for, so a record is enqueued once per observer even if
	// several subscriptions match.
	type interest struct {
		observer *MutationObserver
		oldValue *string
	}
	var interested []interest
	seen := make(map[*MutationObserver]int)
	for node := target; node != nil; node = node.parent {
		for _, reg := range node.observers {
			if node != target && !reg.Options.Subtree {
				continue
			}
			switch typ {
			case MutationAttributes:
				if !reg.Options.wantsAttribute(attributeName) {
					continue
				}
			case MutationCharacterData:
				if !reg.Options.CharacterData {
					continue
				}
			case MutationChildList:
				if !reg.Options.ChildList {
					continue
				}
			}
			var ov *string
			if (typ == MutationAttributes && reg.Options.AttributeOldValue) ||
				(typ == MutationCharacterData && reg.Options.CharacterDataOldValue) {
				ov = oldValue
			}
			if i, ok := seen[reg.Observer]; ok {
				if interested[i].oldValue == nil {
					interested[i].oldValue = ov
				}
				continue
			}
			seen[reg.Observer] = len(interested)
			interested = append(interested, interest{observer: reg.Observer, oldValue: ov})
		}
	}
	if len(interested) == 0 {
		return
	}
	for _, in := range interested {
		record := &MutationRecord{
			Type:               typ,
			Target:             target,
			AddedNodes:         addedNodes,
			RemovedNodes:       removedNodes,
			PreviousSibling:    previousSibling,
			NextSibling:        nextSibling,
			AttributeName:      attributeName,
			AttributeNamespace: attributeNamespace,
			OldValue:           in.oldValue,
		}
		wasEmpty := len(in.observer.records) == 0
		in.observer.records = append(in.observer.records, record)
		if wasEmpty && target.doc != nil && target.doc.notify != nil {
			target.doc.notify(in.observer)
		}
	}
	tracer().P("type", string(typ)).Debugf("queued mutation record for %v to %d observer(s)", target, len(interested))
}

// queueTreeMutationRecord queues a childList record for target.
func queueTreeMutationRecord(target *Node, addedNodes, removedNodes []*Node, previousSibling, nextSibling *Node) {
	target.QueueMutationRecord(MutationChildList, "", "", nil,
		addedNodes, removedNodes, previousSibling, nextSibling)
}
