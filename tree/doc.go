/*
Package tree implements the document tree that underlies a web-rendering
engine: the node graph, its mutation protocol, tree-order traversal, and
the invalidation signals that downstream layout/style subsystems consume.

Mutation follows the DOM standard's algorithms (pre-insert, insert, remove,
replace, clone, normalize, adopt): every operation validates completely
before it touches a single link, so a failed call leaves the tree untouched.
Structural changes are reported twice, to different audiences. Registered
mutation observers receive immutable MutationRecords, queued for later
asynchronous delivery by the surrounding event loop. The style and layout
subsystems read per-node dirty flags which every mutation raises on the node
and propagates up the ancestor chain, enabling O(1) "does this subtree need
work" checks during a later top-down pass.

All tree mutation is expected to run on one logical thread, the document's
associated event loop. No internal locking is performed and concurrent
mutation from multiple goroutines is undefined behavior by contract.
Callbacks fired during a mutation may themselves mutate the tree; such
reentrancy is tolerated because callbacks only ever observe fully committed
structure.

Type-specific state and behavior live in a node's payload, a NodeData value.
Payloads opt into lifecycle callbacks (insertion, removal, adoption, clone
fixups, child vetoes) by implementing the corresponding capability
interfaces. Generic helpers As and Is perform capability queries over the
payload, replacing the deep virtual-dispatch hierarchy a class-based engine
would use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'dom.tree'.
func tracer() tracing.Trace {
	return tracing.Select("dom.tree")
}
