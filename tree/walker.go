package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "errors"

// ErrEmptyTree is thrown if a Walker is called for a nil start node.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// ErrInvalidFilter is thrown if a walker step is given a nil predicate or
// action.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// Predicate is a function type to match against nodes of a tree. It returns
// the node to keep (usually test itself) or nil to drop it.
type Predicate func(test *Node) (match *Node, err error)

// Whatever is a predicate to match anything. It is useful to select the first
// node in a given direction.
func Whatever() Predicate {
	return func(test *Node) (*Node, error) {
		return test, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf() Predicate {
	return func(test *Node) (*Node, error) {
		if test.firstChild == nil {
			return test, nil
		}
		return nil, nil
	}
}

// NodeIsType is a predicate to match nodes of a given kind.
func NodeIsType(t NodeType) Predicate {
	return func(test *Node) (*Node, error) {
		if test.kind == t {
			return test, nil
		}
		return nil, nil
	}
}

// Walker selects nodes of a (sub-)tree. Clients create a Walker for a start
// node, chain a sequence of search and filter steps, and fetch the resulting
// selection through Promise. The DSL mirrors the usual jQuery-style tree
// expressions:
//
//	w := NewWalker(node)
//	nodes, err := w.DescendentsWith(NodeIsType(ElementNode)).Promise()()
//
// The single-threaded mutation contract of this package makes every step run
// synchronously; Promise is kept as the terminal call so walker expressions
// read the same regardless of the execution model behind them.
type Walker struct {
	selection []*Node
	err       error
}

// NewWalker creates a Walker with the initial node as its selection.
//
// If initial is nil, NewWalker will return a nil-Walker, resulting in a
// NOP-chain of operations, an empty selection, and an error (ErrEmptyTree).
func NewWalker(initial *Node) *Walker {
	if initial == nil {
		return nil
	}
	tracer().Debugf("new tree-walker, initial node = %v", initial)
	return &Walker{selection: []*Node{initial}}
}

// Promise returns a function yielding the walker's selection and the first
// error that occurred along the chain.
func (w *Walker) Promise() func() ([]*Node, error) {
	if w == nil {
		return func() ([]*Node, error) {
			return nil, ErrEmptyTree
		}
	}
	selection, err := w.selection, w.err
	return func() ([]*Node, error) {
		return selection, err
	}
}

// step replaces the selection by applying f to every selected node.
func (w *Walker) step(f func(*Node, func(*Node))) *Walker {
	if w == nil || w.err != nil {
		return w
	}
	var next []*Node
	push := func(n *Node) { next = append(next, n) }
	for _, node := range w.selection {
		f(node, push)
	}
	w.selection = next
	return w
}

// Parent maps the selection onto its parent nodes; root nodes drop out.
//
// If w is nil, Parent will return nil.
func (w *Walker) Parent() *Walker {
	return w.step(func(node *Node, push func(*Node)) {
		if node.parent != nil {
			push(node.parent)
		}
	})
}

// AncestorWith finds for every selected node the nearest ancestor matching
// the given predicate. The search does not include the start node.
func (w *Walker) AncestorWith(predicate Predicate) *Walker {
	if w == nil {
		return nil
	}
	if predicate == nil {
		w.err = ErrInvalidFilter
		return w
	}
	return w.step(func(node *Node, push func(*Node)) {
		for anc := node.parent; anc != nil; anc = anc.parent {
			match, err := predicate(anc)
			if err != nil {
				w.err = err
				return
			}
			if match != nil {
				push(match)
				return
			}
		}
	})
}

// DescendentsWith finds all descendents matching a predicate, in tree order.
// The search does not include the start node.
func (w *Walker) DescendentsWith(predicate Predicate) *Walker {
	if w == nil {
		return nil
	}
	if predicate == nil {
		w.err = ErrInvalidFilter
		return w
	}
	return w.step(func(node *Node, push func(*Node)) {
		node.ForEachInSubtree(func(desc *Node) TraversalDecision {
			match, err := predicate(desc)
			if err != nil {
				w.err = err
				return TraversalBreak
			}
			if match != nil {
				push(match)
			}
			return TraversalContinue
		})
	})
}

// AllDescendents collects all descendents of the selection, in tree order.
// This is just a wrapper around w.DescendentsWith(Whatever()).
func (w *Walker) AllDescendents() *Walker {
	return w.DescendentsWith(Whatever())
}

// Filter applies a client-provided predicate to each node of the selection.
func (w *Walker) Filter(predicate Predicate) *Walker {
	if w == nil {
		return nil
	}
	if predicate == nil {
		w.err = ErrInvalidFilter
		return w
	}
	return w.step(func(node *Node, push func(*Node)) {
		match, err := predicate(node)
		if err != nil {
			w.err = err
			return
		}
		if match != nil {
			push(match)
		}
	})
}
