/*
Package dom provides an in-memory document object model.

# Overview

The model is a mutable tree of typed nodes, following the WHATWG DOM
mutation algorithms: structural changes are validated up front, committed
as pure link surgery, and only then do observers and lifecycle callbacks
fire. Sub-packages:

  - tree:     the node graph, mutation algorithm, traversal, style/layout
    invalidation flags, and mutation observers
  - htmltree: building a document tree from an HTML parse tree
    (golang.org/x/net/html)
  - domdbg:   GraphViz and text renderings for debugging

This root package adds convenience predicates for use with tree.Walker.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package dom

import (
	"github.com/halfdome/dom/tree"
)

// NodeIsText is a predicate to match text-nodes of a DOM.
// It is intended to be used in a tree.Walker.
var NodeIsText tree.Predicate = func(n *tree.Node) (*tree.Node, error) {
	if n.NodeName() == "#text" {
		return n, nil
	}
	return nil, nil
}

// NodeIsElement returns a predicate matching elements with the given tag, for
// use in a tree.Walker. An empty tag matches every element.
func NodeIsElement(tag string) tree.Predicate {
	return func(n *tree.Node) (*tree.Node, error) {
		if !n.IsElement() {
			return nil, nil
		}
		if tag == "" || n.NodeName() == tag {
			return n, nil
		}
		return nil, nil
	}
}

// TextsOf collects the character data of all text nodes below root, in tree
// order.
func TextsOf(root *tree.Node) ([]string, error) {
	selection, err := tree.NewWalker(root).DescendentsWith(NodeIsText).Promise()()
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(selection))
	for _, n := range selection {
		if cd, ok := n.Data().(tree.CharacterDataLike); ok {
			texts = append(texts, cd.Data())
		}
	}
	return texts, nil
}
