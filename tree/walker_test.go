package tree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWalkerAllDescendents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	_, nodes := buildDocument(t)
	selection, err := NewWalker(nodes["html"]).AllDescendents().Promise()()
	if err != nil {
		t.Fatalf("walker chain failed: %v", err)
	}
	if len(selection) != 6 {
		t.Errorf("expected 6 descendents of html, have %d", len(selection))
	}
	if selection[0] != nodes["head"] || selection[len(selection)-1] != nodes["x"] {
		t.Error("expected descendents in tree order")
	}
}

func TestWalkerDescendentsWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	doc, nodes := buildDocument(t)
	selection, err := NewWalker(doc.AsNode()).DescendentsWith(NodeIsType(TextNode)).Promise()()
	if err != nil {
		t.Fatalf("walker chain failed: %v", err)
	}
	if len(selection) != 2 {
		t.Fatalf("expected 2 text descendents, have %d", len(selection))
	}
	if selection[0] != nodes["t"] || selection[1] != nodes["x"] {
		t.Error("expected the two text nodes in tree order")
	}
	leafs, err := NewWalker(nodes["body"]).DescendentsWith(NodeIsLeaf()).Promise()()
	if err != nil {
		t.Fatalf("walker chain failed: %v", err)
	}
	if len(leafs) != 2 {
		t.Errorf("expected leafs [p, x], have %d nodes", len(leafs))
	}
}

func TestWalkerAncestorWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	doc, nodes := buildDocument(t)
	selection, err := NewWalker(nodes["t"]).
		AncestorWith(NodeIsType(DocumentNode)).
		Promise()()
	if err != nil {
		t.Fatalf("walker chain failed: %v", err)
	}
	if len(selection) != 1 || selection[0] != doc.AsNode() {
		t.Error("expected the document as nearest matching ancestor")
	}
	// Chained steps: parent of the title element, then a filter.
	selection, err = NewWalker(nodes["t"]).
		Parent().
		Filter(NodeIsType(ElementNode)).
		Promise()()
	if err != nil {
		t.Fatalf("walker chain failed: %v", err)
	}
	if len(selection) != 1 || selection[0] != nodes["title"] {
		t.Error("expected [title] from parent+filter chain")
	}
}

func TestWalkerEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	selection, err := NewWalker(nil).AllDescendents().Parent().Promise()()
	if !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected ErrEmptyTree from nil walker, have %v", err)
	}
	if len(selection) != 0 {
		t.Error("expected an empty selection from nil walker")
	}
}

func TestWalkerInvalidFilter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	_, nodes := buildDocument(t)
	_, err := NewWalker(nodes["html"]).DescendentsWith(nil).Promise()()
	if !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter for nil predicate, have %v", err)
	}
}

func TestWalkerPredicateError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	_, nodes := buildDocument(t)
	boom := errors.New("boom")
	failing := func(test *Node) (*Node, error) { return nil, boom }
	_, err := NewWalker(nodes["html"]).DescendentsWith(failing).Promise()()
	if !errors.Is(err, boom) {
		t.Errorf("expected predicate error to surface, have %v", err)
	}
}
