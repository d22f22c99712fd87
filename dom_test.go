package dom

import (
	"strings"
	"testing"

	"github.com/halfdome/dom/htmltree"
	"github.com/halfdome/dom/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNodeIsText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	doc, err := htmltree.FromHTML(strings.NewReader(
		`<html><body><p>Hello <b>World</b></p></body></html>`))
	if err != nil {
		t.Fatalf("cannot build document: %v", err)
	}
	texts, err := tree.NewWalker(doc.AsNode()).DescendentsWith(NodeIsText).Promise()()
	if err != nil {
		t.Fatalf("walker chain failed: %v", err)
	}
	if len(texts) != 2 {
		t.Errorf("expected 2 text nodes, have %d", len(texts))
	}
}

func TestNodeIsElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	doc, err := htmltree.FromHTML(strings.NewReader(
		`<html><body><p>one</p><p>two</p></body></html>`))
	if err != nil {
		t.Fatalf("cannot build document: %v", err)
	}
	ps, err := tree.NewWalker(doc.AsNode()).DescendentsWith(NodeIsElement("p")).Promise()()
	if err != nil {
		t.Fatalf("walker chain failed: %v", err)
	}
	if len(ps) != 2 {
		t.Errorf("expected 2 p elements, have %d", len(ps))
	}
}

func TestTextsOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	doc, err := htmltree.FromHTML(strings.NewReader(
		`<html><body><p>Hello <b>World</b></p></body></html>`))
	if err != nil {
		t.Fatalf("cannot build document: %v", err)
	}
	texts, err := TextsOf(doc.AsNode())
	if err != nil {
		t.Fatalf("cannot collect texts: %v", err)
	}
	if strings.Join(texts, "") != "Hello World" {
		t.Errorf("expected text 'Hello World', have %q", strings.Join(texts, ""))
	}
}
