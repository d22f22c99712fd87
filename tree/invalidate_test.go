package tree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLayoutFlagPropagation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	doc, nodes := buildDocument(t)
	clearAllFlags(doc.AsNode())
	nodes["t"].SetNeedsLayoutTreeUpdate(true)
	if !nodes["t"].NeedsLayoutTreeUpdate() {
		t.Error("expected needs-layout flag on the node itself")
	}
	for _, key := range []string{"title", "head", "html"} {
		if !nodes[key].ChildNeedsLayoutTreeUpdate() {
			t.Errorf("expected child-needs-layout flag on ancestor %s", key)
		}
		if nodes[key].NeedsLayoutTreeUpdate() {
			t.Errorf("expected ancestor %s itself clean", key)
		}
	}
	if !doc.AsNode().ChildNeedsLayoutTreeUpdate() {
		t.Error("expected child-needs-layout flag on the document")
	}
	if nodes["body"].ChildNeedsLayoutTreeUpdate() {
		t.Error("expected sibling subtree untouched")
	}
	// Clearing a flag never propagates.
	nodes["t"].SetNeedsLayoutTreeUpdate(false)
	if !nodes["html"].ChildNeedsLayoutTreeUpdate() {
		t.Error("expected ancestor marks to survive a clear")
	}
}

func TestStyleFlagPropagation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	doc, nodes := buildDocument(t)
	clearAllFlags(doc.AsNode())
	nodes["p"].SetNeedsStyleUpdate(true)
	if !nodes["p"].NeedsStyleUpdate() {
		t.Error("expected needs-style flag on the node itself")
	}
	if !nodes["body"].ChildNeedsStyleUpdate() || !nodes["html"].ChildNeedsStyleUpdate() {
		t.Error("expected child-needs-style flags on the ancestor chain")
	}
	clearAllFlags(doc.AsNode())
	nodes["p"].SetNeedsInheritedStyleUpdate(true)
	if !nodes["p"].NeedsInheritedStyleUpdate() {
		t.Error("expected needs-inherited-style flag")
	}
	if !nodes["body"].ChildNeedsStyleUpdate() {
		t.Error("expected inherited-style change to mark ancestors, too")
	}
}

func TestInvalidateStyleReasons(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	doc, nodes := buildDocument(t)
	clearAllFlags(doc.AsNode())
	nodes["p"].InvalidateStyle(StyleInvalidationParentOfInsertedNode)
	if nodes["p"].NeedsStyleUpdate() {
		t.Error("expected parent-of-inserted-node to leave the node itself clean")
	}
	if !nodes["body"].ChildNeedsStyleUpdate() {
		t.Error("expected ancestor marks regardless of reason")
	}
	clearAllFlags(doc.AsNode())
	nodes["p"].InvalidateStyle(StyleInvalidationElementAttributeChange)
	if !nodes["p"].NeedsStyleUpdate() {
		t.Error("expected attribute change to dirty the node itself")
	}
	clearAllFlags(doc.AsNode())
	nodes["p"].InvalidateStyleWithProperties(StyleInvalidationOther,
		[]InvalidationProperty{"color"}, true)
	if !nodes["p"].NeedsStyleUpdate() {
		t.Error("expected forced self-invalidation")
	}
}

func TestMutationsRaiseFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	doc, nodes := buildDocument(t)
	clearAllFlags(doc.AsNode())
	div := NewElement(doc, "div")
	mustAppend(t, nodes["body"], div)
	if !div.NeedsLayoutTreeUpdate() || !div.NeedsStyleUpdate() {
		t.Error("expected inserted node dirty for layout and style")
	}
	if !nodes["html"].ChildNeedsLayoutTreeUpdate() || !nodes["html"].ChildNeedsStyleUpdate() {
		t.Error("expected insertion to mark the ancestor chain")
	}
	clearAllFlags(doc.AsNode())
	nodes["x"].ReplaceData("changed")
	if !nodes["x"].NeedsStyleUpdate() || !nodes["x"].NeedsLayoutTreeUpdate() {
		t.Error("expected character data change to dirty the text node")
	}
}

// clearAllFlags resets dirty flags over the whole tree, giving flag tests a
// clean slate after fixture construction.
func clearAllFlags(root *Node) {
	root.ForEachInInclusiveSubtree(func(n *Node) TraversalDecision {
		n.needsLayoutTreeUpdate = false
		n.childNeedsLayoutTreeUpdate = false
		n.needsStyleUpdate = false
		n.needsInheritedStyleUpdate = false
		n.childNeedsStyleUpdate = false
		n.entireSubtreeNeedsStyleUpdate = false
		return TraversalContinue
	})
}
