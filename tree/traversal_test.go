package tree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPreOrderStepping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	doc, nodes := buildDocument(t)
	want := []*Node{
		doc.AsNode(), nodes["html"], nodes["head"], nodes["title"],
		nodes["t"], nodes["body"], nodes["p"], nodes["x"],
	}
	var got []*Node
	for n := doc.AsNode(); n != nil; n = n.NextInPreOrder() {
		got = append(got, n)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d nodes in pre-order, have %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pre-order position %d: expected %v, have %v", i, want[i], got[i])
		}
	}
	// Walking backwards must reproduce the reversed sequence.
	var back []*Node
	for n := nodes["x"]; n != nil; n = n.PreviousInPreOrder() {
		back = append(back, n)
	}
	for i := range back {
		if back[i] != want[len(want)-1-i] {
			t.Errorf("reverse pre-order position %d: expected %v, have %v",
				i, want[len(want)-1-i], back[i])
		}
	}
}

func TestPreOrderStayWithin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	_, nodes := buildDocument(t)
	head := nodes["head"]
	var got []*Node
	for n := head.FirstChild(); n != nil; n = n.NextInPreOrderWithin(head) {
		got = append(got, n)
	}
	if len(got) != 2 || got[0] != nodes["title"] || got[1] != nodes["t"] {
		t.Errorf("expected [title, #text] within head, have %v", got)
	}
}

func TestForEachInSubtreeEarlyExit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	doc, nodes := buildDocument(t)
	visited := 0
	decision := doc.AsNode().ForEachInInclusiveSubtree(func(n *Node) TraversalDecision {
		visited++
		if n == nodes["title"] {
			return TraversalBreak
		}
		return TraversalContinue
	})
	if decision != TraversalBreak {
		t.Error("expected traversal to report the break")
	}
	if visited != 4 { // document, html, head, title
		t.Errorf("expected 4 visits until break, have %d", visited)
	}
}

func TestForEachInSubtreeSkipChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	doc, nodes := buildDocument(t)
	var got []*Node
	doc.AsNode().ForEachInSubtree(func(n *Node) TraversalDecision {
		got = append(got, n)
		if n == nodes["head"] {
			return TraversalSkipChildren
		}
		return TraversalContinue
	})
	for _, n := range got {
		if n == nodes["title"] || n == nodes["t"] {
			t.Errorf("expected head's subtree to be skipped, visited %v", n)
		}
	}
	if len(got) != 5 { // html, head, body, p, x
		t.Errorf("expected 5 visits, have %d", len(got))
	}
}

func TestAncestorAndChildIteration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	doc, nodes := buildDocument(t)
	var ancs []*Node
	nodes["t"].ForEachAncestor(func(n *Node) IterationDecision {
		ancs = append(ancs, n)
		return IterationContinue
	})
	want := []*Node{nodes["title"], nodes["head"], nodes["html"], doc.AsNode()}
	if len(ancs) != len(want) {
		t.Fatalf("expected %d ancestors, have %d", len(want), len(ancs))
	}
	for i := range want {
		if ancs[i] != want[i] {
			t.Errorf("ancestor %d: expected %v, have %v", i, want[i], ancs[i])
		}
	}
	count := 0
	nodes["html"].ForEachChild(func(n *Node) IterationDecision {
		count++
		return IterationBreak
	})
	if count != 1 {
		t.Errorf("expected child iteration to stop after break, visited %d", count)
	}
}

func TestTypedFilters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	doc, nodes := buildDocument(t)
	body := nodes["body"]
	if _, node := FirstChildOfType[*ElementData](body); node != nodes["p"] {
		t.Errorf("expected first element child of body to be p, have %v", node)
	}
	if cd, node := FirstChildOfType[*CharData](body); node != nodes["x"] || cd.Data() != "x" {
		t.Errorf("expected first char-data child of body to be x, have %v", node)
	}
	if _, node := LastChildOfType[*ElementData](body); node != nodes["p"] {
		t.Errorf("expected last element child of body to be p, have %v", node)
	}
	if _, node := NextSiblingOfType[*CharData](nodes["p"]); node != nodes["x"] {
		t.Errorf("expected next char-data sibling of p to be x, have %v", node)
	}
	if _, node := PreviousSiblingOfType[*ElementData](nodes["x"]); node != nodes["p"] {
		t.Errorf("expected previous element sibling of x to be p, have %v", node)
	}
	if _, node := FirstAncestorOfType[*Document](nodes["t"]); node != doc.AsNode() {
		t.Errorf("expected document ancestor of text, have %v", node)
	}
	if !HasChildOfType[*ElementData](body) {
		t.Error("expected body to have an element child")
	}
	if HasChildOfType[*DocumentTypeData](body) {
		t.Error("expected body to have no doctype child")
	}
}

func TestTreeOrderTypedPredicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	_, nodes := buildDocument(t)
	if !HasPrecedingNodeOfTypeInTreeOrder[*CharData](nodes["p"]) {
		t.Error("expected a char-data node to precede p (the title text)")
	}
	if !HasFollowingNodeOfTypeInTreeOrder[*CharData](nodes["p"]) {
		t.Error("expected a char-data node to follow p (the body text)")
	}
	if HasFollowingNodeOfTypeInTreeOrder[*DocumentTypeData](nodes["p"]) {
		t.Error("expected no doctype to follow p")
	}
	count := 0
	ForEachInSubtreeOfType[*ElementData](nodes["html"], func(_ *ElementData, n *Node) TraversalDecision {
		count++
		return TraversalContinue
	})
	if count != 4 { // head, title, body, p
		t.Errorf("expected 4 element descendants of html, have %d", count)
	}
}

func TestShadowIncludingTraversal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	doc, nodes := buildDocument(t)
	sr, err := AttachShadowRoot(nodes["p"])
	if err != nil {
		t.Fatalf("cannot attach shadow root: %v", err)
	}
	inner := NewElement(doc, "span")
	mustAppend(t, sr, inner)
	seen := false
	nodes["body"].ForEachShadowIncludingDescendant(func(n *Node) TraversalDecision {
		if n == inner {
			seen = true
		}
		return TraversalContinue
	})
	if !seen {
		t.Error("expected shadow content to be visited")
	}
	if !inner.IsShadowIncludingDescendantOf(nodes["body"]) {
		t.Error("expected span to be a shadow-including descendant of body")
	}
	if inner.IsDescendantOf(nodes["body"]) {
		t.Error("expected span not to be a plain descendant of body")
	}
}
