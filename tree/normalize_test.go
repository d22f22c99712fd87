package tree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNormalizeMergesAdjacentText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	doc := NewDocument()
	div := NewElement(doc, "div")
	a := NewText(doc, "ab")
	empty := NewText(doc, "")
	b := NewText(doc, "cd")
	mustAppend(t, div, a)
	mustAppend(t, div, empty)
	mustAppend(t, div, b)
	div.Normalize()
	if div.ChildCount() != 1 {
		t.Fatalf("expected a single text child after normalize, have %d", div.ChildCount())
	}
	if div.FirstChild() != a {
		t.Error("expected the first text node to survive the merge")
	}
	if v, _ := a.NodeValue(); v != "abcd" {
		t.Errorf("expected merged data 'abcd', have %q", v)
	}
	if empty.Parent() != nil || b.Parent() != nil {
		t.Error("expected merged and empty nodes to be detached")
	}
}

func TestNormalizeSkipsNonExclusiveText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	doc := NewDocument()
	div := NewElement(doc, "div")
	a := NewText(doc, "a")
	cdata := NewCDATASection(doc, "c")
	b := NewText(doc, "b")
	mustAppend(t, div, a)
	mustAppend(t, div, cdata)
	mustAppend(t, div, b)
	div.Normalize()
	// CDATA sections break a run of exclusive text nodes.
	if div.ChildCount() != 3 {
		t.Errorf("expected 3 children to survive, have %d", div.ChildCount())
	}
}

func TestNormalizeDescendsIntoSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	doc := NewDocument()
	div := NewElement(doc, "div")
	span := NewElement(doc, "span")
	mustAppend(t, div, span)
	mustAppend(t, span, NewText(doc, "x"))
	mustAppend(t, span, NewText(doc, "y"))
	div.Normalize()
	if span.ChildCount() != 1 {
		t.Fatalf("expected nested text nodes merged, have %d children", span.ChildCount())
	}
	if v, _ := span.FirstChild().NodeValue(); v != "xy" {
		t.Errorf("expected merged data 'xy', have %q", v)
	}
}

func TestNormalizeQueuesRecords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.tree")
	defer teardown()
	//
	doc := NewDocument()
	div := NewElement(doc, "div")
	a := NewText(doc, "ab")
	b := NewText(doc, "cd")
	mustAppend(t, div, a)
	mustAppend(t, div, b)
	mo := NewMutationObserver()
	err := mo.Observe(div, ObserverOptions{
		ChildList:             true,
		CharacterData:         true,
		CharacterDataOldValue: true,
		Subtree:               true,
	})
	if err != nil {
		t.Fatalf("cannot observe: %v", err)
	}
	div.Normalize()
	var sawData, sawRemoval bool
	for _, rec := range mo.TakeRecords() {
		switch rec.Type {
		case MutationCharacterData:
			if rec.Target == a && rec.OldValue != nil && *rec.OldValue == "ab" {
				sawData = true
			}
		case MutationChildList:
			if len(rec.RemovedNodes) == 1 && rec.RemovedNodes[0] == b {
				sawRemoval = true
			}
		}
	}
	if !sawData {
		t.Error("expected a characterData record with old value 'ab'")
	}
	if !sawRemoval {
		t.Error("expected a childList record for the merged-away node")
	}
}
