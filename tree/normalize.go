package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "strings"

// Normalize merges runs of adjacent exclusive-text descendants into single
// nodes and removes empty ones, preserving document order. The merges and
// removals fire the same records and callbacks as explicit mutations: one
// characterData record for the surviving node of each run, one childList
// record per removed node.
func (n *Node) Normalize() {
	// Collect first; the walk must not iterate a chain it is mutating.
	var textNodes []*Node
	n.ForEachInSubtree(func(d *Node) TraversalDecision {
		if d.IsExclusiveText() {
			textNodes = append(textNodes, d)
		}
		return TraversalContinue
	})
	for _, node := range textNodes {
		if node.parent == nil {
			continue // already merged away
		}
		cd := node.data.(CharacterDataLike)
		if len(cd.Data()) == 0 {
			node.Remove(false)
			continue
		}
		var run []*Node
		var sb strings.Builder
		for sib := node.nextSibling; sib != nil && sib.IsExclusiveText(); sib = sib.nextSibling {
			run = append(run, sib)
			sb.WriteString(sib.data.(CharacterDataLike).Data())
		}
		if len(run) == 0 {
			continue
		}
		node.ReplaceData(cd.Data() + sb.String())
		for _, sib := range run {
			sib.Remove(false)
		}
	}
	tracer().Debugf("normalized subtree of %v", n)
}
