package htmltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"io"

	"github.com/halfdome/dom/tree"
	"golang.org/x/net/html"
)

// ElemData is the payload of elements built from an HTML parse tree. It
// extends the generic element payload with a link to the originating
// html.Node.
type ElemData struct {
	tree.ElementData
	htmlNode *html.Node
}

// HTMLNode returns the parse-tree node this element was built from.
func (d *ElemData) HTMLNode() *html.Node {
	return d.htmlNode
}

// CloneData duplicates the element state. Clones share the originating
// html.Node, as the parse tree is read-only once parsing is done.
func (d *ElemData) CloneData() tree.NodeData {
	base := d.ElementData.CloneData().(*tree.ElementData)
	return &ElemData{ElementData: *base, htmlNode: d.htmlNode}
}

// HTMLNodeOf returns the parse-tree node behind a document-tree node, or nil
// if the node was not built from HTML.
func HTMLNodeOf(n *tree.Node) *html.Node {
	if d, ok := tree.As[*ElemData](n); ok {
		return d.htmlNode
	}
	return nil
}

// FromHTML parses HTML from r and builds a document tree for it.
func FromHTML(r io.Reader) (*tree.Document, error) {
	parsed, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return Build(parsed)
}

// Build converts an HTML parse tree into a document tree. root must be the
// parse tree's document node.
func Build(root *html.Node) (*tree.Document, error) {
	if root == nil || root.Type != html.DocumentNode {
		return nil, fmt.Errorf("htmltree: build requires an HTML document node")
	}
	doc := tree.NewDocument()
	tracer().Debugf("building document tree from HTML parse tree")
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if err := buildSubtree(doc, doc.AsNode(), child); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// buildSubtree converts one parse-tree node and its descendants, appending
// the result to parent under full mutation validation.
func buildSubtree(doc *tree.Document, parent *tree.Node, h *html.Node) error {
	node := convertNode(doc, h)
	if node == nil { // parse-tree node kind with no document-tree counterpart
		return nil
	}
	if _, err := parent.AppendChild(node); err != nil {
		return fmt.Errorf("htmltree: cannot append %q: %w", node.NodeName(), err)
	}
	for child := h.FirstChild; child != nil; child = child.NextSibling {
		if err := buildSubtree(doc, node, child); err != nil {
			return err
		}
	}
	return nil
}

func convertNode(doc *tree.Document, h *html.Node) *tree.Node {
	switch h.Type {
	case html.ElementNode:
		data := &ElemData{htmlNode: h}
		data.TagName = h.Data
		data.Namespace = h.Namespace
		for _, a := range h.Attr {
			data.Attributes = append(data.Attributes, tree.Attr{
				Namespace: a.Namespace,
				Key:       a.Key,
				Value:     a.Val,
			})
		}
		return tree.NewNode(doc, tree.ElementNode, data)
	case html.TextNode:
		return tree.NewText(doc, h.Data)
	case html.CommentNode:
		return tree.NewComment(doc, h.Data)
	case html.DoctypeNode:
		var publicID, systemID string
		for _, a := range h.Attr {
			switch a.Key {
			case "public":
				publicID = a.Val
			case "system":
				systemID = a.Val
			}
		}
		return tree.NewDocumentType(doc, h.Data, publicID, systemID)
	}
	// ErrorNode and RawNode carry no document semantics.
	return nil
}
