package domdbg

import (
	"strings"
	"testing"

	"github.com/halfdome/dom/htmltree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

const testHTML = `<html><head></head><body><p>Hello</p></body></html>`

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.html")
	defer teardown()
	//
	doc, err := htmltree.FromHTML(strings.NewReader(testHTML))
	require.NoError(t, err)
	var sb strings.Builder
	ToGraphViz(doc.AsNode(), &sb, false)
	dot := sb.String()
	require.True(t, strings.HasPrefix(dot, "digraph g {"))
	require.Contains(t, dot, `"body"`)
	require.Contains(t, dot, "->", "expected at least one edge")
	require.True(t, strings.HasSuffix(strings.TrimSpace(dot), "}"))
}

func TestToGraphVizWithFlags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.html")
	defer teardown()
	//
	doc, err := htmltree.FromHTML(strings.NewReader(testHTML))
	require.NoError(t, err)
	var sb strings.Builder
	ToGraphViz(doc.AsNode(), &sb, true)
	require.Contains(t, sb.String(), "needs-style")
	require.Contains(t, sb.String(), "flags")
}

func TestTreePrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dom.html")
	defer teardown()
	//
	doc, err := htmltree.FromHTML(strings.NewReader(testHTML))
	require.NoError(t, err)
	out := TreePrint(doc.AsNode())
	t.Logf("tree:\n%s", out)
	for _, want := range []string{"#document", "html", "body", "p", `#text "Hello"`} {
		require.Contains(t, out, want)
	}
}
