/*
Package htmltree builds document trees from HTML parse trees.

# Overview

Package golang.org/x/net/html produces a parse tree of html.Nodes. This
package converts such a parse tree into a tree.Document, the mutable
document tree of this module. Element nodes keep a back-link to the
html.Node they were built from, so later processing stages (styling,
layout) can consult the original markup.

In a fully object oriented programming language we would subclass the
generic node type for HTML-backed nodes, but in Go we resort to
composition: the element payload embeds the generic element payload and
adds the HTML link. Callers retrieve the link through a capability query
on the payload.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package htmltree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'dom.html'.
func tracer() tracing.Trace {
	return tracing.Select("dom.html")
}
