/*
Package domdbg implements helpers to debug a document tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/halfdome/dom/tree"
	"github.com/xlab/treeprint"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	WithFlags bool
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	FlagsTmpl *template.Template
	FlagsEdge *template.Template
}

// ToGraphViz outputs a diagram for a document tree. The diagram is in
// GraphViz (DOT) format. Clients provide the root node of the tree and a
// Writer. With withFlags set, every node gets a record listing its style and
// layout dirty flags attached.
func ToGraphViz(root *tree.Node, w io.Writer, withFlags bool) {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica", WithFlags: withFlags}
	gparams.NodeTmpl, _ = template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl)
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.FlagsTmpl = template.Must(template.New("flags").Parse(flagsTmpl))
	gparams.FlagsEdge = template.Must(template.New("flagsedge").Parse(flagsEdgeTmpl))
	err = tmpl.Execute(w, gparams)
	if err != nil {
		panic(err)
	}
	dict := make(map[tree.NodeID]string, 4096)
	nodes(root, w, dict, &gparams)
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given a tree node and a testing.T, it will
// create a GraphViz image of the tree under root and write it to a file in
// the current folder, choosing a unique file name. The image is in SVG
// format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(root *tree.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	ToGraphViz(root, tmpfile, false)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Log("writing DOM tree image to tree.svg\n")
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *tree.Node
	Name string
}

func nodes(n *tree.Node, w io.Writer, dict map[tree.NodeID]string, gparams *graphParamsType) {
	domNode(n, w, dict, gparams)
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		nodes(ch, w, dict, gparams)
		domEdge(n, ch, w, dict, gparams)
	}
}

func domNode(n *tree.Node, w io.Writer, dict map[tree.NodeID]string, gparams *graphParamsType) {
	name := dict[n.UniqueID()]
	if name == "" {
		l := len(dict) + 1
		name = fmt.Sprintf("node%05d", l)
		dict[n.UniqueID()] = name
	}
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		panic(err)
	}
	if gparams.WithFlags {
		domFlags(n, w, dict, gparams)
	}
}

// flagrecord is the template context for a node's dirty-flag record.
type flagrecord struct {
	Name  string
	Flags []flag
}

type flag struct {
	Key string
	Set bool
}

func domFlags(n *tree.Node, w io.Writer, dict map[tree.NodeID]string, gparams *graphParamsType) {
	rec := flagrecord{
		Name: dict[n.UniqueID()],
		Flags: []flag{
			{"needs-style", n.NeedsStyleUpdate()},
			{"child-needs-style", n.ChildNeedsStyleUpdate()},
			{"entire-subtree", n.EntireSubtreeNeedsStyleUpdate()},
			{"needs-layout", n.NeedsLayoutTreeUpdate()},
			{"child-needs-layout", n.ChildNeedsLayoutTreeUpdate()},
		},
	}
	if err := gparams.FlagsTmpl.Execute(w, rec); err != nil {
		panic(err)
	}
	if err := gparams.FlagsEdge.Execute(w, rec); err != nil {
		panic(err)
	}
}

type edge struct {
	N1, N2 node
}

func domEdge(n1 *tree.Node, n2 *tree.Node, w io.Writer, dict map[tree.NodeID]string,
	gparams *graphParamsType) {
	//
	name1 := dict[n1.UniqueID()]
	name2 := dict[n2.UniqueID()]
	e := edge{node{n1, name1}, node{n2, name2}}
	if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
		panic(err)
	}
}

func shortText(n *tree.Node) string {
	data := ""
	if cd, ok := n.Data().(tree.CharacterDataLike); ok {
		data = cd.Data()
	}
	s := "\"\\\""
	if len(data) > 10 {
		s += data[:10] + "...\\\"\""
	} else {
		s += data + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "\u2423", -1)
	return s
}

// --- Text rendering ---------------------------------------------------

// TreePrint renders the tree under root as an indented text diagram, one line
// per node. Character data is quoted, elements show their tag.
func TreePrint(root *tree.Node) string {
	printer := treeprint.New()
	printer.SetValue(label(root))
	branches(root, printer)
	return printer.String()
}

func branches(n *tree.Node, printer treeprint.Tree) {
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		branch := printer.AddBranch(label(ch))
		branches(ch, branch)
	}
}

func label(n *tree.Node) string {
	if cd, ok := n.Data().(tree.CharacterDataLike); ok {
		return fmt.Sprintf("%s %q", n.NodeName(), cd.Data())
	}
	return n.NodeName()
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [{{ .Fontname }} = "helvetica" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .N.NodeName "#text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.NodeName }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const flagsTmpl = `{{ .Name }}flags [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">flags</font></td></tr>
      {{ range .Flags }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Set }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const flagsEdgeTmpl = `{{ .Name }} -> {{ .Name }}flags [dir=none weight=1 style="dashed"] ;
`
