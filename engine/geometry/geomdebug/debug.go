/*
Package geomdebug renders element trees as GraphViz graphs.

Every element becomes a node labelled with its display symbol, tag and box
size. Elements which clip their descendants are filled in a darker color,
elements which are clipped get a double border and their clip region in the
label. Offset parents which differ from the tree parent are connected by a
dashed edge.
*/
package geomdebug

import (
	"fmt"
	"io"
	"text/template"

	"github.com/npillmayer/rui/core"
	"github.com/npillmayer/rui/engine/dom"
	"github.com/npillmayer/rui/engine/frame"
	"github.com/npillmayer/rui/engine/geometry"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rui.geometry'.
func tracer() tracing.Trace {
	return tracing.Select("rui.geometry")
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
	cnt      int
}

// maxNodes guards against erroneous cycles.
const maxNodes = 4096

// ToGraphViz creates a graphical representation of an element tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(root *dom.Element, w io.Writer) error {
	header := template.Must(template.New("elementTree").Parse(graphHeadTmpl))
	gparams := graphParamsType{
		Fontname: "Helvetica",
		NodeTmpl: template.Must(template.New("node").Parse(nodeTmpl)),
		EdgeTmpl: template.Must(template.New("edge").Parse(edgeTmpl)),
	}
	if err := header.Execute(w, gparams); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write graph header")
	}
	dict := make(map[*dom.Element]string, 64)
	if err := nodes(root, w, dict, &gparams); err != nil {
		return err
	}
	if err := offsetEdges(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err := w.Write([]byte("}\n"))
	return err
}

func nodes(el *dom.Element, w io.Writer, dict map[*dom.Element]string, gparams *graphParamsType) error {
	gparams.cnt++
	if gparams.cnt > maxNodes {
		return core.Error(core.EINTERNAL, "element tree exceeds %d nodes", maxNodes)
	}
	if err := node(el, w, dict, gparams); err != nil {
		return err
	}
	for _, child := range el.Children() {
		if err := nodes(child, w, dict, gparams); err != nil {
			return err
		}
		e := cedge{N1: dict[el], N2: dict[child]}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot write edge")
		}
	}
	return nil
}

func offsetEdges(el *dom.Element, w io.Writer, dict map[*dom.Element]string, gparams *graphParamsType) error {
	if op := el.OffsetParent(); op != nil && op != el.Parent() && dict[op] != "" {
		e := cedge{N1: dict[op], N2: dict[el], Dashed: true}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return core.WrapError(err, core.EINTERNAL, "cannot write edge")
		}
	}
	for _, child := range el.Children() {
		if err := offsetEdges(child, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

// Helper structs
type cnode struct {
	Name   string
	Label  string
	Fill   string
	Border string
}

type cedge struct {
	N1, N2 string
	Dashed bool
}

func node(el *dom.Element, w io.Writer, dict map[*dom.Element]string, gparams *graphParamsType) error {
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[el] = name
	n := cnode{Name: name, Label: Label(el), Fill: "lightblue3"}
	if el.ComputedValues().ClipsOverflow() {
		n.Fill = "steelblue"
	}
	if region, clipped := geometry.ClippingRegion(el); clipped {
		n.Border = "peripheries=2"
		n.Label += "\n" + region.String()
	}
	tracer().Debugf("graph node %s = %s", name, el)
	if err := gparams.NodeTmpl.Execute(w, n); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write node")
	}
	return nil
}

// Label returns a node label for an element.
func Label(el *dom.Element) string {
	if el == nil {
		return "<empty element>"
	}
	size := el.Box().Size(frame.BorderBox)
	mode, _ := frame.ParseDisplay(el.ComputedValues().GetPropertyValue("display").String())
	if mode == frame.NoMode {
		mode = frame.DefaultDisplayMode(el.TagName())
	}
	return fmt.Sprintf("%s %s\n%v×%v", mode.Symbol(), el.String(), size.X, size.Y)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  node [fontname = "{{ .Fontname }}" fontsize=12] ;
  edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const nodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .Label }} shape=box style=filled fillcolor={{ .Fill }} {{ .Border }} ] ;
`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1{{ if .Dashed }} style=dashed constraint=false{{ end }}] ;
`
