package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/rui/core"
	"github.com/npillmayer/rui/engine/databind"
	"github.com/npillmayer/rui/engine/dom"
	"github.com/npillmayer/rui/engine/dom/xpathadapter"
	"github.com/npillmayer/rui/engine/geometry"
	"github.com/npillmayer/rui/engine/geometry/geomdebug"
	"github.com/npillmayer/rui/engine/text"
	"github.com/pterm/pterm"
)

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Command is a parsed input line. Commands have the form
// `op[:arg[:arg2]]`; for selector and XPath queries the argument extends
// to the end of the line.
type Command struct {
	code int
	arg  string
	arg2 string
}

const (
	QUIT int = iota
	HELP
	LOAD
	LAYOUT
	TREE
	ID
	TAG
	CLASS
	SELECT
	XPATH
	CLIP
	VAR
	SET
	BIND
	WIDTH
	CALLS
	DOT
)

var commands = map[string]int{
	"quit": QUIT, "help": HELP, "load": LOAD, "layout": LAYOUT, "tree": TREE,
	"id": ID, "tag": TAG, "class": CLASS, "select": SELECT, "xpath": XPATH,
	"clip": CLIP, "var": VAR, "set": SET, "bind": BIND, "width": WIDTH,
	"calls": CALLS, "dot": DOT,
}

func parseCommand(line string) (*Command, error) {
	op, rest, _ := strings.Cut(line, ":")
	code, ok := commands[strings.ToLower(strings.TrimSpace(op))]
	if !ok {
		return nil, core.Error(core.ESYNTAX, "unknown command %q, try 'help'", op)
	}
	cmd := &Command{code: code}
	switch code {
	case SELECT, XPATH, LOAD, DOT:
		cmd.arg = strings.TrimSpace(rest)
	default:
		arg, arg2, _ := strings.Cut(rest, ":")
		cmd.arg, cmd.arg2 = strings.TrimSpace(arg), strings.TrimSpace(arg2)
	}
	tracer().Debugf("command = %v", cmd)
	return cmd, nil
}

func (intp *Intp) execute(cmd *Command) (bool, error) {
	if cmd.code == QUIT {
		return true, nil
	}
	if cmd.code == HELP {
		help(cmd.arg)
		return false, nil
	}
	if cmd.code == LOAD {
		return false, intp.load(cmd.arg)
	}
	if cmd.code == VAR {
		if cmd.arg == "" {
			return false, core.Error(core.EMISSING, "usage: var:<name>:<value>")
		}
		intp.model.Bind(cmd.arg, value(cmd.arg2))
		pterm.Printfln("%s = %v", cmd.arg, value(cmd.arg2))
		return false, nil
	}
	if intp.doc == nil {
		return false, core.Error(core.EMISSING, "no document loaded")
	}
	switch cmd.code {
	case LAYOUT:
		Layout(intp.doc)
		pterm.Printfln("laid out %s", intp.doc)
	case TREE:
		return false, printTree(intp.doc)
	case ID:
		el := dom.ElementByID(intp.doc, cmd.arg)
		if el == nil {
			return false, core.Error(core.EMISSING, "no element with id %q", cmd.arg)
		}
		intp.show(el)
	case TAG:
		intp.show(dom.ElementsByTagName(intp.doc, cmd.arg)...)
	case CLASS:
		intp.show(dom.ElementsByClassName(intp.doc, cmd.arg)...)
	case SELECT:
		elements, err := dom.QuerySelectorAll(intp.doc, cmd.arg)
		if err != nil {
			return false, err
		}
		intp.show(elements...)
	case XPATH:
		elements, err := xpathadapter.Find(intp.doc, cmd.arg)
		if err != nil {
			return false, err
		}
		intp.show(elements...)
	case CLIP:
		el, err := intp.target(cmd.arg)
		if err != nil {
			return false, err
		}
		region, clipped := geometry.ClippingRegion(el)
		pterm.Printfln("%s: clipped=%v region=%v", el.Address(), clipped, region)
		n := len(intp.rec.Calls)
		geometry.SetClippingRegion(el, intp.ctx)
		for _, call := range intp.rec.Calls[n:] {
			pterm.Printfln("  -> %v", call)
		}
	case BIND:
		n := databind.NewAttacher(nil).BindTree(intp.doc)
		pterm.Printfln("bound %d elements, model has %d views and %d controllers",
			n, len(intp.model.Views()), len(intp.model.Controllers()))
	case SET:
		if err := intp.model.Set(cmd.arg, value(cmd.arg2)); err != nil {
			return false, err
		}
		pterm.Printfln("updated %d views", intp.model.Update())
	case WIDTH:
		el, err := intp.target(cmd.arg)
		if err != nil {
			return false, err
		}
		if el.FontFaceHandle() == 0 {
			el.SetFontFaceHandle(intp.face)
		}
		w := text.StringWidth(intp.fonts, el, cmd.arg2, 0)
		pterm.Printfln("width of %q in %s = %v", cmd.arg2, el, w)
	case CALLS:
		pterm.Println(intp.rec.String())
		intp.rec.Reset()
	case DOT:
		return false, writeGraph(intp.doc, cmd.arg)
	}
	return false, nil
}

func (intp *Intp) load(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot open %s", filename)
	}
	defer f.Close()
	doc, err := dom.Parse(f)
	if err != nil {
		return err
	}
	if intp.doc != nil {
		intp.ctx.Root().RemoveChild(intp.doc)
	}
	intp.doc = doc
	intp.current = nil
	intp.ctx.AddDocument(doc)
	doc.SetDataModel(intp.model)
	Layout(doc)
	pterm.Info.Printfln("loaded %s with %d top-level elements", filename, doc.NumChildren())
	return nil
}

// target returns the element with a given id or, if id is empty, the
// result of the last query.
func (intp *Intp) target(id string) (*dom.Element, error) {
	if id == "" {
		if intp.current == nil {
			return nil, core.Error(core.EMISSING, "no current element, query one first")
		}
		return intp.current, nil
	}
	el := dom.ElementByID(intp.doc, id)
	if el == nil {
		return nil, core.Error(core.EMISSING, "no element with id %q", id)
	}
	return el, nil
}

func (intp *Intp) show(elements ...*dom.Element) {
	if len(elements) == 0 {
		pterm.Println("no elements found")
		return
	}
	data := pterm.TableData{{"element", "offset", "size", "clip"}}
	for _, el := range elements {
		_, clipped := geometry.ClippingRegion(el)
		data = append(data, []string{
			el.Address(),
			el.AbsoluteOffset(el.ClientArea()).String(),
			fmt.Sprintf("%v×%v", el.Box().Content.X, el.Box().Content.Y),
			fmt.Sprint(clipped),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
	intp.current = elements[0]
}

func writeGraph(doc *dom.Element, filename string) error {
	if filename == "" {
		return core.Error(core.EMISSING, "usage: dot:<file>")
	}
	f, err := os.Create(filename)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create %s", filename)
	}
	defer f.Close()
	if err := geomdebug.ToGraphViz(doc, f); err != nil {
		return err
	}
	pterm.Info.Printfln("wrote element graph to %s", filename)
	return nil
}

func printTree(doc *dom.Element) error {
	var list pterm.LeveledList
	var collect func(*dom.Element, int)
	collect = func(el *dom.Element, level int) {
		text := displayMode(el).Symbol() + " " + el.String()
		list = append(list, pterm.LeveledListItem{Level: level, Text: text})
		for _, ch := range el.Children() {
			collect(ch, level+1)
		}
	}
	collect(doc, 0)
	return pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(list)).Render()
}

// value interprets command arguments: lists are comma separated, `true`
// and `false` are booleans.
func value(s string) interface{} {
	switch {
	case s == "true":
		return true
	case s == "false":
		return false
	case strings.Contains(s, ","):
		items := strings.Split(s, ",")
		for i := range items {
			items[i] = strings.TrimSpace(items[i])
		}
		return items
	}
	return s
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(topic) {
	case "clip", "clipping":
		pterm.Info.Println("Clipping")
		pterm.Println(`
	Elements with overflow other than 'visible' clip their descendants to
	their client area, if their content overflows. 'clip: always' clips
	even without overflow, 'clip: none' switches clipping off, and
	'clip: <n>' skips the n nearest clipping ancestors.

	clip:<id>    prints the clip region of an element and applies it
	calls        prints and clears the recorded render calls
	`)
	case "bind", "binding", "data":
		pterm.Info.Println("Data bindings")
		pterm.Println(`
	var:<name>:<value>   defines a model variable (a,b,c is a list)
	bind                 attaches all data-* attributes of the document
	set:<name>:<value>   changes a variable and updates the views

	data-attr-<a>, data-class-<c>, data-style-<p>, data-if, data-value, data-for
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	load:<file>          load a markup document
	layout               lay out boxes from inline styles
	tree                 print the element tree
	id:<id>  tag:<tag>  class:<class>  select:<css>  xpath:<expr>
	clip:<id>            clip region of an element (help:clip)
	var / bind / set     data bindings (help:bind)
	width:<id>:<text>    width of a text in a monospace font
	dot:<file>           write the element tree as a GraphViz graph
	quit
	`)
	}
}
