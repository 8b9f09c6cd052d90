/*
Command ruicli is an interactive explorer for element trees.

It loads a markup document into a render context, lays out boxes from
inline style declarations, and lets users query elements, inspect clip
regions and try out data bindings. Render calls go to a recording backend
and are printed instead of rasterized.

Usage:

	ruicli [-trace level] [-size WxH] [-dp ratio] [file]
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/rui/backend/render"
	"github.com/npillmayer/rui/core"
	"github.com/npillmayer/rui/core/dimen"
	"github.com/npillmayer/rui/engine/databind"
	"github.com/npillmayer/rui/engine/dom"
	"github.com/npillmayer/rui/engine/text/monospace"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'rui.cli'
func tracer() tracing.Trace {
	return tracing.Select("rui.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.rui.cli":      "Info",
		"trace.rui.dom":      "Error",
		"trace.rui.geometry": "Error",
		"trace.rui.databind": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	size := flag.String("size", "800x600", "Size of the render target in pixels")
	dp := flag.Float64("dp", 1.0, "Density independent pixel ratio")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))
	pterm.Info.Println("Welcome to the RUI CLI") // colored welcome message
	//
	dimensions, err := parseSize(*size)
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		os.Exit(2)
	}
	// set up REPL
	repl, err := readline.New("rui > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := NewIntp(dimensions, *dp)
	intp.repl = repl
	//
	// load document to use
	if flag.NArg() > 0 {
		if err := intp.load(flag.Arg(0)); err != nil {
			core.UserError(err)
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                              // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(s string) tracing.TraceLevel {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug
	case "error":
		return tracing.LevelError
	}
	return tracing.LevelInfo
}

// parseSize parses sizes of the form "800x600".
func parseSize(s string) (dimen.Point, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return dimen.Origin, core.Error(core.ESYNTAX, "size must be given as WxH: %q", s)
	}
	width, err1 := strconv.Atoi(w)
	height, err2 := strconv.Atoi(h)
	if err1 != nil || err2 != nil || width < 0 || height < 0 {
		return dimen.Origin, core.Error(core.ESYNTAX, "illegal size: %q", s)
	}
	return dimen.Point{X: dimen.Px(width), Y: dimen.Px(height)}, nil
}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	ctx     *dom.Context
	rec     *render.Recorder
	doc     *dom.Element
	model   *databind.Model
	fonts   *monospace.Engine
	face    dom.FontFaceHandle
	current *dom.Element // result of the last query
}

// NewIntp creates an interpreter with an empty render context.
func NewIntp(dimensions dimen.Point, dp float64) *Intp {
	rec := render.NewRecorder()
	fonts := monospace.New(nil)
	return &Intp{
		rec: rec,
		ctx: dom.NewContext("cli", dom.WithBackend(rec), dom.WithDimensions(dimensions),
			dom.WithDensityIndependentPixelRatio(dp)),
		model: databind.NewModel("cli"),
		fonts: fonts,
		face:  fonts.AddFace(dimen.Px(8)),
	}
}
