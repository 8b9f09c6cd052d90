package frame

import (
	"strings"

	"github.com/npillmayer/rui/core"
)

// DisplayMode is a type for CSS property "display".
type DisplayMode uint16

// Flags for outer and inner display modes.
const (
	NoMode       DisplayMode = iota   // unset or error condition
	DisplayNone  DisplayMode = 0x0001 // element generates no box
	FlowMode     DisplayMode = 0x0002 // inner display = flow
	BlockMode    DisplayMode = 0x0004 // outer display = block
	InlineMode   DisplayMode = 0x0008 // outer display = inline
	ListItemMode DisplayMode = 0x0010 // list-item
	FlowRoot     DisplayMode = 0x0020 // inner display = flow-root
	FlexMode     DisplayMode = 0x0040 // inner display = flex
	TableMode    DisplayMode = 0x0080 // inner display = table
)

var displayNames = []struct {
	mode DisplayMode
	name string
}{
	{DisplayNone, "none"}, {FlowMode, "flow"}, {BlockMode, "block"},
	{InlineMode, "inline"}, {ListItemMode, "list-item"}, {FlowRoot, "flow-root"},
	{FlexMode, "flex"}, {TableMode, "table"},
}

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

func (disp DisplayMode) String() string {
	if disp == NoMode {
		return "no-mode"
	}
	var modes []string
	for _, m := range displayNames {
		if disp.Contains(m.mode) {
			modes = append(modes, m.name)
		}
	}
	return strings.Join(modes, " ")
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	switch {
	case disp.Contains(DisplayNone):
		return "∅"
	case disp.Contains(ListItemMode):
		return "▣"
	case disp.Contains(TableMode):
		return "▥"
	case disp.Contains(FlexMode):
		return "▤"
	case disp.Contains(BlockMode):
		return "▩"
	case disp.Contains(InlineMode):
		return "►"
	}
	return "?"
}

// ParseDisplay returns mode flags from a display property string.
// The empty string results in NoMode.
func ParseDisplay(display string) (DisplayMode, error) {
	switch strings.TrimSpace(strings.ToLower(display)) {
	case "":
		return NoMode, nil
	case "none":
		return DisplayNone, nil
	case "block":
		return BlockMode | FlowMode, nil
	case "inline":
		return InlineMode | FlowMode, nil
	case "flow-root":
		return BlockMode | FlowRoot, nil
	case "inline-block":
		return InlineMode | FlowRoot, nil
	case "list-item":
		return ListItemMode | BlockMode | FlowMode, nil
	case "flex":
		return BlockMode | FlexMode, nil
	case "inline-flex":
		return InlineMode | FlexMode, nil
	case "table":
		return BlockMode | TableMode, nil
	case "inline-table":
		return InlineMode | TableMode, nil
	}
	return BlockMode | FlowMode, core.Error(core.EINVALID, "unknown display mode: %q", display)
}

// DefaultDisplayMode returns the default display mode for an HTML tag.
func DefaultDisplayMode(tag string) DisplayMode {
	switch strings.ToLower(tag) {
	case "li":
		return ListItemMode | BlockMode | FlowMode
	case "table":
		return BlockMode | TableMode
	case "span", "a", "i", "b", "em", "strong", "code", "label", "input", "img":
		return InlineMode | FlowMode
	case "head", "script", "style", "template":
		return DisplayNone
	}
	return BlockMode | FlowMode
}
