/*
Package style holds the computed style values the element utilities consult.

The style engine proper (cascade, inheritance, selectors) lives elsewhere.
Elements carry a snapshot of computed values, which for the purpose of this
module is built from an element's inline `style` attribute. Properties not
understood by this package are kept verbatim and round-trip through Format.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/rui/core"
	"github.com/npillmayer/rui/core/dimen"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// tracer traces with key 'rui.dom'.
func tracer() tracing.Trace {
	return tracing.Select("rui.dom")
}

// Property is a raw CSS property value.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty returns true if p is the NullStyle.
func (p Property) IsEmpty() bool {
	return p == NullStyle
}

// Dimen interprets p as a dimension. Percentages are not resolved and
// reported as an error.
func (p Property) Dimen() (dimen.Dimen, error) {
	d, ispcnt, err := dimen.ParseDimen(strings.TrimSpace(string(p)))
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "not a dimension: %q", string(p))
	}
	if ispcnt {
		return 0, core.Error(core.EINVALID, "relative dimension not resolvable: %q", string(p))
	}
	return d, nil
}

// --- Enumerated values -----------------------------------------------------

// Overflow is the value of `overflow-x` and `overflow-y`.
type Overflow int8

// Overflow values
const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowAuto
	OverflowScroll
)

var overflowNames = []string{"visible", "hidden", "auto", "scroll"}

func (o Overflow) String() string {
	return overflowNames[o]
}

// ClipKind is the kind of a `clip` value.
type ClipKind int8

// Clip kinds. ClipAuto is the initial value and behaves like the number 0.
const (
	ClipAuto ClipKind = iota
	ClipNone
	ClipAlways
	ClipNumber
)

// Clip is the value of the `clip` property: `auto | none | always | <number>`.
//
// A number n lets an element ignore the n nearest clipping ancestors.
type Clip struct {
	Kind ClipKind
	n    int
}

// ClipN creates a numeric clip value.
func ClipN(n int) Clip {
	if n <= 0 {
		return Clip{Kind: ClipAuto}
	}
	return Clip{Kind: ClipNumber, n: n}
}

// Number returns the number of clips to ignore, which is 0 for non-numeric
// clip values.
func (c Clip) Number() int {
	if c.Kind == ClipNumber {
		return c.n
	}
	return 0
}

func (c Clip) String() string {
	switch c.Kind {
	case ClipNone:
		return "none"
	case ClipAlways:
		return "always"
	case ClipNumber:
		return strconv.Itoa(c.n)
	}
	return "auto"
}

// Position is the value of the `position` property.
type Position int8

// Position values
const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

// Direction is the text direction.
type Direction int8

// Text directions
const (
	DirectionAuto Direction = iota
	DirectionLTR
	DirectionRTL
)

// --- Computed values -------------------------------------------------------

// Computed is a snapshot of the computed values of an element.
type Computed struct {
	OverflowX     Overflow
	OverflowY     Overflow
	Clip          Clip
	Position      Position
	HeightAuto    bool
	Display       Property
	Direction     Direction
	Language      language.Tag
	LetterSpacing dimen.Dimen
	props         map[string]Property
}

// Default returns the initial values.
func Default() *Computed {
	return &Computed{
		HeightAuto: true,
		Display:    "block",
		Language:   language.Und,
	}
}

// Clone returns a deep copy of c.
func (c *Computed) Clone() *Computed {
	clone := *c
	if c.props != nil {
		clone.props = make(map[string]Property, len(c.props))
		for k, v := range c.props {
			clone.props[k] = v
		}
	}
	return &clone
}

// ClipsOverflow returns true if the overflow in at least one axis is not visible.
func (c *Computed) ClipsOverflow() bool {
	return c.OverflowX != OverflowVisible || c.OverflowY != OverflowVisible
}

// IsPositioned returns true if the position is not static.
func (c *Computed) IsPositioned() bool {
	return c.Position != PositionStatic
}

// GetPropertyValue returns the declared value of a property, or NullStyle.
func (c *Computed) GetPropertyValue(key string) Property {
	if c.props == nil {
		return NullStyle
	}
	return c.props[key]
}

// Properties returns the names of all declared properties, sorted.
func (c *Computed) Properties() []string {
	keys := make([]string, 0, len(c.props))
	for k := range c.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set declares a property. Known properties update the typed values of c;
// unknown ones are stored verbatim. An invalid value for a known property
// results in an error and leaves c unchanged.
func (c *Computed) Set(key string, value Property) error {
	key = strings.ToLower(strings.TrimSpace(key))
	v := strings.ToLower(strings.TrimSpace(string(value)))
	switch key {
	case "overflow":
		o, err := parseOverflow(v)
		if err != nil {
			return err
		}
		c.OverflowX, c.OverflowY = o, o
	case "overflow-x":
		o, err := parseOverflow(v)
		if err != nil {
			return err
		}
		c.OverflowX = o
	case "overflow-y":
		o, err := parseOverflow(v)
		if err != nil {
			return err
		}
		c.OverflowY = o
	case "clip":
		clip, err := ParseClip(v)
		if err != nil {
			return err
		}
		c.Clip = clip
	case "position":
		switch v {
		case "static":
			c.Position = PositionStatic
		case "relative":
			c.Position = PositionRelative
		case "absolute":
			c.Position = PositionAbsolute
		case "fixed":
			c.Position = PositionFixed
		default:
			return core.Error(core.EINVALID, "illegal position: %q", v)
		}
	case "height":
		c.HeightAuto = v == "auto"
	case "display":
		c.Display = Property(v)
	case "direction":
		switch v {
		case "auto":
			c.Direction = DirectionAuto
		case "ltr":
			c.Direction = DirectionLTR
		case "rtl":
			c.Direction = DirectionRTL
		default:
			return core.Error(core.EINVALID, "illegal direction: %q", v)
		}
	case "language":
		tag, err := language.Parse(v)
		if err != nil {
			return core.WrapError(err, core.EINVALID, "illegal language: %q", v)
		}
		c.Language = tag
	case "letter-spacing":
		if v == "normal" {
			c.LetterSpacing = 0
			break
		}
		d, err := Property(v).Dimen()
		if err != nil {
			return err
		}
		c.LetterSpacing = d
	}
	if c.props == nil {
		c.props = make(map[string]Property)
	}
	c.props[key] = Property(strings.TrimSpace(string(value)))
	return nil
}

// Format renders the declared properties as the content of a `style`
// attribute, in alphabetical order.
func (c *Computed) Format() string {
	var b strings.Builder
	for i, k := range c.Properties() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(string(c.props[k]))
		b.WriteString(";")
	}
	return b.String()
}

// ParseClip parses a value of the `clip` property.
func ParseClip(v string) (Clip, error) {
	switch v {
	case "", "auto":
		return Clip{Kind: ClipAuto}, nil
	case "none":
		return Clip{Kind: ClipNone}, nil
	case "always":
		return Clip{Kind: ClipAlways}, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return Clip{}, core.Error(core.EINVALID, "illegal clip: %q", v)
	}
	return ClipN(n), nil
}

func parseOverflow(v string) (Overflow, error) {
	for i, name := range overflowNames {
		if v == name {
			return Overflow(i), nil
		}
	}
	return OverflowVisible, core.Error(core.EINVALID, "illegal overflow: %q", v)
}
