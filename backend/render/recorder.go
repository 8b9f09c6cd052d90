package render

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/f64"
)

// Op is the kind of a recorded backend call.
type Op int8

// Recorded operations
const (
	OpEnableScissor Op = iota
	OpSetScissor
	OpSetTransform
)

func (op Op) String() string {
	switch op {
	case OpEnableScissor:
		return "EnableScissorRegion"
	case OpSetScissor:
		return "SetScissorRegion"
	case OpSetTransform:
		return "SetTransform"
	}
	return "?"
}

// Call is a recorded backend call.
type Call struct {
	Op        Op
	Enable    bool
	X, Y      int
	W, H      int
	Transform *f64.Mat4 // copy of the transform, nil for reset
}

func (c Call) String() string {
	switch c.Op {
	case OpEnableScissor:
		return fmt.Sprintf("%s(%v)", c.Op, c.Enable)
	case OpSetScissor:
		return fmt.Sprintf("%s(%d, %d, %d, %d)", c.Op, c.X, c.Y, c.W, c.H)
	case OpSetTransform:
		if c.Transform == nil {
			return fmt.Sprintf("%s(nil)", c.Op)
		}
		return fmt.Sprintf("%s(%v)", c.Op, *c.Transform)
	}
	return c.Op.String()
}

// Recorder is a render backend which records all calls.
type Recorder struct {
	Calls []Call
}

var _ Interface = &Recorder{}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// EnableScissorRegion is part of interface Interface.
func (rec *Recorder) EnableScissorRegion(enable bool) {
	tracer().Debugf("scissor enabled = %v", enable)
	rec.Calls = append(rec.Calls, Call{Op: OpEnableScissor, Enable: enable})
}

// SetScissorRegion is part of interface Interface.
func (rec *Recorder) SetScissorRegion(x, y, width, height int) {
	tracer().Debugf("scissor = (%d,%d) %dx%d", x, y, width, height)
	rec.Calls = append(rec.Calls, Call{Op: OpSetScissor, X: x, Y: y, W: width, H: height})
}

// SetTransform is part of interface Interface.
func (rec *Recorder) SetTransform(transform *f64.Mat4) {
	call := Call{Op: OpSetTransform}
	if transform != nil {
		m := *transform
		call.Transform = &m
	}
	rec.Calls = append(rec.Calls, call)
}

// Count returns the number of recorded calls of a kind.
func (rec *Recorder) Count(op Op) int {
	n := 0
	for _, c := range rec.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Last returns the last recorded call of a kind.
func (rec *Recorder) Last(op Op) (Call, bool) {
	for i := len(rec.Calls) - 1; i >= 0; i-- {
		if rec.Calls[i].Op == op {
			return rec.Calls[i], true
		}
	}
	return Call{}, false
}

// Reset forgets all recorded calls.
func (rec *Recorder) Reset() {
	rec.Calls = rec.Calls[:0]
}

func (rec *Recorder) String() string {
	var b strings.Builder
	for _, c := range rec.Calls {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}
