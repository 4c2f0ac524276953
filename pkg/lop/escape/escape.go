package escape

import (
	"github.com/pkg/errors"

	"github.com/ib-77/lop/pkg/lop"
	"github.com/ib-77/lop/pkg/lop/sink"
)

// Kind selects the control-flow action taken on an absent value.
type Kind uint8

const (
	// Skip resumes the targeted loop at its next iteration.
	Skip Kind = iota
	// Exit leaves the targeted loop without a value.
	Exit
	// ExitErr leaves the targeted loop, surfacing the original failure
	// payload as the loop's result.
	ExitErr
)

func (k Kind) String() string {
	switch k {
	case Skip:
		return "skip"
	case Exit:
		return "exit"
	case ExitErr:
		return "exit-err"
	default:
		return "unknown"
	}
}

// Arg is a call-site argument of an unwrap helper: a loop label, a
// diagnostic message, or both, in either order.
type Arg interface {
	apply(s *Shape)
}

type labelArg string

func (a labelArg) apply(s *Shape) {
	if s.hasLabel {
		panic(errors.Errorf("escape: duplicate label argument %q", string(a)))
	}
	s.label = string(a)
	s.hasLabel = true
}

// Label targets the enclosing loop bearing name instead of the innermost one.
func Label(name string) Arg {
	return labelArg(name)
}

type msgArg struct {
	v any
}

func (a msgArg) apply(s *Shape) {
	if s.hasMsg {
		panic(errors.New("escape: duplicate message argument"))
	}
	s.msg = a.v
	s.hasMsg = true
}

// Msg attaches a diagnostic written to the loop's sink before the escape
// is performed. Any displayable value is accepted.
func Msg(v any) Arg {
	return msgArg{v: v}
}

// Shape is the canonical form of a call-site argument list.
type Shape struct {
	label    string
	msg      any
	hasLabel bool
	hasMsg   bool
}

// NewShape normalizes args regardless of their relative order. The
// accepted shapes are (), (Label), (Msg), (Label, Msg) and (Msg, Label);
// anything else is a malformed call and panics before any value is
// inspected.
func NewShape(args ...Arg) Shape {
	var s Shape
	for _, a := range args {
		if a == nil {
			panic(errors.New("escape: nil argument"))
		}
		a.apply(&s)
	}
	return s
}

func (s Shape) Label() string {
	return s.label
}

func (s Shape) HasLabel() bool {
	return s.hasLabel
}

func (s Shape) HasMsg() bool {
	return s.hasMsg
}

// Signal is the escape thrown past the loop body and caught by a driver
// frame. An unlabeled signal binds to the innermost frame; a labeled one
// unwinds until the frame bearing that label.
type Signal struct {
	kind  Kind
	shape Shape
	err   error
}

// Throw panics with an escape signal. Only loop drivers recover it.
func Throw(kind Kind, shape Shape, err error) {
	panic(&Signal{kind: kind, shape: shape, err: err})
}

// Match reports whether a recovered value is a signal bound to the frame
// with the given label. Foreign panics and signals for other frames
// return nil.
func Match(r any, label string) *Signal {
	sig, ok := r.(*Signal)
	if !ok {
		return nil
	}
	if sig.shape.hasLabel && sig.shape.label != label {
		return nil
	}
	return sig
}

func (sig *Signal) Kind() Kind {
	return sig.kind
}

// Err returns the propagated failure payload, set only for ExitErr.
func (sig *Signal) Err() error {
	return sig.err
}

// Emit writes the diagnostic message, if any, to out. Called by the
// handling frame strictly before it performs the escape action.
func (sig *Signal) Emit(out sink.Sink) {
	if sig.shape.hasMsg && !lop.IsNil(out) {
		out.Line(sig.shape.msg)
	}
}
