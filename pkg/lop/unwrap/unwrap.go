package unwrap

import (
	"github.com/ib-77/lop/pkg/lop"
	"github.com/ib-77/lop/pkg/lop/escape"
)

// Continue yields the contained value. On absence it writes the optional
// message and resumes the targeted loop at its next iteration; code after
// the call does not run in that iteration.
func Continue[T any](v lop.Optional[T], args ...escape.Arg) T {
	shape := escape.NewShape(args...)

	if o := v.ToOption(); o.IsSome() {
		return o.Value()
	}
	escape.Throw(escape.Skip, shape, nil)
	panic("unreachable")
}

// Break yields the contained value. On absence it writes the optional
// message and exits the targeted loop without a value.
func Break[T any](v lop.Optional[T], args ...escape.Arg) T {
	shape := escape.NewShape(args...)

	if o := v.ToOption(); o.IsSome() {
		return o.Value()
	}
	escape.Throw(escape.Exit, shape, nil)
	panic("unreachable")
}

// BreakErr yields the success value. On failure it writes the optional
// message and exits the targeted loop, surfacing the original failure
// payload unmodified as the loop's result. It accepts only containers
// that retain a failure payload, so a plain Option does not compile here.
func BreakErr[T any](v lop.Faulty[T], args ...escape.Arg) T {
	shape := escape.NewShape(args...)

	if o := v.ToOption(); o.IsSome() {
		return o.Value()
	}
	escape.Throw(escape.ExitErr, shape, v.Err())
	panic("unreachable")
}
