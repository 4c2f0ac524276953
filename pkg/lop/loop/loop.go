package loop

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ib-77/lop/pkg/lop"
	"github.com/ib-77/lop/pkg/lop/escape"
	"github.com/ib-77/lop/pkg/lop/sink"
)

// ErrNoValue reports that an Eval loop was exited without producing a value.
var ErrNoValue = errors.New("loop: exited without a value")

type Opt func(*settings)

type settings struct {
	label string
	out   sink.Sink
}

// WithLabel names the loop so escapes carrying escape.Label(name) can
// target it past inner loops.
func WithLabel(name string) Opt {
	return func(s *settings) {
		s.label = name
	}
}

// WithSink routes escape diagnostics to out instead of stdout.
func WithSink(out sink.Sink) Opt {
	return func(s *settings) {
		s.out = out
	}
}

func newSettings(opts []Opt) settings {
	s := settings{out: sink.Stdout()}
	for _, o := range opts {
		o(&s)
	}
	return s
}

type action uint8

const (
	actNone action = iota
	actSkip
	actExit
	actExitErr
)

// step runs one iteration of the body, translating an escape signal
// bound to this frame into an action. Signals for other labels and
// foreign panics pass through.
func (s settings) step(fn func()) (act action, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		sig := escape.Match(r, s.label)
		if sig == nil {
			panic(r)
		}
		sig.Emit(s.out)
		switch sig.Kind() {
		case escape.Skip:
			act = actSkip
		case escape.Exit:
			act = actExit
		case escape.ExitErr:
			act = actExitErr
			err = sig.Err()
		}
	}()

	fn()
	return actNone, nil
}

// Forever runs body until an escape exits the loop or ctx is done.
// It returns nil on a plain exit and the original failure after an
// exit-with-error escape.
func Forever(ctx context.Context, body func(ctx context.Context), opts ...Opt) error {
	s := newSettings(opts)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch act, err := s.step(func() { body(ctx) }); act {
		case actExit:
			return nil
		case actExitErr:
			return err
		}
	}
}

// Times runs body at most n times.
func Times(ctx context.Context, n int, body func(ctx context.Context, i int), opts ...Opt) error {
	s := newSettings(opts)

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch act, err := s.step(func() { body(ctx, i) }); act {
		case actExit:
			return nil
		case actExitErr:
			return err
		}
	}
	return nil
}

// Over runs body once per item.
func Over[T any](ctx context.Context, items []T, body func(ctx context.Context, item T), opts ...Opt) error {
	s := newSettings(opts)

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch act, err := s.step(func() { body(ctx, item) }); act {
		case actExit:
			return nil
		case actExitErr:
			return err
		}
	}
	return nil
}

// Eval runs body until it yields a value or an escape ends the loop.
// Some(v) ends the loop with Success(v), None continues. A plain exit
// escape yields Fail(ErrNoValue); an exit-with-error escape yields the
// original failure payload, unmodified; cancellation yields Cancel.
func Eval[T any](ctx context.Context, body func(ctx context.Context) lop.Option[T], opts ...Opt) lop.Result[T] {
	s := newSettings(opts)

	for {
		if err := ctx.Err(); err != nil {
			return lop.Cancel[T](err)
		}

		var out lop.Option[T]
		switch act, err := s.step(func() { out = body(ctx) }); act {
		case actNone:
			if out.IsSome() {
				return lop.Success(out.Value())
			}
		case actExit:
			return lop.Fail[T](ErrNoValue)
		case actExitErr:
			return lop.Fail[T](err)
		}
	}
}
