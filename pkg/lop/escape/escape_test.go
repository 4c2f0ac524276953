package escape

import (
	"errors"
	"strings"
	"testing"

	"github.com/ib-77/lop/pkg/lop/sink"
)

func TestNewShape_Empty(t *testing.T) {
	t.Parallel()
	s := NewShape()
	if s.HasLabel() || s.HasMsg() {
		t.Fatalf("expected empty shape, got label=%v msg=%v", s.HasLabel(), s.HasMsg())
	}
}

func TestNewShape_OrderInvariant(t *testing.T) {
	t.Parallel()
	a := NewShape(Label("outer"), Msg("oops"))
	b := NewShape(Msg("oops"), Label("outer"))

	if a != b {
		t.Fatalf("expected identical shapes, got %+v and %+v", a, b)
	}
	if a.Label() != "outer" || !a.HasMsg() {
		t.Fatalf("expected label 'outer' with message, got %+v", a)
	}
}

func TestNewShape_DuplicateLabelRejected(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate label")
		}
	}()
	NewShape(Label("a"), Label("b"))
}

func TestNewShape_DuplicateMsgRejected(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate message")
		}
	}()
	NewShape(Msg("a"), Msg("b"))
}

func TestNewShape_NilArgRejected(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on nil argument")
		}
	}()
	NewShape(nil)
}

func catchSignal(t *testing.T, fn func()) (sig *Signal) {
	t.Helper()
	defer func() {
		sig = Match(recover(), "")
		if sig == nil {
			t.Fatalf("expected an escape signal")
		}
	}()
	fn()
	return nil
}

func TestThrowAndMatch_Unlabeled(t *testing.T) {
	t.Parallel()
	sig := catchSignal(t, func() {
		Throw(Skip, NewShape(), nil)
	})
	if sig.Kind() != Skip || sig.Err() != nil {
		t.Fatalf("expected skip signal, got kind=%v err=%v", sig.Kind(), sig.Err())
	}
}

func TestMatch_LabeledSignalSkipsOtherFrames(t *testing.T) {
	t.Parallel()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected signal to pass through mismatched frame")
		}
		if Match(r, "inner") != nil {
			t.Fatalf("signal for 'outer' must not bind to frame 'inner'")
		}
		if Match(r, "outer") == nil {
			t.Fatalf("signal must bind to frame 'outer'")
		}
	}()
	Throw(Exit, NewShape(Label("outer")), nil)
}

func TestMatch_UnlabeledSignalBindsToAnyFrame(t *testing.T) {
	t.Parallel()
	defer func() {
		if Match(recover(), "whatever") == nil {
			t.Fatalf("unlabeled signal must bind to the innermost frame")
		}
	}()
	Throw(Exit, NewShape(), nil)
}

func TestMatch_ForeignPanic(t *testing.T) {
	t.Parallel()
	if Match("not a signal", "") != nil {
		t.Fatalf("foreign panic values must not match")
	}
	if Match(nil, "") != nil {
		t.Fatalf("nil must not match")
	}
}

func TestEmit_WritesMessageOnce(t *testing.T) {
	t.Parallel()
	var buf strings.Builder
	sig := catchSignal(t, func() {
		Throw(Skip, NewShape(Msg("try again")), nil)
	})

	sig.Emit(sink.Writer(&buf))
	if got := buf.String(); got != "try again\n" {
		t.Fatalf("expected single message line, got %q", got)
	}
}

func TestEmit_NoMessageWritesNothing(t *testing.T) {
	t.Parallel()
	var buf strings.Builder
	sig := catchSignal(t, func() {
		Throw(Exit, NewShape(), nil)
	})

	sig.Emit(sink.Writer(&buf))
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestSignal_CarriesOriginalError(t *testing.T) {
	t.Parallel()
	err := errors.New("payload")
	sig := catchSignal(t, func() {
		Throw(ExitErr, NewShape(), err)
	})
	if sig.Kind() != ExitErr || sig.Err() != err {
		t.Fatalf("expected original payload, got kind=%v err=%v", sig.Kind(), sig.Err())
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()
	cases := map[Kind]string{Skip: "skip", Exit: "exit", ExitErr: "exit-err", Kind(9): "unknown"}
	for k, want := range cases {
		if k.String() != want {
			t.Fatalf("expected %q, got %q", want, k.String())
		}
	}
}
