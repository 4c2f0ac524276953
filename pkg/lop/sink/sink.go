package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

// Sink is the injected write-line capability used for escape diagnostics.
type Sink interface {
	Line(v any)
}

type writerSink struct {
	w io.Writer
}

func (s writerSink) Line(v any) {
	fmt.Fprintln(s.w, v)
}

// Writer returns a sink printing each message as a line to w.
func Writer(w io.Writer) Sink {
	return writerSink{w: w}
}

// Stdout is the default sink of loop drivers.
func Stdout() Sink {
	return writerSink{w: os.Stdout}
}

type colorSink struct {
	w io.Writer
	c *color.Color
}

func (s colorSink) Line(v any) {
	s.c.Fprintln(s.w, v)
}

// Color returns a sink rendering messages with the given attributes,
// yellow when none are given.
func Color(w io.Writer, attrs ...color.Attribute) Sink {
	if len(attrs) == 0 {
		attrs = []color.Attribute{color.FgYellow}
	}
	return colorSink{w: w, c: color.New(attrs...)}
}

type zapSink struct {
	l *zap.Logger
}

func (s zapSink) Line(v any) {
	s.l.Warn(fmt.Sprint(v))
}

// Zap returns a sink logging messages at warn level.
func Zap(l *zap.Logger) Sink {
	return zapSink{l: l}
}

type discardSink struct{}

func (discardSink) Line(any) {}

// Discard drops all messages.
func Discard() Sink {
	return discardSink{}
}
