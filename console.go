package yalog

import (
	"io"

	"github.com/kataras/golog"
)

// ConsoleAppenderKey is the catalog key of the built-in console
// appender. The factory registers and activates it at construction.
const ConsoleAppenderKey = "console"

// ConsoleAppender writes log calls to a terminal using kataras/golog.
// Gating already happened in the logger, so the underlying golog
// instance runs wide open at its most verbose level.
type ConsoleAppender struct {
	out *golog.Logger
}

var _ Appender = (*ConsoleAppender)(nil)

// NewConsoleAppender creates a console appender writing to stderr.
func NewConsoleAppender() *ConsoleAppender {
	return newConsoleAppender(nil)
}

// NewConsoleAppenderWithWriter creates a console appender writing to w.
func NewConsoleAppenderWithWriter(w io.Writer) *ConsoleAppender {
	return newConsoleAppender(w)
}

func newConsoleAppender(w io.Writer) *ConsoleAppender {
	lg := golog.New()
	lg.SetLevel("debug")
	if w != nil {
		lg.SetOutput(w)
	}
	return &ConsoleAppender{out: lg}
}

func (c *ConsoleAppender) Error(msg string, extra ...any) {
	c.out.Error(join(msg, extra)...)
}

func (c *ConsoleAppender) Warn(msg string, extra ...any) {
	c.out.Warn(join(msg, extra)...)
}

func (c *ConsoleAppender) Info(msg string, extra ...any) {
	c.out.Info(join(msg, extra)...)
}

func (c *ConsoleAppender) Debug(msg string, extra ...any) {
	c.out.Debug(join(msg, extra)...)
}

// Trace maps to golog's debug level, the most verbose one it has.
func (c *ConsoleAppender) Trace(msg string, extra ...any) {
	c.out.Debug(join(msg, extra)...)
}

func (c *ConsoleAppender) Dir(v any) {
	c.out.Printf("%+v", v)
}

func (c *ConsoleAppender) Dirxml(v any) {
	c.out.Printf("%+v", v)
}

func (c *ConsoleAppender) Group(msg string, extra ...any) {
	c.out.Debug(join(msg, extra)...)
}

// GroupEnd is a no-op; golog output is flat.
func (c *ConsoleAppender) GroupEnd() {}

func join(msg string, extra []any) []any {
	return append([]any{msg}, extra...)
}
