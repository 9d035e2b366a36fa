package yalog

import "sync"

// CapturedCall records a single appender invocation.
type CapturedCall struct {
	Method  string // "error", "warn", "info", "debug", "trace", "dir", "dirxml", "group", "groupEnd"
	Message string // formatted line, empty for dir/dirxml/groupEnd
	Extra   []any
	Value   any // raw value for dir/dirxml
}

// CaptureAppender is an in-memory appender that records every call it
// receives. Applications and tests use it to assert on log output
// without touching a real sink.
type CaptureAppender struct {
	mu    sync.Mutex
	calls []CapturedCall
}

var _ Appender = (*CaptureAppender)(nil)

// NewCaptureAppender creates an empty capture appender.
func NewCaptureAppender() *CaptureAppender {
	return &CaptureAppender{}
}

// Calls returns a copy of the recorded calls in arrival order.
func (c *CaptureAppender) Calls() []CapturedCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CapturedCall, len(c.calls))
	copy(out, c.calls)
	return out
}

// Reset discards all recorded calls.
func (c *CaptureAppender) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = nil
}

func (c *CaptureAppender) record(call CapturedCall) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
}

func (c *CaptureAppender) Error(msg string, extra ...any) {
	c.record(CapturedCall{Method: "error", Message: msg, Extra: extra})
}

func (c *CaptureAppender) Warn(msg string, extra ...any) {
	c.record(CapturedCall{Method: "warn", Message: msg, Extra: extra})
}

func (c *CaptureAppender) Info(msg string, extra ...any) {
	c.record(CapturedCall{Method: "info", Message: msg, Extra: extra})
}

func (c *CaptureAppender) Debug(msg string, extra ...any) {
	c.record(CapturedCall{Method: "debug", Message: msg, Extra: extra})
}

func (c *CaptureAppender) Trace(msg string, extra ...any) {
	c.record(CapturedCall{Method: "trace", Message: msg, Extra: extra})
}

func (c *CaptureAppender) Dir(v any) {
	c.record(CapturedCall{Method: "dir", Value: v})
}

func (c *CaptureAppender) Dirxml(v any) {
	c.record(CapturedCall{Method: "dirxml", Value: v})
}

func (c *CaptureAppender) Group(msg string, extra ...any) {
	c.record(CapturedCall{Method: "group", Message: msg, Extra: extra})
}

func (c *CaptureAppender) GroupEnd() {
	c.record(CapturedCall{Method: "groupEnd"})
}
