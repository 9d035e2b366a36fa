package yalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(name string, root Level, appenders ...Appender) *Logger {
	l := &Logger{
		name:      name,
		level:     LevelInvalid,
		rootLevel: root,
		appenders: appenders,
	}
	l.recompute()
	return l
}

func TestLogger_EffectiveLevelPrecedence(t *testing.T) {
	cap := NewCaptureAppender()
	l := newTestLogger("svc", LevelWarn, cap)

	// No override: root gates.
	l.Trace("hidden")
	l.Warn("shown")
	calls := cap.Calls()
	assert.Len(t, calls, 1)
	assert.Equal(t, "warn", calls[0].Method)

	// Local override wins, even when more verbose than root.
	cap.Reset()
	l.setLevel(LevelTrace)
	assert.Equal(t, LevelTrace, l.EffectiveLevel())
	assert.Equal(t, LevelWarn, l.RootLevel(), "root untouched by override")
	l.Trace("now shown")
	assert.Len(t, cap.Calls(), 1)

	// Clearing the override restores suppression.
	cap.Reset()
	l.setLevel(LevelInvalid)
	assert.Equal(t, LevelWarn, l.EffectiveLevel())
	l.Trace("hidden again")
	assert.Empty(t, cap.Calls())
}

func TestLogger_OverrideLessVerboseThanRoot(t *testing.T) {
	cap := NewCaptureAppender()
	l := newTestLogger("svc", LevelTrace, cap)
	l.setLevel(LevelError)

	l.Info("suppressed by the override")
	assert.Empty(t, cap.Calls())
}

func TestLogger_RootChangeRecomputes(t *testing.T) {
	l := newTestLogger("svc", LevelWarn)
	l.setRootLevel(LevelDebug)
	assert.Equal(t, LevelDebug, l.EffectiveLevel())

	l.setLevel(LevelError)
	l.setRootLevel(LevelTrace)
	assert.Equal(t, LevelError, l.EffectiveLevel(), "override still wins")
}

func TestLogger_FormatAndFanOut(t *testing.T) {
	first := NewCaptureAppender()
	second := NewCaptureAppender()
	l := newTestLogger("billing", LevelInfo, first, second)

	l.Info("invoice sent", 42, "retry")

	for _, cap := range []*CaptureAppender{first, second} {
		calls := cap.Calls()
		assert.Len(t, calls, 1)
		assert.Equal(t, "info", calls[0].Method)
		assert.Equal(t, "[INFO] - billing: invoice sent", calls[0].Message)
		assert.Equal(t, []any{42, "retry"}, calls[0].Extra)
	}
}

func TestLogger_SeverityMethodsMapToAppenderMethods(t *testing.T) {
	cap := NewCaptureAppender()
	l := newTestLogger("svc", LevelTrace, cap)

	l.Error("e")
	l.Warn("w")
	l.Info("i")
	l.Debug("d")
	l.Trace("t")

	calls := cap.Calls()
	assert.Len(t, calls, 5)
	methods := make([]string, len(calls))
	for i, c := range calls {
		methods[i] = c.Method
	}
	assert.Equal(t, []string{"error", "warn", "info", "debug", "trace"}, methods)
	assert.Equal(t, "[ERROR] - svc: e", calls[0].Message)
	assert.Equal(t, "[TRACE] - svc: t", calls[4].Message)
}

func TestLogger_DirForwardsRawValue(t *testing.T) {
	cap := NewCaptureAppender()
	l := newTestLogger("svc", LevelDebug, cap)

	payload := &struct{ A int }{A: 7}
	l.Dir(payload)
	l.Dirxml(payload)

	calls := cap.Calls()
	assert.Len(t, calls, 2)
	assert.Equal(t, "dir", calls[0].Method)
	assert.Same(t, payload, calls[0].Value, "value forwarded unformatted")
	assert.Equal(t, "dirxml", calls[1].Method)
	assert.Same(t, payload, calls[1].Value)
}

func TestLogger_DirGatesAtDebug(t *testing.T) {
	cap := NewCaptureAppender()
	l := newTestLogger("svc", LevelInfo, cap)

	l.Dir("nope")
	l.Dirxml("nope")
	assert.Empty(t, cap.Calls())
}

func TestLogger_GroupGatesAtDebug(t *testing.T) {
	cap := NewCaptureAppender()
	l := newTestLogger("svc", LevelInfo, cap)

	l.Group("hidden")
	l.GroupEnd()
	assert.Empty(t, cap.Calls())

	l.setLevel(LevelDebug)
	l.Group("batch")
	l.GroupEnd()
	calls := cap.Calls()
	assert.Len(t, calls, 2)
	assert.Equal(t, "group", calls[0].Method)
	assert.Equal(t, "[DEBUG] - svc: batch", calls[0].Message)
	assert.Equal(t, "groupEnd", calls[1].Method)
}

func TestLogger_NonStringMessage(t *testing.T) {
	cap := NewCaptureAppender()
	l := newTestLogger("svc", LevelError, cap)

	l.Error(404)
	calls := cap.Calls()
	assert.Len(t, calls, 1)
	assert.Equal(t, "[ERROR] - svc: 404", calls[0].Message)
}
