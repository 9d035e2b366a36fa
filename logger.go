package yalog

import (
	"fmt"
	"sync"
)

// Logger is a named logger owned by a Factory. It gates every call
// against its effective level and fans passing calls out to the
// appenders the factory configured on it. Loggers are created through
// Factory.GetLogger and live for the lifetime of the factory.
type Logger struct {
	name string

	mu sync.RWMutex
	// level is the local override; LevelInvalid means unset.
	level     Level
	rootLevel Level
	// effective is derived: level when set, rootLevel otherwise.
	effective Level
	appenders []Appender
}

// Name returns the logger identity.
func (l *Logger) Name() string {
	return l.name
}

// Level returns the local override, or LevelInvalid when none is set.
func (l *Logger) Level() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// RootLevel returns the inherited factory-wide level.
func (l *Logger) RootLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rootLevel
}

// EffectiveLevel returns the threshold actually gating this logger.
func (l *Logger) EffectiveLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.effective
}

// setLevel assigns the local override; LevelInvalid clears it.
func (l *Logger) setLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.recompute()
}

func (l *Logger) setRootLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rootLevel = level
	l.recompute()
}

func (l *Logger) setAppenders(appenders []Appender) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.appenders = appenders
}

// recompute derives the effective level. Called with the lock held on
// every write to level or rootLevel; a set override wins regardless of
// whether it is more or less verbose than the root.
func (l *Logger) recompute() {
	if l.level.Valid() {
		l.effective = l.level
	} else {
		l.effective = l.rootLevel
	}
}

// Error logs at ERROR severity.
func (l *Logger) Error(msg any, extra ...any) {
	l.emit(LevelError, msg, extra)
}

// Warn logs at WARN severity.
func (l *Logger) Warn(msg any, extra ...any) {
	l.emit(LevelWarn, msg, extra)
}

// Info logs at INFO severity.
func (l *Logger) Info(msg any, extra ...any) {
	l.emit(LevelInfo, msg, extra)
}

// Debug logs at DEBUG severity.
func (l *Logger) Debug(msg any, extra ...any) {
	l.emit(LevelDebug, msg, extra)
}

// Trace logs at TRACE severity.
func (l *Logger) Trace(msg any, extra ...any) {
	l.emit(LevelTrace, msg, extra)
}

// Dir hands a structured value to every appender's native inspector.
// It gates at DEBUG and forwards the value unformatted.
func (l *Logger) Dir(v any) {
	passed, appenders := l.gate(LevelDebug)
	if !passed {
		return
	}
	for _, a := range appenders {
		a.Dir(v)
	}
}

// Dirxml hands a markup-like value to every appender unformatted,
// gated at DEBUG.
func (l *Logger) Dirxml(v any) {
	passed, appenders := l.gate(LevelDebug)
	if !passed {
		return
	}
	for _, a := range appenders {
		a.Dirxml(v)
	}
}

// Group opens an output group on every appender, gated at DEBUG.
func (l *Logger) Group(msg any, extra ...any) {
	passed, appenders := l.gate(LevelDebug)
	if !passed {
		return
	}
	line := l.format(LevelDebug, msg)
	for _, a := range appenders {
		a.Group(line, extra...)
	}
}

// GroupEnd closes the current output group, gated at DEBUG.
func (l *Logger) GroupEnd() {
	passed, appenders := l.gate(LevelDebug)
	if !passed {
		return
	}
	for _, a := range appenders {
		a.GroupEnd()
	}
}

// gate answers whether a call of the given severity passes the
// effective threshold, together with the appender snapshot to use.
func (l *Logger) gate(required Level) (bool, []Appender) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if required > l.effective {
		return false, nil
	}
	return true, l.appenders
}

func (l *Logger) format(level Level, msg any) string {
	return fmt.Sprintf("[%s] - %s: %v", level, l.name, msg)
}

// emit formats the message and fans it out in appender order. Dispatch
// is synchronous; appenders are trusted, so a panicking appender
// propagates to the caller.
func (l *Logger) emit(level Level, msg any, extra []any) {
	passed, appenders := l.gate(level)
	if !passed {
		return
	}
	line := l.format(level, msg)
	for _, a := range appenders {
		switch level {
		case LevelError:
			a.Error(line, extra...)
		case LevelWarn:
			a.Warn(line, extra...)
		case LevelInfo:
			a.Info(line, extra...)
		case LevelDebug:
			a.Debug(line, extra...)
		case LevelTrace:
			a.Trace(line, extra...)
		}
	}
}
