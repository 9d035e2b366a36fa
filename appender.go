package yalog

// Appender is the sink interface every log output implements. Loggers
// gate and format messages, then fan the call out to each configured
// appender. The five severity methods receive the formatted line plus
// any extra positional values unchanged; Dir and Dirxml receive the
// raw value so a sink can hand it to a native inspector; Group and
// GroupEnd bracket related output on sinks that support grouping.
//
// Appenders are trusted collaborators: the logger does not recover
// from a panicking appender.
type Appender interface {
	Error(msg string, extra ...any)
	Warn(msg string, extra ...any)
	Info(msg string, extra ...any)
	Debug(msg string, extra ...any)
	Trace(msg string, extra ...any)

	// Dir hands a structured value to the sink unformatted.
	Dir(v any)
	// Dirxml hands a markup-like value to the sink unformatted.
	Dirxml(v any)

	Group(msg string, extra ...any)
	GroupEnd()
}

// ReplayAppender is implemented by appenders that retain their history
// and can replay it. Callers discover the capability with an interface
// assertion on an Appender.
type ReplayAppender interface {
	Appender

	// LastLog returns the retained entries, oldest first. It reads the
	// backing store fresh and returns an empty slice when the store is
	// absent or its contents do not parse.
	LastLog() []Entry
}

// Entry is one retained log record: the formatted (timestamp-prefixed)
// line first, any extra positional values after it. It serializes as a
// JSON array.
type Entry []any

// Line returns the formatted line of the entry, or "" for a malformed
// entry.
func (e Entry) Line() string {
	if len(e) == 0 {
		return ""
	}
	s, _ := e[0].(string)
	return s
}
