package yalog

import (
	"strconv"
	"strings"
)

// Level represents logging severity. The numeric value encodes
// verbosity: a higher value permits more output.
type Level int

const (
	// LevelOff disables all logging
	LevelOff Level = iota
	// LevelError permits error messages only
	LevelError
	// LevelWarn permits error and warning messages
	LevelWarn
	// LevelInfo permits error, warning and informational messages
	LevelInfo
	// LevelDebug additionally permits debug, dir and group output
	LevelDebug
	// LevelTrace permits everything
	LevelTrace
)

// LevelInvalid marks level input that did not normalize. It is never a
// valid threshold; callers treat it as "absent".
const LevelInvalid Level = -1

var levelNames = [...]string{"OFF", "ERROR", "WARN", "INFO", "DEBUG", "TRACE"}

// String returns the canonical level name.
func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return "INVALID"
}

// Valid reports whether l is one of the six canonical levels.
func (l Level) Valid() bool {
	return l >= LevelOff && l <= LevelTrace
}

// NormalizeLevel converts heterogeneous level input to a canonical
// Level. It accepts a Level value, a level name (case-insensitive) or
// a numeric code, and returns LevelInvalid for everything else:
// unknown names, out-of-range numbers, numeric strings, fractional
// floats and nil. It never panics; it is the single gate for every
// external level input.
func NormalizeLevel(v any) Level {
	switch x := v.(type) {
	case Level:
		if x.Valid() {
			return x
		}
	case int:
		if l := Level(x); l.Valid() {
			return l
		}
	case int32:
		if l := Level(x); l.Valid() {
			return l
		}
	case int64:
		if l := Level(x); l.Valid() {
			return l
		}
	case float64:
		// JSON numbers decode as float64; accept integral values only.
		if x == float64(int(x)) {
			if l := Level(int(x)); l.Valid() {
				return l
			}
		}
	case string:
		// Level names only - a numeric string is not a name.
		if _, err := strconv.ParseFloat(x, 64); err == nil {
			return LevelInvalid
		}
		name := strings.ToUpper(strings.TrimSpace(x))
		for i, n := range levelNames {
			if n == name {
				return Level(i)
			}
		}
	}
	return LevelInvalid
}
