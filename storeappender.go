package yalog

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/T-Systems-MMS/yalog4ts/store"
)

const (
	// logStoreKey is the storage key of the rotating log blob.
	logStoreKey = "yalog.log"

	// logCapacity bounds the rotating log; the oldest entry is evicted
	// before a new one is appended.
	logCapacity = 200
)

// timeNow is swapped in tests.
var timeNow = time.Now

// StoreAppender persists every log call as a rotating, capped sequence
// of entries in a key-value store and replays them on demand. Entries
// hold a timestamp-prefixed rendering of the primary value followed by
// the extra positional values. Group calls have no meaning in a flat
// persisted log and are ignored.
//
// The in-memory entry cache hydrates lazily from the store on first
// use and is written back in full after every call. The read-modify-
// write sequence is not atomic across processes sharing one storage
// key; a single writer is assumed.
type StoreAppender struct {
	mu       sync.Mutex
	st       store.Store
	key      string
	entries  []Entry
	hydrated bool
}

var _ ReplayAppender = (*StoreAppender)(nil)

// NewStoreAppender creates a store appender persisting under the
// default log key.
func NewStoreAppender(st store.Store) *StoreAppender {
	return &StoreAppender{st: st, key: logStoreKey}
}

func (s *StoreAppender) Error(msg string, extra ...any) { s.append(msg, extra) }
func (s *StoreAppender) Warn(msg string, extra ...any)  { s.append(msg, extra) }
func (s *StoreAppender) Info(msg string, extra ...any)  { s.append(msg, extra) }
func (s *StoreAppender) Debug(msg string, extra ...any) { s.append(msg, extra) }
func (s *StoreAppender) Trace(msg string, extra ...any) { s.append(msg, extra) }

func (s *StoreAppender) Dir(v any)    { s.append(fmt.Sprintf("%+v", v), nil) }
func (s *StoreAppender) Dirxml(v any) { s.append(fmt.Sprintf("%+v", v), nil) }

// Group is a no-op; the persisted log is flat.
func (s *StoreAppender) Group(msg string, extra ...any) {}

// GroupEnd is a no-op; the persisted log is flat.
func (s *StoreAppender) GroupEnd() {}

// LastLog returns the persisted entries, oldest first. It reads the
// store fresh on every call instead of trusting the in-memory cache,
// and answers an empty slice when the blob is absent or corrupt.
func (s *StoreAppender) LastLog() []Entry {
	if s.st == nil {
		return []Entry{}
	}
	raw, err := s.st.Get(s.key)
	if err != nil {
		return []Entry{}
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []Entry{}
	}
	return entries
}

func (s *StoreAppender) append(line string, extra []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hydrate()
	if len(s.entries) >= logCapacity {
		s.entries = s.entries[len(s.entries)-logCapacity+1:]
	}
	entry := Entry{timeNow().Format(time.RFC3339) + " " + line}
	entry = append(entry, extra...)
	s.entries = append(s.entries, entry)
	s.flush()
}

// hydrate loads the persisted blob into the cache once. A missing or
// corrupt blob starts an empty log.
func (s *StoreAppender) hydrate() {
	if s.hydrated {
		return
	}
	s.hydrated = true
	if s.st == nil {
		return
	}
	raw, err := s.st.Get(s.key)
	if err != nil {
		return
	}
	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return
	}
	s.entries = entries
}

func (s *StoreAppender) flush() {
	if s.st == nil {
		return
	}
	b, err := json.Marshal(s.entries)
	if err != nil {
		return
	}
	_ = s.st.Set(s.key, string(b))
}
