// Package store defines the key-value persistence contract used by
// the logging factory and the rotating store appender.
//
// The interface is deliberately small: Get, Set and Remove over flat
// string keys, modeled on web localStorage. The contract is
// synchronous, so none of the methods take a context and none of them
// block on anything cancellable.
//
// # Backends
//
// Each backend lives in its own subpackage and is constructed from an
// Options struct:
//
//   - memory: process-local map, the default choice in tests
//   - file: one file per key inside a directory
//   - redis: Redis strings via redis/go-redis
//   - sqlite: a single kv table via mattn/go-sqlite3
//   - postgres: a single kv table via jackc/pgx
//
// Example:
//
//	st, err := sqlite.NewStore(sqlite.Options{Path: "yalog.db"})
//	if err != nil {
//		// ...
//	}
//	defer st.Close()
//
//	factory := yalog.NewFactory(yalog.Options{Store: st})
//
// # Error Model
//
// Get answers store.ErrNotFound for a missing key; every other error
// is backend-specific and wrapped with context. The logging layer
// downgrades all of them to "absent"; persistence stays best effort.
package store
