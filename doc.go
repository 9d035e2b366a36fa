// yalog4ts - Leveled Logging with Persistent Configuration
//
// yalog4ts is a leveled logging facility built around three ideas:
// named loggers obtained from a factory, pluggable appenders that
// decide where formatted messages go, and a configuration registry
// whose state survives restarts through a small key-value store.
//
// # Quick Start
//
// Install the package:
//
//	go get github.com/T-Systems-MMS/yalog4ts
//
// Basic example:
//
//	package main
//
//	import yalog "github.com/T-Systems-MMS/yalog4ts"
//
//	func main() {
//		factory := yalog.NewFactory(yalog.Options{RootLevel: "INFO"})
//
//		log := factory.GetLogger("checkout")
//		log.Info("order accepted")
//		log.Debug("not printed, root level is INFO")
//
//		// Raise verbosity for every checkout* logger at runtime.
//		factory.SetLogLevel("checkout*", "DEBUG")
//	}
//
// # Levels
//
// Severity is an ordered enumeration, least to most verbose:
//
//	OFF < ERROR < WARN < INFO < DEBUG < TRACE
//
// Every logger gates against one effective level: its own override if
// one is set, otherwise the factory-wide root level. NormalizeLevel is
// the single entry point for level input from any source - it accepts
// canonical Level values, level names, or numeric codes, and answers
// LevelInvalid for everything else instead of failing.
//
// # Appenders
//
// An Appender is a sink for already-gated, already-formatted calls.
// The factory registers a console appender (backed by kataras/golog)
// under the key "console" and activates it at construction. Additional
// appenders are registered by key, either as ready instances or as
// producers invoked per activation:
//
//	factory.RegisterAppenderFactory("storage", func() yalog.Appender {
//		return yalog.NewStoreAppender(st)
//	})
//	factory.SetLogAppenders("console", "storage")
//
// StoreAppender keeps the most recent 200 formatted entries in the
// configured store, rotating FIFO, and replays them through LastLog.
//
// # Persistence
//
// When Options.Store is set, the factory writes its level overrides
// and active appender keys after every reconfiguration and restores
// them at construction. Store backends live in the store subpackages:
//
//   - store/memory: map-backed, for tests and ephemeral use
//   - store/file: one file per key in a directory
//   - store/redis: Redis via redis/go-redis
//   - store/sqlite: SQLite via mattn/go-sqlite3
//   - store/postgres: PostgreSQL via jackc/pgx
//
// Without a store the factory runs console-only and non-persistent;
// that is a supported mode, not an error.
//
// # Runtime Reconfiguration
//
// The factory exposes the knobs a runtime command surface needs:
// SetLogLevel with a name pattern ("*" wildcard) or a positional
// index, SetLogAppenders, SetRootLevel, ListLoggers, LastLog and
// Clear. The selector-driven calls answer a descriptive message
// instead of failing, and invalid input never mutates state.
//
// See the examples directory for runnable programs.
package yalog // import "github.com/T-Systems-MMS/yalog4ts"
