package yalog

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/kataras/golog"

	"github.com/T-Systems-MMS/yalog4ts/store"
)

const (
	// DefaultRootLevel gates loggers without an override when nothing
	// else is configured.
	DefaultRootLevel = LevelError

	// DefaultLoggerName is handed out when GetLogger receives an
	// unusable name.
	DefaultLoggerName = "default"

	// rootLevelKey is the stored-override sentinel for the root level.
	rootLevelKey = "__root"

	// configStoreKey is the storage key of the persisted configuration
	// record.
	configStoreKey = "yalog.config"
)

// Options configures a Factory.
type Options struct {
	// Store persists configuration and feeds persistent appenders.
	// Nil runs the factory console-only and non-persistent.
	Store store.Store

	// RootLevel overrides the default root level before any persisted
	// configuration is restored. Accepts anything NormalizeLevel does;
	// invalid input is ignored.
	RootLevel any

	// Quiet suppresses the informational boot notice.
	Quiet bool

	// ConsoleWriter redirects the built-in console appender, stderr by
	// default.
	ConsoleWriter io.Writer

	// OnError receives reports about invalid input that was degraded
	// rather than rejected, e.g. an empty logger name. Defaults to the
	// golog default logger.
	OnError func(error)
}

// registeredAppender is a catalog entry: either a ready instance or a
// zero-argument producer, never both.
type registeredAppender struct {
	instance Appender
	producer func() Appender
}

// persistedConfig is the durable representation of the factory state.
type persistedConfig struct {
	Levels    map[string]string `json:"levels"`
	Appenders []string          `json:"appenders"`
}

// Factory owns the logger cache, the level overrides, the active
// appender set and the persistence round trip. Each factory is an
// independent instance; create one per process (or per test) instead
// of relying on package-level state.
type Factory struct {
	mu      sync.Mutex
	st      store.Store
	onError func(error)

	rootLevel    Level
	storedLevels map[string]Level

	loggers map[string]*Logger
	order   []string // creation order, the index space of SetLogLevel

	active      map[string]Appender
	activeOrder []string
	registered  map[string]registeredAppender
}

// NewFactory creates a factory, registers and activates the console
// appender, applies the configured root level and restores any
// persisted configuration.
func NewFactory(opts Options) *Factory {
	f := &Factory{
		st:           opts.Store,
		onError:      opts.OnError,
		rootLevel:    DefaultRootLevel,
		storedLevels: map[string]Level{rootLevelKey: DefaultRootLevel},
		loggers:      make(map[string]*Logger),
		active:       make(map[string]Appender),
		registered:   make(map[string]registeredAppender),
	}
	if f.onError == nil {
		f.onError = func(err error) { golog.Default.Error(err) }
	}

	// The console appender is always registered and starts as the sole
	// active sink, so something works before stored state is consulted.
	console := newConsoleAppender(opts.ConsoleWriter)
	f.registered[ConsoleAppenderKey] = registeredAppender{instance: console}
	f.active[ConsoleAppenderKey] = console
	f.activeOrder = []string{ConsoleAppenderKey}

	if opts.RootLevel != nil {
		if lv := NormalizeLevel(opts.RootLevel); lv.Valid() {
			f.rootLevel = lv
			f.storedLevels[rootLevelKey] = lv
		}
	}

	f.restoreConfig()

	if !opts.Quiet {
		console.Info(fmt.Sprintf("[INFO] - yalog: logging ready (root level %s)", f.rootLevel))
	}
	return f
}

// GetLogger returns the cached logger with the given name, creating it
// on first use. An empty name is degraded to DefaultLoggerName and
// reported through OnError; the call still returns a usable logger.
func (f *Factory) GetLogger(name string) *Logger {
	if strings.TrimSpace(name) == "" {
		f.onError(fmt.Errorf("yalog: invalid logger name %q, using %q", name, DefaultLoggerName))
		name = DefaultLoggerName
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if l, ok := f.loggers[name]; ok {
		return l
	}

	level := LevelInvalid
	if lv, ok := f.storedLevels[name]; ok {
		level = lv
	}
	l := &Logger{
		name:      name,
		level:     level,
		rootLevel: f.rootLevel,
		appenders: f.appenderSnapshot(),
	}
	l.recompute()
	f.loggers[name] = l
	f.order = append(f.order, name)
	return l
}

// SetLogLevel changes the level of the loggers matched by selector and
// records the override durably. A string selector is a name pattern
// where "*" matches anything; an int selector addresses one logger by
// its creation index. The returned message describes what happened; no
// match and invalid input leave all state unchanged.
func (f *Factory) SetLogLevel(selector any, level any) string {
	lv := NormalizeLevel(level)
	if !lv.Valid() {
		return fmt.Sprintf("cannot set log level: %v is not a valid level", level)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch sel := selector.(type) {
	case string:
		// Only "*" is pattern syntax; everything else matches literally.
		pattern := strings.ReplaceAll(regexp.QuoteMeta(sel), `\*`, ".*")
		re, err := regexp.Compile("^" + pattern + "$")
		if err != nil {
			return fmt.Sprintf("cannot set log level: invalid name pattern %q", sel)
		}
		var matched []string
		for _, name := range f.order {
			if re.MatchString(name) {
				f.loggers[name].setLevel(lv)
				f.storedLevels[name] = lv
				matched = append(matched, name)
			}
		}
		if len(matched) == 0 {
			return fmt.Sprintf("no loggers matching %q", sel)
		}
		f.storeConfig()
		return fmt.Sprintf("set level %s for %d logger(s): %s", lv, len(matched), strings.Join(matched, ", "))
	case int:
		if sel < 0 || sel >= len(f.order) {
			return fmt.Sprintf("no logger at index %d", sel)
		}
		name := f.order[sel]
		f.loggers[name].setLevel(lv)
		f.storedLevels[name] = lv
		f.storeConfig()
		return fmt.Sprintf("set level %s for logger %q at index %d", lv, name, sel)
	default:
		return fmt.Sprintf("cannot set log level: unsupported selector type %T", selector)
	}
}

// SetLogAppenders replaces the active appender set with the given
// catalog keys. Unknown keys are skipped; if none resolve, the active
// set stays untouched and the message names the rejected keys.
func (f *Factory) SetLogAppenders(keys ...string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	resolved := make(map[string]Appender)
	var order []string
	for _, key := range keys {
		if _, dup := resolved[key]; dup {
			continue
		}
		if a, ok := f.getValidAppender(key); ok {
			resolved[key] = a
			order = append(order, key)
		}
	}
	if len(resolved) == 0 {
		return fmt.Sprintf("no registered appenders among: %s", strings.Join(keys, ", "))
	}

	f.active = resolved
	f.activeOrder = order
	snapshot := f.appenderSnapshot()
	for _, name := range f.order {
		f.loggers[name].setAppenders(snapshot)
	}
	f.storeConfig()
	return fmt.Sprintf("active appenders: %s", strings.Join(order, ", "))
}

// SetRootLevel changes the factory-wide root level and propagates it
// to every cached logger. Invalid input is a silent no-op.
func (f *Factory) SetRootLevel(level any) {
	lv := NormalizeLevel(level)
	if !lv.Valid() {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.rootLevel = lv
	f.storedLevels[rootLevelKey] = lv
	for _, name := range f.order {
		f.loggers[name].setRootLevel(lv)
	}
	f.storeConfig()
}

// RootLevel returns the current factory-wide root level.
func (f *Factory) RootLevel() Level {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rootLevel
}

// Clear resets the configuration: root level back to the default, all
// local overrides removed, active appenders emptied. Logger identities
// stay cached, so references held by callers keep working.
func (f *Factory) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.rootLevel = DefaultRootLevel
	f.storedLevels = map[string]Level{rootLevelKey: DefaultRootLevel}
	f.active = make(map[string]Appender)
	f.activeOrder = nil
	for _, name := range f.order {
		l := f.loggers[name]
		l.setLevel(LevelInvalid)
		l.setRootLevel(DefaultRootLevel)
		l.setAppenders(nil)
	}
	f.storeConfig()
}

// ListLoggers renders one line per cached logger in creation order:
// index, name, local level ("unset" without an override) and root
// level. With an empty cache it answers a notice instead.
func (f *Factory) ListLoggers() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.order) == 0 {
		return "no loggers"
	}
	lines := make([]string, 0, len(f.order))
	for i, name := range f.order {
		l := f.loggers[name]
		local := "unset"
		if lv := l.Level(); lv.Valid() {
			local = lv.String()
		}
		lines = append(lines, fmt.Sprintf("%d: %s (level=%s, root=%s)", i, name, local, l.RootLevel()))
	}
	return strings.Join(lines, "\n")
}

// RegisterAppender adds or replaces a catalog entry with a ready
// appender instance.
func (f *Factory) RegisterAppender(key string, a Appender) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered[key] = registeredAppender{instance: a}
}

// RegisterAppenderFactory adds or replaces a catalog entry with a
// producer invoked on every activation, for appenders that need fresh
// per-activation state.
func (f *Factory) RegisterAppenderFactory(key string, producer func() Appender) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered[key] = registeredAppender{producer: producer}
}

// LastLog replays the history of the first replay-capable appender,
// one retained line per row. Active appenders are searched first, then
// the instance-registered catalog entries; producer entries are
// skipped, a history query must not construct appenders. Without a
// replay-capable appender or without retained entries it answers a
// notice.
func (f *Factory) LastLog() string {
	f.mu.Lock()
	var replay ReplayAppender
	for _, key := range f.activeOrder {
		if ra, ok := f.active[key].(ReplayAppender); ok {
			replay = ra
			break
		}
	}
	if replay == nil {
		keys := make([]string, 0, len(f.registered))
		for key := range f.registered {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if ra, ok := f.registered[key].instance.(ReplayAppender); ok {
				replay = ra
				break
			}
		}
	}
	f.mu.Unlock()

	if replay == nil {
		return "no log entries"
	}
	entries := replay.LastLog()
	if len(entries) == 0 {
		return "no log entries"
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Line())
	}
	return strings.Join(lines, "\n")
}

// getValidAppender resolves a catalog key to a usable instance,
// invoking the producer for factory-registered entries. The caller
// holds f.mu.
func (f *Factory) getValidAppender(key string) (Appender, bool) {
	entry, ok := f.registered[key]
	if !ok {
		return nil, false
	}
	if entry.producer != nil {
		return entry.producer(), true
	}
	return entry.instance, true
}

// appenderSnapshot returns the active appenders in activation order.
// The caller holds f.mu.
func (f *Factory) appenderSnapshot() []Appender {
	out := make([]Appender, 0, len(f.activeOrder))
	for _, key := range f.activeOrder {
		out = append(out, f.active[key])
	}
	return out
}

// restoreConfig reads the persisted record and adopts it all or
// nothing: the levels map must contain a valid root entry and at least
// one stored appender key must resolve, otherwise the factory falls
// back to its hard defaults: default root level, no local overrides,
// no active appenders, not even the startup console. A missing or
// unparseable record restores nothing at all and leaves the startup
// state untouched. Individually invalid level entries and unknown
// appender keys are dropped without failing the rest.
func (f *Factory) restoreConfig() {
	if f.st == nil {
		return
	}
	raw, err := f.st.Get(configStoreKey)
	if err != nil {
		return
	}
	var rec persistedConfig
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return
	}

	levels := make(map[string]Level)
	for name, s := range rec.Levels {
		if lv := NormalizeLevel(s); lv.Valid() {
			levels[name] = lv
		}
	}
	apps := make(map[string]Appender)
	var appOrder []string
	for _, key := range rec.Appenders {
		if _, dup := apps[key]; dup {
			continue
		}
		if a, ok := f.getValidAppender(key); ok {
			apps[key] = a
			appOrder = append(appOrder, key)
		}
	}

	root, hasRoot := levels[rootLevelKey]
	if hasRoot && len(apps) > 0 {
		f.storedLevels = levels
		f.rootLevel = root
		f.active = apps
		f.activeOrder = appOrder
	} else {
		// All or nothing: a record that parses but fails adoption wipes
		// the configuration back to the hard defaults, discarding even a
		// valid stored root and the startup appender set.
		f.rootLevel = DefaultRootLevel
		f.storedLevels = map[string]Level{rootLevelKey: DefaultRootLevel}
		f.active = make(map[string]Appender)
		f.activeOrder = nil
	}
	f.refreshLoggers()
}

// storeConfig writes the full configuration as one record. Persistence
// is best effort: without a store, or on a write failure, the factory
// keeps running in memory.
func (f *Factory) storeConfig() {
	if f.st == nil {
		return
	}
	rec := persistedConfig{
		Levels:    make(map[string]string, len(f.storedLevels)),
		Appenders: make([]string, 0, len(f.activeOrder)),
	}
	for name, lv := range f.storedLevels {
		rec.Levels[name] = lv.String()
	}
	rec.Appenders = append(rec.Appenders, f.activeOrder...)

	b, err := json.Marshal(rec)
	if err != nil {
		return
	}
	_ = f.st.Set(configStoreKey, string(b))
}

// refreshLoggers pushes the resolved state into every cached logger so
// none of them observes stale configuration. The caller holds f.mu.
func (f *Factory) refreshLoggers() {
	snapshot := f.appenderSnapshot()
	for _, name := range f.order {
		l := f.loggers[name]
		level := LevelInvalid
		if lv, ok := f.storedLevels[name]; ok {
			level = lv
		}
		l.setLevel(level)
		l.setRootLevel(f.rootLevel)
		l.setAppenders(snapshot)
	}
}
