package store

import "errors"

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("store: key not found")

// Store is a synchronous string key-value store, the persistence
// collaborator of the logging factory. It mirrors the contract of a
// browser's localStorage: flat string keys, string values, no
// transactions, no expiry. Operations run to completion before
// returning and are not cancellable, which is why the interface
// carries no context; backends that need one internally hold a
// background context.
//
// Callers in this module treat every Get failure as "absent" and
// ignore Set failures - a broken store degrades the system to
// non-persistent operation rather than breaking logging.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
}
