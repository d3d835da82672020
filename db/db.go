// Package db defines the Example DB interface (spec.md §4.9) and its
// default file-backed implementation. The DB is the only externally
// visible shared resource in the engine (spec.md §5): readers must
// tolerate concurrent writers by treating malformed entries as absent,
// and writes must be atomic with respect to concurrent readers.
package db

import "github.com/lucaskalb/choicex/choice"

// DB maps a stable textual key (normally a property's identifier) to
// the Attempt last persisted under it.
type DB interface {
	// List returns every key currently stored.
	List() ([]string, error)
	// Put persists a copy of a under key, atomically with respect to
	// concurrent readers.
	Put(key string, a choice.Attempt) error
	// Get returns the Attempt stored under key, or ok=false if there is
	// none (including when the stored entry is corrupted).
	Get(key string) (a choice.Attempt, ok bool, err error)
	// Delete removes any entry stored under key. Deleting an absent key
	// is not an error, matching cmd/choicexctl's "clear" command, which
	// must succeed whether or not a failure was ever recorded.
	Delete(key string) error
}
