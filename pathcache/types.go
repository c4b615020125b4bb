// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Slot states, public snapshots, sentinel errors and options.

package pathcache

import (
	"errors"
	"log/slog"
)

// Sentinel errors returned by Table.
var (
	// ErrBadCapacity indicates a capacity too small to hold any entry.
	ErrBadCapacity = errors.New("pathcache: capacity must be at least 2")

	// ErrEmptySequence indicates Insert was called with an empty sequence.
	ErrEmptySequence = errors.New("pathcache: sequence is empty")

	// ErrCapacityExceeded indicates a new key could not be stored because
	// live entries already reached half the capacity, or the probe sequence
	// found no free slot.
	ErrCapacityExceeded = errors.New("pathcache: table capacity exceeded")

	// ErrBadCount indicates a RemoveLRU count outside [0, Len()].
	ErrBadCount = errors.New("pathcache: eviction count out of range")
)

// State is the lifecycle state of a slot.
type State uint8

const (
	// Empty slots were never used since construction or the last Invalidate.
	Empty State = iota
	// Occupied slots hold a live entry.
	Occupied
	// Tombstone slots held an entry that was removed; probes pass over them.
	Tombstone
)

// String returns the upper-case state label.
func (s State) String() string {
	switch s {
	case Empty:
		return "EMPTY"
	case Occupied:
		return "OCCUPIED"
	case Tombstone:
		return "TOMBSTONE"
	default:
		return "UNKNOWN"
	}
}

// Key identifies a cached sequence: its first and last element plus the
// cost mode it was computed under.
type Key struct {
	Start    int
	End      int
	CostMode bool
}

// KeyOf derives the key of a non-empty sequence.
func KeyOf(seq []int, costMode bool) Key {
	return Key{Start: seq[0], End: seq[len(seq)-1], CostMode: costMode}
}

// slot is the internal storage cell.
type slot struct {
	state   State
	key     Key
	payload []int
	hits    int
}

// Slot is a read-only snapshot of one table cell.
type Slot struct {
	Index   int
	State   State
	Key     Key
	Hits    int
	Payload []int
}

// Entry is a live entry as reported by Entries.
type Entry struct {
	Index   int
	Key     Key
	Hits    int
	Payload []int
}

// Stats summarizes slot occupancy.
type Stats struct {
	Capacity   int
	Live       int
	Tombstones int
	Empty      int
}

// Option configures a Table.
type Option func(*Table)

// WithHasher replaces the default PrimeHash.
func WithHasher(h HashFunc) Option {
	return func(t *Table) {
		if h != nil {
			t.hash = h
		}
	}
}

// WithLogger routes debug-level cache events to l.
func WithLogger(l *slog.Logger) Option {
	return func(t *Table) {
		if l != nil {
			t.logger = l
		}
	}
}
