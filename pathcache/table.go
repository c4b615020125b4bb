// File: table.go
// Role: Table construction and the keyed operations Insert/Find/Remove/Invalidate/MostUsed.
//
// Probing:
//   - Slot q_i = (h + i²) mod capacity for i = 0, 1, ..., capacity-1.
//   - Probing stops at the first Empty slot; Tombstones are passed over.
//   - The probe length is bounded by capacity, so non-prime tables terminate.
//
// Load factor:
//   - A new key is refused once Len() >= capacity/2.

package pathcache

import (
	"fmt"
	"log/slog"
)

// Table is a fixed-capacity open-addressing hash table of integer sequences
// keyed by (first element, last element, cost mode).
//
// Each live entry carries a hit counter used as its LRU rank: higher means
// more recently or more frequently used. Table does no locking.
type Table struct {
	slots  []slot
	live   int
	hash   HashFunc
	logger *slog.Logger
}

// New creates a Table with the given capacity.
// A prime capacity is recommended; New accepts any capacity ≥ 2.
func New(capacity int, opts ...Option) (*Table, error) {
	if capacity < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	t := &Table{
		slots:  make([]slot, capacity),
		hash:   PrimeHash,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	if !IsPrime(capacity) {
		t.logger.Warn("non-prime cache capacity limits probe coverage",
			"capacity", capacity, "suggested", NextPrime(capacity))
	}

	return t, nil
}

// Cap returns the fixed slot count.
func (t *Table) Cap() int { return len(t.slots) }

// Len returns the number of live entries.
func (t *Table) Len() int { return t.live }

// Threshold is the live-entry ceiling for new keys (capacity/2).
func (t *Table) Threshold() int { return len(t.slots) / 2 }

// home returns the first probe position of k.
func (t *Table) home(k Key) int {
	return int(t.hash(k) % uint64(len(t.slots)))
}

// probe returns the i-th probe position from home h.
func (t *Table) probe(h, i int) int {
	n := uint64(len(t.slots))
	return int((uint64(h) + uint64(i)*uint64(i)) % n)
}

// lookup walks the probe sequence of k. It returns the slot holding k (or -1)
// and the first reusable slot seen before the walk ended (or -1).
func (t *Table) lookup(k Key) (found, free int) {
	found, free = -1, -1
	h := t.home(k)
	for i := 0; i < len(t.slots); i++ {
		q := t.probe(h, i)
		s := &t.slots[q]
		switch s.state {
		case Empty:
			if free == -1 {
				free = q
			}
			return found, free
		case Tombstone:
			if free == -1 {
				free = q
			}
		case Occupied:
			if s.key == k {
				return q, free
			}
		}
	}

	return found, free
}

// Insert caches seq under (seq[0], seq[len-1], costMode).
//
// Returns:
//   - prevHits: the hit count before this call when the key was already
//     cached (always ≥ 1); 0 for a fresh insert.
//   - fresh: true iff a new entry was stored.
//   - err: ErrEmptySequence, or ErrCapacityExceeded for a new key when the
//     table is at its load ceiling or no free slot lies on the probe path.
//
// A hit increments the entry's hit count and leaves its payload unchanged.
func (t *Table) Insert(seq []int, costMode bool) (prevHits int, fresh bool, err error) {
	if len(seq) == 0 {
		return 0, false, ErrEmptySequence
	}
	k := KeyOf(seq, costMode)

	found, free := t.lookup(k)
	if found >= 0 {
		s := &t.slots[found]
		prevHits = s.hits
		s.hits++
		t.logger.Debug("cache hit on insert", "slot", found, "start", k.Start, "end", k.End, "hits", s.hits)
		return prevHits, false, nil
	}

	if t.live >= t.Threshold() {
		return 0, false, fmt.Errorf("%w: %d live entries, ceiling %d", ErrCapacityExceeded, t.live, t.Threshold())
	}
	if free < 0 {
		return 0, false, fmt.Errorf("%w: no free slot on probe path of (%d,%d,%t)", ErrCapacityExceeded, k.Start, k.End, k.CostMode)
	}

	t.slots[free] = slot{
		state:   Occupied,
		key:     k,
		payload: append([]int(nil), seq...),
		hits:    1,
	}
	t.live++
	t.logger.Debug("cache insert", "slot", free, "start", k.Start, "end", k.End, "cost_mode", costMode, "live", t.live)

	return 0, true, nil
}

// Find returns a copy of the payload cached under the key.
// If bump is true, the entry's hit count is incremented.
func (t *Table) Find(start, end int, costMode bool, bump bool) ([]int, bool) {
	found, _ := t.lookup(Key{Start: start, End: end, CostMode: costMode})
	if found < 0 {
		return nil, false
	}
	s := &t.slots[found]
	if bump {
		s.hits++
	}

	return append([]int(nil), s.payload...), true
}

// Remove tombstones the entry cached under the key and returns its payload.
func (t *Table) Remove(start, end int, costMode bool) ([]int, bool) {
	found, _ := t.lookup(Key{Start: start, End: end, CostMode: costMode})
	if found < 0 {
		return nil, false
	}
	payload := t.tombstone(found)
	t.logger.Debug("cache remove", "slot", found, "start", start, "end", end, "live", t.live)

	return payload, true
}

// tombstone marks slot i removed and returns its payload.
func (t *Table) tombstone(i int) []int {
	s := &t.slots[i]
	payload := s.payload
	s.state = Tombstone
	s.payload = nil
	s.hits = 0
	t.live--

	return payload
}

// Invalidate resets every slot to Empty, discarding entries and tombstones.
func (t *Table) Invalidate() {
	for i := range t.slots {
		t.slots[i] = slot{}
	}
	t.live = 0
	t.logger.Debug("cache invalidated", "capacity", len(t.slots))
}

// MostUsed returns a copy of the payload with the highest hit count.
// Ties go to the lowest slot index. Reports false on an empty table.
func (t *Table) MostUsed() ([]int, bool) {
	best := -1
	for i := range t.slots {
		s := &t.slots[i]
		if s.state != Occupied {
			continue
		}
		if best == -1 || s.hits > t.slots[best].hits {
			best = i
		}
	}
	if best == -1 {
		return nil, false
	}

	return append([]int(nil), t.slots[best].payload...), true
}

// Slots returns a snapshot of every cell in index order.
func (t *Table) Slots() []Slot {
	out := make([]Slot, len(t.slots))
	for i := range t.slots {
		s := &t.slots[i]
		out[i] = Slot{
			Index:   i,
			State:   s.state,
			Key:     s.key,
			Hits:    s.hits,
			Payload: append([]int(nil), s.payload...),
		}
	}

	return out
}

// Stats counts slots per state.
func (t *Table) Stats() Stats {
	st := Stats{Capacity: len(t.slots), Live: t.live}
	for i := range t.slots {
		switch t.slots[i].state {
		case Tombstone:
			st.Tombstones++
		case Empty:
			st.Empty++
		}
	}

	return st
}

// Tombstones returns the number of tombstoned slots.
func (t *Table) Tombstones() int { return t.Stats().Tombstones }
