package pathcache

import (
	"container/heap"
	"fmt"
)

// rankItem orders live slots by hit count.
type rankItem struct {
	slot int
	hits int
}

// rankPQ is a heap of rankItem. With desc unset it pops the lowest hit count
// first; with desc set, the highest. Ties always pop the lower slot index first.
type rankPQ struct {
	items []rankItem
	desc  bool
}

func (pq *rankPQ) Len() int { return len(pq.items) }
func (pq *rankPQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.hits != b.hits {
		if pq.desc {
			return a.hits > b.hits
		}
		return a.hits < b.hits
	}
	return a.slot < b.slot
}
func (pq *rankPQ) Swap(i, j int)       { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }
func (pq *rankPQ) Push(x interface{}) { pq.items = append(pq.items, x.(rankItem)) }
func (pq *rankPQ) Pop() interface{} {
	n := len(pq.items)
	item := pq.items[n-1]
	pq.items = pq.items[:n-1]

	return item
}

// rank heapifies every live slot.
func (t *Table) rank(desc bool) *rankPQ {
	pq := &rankPQ{items: make([]rankItem, 0, t.live), desc: desc}
	for i := range t.slots {
		if t.slots[i].state == Occupied {
			pq.items = append(pq.items, rankItem{slot: i, hits: t.slots[i].hits})
		}
	}
	heap.Init(pq)

	return pq
}

// RemoveLRU tombstones the count live entries with the lowest hit counts.
// Returns ErrBadCount if count is negative or exceeds Len().
func (t *Table) RemoveLRU(count int) error {
	if count < 0 || count > t.live {
		return fmt.Errorf("%w: %d of %d live", ErrBadCount, count, t.live)
	}

	pq := t.rank(false)
	for ; count > 0; count-- {
		item := heap.Pop(pq).(rankItem)
		t.tombstone(item.slot)
		t.logger.Debug("cache evict", "slot", item.slot, "hits", item.hits, "live", t.live)
	}

	return nil
}

// Entries lists live entries in descending hit-count order.
func (t *Table) Entries() []Entry {
	pq := t.rank(true)
	out := make([]Entry, 0, pq.Len())
	for pq.Len() > 0 {
		item := heap.Pop(pq).(rankItem)
		s := &t.slots[item.slot]
		out = append(out, Entry{
			Index:   item.slot,
			Key:     s.key,
			Hits:    s.hits,
			Payload: append([]int(nil), s.payload...),
		})
	}

	return out
}
