// Package pathcache memoizes integer sequences, typically encoded paths,
// in a fixed-capacity open-addressing hash table.
//
// Keys are (first element, last element, cost mode). Collisions resolve by
// quadratic probing, q_i = (h + i²) mod capacity. Removal leaves a Tombstone
// so later keys on the same probe chain stay reachable; Invalidate wipes
// everything back to Empty.
//
// Every live entry carries a hit counter: 1 on insert, +1 for each repeat
// Insert or bumped Find. RemoveLRU evicts the lowest counters first and
// Entries lists them highest first.
//
// Load factor:
//
//	A new key is refused with ErrCapacityExceeded once Len() reaches
//	Cap()/2. Combined with a prime capacity this guarantees quadratic probing
//	finds a free slot. Non-prime capacities are accepted but probing is
//	bounded to Cap() steps, so a full probe path also yields
//	ErrCapacityExceeded instead of looping.
//
// Hashing:
//
//	PrimeHash (default) is the linear combination
//	102523*start + 100907*end + 104659*flag. XXHash is a well-distributed
//	alternative; select it with WithHasher(XXHash).
//
// Insert return convention:
//
//	Insert reports fresh=true with prevHits=0 for a new entry, and
//	fresh=false with the pre-increment hit count (≥ 1) for a repeat.
//
// Concurrency:
//
//	Table does no locking. Callers serialize all access.
package pathcache
