package pathcache_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hroute/pathcache"
)

type TableSuite struct {
	suite.Suite
}

func (s *TableSuite) newTable(capacity int, opts ...pathcache.Option) *pathcache.Table {
	t, err := pathcache.New(capacity, opts...)
	s.Require().NoError(err)
	return t
}

func (s *TableSuite) TestNewRejectsTinyCapacity() {
	_, err := pathcache.New(1)
	s.Require().ErrorIs(err, pathcache.ErrBadCapacity)
}

func (s *TableSuite) TestInsertEmptySequence() {
	t := s.newTable(11)
	_, _, err := t.Insert(nil, false)
	s.Require().ErrorIs(err, pathcache.ErrEmptySequence)
	s.Require().Equal(0, t.Len())
}

// TestInsertSameKeyTwice: the second insert is a hit returning the count before it.
func (s *TableSuite) TestInsertSameKeyTwice() {
	t := s.newTable(11)

	prev, fresh, err := t.Insert([]int{0, 1, 2}, true)
	s.Require().NoError(err)
	s.Require().True(fresh)
	s.Require().Equal(0, prev)

	// Same (first, last, mode) with a different middle: still the same key.
	prev, fresh, err = t.Insert([]int{0, 7, 2}, true)
	s.Require().NoError(err)
	s.Require().False(fresh)
	s.Require().Equal(1, prev)
	s.Require().Equal(1, t.Len())

	got, ok := t.Find(0, 2, true, false)
	s.Require().True(ok)
	s.Require().Equal([]int{0, 1, 2}, got, "a hit keeps the original payload")

	// Cost mode is part of the key.
	_, fresh, err = t.Insert([]int{0, 1, 2}, false)
	s.Require().NoError(err)
	s.Require().True(fresh)
	s.Require().Equal(2, t.Len())
}

// TestCapacityCeiling: with 8 slots four keys fit and a fifth new key does not.
func (s *TableSuite) TestCapacityCeiling() {
	t := s.newTable(8)
	// PrimeHash homes mod 8 are 3*(start+end+flag): slots 0, 3, 6, 1.
	for start := 0; start < 4; start++ {
		_, fresh, err := t.Insert([]int{start, 0}, false)
		s.Require().NoError(err)
		s.Require().True(fresh)
	}
	s.Require().Equal(4, t.Len())

	_, _, err := t.Insert([]int{4, 0}, false)
	s.Require().ErrorIs(err, pathcache.ErrCapacityExceeded)
	s.Require().Equal(4, t.Len())

	prev, fresh, err := t.Insert([]int{1, 0}, false)
	s.Require().NoError(err, "a hit does not count against the ceiling")
	s.Require().False(fresh)
	s.Require().Equal(1, prev)
}

// TestTombstoneKeepsProbeChain uses three keys sharing home slot 0 in an
// 11-slot table: PrimeHash mod 11 is 3*start + 4*end + 5*flag.
func (s *TableSuite) TestTombstoneKeepsProbeChain() {
	t := s.newTable(11, pathcache.WithHasher(pathcache.PrimeHash))
	a := []int{0, 0}
	b := []int{0, 5, 11}
	c := []int{11, 0}
	for _, seq := range [][]int{a, b, c} {
		_, fresh, err := t.Insert(seq, false)
		s.Require().NoError(err)
		s.Require().True(fresh)
	}
	slots := t.Slots()
	s.Require().Equal(pathcache.Occupied, slots[0].State)
	s.Require().Equal(pathcache.Occupied, slots[1].State)
	s.Require().Equal(pathcache.Occupied, slots[4].State)

	removed, ok := t.Remove(0, 0, false)
	s.Require().True(ok)
	s.Require().Equal(a, removed)
	s.Require().Equal(pathcache.Tombstone, t.Slots()[0].State)
	s.Require().Equal(2, t.Len())
	s.Require().Equal(1, t.Tombstones())

	_, ok = t.Remove(0, 0, false)
	s.Require().False(ok, "removing twice finds nothing")

	got, ok := t.Find(11, 0, false, false)
	s.Require().True(ok, "probe passes over the tombstone")
	s.Require().Equal(c, got)

	// Re-inserting a live key behind the tombstone is a hit, not a duplicate.
	_, fresh, err := t.Insert(b, false)
	s.Require().NoError(err)
	s.Require().False(fresh)
	s.Require().Equal(2, t.Len())

	// A fresh key reuses the tombstone.
	_, fresh, err = t.Insert(a, false)
	s.Require().NoError(err)
	s.Require().True(fresh)
	s.Require().Equal(pathcache.Occupied, t.Slots()[0].State)
	s.Require().Equal(1, t.Slots()[0].Hits)
	s.Require().Equal(0, t.Tombstones())
}

func (s *TableSuite) TestFindBump() {
	t := s.newTable(11)
	_, _, err := t.Insert([]int{3, 4}, false)
	s.Require().NoError(err)

	_, ok := t.Find(3, 4, false, true)
	s.Require().True(ok)
	_, ok = t.Find(3, 4, false, false)
	s.Require().True(ok)

	prev, _, err := t.Insert([]int{3, 4}, false)
	s.Require().NoError(err)
	s.Require().Equal(2, prev, "one bumped find on top of the insert")

	_, ok = t.Find(4, 3, false, false)
	s.Require().False(ok)
}

func (s *TableSuite) TestRemoveLRU() {
	t := s.newTable(11)
	// Hits after setup: [1,9]=1, [2,9]=3, [3,9]=2, [4,9]=4.
	bumps := map[int]int{1: 0, 2: 2, 3: 1, 4: 3}
	for start := 1; start <= 4; start++ {
		_, _, err := t.Insert([]int{start, 9}, false)
		s.Require().NoError(err)
		for i := 0; i < bumps[start]; i++ {
			_, ok := t.Find(start, 9, false, true)
			s.Require().True(ok)
		}
	}

	s.Require().ErrorIs(t.RemoveLRU(5), pathcache.ErrBadCount)
	s.Require().ErrorIs(t.RemoveLRU(-1), pathcache.ErrBadCount)

	s.Require().NoError(t.RemoveLRU(2))
	s.Require().Equal(2, t.Len())
	s.Require().Equal(2, t.Tombstones())

	_, ok := t.Find(1, 9, false, false)
	s.Require().False(ok)
	_, ok = t.Find(3, 9, false, false)
	s.Require().False(ok)
	_, ok = t.Find(2, 9, false, false)
	s.Require().True(ok)
	_, ok = t.Find(4, 9, false, false)
	s.Require().True(ok)

	s.Require().NoError(t.RemoveLRU(0))
	s.Require().Equal(2, t.Len())
}

func (s *TableSuite) TestEntriesAndMostUsed() {
	t := s.newTable(11)

	_, ok := t.MostUsed()
	s.Require().False(ok)
	s.Require().Empty(t.Entries())

	for start, hits := range map[int]int{5: 1, 6: 3, 7: 2} {
		_, _, err := t.Insert([]int{start, 0}, true)
		s.Require().NoError(err)
		for i := 1; i < hits; i++ {
			_, _, err = t.Insert([]int{start, 0}, true)
			s.Require().NoError(err)
		}
	}

	most, ok := t.MostUsed()
	s.Require().True(ok)
	s.Require().Equal([]int{6, 0}, most)

	entries := t.Entries()
	s.Require().Len(entries, 3)
	got := []int{entries[0].Hits, entries[1].Hits, entries[2].Hits}
	s.Require().Equal([]int{3, 2, 1}, got)
	s.Require().Equal(pathcache.Key{Start: 6, End: 0, CostMode: true}, entries[0].Key)
}

func (s *TableSuite) TestInvalidate() {
	t := s.newTable(11)
	for start := 0; start < 5; start++ {
		_, _, err := t.Insert([]int{start, 1}, false)
		s.Require().NoError(err)
	}
	_, _ = t.Remove(0, 1, false)

	t.Invalidate()
	s.Require().Equal(0, t.Len())
	s.Require().Equal(pathcache.Stats{Capacity: 11, Empty: 11}, t.Stats())
	_, ok := t.Find(1, 1, false, false)
	s.Require().False(ok)
}

func (s *TableSuite) TestPayloadIsCopied() {
	t := s.newTable(11)
	seq := []int{1, 2, 3}
	_, _, err := t.Insert(seq, false)
	s.Require().NoError(err)
	seq[1] = 99

	got, ok := t.Find(1, 3, false, false)
	s.Require().True(ok)
	s.Require().Equal([]int{1, 2, 3}, got)
	got[0] = 42

	again, _ := t.Find(1, 3, false, false)
	s.Require().Equal([]int{1, 2, 3}, again)
}

func (s *TableSuite) TestNegativeKeys() {
	t := s.newTable(13)
	_, fresh, err := t.Insert([]int{-5, -7}, true)
	s.Require().NoError(err)
	s.Require().True(fresh)
	got, ok := t.Find(-5, -7, true, false)
	s.Require().True(ok)
	s.Require().Equal([]int{-5, -7}, got)
}

func (s *TableSuite) TestXXHashFillsToCeiling() {
	t := s.newTable(101, pathcache.WithHasher(pathcache.XXHash))
	for i := 0; i < t.Threshold(); i++ {
		_, fresh, err := t.Insert([]int{i, i * 3}, i%2 == 0)
		s.Require().NoError(err)
		s.Require().True(fresh)
	}
	for i := 0; i < t.Threshold(); i++ {
		_, ok := t.Find(i, i*3, i%2 == 0, false)
		s.Require().True(ok, "key %d", i)
	}
	_, _, err := t.Insert([]int{1000, 1}, false)
	s.Require().ErrorIs(err, pathcache.ErrCapacityExceeded)
}

func TestTableSuite(t *testing.T) {
	suite.Run(t, new(TableSuite))
}

func TestHashers(t *testing.T) {
	k := pathcache.Key{Start: 2, End: 3, CostMode: true}
	require.Equal(t, uint64(102523*2+100907*3+104659), pathcache.PrimeHash(k))
	require.Equal(t, pathcache.XXHash(k), pathcache.XXHash(k))
	require.NotEqual(t, pathcache.XXHash(k), pathcache.XXHash(pathcache.Key{Start: 2, End: 3}))

	h, ok := pathcache.HasherByName("xxhash")
	require.True(t, ok)
	require.Equal(t, pathcache.XXHash(k), h(k))
	_, ok = pathcache.HasherByName("md5")
	require.False(t, ok)

	require.True(t, pathcache.IsPrime(101))
	require.False(t, pathcache.IsPrime(100))
	require.Equal(t, 11, pathcache.NextPrime(8))
	require.Equal(t, 2, pathcache.NextPrime(0))
}

func TestStateString(t *testing.T) {
	require.Equal(t, "EMPTY", pathcache.Empty.String())
	require.Equal(t, "OCCUPIED", pathcache.Occupied.String())
	require.Equal(t, "TOMBSTONE", pathcache.Tombstone.String())
}

func TestCollector(t *testing.T) {
	table, err := pathcache.New(11)
	require.NoError(t, err)
	for start := 0; start < 3; start++ {
		_, _, err = table.Insert([]int{start, 1}, false)
		require.NoError(t, err)
	}
	_, _ = table.Remove(0, 1, false)

	c := pathcache.NewCollector("routes", table)
	require.Equal(t, 3, testutil.CollectAndCount(c))

	expected := `
# HELP hroute_pathcache_live_entries Occupied slots in the path cache.
# TYPE hroute_pathcache_live_entries gauge
hroute_pathcache_live_entries{cache="routes"} 2
# HELP hroute_pathcache_tombstones Tombstoned slots in the path cache.
# TYPE hroute_pathcache_tombstones gauge
hroute_pathcache_tombstones{cache="routes"} 1
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected),
		"hroute_pathcache_live_entries", "hroute_pathcache_tombstones"))
}
