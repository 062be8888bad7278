// ─────────────────────────────────────────────────────────────────────────────
// table.go — chained hash table with load-factor growth
//
// Purpose:
//   - int64 → string associative container using separate chaining.
//   - Each bucket is an append-grown pair slice; when the stored-key /
//     capacity ratio reaches the configured threshold the bucket array is
//     rebuilt at GrowthCoefficient× size and every pair is re-indexed.
//
// Notes:
//   - Capacity only grows; Del never rehashes or shrinks.
//   - Bucket placement is a pure function of (key, current capacity), shared
//     by Get, Put, Del and the rehash loop.
//
// ⚠️ A Table must not be shared across goroutines. There is no internal
//    locking; concurrent callers must wrap the whole table in their own lock.
// ─────────────────────────────────────────────────────────────────────────────

package chainidx

import (
	"errors"

	"chainidx/utils"
)

// GrowthCoefficient is the capacity multiplier applied on every grow.
// Exported so callers can predict post-growth capacity exactly.
const GrowthCoefficient = 2

// Construction errors. Both are raised only by New; no other operation
// fails — a missing key is an ordinary (zero, false) outcome.
var (
	ErrCapacity   = errors.New("chainidx: capacity must be positive")
	ErrLoadFactor = errors.New("chainidx: load factor must be in (0, 1]")
)

// pair is one stored association.
type pair struct {
	key int64
	val string
}

// bucket is the collision chain for one index. Order within a bucket is
// insertion order but carries no meaning; at most one pair in the whole
// table holds a given key.
type bucket []pair

// Table is a separate-chaining hash map from int64 keys to string values.
//
// A pair lives in bucket utils.BucketIndex(key, len(buckets)) for the
// current bucket count; after a grow every pair may move. nkeys counts
// distinct keys exactly.
type Table struct {
	buckets []bucket
	nkeys   int
	maxLoad float64 // growth threshold, fixed at construction
}

// New allocates a table with the given bucket count and growth threshold.
// capacity must be positive; loadFactor must lie in (0, 1].
func New(capacity int, loadFactor float64) (*Table, error) {
	if capacity <= 0 {
		return nil, ErrCapacity
	}
	if loadFactor <= 0 || loadFactor > 1 {
		return nil, ErrLoadFactor
	}
	return &Table{
		buckets: make([]bucket, capacity),
		maxLoad: loadFactor,
	}, nil
}

// bucketOf maps a key to its bucket index under the current capacity.
//
//go:inline
func (t *Table) bucketOf(key int64) int {
	return utils.BucketIndex(uint64(key), len(t.buckets))
}

// -----------------------------------------------------------------------------
// Core operations
// -----------------------------------------------------------------------------

// Get returns the value stored under key. The second return reports
// presence; a miss is not an error.
func (t *Table) Get(key int64) (string, bool) {
	for _, p := range t.buckets[t.bucketOf(key)] {
		if p.key == key {
			return p.val, true
		}
	}
	return "", false
}

// Contains reports whether key is stored. Always agrees with Get.
func (t *Table) Contains(key int64) bool {
	_, ok := t.Get(key)
	return ok
}

// Put stores val under key. An existing pair is overwritten in place and
// the table is otherwise untouched. A new pair is appended to its bucket;
// if the insert brings nkeys/capacity up to the threshold, the table grows
// synchronously before Put returns.
func (t *Table) Put(key int64, val string) {
	b := t.bucketOf(key)
	for i := range t.buckets[b] {
		if t.buckets[b][i].key == key {
			t.buckets[b][i].val = val
			return
		}
	}
	t.buckets[b] = append(t.buckets[b], pair{key: key, val: val})
	t.nkeys++
	if float64(t.nkeys)/float64(len(t.buckets)) >= t.maxLoad {
		t.grow()
	}
}

// grow rebuilds the bucket array at GrowthCoefficient× the current capacity,
// re-indexing every pair against the new bucket count. The swap is a single
// slice assignment; every pair lands exactly once.
func (t *Table) grow() {
	next := make([]bucket, len(t.buckets)*GrowthCoefficient)
	for _, b := range t.buckets {
		for _, p := range b {
			i := utils.BucketIndex(uint64(p.key), len(next))
			next[i] = append(next[i], p)
		}
	}
	t.buckets = next
}

// Del removes the pair stored under key and returns its value. A miss
// returns (zero, false) and changes nothing. Removal never rehashes.
func (t *Table) Del(key int64) (string, bool) {
	b := t.bucketOf(key)
	ch := t.buckets[b]
	for i := range ch {
		if ch[i].key == key {
			val := ch[i].val
			last := len(ch) - 1
			ch[i] = ch[last] // order inside a bucket is meaningless
			t.buckets[b] = ch[:last]
			t.nkeys--
			return val, true
		}
	}
	return "", false
}

// -----------------------------------------------------------------------------
// Read-only accessors
// -----------------------------------------------------------------------------

// Empty reports whether the table holds no pairs.
func (t *Table) Empty() bool { return t.nkeys == 0 }

// Len returns the number of distinct keys stored.
func (t *Table) Len() int { return t.nkeys }

// Cap returns the current bucket count.
func (t *Table) Cap() int { return len(t.buckets) }

// LoadFactor returns the configured growth threshold.
func (t *Table) LoadFactor() float64 { return t.maxLoad }

// Keys returns every stored key, one entry per pair, in bucket traversal
// order. The order is unspecified; the slice never contains duplicates.
func (t *Table) Keys() []int64 {
	keys := make([]int64, 0, t.nkeys)
	for _, b := range t.buckets {
		for _, p := range b {
			keys = append(keys, p.key)
		}
	}
	return keys
}

// Values returns every stored value, one entry per pair, in bucket
// traversal order. Distinct keys may hold equal values, so duplicates
// are possible.
func (t *Table) Values() []string {
	vals := make([]string, 0, t.nkeys)
	for _, b := range t.buckets {
		for _, p := range b {
			vals = append(vals, p.val)
		}
	}
	return vals
}
