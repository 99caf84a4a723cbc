// Package hashtable implements a separate-chaining hash table from int keys
// to int values.
//
// A key lands in bucket |key| mod n, where n is fixed per table at
// construction (DefaultBucketCount unless WithBucketCount overrides it).
// Colliding entries form a chain ordered most-recent-first: a new key is
// prepended, while inserting an existing key updates its value in place and
// keeps the chain order.
//
// Complexity:
//
//   - Insert: O(1) expected, O(c) worst case for a chain of length c.
//   - Search: O(1) expected, O(c) worst case.
//   - String/Snapshot: O(n + len) over all buckets and entries.
//
// Notes on implementation choices:
//
//   - The magnitude |key| is computed through uint, so math.MinInt hashes by
//     its exact absolute value instead of overflowing.
//   - The bucket count never changes after construction; chains grow without
//     bound. There is no rehashing and no load-factor machinery.
//   - Not safe for concurrent use. A Table expects a single goroutine.
package hashtable

import (
	"strconv"
	"strings"
)

// Table is a fixed-bucket-count chained hash table. Create one with New;
// the zero value has no buckets and is not usable.
type Table struct {
	buckets [][]Entry               // chain per bucket, most recent first
	size    int                     // total number of stored entries
	onHash  func(key, bucket int)   // observer for bucket addressing
	onProbe func(key, chainKey int) // observer for chain probes
}

// New constructs an empty Table.
func New(opts ...Option) *Table {
	// 1) Build the configuration from defaults plus functional options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Materialize the bucket chains.
	return &Table{
		buckets: make([][]Entry, cfg.BucketCount),
		onHash:  cfg.OnHash,
		onProbe: cfg.OnProbe,
	}
}

// Insert stores value under key. An existing key has its value updated in
// place; a new key is prepended to its bucket chain.
func (t *Table) Insert(key, value int) {
	idx := t.bucketIndex(key)
	bucket := t.buckets[idx]

	// 1) Update in place when the key already lives in the chain.
	for i := range bucket {
		t.onProbe(key, bucket[i].Key)
		if bucket[i].Key == key {
			bucket[i].Value = value
			return
		}
	}

	// 2) New key: prepend, most recent first.
	t.buckets[idx] = append([]Entry{{Key: key, Value: value}}, bucket...)
	t.size++
}

// Search returns the value stored under key.
// The second return value is false when the key is absent.
func (t *Table) Search(key int) (int, bool) {
	var e Entry
	for _, e = range t.buckets[t.bucketIndex(key)] {
		t.onProbe(key, e.Key)
		if e.Key == key {
			return e.Value, true
		}
	}

	return 0, false
}

// Len reports the total number of stored entries.
func (t *Table) Len() int { return t.size }

// BucketCount reports the fixed number of bucket chains.
func (t *Table) BucketCount() int { return len(t.buckets) }

// Clear removes all entries. The bucket count and observers are kept.
func (t *Table) Clear() {
	t.buckets = make([][]Entry, len(t.buckets))
	t.size = 0
}

// Snapshot returns a deep copy of all bucket chains in bucket order,
// each chain most-recent-first. Mutating the copy does not affect the table.
func (t *Table) Snapshot() [][]Entry {
	out := make([][]Entry, len(t.buckets))
	var i int
	for i = range t.buckets {
		out[i] = make([]Entry, len(t.buckets[i]))
		copy(out[i], t.buckets[i])
	}

	return out
}

// String renders every bucket as a compact single line, e.g.
// "[[],[],[],[],[],[25:25,15:15],[],[],[],[]]" for a ten-bucket table
// holding keys 15 and 25.
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, bucket := range t.buckets {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('[')
		for j, e := range bucket {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(e.Key))
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(e.Value))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')

	return sb.String()
}

// bucketIndex maps key to its bucket as |key| mod bucket count.
// The magnitude goes through uint so that math.MinInt, whose negation
// overflows int, still hashes by its exact absolute value.
func (t *Table) bucketIndex(key int) int {
	mag := uint(key)
	if key < 0 {
		mag = uint(-key)
	}
	idx := int(mag % uint(len(t.buckets)))
	t.onHash(key, idx)

	return idx
}
