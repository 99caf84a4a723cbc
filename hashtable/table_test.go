package hashtable_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlstruct/hashtable"
)

func TestTable_InsertSearch(t *testing.T) {
	tbl := hashtable.New()

	tbl.Insert(1, 100)
	tbl.Insert(12, 200)
	tbl.Insert(23, 300)

	for key, want := range map[int]int{1: 100, 12: 200, 23: 300} {
		got, ok := tbl.Search(key)
		require.True(t, ok, "key %d must be present", key)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 3, tbl.Len())

	_, ok := tbl.Search(99)
	assert.False(t, ok, "absent key must miss")
}

func TestTable_CollisionChainOrder(t *testing.T) {
	tbl := hashtable.New()

	// 15 and 25 both map to bucket 5; the newer key heads the chain.
	tbl.Insert(15, 15)
	tbl.Insert(25, 25)

	assert.Equal(t, "[[],[],[],[],[],[25:25,15:15],[],[],[],[]]", tbl.String())

	v, ok := tbl.Search(15)
	require.True(t, ok)
	assert.Equal(t, 15, v)
	v, ok = tbl.Search(25)
	require.True(t, ok)
	assert.Equal(t, 25, v)
}

func TestTable_UpdateInPlace(t *testing.T) {
	tbl := hashtable.New()
	tbl.Insert(15, 15)
	tbl.Insert(25, 25)

	// Re-inserting a chained key updates its value without moving it.
	tbl.Insert(15, 99)

	assert.Equal(t, 2, tbl.Len(), "update must not add an entry")
	assert.Equal(t, "[[],[],[],[],[],[25:25,15:99],[],[],[],[]]", tbl.String())

	v, ok := tbl.Search(15)
	require.True(t, ok)
	assert.Equal(t, 99, v)
}

func TestTable_NegativeKeys(t *testing.T) {
	tbl := hashtable.New()

	// |−15| mod 10 = 5, so −15 chains together with 15.
	tbl.Insert(-15, 1)
	tbl.Insert(15, 2)

	assert.Equal(t, "[[],[],[],[],[],[15:2,-15:1],[],[],[],[]]", tbl.String())

	v, ok := tbl.Search(-15)
	require.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = tbl.Search(15)
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestTable_MinIntKey(t *testing.T) {
	var bucket int
	tbl := hashtable.New(hashtable.WithOnHash(func(_, b int) { bucket = b }))

	// |math.MinInt| = 2^63 cannot be negated as an int; the magnitude goes
	// through uint and 2^63 mod 10 = 8.
	tbl.Insert(math.MinInt, 7)
	assert.Equal(t, 8, bucket)

	v, ok := tbl.Search(math.MinInt)
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestTable_WithBucketCount(t *testing.T) {
	tbl := hashtable.New(hashtable.WithBucketCount(4))
	assert.Equal(t, 4, tbl.BucketCount())

	tbl.Insert(7, 70) // 7 mod 4 = 3
	assert.Equal(t, "[[],[],[],[7:70]]", tbl.String())
}

func TestTable_InvalidBucketCount(t *testing.T) {
	assert.Panics(t, func() { hashtable.New(hashtable.WithBucketCount(0)) })
	assert.Panics(t, func() { hashtable.New(hashtable.WithBucketCount(-3)) })
}

func TestTable_Clear(t *testing.T) {
	tbl := hashtable.New(hashtable.WithBucketCount(3))
	tbl.Insert(1, 1)
	tbl.Insert(2, 2)

	tbl.Clear()

	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, 3, tbl.BucketCount(), "Clear keeps the bucket count")
	assert.Equal(t, "[[],[],[]]", tbl.String())

	_, ok := tbl.Search(1)
	assert.False(t, ok)
}

func TestTable_SnapshotIsolation(t *testing.T) {
	tbl := hashtable.New()
	tbl.Insert(15, 15)
	tbl.Insert(25, 25)

	snap := tbl.Snapshot()
	require.Len(t, snap, 10)
	require.Equal(t, []hashtable.Entry{{Key: 25, Value: 25}, {Key: 15, Value: 15}}, snap[5])

	snap[5][0].Value = -1

	v, ok := tbl.Search(25)
	require.True(t, ok)
	assert.Equal(t, 25, v, "mutating a snapshot must not leak into the table")
}

func TestTable_HookSequence(t *testing.T) {
	var events []string
	tbl := hashtable.New(
		hashtable.WithOnHash(func(key, bucket int) {
			events = append(events, fmt.Sprintf("hash(%d->%d)", key, bucket))
		}),
		hashtable.WithOnProbe(func(key, chainKey int) {
			events = append(events, fmt.Sprintf("probe(%d,%d)", key, chainKey))
		}),
	)

	tbl.Insert(15, 15) // empty bucket, no probes
	tbl.Insert(25, 25) // walks past 15 before prepending
	tbl.Search(15)     // probes 25 then 15

	assert.Equal(t, []string{
		"hash(15->5)",
		"hash(25->5)",
		"probe(25,15)",
		"hash(15->5)",
		"probe(15,25)",
		"probe(15,15)",
	}, events)
}

func TestTable_HooksDoNotAlterOutcome(t *testing.T) {
	plain := hashtable.New()
	observed := hashtable.New(
		hashtable.WithOnHash(func(int, int) {}),
		hashtable.WithOnProbe(func(int, int) {}),
	)

	for _, kv := range [][2]int{{15, 15}, {25, 25}, {-3, 9}, {15, 1}} {
		plain.Insert(kv[0], kv[1])
		observed.Insert(kv[0], kv[1])
	}

	assert.Equal(t, plain.String(), observed.String(),
		"observers must not influence table contents")
}
