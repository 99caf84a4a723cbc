package hashtable

import "errors"

// DefaultBucketCount is the bucket count used when WithBucketCount is not given.
const DefaultBucketCount = 10

// ErrBadBucketCount indicates that WithBucketCount was given a non-positive count.
var ErrBadBucketCount = errors.New("hashtable: bucket count must be positive")

// Entry is one key/value pair stored in a bucket chain.
type Entry struct {
	Key   int // the hashed key
	Value int // the stored value
}

// Option configures Table construction via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a Table.
type Options struct {
	// BucketCount fixes the number of bucket chains for the table's lifetime.
	BucketCount int

	// OnHash is called every time a key is mapped to a bucket,
	// with the key and the resulting bucket index.
	OnHash func(key, bucket int)

	// OnProbe is called for every chain entry inspected while looking for
	// a key, with the searched key and the key of the inspected entry.
	OnProbe func(key, chainKey int)
}

// DefaultOptions returns an Options with sane defaults:
//   - DefaultBucketCount buckets
//   - no-op observers (OnHash, OnProbe)
func DefaultOptions() Options {
	return Options{
		BucketCount: DefaultBucketCount,
		OnHash:      func(int, int) {},
		OnProbe:     func(int, int) {},
	}
}

// WithBucketCount fixes the number of buckets.
// Must pass a positive value; zero or negative cause ErrBadBucketCount.
func WithBucketCount(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadBucketCount.Error())
		}
		o.BucketCount = n
	}
}

// WithOnHash registers a callback observing bucket addressing.
// Observers must not mutate the table.
func WithOnHash(fn func(key, bucket int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnHash = fn
		}
	}
}

// WithOnProbe registers a callback observing chain probes.
// Observers must not mutate the table.
func WithOnProbe(fn func(key, chainKey int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProbe = fn
		}
	}
}
