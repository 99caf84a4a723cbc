package binheap

import (
	"errors"
	"fmt"
)

// Sentinel errors for heap construction and mutation.
var (
	// ErrEmptyHeap is returned by Peek and ExtractTop when the heap holds no elements.
	ErrEmptyHeap = errors.New("binheap: heap is empty")

	// ErrCapacityExceeded is returned by Insert when a WithCapacity bound is already full.
	ErrCapacityExceeded = errors.New("binheap: capacity exceeded")

	// ErrBadCapacity indicates that WithCapacity was given a non-positive bound.
	ErrBadCapacity = errors.New("binheap: capacity must be positive")

	// ErrBadMode indicates a Mode value other than Min or Max.
	ErrBadMode = errors.New("binheap: unknown heap mode")
)

// Mode selects the ordering relation of a Heap.
//
// Min – the smallest element sits at the root.
// Max – the largest element sits at the root.
type Mode int

const (
	// Min keeps the smallest element on top.
	Min Mode = iota

	// Max keeps the largest element on top.
	Max
)

// String returns the human-readable mode name.
func (m Mode) String() string {
	switch m {
	case Min:
		return "Min"
	case Max:
		return "Max"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Option configures Heap construction via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a Heap.
type Options struct {
	// Capacity bounds the number of stored elements; 0 means unbounded.
	Capacity int

	// OnCompare is called for every ordering comparison between two slots,
	// with their array indices (index 0 is the root).
	OnCompare func(i, j int)

	// OnSwap is called for every element exchange between two slots,
	// with their array indices (index 0 is the root).
	OnSwap func(i, j int)
}

// DefaultOptions returns an Options with sane defaults:
//   - unbounded capacity
//   - no-op observers (OnCompare, OnSwap)
func DefaultOptions() Options {
	return Options{
		Capacity:  0,
		OnCompare: func(int, int) {},
		OnSwap:    func(int, int) {},
	}
}

// WithCapacity bounds the heap to at most n elements; once the bound is
// reached, Insert reports ErrCapacityExceeded and leaves the heap untouched.
// Must pass a positive value; zero or negative cause ErrBadCapacity.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// WithOnCompare registers a callback observing every comparison.
// Observers must not mutate the heap.
func WithOnCompare(fn func(i, j int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCompare = fn
		}
	}
}

// WithOnSwap registers a callback observing every swap.
// Observers must not mutate the heap.
func WithOnSwap(fn func(i, j int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSwap = fn
		}
	}
}
