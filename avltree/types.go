package avltree

import (
	"errors"
	"fmt"
)

// Sentinel errors for tree mutation.
var (
	// ErrDuplicateKey is returned by Insert when the key is already stored.
	ErrDuplicateKey = errors.New("avltree: duplicate key")

	// ErrKeyNotFound is returned by Remove when the key is absent.
	ErrKeyNotFound = errors.New("avltree: key not found")
)

// Rotation identifies which of the four rebalancing cases fired.
//
// RotationLL – right rotation of the pivot.
// RotationRR – left rotation of the pivot.
// RotationLR – left rotation of the pivot's left child, then right rotation of the pivot.
// RotationRL – right rotation of the pivot's right child, then left rotation of the pivot.
type Rotation int

const (
	// RotationLL repairs a left-left imbalance.
	RotationLL Rotation = iota

	// RotationRR repairs a right-right imbalance.
	RotationRR

	// RotationLR repairs a left-right imbalance.
	RotationLR

	// RotationRL repairs a right-left imbalance.
	RotationRL
)

// String returns the conventional two-letter case name.
func (r Rotation) String() string {
	switch r {
	case RotationLL:
		return "LL"
	case RotationRR:
		return "RR"
	case RotationLR:
		return "LR"
	case RotationRL:
		return "RL"
	default:
		return fmt.Sprintf("Rotation(%d)", int(r))
	}
}

// NodeView is an immutable copy of one tree node, linked into a full
// snapshot of the tree shape. Leaves have nil Left and Right.
type NodeView struct {
	Key    int       // stored key
	Height int       // node height, leaves are 1
	Left   *NodeView // left subtree copy, nil when absent
	Right  *NodeView // right subtree copy, nil when absent
}

// Option configures Tree construction via functional arguments.
type Option func(*Options)

// Options holds the observer callbacks of a Tree.
// Hooks default to nil and are simply skipped when unset.
type Options struct {
	// OnCompare is called once per visited node during Insert, Remove and
	// Contains, with the searched key and the key of the node under inspection.
	OnCompare func(key, nodeKey int)

	// OnRotate is called right before a rebalancing rotation executes,
	// with the rotation case and the key of the imbalanced pivot node.
	OnRotate func(r Rotation, pivot int)
}

// DefaultOptions returns an Options with no observers attached.
func DefaultOptions() Options {
	return Options{}
}

// WithOnCompare registers a callback observing key comparisons.
// Observers must not mutate the tree.
func WithOnCompare(fn func(key, nodeKey int)) Option {
	return func(o *Options) { o.OnCompare = fn }
}

// WithOnRotate registers a callback observing rebalancing rotations.
// Observers must not mutate the tree.
func WithOnRotate(fn func(r Rotation, pivot int)) Option {
	return func(o *Options) { o.OnRotate = fn }
}
