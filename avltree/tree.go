package avltree

import (
	"fmt"
	"strconv"
	"strings"
)

// Tree is a self-balancing binary search tree of unique int keys.
// The zero value is an empty tree ready for use; New additionally wires
// observer callbacks.
type Tree struct {
	root      *node
	size      int
	onCompare func(key, nodeKey int)
	onRotate  func(r Rotation, pivot int)
}

// node is one tree vertex. Height counts nodes, so leaves have height 1.
type node struct {
	key    int
	height int
	left   *node
	right  *node
}

// New constructs an empty Tree.
func New(opts ...Option) *Tree {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Tree{
		onCompare: cfg.OnCompare,
		onRotate:  cfg.OnRotate,
	}
}

// Insert adds key to the tree, rebalancing as needed.
// Returns ErrDuplicateKey and leaves the tree untouched when the key is
// already present.
func (t *Tree) Insert(key int) error {
	root, inserted := t.insert(t.root, key)
	if !inserted {
		return fmt.Errorf("%w: %d", ErrDuplicateKey, key)
	}
	t.root = root
	t.size++

	return nil
}

// insert descends to the proper nil slot, then repairs heights and balance
// on the unwind. The bool reports whether the key was actually added.
func (t *Tree) insert(n *node, key int) (*node, bool) {
	// 1) Standard BST descent; an empty slot receives the new leaf.
	if n == nil {
		return &node{key: key, height: 1}, true
	}

	if t.onCompare != nil {
		t.onCompare(key, n.key)
	}

	var inserted bool
	switch {
	case key < n.key:
		n.left, inserted = t.insert(n.left, key)
	case key > n.key:
		n.right, inserted = t.insert(n.right, key)
	default:
		return n, false
	}
	if !inserted {
		return n, false
	}

	// 2) Refresh this node's height now that a subtree grew.
	n.height = 1 + max(height(n.left), height(n.right))

	// 3) Repair the balance, choosing the case from the balance sign and
	//    the side of the child subtree that received the key.
	return t.rebalanceInsert(n, key), true
}

// rebalanceInsert applies at most one of the four rotation cases after an
// insertion into the subtree rooted at n.
func (t *Tree) rebalanceInsert(n *node, key int) *node {
	bf := balance(n)

	switch {
	case bf > 1 && key < n.left.key:
		t.notifyRotate(RotationLL, n.key)
		return t.rotateRight(n)
	case bf < -1 && key > n.right.key:
		t.notifyRotate(RotationRR, n.key)
		return t.rotateLeft(n)
	case bf > 1 && key > n.left.key:
		t.notifyRotate(RotationLR, n.key)
		n.left = t.rotateLeft(n.left)
		return t.rotateRight(n)
	case bf < -1 && key < n.right.key:
		t.notifyRotate(RotationRL, n.key)
		n.right = t.rotateRight(n.right)
		return t.rotateLeft(n)
	}

	return n
}

// Remove deletes key from the tree, rebalancing as needed.
// Returns ErrKeyNotFound and leaves the tree untouched when the key is
// absent.
func (t *Tree) Remove(key int) error {
	root, removed := t.remove(t.root, key)
	if !removed {
		return fmt.Errorf("%w: %d", ErrKeyNotFound, key)
	}
	t.root = root
	t.size--

	return nil
}

// remove descends to the key, splices it out, then repairs heights and
// balance on the unwind. The bool reports whether the key was found.
func (t *Tree) remove(n *node, key int) (*node, bool) {
	if n == nil {
		return nil, false
	}

	if t.onCompare != nil {
		t.onCompare(key, n.key)
	}

	var removed bool
	switch {
	case key < n.key:
		n.left, removed = t.remove(n.left, key)
	case key > n.key:
		n.right, removed = t.remove(n.right, key)
	default:
		// 1) Zero or one child: splice the child (possibly nil) in directly.
		//    Its subtree is untouched, so heights below stay valid.
		if n.left == nil || n.right == nil {
			child := n.left
			if child == nil {
				child = n.right
			}

			return child, true
		}

		// 2) Two children: adopt the in-order successor's key, then delete
		//    the successor from the right subtree.
		succ := minNode(n.right)
		n.key = succ.key
		n.right, _ = t.remove(n.right, succ.key)
		removed = true
	}
	if !removed {
		return n, false
	}

	// 3) Refresh height and repair balance on the way back up.
	n.height = 1 + max(height(n.left), height(n.right))

	return t.rebalanceRemove(n), true
}

// rebalanceRemove applies at most one of the four rotation cases after a
// deletion below n. The removed key is gone, so the case is chosen from the
// taller child's balance factor.
func (t *Tree) rebalanceRemove(n *node) *node {
	bf := balance(n)

	switch {
	case bf > 1 && balance(n.left) >= 0:
		t.notifyRotate(RotationLL, n.key)
		return t.rotateRight(n)
	case bf > 1:
		t.notifyRotate(RotationLR, n.key)
		n.left = t.rotateLeft(n.left)
		return t.rotateRight(n)
	case bf < -1 && balance(n.right) <= 0:
		t.notifyRotate(RotationRR, n.key)
		return t.rotateLeft(n)
	case bf < -1:
		t.notifyRotate(RotationRL, n.key)
		n.right = t.rotateRight(n.right)
		return t.rotateLeft(n)
	}

	return n
}

// Contains reports whether key is stored in the tree.
func (t *Tree) Contains(key int) bool {
	n := t.root
	for n != nil {
		if t.onCompare != nil {
			t.onCompare(key, n.key)
		}
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Len reports the number of stored keys.
func (t *Tree) Len() int { return t.size }

// Height reports the tree height: 0 for an empty tree, 1 for a single node.
func (t *Tree) Height() int { return height(t.root) }

// InOrder returns all keys in strictly ascending order.
func (t *Tree) InOrder() []int {
	out := make([]int, 0, t.size)
	var walk func(n *node)
	walk = func(n *node) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.key)
		walk(n.right)
	}
	walk(t.root)

	return out
}

// Clear removes all keys. Observers are kept.
func (t *Tree) Clear() {
	t.root = nil
	t.size = 0
}

// Snapshot returns a deep copy of the tree shape as linked NodeViews,
// or nil for an empty tree. Mutating the copy does not affect the tree.
func (t *Tree) Snapshot() *NodeView {
	return viewOf(t.root)
}

// String renders the tree as nested "[key,height,left,right]" quadruples
// with "[]" for absent subtrees, e.g. "[20,2,[10,1,[],[]],[30,1,[],[]]]".
// An empty tree renders as "[]".
func (t *Tree) String() string {
	var sb strings.Builder
	writeNode(&sb, t.root)

	return sb.String()
}

// rotateRight repairs a left-heavy pivot y by lifting its left child x.
// Heights refresh child-first: y is x's child after the turn.
func (t *Tree) rotateRight(y *node) *node {
	x := y.left
	subtree := x.right

	x.right = y
	y.left = subtree

	y.height = 1 + max(height(y.left), height(y.right))
	x.height = 1 + max(height(x.left), height(x.right))

	return x
}

// rotateLeft repairs a right-heavy pivot x by lifting its right child y.
func (t *Tree) rotateLeft(x *node) *node {
	y := x.right
	subtree := y.left

	y.left = x
	x.right = subtree

	x.height = 1 + max(height(x.left), height(x.right))
	y.height = 1 + max(height(y.left), height(y.right))

	return y
}

// notifyRotate fires the rotation observer when one is attached.
func (t *Tree) notifyRotate(r Rotation, pivot int) {
	if t.onRotate != nil {
		t.onRotate(r, pivot)
	}
}

// height is nil-safe: absent subtrees have height 0.
func height(n *node) int {
	if n == nil {
		return 0
	}

	return n.height
}

// balance is the node's balance factor, height(left) − height(right).
func balance(n *node) int {
	if n == nil {
		return 0
	}

	return height(n.left) - height(n.right)
}

// minNode returns the leftmost node of a non-nil subtree.
func minNode(n *node) *node {
	for n.left != nil {
		n = n.left
	}

	return n
}

// viewOf deep-copies a subtree into exported NodeViews.
func viewOf(n *node) *NodeView {
	if n == nil {
		return nil
	}

	return &NodeView{
		Key:    n.key,
		Height: n.height,
		Left:   viewOf(n.left),
		Right:  viewOf(n.right),
	}
}

// writeNode appends the compact quadruple form of a subtree to sb.
func writeNode(sb *strings.Builder, n *node) {
	if n == nil {
		sb.WriteString("[]")
		return
	}
	sb.WriteByte('[')
	sb.WriteString(strconv.Itoa(n.key))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(n.height))
	sb.WriteByte(',')
	writeNode(sb, n.left)
	sb.WriteByte(',')
	writeNode(sb, n.right)
	sb.WriteByte(']')
}
