// Package avltree implements a self-balancing binary search tree (AVL) over
// int keys with strict uniqueness.
//
// Every node carries its height (leaves are 1), and the balance factor of a
// node is height(left) − height(right). After each Insert or Remove the tree
// walks back up the recursion path, refreshes heights, and repairs any node
// whose balance factor leaves {−1, 0, +1} with exactly one of the four
// classic rotation cases:
//
//   - LL: left-heavy, key landed left of the left child → right rotation
//   - RR: right-heavy, key landed right of the right child → left rotation
//   - LR: left-heavy, key landed right of the left child → left+right rotation
//   - RL: right-heavy, key landed left of the right child → right+left rotation
//
// On removal the case is picked from the child's balance factor instead of
// the removed key, since the key is already gone. A node with two children
// is replaced by its in-order successor (the smallest key of the right
// subtree), and the successor is then removed from the right subtree.
//
// Complexity:
//
//   - Insert:   O(log n) (one descent plus at most one rotation case per level)
//   - Remove:   O(log n)
//   - Contains: O(log n)
//   - InOrder:  O(n), keys in strictly ascending order.
//
// Notes on implementation choices:
//
//   - Failed mutations (duplicate insert, missing remove) return a sentinel
//     error and leave the tree exactly as it was.
//   - OnCompare and OnRotate observers expose every step of a mutation;
//     they must not mutate the tree and have no influence on the outcome.
//   - Not safe for concurrent use. A Tree expects a single goroutine.
package avltree
