package avl

import (
	"sync"

	"gopkg.in/typ.v4"
)

// Tree is an ordered set of unique values (numbers, strings or any type with a comparator),
// implemented as an AVL tree (Adelson-Velsky and Landis tree), a type of self-balancing BST.
// This guarantees O(log n) operations on insertion, searching, and deletion.
//
// Tree is not safe for concurrent use.
type Tree[T any] struct {
	compare  func(a, b T) int
	isAbsent func(value T) bool
	pool     *sync.Pool
	handler  Handler
	root     *node[T]
	size     int
}

// Options holds optional tree settings.
type Options[T any] struct {
	// Pool is used for nodes creating/releasing, it must be created by NewNodePool.
	Pool *sync.Pool
	// Handler is notified about rebalancing, may be nil.
	Handler Handler
	// IsAbsent reports values which must be rejected by Add (nil pointers for example).
	// Nil interface values are always rejected.
	IsAbsent func(value T) bool
}

////////////////////////////////////////////////////////////////

// NewOrderedTree creates a new AVL tree using a default comparator function
// for any ordered type (ints, uints, floats, strings).
func NewOrderedTree[T typ.Ordered]() Tree[T] {
	return NewTree[T](typ.Compare[T])
}

// NewTree creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
func NewTree[T any](compare func(a, b T) int) Tree[T] {
	return NewTreeWithOptions(compare, Options[T]{})
}

// NewTreePooled creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
// Pooled tree uses given pool for nodes creating/releasing.
func NewTreePooled[T any](compare func(a, b T) int, pool *sync.Pool) Tree[T] {
	return NewTreeWithOptions(compare, Options[T]{Pool: pool})
}

// NewTreeWithOptions creates a new AVL tree using a comparator function and given options.
func NewTreeWithOptions[T any](compare func(a, b T) int, opts Options[T]) Tree[T] {
	t := Tree[T]{
		compare:  compare,
		isAbsent: opts.IsAbsent,
		pool:     opts.Pool,
		handler:  opts.Handler,
	}
	if t.handler == nil {
		t.handler = nopHandler{}
	}
	return t
}

// NewNodePool returns a pool suitable for NewTreePooled.
func NewNodePool[T any]() *sync.Pool {
	return &sync.Pool{New: func() any {
		return new(node[T])
	}}
}

////////////////////////////////////////////////////////////////

// Size returns the amount of values in the tree.
func (t *Tree[T]) Size() int {
	return t.size
}

// IsEmpty checks if the tree has no values.
func (t *Tree[T]) IsEmpty() bool {
	return t.size == 0
}

// Height returns height of the tree, zero for an empty tree.
func (t *Tree[T]) Height() int {
	return t.root.getHeight()
}

// Contains checks if given value exists in the tree by iterating the binary search tree.
func (t *Tree[T]) Contains(value T) bool {
	if t.absent(value) {
		return false
	}
	current := t.root
	for current != nil {
		cmp := t.compare(value, current.value)
		switch {
		case cmp < 0:
			current = current.left
		case cmp > 0:
			current = current.right
		default:
			return true
		}
	}
	return false
}

// Min returns the lowest value of the tree or ErrorTreeEmpty.
func (t *Tree[T]) Min() (value T, err error) {
	if t.root == nil {
		err = ErrorTreeEmpty
		return
	}
	return t.root.mostLeft().value, nil
}

// Max returns the highest value of the tree or ErrorTreeEmpty.
func (t *Tree[T]) Max() (value T, err error) {
	if t.root == nil {
		err = ErrorTreeEmpty
		return
	}
	return t.root.mostRight().value, nil
}

// Add inserts given value to the tree.
// Returns false if the value is absent or already exists in the tree.
func (t *Tree[T]) Add(value T) bool {
	if t.absent(value) || t.Contains(value) {
		return false
	}
	t.root = t.insert(t.root, value)
	t.size++
	return true
}

// Remove removes given value from the tree.
// Returns false if the value does not exist in the tree.
func (t *Tree[T]) Remove(value T) bool {
	if !t.Contains(value) {
		return false
	}
	t.root = t.delete(t.root, value)
	t.size--
	return true
}

// Clear will reset this tree to an empty tree.
func (t *Tree[T]) Clear() {
	if t.root != nil && t.pool != nil {
		t.root.iteratePostOrder(func(n *node[T]) bool {
			t.release(n)
			return false
		})
	}
	t.root = nil
	t.size = 0
}

////////////////////////////////////////////////////////////////

func (t *Tree[T]) insert(n *node[T], value T) *node[T] {
	if n == nil {
		return t.newNode(value)
	}
	// Equal values are rejected by Add before the descent
	if t.compare(value, n.value) < 0 {
		n.left = t.insert(n.left, value)
	} else {
		n.right = t.insert(n.right, value)
	}
	n.updateHeight()
	return n.rebalance(t.handler)
}

func (t *Tree[T]) delete(n *node[T], value T) *node[T] {
	if n == nil {
		return nil
	}
	cmp := t.compare(value, n.value)
	switch {
	case cmp < 0:
		n.left = t.delete(n.left, value)
	case cmp > 0:
		n.right = t.delete(n.right, value)
	case n.left == nil && n.right == nil:
		// Leaf node
		t.release(n)
		return nil
	case n.left == nil:
		// Single child: right
		child := n.right
		t.release(n)
		return child
	case n.right == nil:
		// Single child: left
		child := n.left
		t.release(n)
		return child
	default:
		// Two children: take over the in-order successor value
		n.value = n.right.mostLeft().value
		n.right = t.delete(n.right, n.value)
	}
	n.updateHeight()
	return n.rebalance(t.handler)
}

func (t *Tree[T]) newNode(value T) (n *node[T]) {
	if t.pool != nil {
		n = t.pool.Get().(*node[T])
	} else {
		n = new(node[T])
	}
	n.value = value
	n.height = 1
	return
}

func (t *Tree[T]) release(n *node[T]) {
	// Clean up removed node to avoid memory leaks
	*n = node[T]{}
	if t.pool != nil {
		t.pool.Put(n)
	}
}

func (t *Tree[T]) absent(value T) bool {
	if any(value) == nil {
		return true
	}
	return t.isAbsent != nil && t.isAbsent(value)
}
