package avl

import (
	"github.com/cryptonstudio/crypton-ordered-set/types/queue"
)

// Order is an enumeration of tree traversal orders.
type Order uint8

const (
	// PreOrder visits node, then its left branch, then its right branch.
	PreOrder Order = iota + 1
	// InOrder visits left branch, then node, then right branch (sorted order).
	InOrder
	// PostOrder visits left branch, then right branch, then node.
	PostOrder
	// LevelOrder visits nodes breadth-first, depth by depth.
	LevelOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	default:
		return "unknown"
	}
}

// Iterator walks a snapshot of tree values taken at creation time.
//
// Iterator remembers the tree size it was created with and fails with
// ErrorTreeModified as soon as the live size is different.
// Modifications keeping the size unchanged are not detected.
type Iterator[T any] struct {
	tree   *Tree[T]
	values []T
	pos    int
	size   int
}

// Iterator creates an iterator over the tree values in given order.
func (t *Tree[T]) Iterator(order Order) *Iterator[T] {
	return &Iterator[T]{
		tree:   t,
		values: t.Values(order),
		size:   t.size,
	}
}

// PreOrder creates a pre-order iterator.
//
// This is useful when copying binary search trees, as inserting back in this
// order will guarantee the clone will have the exact same layout.
func (t *Tree[T]) PreOrder() *Iterator[T] {
	return t.Iterator(PreOrder)
}

// InOrder creates an in-order iterator yielding values in a sorted order.
func (t *Tree[T]) InOrder() *Iterator[T] {
	return t.Iterator(InOrder)
}

// PostOrder creates a post-order iterator.
func (t *Tree[T]) PostOrder() *Iterator[T] {
	return t.Iterator(PostOrder)
}

// LevelOrder creates a breadth-first iterator.
func (t *Tree[T]) LevelOrder() *Iterator[T] {
	return t.Iterator(LevelOrder)
}

// HasNext checks if there are more values to iterate.
func (it *Iterator[T]) HasNext() (bool, error) {
	if it.size != it.tree.size {
		return false, ErrorTreeModified
	}
	return it.pos < len(it.values), nil
}

// Next returns the next value.
func (it *Iterator[T]) Next() (value T, err error) {
	var ok bool
	if ok, err = it.HasNext(); err != nil {
		return
	}
	if !ok {
		err = ErrorIteratorExhausted
		return
	}
	value = it.values[it.pos]
	it.pos++
	return
}

// Remaining returns the amount of values not yet returned by Next.
func (it *Iterator[T]) Remaining() int {
	return len(it.values) - it.pos
}

////////////////////////////////////////////////////////////////

// Values returns all values of the tree in given order.
func (t *Tree[T]) Values(order Order) []T {
	values := make([]T, 0, t.size)
	collect := func(value T) bool {
		values = append(values, value)
		return false
	}
	switch order {
	case PreOrder:
		t.IteratePreOrder(collect)
	case InOrder:
		t.IterateInOrder(collect)
	case PostOrder:
		t.IteratePostOrder(collect)
	case LevelOrder:
		t.IterateLevelOrder(collect)
	}
	return values
}

// IteratePreOrder will iterate all values in this tree by first visiting each
// node's value, followed by the its left branch, and then its right branch.
// Iteration stops when f returns true.
func (t *Tree[T]) IteratePreOrder(f func(value T) bool) {
	if t.root == nil {
		return
	}
	t.root.iteratePreOrder(func(n *node[T]) bool {
		return f(n.value)
	})
}

// IterateInOrder will iterate all values in this tree by first visiting each
// node's left branch, followed by the its own value, and then its right branch.
// Iteration stops when f returns true.
func (t *Tree[T]) IterateInOrder(f func(value T) bool) {
	if t.root == nil {
		return
	}
	t.root.iterateInOrder(func(n *node[T]) bool {
		return f(n.value)
	})
}

// IteratePostOrder will iterate all values in this tree by first visiting each
// node's left branch, followed by the its right branch, and then its own value.
// Iteration stops when f returns true.
func (t *Tree[T]) IteratePostOrder(f func(value T) bool) {
	if t.root == nil {
		return
	}
	t.root.iteratePostOrder(func(n *node[T]) bool {
		return f(n.value)
	})
}

// IterateLevelOrder will iterate all values in this tree depth by depth,
// from left to right inside each depth.
// Iteration stops when f returns true.
func (t *Tree[T]) IterateLevelOrder(f func(value T) bool) {
	if t.root == nil {
		return
	}
	q := queue.NewQueue[*node[T]]()
	q.PushBack(t.root)
	for q.Len() > 0 {
		n, _ := q.PopFront()
		if f(n.value) {
			q.Clean()
			return
		}
		if n.left != nil {
			q.PushBack(n.left)
		}
		if n.right != nil {
			q.PushBack(n.right)
		}
	}
}
