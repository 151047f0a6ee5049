package avl

import (
	"fmt"
)

// Validate checks ordering, balance, cached heights and size of the tree.
// Returned error wraps ErrorInvariant and describes the first violation found.
func (t *Tree[T]) Validate() error {
	count := 0
	if _, err := t.validate(t.root, nil, nil, &count); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size %d, but %d nodes reachable", ErrorInvariant, t.size, count)
	}
	return nil
}

// internal: checks subtree bounded by (lower, upper) and returns its real height
func (t *Tree[T]) validate(n *node[T], lower, upper *T, count *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	*count++
	if lower != nil && t.compare(n.value, *lower) <= 0 {
		return 0, fmt.Errorf("%w: value %v is not greater than %v", ErrorInvariant, n.value, *lower)
	}
	if upper != nil && t.compare(n.value, *upper) >= 0 {
		return 0, fmt.Errorf("%w: value %v is not less than %v", ErrorInvariant, n.value, *upper)
	}
	leftHeight, err := t.validate(n.left, lower, &n.value, count)
	if err != nil {
		return 0, err
	}
	rightHeight, err := t.validate(n.right, &n.value, upper, count)
	if err != nil {
		return 0, err
	}
	height := 1 + max(leftHeight, rightHeight)
	if n.height != height {
		return 0, fmt.Errorf("%w: value %v has cached height %d, want %d", ErrorInvariant, n.value, n.height, height)
	}
	if diff := leftHeight - rightHeight; diff > 1 || diff < -1 {
		return 0, fmt.Errorf("%w: value %v has balance factor %d", ErrorInvariant, n.value, diff)
	}
	return height, nil
}
