package avl

type node[T any] struct {
	value  T
	left   *node[T]
	right  *node[T]
	height int
}

// getHeight returns cached height of the subtree, zero for an empty one.
func (n *node[T]) getHeight() int {
	if n == nil {
		return 0
	}
	return n.height
}

// updateHeight recalculates cached height using already updated children.
func (n *node[T]) updateHeight() {
	leftHeight, rightHeight := n.left.getHeight(), n.right.getHeight()
	if leftHeight > rightHeight {
		n.height = 1 + leftHeight
	} else {
		n.height = 1 + rightHeight
	}
}

// balance returns difference between left and right subtree heights.
func (n *node[T]) balance() int {
	if n == nil {
		return 0
	}
	return n.left.getHeight() - n.right.getHeight()
}

func (n *node[T]) mostLeft() *node[T] {
	current := n
	for current.left != nil {
		current = current.left
	}
	return current
}

func (n *node[T]) mostRight() *node[T] {
	current := n
	for current.right != nil {
		current = current.right
	}
	return current
}

func (n *node[T]) rebalance(h Handler) *node[T] {
	switch b := n.balance(); {
	case b > 1:
		if n.left.balance() < 0 {
			h.OnRebalance(ImbalanceLeftRight)
			n.left = n.left.rotateLeft(h)
		} else {
			h.OnRebalance(ImbalanceLeftLeft)
		}
		return n.rotateRight(h)
	case b < -1:
		if n.right.balance() > 0 {
			h.OnRebalance(ImbalanceRightLeft)
			n.right = n.right.rotateRight(h)
		} else {
			h.OnRebalance(ImbalanceRightRight)
		}
		return n.rotateLeft(h)
	}
	return n
}

func (n *node[T]) rotateLeft(h Handler) *node[T] {
	newRoot := n.right
	n.right = newRoot.left
	newRoot.left = n
	n.updateHeight()
	newRoot.updateHeight()
	h.OnRotate(RotationLeft)
	return newRoot
}

func (n *node[T]) rotateRight(h Handler) *node[T] {
	newRoot := n.left
	n.left = newRoot.right
	newRoot.right = n
	n.updateHeight()
	newRoot.updateHeight()
	h.OnRotate(RotationRight)
	return newRoot
}

func (n *node[T]) iteratePreOrder(f func(n *node[T]) bool) bool {
	if f(n) {
		return true
	}
	if n.left != nil && n.left.iteratePreOrder(f) {
		return true
	}
	return n.right != nil && n.right.iteratePreOrder(f)
}

func (n *node[T]) iterateInOrder(f func(n *node[T]) bool) bool {
	if n.left != nil && n.left.iterateInOrder(f) {
		return true
	}
	if f(n) {
		return true
	}
	return n.right != nil && n.right.iterateInOrder(f)
}

func (n *node[T]) iteratePostOrder(f func(n *node[T]) bool) bool {
	if n.left != nil && n.left.iteratePostOrder(f) {
		return true
	}
	if n.right != nil && n.right.iteratePostOrder(f) {
		return true
	}
	return f(n)
}
