package avl

import (
	"errors"
)

var (
	ErrorTreeEmpty         = errors.New("tree is empty")
	ErrorTreeModified      = errors.New("tree is modified during iteration")
	ErrorIteratorExhausted = errors.New("iterator has no more values")
	ErrorInvariant         = errors.New("tree invariant is violated")
)
