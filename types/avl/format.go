package avl

import (
	"fmt"
	"strings"
)

// Format renders tree values in given order as "[a, b, c]".
// Used for diagnostics only.
func (t *Tree[T]) Format(order Order) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, value := range t.Values(order) {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// String renders tree values in a sorted order.
func (t *Tree[T]) String() string {
	return t.Format(InOrder)
}
