package main

import (
	"fmt"
	"sync/atomic"

	"github.com/cryptonstudio/crypton-ordered-set/types/avl"
)

// Counter counts tree restructuring events.
type Counter struct {
	rebalances [4]uint64 // indexed by avl.Imbalance - 1
	rotations  [2]uint64 // indexed by avl.Rotation - 1
}

func (c *Counter) OnRebalance(kind avl.Imbalance) {
	atomic.AddUint64(&c.rebalances[kind-1], 1)
}

func (c *Counter) OnRotate(rotation avl.Rotation) {
	atomic.AddUint64(&c.rotations[rotation-1], 1)
}

func (c *Counter) PrintStatistics() {
	fmt.Println("Rebalances:")
	for i := range c.rebalances {
		kind := avl.Imbalance(i + 1)
		fmt.Printf("  %s: %d\n", kind, atomic.LoadUint64(&c.rebalances[i]))
	}
	fmt.Println("Rotations:")
	for i := range c.rotations {
		rotation := avl.Rotation(i + 1)
		fmt.Printf("  %s: %d\n", rotation, atomic.LoadUint64(&c.rotations[i]))
	}
}
