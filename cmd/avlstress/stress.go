package main

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"
	"github.com/tidwall/hashmap"
	"lukechampine.com/uint128"

	"github.com/cryptonstudio/crypton-ordered-set/types/avl"
)

var errDiverged = errors.New("tree diverged from the reference model")

// Config holds stress run parameters.
type Config struct {
	Operations int
	KeySpace   uint64
	Seed       uint64
	Wide       bool
	CheckEvery int
}

// Stats holds stress run results.
type Stats struct {
	Adds     uint64
	Removes  uint64
	Lookups  uint64
	Rejected uint64
	Size     int
	Height   int
}

type stress[K comparable] struct {
	cfg   Config
	log   zerolog.Logger
	rnd   *rand.Rand
	tree  avl.Tree[K]
	model *hashmap.Map[K, struct{}]
	key   func() K
	stats Stats
}

// Run executes random add/remove/contains operations against a tree and
// a hash map holding the same keys, failing on the first mismatch.
func Run(cfg Config, handler avl.Handler, log zerolog.Logger) (Stats, error) {
	rnd := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	if cfg.Wide {
		// Spread keys across the high half so comparisons touch both words
		s := newStress(cfg, log, rnd, func(a, b uint128.Uint128) int { return a.Cmp(b) }, handler)
		s.key = func() uint128.Uint128 {
			k := rnd.Uint64N(cfg.KeySpace)
			return uint128.New(k*2654435761, k)
		}
		return s.run()
	}
	s := newStress(cfg, log, rnd, func(a, b uint64) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}, handler)
	s.key = func() uint64 {
		return rnd.Uint64N(cfg.KeySpace)
	}
	return s.run()
}

func newStress[K comparable](cfg Config, log zerolog.Logger, rnd *rand.Rand, compare func(a, b K) int, handler avl.Handler) *stress[K] {
	return &stress[K]{
		cfg: cfg,
		log: log,
		rnd: rnd,
		tree: avl.NewTreeWithOptions(compare, avl.Options[K]{
			Pool:    avl.NewNodePool[K](),
			Handler: handler,
		}),
		model: hashmap.New[K, struct{}](int(min(cfg.KeySpace, 1<<20))),
	}
}

func (s *stress[K]) run() (Stats, error) {
	for i := range s.cfg.Operations {
		k := s.key()
		if err := s.step(k); err != nil {
			s.log.Error().Err(err).Int("operation", i).Interface("key", k).Msg("stress run failed")
			return s.stats, err
		}
		if s.cfg.CheckEvery > 0 && (i+1)%s.cfg.CheckEvery == 0 {
			if err := s.tree.Validate(); err != nil {
				return s.stats, err
			}
			s.log.Debug().Int("operation", i+1).Int("size", s.tree.Size()).Int("height", s.tree.Height()).Msg("tree validated")
		}
	}
	if err := s.tree.Validate(); err != nil {
		return s.stats, err
	}
	if err := s.checkOrder(); err != nil {
		return s.stats, err
	}
	s.stats.Size = s.tree.Size()
	s.stats.Height = s.tree.Height()
	return s.stats, nil
}

func (s *stress[K]) step(k K) error {
	_, exists := s.model.Get(k)
	switch s.rnd.IntN(4) {
	case 0, 1:
		s.stats.Adds++
		if added := s.tree.Add(k); added == exists {
			return fmt.Errorf("%w: add returned %t for existing=%t", errDiverged, added, exists)
		}
		if exists {
			s.stats.Rejected++
		} else {
			s.model.Set(k, struct{}{})
		}
	case 2:
		s.stats.Removes++
		if removed := s.tree.Remove(k); removed != exists {
			return fmt.Errorf("%w: remove returned %t for existing=%t", errDiverged, removed, exists)
		}
		if exists {
			s.model.Delete(k)
		} else {
			s.stats.Rejected++
		}
	default:
		s.stats.Lookups++
		if s.tree.Contains(k) != exists {
			return fmt.Errorf("%w: contains mismatch for existing=%t", errDiverged, exists)
		}
	}
	if s.tree.Size() != s.model.Len() {
		return fmt.Errorf("%w: size %d, model size %d", errDiverged, s.tree.Size(), s.model.Len())
	}
	return nil
}

// checkOrder walks the in-order iterator and checks every value is known to the model.
func (s *stress[K]) checkOrder() error {
	it := s.tree.InOrder()
	count := 0
	for {
		ok, err := it.HasNext()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		k, err := it.Next()
		if err != nil {
			return err
		}
		if _, exists := s.model.Get(k); !exists {
			return fmt.Errorf("%w: unknown key %v", errDiverged, k)
		}
		count++
	}
	if count != s.model.Len() {
		return fmt.Errorf("%w: iterated %d keys, model has %d", errDiverged, count, s.model.Len())
	}
	return nil
}
