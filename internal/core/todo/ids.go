package todo

import (
	"fmt"
	"math/rand/v2"
)

// DefaultMaxID is the exclusive upper bound for randomly generated ids.
const DefaultMaxID = 10000

// Strategy names an IDSource implementation selectable from config.
type Strategy string

const (
	// StrategyRandom draws ids uniformly from [0, max) with no uniqueness check.
	StrategyRandom Strategy = "random"
	// StrategySequential hands out 1, 2, 3, ...
	StrategySequential Strategy = "sequential"
	// StrategyChecked draws random ids but retries against ids already in use.
	StrategyChecked Strategy = "checked"
)

// Strategies returns all supported strategies.
func Strategies() []Strategy {
	return []Strategy{StrategyRandom, StrategySequential, StrategyChecked}
}

// IsValid reports whether s is a supported strategy.
func (s Strategy) IsValid() bool {
	switch s {
	case StrategyRandom, StrategySequential, StrategyChecked:
		return true
	default:
		return false
	}
}

// IDSource generates ids for new items. inUse reports whether an id is
// currently held by an item in the list; sources may ignore it.
type IDSource interface {
	NextID(inUse func(ID) bool) ID
}

// RandomIDs generates ids in [0, Max). Collisions are possible.
type RandomIDs struct {
	Max  int
	Rand *rand.Rand // nil uses the global source
}

func (r *RandomIDs) NextID(_ func(ID) bool) ID {
	return ID(r.intN())
}

func (r *RandomIDs) intN() int {
	upper := r.Max
	if upper <= 0 {
		upper = DefaultMaxID
	}
	if r.Rand != nil {
		return r.Rand.IntN(upper)
	}
	return rand.IntN(upper)
}

// SequentialIDs generates a monotonic sequence starting at 1.
type SequentialIDs struct {
	last ID
}

func (s *SequentialIDs) NextID(_ func(ID) bool) ID {
	s.last++
	return s.last
}

// CheckedIDs generates random ids in [0, Max) that are not in use. After
// maxAttempts random draws it falls back to scanning for the lowest free id,
// and only returns an in-use id when the whole range is taken.
type CheckedIDs struct {
	RandomIDs
}

const maxAttempts = 32

func (c *CheckedIDs) NextID(inUse func(ID) bool) ID {
	if inUse == nil {
		return c.RandomIDs.NextID(nil)
	}

	for range maxAttempts {
		id := ID(c.intN())
		if !inUse(id) {
			return id
		}
	}

	upper := c.Max
	if upper <= 0 {
		upper = DefaultMaxID
	}
	for i := range upper {
		if !inUse(ID(i)) {
			return ID(i)
		}
	}

	return ID(c.intN())
}

// NewIDSource builds the IDSource for a strategy.
func NewIDSource(strategy Strategy, maxID int) (IDSource, error) {
	switch strategy {
	case StrategyRandom, "":
		return &RandomIDs{Max: maxID}, nil
	case StrategySequential:
		return &SequentialIDs{}, nil
	case StrategyChecked:
		return &CheckedIDs{RandomIDs: RandomIDs{Max: maxID}}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
