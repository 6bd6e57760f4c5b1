package core

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rand is the random source consumed by prey placement and the demo workers
// Implementations need not be safe for concurrent use; each goroutine owns one
type Rand interface {
	// Intn returns a value in [0, n); n must be positive
	Intn(n int) int
}

// NewRand returns a PCG-backed source; seed 0 seeds from the clock
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(ResolveSeed(seed)))
}

// ResolveSeed replaces the 0 "unset" seed with a clock-based one
func ResolveSeed(seed uint64) uint64 {
	if seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return seed
}

// DeriveSeed returns a distinct per-worker seed from a base seed
func DeriveSeed(base uint64, index int) uint64 {
	// splitmix64 increment keeps derived seeds well separated
	return base + uint64(index+1)*0x9E3779B97F4A7C15
}
