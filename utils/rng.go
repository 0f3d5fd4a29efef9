package utils

import (
	"math/rand/v2"
	"time"
)

// NewRNG returns a deterministic PCG generator for seed. A zero seed is
// replaced by the current time; the seed actually used is returned.
func NewRNG(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0)), seed
}
