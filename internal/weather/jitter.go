package weather

import (
	"math"
	"math/rand"
	"time"
)

// Source yields pseudo-random floats in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded source. A zero seed means time-seeded.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Jitter perturbs base by a random signed delta in [0, variance].
// Repeated calls with the same input are expected to differ.
func Jitter(src Source, base, variance int) int {
	sign := 1
	if src.Float64() < 0.5 {
		sign = -1
	}
	delta := int(math.Round(src.Float64() * float64(variance)))
	return base + sign*delta
}
