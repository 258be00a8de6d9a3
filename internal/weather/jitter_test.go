package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// seqSource replays vals in a loop.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestJitterZeroVariance(t *testing.T) {
	src := NewSource(1)
	for i := 0; i < 100; i++ {
		assert.Equal(t, 30, Jitter(src, 30, 0))
	}
}

func TestJitterSignAndDelta(t *testing.T) {
	assert.Equal(t, 28, Jitter(&seqSource{vals: []float64{0.2, 1.0}}, 30, 2))
	assert.Equal(t, 32, Jitter(&seqSource{vals: []float64{0.7, 0.5}}, 30, 3))
	assert.Equal(t, 30, Jitter(&seqSource{vals: []float64{0.1, 0.1}}, 30, 4))
}

func TestJitterStaysWithinVariance(t *testing.T) {
	src := NewSource(99)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := Jitter(src, 55, 4)
		assert.GreaterOrEqual(t, v, 51)
		assert.LessOrEqual(t, v, 59)
		seen[v] = true
	}
	assert.Len(t, seen, 9)
}
