package engine

import (
	crand "crypto/rand"
	"math/big"
	"math/rand/v2"
)

// RandomSource picks a word index uniformly over [0, n)
type RandomSource interface {
	IntN(n int) int
}

// CryptoSource draws indexes from crypto/rand
type CryptoSource struct{}

// IntN returns a uniformly random index in [0, n)
func (CryptoSource) IntN(n int) int {
	if n <= 1 {
		return 0
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return rand.IntN(n)
	}
	return int(v.Int64())
}

// SeededSource is a deterministic source for reproducible games
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource creates a deterministic source from seed
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a pseudo-random index in [0, n)
func (s *SeededSource) IntN(n int) int {
	if n <= 1 {
		return 0
	}
	return s.rng.IntN(n)
}
