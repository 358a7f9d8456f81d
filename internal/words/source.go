package words

import (
	"math/rand/v2"

	"lukechampine.com/frand"
)

// Source yields integers in [0, n). n is always > 0.
type Source interface {
	IntN(n int) int
}

// CryptoSource draws from frand. It is the default for a Bank.
type CryptoSource struct{}

func (CryptoSource) IntN(n int) int { return frand.Intn(n) }

// NewSeeded returns a reproducible source.
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Fixed always returns the same index, clamped into range.
type Fixed int

func (f Fixed) IntN(n int) int {
	i := int(f) % n
	if i < 0 {
		i += n
	}
	return i
}
