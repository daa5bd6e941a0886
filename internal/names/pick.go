package names

import (
	crand "crypto/rand"
	"errors"
	"math/rand/v2"
)

// ErrNoCandidates is returned by Pick when there is nothing to choose from.
var ErrNoCandidates = errors.New("no candidate names")

// Source is the subset of *rand.Rand that Pick needs.
type Source interface {
	IntN(n int) int
}

// NewSource returns a generator seeded from system entropy.
func NewSource() *rand.Rand {
	var seed [32]byte
	crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// Pick returns one element of names chosen uniformly at random.
func Pick(names []string, rng Source) (string, error) {
	if len(names) == 0 {
		return "", ErrNoCandidates
	}
	return names[rng.IntN(len(names))], nil
}
