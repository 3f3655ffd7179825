package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

var errNonPositiveBound = errors.New("uniform bound must be positive")

// Source yields uniformly distributed integers from a secure entropy source.
// Implementations must be safe for concurrent use.
type Source interface {
	// UniformInt returns an integer in [0, bound), uniformly distributed.
	// bound must be positive.
	UniformInt(bound int) (int, error)
}

type cryptoSource struct{}

// NewSource returns a Source backed by crypto/rand. rand.Int rejects values
// outside the requested range rather than reducing them, so no modulo bias
// is introduced for bounds that do not divide the generator's output width.
func NewSource() Source {
	return cryptoSource{}
}

func (cryptoSource) UniformInt(bound int) (int, error) {
	if bound <= 0 {
		return 0, errNonPositiveBound
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(bound)))
	if err != nil {
		return 0, fmt.Errorf("read secure random: %w", err)
	}
	return int(n.Int64()), nil
}
