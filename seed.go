package plot

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/mr-tron/base58"
)

// warmupDraws is the number of values discarded from a freshly seeded
// numeric source.
const warmupDraws = 50

// NewRand returns a deterministic source for a numeric seed.
//
// The seed bits are written big-endian into a 16-byte buffer (the upper
// half stays zero) and the two 64-bit halves seed a PCG generator. The
// first draws are discarded so that nearby seeds diverge quickly.
func NewRand(seed float64) *rand.Rand {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], math.Float64bits(seed))
	rng := rand.New(rand.NewPCG(binary.BigEndian.Uint64(buf[:8]), binary.BigEndian.Uint64(buf[8:])))
	for range warmupDraws {
		rng.Float64()
	}
	return rng
}

// hashDigits is the number of base58 digits kept from a hash; 43 digits
// always fit in the 32-byte seed.
const hashDigits = 43

// NewRandFromHash returns a deterministic source for a base58 hash seed
// such as "ooVTGMBk...". The "oo" prefix is dropped and at most 43 digits
// are decoded into a 32-byte ChaCha8 seed, zero padded on the right.
func NewRandFromHash(hash string) (*rand.Rand, error) {
	digits := strings.TrimPrefix(hash, "oo")
	if len(digits) > hashDigits {
		digits = digits[:hashDigits]
	}
	if digits == "" {
		return nil, fmt.Errorf("%w: empty hash", ErrInvalidSeed)
	}
	decoded, err := base58.Decode(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	var seed [32]byte
	copy(seed[:], decoded)
	return rand.New(rand.NewChaCha8(seed)), nil
}

// RandRange returns a uniform value in [a, b). An empty range returns a.
func RandRange(rng *rand.Rand, a, b float64) float64 {
	if b <= a {
		return a
	}
	return a + (b-a)*rng.Float64()
}

// LayerSeed derives a per-layer seed from a global art seed.
// Generators call it to keep layers independent yet reproducible.
func LayerSeed(seed float64, layer int) float64 {
	return seed*7.7 + float64(layer)*1.3
}
