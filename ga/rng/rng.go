// Package rng provides the seedable random source consumed by every randomized
// operation of the genetic algorithm and the neural network.
//
// All sampling goes through Rand so that the amount and order of entropy
// consumed by each primitive is fixed: a given seed and call sequence yields
// bit-identical results across runs.
package rng

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"sort"
)

// Source is a stream of uniformly distributed random bits.
// *math/rand/v2.Rand and *ChaCha8 both satisfy it.
type Source interface {
	Uint32() uint32
	Uint64() uint64
}

var (
	// ErrNoItem is returned by WeightedIndex for an empty weight list.
	ErrNoItem = errors.New("no weights provided")
	// ErrInvalidWeight is returned for a negative, NaN or infinite weight.
	ErrInvalidWeight = errors.New("invalid weight")
	// ErrAllWeightsZero is returned when every weight is zero.
	ErrAllWeightsZero = errors.New("all weights are zero")
)

// maxRand is the largest value produced by unit: 1 - 2^-23.
const maxRand float32 = 1 - 1.0/(1<<23)

// Rand draws samples from a Source.
type Rand struct {
	src Source
}

// New wraps src.
func New(src Source) *Rand {
	if src == nil {
		panic("rng: nil source")
	}
	return &Rand{src: src}
}

// Seeded returns a Rand over a ChaCha8 source seeded with seed.
func Seeded(seed uint64) *Rand {
	return New(SeedChaCha8(seed))
}

// Uint32 returns the next 32 random bits.
func (r *Rand) Uint32() uint32 { return r.src.Uint32() }

// Uint64 returns the next 64 random bits.
func (r *Rand) Uint64() uint64 { return r.src.Uint64() }

// Float32 returns a value in [0, 1) with 24 bits of precision.
func (r *Rand) Float32() float32 {
	return float32(r.src.Uint32()>>8) * (1.0 / (1 << 24))
}

// Bool returns true with probability p. It consumes one Uint64 unless p is 1.
func (r *Rand) Bool(p float64) bool {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("rng: probability %v outside [0, 1]", p))
	}
	if p == 1 {
		return true
	}
	threshold := uint64(p * float64(1<<64))
	return r.src.Uint64() < threshold
}

// Float32Inclusive returns a value in [lo, hi] from a single Uint32.
func (r *Rand) Float32Inclusive(lo, hi float32) float32 {
	if !(lo <= hi) || isInf32(lo) || isInf32(hi) {
		panic(fmt.Sprintf("rng: invalid inclusive range [%v, %v]", lo, hi))
	}
	scale := float32(float32(hi-lo) / maxRand)
	for float32(scale*maxRand)+lo > hi {
		scale = prevFloat32(scale)
	}
	return r.sample(lo, scale)
}

// Float32Range returns a value in [lo, hi) from a single Uint32.
func (r *Rand) Float32Range(lo, hi float32) float32 {
	if !(lo < hi) || isInf32(lo) || isInf32(hi) {
		panic(fmt.Sprintf("rng: invalid range [%v, %v)", lo, hi))
	}
	scale := float32(hi - lo)
	for float32(scale*maxRand)+lo >= hi {
		scale = prevFloat32(scale)
	}
	return r.sample(lo, scale)
}

// Intn returns a value in [0, n) using widening multiplication with rejection.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("rng: invalid argument to Intn: %d", n))
	}
	if uint64(n) <= math.MaxUint32 {
		span := uint32(n)
		zone := (span << bits.LeadingZeros32(span)) - 1
		for {
			hi, lo := bits.Mul32(r.src.Uint32(), span)
			if lo <= zone {
				return int(hi)
			}
		}
	}
	span := uint64(n)
	zone := (span << bits.LeadingZeros64(span)) - 1
	for {
		hi, lo := bits.Mul64(r.src.Uint64(), span)
		if lo <= zone {
			return int(hi)
		}
	}
}

// WeightedIndex picks an index with probability proportional to its weight.
// It consumes exactly one Float32Range draw over [0, sum(weights)).
func (r *Rand) WeightedIndex(weights []float32) (int, error) {
	if len(weights) == 0 {
		return 0, ErrNoItem
	}
	total := weights[0]
	if !validWeight(total) {
		return 0, fmt.Errorf("%w at index 0: %v", ErrInvalidWeight, total)
	}
	cumulative := make([]float32, 0, len(weights)-1)
	for i, w := range weights[1:] {
		if !validWeight(w) {
			return 0, fmt.Errorf("%w at index %d: %v", ErrInvalidWeight, i+1, w)
		}
		cumulative = append(cumulative, total)
		total += w
	}
	if total == 0 {
		return 0, ErrAllWeightsZero
	}
	if isInf32(total) {
		return 0, fmt.Errorf("%w: weights overflow", ErrInvalidWeight)
	}

	chosen := r.Float32Range(0, total)
	return sort.Search(len(cumulative), func(i int) bool {
		return cumulative[i] > chosen
	}), nil
}

// sample maps one Uint32 onto [lo, lo+scale*maxRand].
func (r *Rand) sample(lo, scale float32) float32 {
	return float32(unit(r.src.Uint32())*scale) + lo
}

// unit fills the mantissa of a float in [1, 2) and shifts it to [0, 1).
func unit(v uint32) float32 {
	return math.Float32frombits(v>>9|0x3f800000) - 1
}

func prevFloat32(f float32) float32 {
	return math.Float32frombits(math.Float32bits(f) - 1)
}

func validWeight(w float32) bool {
	return w >= 0 && !isInf32(w)
}

func isInf32(f float32) bool {
	return math.IsInf(float64(f), 0)
}
