package ga

import (
	"fmt"

	"github.com/baldhumanity/evolve-go/ga/rng"
)

// MutationMethod perturbs a freshly created child. Implementations replace
// *child with a new chromosome rather than changing the genes it holds, which
// may still be shared with a parent.
type MutationMethod interface {
	Name() string
	Mutate(r *rng.Rand, child *Chromosome)
}

// MutationMethods maps config names to mutation constructors.
var MutationMethods = map[string]func(cfg *AlgorithmConfig) MutationMethod{
	"gaussian": func(cfg *AlgorithmConfig) MutationMethod {
		return NewGaussianMutation(float32(cfg.MutationChance), float32(cfg.MutationCoeff))
	},
}

// GetMutationMethod builds a mutation method by name.
func GetMutationMethod(name string, cfg *AlgorithmConfig) (MutationMethod, error) {
	if ctor, ok := MutationMethods[name]; ok {
		return ctor(cfg), nil
	}
	return nil, fmt.Errorf("unknown mutation method: %s", name)
}

// GaussianMutation nudges each gene with probability Chance by
// sign * Coeff * u, where the sign is a fair coin and u is uniform in [0, 1).
//
// The magnitude is uniformly distributed, not normally; the name is kept for
// compatibility with existing configurations and pinned outputs.
//
// Per gene the source is consumed as: sign, chance gate, then magnitude only
// when the gate passes.
type GaussianMutation struct {
	chance float32
	coeff  float32
}

// NewGaussianMutation panics unless chance is within [0, 1].
func NewGaussianMutation(chance, coeff float32) GaussianMutation {
	if !(chance >= 0 && chance <= 1) {
		panic(fmt.Sprintf("ga: mutation chance %v outside [0, 1]", chance))
	}
	return GaussianMutation{chance: chance, coeff: coeff}
}

func (GaussianMutation) Name() string {
	return "gaussian"
}

// Chance is the per-gene probability of a change.
func (m GaussianMutation) Chance() float32 { return m.chance }

// Coeff is the maximum magnitude of a change.
func (m GaussianMutation) Coeff() float32 { return m.coeff }

func (m GaussianMutation) Mutate(r *rng.Rand, child *Chromosome) {
	genes := child.Genes()
	for i, gene := range genes {
		sign := float32(-1)
		if r.Bool(0.5) {
			sign = 1
		}
		if r.Bool(float64(m.chance)) {
			genes[i] = gene + float32(float32(sign*m.coeff)*r.Float32())
		}
	}
	*child = Chromosome{genes: genes}
}
