package ga

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baldhumanity/evolve-go/ga/rng"
)

func mutated(chance, coeff float32) []float32 {
	child := NewChromosome(1, 2, 3, 4, 5)
	NewGaussianMutation(chance, coeff).Mutate(rng.Seeded(0), &child)
	return child.Genes()
}

func TestGaussianMutation(t *testing.T) {
	original := []float32{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		chance float32
		coeff  float32
		want   []float32
	}{
		{"zero chance, zero coefficient", 0, 0, original},
		{"zero chance, nonzero coefficient", 0, 0.8, original},
		{"even chance, zero coefficient", 0.5, 0, original},
		{"even chance, nonzero coefficient", 0.5, 0.8, []float32{1, 2.3590002, 3, 3.7445111, 5}},
		{"max chance, zero coefficient", 1, 0, original},
		{"max chance, nonzero coefficient", 1, 0.8, []float32{0.27274954, 1.8140674, 3.3590002, 4.07918, 5.5780945}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mutated(tt.chance, tt.coeff))
		})
	}
}

func TestGaussianMutationMaxChanceChangesEveryGene(t *testing.T) {
	r := rng.Seeded(11)
	for round := 0; round < 20; round++ {
		child := NewChromosome(1, 2, 3, 4, 5, 6, 7, 8)
		before := child.Genes()
		NewGaussianMutation(1, 0.25).Mutate(r, &child)
		for i, gene := range child.All() {
			assert.NotEqual(t, before[i], gene, "gene %d unchanged", i)
			assert.InDelta(t, before[i], gene, 0.25)
		}
	}
}

func TestGaussianMutationChanceBounds(t *testing.T) {
	assert.Panics(t, func() { NewGaussianMutation(-0.1, 1) })
	assert.Panics(t, func() { NewGaussianMutation(1.1, 1) })
	assert.NotPanics(t, func() { NewGaussianMutation(0, 1) })
	assert.NotPanics(t, func() { NewGaussianMutation(1, 1) })

	m, err := GetMutationMethod("gaussian", &AlgorithmConfig{MutationChance: 0.25, MutationCoeff: 3})
	assert.NoError(t, err)
	assert.Equal(t, float32(0.25), m.(GaussianMutation).Chance())
	assert.Equal(t, float32(3), m.(GaussianMutation).Coeff())

	_, err = GetMutationMethod("cauchy", &AlgorithmConfig{})
	assert.Error(t, err)
}

func TestGaussianMutationLeavesSharedGenesAlone(t *testing.T) {
	ind := individual(1, 2, 3)
	child := ind.Chromosome()

	NewGaussianMutation(1, 0.8).Mutate(rng.Seeded(0), &child)
	assert.NotEqual(t, []float32{1, 2, 3}, child.Genes())
	assert.Equal(t, []float32{1, 2, 3}, ind.Chromosome().Genes())
}
