package ga

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[GeneticAlgorithm]
pop_size = 40
generations = 250
seed = 1234
fitness_threshold = 15.5
selection = Tournament # fittest of a few
tournament_size = 3
crossover = single_point
mutation = gaussian
mutation_chance = 0.05
mutation_coeff = 0.2

[Network]
topology = 9 18 2
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	a := config.Algorithm
	assert.Equal(t, 40, a.PopSize)
	assert.Equal(t, 250, a.Generations)
	assert.Equal(t, uint64(1234), a.Seed)
	assert.Equal(t, 15.5, a.FitnessThreshold)
	assert.False(t, a.NoFitnessTermination)
	assert.Equal(t, "tournament", a.Selection)
	assert.Equal(t, 3, a.TournamentSize)
	assert.Equal(t, "single_point", a.Crossover)
	assert.Equal(t, 0.05, a.MutationChance)
	assert.Equal(t, 0.2, a.MutationCoeff)
	assert.Equal(t, []int{9, 18, 2}, config.Network.Topology)

	g, err := config.NewGeneticAlgorithm()
	require.NoError(t, err)
	assert.Equal(t, TournamentSelection{Size: 3}, g.Selection())
	assert.Equal(t, SinglePointCrossover{}, g.Crossover())
	assert.Equal(t, NewGaussianMutation(0.05, 0.2), g.Mutation())
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
[Network]
topology = 2 1
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, defaults.Algorithm, config.Algorithm)
	assert.True(t, math.IsInf(config.Algorithm.FitnessThreshold, 1))
	assert.Equal(t, 0.01, config.Algorithm.MutationChance)
	assert.Equal(t, 0.3, config.Algorithm.MutationCoeff)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	tests := []struct {
		name     string
		contents string
		message  string
	}{
		{"pop size", "[GeneticAlgorithm]\npop_size = 0\n[Network]\ntopology = 2 1\n", "pop_size"},
		{"generations", "[GeneticAlgorithm]\ngenerations = -1\n[Network]\ntopology = 2 1\n", "generations"},
		{"chance", "[GeneticAlgorithm]\nmutation_chance = 1.5\n[Network]\ntopology = 2 1\n", "mutation_chance"},
		{"chance not a number", "[GeneticAlgorithm]\nmutation_chance = NaN\n[Network]\ntopology = 2 1\n", "mutation_chance"},
		{"coefficient", "[GeneticAlgorithm]\nmutation_coeff = -1\n[Network]\ntopology = 2 1\n", "mutation_coeff"},
		{"coefficient not a number", "[GeneticAlgorithm]\nmutation_coeff = NaN\n[Network]\ntopology = 2 1\n", "mutation_coeff"},
		{"infinite coefficient", "[GeneticAlgorithm]\nmutation_coeff = +Inf\n[Network]\ntopology = 2 1\n", "mutation_coeff"},
		{"selection", "[GeneticAlgorithm]\nselection = rank\n[Network]\ntopology = 2 1\n", "selection"},
		{"crossover", "[GeneticAlgorithm]\ncrossover = arithmetic\n[Network]\ntopology = 2 1\n", "crossover"},
		{"mutation", "[GeneticAlgorithm]\nmutation = cauchy\n[Network]\ntopology = 2 1\n", "mutation"},
		{"short topology", "[Network]\ntopology = 3\n", "topology"},
		{"empty layer", "[Network]\ntopology = 3 0 1\n", "topology"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.contents))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
