package ga

import (
	"github.com/baldhumanity/evolve-go/ga/rng"
)

// GeneticAlgorithm produces a new generation from an evaluated one using a
// selection, a crossover and a mutation strategy.
type GeneticAlgorithm struct {
	selection SelectionMethod
	crossover CrossoverMethod
	mutation  MutationMethod
}

// NewGeneticAlgorithm creates a driver owning the three strategies.
func NewGeneticAlgorithm(selection SelectionMethod, crossover CrossoverMethod, mutation MutationMethod) *GeneticAlgorithm {
	if selection == nil || crossover == nil || mutation == nil {
		panic("ga: genetic algorithm requires selection, crossover and mutation methods")
	}
	return &GeneticAlgorithm{
		selection: selection,
		crossover: crossover,
		mutation:  mutation,
	}
}

// Selection returns the selection strategy.
func (g *GeneticAlgorithm) Selection() SelectionMethod { return g.selection }

// Crossover returns the crossover strategy.
func (g *GeneticAlgorithm) Crossover() CrossoverMethod { return g.crossover }

// Mutation returns the mutation strategy.
func (g *GeneticAlgorithm) Mutation() MutationMethod { return g.mutation }

// Evolve builds a replacement population of the same size. For each slot two
// parents are selected independently (a parent may be drawn twice), crossed
// over, the child is mutated and handed to Create of the first parent.
//
// The source is consumed per child in that order: selection, selection,
// crossover, mutation. The input population is left untouched. Evolve panics
// on an empty population.
func (g *GeneticAlgorithm) Evolve(r *rng.Rand, population []Individual) []Individual {
	if len(population) == 0 {
		panic("ga: cannot evolve an empty population")
	}

	next := make([]Individual, 0, len(population))
	for range population {
		parentA := g.selection.Select(r, population)
		parentB := g.selection.Select(r, population)

		child := g.crossover.Crossover(r, parentA.Chromosome(), parentB.Chromosome())
		g.mutation.Mutate(r, &child)

		next = append(next, parentA.Create(child))
	}
	return next
}
