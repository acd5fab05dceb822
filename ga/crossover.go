package ga

import (
	"fmt"

	"github.com/baldhumanity/evolve-go/ga/rng"
)

// CrossoverMethod combines two parent chromosomes into a new child.
type CrossoverMethod interface {
	Name() string
	Crossover(r *rng.Rand, parentA, parentB Chromosome) Chromosome
}

// CrossoverMethods maps config names to crossover constructors.
var CrossoverMethods = map[string]func(cfg *AlgorithmConfig) CrossoverMethod{
	"uniform":      func(*AlgorithmConfig) CrossoverMethod { return UniformCrossover{} },
	"single_point": func(*AlgorithmConfig) CrossoverMethod { return SinglePointCrossover{} },
}

// GetCrossoverMethod builds a crossover method by name.
func GetCrossoverMethod(name string, cfg *AlgorithmConfig) (CrossoverMethod, error) {
	if ctor, ok := CrossoverMethods[name]; ok {
		return ctor(cfg), nil
	}
	return nil, fmt.Errorf("unknown crossover method: %s", name)
}

func checkParents(parentA, parentB Chromosome) {
	if parentA.Len() != parentB.Len() {
		panic(fmt.Sprintf("ga: crossover of chromosomes with different lengths (%d and %d)", parentA.Len(), parentB.Len()))
	}
}

// UniformCrossover flips one fair coin per gene, in position order, and takes
// the gene from parentA on heads and from parentB on tails.
type UniformCrossover struct{}

func (UniformCrossover) Name() string {
	return "uniform"
}

func (UniformCrossover) Crossover(r *rng.Rand, parentA, parentB Chromosome) Chromosome {
	checkParents(parentA, parentB)

	genes := make([]float32, parentA.Len())
	for i := range genes {
		if r.Bool(0.5) {
			genes[i] = parentA.genes[i]
		} else {
			genes[i] = parentB.genes[i]
		}
	}
	return Chromosome{genes: genes}
}

// SinglePointCrossover draws one cut point in [0, len]; genes before it come
// from parentA and the rest from parentB.
type SinglePointCrossover struct{}

func (SinglePointCrossover) Name() string {
	return "single_point"
}

func (SinglePointCrossover) Crossover(r *rng.Rand, parentA, parentB Chromosome) Chromosome {
	checkParents(parentA, parentB)

	point := r.Intn(parentA.Len() + 1)
	genes := make([]float32, 0, parentA.Len())
	genes = append(genes, parentA.genes[:point]...)
	genes = append(genes, parentB.genes[point:]...)
	return Chromosome{genes: genes}
}
