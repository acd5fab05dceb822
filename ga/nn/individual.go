package nn

import (
	"fmt"
	"math"

	"github.com/baldhumanity/evolve-go/ga"
	"github.com/baldhumanity/evolve-go/ga/rng"
)

// Individual adapts a network of a fixed topology to ga.Individual.
// It stores the encoded network; Network decodes it on demand.
type Individual struct {
	topology   []LayerTopology
	chromosome ga.Chromosome
	fitness    float32
}

var _ ga.Individual = (*Individual)(nil)

// NewIndividual wraps an existing network with the fitness it earned.
func NewIndividual(network *Network, fitness float32) *Individual {
	checkFitness(fitness)
	return &Individual{
		topology:   network.Topology(),
		chromosome: network.Chromosome(),
		fitness:    fitness,
	}
}

// RandomIndividual creates an unevaluated individual around a random network.
func RandomIndividual(r *rng.Rand, topology []LayerTopology) *Individual {
	return NewIndividual(RandomNetwork(r, topology), 0)
}

func (i *Individual) Fitness() float32 { return i.fitness }

func (i *Individual) Chromosome() ga.Chromosome { return i.chromosome }

// Create keeps the receiver's topology and panics if the chromosome does not
// have exactly the topology's weight count.
func (i *Individual) Create(chromosome ga.Chromosome) ga.Individual {
	if want := WeightCount(i.topology); chromosome.Len() != want {
		panic(fmt.Sprintf("nn: chromosome has %d genes, topology needs %d", chromosome.Len(), want))
	}
	return &Individual{topology: i.topology, chromosome: chromosome}
}

// WithFitness returns a copy scored with fitness, which must be non-negative.
func (i *Individual) WithFitness(fitness float32) *Individual {
	checkFitness(fitness)
	return &Individual{topology: i.topology, chromosome: i.chromosome, fitness: fitness}
}

// Topology returns the topology used to decode the chromosome.
func (i *Individual) Topology() []LayerTopology {
	out := make([]LayerTopology, len(i.topology))
	copy(out, i.topology)
	return out
}

// Network decodes the individual's network.
func (i *Individual) Network() (*Network, error) {
	return FromChromosome(i.topology, i.chromosome)
}

func checkFitness(fitness float32) {
	if !(fitness >= 0) || math.IsInf(float64(fitness), 1) {
		panic(fmt.Sprintf("nn: invalid fitness %v", fitness))
	}
}
