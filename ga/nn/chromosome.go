package nn

import (
	"github.com/baldhumanity/evolve-go/ga"
)

// Chromosome encodes the network's weights as genes.
func (n *Network) Chromosome() ga.Chromosome {
	return ga.NewChromosome(n.Weights()...)
}

// FromChromosome decodes a network of the given topology from genes.
func FromChromosome(topology []LayerTopology, chromosome ga.Chromosome) (*Network, error) {
	return FromWeights(topology, chromosome.Genes())
}
