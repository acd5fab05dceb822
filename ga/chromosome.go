package ga

import (
	"fmt"
	"iter"
	"strings"
)

// Chromosome is an ordered sequence of genes. Gene positions carry meaning for
// whoever decodes the chromosome, so order is preserved by every operator.
//
// A Chromosome is immutable: copies may share storage, and operators build
// new gene slices instead of writing into existing ones.
type Chromosome struct {
	genes []float32
}

// NewChromosome creates a chromosome holding a copy of genes.
func NewChromosome(genes ...float32) Chromosome {
	owned := make([]float32, len(genes))
	copy(owned, genes)
	return Chromosome{genes: owned}
}

// Len returns the number of genes.
func (c Chromosome) Len() int {
	return len(c.genes)
}

// At returns the gene at position i.
func (c Chromosome) At(i int) float32 {
	return c.genes[i]
}

// Genes returns a copy of the genes.
func (c Chromosome) Genes() []float32 {
	out := make([]float32, len(c.genes))
	copy(out, c.genes)
	return out
}

// All iterates over (position, gene) pairs in order.
func (c Chromosome) All() iter.Seq2[int, float32] {
	return func(yield func(int, float32) bool) {
		for i, g := range c.genes {
			if !yield(i, g) {
				return
			}
		}
	}
}

// Equal reports whether both chromosomes hold the same genes in the same order.
func (c Chromosome) Equal(other Chromosome) bool {
	if len(c.genes) != len(other.genes) {
		return false
	}
	for i, g := range c.genes {
		if g != other.genes[i] {
			return false
		}
	}
	return true
}

// String returns a string representation of the Chromosome.
func (c Chromosome) String() string {
	parts := make([]string, len(c.genes))
	for i, g := range c.genes {
		parts[i] = fmt.Sprintf("%g", g)
	}
	return "Chromosome[" + strings.Join(parts, " ") + "]"
}
