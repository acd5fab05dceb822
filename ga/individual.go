package ga

// Individual is a candidate solution as seen by the genetic algorithm.
// Applications implement it for whatever they evolve (an agent, a network...).
type Individual interface {
	// Fitness is the non-negative score assigned by the owning environment.
	Fitness() float32
	// Chromosome returns the genes that describe this individual.
	Chromosome() Chromosome
	// Create builds a new individual of the same kind from a chromosome.
	// The result must not depend on the receiver's fitness or genes; it has
	// no meaningful fitness until the environment evaluates it again.
	Create(chromosome Chromosome) Individual
}

// Fitnesses returns the fitness of every individual as float64, in order.
func Fitnesses(population []Individual) []float64 {
	out := make([]float64, len(population))
	for i, ind := range population {
		out[i] = float64(ind.Fitness())
	}
	return out
}
