package ga

// testIndividual scores itself with the sum of its genes unless a fixed
// fitness was given.
type testIndividual struct {
	chromosome Chromosome
	fitness    float32
	fixed      bool
}

func individual(genes ...float32) *testIndividual {
	return &testIndividual{chromosome: NewChromosome(genes...)}
}

func withFitness(fitness float32) *testIndividual {
	return &testIndividual{fitness: fitness, fixed: true}
}

func (t *testIndividual) Fitness() float32 {
	if t.fixed {
		return t.fitness
	}
	var sum float32
	for _, g := range t.chromosome.genes {
		sum += g
	}
	return sum
}

func (t *testIndividual) Chromosome() Chromosome {
	if t.fixed {
		panic("not supported for fixed-fitness test individuals")
	}
	return t.chromosome
}

func (t *testIndividual) Create(chromosome Chromosome) Individual {
	return &testIndividual{chromosome: chromosome}
}

func genesOf(population []Individual) [][]float32 {
	out := make([][]float32, len(population))
	for i, ind := range population {
		out[i] = ind.Chromosome().Genes()
	}
	return out
}

func fitnessOf(population []Individual) []float32 {
	out := make([]float32, len(population))
	for i, ind := range population {
		out[i] = ind.Fitness()
	}
	return out
}
