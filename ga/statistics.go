package ga

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Statistics summarizes the fitness of one evaluated generation.
type Statistics struct {
	Generation int
	Size       int
	Min        float64
	Max        float64
	Mean       float64
	StdDev     float64 // Sample standard deviation; zero below two individuals.
	Fittest    int     // Index of the first individual with Max fitness.
}

// NewStatistics computes fitness statistics for population.
// An empty population yields a zero summary with Fittest set to -1.
func NewStatistics(generation int, population []Individual) Statistics {
	s := Statistics{Generation: generation, Size: len(population), Fittest: -1}
	if len(population) == 0 {
		return s
	}

	fitness := Fitnesses(population)
	s.Min = floats.Min(fitness)
	s.Max = floats.Max(fitness)
	s.Fittest = floats.MaxIdx(fitness)
	if len(fitness) < 2 {
		s.Mean = fitness[0]
	} else {
		s.Mean, s.StdDev = stat.MeanStdDev(fitness, nil)
	}
	return s
}

// String returns a one-line summary.
func (s Statistics) String() string {
	return fmt.Sprintf("generation %d: size=%d min=%.4f max=%.4f mean=%.4f stddev=%.4f",
		s.Generation, s.Size, s.Min, s.Max, s.Mean, s.StdDev)
}
