package ga

import (
	"errors"
	"fmt"

	"github.com/baldhumanity/evolve-go/ga/rng"
)

// SelectionMethod picks one parent from a population.
type SelectionMethod interface {
	Name() string
	Select(r *rng.Rand, population []Individual) Individual
}

// SelectionMethods maps config names to selection constructors.
var SelectionMethods = map[string]func(cfg *AlgorithmConfig) SelectionMethod{
	"roulette": func(*AlgorithmConfig) SelectionMethod {
		return RouletteWheelSelection{}
	},
	"tournament": func(cfg *AlgorithmConfig) SelectionMethod {
		return TournamentSelection{Size: cfg.TournamentSize}
	},
}

// GetSelectionMethod builds a selection method by name.
func GetSelectionMethod(name string, cfg *AlgorithmConfig) (SelectionMethod, error) {
	if ctor, ok := SelectionMethods[name]; ok {
		return ctor(cfg), nil
	}
	return nil, fmt.Errorf("unknown selection method: %s", name)
}

// RouletteWheelSelection is fitness-proportionate selection: individual i is
// picked with probability fitness_i / sum(fitness).
//
// A population whose fitness values are all zero has no proportions to speak
// of; in that case one individual is picked uniformly at random instead.
// Negative fitness is a contract violation and panics.
type RouletteWheelSelection struct{}

func (RouletteWheelSelection) Name() string {
	return "roulette"
}

func (RouletteWheelSelection) Select(r *rng.Rand, population []Individual) Individual {
	if len(population) == 0 {
		panic("ga: cannot select from an empty population")
	}
	weights := make([]float32, len(population))
	for i, ind := range population {
		weights[i] = ind.Fitness()
	}

	idx, err := r.WeightedIndex(weights)
	switch {
	case errors.Is(err, rng.ErrAllWeightsZero):
		idx = r.Intn(len(population))
	case err != nil:
		panic(fmt.Sprintf("ga: roulette wheel selection: %v", err))
	}
	return population[idx]
}

// TournamentSelection draws Size individuals uniformly (with replacement) and
// keeps the fittest; the earliest draw wins ties.
type TournamentSelection struct {
	Size int
}

func (TournamentSelection) Name() string {
	return "tournament"
}

func (s TournamentSelection) Select(r *rng.Rand, population []Individual) Individual {
	if len(population) == 0 {
		panic("ga: cannot select from an empty population")
	}
	size := s.Size
	if size <= 0 {
		size = 2
	}

	best := population[r.Intn(len(population))]
	for i := 1; i < size; i++ {
		candidate := population[r.Intn(len(population))]
		if candidate.Fitness() > best.Fitness() {
			best = candidate
		}
	}
	return best
}
