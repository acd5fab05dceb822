package ga

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/baldhumanity/evolve-go/ga/rng"
)

// EvaluateFunc is provided by the embedding environment. It receives the
// current generation and must return the same number of individuals with
// their fitness assigned, in any order it likes.
type EvaluateFunc func(generation int, individuals []Individual) ([]Individual, error)

// Population holds the state of an evolutionary run.
type Population struct {
	ID          uuid.UUID
	Config      *Config
	Algorithm   *GeneticAlgorithm
	Rand        *rng.Rand
	Individuals []Individual // Current, not yet evaluated, generation
	Generation  int
	Best        Individual   // Fittest individual evaluated so far
	History     []Statistics // One entry per evaluated generation
	Logger      *zap.Logger
}

// NewPopulation creates a run over an initial generation. A nil r is replaced
// by a ChaCha8 source seeded from the config.
func NewPopulation(config *Config, r *rng.Rand, initial []Individual) (*Population, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(initial) != config.Algorithm.PopSize {
		return nil, fmt.Errorf("initial population has %d individuals, pop_size is %d", len(initial), config.Algorithm.PopSize)
	}
	algorithm, err := config.NewGeneticAlgorithm()
	if err != nil {
		return nil, fmt.Errorf("failed to create genetic algorithm: %w", err)
	}
	if r == nil {
		r = rng.Seeded(config.Algorithm.Seed)
	}

	return &Population{
		ID:          uuid.New(),
		Config:      config,
		Algorithm:   algorithm,
		Rand:        r,
		Individuals: initial,
		Logger:      zap.NewNop(),
	}, nil
}

// RunGeneration evaluates the current generation and, unless the fitness
// threshold is met, replaces it with its offspring.
// Returns the best individual if the threshold is met, otherwise nil.
func (p *Population) RunGeneration(evaluate EvaluateFunc) (Individual, error) {
	p.Generation++
	start := time.Now()
	log := p.Logger.With(zap.Stringer("run", p.ID), zap.Int("generation", p.Generation))

	// 1. Evaluate Fitness
	log.Debug("evaluating fitness", zap.Int("size", len(p.Individuals)))
	evaluated, err := evaluate(p.Generation, p.Individuals)
	if err != nil {
		return nil, fmt.Errorf("fitness evaluation failed in generation %d: %w", p.Generation, err)
	}
	if len(evaluated) != len(p.Individuals) {
		return nil, fmt.Errorf("fitness evaluation in generation %d returned %d individuals, expected %d",
			p.Generation, len(evaluated), len(p.Individuals))
	}

	// 2. Record Statistics
	stats := NewStatistics(p.Generation, evaluated)
	p.History = append(p.History, stats)
	log.Info("generation evaluated",
		zap.Float64("min", stats.Min),
		zap.Float64("max", stats.Max),
		zap.Float64("mean", stats.Mean),
		zap.Float64("stddev", stats.StdDev),
	)

	// 3. Track Best Individual & Check Termination Condition
	if currentBest := evaluated[stats.Fittest]; p.Best == nil || currentBest.Fitness() > p.Best.Fitness() {
		p.Best = currentBest
		log.Info("new best individual", zap.Float32("fitness", p.Best.Fitness()))
	}

	if !p.Config.Algorithm.NoFitnessTermination && float64(p.Best.Fitness()) >= p.Config.Algorithm.FitnessThreshold {
		p.Individuals = evaluated
		log.Info("fitness threshold met", zap.Float64("threshold", p.Config.Algorithm.FitnessThreshold))
		return p.Best, nil
	}

	// 4. Evolve
	p.Individuals = p.Algorithm.Evolve(p.Rand, evaluated)
	log.Debug("generation finished", zap.Duration("elapsed", time.Since(start)))
	return nil, nil
}

// Run executes generations until the fitness threshold is met or the
// configured number of generations has been evaluated. The returned winner
// is nil when the threshold was never met; p.Best still holds the fittest
// individual seen.
func (p *Population) Run(evaluate EvaluateFunc) (Individual, error) {
	for p.Generation < p.Config.Algorithm.Generations {
		winner, err := p.RunGeneration(evaluate)
		if err != nil {
			return nil, err
		}
		if winner != nil {
			return winner, nil
		}
	}
	p.Logger.Info("reached maximum generations",
		zap.Stringer("run", p.ID),
		zap.Int("generations", p.Config.Algorithm.Generations),
	)
	return nil, nil
}
