package ga

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/ini.v1"
)

// Config stores the configuration parameters for an evolutionary run.
type Config struct {
	Algorithm AlgorithmConfig
	Network   NetworkConfig
}

// AlgorithmConfig holds parameters of the genetic algorithm and the run loop.
type AlgorithmConfig struct {
	PopSize              int     `ini:"pop_size"`
	Generations          int     `ini:"generations"`
	Seed                 uint64  `ini:"seed"`
	FitnessThreshold     float64 `ini:"fitness_threshold"`
	NoFitnessTermination bool    `ini:"no_fitness_termination"`

	Selection      string `ini:"selection"`       // "roulette" or "tournament"
	TournamentSize int    `ini:"tournament_size"` // Only used by "tournament"
	Crossover      string `ini:"crossover"`       // "uniform" or "single_point"

	Mutation       string  `ini:"mutation"`        // "gaussian"
	MutationChance float64 `ini:"mutation_chance"` // Per-gene probability, [0, 1]
	MutationCoeff  float64 `ini:"mutation_coeff"`  // Maximum change magnitude
}

// NetworkConfig holds the shape of the evolved networks.
type NetworkConfig struct {
	Topology []int `ini:"topology" delim:" "` // Neuron count per layer, inputs first
}

// DefaultConfig returns the values used for keys missing from a config file.
// The mutation parameters match the ones the simulation front-end has always
// used.
func DefaultConfig() *Config {
	return &Config{
		Algorithm: AlgorithmConfig{
			PopSize:          20,
			Generations:      100,
			FitnessThreshold: math.Inf(1),
			Selection:        "roulette",
			TournamentSize:   2,
			Crossover:        "uniform",
			Mutation:         "gaussian",
			MutationChance:   0.01,
			MutationCoeff:    0.3,
		},
	}
}

// LoadConfig loads configuration parameters from an INI file.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true, // Allow # comments starting with # or ;
		UnescapeValueCommentSymbols: true, // If # or ; appear in value, treat as value
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	// Map sections to structs.
	// Missing keys keep their defaults: MapTo only touches keys that exist.
	config := DefaultConfig()
	if err := cfg.Section("GeneticAlgorithm").MapTo(&config.Algorithm); err != nil {
		return nil, fmt.Errorf("failed to map [GeneticAlgorithm] section: %w", err)
	}
	if err := cfg.Section("Network").MapTo(&config.Network); err != nil {
		return nil, fmt.Errorf("failed to map [Network] section: %w", err)
	}

	// Strategy names are matched case-insensitively, ignoring trailing comments.
	config.Algorithm.Selection = cleanIniString(config.Algorithm.Selection)
	config.Algorithm.Crossover = cleanIniString(config.Algorithm.Crossover)
	config.Algorithm.Mutation = cleanIniString(config.Algorithm.Mutation)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks value ranges and strategy names.
func (c *Config) Validate() error {
	a := &c.Algorithm
	if a.PopSize <= 0 {
		return fmt.Errorf("config error: pop_size must be positive")
	}
	if a.Generations <= 0 {
		return fmt.Errorf("config error: generations must be positive")
	}
	if math.IsNaN(a.FitnessThreshold) {
		return fmt.Errorf("config error: fitness_threshold must be a number")
	}
	if !(a.MutationChance >= 0 && a.MutationChance <= 1) {
		return fmt.Errorf("config error: mutation_chance must be between 0 and 1")
	}
	if !(a.MutationCoeff >= 0) || math.IsInf(a.MutationCoeff, 1) {
		return fmt.Errorf("config error: mutation_coeff must be a non-negative finite number")
	}
	if a.TournamentSize < 0 {
		return fmt.Errorf("config error: tournament_size cannot be negative")
	}
	if _, ok := SelectionMethods[a.Selection]; !ok {
		return fmt.Errorf("config error: invalid selection '%s'", a.Selection)
	}
	if _, ok := CrossoverMethods[a.Crossover]; !ok {
		return fmt.Errorf("config error: invalid crossover '%s'", a.Crossover)
	}
	if _, ok := MutationMethods[a.Mutation]; !ok {
		return fmt.Errorf("config error: invalid mutation '%s'", a.Mutation)
	}

	if len(c.Network.Topology) < 2 {
		return fmt.Errorf("config error: topology needs at least an input and an output layer")
	}
	for i, n := range c.Network.Topology {
		if n <= 0 {
			return fmt.Errorf("config error: topology layer %d must have a positive neuron count", i)
		}
	}
	return nil
}

// NewGeneticAlgorithm builds the configured strategies.
func (c *Config) NewGeneticAlgorithm() (*GeneticAlgorithm, error) {
	selection, err := GetSelectionMethod(c.Algorithm.Selection, &c.Algorithm)
	if err != nil {
		return nil, err
	}
	crossover, err := GetCrossoverMethod(c.Algorithm.Crossover, &c.Algorithm)
	if err != nil {
		return nil, err
	}
	mutation, err := GetMutationMethod(c.Algorithm.Mutation, &c.Algorithm)
	if err != nil {
		return nil, err
	}
	return NewGeneticAlgorithm(selection, crossover, mutation), nil
}

// cleanIniString removes inline comments and trims whitespace from a string read from INI.
func cleanIniString(s string) string {
	if idx := strings.IndexAny(s, "#;"); idx != -1 {
		s = s[:idx]
	}
	return strings.ToLower(strings.TrimSpace(s))
}
