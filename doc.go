// Package evolve provides a Go implementation of a generic genetic algorithm
// and the fixed-topology neural networks it is most often used to train.
//
// The genetic algorithm lives in package ga. It knows nothing about what it
// evolves: anything that exposes a fitness, a chromosome of float32 genes and a
// way to build a sibling from a new chromosome can be evolved. Package ga/nn
// provides feed-forward ReLU networks whose weights map onto such chromosomes,
// and package ga/rng the seedable random source every randomized step draws
// from, so a seed reproduces a run exactly.
//
// Basic usage:
//
//	// Load configuration
//	config, err := ga.LoadConfig("path/to/config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	// Create the initial generation
//	r := rng.Seeded(config.Algorithm.Seed)
//	topology := nn.Topology(config.Network.Topology...)
//	initial := make([]ga.Individual, config.Algorithm.PopSize)
//	for i := range initial {
//		initial[i] = nn.RandomIndividual(r, topology)
//	}
//
//	pop, err := ga.NewPopulation(config, r, initial)
//	if err != nil {
//		log.Fatalf("Error creating population: %v", err)
//	}
//
//	// Run until the fitness threshold or the generation limit is reached
//	winner, err := pop.Run(evalNetworks)
//	if err != nil {
//		log.Fatalf("Error running evolution: %v", err)
//	}
//	if winner != nil {
//		fmt.Println("Solution found!")
//	}
//
// A single generation can also be evolved directly, without a Population:
//
//	algorithm := ga.NewGeneticAlgorithm(
//		ga.RouletteWheelSelection{},
//		ga.UniformCrossover{},
//		ga.NewGaussianMutation(0.01, 0.3),
//	)
//	next := algorithm.Evolve(r, evaluated)
package evolve
