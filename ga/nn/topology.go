package nn

import "fmt"

// LayerTopology is the neuron count of one layer. The first entry of a
// topology describes the network inputs.
type LayerTopology struct {
	Neurons int
}

// Topology builds a topology from neuron counts.
func Topology(neurons ...int) []LayerTopology {
	out := make([]LayerTopology, len(neurons))
	for i, n := range neurons {
		out[i] = LayerTopology{Neurons: n}
	}
	return out
}

// WeightCount returns how many values encode a network of this topology:
// one bias plus one weight per input, for every non-input neuron.
func WeightCount(topology []LayerTopology) int {
	count := 0
	for i := 1; i < len(topology); i++ {
		count += topology[i].Neurons * (topology[i-1].Neurons + 1)
	}
	return count
}

func checkTopology(topology []LayerTopology) {
	if len(topology) <= 1 {
		panic(fmt.Sprintf("nn: topology needs at least 2 layers, got %d", len(topology)))
	}
	for i, layer := range topology {
		if layer.Neurons <= 0 {
			panic(fmt.Sprintf("nn: topology layer %d has %d neurons", i, layer.Neurons))
		}
	}
}
