// Package nn implements the feed-forward ReLU networks evolved by package ga,
// and the flat weight encoding that maps them onto chromosomes.
//
// A network's weights flatten layer by layer, neuron by neuron, as
// (bias, weight0, weight1, ...). The topology is not part of the encoding:
// decoding needs the same topology the network was built with.
package nn

import (
	"errors"
	"fmt"

	"github.com/baldhumanity/evolve-go/ga/rng"
)

var (
	// ErrNotEnoughWeights is returned when a flat weight list runs out before
	// every neuron of the topology is filled.
	ErrNotEnoughWeights = errors.New("not enough weights")
	// ErrTooManyWeights is returned when weights remain after decoding.
	ErrTooManyWeights = errors.New("too many weights")
)

// Network is an immutable sequence of layers where each layer's neuron count
// equals the next layer's input size.
type Network struct {
	layers []Layer
}

// NewNetwork panics if layers is empty or adjacent layers do not fit.
func NewNetwork(layers ...Layer) *Network {
	if len(layers) == 0 {
		panic("nn: network needs at least one layer")
	}
	for i := 1; i < len(layers); i++ {
		if layers[i-1].Len() != layers[i].InputSize() {
			panic(fmt.Sprintf("nn: layer %d outputs %d values but layer %d expects %d inputs",
				i-1, layers[i-1].Len(), i, layers[i].InputSize()))
		}
	}
	owned := make([]Layer, len(layers))
	copy(owned, layers)
	return &Network{layers: owned}
}

// RandomNetwork builds one random layer per adjacent pair of the topology.
// It panics on a topology with fewer than two entries.
func RandomNetwork(r *rng.Rand, topology []LayerTopology) *Network {
	checkTopology(topology)

	layers := make([]Layer, 0, len(topology)-1)
	for i := 1; i < len(topology); i++ {
		layers = append(layers, RandomLayer(r, topology[i-1].Neurons, topology[i].Neurons))
	}
	return &Network{layers: layers}
}

// FromWeights rebuilds a network from its flat encoding.
func FromWeights(topology []LayerTopology, weights []float32) (*Network, error) {
	checkTopology(topology)

	pos := 0
	next := func() (float32, bool) {
		if pos >= len(weights) {
			return 0, false
		}
		w := weights[pos]
		pos++
		return w, true
	}

	layers := make([]Layer, 0, len(topology)-1)
	for i := 1; i < len(topology); i++ {
		layer, err := layerFromWeights(topology[i-1].Neurons, topology[i].Neurons, next)
		if err != nil {
			return nil, fmt.Errorf("%w: topology needs %d, got %d", err, WeightCount(topology), len(weights))
		}
		layers = append(layers, layer)
	}
	if pos != len(weights) {
		return nil, fmt.Errorf("%w: topology needs %d, got %d", ErrTooManyWeights, pos, len(weights))
	}
	return &Network{layers: layers}, nil
}

// Propagate threads inputs through every layer and returns the last layer's
// outputs.
func (n *Network) Propagate(inputs []float32) []float32 {
	for _, layer := range n.layers {
		inputs = layer.Propagate(inputs)
	}
	return inputs
}

// Len returns the number of layers.
func (n *Network) Len() int { return len(n.layers) }

// Layer returns the i-th layer.
func (n *Network) Layer(i int) Layer { return n.layers[i] }

// Topology reconstructs the topology the network was built from. A zero
// Network has no layers and returns nil.
func (n *Network) Topology() []LayerTopology {
	if len(n.layers) == 0 {
		return nil
	}
	topology := make([]LayerTopology, 0, len(n.layers)+1)
	topology = append(topology, LayerTopology{Neurons: n.layers[0].InputSize()})
	for _, layer := range n.layers {
		topology = append(topology, LayerTopology{Neurons: layer.Len()})
	}
	return topology
}

// Weights flattens the network: layer-major, then neuron-major, each neuron
// contributing its bias followed by its weights.
func (n *Network) Weights() []float32 {
	weights := make([]float32, 0, WeightCount(n.Topology()))
	for _, layer := range n.layers {
		for _, neuron := range layer.neurons {
			weights = append(weights, neuron.bias)
			weights = append(weights, neuron.weights...)
		}
	}
	return weights
}
