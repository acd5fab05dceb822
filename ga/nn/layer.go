package nn

import (
	"fmt"

	"github.com/baldhumanity/evolve-go/ga/rng"
)

// Layer is a non-empty group of neurons sharing the same input vector.
type Layer struct {
	neurons []Neuron
}

// NewLayer panics if neurons is empty or the neurons disagree on input size.
func NewLayer(neurons ...Neuron) Layer {
	if len(neurons) == 0 {
		panic("nn: layer needs at least one neuron")
	}
	inputSize := neurons[0].InputSize()
	for i, n := range neurons {
		if n.InputSize() != inputSize {
			panic(fmt.Sprintf("nn: neuron %d has %d weights, expected %d", i, n.InputSize(), inputSize))
		}
	}
	owned := make([]Neuron, len(neurons))
	copy(owned, neurons)
	return Layer{neurons: owned}
}

// RandomLayer builds outputSize random neurons with inputSize weights each.
func RandomLayer(r *rng.Rand, inputSize, outputSize int) Layer {
	if outputSize <= 0 {
		panic(fmt.Sprintf("nn: invalid layer output size %d", outputSize))
	}
	neurons := make([]Neuron, outputSize)
	for i := range neurons {
		neurons[i] = RandomNeuron(r, inputSize)
	}
	return Layer{neurons: neurons}
}

func layerFromWeights(inputSize, outputSize int, next func() (float32, bool)) (Layer, error) {
	neurons := make([]Neuron, outputSize)
	for i := range neurons {
		n, err := neuronFromWeights(inputSize, next)
		if err != nil {
			return Layer{}, err
		}
		neurons[i] = n
	}
	return Layer{neurons: neurons}, nil
}

// Len returns the number of neurons, which is also the output size.
func (l Layer) Len() int { return len(l.neurons) }

// InputSize is the number of inputs each neuron accepts.
func (l Layer) InputSize() int { return l.neurons[0].InputSize() }

// Neuron returns the i-th neuron.
func (l Layer) Neuron(i int) Neuron { return l.neurons[i] }

// Propagate feeds the same inputs to every neuron; outputs follow neuron order.
func (l Layer) Propagate(inputs []float32) []float32 {
	outputs := make([]float32, len(l.neurons))
	for i, n := range l.neurons {
		outputs[i] = n.Propagate(inputs)
	}
	return outputs
}
