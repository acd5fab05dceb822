package nn

import (
	"fmt"

	"github.com/baldhumanity/evolve-go/ga/rng"
)

// Neuron computes max(0, bias + sum(inputs[i] * weights[i])).
type Neuron struct {
	bias    float32
	weights []float32
}

// NewNeuron creates a neuron with a copy of weights. It panics on empty weights.
func NewNeuron(bias float32, weights []float32) Neuron {
	if len(weights) == 0 {
		panic("nn: neuron needs at least one weight")
	}
	owned := make([]float32, len(weights))
	copy(owned, weights)
	return Neuron{bias: bias, weights: owned}
}

// RandomNeuron draws the bias, then each weight, uniformly from [-1, 1].
func RandomNeuron(r *rng.Rand, inputSize int) Neuron {
	if inputSize <= 0 {
		panic(fmt.Sprintf("nn: invalid neuron input size %d", inputSize))
	}
	bias := r.Float32Inclusive(-1, 1)
	weights := make([]float32, inputSize)
	for i := range weights {
		weights[i] = r.Float32Inclusive(-1, 1)
	}
	return Neuron{bias: bias, weights: weights}
}

// neuronFromWeights consumes the bias and then inputSize weights from next.
func neuronFromWeights(inputSize int, next func() (float32, bool)) (Neuron, error) {
	bias, ok := next()
	if !ok {
		return Neuron{}, ErrNotEnoughWeights
	}
	weights := make([]float32, inputSize)
	for i := range weights {
		if weights[i], ok = next(); !ok {
			return Neuron{}, ErrNotEnoughWeights
		}
	}
	return Neuron{bias: bias, weights: weights}, nil
}

// Bias returns the neuron's bias.
func (n Neuron) Bias() float32 { return n.bias }

// Weights returns a copy of the input weights.
func (n Neuron) Weights() []float32 {
	out := make([]float32, len(n.weights))
	copy(out, n.weights)
	return out
}

// InputSize is the number of inputs the neuron accepts.
func (n Neuron) InputSize() int { return len(n.weights) }

// Propagate panics unless len(inputs) matches the number of weights.
func (n Neuron) Propagate(inputs []float32) float32 {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("nn: neuron got %d inputs, expected %d", len(inputs), len(n.weights)))
	}
	var sum float32
	for i, in := range inputs {
		sum += float32(in * n.weights[i])
	}
	// ReLU; also maps NaN to zero.
	if out := n.bias + sum; out > 0 {
		return out
	}
	return 0
}
