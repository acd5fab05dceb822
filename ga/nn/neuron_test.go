package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baldhumanity/evolve-go/ga/rng"
)

func TestRandomNeuron(t *testing.T) {
	n := RandomNeuron(rng.Seeded(0), 4)

	assert.Equal(t, float32(-0.6255188), n.Bias())
	assert.Equal(t, []float32{0.67383957, 0.8181262, 0.26284897, 0.5238807}, n.Weights())
	assert.Equal(t, 4, n.InputSize())
}

func TestNeuronPropagate(t *testing.T) {
	n := NewNeuron(0.3, []float32{-0.3, 0.8})

	// ReLU floor.
	assert.Equal(t, float32(0), n.Propagate([]float32{-10, -10}))
	assert.InDelta(t, (-0.3*0.25)+(0.8*0.75)+0.3, n.Propagate([]float32{0.25, 0.75}), 1e-6)

	nan := float32(math.NaN())
	assert.Equal(t, float32(0), n.Propagate([]float32{nan, 0}))
}

func TestNeuronPropagateIsNeverNegative(t *testing.T) {
	r := rng.Seeded(5)
	for i := 0; i < 200; i++ {
		n := RandomNeuron(r, 3)
		inputs := []float32{r.Float32Inclusive(-5, 5), r.Float32Inclusive(-5, 5), r.Float32Inclusive(-5, 5)}

		out := n.Propagate(inputs)
		assert.GreaterOrEqual(t, out, float32(0))
		assert.Equal(t, out, n.Propagate(inputs))
	}
}

func TestNeuronPanics(t *testing.T) {
	assert.Panics(t, func() { NewNeuron(0, nil) })
	assert.Panics(t, func() { RandomNeuron(rng.Seeded(0), 0) })
	assert.Panics(t, func() {
		NewNeuron(0, []float32{1, 2}).Propagate([]float32{1})
	})
}

func TestNeuronOwnsWeights(t *testing.T) {
	weights := []float32{1, 2}
	n := NewNeuron(0, weights)
	weights[0] = 10
	assert.Equal(t, []float32{1, 2}, n.Weights())

	out := n.Weights()
	out[1] = 10
	assert.Equal(t, []float32{1, 2}, n.Weights())
}
