package trace

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroscope/core/internal/tensor"
)

func mustTensor(t *testing.T, shape []int, data []float32) tensor.Tensor {
	t.Helper()
	tn, err := tensor.New(shape, data)
	require.NoError(t, err)
	return tn
}

func TestRecorder(t *testing.T) {
	t.Run("observe records mean absolute activation", func(t *testing.T) {
		recorder := NewRecorder()

		err := recorder.Observe("layer_0", mustTensor(t, []int{4}, []float32{1, -2, 3, -4}))
		require.NoError(t, err)

		states := recorder.States()
		require.Len(t, states, 1)
		assert.Equal(t, "layer_0", states[0].Name)
		assert.InDelta(t, 2.5, states[0].Activations, 1e-9)
	})

	t.Run("repeated observations share one state per layer", func(t *testing.T) {
		recorder := NewRecorder()

		require.NoError(t, recorder.Observe("layer_0", mustTensor(t, []int{2}, []float32{1, 1})))
		require.NoError(t, recorder.ObserveWeights("layer_0", mustTensor(t, []int{2}, []float32{2, 2})))
		require.NoError(t, recorder.ObserveGradients("layer_0", mustTensor(t, []int{2}, []float32{-3, 3})))

		states := recorder.States()
		require.Len(t, states, 1)
		assert.InDelta(t, 1.0, states[0].Activations, 1e-9)
		assert.InDelta(t, 2.0, states[0].Weights, 1e-9)
		assert.InDelta(t, 3.0, states[0].Gradients, 1e-9)
	})

	t.Run("states keep first-observation order", func(t *testing.T) {
		recorder := NewRecorder()

		require.NoError(t, recorder.Observe("layer_1", mustTensor(t, []int{1}, []float32{1})))
		require.NoError(t, recorder.Observe("layer_0", mustTensor(t, []int{1}, []float32{1})))

		states := recorder.States()
		require.Len(t, states, 2)
		assert.Equal(t, "layer_1", states[0].Name)
		assert.Equal(t, "layer_0", states[1].Name)
	})

	t.Run("empty tensor is rejected and names the layer", func(t *testing.T) {
		recorder := NewRecorder()

		err := recorder.Observe("layer_0", tensor.Tensor{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "layer_0")
		assert.Empty(t, recorder.States())
	})
}

func TestRecorderMetrics(t *testing.T) {
	recorder := NewRecorder()
	require.NoError(t, recorder.Observe("fc1", mustTensor(t, []int{2}, []float32{0.5, -0.5})))
	require.NoError(t, recorder.ObserveGradients("fc1", mustTensor(t, []int{2}, []float32{0.1, -0.1})))
	require.NoError(t, recorder.Observe("fc2", mustTensor(t, []int{1}, []float32{2})))

	metrics := recorder.Metrics(7, 0.42)

	assert.Equal(t, 7, metrics.Epoch)
	assert.Equal(t, 0.42, metrics.Loss)
	assert.InDelta(t, 0.5, metrics.Activations["fc1"], 1e-9)
	assert.InDelta(t, 0.1, metrics.Gradients["fc1"], 1e-7)
	assert.InDelta(t, 2.0, metrics.Activations["fc2"], 1e-9)
	assert.Equal(t, 0.0, metrics.Gradients["fc2"])
}

func TestRecorderWriteJSON(t *testing.T) {
	recorder := NewRecorder()
	require.NoError(t, recorder.Observe("fc1", mustTensor(t, []int{2}, []float32{1, -1})))

	path := filepath.Join(t.TempDir(), "trace.json")
	require.NoError(t, recorder.WriteJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var states []LayerState
	require.NoError(t, json.Unmarshal(data, &states))
	require.Len(t, states, 1)
	assert.Equal(t, "fc1", states[0].Name)
	assert.InDelta(t, 1.0, states[0].Activations, 1e-9)
}
