// Package models defines the core data structures exchanged with the
// visualization frontend. It includes entity definitions and validation logic.
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeuroscopeNetworkValidate(t *testing.T) {
	t.Run("accepts a valid network", func(t *testing.T) {
		network := &NeuroscopeNetwork{
			Type: TypeANN,
			Nodes: []NetworkNode{
				{ID: "layer_0", Type: "Linear", Properties: map[string]any{}},
				{ID: "layer_1", Type: "ReLU", Properties: map[string]any{}},
			},
			Connections: []NetworkConnection{
				{Source: "layer_0", Target: "layer_1", Weight: 1.0, Properties: map[string]any{}},
			},
		}

		assert.NoError(t, network.Validate())
	})

	t.Run("accepts an empty network", func(t *testing.T) {
		network := &NeuroscopeNetwork{
			Type:        TypeANN,
			Nodes:       []NetworkNode{},
			Connections: []NetworkConnection{},
		}

		assert.NoError(t, network.Validate())
	})

	t.Run("rejects unknown network type", func(t *testing.T) {
		network := &NeuroscopeNetwork{Type: "CNN"}

		err := network.Validate()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid network schema")
	})

	t.Run("accepts every catalogue type tag", func(t *testing.T) {
		for _, tag := range []string{TypeANN, TypeSNN, TypeConnectome} {
			network := &NeuroscopeNetwork{Type: tag}
			assert.NoError(t, network.Validate(), tag)
		}
	})

	t.Run("rejects duplicate node ids", func(t *testing.T) {
		network := &NeuroscopeNetwork{
			Type: TypeANN,
			Nodes: []NetworkNode{
				{ID: "layer_0", Type: "Linear"},
				{ID: "layer_0", Type: "ReLU"},
			},
		}

		err := network.Validate()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate node id")
	})

	t.Run("rejects connection with unknown source", func(t *testing.T) {
		network := &NeuroscopeNetwork{
			Type:  TypeANN,
			Nodes: []NetworkNode{{ID: "layer_0", Type: "Linear"}},
			Connections: []NetworkConnection{
				{Source: "layer_9", Target: "layer_0"},
			},
		}

		err := network.Validate()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "layer_9")
	})

	t.Run("rejects connection with unknown target", func(t *testing.T) {
		network := &NeuroscopeNetwork{
			Type:  TypeANN,
			Nodes: []NetworkNode{{ID: "layer_0", Type: "Linear"}},
			Connections: []NetworkConnection{
				{Source: "layer_0", Target: "layer_9"},
			},
		}

		err := network.Validate()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "layer_9")
	})

	t.Run("rejects node with empty id", func(t *testing.T) {
		network := &NeuroscopeNetwork{
			Type:  TypeANN,
			Nodes: []NetworkNode{{ID: "", Type: "Linear"}},
		}

		assert.Error(t, network.Validate())
	})
}

func TestNeuroscopeNetworkJSON(t *testing.T) {
	t.Run("serializes to the wire format", func(t *testing.T) {
		network := &NeuroscopeNetwork{
			Type: TypeANN,
			Nodes: []NetworkNode{
				{ID: "layer_0", Type: "Linear", Properties: map[string]any{"in_features": 128}},
			},
			Connections: []NetworkConnection{
				{Source: "layer_0", Target: "layer_1", Weight: 0.5, Properties: map[string]any{}},
			},
		}

		data, err := json.Marshal(network)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.Equal(t, "ANN", decoded["type"])

		nodes := decoded["nodes"].([]any)
		require.Len(t, nodes, 1)
		node := nodes[0].(map[string]any)
		assert.Equal(t, "layer_0", node["id"])
		assert.Equal(t, "Linear", node["type"])

		conns := decoded["connections"].([]any)
		require.Len(t, conns, 1)
		conn := conns[0].(map[string]any)
		assert.Equal(t, "layer_0", conn["source"])
		assert.Equal(t, "layer_1", conn["target"])
		assert.Equal(t, 0.5, conn["weight"])
	})
}
