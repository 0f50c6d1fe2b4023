package parser

import (
	"fmt"

	"github.com/neuroscope/core/internal/layers"
	"github.com/neuroscope/core/internal/models"
	"github.com/neuroscope/core/internal/tensor"
	"github.com/neuroscope/core/internal/weights"
)

// BuildGraph reconstructs the network graph from a structure descriptor and
// the uploaded weight tensors. Nodes are created one per descriptor entry in
// list order and consecutive entries are joined into a single linear chain.
// A descriptor entry with an unsupported type tag fails the whole conversion.
func BuildGraph(desc *models.ModelDescriptor, weightMap weights.Map) (*models.NeuroscopeNetwork, error) {
	network := &models.NeuroscopeNetwork{
		Type:        models.TypeANN,
		Nodes:       []models.NetworkNode{},
		Connections: []models.NetworkConnection{},
	}

	prevID := ""
	for i, info := range desc.Layers {
		kind, err := layers.ParseLayerKind(info.Type)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}

		nodeID := fmt.Sprintf("layer_%d", i)
		network.Nodes = append(network.Nodes, models.NetworkNode{
			ID:         nodeID,
			Type:       info.Type,
			Properties: layers.Properties(kind, info.Type, info.Attrs),
		})

		if prevID != "" {
			network.Connections = append(network.Connections, buildConnection(prevID, nodeID, info.Name, weightMap))
		}
		prevID = nodeID
	}

	return network, nil
}

// buildConnection annotates the edge with weight statistics when a tensor
// exists under "<layer name>.weight"; a miss degrades the edge to the
// default weight with no statistics.
func buildConnection(source, target, layerName string, weightMap weights.Map) models.NetworkConnection {
	conn := models.NetworkConnection{
		Source:     source,
		Target:     target,
		Weight:     1.0,
		Properties: map[string]any{},
	}

	w, ok := weightMap.Lookup(layerName)
	if !ok {
		return conn
	}
	stats, err := tensor.Summary(w)
	if err != nil {
		return conn
	}

	conn.Weight = stats.MeanAbs
	conn.Properties = map[string]any{
		"max_weight": stats.MaxAbs,
		// The reconstruction path reports the signed minimum.
		"min_weight": stats.MinRaw,
		"std_weight": stats.Std,
		"shape":      stats.Shape,
	}
	return conn
}
