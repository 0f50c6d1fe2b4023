package parser

import (
	"fmt"

	"github.com/neuroscope/core/internal/layers"
	"github.com/neuroscope/core/internal/models"
	"github.com/neuroscope/core/internal/tensor"
)

// BuildModuleGraph converts a live model tree into the network graph. Every
// module visited, containers included, becomes a node; ids are assigned in
// pre-order visitation order. Each container is connected to its first child
// and its children are chained in visitation order; sequential containers
// chain their direct children pairwise as well, with duplicate ordered pairs
// suppressed. Unknown layer kinds degrade to the common fields.
func BuildModuleGraph(root *layers.Module) (*models.NeuroscopeNetwork, error) {
	if root == nil {
		return nil, fmt.Errorf("nil model root")
	}

	network := &models.NeuroscopeNetwork{
		Type:        models.TypeANN,
		Nodes:       []models.NetworkNode{},
		Connections: []models.NetworkConnection{},
	}

	// Pre-order walk with an explicit stack; children are pushed in reverse
	// so they pop in declaration order.
	ids := make(map[*layers.Module]string)
	var order []*layers.Module
	stack := []*layers.Module{root}

	for len(stack) > 0 {
		m := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		id := fmt.Sprintf("layer_%d", len(order))
		ids[m] = id
		order = append(order, m)

		network.Nodes = append(network.Nodes, models.NetworkNode{
			ID:         id,
			Type:       m.Type,
			Properties: layers.Properties(m.Kind(), m.Type, m.Attrs),
		})

		for i := len(m.Children) - 1; i >= 0; i-- {
			stack = append(stack, m.Children[i])
		}
	}

	seen := make(map[[2]string]bool)
	link := func(src, dst *layers.Module) {
		key := [2]string{ids[src], ids[dst]}
		if seen[key] {
			return
		}
		seen[key] = true
		network.Connections = append(network.Connections, moduleConnection(ids[src], ids[dst], dst))
	}

	for _, m := range order {
		if m.IsLeaf() {
			continue
		}
		link(m, m.Children[0])
		for i := 0; i+1 < len(m.Children); i++ {
			link(m.Children[i], m.Children[i+1])
		}
		if m.Kind().IsContainer() {
			// Pure-sequential containers chain their direct children
			// pairwise regardless of nesting. The edges coincide with the
			// sibling chain above; the seen set keeps them single.
			for i := 0; i+1 < len(m.Children); i++ {
				link(m.Children[i], m.Children[i+1])
			}
		}
	}

	return network, nil
}

// moduleConnection annotates the edge with the target module's weight
// statistics when it carries a weight tensor.
func moduleConnection(source, target string, dst *layers.Module) models.NetworkConnection {
	conn := models.NetworkConnection{
		Source:     source,
		Target:     target,
		Weight:     1.0,
		Properties: map[string]any{},
	}

	if dst.Weight == nil {
		return conn
	}
	stats, err := tensor.Summary(*dst.Weight)
	if err != nil {
		return conn
	}

	conn.Weight = stats.MeanAbs
	conn.Properties = map[string]any{
		"max_weight": stats.MaxAbs,
		// The live path reports the minimum absolute value.
		"min_weight": stats.MinAbs,
		"std_weight": stats.Std,
		"shape":      stats.Shape,
	}
	return conn
}
