// Package models defines the core data structures exchanged with the
// visualization frontend. It includes entity definitions and validation logic.
package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Network type tags accepted by the frontend.
const (
	TypeANN        = "ANN"
	TypeSNN        = "SNN"
	TypeConnectome = "Connectome"
)

type NetworkNode struct {
	ID         string         `json:"id" validate:"required"`
	Type       string         `json:"type" validate:"required"`
	Properties map[string]any `json:"properties"`
}

type NetworkConnection struct {
	Source     string         `json:"source" validate:"required"`
	Target     string         `json:"target" validate:"required"`
	Weight     float64        `json:"weight"`
	Properties map[string]any `json:"properties"`
}

type NeuroscopeNetwork struct {
	Type        string              `json:"type" validate:"required,oneof=ANN SNN Connectome"`
	Nodes       []NetworkNode       `json:"nodes" validate:"dive"`
	Connections []NetworkConnection `json:"connections" validate:"dive"`
}

var validate = validator.New()

// Validate checks the schema constraints plus referential integrity: node ids
// must be unique and every connection must reference a known node id.
func (n *NeuroscopeNetwork) Validate() error {
	if err := validate.Struct(n); err != nil {
		return fmt.Errorf("invalid network schema: %w", err)
	}

	ids := make(map[string]bool, len(n.Nodes))
	for _, node := range n.Nodes {
		if ids[node.ID] {
			return fmt.Errorf("duplicate node id %q", node.ID)
		}
		ids[node.ID] = true
	}

	for _, conn := range n.Connections {
		if !ids[conn.Source] {
			return fmt.Errorf("connection source %q does not match any node", conn.Source)
		}
		if !ids[conn.Target] {
			return fmt.Errorf("connection target %q does not match any node", conn.Target)
		}
	}

	return nil
}
