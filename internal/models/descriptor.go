// Package models defines the core data structures exchanged with the
// visualization frontend. It includes entity definitions and validation logic.
package models

import "encoding/json"

// ModelDescriptor is the structure file uploaded alongside the weights: an
// ordered list of per-layer metadata records.
type ModelDescriptor struct {
	Layers []LayerInfo `json:"layers"`
}

// LayerInfo is one descriptor entry. On the wire it is a flat object
// ({"type": "Linear", "name": "fc1", "in_features": 128, ...}); the type and
// name keys are pulled out and every remaining key lands in Attrs.
type LayerInfo struct {
	Type  string
	Name  string
	Attrs map[string]any
}

func (li *LayerInfo) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	li.Attrs = make(map[string]any, len(raw))
	for key, value := range raw {
		switch key {
		case "type":
			if s, ok := value.(string); ok {
				li.Type = s
			}
		case "name":
			if s, ok := value.(string); ok {
				li.Name = s
			}
		default:
			li.Attrs[key] = value
		}
	}

	return nil
}

func (li LayerInfo) MarshalJSON() ([]byte, error) {
	raw := make(map[string]any, len(li.Attrs)+2)
	for key, value := range li.Attrs {
		raw[key] = value
	}
	raw["type"] = li.Type
	if li.Name != "" {
		raw["name"] = li.Name
	}
	return json.Marshal(raw)
}
