// Package parser converts uploaded model descriptions into the network
// graph consumed by the visualization frontend. It covers descriptor-driven
// reconstruction and live model tree traversal.
package parser

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/neuroscope/core/internal/models"
)

// ErrMalformedDescriptor marks structure files missing required fields.
// Fatal to the conversion.
var ErrMalformedDescriptor = errors.New("malformed model descriptor")

func ParseDescriptor(data []byte) (*models.ModelDescriptor, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty descriptor data", ErrMalformedDescriptor)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDescriptor, err)
	}
	if _, ok := probe["layers"]; !ok {
		return nil, fmt.Errorf("%w: missing layers key", ErrMalformedDescriptor)
	}

	var desc models.ModelDescriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDescriptor, err)
	}

	for i, layer := range desc.Layers {
		if layer.Type == "" {
			return nil, fmt.Errorf("%w: layer %d is missing its type tag", ErrMalformedDescriptor, i)
		}
	}

	return &desc, nil
}
