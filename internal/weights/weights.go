// Package weights loads uploaded weight files into tensors keyed by their
// qualified parameter name. Two formats are accepted and auto-detected:
// SafeTensors containers and JSON checkpoints.
package weights

import (
	"fmt"
	"os"

	"github.com/neuroscope/core/internal/tensor"
)

// Map holds the loaded tensors keyed by qualified parameter name, e.g.
// "fc1.weight" or "conv1.bias".
type Map map[string]tensor.Tensor

// Lookup returns the weight tensor for a layer, if one was uploaded. A miss
// is not an error; the caller degrades the edge to its default weight.
func (m Map) Lookup(layerName string) (tensor.Tensor, bool) {
	t, ok := m[layerName+".weight"]
	return t, ok
}

// Load reads a weight file, detecting the format from its leading bytes:
// JSON checkpoints start with '{', everything else is treated as a
// SafeTensors container.
func Load(path string) (Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open weights file: %w", err)
	}
	defer f.Close()

	var lead [1]byte
	if _, err := f.Read(lead[:]); err != nil {
		return nil, fmt.Errorf("failed to read weights file: %w", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("failed to rewind weights file: %w", err)
	}

	if lead[0] == '{' {
		return loadCheckpoint(f)
	}
	return loadSafeTensors(f)
}
