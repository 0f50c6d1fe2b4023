package weights

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/neuroscope/core/internal/tensor"
)

// JSON checkpoint format: {"weights": [{"name", "shape", "data"}, ...]}.
// Extra top-level keys (training state, metadata) are ignored.

type checkpointFile struct {
	Weights []weightRecord `json:"weights"`
}

type weightRecord struct {
	Name  string    `json:"name"`
	Shape []int     `json:"shape"`
	Data  []float32 `json:"data"`
}

func loadCheckpoint(r io.Reader) (Map, error) {
	var ckpt checkpointFile
	if err := json.NewDecoder(r).Decode(&ckpt); err != nil {
		return nil, fmt.Errorf("failed to decode checkpoint: %w", err)
	}
	if ckpt.Weights == nil {
		return nil, fmt.Errorf("invalid checkpoint: missing weights list")
	}

	weightMap := make(Map, len(ckpt.Weights))
	for _, rec := range ckpt.Weights {
		if rec.Name == "" {
			return nil, fmt.Errorf("invalid checkpoint: weight entry missing name")
		}
		t, err := tensor.New(rec.Shape, rec.Data)
		if err != nil {
			return nil, fmt.Errorf("weight %q: %w", rec.Name, err)
		}
		weightMap[rec.Name] = t
	}
	return weightMap, nil
}
