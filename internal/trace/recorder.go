// Package trace records per-layer statistics captured during a forward
// evaluation. It replaces hook-based capture with an explicit recording pass
// keyed by layer id; each Recorder is local to one evaluation.
package trace

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/neuroscope/core/internal/models"
	"github.com/neuroscope/core/internal/tensor"
)

// LayerState holds the mean absolute norms captured for one layer boundary.
type LayerState struct {
	Name        string  `json:"name"`
	Activations float64 `json:"activations"`
	Weights     float64 `json:"weights"`
	Gradients   float64 `json:"gradients"`
}

type Recorder struct {
	states []LayerState
	index  map[string]int
}

func NewRecorder() *Recorder {
	return &Recorder{index: make(map[string]int)}
}

// Observe records the mean absolute activation emitted at a layer boundary.
func (r *Recorder) Observe(layerID string, output tensor.Tensor) error {
	stats, err := tensor.Summary(output)
	if err != nil {
		return fmt.Errorf("layer %s: %w", layerID, err)
	}
	r.state(layerID).Activations = stats.MeanAbs
	return nil
}

// ObserveWeights records the mean absolute weight magnitude for a layer.
func (r *Recorder) ObserveWeights(layerID string, w tensor.Tensor) error {
	stats, err := tensor.Summary(w)
	if err != nil {
		return fmt.Errorf("layer %s: %w", layerID, err)
	}
	r.state(layerID).Weights = stats.MeanAbs
	return nil
}

// ObserveGradients records the mean absolute gradient for a layer.
func (r *Recorder) ObserveGradients(layerID string, g tensor.Tensor) error {
	stats, err := tensor.Summary(g)
	if err != nil {
		return fmt.Errorf("layer %s: %w", layerID, err)
	}
	r.state(layerID).Gradients = stats.MeanAbs
	return nil
}

func (r *Recorder) state(layerID string) *LayerState {
	if i, ok := r.index[layerID]; ok {
		return &r.states[i]
	}
	r.index[layerID] = len(r.states)
	r.states = append(r.states, LayerState{Name: layerID})
	return &r.states[len(r.states)-1]
}

// States returns the captured layer states in first-observation order.
func (r *Recorder) States() []LayerState {
	return r.states
}

// Metrics folds the captured states into a training metrics snapshot.
func (r *Recorder) Metrics(epoch int, loss float64) models.TrainingMetrics {
	metrics := models.TrainingMetrics{
		Epoch:       epoch,
		Loss:        loss,
		Gradients:   make(map[string]float64, len(r.states)),
		Activations: make(map[string]float64, len(r.states)),
	}
	for _, state := range r.states {
		metrics.Gradients[state.Name] = state.Gradients
		metrics.Activations[state.Name] = state.Activations
	}
	return metrics
}

// WriteJSON dumps the captured states for the frontend to load.
func (r *Recorder) WriteJSON(path string) error {
	data, err := json.Marshal(r.states)
	if err != nil {
		return fmt.Errorf("failed to encode trace data: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write trace data: %w", err)
	}
	return nil
}
