package models

// TrainingMetrics is one snapshot of per-layer norms captured while a model
// runs, keyed by qualified layer id.
type TrainingMetrics struct {
	Epoch         int                `json:"epoch"`
	Loss          float64            `json:"loss"`
	Accuracy      *float64           `json:"accuracy,omitempty"`
	Gradients     map[string]float64 `json:"gradients"`
	Activations   map[string]float64 `json:"activations"`
	CustomMetrics map[string]float64 `json:"custom_metrics,omitempty"`
}
