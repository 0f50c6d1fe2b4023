// Package tensor provides a minimal flat weight tensor and the aggregate
// statistics computed over it during graph conversion.
package tensor

import "fmt"

// Tensor is a numeric tensor of arbitrary rank stored as a flat float32
// slice in row-major order.
type Tensor struct {
	Shape []int     `json:"shape"`
	Data  []float32 `json:"data"`
}

// New builds a tensor and checks that the data length matches the shape.
func New(shape []int, data []float32) (Tensor, error) {
	if n := NumElements(shape); n != len(data) {
		return Tensor{}, fmt.Errorf("shape %v implies %d elements, got %d", shape, n, len(data))
	}
	return Tensor{Shape: shape, Data: data}, nil
}

// NumElements returns the element count implied by a shape. A zero-rank
// shape counts as a single scalar.
func NumElements(shape []int) int {
	n := 1
	for _, dim := range shape {
		n *= dim
	}
	return n
}
