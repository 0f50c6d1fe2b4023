package tensor

import (
	"fmt"
	"math"
)

// Stats are the aggregate statistics over a flattened tensor. Both minimum
// variants are computed; call sites pick the one their output format uses.
type Stats struct {
	MeanAbs float64
	MaxAbs  float64
	MinRaw  float64
	MinAbs  float64
	Std     float64
	Shape   []int
}

// Summary computes Stats over all elements of the tensor. Std is the
// population standard deviation. NaN and Inf values propagate into the
// results untouched.
func Summary(t Tensor) (Stats, error) {
	if len(t.Data) == 0 {
		return Stats{}, fmt.Errorf("cannot summarize empty tensor")
	}

	var sum, sumAbs float64
	maxAbs := math.Inf(-1)
	minRaw := math.Inf(1)
	minAbs := math.Inf(1)

	for _, v := range t.Data {
		f := float64(v)
		abs := math.Abs(f)
		sum += f
		sumAbs += abs
		if abs > maxAbs {
			maxAbs = abs
		}
		if f < minRaw {
			minRaw = f
		}
		if abs < minAbs {
			minAbs = abs
		}
	}

	n := float64(len(t.Data))
	mean := sum / n

	var sqDiff float64
	for _, v := range t.Data {
		d := float64(v) - mean
		sqDiff += d * d
	}

	shape := make([]int, len(t.Shape))
	copy(shape, t.Shape)

	return Stats{
		MeanAbs: sumAbs / n,
		MaxAbs:  maxAbs,
		MinRaw:  minRaw,
		MinAbs:  minAbs,
		Std:     math.Sqrt(sqDiff / n),
		Shape:   shape,
	}, nil
}
