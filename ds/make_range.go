package ds

import (
	"golang.org/x/exp/constraints"
)

func MakeRange[T constraints.Integer](start, end, step T) []T {
	capacity := 0
	if step > 0 && end > start {
		capacity = int((end - start + step - 1) / step)
	}
	sequence := make([]T, 0, capacity)
	for i := start; i < end; i += step {
		sequence = append(sequence, i)
	}
	return sequence
}
