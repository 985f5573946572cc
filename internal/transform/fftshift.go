// Package transform holds the pure array transforms applied between loading
// and rendering: frequency-shift reordering and logarithmic magnitude
// scaling. Every transform returns a new array and leaves its input intact.
package transform

import (
	"fmt"

	"github.com/tatjam/direct-rf/internal/array"
)

// FFTShift circularly rotates the array along the given axis so that the
// zero-frequency element (index 0) lands at the center of the axis.
//
// The rotation moves the last floor(n/2) elements to the front. For even n
// this swaps the two halves exactly and the operation is its own inverse.
// For odd n the first half keeps the extra element and index 0 lands at
// position (n-1)/2, the exact center; use InverseFFTShift to undo it.
func FFTShift(a *array.Array, axis int) (*array.Array, error) {
	return shift(a, axis, false)
}

// InverseFFTShift undoes FFTShift along the given axis. For even axis
// lengths the two are identical.
func InverseFFTShift(a *array.Array, axis int) (*array.Array, error) {
	return shift(a, axis, true)
}

func shift(a *array.Array, axis int, inverse bool) (*array.Array, error) {
	if axis < 0 || axis >= a.Rank() {
		return nil, fmt.Errorf("%w: axis %d out of range for rank %d", array.ErrShape, axis, a.Rank())
	}

	n := a.Shape[axis]
	if n == 0 {
		return a.Clone(), nil
	}
	offset := n / 2
	if inverse {
		offset = n - n/2
	}

	out := a.Clone()
	switch a.Rank() {
	case 1:
		for i := 0; i < n; i++ {
			out.Data[(i+offset)%n] = a.Data[i]
		}
	case 2:
		rows, cols := a.Shape[0], a.Shape[1]
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				di, dj := i, j
				if axis == 0 {
					di = (i + offset) % rows
				} else {
					dj = (j + offset) % cols
				}
				out.Data[di*cols+dj] = a.Data[i*cols+j]
			}
		}
	default:
		return nil, fmt.Errorf("%w: frequency shift supports rank 1 and 2, got %d", array.ErrShape, a.Rank())
	}
	return out, nil
}
