package array

import "fmt"

// Array is a dense numeric array of rank 1 or 2 stored in row-major order.
// Complex sources are loaded as elementwise magnitudes, so Data is always
// real-valued.
type Array struct {
	Data  []float64
	Shape []int
}

// New builds an Array from row-major data and a shape. The product of the
// shape dimensions must match len(data).
func New(data []float64, shape ...int) (*Array, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("%w: negative dimension %d", ErrShape, d)
		}
		n *= d
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: shape %v does not hold %d elements", ErrShape, shape, len(data))
	}
	return &Array{Data: data, Shape: shape}, nil
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int {
	return len(a.Shape)
}

// Len returns the total element count.
func (a *Array) Len() int {
	return len(a.Data)
}

// Rows returns the first dimension of a rank-2 array.
func (a *Array) Rows() int {
	if a.Rank() != 2 {
		return 0
	}
	return a.Shape[0]
}

// Cols returns the second dimension of a rank-2 array.
func (a *Array) Cols() int {
	if a.Rank() != 2 {
		return 0
	}
	return a.Shape[1]
}

// At returns element (i, j) of a rank-2 array.
func (a *Array) At(i, j int) float64 {
	return a.Data[i*a.Shape[1]+j]
}

// Row returns row i of a rank-2 array as a slice into Data.
func (a *Array) Row(i int) []float64 {
	cols := a.Shape[1]
	return a.Data[i*cols : (i+1)*cols]
}

// Clone returns a deep copy.
func (a *Array) Clone() *Array {
	data := make([]float64, len(a.Data))
	copy(data, a.Data)
	shape := make([]int, len(a.Shape))
	copy(shape, a.Shape)
	return &Array{Data: data, Shape: shape}
}
