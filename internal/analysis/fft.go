// Package analysis computes magnitude spectra for 1D arrays, backing the
// spectrum command.
package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tatjam/direct-rf/internal/array"
)

// FFT computes the discrete Fourier transform of a real signal using the
// radix-2 decimation-in-time recursion. The input length must be a power of
// two; callers pad with PadPow2 first.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}
	return result
}

// PadPow2 zero-pads data up to the next power-of-two length.
func PadPow2(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n *= 2
	}
	if n == len(data) {
		return data
	}
	padded := make([]float64, n)
	copy(padded, data)
	return padded
}

// MagnitudeSpectrum returns the full N-point magnitude spectrum of a 1D
// array, zero-padded to a power of two. Bin 0 is the zero-frequency
// component; apply a frequency shift before plotting to center it.
func MagnitudeSpectrum(a *array.Array) (*array.Array, error) {
	if a.Rank() != 1 {
		return nil, fmt.Errorf("%w: spectrum needs a 1D array, got rank %d", array.ErrShape, a.Rank())
	}

	bins := FFT(PadPow2(a.Data))
	mags := make([]float64, len(bins))
	for i, b := range bins {
		mags[i] = cmplx.Abs(b)
	}
	return array.New(mags, len(mags))
}
