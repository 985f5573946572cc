package analysis

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/tatjam/direct-rf/internal/array"
)

func TestFFTImpulse(t *testing.T) {
	data := make([]float64, 8)
	data[0] = 1.0

	bins := FFT(data)
	for i, b := range bins {
		if math.Abs(cmplx.Abs(b)-1.0) > 1e-12 {
			t.Errorf("bin %d: expected magnitude 1, got %f", i, cmplx.Abs(b))
		}
	}
}

func TestFFTSinePeak(t *testing.T) {
	n := 64
	k := 5
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * float64(k) * float64(i) / float64(n))
	}

	bins := FFT(data)

	peak := 0
	for i := 1; i < n/2; i++ {
		if cmplx.Abs(bins[i]) > cmplx.Abs(bins[peak]) {
			peak = i
		}
	}
	if peak != k {
		t.Errorf("expected peak at bin %d, got %d", k, peak)
	}
}

func TestPadPow2(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{1, 1},
		{5, 8},
		{8, 8},
		{100, 128},
	}

	for _, tt := range tests {
		padded := PadPow2(make([]float64, tt.in))
		if len(padded) != tt.want {
			t.Errorf("length %d: expected pad to %d, got %d", tt.in, tt.want, len(padded))
		}
	}
}

func TestMagnitudeSpectrumRejectsMatrix(t *testing.T) {
	a, err := array.New(make([]float64, 4), 2, 2)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	if _, err := MagnitudeSpectrum(a); err == nil {
		t.Error("expected shape error for rank-2 input")
	}
}

func TestMagnitudeSpectrumDC(t *testing.T) {
	a, err := array.New([]float64{1, 1, 1, 1}, 4)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	spec, err := MagnitudeSpectrum(a)
	if err != nil {
		t.Fatalf("spectrum failed: %v", err)
	}

	if math.Abs(spec.Data[0]-4.0) > 1e-12 {
		t.Errorf("expected DC bin 4.0, got %f", spec.Data[0])
	}
	for i := 1; i < spec.Len(); i++ {
		if math.Abs(spec.Data[i]) > 1e-12 {
			t.Errorf("bin %d: expected 0, got %f", i, spec.Data[i])
		}
	}
}
