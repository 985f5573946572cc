package transform_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tatjam/direct-rf/internal/array"
	"github.com/tatjam/direct-rf/internal/transform"
)

func mustArray(data []float64, shape ...int) *array.Array {
	a, err := array.New(data, shape...)
	Expect(err).NotTo(HaveOccurred())
	return a
}

var _ = Describe("FFTShift", func() {
	It("swaps the two halves of an even-length vector", func() {
		a := mustArray([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 8)

		shifted, err := transform.FFTShift(a, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(shifted.Data).To(Equal([]float64{4, 5, 6, 7, 0, 1, 2, 3}))
	})

	It("is an involution for even axis lengths", func() {
		a := mustArray([]float64{
			1, 2, 3, 4,
			5, 6, 7, 8,
			9, 10, 11, 12,
			13, 14, 15, 16,
		}, 4, 4)

		once, err := transform.FFTShift(a, 0)
		Expect(err).NotTo(HaveOccurred())
		twice, err := transform.FFTShift(once, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(twice.Data).To(Equal(a.Data))
	})

	It("moves the last floor(n/2) elements to the front for odd lengths", func() {
		a := mustArray([]float64{0, 1, 2, 3, 4}, 5)

		shifted, err := transform.FFTShift(a, 0)
		Expect(err).NotTo(HaveOccurred())
		// Index 0 lands at position (n-1)/2, the exact center.
		Expect(shifted.Data).To(Equal([]float64{3, 4, 0, 1, 2}))
		Expect(shifted.Data[2]).To(Equal(0.0))
	})

	It("round-trips odd lengths through InverseFFTShift", func() {
		a := mustArray([]float64{0, 1, 2, 3, 4, 5, 6}, 7)

		shifted, err := transform.FFTShift(a, 0)
		Expect(err).NotTo(HaveOccurred())
		back, err := transform.InverseFFTShift(shifted, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(back.Data).To(Equal(a.Data))
	})

	It("shifts along the requested axis only", func() {
		a := mustArray([]float64{
			1, 2,
			3, 4,
			5, 6,
			7, 8,
		}, 4, 2)

		byRows, err := transform.FFTShift(a, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(byRows.Data).To(Equal([]float64{
			5, 6,
			7, 8,
			1, 2,
			3, 4,
		}))

		byCols, err := transform.FFTShift(a, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(byCols.Data).To(Equal([]float64{
			2, 1,
			4, 3,
			6, 5,
			8, 7,
		}))
	})

	It("does not mutate its input", func() {
		a := mustArray([]float64{0, 1, 2, 3}, 4)
		_, err := transform.FFTShift(a, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Data).To(Equal([]float64{0, 1, 2, 3}))
	})

	It("rejects an out-of-range axis", func() {
		a := mustArray([]float64{0, 1, 2, 3}, 4)
		_, err := transform.FFTShift(a, 1)
		Expect(err).To(MatchError(array.ErrShape))
	})
})

var _ = Describe("LogMagnitude", func() {
	It("computes decibels of magnitude", func() {
		a := mustArray([]float64{1, 10, -10, 100}, 4)

		out, err := transform.LogMagnitude(a, transform.ScaleDB)
		Expect(err).NotTo(HaveOccurred())
		Expect(out.Data[0]).To(BeNumerically("~", 0, 1e-12))
		Expect(out.Data[1]).To(BeNumerically("~", 20, 1e-12))
		Expect(out.Data[2]).To(BeNumerically("~", 20, 1e-12))
		Expect(out.Data[3]).To(BeNumerically("~", 40, 1e-12))
	})

	It("is monotonic for positive input", func() {
		for _, s := range []transform.Scale{transform.ScaleDB, transform.ScaleLog10} {
			a := mustArray([]float64{0.001, 0.5, 1, 2, 1000}, 5)
			out, err := transform.LogMagnitude(a, s)
			Expect(err).NotTo(HaveOccurred())
			for i := 1; i < out.Len(); i++ {
				Expect(out.Data[i]).To(BeNumerically(">", out.Data[i-1]))
			}
		}
	})

	It("fails with a domain error on zero magnitude in db mode", func() {
		a := mustArray([]float64{1, 0, 2}, 3)
		_, err := transform.LogMagnitude(a, transform.ScaleDB)
		Expect(err).To(MatchError(array.ErrDomain))
	})

	It("fails with a domain error on non-positive input in log10 mode", func() {
		for _, v := range []float64{0, -1} {
			a := mustArray([]float64{1, v}, 2)
			_, err := transform.LogMagnitude(a, transform.ScaleLog10)
			Expect(err).To(MatchError(array.ErrDomain))
		}
	})

	It("copies rather than aliases in none mode", func() {
		a := mustArray([]float64{1, 2}, 2)
		out, err := transform.LogMagnitude(a, transform.ScaleNone)
		Expect(err).NotTo(HaveOccurred())
		out.Data[0] = 99
		Expect(a.Data[0]).To(Equal(1.0))
	})
})

var _ = Describe("heatmap pipeline", func() {
	It("shift plus log10 on a 4x4 ramp swaps row pairs and scales cells", func() {
		data := make([]float64, 16)
		for i := range data {
			data[i] = float64(i + 1)
		}
		a := mustArray(data, 4, 4)

		shifted, err := transform.FFTShift(a, 0)
		Expect(err).NotTo(HaveOccurred())
		scaled, err := transform.LogMagnitude(shifted, transform.ScaleLog10)
		Expect(err).NotTo(HaveOccurred())

		// Rows {0,1} swap with {2,3}; each cell holds log10 of its source.
		srcRow := []int{2, 3, 0, 1}
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				want := math.Log10(float64(srcRow[i]*4 + j + 1))
				Expect(scaled.At(i, j)).To(BeNumerically("~", want, 1e-12))
			}
		}
	})
})

var _ = Describe("ParseScale", func() {
	It("maps flag values to modes", func() {
		for in, want := range map[string]transform.Scale{
			"":      transform.ScaleNone,
			"none":  transform.ScaleNone,
			"db":    transform.ScaleDB,
			"log10": transform.ScaleLog10,
			"log":   transform.ScaleLog10,
		} {
			got, err := transform.ParseScale(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		}
	})

	It("rejects unknown modes", func() {
		_, err := transform.ParseScale("sqrt")
		Expect(err).To(HaveOccurred())
	})
})
