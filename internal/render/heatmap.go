package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/floats"

	"github.com/tatjam/direct-rf/internal/array"
)

// Options bounds the rendered plot size and selects the colormap.
type Options struct {
	Width   int
	Height  int
	Palette Palette
}

// DefaultOptions returns the plot geometry used when no config overrides it.
func DefaultOptions() Options {
	return Options{
		Width:   100,
		Height:  30,
		Palette: PaletteViridis,
	}
}

// Heatmap renders a rank-2 array as a color-mapped raster. Row index maps
// to the vertical axis (row 0 on top), column index to the horizontal axis.
// Each output line packs two data rows using the upper-half block, and a
// color-scale legend with the value range is appended.
func Heatmap(a *array.Array, opts Options) (string, error) {
	if a.Rank() != 2 {
		return "", fmt.Errorf("%w: heatmap needs a 2D array, got rank %d", array.ErrShape, a.Rank())
	}
	if a.Len() == 0 {
		return "", fmt.Errorf("%w: empty array", array.ErrShape)
	}

	grid := pool(a, opts.Height*2, opts.Width)
	rows, cols := grid.Shape[0], grid.Shape[1]

	lo := floats.Min(grid.Data)
	hi := floats.Max(grid.Data)
	span := hi - lo
	if span == 0 {
		span = 1
	}

	pal := opts.Palette
	var b strings.Builder

	labelWidth := len(fmt.Sprintf("%d", rows-1))
	if labelWidth < 2 {
		labelWidth = 2
	}

	for top := 0; top < rows; top += 2 {
		b.WriteString(fmt.Sprintf("%*d │", labelWidth, top))
		for j := 0; j < cols; j++ {
			fg := pal.Color((grid.At(top, j) - lo) / span)
			style := lipgloss.NewStyle().Foreground(fg)
			if top+1 < rows {
				bg := pal.Color((grid.At(top+1, j) - lo) / span)
				style = style.Background(bg)
			}
			b.WriteString(style.Render("▀"))
		}
		b.WriteString("\n")
	}

	// Column axis: first and last index under the raster.
	lastLabel := fmt.Sprintf("%d", cols-1)
	gap := cols - 1 - len(lastLabel)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(fmt.Sprintf("%*s └0%s%s\n", labelWidth, "", strings.Repeat(" ", gap), lastLabel))
	b.WriteString(fmt.Sprintf("%*s  Row Index ↑ / Column Index →\n", labelWidth, ""))

	b.WriteString("\n" + legend(pal, lo, hi))
	return b.String(), nil
}

// legend draws the color-scale bar labeled with the value range.
func legend(pal Palette, lo, hi float64) string {
	const cells = 24
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Value  %.4g ", lo))
	for i := 0; i < cells; i++ {
		c := pal.Color(float64(i) / float64(cells-1))
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render("█"))
	}
	b.WriteString(fmt.Sprintf(" %.4g", hi))
	return b.String()
}

// pool shrinks an array to fit maxRows x maxCols by mean pooling over
// rectangular blocks. Arrays already within bounds pass through untouched.
func pool(a *array.Array, maxRows, maxCols int) *array.Array {
	rows, cols := a.Shape[0], a.Shape[1]
	if rows <= maxRows && cols <= maxCols {
		return a
	}

	br := (rows + maxRows - 1) / maxRows
	bc := (cols + maxCols - 1) / maxCols
	if br < 1 {
		br = 1
	}
	if bc < 1 {
		bc = 1
	}

	outRows := (rows + br - 1) / br
	outCols := (cols + bc - 1) / bc
	data := make([]float64, outRows*outCols)

	for i := 0; i < outRows; i++ {
		for j := 0; j < outCols; j++ {
			sum := 0.0
			n := 0
			for di := i * br; di < (i+1)*br && di < rows; di++ {
				for dj := j * bc; dj < (j+1)*bc && dj < cols; dj++ {
					sum += a.At(di, dj)
					n++
				}
			}
			data[i*outCols+j] = sum / float64(n)
		}
	}

	out, _ := array.New(data, outRows, outCols)
	return out
}
