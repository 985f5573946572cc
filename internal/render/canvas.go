package render

import (
	"fmt"
	"strings"
)

// Braille Patterns: 2x4 dots per cell
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille-dot drawing surface. A W x H cell canvas addresses
// (W*2) x (H*4) sub-pixels.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y). Out-of-range coordinates are dropped.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// BrailleSeries plots 1D series as polylines on a shared Braille canvas.
// All series share one y range so they stay visually comparable.
func BrailleSeries(series [][]float64, opts Options) string {
	w := opts.Width / 2
	h := opts.Height
	if w < 10 {
		w = 10
	}
	if h < 4 {
		h = 4
	}
	canvas := NewCanvas(w, h)

	maxLen := 0
	lo, hi := 0.0, 0.0
	first := true
	for _, s := range series {
		if len(s) > maxLen {
			maxLen = len(s)
		}
		for _, v := range s {
			if first || v < lo {
				lo = v
			}
			if first || v > hi {
				hi = v
			}
			first = false
		}
	}
	if maxLen < 2 {
		maxLen = 2
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	subW, subH := w*2, h*4
	for _, s := range series {
		prevX, prevY := -1, -1
		for i, v := range s {
			x := i * (subW - 1) / (maxLen - 1)
			y := subH - 1 - int(float64(subH-1)*(v-lo)/span)
			if prevX >= 0 {
				canvas.DrawLine(prevX, prevY, x, y)
			} else {
				canvas.Set(x, y)
			}
			prevX, prevY = x, y
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Value %.4g\n", hi))
	b.WriteString(canvas.String())
	b.WriteString(fmt.Sprintf("%.4g%sIndex 0..%d\n", lo, strings.Repeat(" ", 6), maxLen-1))
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
