// Package render builds terminal plots from loaded arrays.
//
// Three renderers are provided:
//
//   - [Series]: overlaid line series on shared axes (asciigraph)
//   - [BrailleSeries]: the same series on a Braille sub-pixel [Canvas]
//   - [Heatmap]: a color-mapped raster with a value legend
//
// Heatmap colors come from a [Palette]; large arrays are mean-pooled down
// to the plot geometry before coloring.
package render
