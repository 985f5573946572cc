package render

import (
	"strings"

	"github.com/guptarohit/asciigraph"
)

// seriesColors cycles across overlaid series so each stays distinguishable.
var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Cyan,
	asciigraph.Magenta,
	asciigraph.Yellow,
	asciigraph.Green,
	asciigraph.Red,
	asciigraph.Blue,
}

// Series renders one or more 1D arrays as overlaid line series sharing a
// single coordinate system, x axis labeled Index and y axis labeled Value.
func Series(series [][]float64, legends []string, opts Options) string {
	colors := make([]asciigraph.AnsiColor, len(series))
	for i := range series {
		colors[i] = seriesColors[i%len(seriesColors)]
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption("Index"),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
	)

	var b strings.Builder
	b.WriteString("Value\n")
	b.WriteString(graph)
	b.WriteString("\n")
	return b.String()
}
