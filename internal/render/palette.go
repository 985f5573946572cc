package render

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a colormap for heatmap rendering as a set of evenly
// spaced gradient stops.
type Palette struct {
	Name  string
	Stops []string // hex colors, low value to high value
}

// Available palettes
var (
	PaletteViridis = Palette{
		Name:  "viridis",
		Stops: []string{"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"},
	}

	PaletteInferno = Palette{
		Name:  "inferno",
		Stops: []string{"#000004", "#57106e", "#bc3754", "#f98e09", "#fcffa4"},
	}

	PaletteGray = Palette{
		Name:  "gray",
		Stops: []string{"#000000", "#ffffff"},
	}

	// All available palettes
	Palettes = []Palette{
		PaletteViridis,
		PaletteInferno,
		PaletteGray,
	}
)

// GetPalette returns a palette by name, falling back to viridis.
func GetPalette(name string) Palette {
	for _, p := range Palettes {
		if p.Name == name {
			return p
		}
	}
	return PaletteViridis
}

// PaletteNames returns the list of available palette names.
func PaletteNames() []string {
	names := make([]string, len(Palettes))
	for i, p := range Palettes {
		names[i] = p.Name
	}
	return names
}

// Color maps t in [0, 1] to a terminal color by linear interpolation
// between the palette stops.
func (p Palette) Color(t float64) lipgloss.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	segments := len(p.Stops) - 1
	pos := t * float64(segments)
	i := int(pos)
	if i >= segments {
		i = segments - 1
	}
	frac := pos - float64(i)

	r0, g0, b0 := parseHex(p.Stops[i])
	r1, g1, b1 := parseHex(p.Stops[i+1])

	r := int(float64(r0) + frac*float64(r1-r0))
	g := int(float64(g0) + frac*float64(g1-g0))
	b := int(float64(b0) + frac*float64(b1-b0))

	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

func parseHex(hex string) (int, int, int) {
	if len(hex) != 7 {
		return 0, 0, 0
	}
	r, _ := strconv.ParseInt(hex[1:3], 16, 32)
	g, _ := strconv.ParseInt(hex[3:5], 16, 32)
	b, _ := strconv.ParseInt(hex[5:7], 16, 32)
	return int(r), int(g), int(b)
}
