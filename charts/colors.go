package charts

import (
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
)

// GenreColors is the fixed palette of the six genres.
var GenreColors = map[string]string{
	"rock":  "#FF0000",
	"latin": "#FFA500",
	"edm":   "#F542F5",
	"rap":   "#800080",
	"r&b":   "#008000",
	"pop":   "#ADD8E6",
}

// subgenrePalette restarts for every genre, so that subgenres of the same
// genre never share a color.
var subgenrePalette = []string{"#1B9E77", "#7570B3", "#66A61E", "#A6761D"}

const fallbackColor = "#888888"

// SubgenreColors assigns palette colors to the subgenres of each genre in
// the order they are listed.
func SubgenreColors(genres []string, subgenres func(genre string) []string) map[string]string {
	colors := map[string]string{}
	for _, g := range genres {
		for i, sg := range subgenres(g) {
			colors[sg] = subgenrePalette[i%len(subgenrePalette)]
		}
	}
	return colors
}

func colorOf(colors map[string]string, name string) string {
	if c, ok := colors[name]; ok {
		return c
	}
	return fallbackColor
}

// Viridis maps t in [0, 1] onto the viridis scale.
func Viridis(t float64) string {
	if math.IsNaN(t) || t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	c := chart.Viridis(t, 0, 1)
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
