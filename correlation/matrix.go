package correlation

import (
	"github.com/mager/songstory/songs"
)

// Cell colors.
const (
	Unimportant = "#FFFFFF"
	Important   = "#008000"
	Selected    = "#90EE90"
	Positive    = "#66A3FF"
	Negative    = "#FF9999"
)

// importance marks, per genre, the features having |r| >= 0.2 with another
// feature of the same genre. Columns follow Features.
var importance = map[string][]int{
	"pop":   {1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
	"latin": {1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
	"r&b":   {1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
	"rap":   {1, 1, 1, 1, 0, 0, 1, 0, 0, 0},
	"edm":   {1, 1, 1, 1, 1, 1, 1, 1, 0, 1},
	"rock":  {1, 1, 1, 1, 1, 1, 0, 1, 1, 0},
}

// IsImportant reports whether feature matters for genre.
func IsImportant(genre string, feature songs.Feature) bool {
	i := featureIndex(feature)
	row, ok := importance[genre]
	return ok && i >= 0 && row[i] == 1
}

type Cell struct {
	Genre     string        `json:"genre"`
	Feature   songs.Feature `json:"feature"`
	Important bool          `json:"important"`
	Color     string        `json:"color"`
}

// Grid is the colored matrix, one row per genre of Genres.
type Grid struct {
	Selected songs.Feature `json:"selected,omitempty"`
	Rows     [][]Cell      `json:"rows"`
}

// Matrix colors the importance matrix for a selected feature. With no
// selection, important cells are green and the others white. With one, the
// important cells of the selected column turn light green and the important
// cells of the features it correlates with turn blue or red by sign.
func Matrix(selected songs.Feature) Grid {
	grid := Grid{Selected: selected, Rows: make([][]Cell, len(Genres))}
	for r, genre := range Genres {
		row := make([]Cell, len(Features))
		for c, f := range Features {
			row[c] = Cell{Genre: genre, Feature: f, Color: Unimportant}
			if IsImportant(genre, f) {
				row[c].Important = true
				row[c].Color = Important
			}
		}
		grid.Rows[r] = row
	}

	sel := featureIndex(selected)
	if sel < 0 {
		grid.Selected = ""
		return grid
	}

	for r, genre := range Genres {
		for _, p := range Curated[genre] {
			var other songs.Feature
			switch selected {
			case p.A:
				other = p.B
			case p.B:
				other = p.A
			default:
				continue
			}
			c := featureIndex(other)
			if c < 0 || !grid.Rows[r][c].Important {
				continue
			}
			if p.Coefficient > 0 {
				grid.Rows[r][c].Color = Positive
			} else {
				grid.Rows[r][c].Color = Negative
			}
		}
		if grid.Rows[r][sel].Important {
			grid.Rows[r][sel].Color = Selected
		}
	}

	return grid
}

// Step moves the selection delta positions through "no selection" followed
// by Features, wrapping around at both ends.
func Step(current songs.Feature, delta int) songs.Feature {
	n := len(Features) + 1
	i := featureIndex(current) + 1
	i = ((i+delta)%n + n) % n
	if i == 0 {
		return ""
	}
	return Features[i-1]
}

func featureIndex(f songs.Feature) int {
	for i, feature := range Features {
		if feature == f {
			return i
		}
	}
	return -1
}
