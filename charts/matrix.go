package charts

import (
	"github.com/mager/songstory/correlation"
)

func (d *Dashboard) correlationMatrix(sel Selection) (Figure, error) {
	selected := sel.Feature
	if sel.Step != 0 {
		selected = correlation.Step(selected, sel.Step)
	}
	grid := correlation.Matrix(selected)

	rows := len(grid.Rows)
	f := Figure{
		Name:    CorrelationMatrix,
		Title:   "Important features of each genre",
		Kind:    Matrix,
		XAxis:   Number,
		Series:  []Series{},
		Grid:    &grid,
		Caption: "Explore with the arrows",
		Selection: Selection{
			Feature: grid.Selected,
		},
	}
	if grid.Selected != "" {
		f.Caption = Label(grid.Selected)
		f.Highlights = correlation.HighlightsFor(grid.Selected)
	}

	for c, feature := range correlation.Features {
		s := Series{Name: string(feature), Color: correlation.Important}
		for r := range grid.Rows {
			s.X = append(s.X, float64(c))
			s.Y = append(s.Y, float64(rows-1-r))
			s.Colors = append(s.Colors, grid.Rows[r][c].Color)
		}
		f.Series = append(f.Series, s)
		f.XTicks = append(f.XTicks, Tick{Value: float64(c), Label: string(feature)})
	}
	for r, genre := range correlation.Genres {
		f.YTicks = append(f.YTicks, Tick{Value: float64(rows - 1 - r), Label: correlation.Labels[genre]})
	}

	return f, nil
}
