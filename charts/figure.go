package charts

import (
	"github.com/mager/songstory/correlation"
)

// Kind tells a renderer how to draw a figure.
type Kind string

const (
	Area    Kind = "area"
	Line    Kind = "line"
	Scatter Kind = "scatter"
	Matrix  Kind = "matrix"
	// Choices figures carry dropdown options and nothing to draw.
	Choices Kind = "choices"
)

// AxisKind tells how the x values of a figure read.
type AxisKind string

const (
	Number AxisKind = "number"
	Year   AxisKind = "year"
	// Date x values are unix timestamps in seconds.
	Date AxisKind = "date"
)

// Figure is a render-ready chart.
type Figure struct {
	Name   string   `json:"name"`
	Title  string   `json:"title,omitempty"`
	Kind   Kind     `json:"kind"`
	XLabel string   `json:"xLabel,omitempty"`
	YLabel string   `json:"yLabel,omitempty"`
	XAxis  AxisKind `json:"xAxis,omitempty"`
	Series []Series `json:"series"`

	XTicks []Tick `json:"xTicks,omitempty"`
	YTicks []Tick `json:"yTicks,omitempty"`

	// Placeholder is shown in place of an empty chart.
	Placeholder string `json:"placeholder,omitempty"`
	// Caption is a short text shown next to the chart.
	Caption string `json:"caption,omitempty"`
	// ReferenceY draws a dashed horizontal line.
	ReferenceY *float64 `json:"referenceY,omitempty"`

	// Panels are drawn side by side, each with its own axes.
	Panels []Figure `json:"panels,omitempty"`

	Options    []Option                           `json:"options,omitempty"`
	Grid       *correlation.Grid                  `json:"grid,omitempty"`
	Highlights map[string][]correlation.Highlight `json:"highlights,omitempty"`

	// Selection is the selection the figure was built for, after defaults
	// and story presets.
	Selection Selection `json:"selection"`
}

// Series is one trace of a figure. X and Y have the same length, as do the
// optional per-point slices.
type Series struct {
	Name  string    `json:"name"`
	Color string    `json:"color"`
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`

	Sizes  []float64 `json:"sizes,omitempty"`
	Counts []int     `json:"counts,omitempty"`
	Colors []string  `json:"colors,omitempty"`

	Dashed bool `json:"dashed,omitempty"`
	Dimmed bool `json:"dimmed,omitempty"`
}

type Tick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Option is a dropdown entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Empty reports whether the figure has nothing to draw.
func (f Figure) Empty() bool {
	for _, s := range f.Series {
		if len(s.X) > 0 {
			return false
		}
	}
	for _, p := range f.Panels {
		if !p.Empty() {
			return false
		}
	}
	return true
}

func placeholder(name, text string) Figure {
	return Figure{Name: name, Kind: Area, Placeholder: text, Series: []Series{}}
}
