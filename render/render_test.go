package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mager/songstory/charts"
	"github.com/mager/songstory/correlation"
	"github.com/stretchr/testify/assert"
	"github.com/wcharczuk/go-chart/v2"
)

func render(t *testing.T, f charts.Figure) string {
	t.Helper()
	var buf bytes.Buffer
	err := SVG(&buf, f)
	assert.NoError(t, err)
	return buf.String()
}

func TestSVGArea(t *testing.T) {
	f := charts.Figure{
		Name:  "genre-shares",
		Title: "Genre share per decade",
		Kind:  charts.Area,
		XAxis: charts.Year,
		Series: []charts.Series{
			{Name: "pop", Color: "#636EFA", X: []float64{1990, 2000}, Y: []float64{40, 70}},
			{Name: "rock", Color: "#EF553B", X: []float64{1990, 2000}, Y: []float64{60, 30}},
		},
		XTicks: []charts.Tick{{Value: 1990, Label: "1990"}, {Value: 2000, Label: "2000"}},
	}

	out := render(t, f)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Genre share per decade")
}

func TestAreaSeriesStacks(t *testing.T) {
	series := areaSeries([]charts.Series{
		{Name: "a", Color: "#111111", X: []float64{1, 2}, Y: []float64{20, 50}},
		{Name: "b", Color: "#222222", X: []float64{1, 2}, Y: []float64{80, 50}},
	})

	assert.Len(t, series, 2)
	top := series[0].(chart.ContinuousSeries)
	bottom := series[1].(chart.ContinuousSeries)
	assert.Equal(t, "b", top.Name)
	assert.Equal(t, []float64{100, 100}, top.YValues)
	assert.Equal(t, "a", bottom.Name)
	assert.Equal(t, []float64{20, 50}, bottom.YValues)
}

func TestSVGSingleBucket(t *testing.T) {
	f := charts.Figure{
		Name:  "subgenre-shares",
		Kind:  charts.Area,
		XAxis: charts.Year,
		Series: []charts.Series{
			{Name: "album rock", Color: "#1B9E77", X: []float64{1990}, Y: []float64{100}},
		},
	}

	ch, err := Chart(f)
	assert.NoError(t, err)
	assert.NotNil(t, ch.XAxis.Range)
	assert.Equal(t, 1985.0, ch.XAxis.Range.GetMin())
	assert.Equal(t, 1995.0, ch.XAxis.Range.GetMax())

	assert.Contains(t, render(t, f), "<svg")
}

func TestSVGPlaceholder(t *testing.T) {
	f := charts.Figure{Name: "subgenre-shares", Kind: charts.Area, Placeholder: "Select a genre"}

	out := render(t, f)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Select a genre")
}

func TestSVGScatter(t *testing.T) {
	ref := 100.0
	f := charts.Figure{
		Name:       "duration-popularity",
		Kind:       charts.Scatter,
		ReferenceY: &ref,
		Series: []charts.Series{
			{
				Name: "Songs", Color: "#636EFA",
				X: []float64{2.5, 3, 3.5}, Y: []float64{40, 55, 50},
				Sizes:  []float64{10, 40, 20},
				Colors: []string{"#440154", "#21918C", "#FDE725"},
			},
			{Name: "Trend", Color: "#FFFFFF", X: []float64{2.5, 3, 3.5}, Y: []float64{45, 50, 52}, Dashed: true},
		},
	}

	ch, err := Chart(f)
	assert.NoError(t, err)
	assert.Len(t, ch.Series, 3)
	assert.Len(t, ch.Elements, 1)

	dots := ch.Series[0].(chart.ContinuousSeries)
	assert.Equal(t, float64(chart.Disabled), dots.Style.StrokeWidth)
	assert.NotNil(t, dots.Style.DotWidthProvider)
	assert.Equal(t, maxDot, dots.Style.DotWidthProvider(nil, nil, 1, 0, 0))
	assert.NotNil(t, dots.Style.DotColorProvider)

	trend := ch.Series[1].(chart.ContinuousSeries)
	assert.Equal(t, []float64{5, 5}, trend.Style.StrokeDashArray)

	assert.Contains(t, render(t, f), "<svg")
}

func TestSVGMatrix(t *testing.T) {
	grid := correlation.Matrix("")
	f := charts.Figure{
		Name: "correlation-matrix",
		Kind: charts.Matrix,
		Grid: &grid,
		Series: []charts.Series{
			{Name: "danceability", X: []float64{0, 0}, Y: []float64{1, 0}, Colors: []string{"#FFFFFF", "#008000"}},
			{Name: "energy", X: []float64{1, 1}, Y: []float64{1, 0}, Colors: []string{"#FF9999", "#FFFFFF"}},
		},
		XTicks: []charts.Tick{{Value: 0, Label: "Danceability"}, {Value: 1, Label: "Energy"}},
		YTicks: []charts.Tick{{Value: 0, Label: "Rock"}, {Value: 1, Label: "R&B"}},
	}

	ch, err := Chart(f)
	assert.NoError(t, err)
	assert.Len(t, ch.XAxis.Ticks, 4)
	assert.Equal(t, -0.5, ch.XAxis.Ticks[2].Value)
	assert.Equal(t, 1.5, ch.XAxis.Ticks[3].Value)
	assert.Empty(t, ch.Elements)

	out := render(t, f)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "R&amp;B")
	assert.NotContains(t, out, "R&B")
}

func TestSVGPanels(t *testing.T) {
	panel := func(title string) charts.Figure {
		return charts.Figure{
			Title: title,
			Kind:  charts.Scatter,
			XAxis: charts.Number,
			Series: []charts.Series{{
				Name: "Year", Color: "#FDE725",
				X: []float64{0.2, 0.4, 0.6}, Y: []float64{30, 40, 50},
				Colors: []string{"#440154", "#21918C", "#FDE725"},
			}},
		}
	}
	f := charts.Figure{
		Name:    "feature-popularity",
		Title:   "Features vs popularity",
		Kind:    charts.Scatter,
		Caption: "3/7",
		Panels:  []charts.Figure{panel("Mode vs popularity"), panel("Valence vs popularity"), panel("Loudness & popularity")},
	}

	out := render(t, f)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.True(t, strings.HasSuffix(out, "</svg>"))
	assert.Contains(t, out, `viewBox="0 0 900 680"`)
	assert.Contains(t, out, "Features vs popularity (3/7)")
	assert.Contains(t, out, "Mode vs popularity")
	assert.Contains(t, out, "Valence vs popularity")
	assert.Contains(t, out, "Loudness &amp; popularity")
	assert.Contains(t, out, `<svg x="450" y="40" width="450" height="320">`)
	assert.Contains(t, out, `<svg x="0" y="360" width="450" height="320">`)
	// Outer document, one wrapper per panel and the go-chart document inside it.
	assert.Equal(t, 1+2*len(f.Panels), strings.Count(out, "<svg"))
	assert.Equal(t, strings.Count(out, "<svg"), strings.Count(out, "</svg>"))
}

func TestSVGChoices(t *testing.T) {
	var buf bytes.Buffer
	err := SVG(&buf, charts.Figure{Name: "artist-options", Kind: charts.Choices})
	assert.ErrorIs(t, err, ErrNotDrawable)
	assert.Zero(t, buf.Len())
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "1998", dateFormatter(float64(893980800)))
	assert.Equal(t, "2004", intFormatter(2003.6))
	assert.Equal(t, "", intFormatter("x"))
}
