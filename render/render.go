// Package render draws figures as SVG with go-chart.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/mager/songstory/charts"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrNotDrawable = errors.New("figure cannot be drawn")

const (
	Width  = 900
	Height = 500

	minDot = 3.0
	maxDot = 15.0

	panelHeight = 320
	titleHeight = 40
)

var (
	background = drawing.ColorFromHex("121212")
	foreground = drawing.ColorFromHex("E0E0E0")
	gridColor  = drawing.ColorFromHex("555555")
)

// SVG renders f as an SVG document. go-chart writes text as is, so every
// label is escaped before it reaches the chart.
func SVG(w io.Writer, f charts.Figure) error {
	if len(f.Panels) > 0 {
		return panels(w, f)
	}
	ch, err := Chart(f)
	if err != nil {
		return err
	}
	if err := ch.Render(chart.SVG, w); err != nil {
		return fmt.Errorf("rendering %s: %w", f.Name, err)
	}
	return nil
}

// panels lays the panels of f out on a grid of two columns, under the
// figure title. Each panel is a full go-chart SVG nested at its cell.
func panels(w io.Writer, f charts.Figure) error {
	cols := 2
	if len(f.Panels) == 1 {
		cols = 1
	}
	cellWidth := Width / cols
	rows := (len(f.Panels) + cols - 1) / cols
	height := titleHeight + rows*panelHeight

	title := f.Title
	if f.Caption != "" {
		title += " (" + f.Caption + ")"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %d %d">`, Width, height)
	fmt.Fprintf(&buf, `<rect width="%d" height="%d" fill="%s"/>`, Width, height, background.String())
	fmt.Fprintf(&buf, `<text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="16" fill="%s">%s</text>`,
		Width/2, titleHeight*2/3, foreground.String(), html.EscapeString(title))

	for i, p := range f.Panels {
		ch, err := sized(p, cellWidth, panelHeight)
		if err != nil {
			return err
		}
		x, y := (i%cols)*cellWidth, titleHeight+(i/cols)*panelHeight
		fmt.Fprintf(&buf, `<svg x="%d" y="%d" width="%d" height="%d">`, x, y, cellWidth, panelHeight)
		if err := ch.Render(chart.SVG, &buf); err != nil {
			return fmt.Errorf("rendering %s panel %d: %w", f.Name, i, err)
		}
		buf.WriteString("</svg>")
	}
	buf.WriteString("</svg>")

	_, err := buf.WriteTo(w)
	return err
}

// Chart converts f into a go-chart chart.
func Chart(f charts.Figure) (chart.Chart, error) {
	return sized(f, Width, Height)
}

func sized(f charts.Figure, width, height int) (chart.Chart, error) {
	if f.Kind == charts.Choices {
		return chart.Chart{}, fmt.Errorf("%w: %s holds dropdown options", ErrNotDrawable, f.Name)
	}

	ch := chart.Chart{
		Title:      html.EscapeString(f.Title),
		TitleStyle: chart.Style{FontColor: foreground},
		Width:      width,
		Height:     height,
		Background: chart.Style{
			FillColor: background,
			Padding:   chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Canvas: chart.Style{FillColor: background},
		XAxis:  chart.XAxis{Name: html.EscapeString(f.XLabel), NameStyle: textStyle(), Style: axisStyle()},
		YAxis:  chart.YAxis{Name: html.EscapeString(f.YLabel), NameStyle: textStyle(), Style: axisStyle()},
	}

	if f.Empty() {
		text := f.Placeholder
		if text == "" {
			text = "No data."
		}
		return placeholder(ch, html.EscapeString(text)), nil
	}

	switch f.XAxis {
	case charts.Date:
		ch.XAxis.ValueFormatter = dateFormatter
	case charts.Year:
		ch.XAxis.ValueFormatter = intFormatter
	}

	switch f.Kind {
	case charts.Area:
		ch.Series = areaSeries(f.Series)
		ch.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: 100}
	case charts.Matrix:
		ch.Series = matrixSeries(f.Series)
	default:
		for _, s := range f.Series {
			if len(s.X) == 0 {
				continue
			}
			if f.Kind == charts.Line || s.Dashed {
				ch.Series = append(ch.Series, lineSeries(s))
			} else {
				ch.Series = append(ch.Series, scatterSeries(s, maxSize(f.Series)))
			}
		}
	}

	xmin, xmax, ymin, ymax := bounds(f.Series)
	if f.ReferenceY != nil {
		ch.Series = append(ch.Series, referenceLine(xmin, xmax, *f.ReferenceY))
		ymin, ymax = math.Min(ymin, *f.ReferenceY), math.Max(ymax, *f.ReferenceY)
	}

	if f.Kind == charts.Matrix {
		ch.XAxis.Ticks = paddedTicks(f.XTicks)
		ch.YAxis.Ticks = paddedTicks(f.YTicks)
		return ch, nil
	}

	if len(f.XTicks) >= 2 {
		ch.XAxis.Ticks = ticks(f.XTicks)
	} else if xmin == xmax {
		pad := xPadding(f.XAxis)
		ch.XAxis.Range = &chart.ContinuousRange{Min: xmin - pad, Max: xmax + pad}
	}
	if ch.YAxis.Range == nil && ymin == ymax {
		ch.YAxis.Range = &chart.ContinuousRange{Min: ymin - 1, Max: ymax + 1}
	}

	if len(ch.Series) > 1 {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	return ch, nil
}

func textStyle() chart.Style {
	return chart.Style{FontColor: foreground}
}

func axisStyle() chart.Style {
	return chart.Style{FontColor: foreground, StrokeColor: gridColor, StrokeWidth: 1}
}

func color(hex string, dimmed bool) drawing.Color {
	c := drawing.ColorFromHex(hex)
	if dimmed {
		c = c.WithAlpha(64)
	}
	return c
}

// areaSeries stacks the series on top of one another. Each one is drawn as
// the running total up to it, largest first, so the smaller totals paint
// over the larger ones.
func areaSeries(series []charts.Series) []chart.Series {
	var stacked []chart.ContinuousSeries
	var total []float64
	for _, s := range series {
		if len(s.X) == 0 {
			continue
		}
		if total == nil {
			total = make([]float64, len(s.Y))
		}
		if len(s.Y) != len(total) {
			continue
		}
		y := make([]float64, len(s.Y))
		for i, v := range s.Y {
			total[i] += v
			y[i] = total[i]
		}
		c := color(s.Color, false)
		stacked = append(stacked, chart.ContinuousSeries{
			Name:    html.EscapeString(s.Name),
			XValues: s.X,
			YValues: y,
			Style: chart.Style{
				StrokeColor: c,
				StrokeWidth: 1,
				FillColor:   c.WithAlpha(220),
			},
		})
	}

	out := make([]chart.Series, 0, len(stacked))
	for i := len(stacked) - 1; i >= 0; i-- {
		out = append(out, stacked[i])
	}
	return out
}

func lineSeries(s charts.Series) chart.ContinuousSeries {
	c := color(s.Color, s.Dimmed)
	style := chart.Style{StrokeColor: c, StrokeWidth: 2, DotColor: c, DotWidth: 2}
	if s.Dashed {
		style.StrokeDashArray = []float64{5, 5}
		style.DotWidth = 0
	}
	return chart.ContinuousSeries{Name: html.EscapeString(s.Name), XValues: s.X, YValues: s.Y, Style: style}
}

func scatterSeries(s charts.Series, largest float64) chart.ContinuousSeries {
	c := color(s.Color, s.Dimmed)
	style := chart.Style{StrokeWidth: chart.Disabled, DotColor: c, DotWidth: 5}

	if len(s.Sizes) == len(s.X) && largest > 0 {
		sizes := s.Sizes
		style.DotWidthProvider = func(_, _ chart.Range, index int, _, _ float64) float64 {
			return minDot + (maxDot-minDot)*sizes[index]/largest
		}
	}
	if len(s.Colors) == len(s.X) {
		colors := s.Colors
		style.DotColorProvider = func(_, _ chart.Range, index int, _, _ float64) drawing.Color {
			return drawing.ColorFromHex(colors[index])
		}
	}

	return chart.ContinuousSeries{Name: html.EscapeString(s.Name), XValues: s.X, YValues: s.Y, Style: style}
}

func matrixSeries(series []charts.Series) []chart.Series {
	var out []chart.Series
	for _, s := range series {
		if len(s.X) == 0 {
			continue
		}
		out = append(out, scatterSeries(charts.Series{
			Name:   s.Name,
			Color:  s.Color,
			X:      s.X,
			Y:      s.Y,
			Colors: s.Colors,
			Sizes:  constant(len(s.X), 1),
		}, 1))
	}
	return out
}

func referenceLine(xmin, xmax, y float64) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    "Reference",
		XValues: []float64{xmin, xmax},
		YValues: []float64{y, y},
		Style: chart.Style{
			StrokeColor:     gridColor,
			StrokeWidth:     1,
			StrokeDashArray: []float64{4, 4},
		},
	}
}

// placeholder draws text on an otherwise empty canvas.
func placeholder(ch chart.Chart, text string) chart.Chart {
	ch.XAxis.Style.Hidden = true
	ch.YAxis.Style.Hidden = true
	ch.XAxis.Range = &chart.ContinuousRange{Min: 0, Max: 1}
	ch.YAxis.Range = &chart.ContinuousRange{Min: 0, Max: 1}
	ch.Series = []chart.Series{
		chart.ContinuousSeries{
			XValues: []float64{0, 1},
			YValues: []float64{0, 1},
			Style:   chart.Style{StrokeColor: drawing.ColorTransparent, StrokeWidth: chart.Disabled},
		},
		chart.AnnotationSeries{
			Annotations: []chart.Value2{{XValue: 0.5, YValue: 0.5, Label: text}},
			Style: chart.Style{
				FillColor:   background,
				FontColor:   foreground,
				StrokeColor: background,
			},
		},
	}
	return ch
}

func bounds(series []charts.Series) (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, s := range series {
		for i := range s.X {
			xmin, xmax = math.Min(xmin, s.X[i]), math.Max(xmax, s.X[i])
			ymin, ymax = math.Min(ymin, s.Y[i]), math.Max(ymax, s.Y[i])
		}
	}
	return xmin, xmax, ymin, ymax
}

func maxSize(series []charts.Series) float64 {
	var largest float64
	for _, s := range series {
		for _, v := range s.Sizes {
			largest = math.Max(largest, v)
		}
	}
	return largest
}

func xPadding(axis charts.AxisKind) float64 {
	switch axis {
	case charts.Year:
		return 5
	case charts.Date:
		return (180 * 24 * time.Hour).Seconds()
	}
	return 1
}

func ticks(in []charts.Tick) []chart.Tick {
	out := make([]chart.Tick, len(in))
	for i, t := range in {
		out[i] = chart.Tick{Value: t.Value, Label: html.EscapeString(t.Label)}
	}
	return out
}

// paddedTicks adds blank ticks half a step outside the first and last ones
// so that the cells on the edges are drawn whole.
func paddedTicks(in []charts.Tick) []chart.Tick {
	out := ticks(in)
	if len(in) == 0 {
		return out
	}
	lo, hi := in[0].Value, in[0].Value
	for _, t := range in {
		lo, hi = math.Min(lo, t.Value), math.Max(hi, t.Value)
	}
	return append(out, chart.Tick{Value: lo - 0.5}, chart.Tick{Value: hi + 0.5})
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func dateFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return time.Unix(int64(f), 0).UTC().Format("2006")
	}
	return ""
}

func intFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.Itoa(int(math.Round(f)))
	}
	return ""
}
