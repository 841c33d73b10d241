package trends

import (
	"math"
	"sort"

	"github.com/mager/songstory/songs"
	"gonum.org/v1/gonum/stat"
)

// TrendFraction is the share of points each local fit of the trend uses.
const TrendFraction = 0.3

// DurationBin groups the songs whose duration rounds to the same quarter
// minute.
type DurationBin struct {
	Minutes    float64 `json:"minutes"`
	Popularity float64 `json:"popularity"`
	Count      int     `json:"count"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type DurationTrend struct {
	Bins  []DurationBin `json:"bins"`
	Trend []Point       `json:"trend"`
}

// QuarterMinute rounds a duration in minutes to the nearest quarter minute.
func QuarterMinute(minutes float64) float64 {
	return math.RoundToEven(minutes*4) / 4
}

// DurationPopularity returns the mean popularity per quarter-minute duration
// bin, with a smoothed trend line through the bins.
func DurationPopularity(list []songs.Song) DurationTrend {
	values := map[float64][]float64{}
	for _, s := range list {
		if math.IsNaN(s.DurationMs) {
			continue
		}
		bin := QuarterMinute(s.DurationMinutes())
		values[bin] = append(values[bin], s.Popularity)
	}

	bins := make([]DurationBin, 0, len(values))
	for minutes, pop := range values {
		bins = append(bins, DurationBin{Minutes: minutes, Popularity: mean(pop), Count: len(pop)})
	}
	sort.Slice(bins, func(i, j int) bool { return bins[i].Minutes < bins[j].Minutes })

	x := make([]float64, len(bins))
	y := make([]float64, len(bins))
	for i, b := range bins {
		x[i], y[i] = b.Minutes, b.Popularity
	}

	smooth := Lowess(x, y, TrendFraction)
	trend := make([]Point, len(bins))
	for i := range bins {
		trend[i] = Point{X: x[i], Y: smooth[i]}
	}

	return DurationTrend{Bins: bins, Trend: trend}
}

// Lowess smooths y against x, which must be sorted ascending. Each point is
// fitted by a weighted linear regression over its frac*len(x) nearest
// neighbours, weighted with the tricube kernel.
func Lowess(x, y []float64, frac float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	k := int(math.Ceil(frac * float64(n)))
	if k < 2 {
		k = 2
	}
	if k > n {
		k = n
	}

	dist := make([]float64, n)
	weights := make([]float64, n)
	for i := range x {
		for j := range x {
			dist[j] = math.Abs(x[j] - x[i])
		}
		sorted := append([]float64(nil), dist...)
		sort.Float64s(sorted)
		h := sorted[k-1]

		for j, d := range dist {
			weights[j] = 0
			if h == 0 {
				if d == 0 {
					weights[j] = 1
				}
				continue
			}
			if u := d / h; u < 1 {
				c := 1 - u*u*u
				weights[j] = c * c * c
			}
		}

		alpha, beta := stat.LinearRegression(x, y, weights, false)
		fit := alpha + beta*x[i]
		if math.IsNaN(fit) || math.IsInf(fit, 0) {
			fit = stat.Mean(y, weights)
		}
		out[i] = fit
	}

	return out
}
