package shares

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var ErrBinCount = errors.New("bin count must be at least 1")

// Bins splits a time range into equal-width intervals. Intervals are closed
// on the right; the first one also includes the start of the range.
type Bins struct {
	edges     []time.Time
	midpoints []time.Time
}

// NewBins splits [start, end] into n bins. A zero-width range is widened to
// one day.
func NewBins(start, end time.Time, n int) (Bins, error) {
	if n < 1 {
		return Bins{}, fmt.Errorf("%w: got %d", ErrBinCount, n)
	}
	if end.Before(start) {
		start, end = end, start
	}
	if end.Equal(start) {
		end = start.Add(24 * time.Hour)
	}

	width := float64(end.Sub(start))
	edges := make([]time.Time, n+1)
	for i := 0; i < n; i++ {
		edges[i] = start.Add(time.Duration(width * float64(i) / float64(n)))
	}
	edges[n] = end

	midpoints := make([]time.Time, n)
	for i := range midpoints {
		midpoints[i] = edges[i].Add(edges[i+1].Sub(edges[i]) / 2)
	}

	return Bins{edges: edges, midpoints: midpoints}, nil
}

func (b Bins) Len() int {
	return len(b.midpoints)
}

func (b Bins) Edges() []time.Time {
	return append([]time.Time(nil), b.edges...)
}

func (b Bins) Midpoints() []time.Time {
	return append([]time.Time(nil), b.midpoints...)
}

// Index returns the bin holding t, or false when t is out of range.
func (b Bins) Index(t time.Time) (int, bool) {
	n := len(b.midpoints)
	if n == 0 || t.Before(b.edges[0]) || t.After(b.edges[n]) {
		return 0, false
	}
	return sort.Search(n, func(i int) bool { return !t.After(b.edges[i+1]) }), true
}

// Key returns the midpoint key of the bin holding t.
func (b Bins) Key(t time.Time) (Key, bool) {
	i, ok := b.Index(t)
	if !ok {
		return 0, false
	}
	return Key(b.midpoints[i].Unix()), true
}
