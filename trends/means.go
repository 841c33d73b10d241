// Package trends computes the descriptive aggregates behind the dashboard's
// line and scatter charts: yearly means, indexed evolutions, career
// longevity, duration bins and discography breadth.
package trends

import (
	"math"
	"sort"

	"github.com/mager/songstory/songs"
	"github.com/montanaflynn/stats"
)

// mean is the average of the non-NaN values, or NaN when there are none.
func mean(values []float64) float64 {
	data := make(stats.Float64Data, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			data = append(data, v)
		}
	}
	m, err := stats.Mean(data)
	if err != nil {
		return math.NaN()
	}
	return m
}

// meansOf averages each feature over list.
func meansOf(list []songs.Song, features []songs.Feature) map[songs.Feature]float64 {
	out := make(map[songs.Feature]float64, len(features))
	values := make([]float64, len(list))
	for _, f := range features {
		for i, s := range list {
			values[i] = f.Value(s)
		}
		if m := mean(values); !math.IsNaN(m) {
			out[f] = m
		}
	}
	return out
}

// YearMeans holds the mean of several features over the songs of a release
// year, and optionally of a genre.
type YearMeans struct {
	Year  int                       `json:"year"`
	Genre string                    `json:"genre,omitempty"`
	Count int                       `json:"count"`
	Means map[songs.Feature]float64 `json:"means"`
}

// YearlyMeans averages track popularity and features per release year, over
// all genres.
func YearlyMeans(list []songs.Song, features []songs.Feature) []YearMeans {
	return groupYears(list, features, false)
}

// YearlyMeansByGenre averages track popularity and features per release year
// and genre.
func YearlyMeansByGenre(list []songs.Song, features []songs.Feature) []YearMeans {
	return groupYears(list, features, true)
}

func groupYears(list []songs.Song, features []songs.Feature, byGenre bool) []YearMeans {
	type key struct {
		year  int
		genre string
	}

	groups := map[key][]songs.Song{}
	for _, s := range list {
		k := key{year: s.Year()}
		if byGenre {
			k.genre = s.Genre
		}
		groups[k] = append(groups[k], s)
	}

	cols := append([]songs.Feature{songs.Popularity}, features...)
	out := make([]YearMeans, 0, len(groups))
	for k, g := range groups {
		out = append(out, YearMeans{
			Year:  k.year,
			Genre: k.genre,
			Count: len(g),
			Means: meansOf(g, cols),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Genre < out[j].Genre
	})

	return out
}

// FilterYears keeps the rows with from <= year <= to.
func FilterYears(rows []YearMeans, from, to int) []YearMeans {
	var out []YearMeans
	for _, r := range rows {
		if r.Year >= from && r.Year <= to {
			out = append(out, r)
		}
	}
	return out
}

// FilterGenre keeps the rows of one genre.
func FilterGenre(rows []YearMeans, genre string) []YearMeans {
	var out []YearMeans
	for _, r := range rows {
		if r.Genre == genre {
			out = append(out, r)
		}
	}
	return out
}
