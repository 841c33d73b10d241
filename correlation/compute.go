package correlation

import (
	"math"
	"sort"

	"github.com/mager/songstory/songs"
	"gonum.org/v1/gonum/stat"
)

// Threshold is the smallest |r| worth reporting.
const Threshold = 0.2

// Compute returns the feature pairs with |r| >= Threshold among the top most
// popular songs of each genre, strongest first.
func Compute(all []songs.Song, top int) map[string][]Pair {
	byGenre := map[string][]songs.Song{}
	for _, s := range all {
		byGenre[s.Genre] = append(byGenre[s.Genre], s)
	}

	out := map[string][]Pair{}
	for genre, list := range byGenre {
		list = append([]songs.Song(nil), list...)
		sort.SliceStable(list, func(i, j int) bool { return list[i].Popularity > list[j].Popularity })
		if top > 0 && len(list) > top {
			list = list[:top]
		}
		if len(list) < 2 {
			continue
		}

		columns := make([][]float64, len(Features))
		for i, f := range Features {
			columns[i] = make([]float64, len(list))
			for j, s := range list {
				columns[i][j] = f.Value(s)
			}
		}

		var pairs []Pair
		for i := range Features {
			for j := i + 1; j < len(Features); j++ {
				r := stat.Correlation(columns[i], columns[j], nil)
				if math.IsNaN(r) || math.Abs(r) < Threshold {
					continue
				}
				pairs = append(pairs, Pair{A: Features[i], B: Features[j], Coefficient: r})
			}
		}
		sort.SliceStable(pairs, func(i, j int) bool {
			return math.Abs(pairs[i].Coefficient) > math.Abs(pairs[j].Coefficient)
		})
		if len(pairs) > 0 {
			out[genre] = pairs
		}
	}

	return out
}
