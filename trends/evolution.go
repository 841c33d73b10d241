package trends

import (
	"sort"
	"time"

	"github.com/mager/songstory/songs"
)

// EvolutionFeatures are the features followed by the evolution charts.
var EvolutionFeatures = []songs.Feature{
	songs.Danceability,
	songs.Energy,
	songs.Speechiness,
	songs.Liveness,
	songs.Valence,
	songs.Loudness,
}

const (
	// PopularThreshold is the popularity a song must exceed to be followed.
	PopularThreshold = 50
	// GroupYears is the width of a year group.
	GroupYears = 3
)

// EvolutionStart is the first release month taken into account.
var EvolutionStart = time.Date(2000, time.February, 1, 0, 0, 0, 0, time.UTC)

// YearGroup returns the first year of the group holding year.
func YearGroup(year int) int {
	return year / GroupYears * GroupYears
}

// GroupMeans are feature means for one genre over one year group.
type GroupMeans struct {
	Group int                       `json:"group"`
	Genre string                    `json:"genre"`
	Means map[songs.Feature]float64 `json:"means"`
}

// EvolutionGroups averages EvolutionFeatures per year group and genre over
// the popular songs released since EvolutionStart. Rows are sorted by group,
// then genre.
func EvolutionGroups(list []songs.Song) []GroupMeans {
	type key struct {
		group int
		genre string
	}

	groups := map[key][]songs.Song{}
	for _, s := range list {
		if s.Released.Before(EvolutionStart) || s.Popularity <= PopularThreshold {
			continue
		}
		k := key{group: YearGroup(s.Year()), genre: s.Genre}
		groups[k] = append(groups[k], s)
	}

	out := make([]GroupMeans, 0, len(groups))
	for k, g := range groups {
		out = append(out, GroupMeans{Group: k.group, Genre: k.genre, Means: meansOf(g, EvolutionFeatures)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		return out[i].Genre < out[j].Genre
	})

	return out
}

// Groups returns the distinct year groups of rows, ascending.
func Groups(rows []GroupMeans) []int {
	seen := map[int]bool{}
	var out []int
	for _, r := range rows {
		if !seen[r.Group] {
			seen[r.Group] = true
			out = append(out, r.Group)
		}
	}
	sort.Ints(out)
	return out
}

// Evolution indexes every row against the row of the same genre for the base
// year group: 100 means unchanged since then. Genres without a base row are
// left out, as are features whose base value is zero.
func Evolution(rows []GroupMeans, baseYear int) []GroupMeans {
	base := map[string]map[songs.Feature]float64{}
	group := YearGroup(baseYear)
	for _, r := range rows {
		if r.Group == group {
			base[r.Genre] = r.Means
		}
	}

	var out []GroupMeans
	for _, r := range rows {
		b, ok := base[r.Genre]
		if !ok {
			continue
		}
		index := map[songs.Feature]float64{}
		for f, v := range r.Means {
			if bv, ok := b[f]; ok && bv != 0 {
				index[f] = v / bv * 100
			}
		}
		out = append(out, GroupMeans{Group: r.Group, Genre: r.Genre, Means: index})
	}

	return out
}
