package trends

import (
	"sort"

	"github.com/mager/songstory/songs"
)

// MinArtists is the smallest group kept on the discography chart; smaller
// groups are too noisy.
const MinArtists = 5

// DiscographyGroup gathers the artists having released in the same number
// of subgenres.
type DiscographyGroup struct {
	Subgenres  int     `json:"subgenres"`
	Popularity float64 `json:"popularity"`
	Artists    int     `json:"artists"`
}

// Discography relates the breadth of an artist's catalogue, in distinct
// subgenres, to the mean of the artists' mean popularity.
func Discography(list []songs.Song) []DiscographyGroup {
	subgenres := map[string]map[string]bool{}
	popularity := map[string][]float64{}
	for _, s := range list {
		if subgenres[s.Artist] == nil {
			subgenres[s.Artist] = map[string]bool{}
		}
		subgenres[s.Artist][s.Subgenre] = true
		popularity[s.Artist] = append(popularity[s.Artist], s.Popularity)
	}

	byCount := map[int][]float64{}
	for artist, sg := range subgenres {
		byCount[len(sg)] = append(byCount[len(sg)], mean(popularity[artist]))
	}

	var out []DiscographyGroup
	for n, pops := range byCount {
		if len(pops) < MinArtists {
			continue
		}
		out = append(out, DiscographyGroup{Subgenres: n, Popularity: mean(pops), Artists: len(pops)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Subgenres < out[j].Subgenres })

	return out
}
