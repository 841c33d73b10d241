package trends

import (
	"sort"

	"github.com/mager/songstory/songs"
)

// LongevityFeatures can be followed on the longevity chart.
var LongevityFeatures = []songs.Feature{
	songs.Popularity,
	songs.Danceability,
	songs.Energy,
	songs.Valence,
	songs.Tempo,
}

// LongCareerDecades is the number of distinct decades an artist must have
// released in to count as a long career.
const LongCareerDecades = 3

// YearValue is the mean of a feature over Count songs of a year.
type YearValue struct {
	Year  int     `json:"year"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

type Careers struct {
	Long   []YearValue `json:"long"`
	Others []YearValue `json:"others"`
}

// LongCareerArtists returns the artists who released songs in at least
// LongCareerDecades distinct decades.
func LongCareerArtists(list []songs.Song) map[string]bool {
	decades := map[string]map[int]bool{}
	for _, s := range list {
		if decades[s.Artist] == nil {
			decades[s.Artist] = map[int]bool{}
		}
		decades[s.Artist][s.Decade()] = true
	}

	out := map[string]bool{}
	for artist, d := range decades {
		if len(d) >= LongCareerDecades {
			out[artist] = true
		}
	}
	return out
}

// Longevity compares the yearly mean of feature between long career artists
// and everyone else.
func Longevity(list []songs.Song, feature songs.Feature) Careers {
	long := LongCareerArtists(list)

	var longSongs, others []songs.Song
	for _, s := range list {
		if long[s.Artist] {
			longSongs = append(longSongs, s)
		} else {
			others = append(others, s)
		}
	}

	return Careers{
		Long:   yearly(longSongs, feature),
		Others: yearly(others, feature),
	}
}

func yearly(list []songs.Song, feature songs.Feature) []YearValue {
	values := map[int][]float64{}
	for _, s := range list {
		values[s.Year()] = append(values[s.Year()], feature.Value(s))
	}

	out := make([]YearValue, 0, len(values))
	for year, v := range values {
		out = append(out, YearValue{Year: year, Mean: mean(v), Count: len(v)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })

	return out
}
