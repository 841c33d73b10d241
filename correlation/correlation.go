// Package correlation holds the curated feature correlations of each genre
// and the genre × feature importance matrix built from them.
package correlation

import (
	"github.com/mager/songstory/songs"
)

// Features are the matrix columns, in display order.
var Features = []songs.Feature{
	songs.Loudness,
	songs.Energy,
	songs.Acousticness,
	songs.Valence,
	songs.Danceability,
	songs.Tempo,
	songs.Instrumentalness,
	songs.DurationMs,
	songs.Speechiness,
	songs.Liveness,
}

// Genres are the matrix rows, top to bottom.
var Genres = []string{"pop", "latin", "r&b", "rap", "edm", "rock"}

// Labels are the display names of Genres.
var Labels = map[string]string{
	"pop":   "Pop",
	"latin": "Latin",
	"r&b":   "R&B",
	"rap":   "Rap",
	"edm":   "EDM",
	"rock":  "Rock",
}

// Pair is the correlation coefficient between two features.
type Pair struct {
	A           songs.Feature `json:"a"`
	B           songs.Feature `json:"b"`
	Coefficient float64       `json:"coefficient"`
}

// Highlight is one correlation seen from the side of a given feature.
type Highlight struct {
	Other       songs.Feature `json:"other"`
	Coefficient float64       `json:"coefficient"`
}

// Curated are the notable correlations among the 1000 most popular songs of
// each genre.
var Curated = map[string][]Pair{
	"pop": {
		{songs.Loudness, songs.Energy, 0.67},
		{songs.Acousticness, songs.Energy, -0.53},
		{songs.Acousticness, songs.Loudness, -0.36},
		{songs.Valence, songs.Energy, 0.36},
		{songs.Valence, songs.Danceability, 0.34},
		{songs.Valence, songs.Loudness, 0.28},
		{songs.Tempo, songs.Danceability, -0.24},
	},
	"rap": {
		{songs.Loudness, songs.Energy, 0.69},
		{songs.Instrumentalness, songs.Loudness, -0.42},
		{songs.Instrumentalness, songs.Energy, -0.36},
		{songs.Valence, songs.Energy, 0.35},
		{songs.Instrumentalness, songs.Acousticness, 0.31},
		{songs.Acousticness, songs.Energy, -0.3},
		{songs.Acousticness, songs.Loudness, -0.26},
	},
	"rock": {
		{songs.Loudness, songs.Energy, 0.76},
		{songs.Acousticness, songs.Energy, -0.62},
		{songs.Valence, songs.Danceability, 0.53},
		{songs.Acousticness, songs.Loudness, -0.49},
		{songs.Energy, songs.Speechiness, 0.29},
		{songs.Tempo, songs.Danceability, -0.25},
		{songs.Speechiness, songs.Loudness, 0.22},
		{songs.DurationMs, songs.Valence, -0.22},
		{songs.Tempo, songs.Speechiness, 0.21},
	},
	"latin": {
		{songs.Loudness, songs.Energy, 0.7},
		{songs.Acousticness, songs.Energy, -0.45},
		{songs.Valence, songs.Energy, 0.4},
		{songs.Acousticness, songs.Loudness, -0.33},
		{songs.Valence, songs.Danceability, 0.32},
		{songs.Valence, songs.Loudness, 0.29},
		{songs.Tempo, songs.Danceability, -0.22},
	},
	"r&b": {
		{songs.Loudness, songs.Energy, 0.68},
		{songs.Acousticness, songs.Energy, -0.57},
		{songs.Valence, songs.Energy, 0.43},
		{songs.Valence, songs.Danceability, 0.42},
		{songs.Acousticness, songs.Loudness, -0.4},
		{songs.Acousticness, songs.Danceability, -0.37},
		{songs.Valence, songs.Loudness, 0.24},
		{songs.Energy, songs.Danceability, 0.23},
		{songs.Tempo, songs.Acousticness, -0.22},
		{songs.Loudness, songs.Danceability, 0.21},
	},
	"edm": {
		{songs.Loudness, songs.Energy, 0.66},
		{songs.Acousticness, songs.Energy, -0.42},
		{songs.Valence, songs.Danceability, 0.38},
		{songs.DurationMs, songs.Loudness, -0.3},
		{songs.DurationMs, songs.Instrumentalness, 0.28},
		{songs.Acousticness, songs.Loudness, -0.25},
		{songs.Instrumentalness, songs.Loudness, -0.21},
		{songs.Tempo, songs.Energy, 0.19},
		{songs.Liveness, songs.Energy, 0.19},
		{songs.Loudness, songs.Liveness, 0.18},
	},
}

// HighlightsFor returns, for each genre, the curated correlations involving
// feature, each reported against the other feature of the pair. Genres
// without any are absent.
func HighlightsFor(feature songs.Feature) map[string][]Highlight {
	out := map[string][]Highlight{}
	for genre, pairs := range Curated {
		for _, p := range pairs {
			switch feature {
			case p.A:
				out[genre] = append(out[genre], Highlight{Other: p.B, Coefficient: p.Coefficient})
			case p.B:
				out[genre] = append(out[genre], Highlight{Other: p.A, Coefficient: p.Coefficient})
			}
		}
	}
	return out
}
