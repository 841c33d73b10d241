package songs

import (
	"math"
	"time"
)

// Song is one row of the songs dataset. Songs are never mutated after Load;
// everything else (year, decade, buckets) is derived on demand.
type Song struct {
	Artist   string `json:"artist"`
	Name     string `json:"name"`
	Genre    string `json:"genre"`
	Subgenre string `json:"subgenre"`

	// Released is the album release date. Bare years are stored as January 1st.
	Released time.Time `json:"released"`

	// Popularity is the Spotify popularity score, from 0 to 100.
	Popularity float64 `json:"popularity"`
	// DurationMs is the duration of the track in milliseconds.
	// Example: 237040
	DurationMs float64 `json:"duration_ms"`

	Features Features `json:"features"`
}

// Year is the release year.
func (s Song) Year() int {
	return s.Released.Year()
}

// Decade is the release decade, e.g. 1990 for 1998.
func (s Song) Decade() int {
	return (s.Year() / 10) * 10
}

// DurationMinutes is the duration of the track in minutes.
func (s Song) DurationMinutes() float64 {
	return s.DurationMs / 60000
}

type Features struct {
	// Acousticness is a confidence measure from 0.0 to 1.0 of whether the track is acoustic.
	// 1.0 represents high confidence the track is acoustic.
	Acousticness float64 `json:"acousticness"`
	// Danceability describes how suitable a track is for dancing based on a combination of
	// musical elements including tempo, rhythm stability, beat strength, and overall regularity.
	// A value of 0.0 is least danceable and 1.0 is most danceable.
	Danceability float64 `json:"danceability"`
	// Energy is a measure from 0.0 to 1.0 and represents a perceptual measure of intensity
	// and activity. Typically, energetic tracks feel fast, loud, and noisy.
	Energy float64 `json:"energy"`
	// Instrumentalness predicts whether a track contains no vocals. The closer the value is to 1.0,
	// the greater likelihood the track contains no vocal content.
	Instrumentalness float64 `json:"instrumentalness"`
	// Key is the key the track is in, in standard Pitch Class notation. E.g. 0 = C, 1 = C♯/D♭.
	// Range: -1 - 11
	Key float64 `json:"key"`
	// Liveness detects the presence of an audience in the recording.
	// A value above 0.8 provides strong likelihood that the track is live.
	Liveness float64 `json:"liveness"`
	// Loudness is the overall loudness of a track in decibels (dB).
	// Values typically range between -60 and 0 db.
	Loudness float64 `json:"loudness"`
	// Mode indicates the modality of a track. Major is represented by 1 and minor is 0.
	Mode float64 `json:"mode"`
	// Speechiness detects the presence of spoken words in a track. Values above 0.66 describe
	// tracks that are probably made entirely of spoken words.
	Speechiness float64 `json:"speechiness"`
	// Tempo is the overall estimated tempo of a track in beats per minute (BPM).
	Tempo float64 `json:"tempo"`
	// Valence is a measure from 0.0 to 1.0 describing the musical positiveness conveyed by a track.
	Valence float64 `json:"valence"`
}

// Feature names a numeric column of the dataset.
type Feature string

const (
	Acousticness     Feature = "acousticness"
	Danceability     Feature = "danceability"
	DurationMs       Feature = "duration_ms"
	Energy           Feature = "energy"
	Instrumentalness Feature = "instrumentalness"
	Key              Feature = "key"
	Liveness         Feature = "liveness"
	Loudness         Feature = "loudness"
	Mode             Feature = "mode"
	Popularity       Feature = "track_popularity"
	Speechiness      Feature = "speechiness"
	Tempo            Feature = "tempo"
	Valence          Feature = "valence"
)

// AudioFeatures are the audio columns every dataset must carry.
var AudioFeatures = []Feature{
	Danceability, Energy, Key, Loudness, Mode,
	Speechiness, Acousticness, Instrumentalness, Liveness, Valence,
	Tempo,
}

// Value returns the feature value of s, or NaN for an unknown feature.
func (f Feature) Value(s Song) float64 {
	switch f {
	case Acousticness:
		return s.Features.Acousticness
	case Danceability:
		return s.Features.Danceability
	case DurationMs:
		return s.DurationMs
	case Energy:
		return s.Features.Energy
	case Instrumentalness:
		return s.Features.Instrumentalness
	case Key:
		return s.Features.Key
	case Liveness:
		return s.Features.Liveness
	case Loudness:
		return s.Features.Loudness
	case Mode:
		return s.Features.Mode
	case Popularity:
		return s.Popularity
	case Speechiness:
		return s.Features.Speechiness
	case Tempo:
		return s.Features.Tempo
	case Valence:
		return s.Features.Valence
	}
	return math.NaN()
}

// Valid reports whether f names a known column.
func (f Feature) Valid() bool {
	return !math.IsNaN(f.Value(Song{}))
}
