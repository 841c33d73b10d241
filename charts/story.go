package charts

import (
	"github.com/mager/songstory/songs"
)

// StoryPages is the number of pages of the feature/popularity story.
const StoryPages = 7

const (
	defaultFrom = 1970
	defaultTo   = 2020
)

// StoryFeatures are the features shown on the feature/popularity charts.
var StoryFeatures = []songs.Feature{
	songs.Danceability, songs.Energy, songs.Key, songs.Loudness, songs.Mode,
	songs.Speechiness, songs.Acousticness, songs.Instrumentalness, songs.Liveness, songs.Valence,
}

// Story is the preset applied by a story page.
type Story struct {
	Page     int             `json:"page"`
	Genre    string          `json:"genre,omitempty"`
	From     int             `json:"from"`
	To       int             `json:"to"`
	Features []songs.Feature `json:"features"`
}

// StoryPage returns the preset of page, from 1 to StoryPages.
func StoryPage(page int) (Story, bool) {
	if page < 1 || page > StoryPages {
		return Story{}, false
	}

	st := Story{Page: page, From: defaultFrom, To: defaultTo, Features: StoryFeatures}
	switch page {
	case 2:
		st.Genre = "pop"
	case 3:
		st.To = 2010
		st.Features = []songs.Feature{songs.Mode, songs.Valence, songs.Loudness}
	case 4:
		st.From = 2010
		st.Features = []songs.Feature{songs.Mode, songs.Valence, songs.Loudness}
	case 6:
		st.Features = nil
		for _, f := range StoryFeatures {
			if f != songs.Key && f != songs.Liveness {
				st.Features = append(st.Features, f)
			}
		}
	case 7:
		st.Features = []songs.Feature{songs.Key, songs.Liveness}
	}

	return st, true
}

// TurnPage moves delta pages from page, wrapping from the last page to the
// first and back.
func TurnPage(page, delta int) int {
	if page < 1 || page > StoryPages {
		page = 1
	}
	return ((page-1+delta)%StoryPages+StoryPages)%StoryPages + 1
}
