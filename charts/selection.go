package charts

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mager/songstory/songs"
)

var ErrBadSelection = errors.New("bad selection")

// Selection is the state of the dashboard controls.
type Selection struct {
	Genre    string          `json:"genre,omitempty"`
	Artist   string          `json:"artist,omitempty"`
	Feature  songs.Feature   `json:"feature,omitempty"`
	Features []songs.Feature `json:"features,omitempty"`
	BaseYear int             `json:"baseYear,omitempty"`
	From     int             `json:"from,omitempty"`
	To       int             `json:"to,omitempty"`
	Bins     int             `json:"bins,omitempty"`
	// Page is the story page, from 1 to StoryPages. Zero means free
	// exploration.
	Page int `json:"page,omitempty"`
	// Step moves the current page or matrix column by that many positions.
	Step int `json:"step,omitempty"`
}

// ParseSelection reads a selection from query parameters.
func ParseSelection(q url.Values) (Selection, error) {
	sel := Selection{
		Genre:   q.Get("genre"),
		Artist:  q.Get("artist"),
		Feature: songs.Feature(q.Get("feature")),
	}

	for _, v := range q["features"] {
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				sel.Features = append(sel.Features, songs.Feature(f))
			}
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"base", &sel.BaseYear},
		{"from", &sel.From},
		{"to", &sel.To},
		{"bins", &sel.Bins},
		{"page", &sel.Page},
		{"step", &sel.Step},
	}
	for _, i := range ints {
		v := q.Get(i.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Selection{}, fmt.Errorf("%w: %s=%q is not a number", ErrBadSelection, i.key, v)
		}
		*i.dst = n
	}

	return sel.Normalize()
}

// Normalize validates the selection and clears values meaning "no choice".
func (s Selection) Normalize() (Selection, error) {
	s.Genre = strings.TrimSpace(s.Genre)
	if strings.EqualFold(s.Genre, "all") {
		s.Genre = ""
	}
	s.Artist = strings.TrimSpace(s.Artist)

	if s.Feature != "" && !s.Feature.Valid() {
		return Selection{}, fmt.Errorf("%w: unknown feature %q", ErrBadSelection, s.Feature)
	}
	for _, f := range s.Features {
		if !f.Valid() {
			return Selection{}, fmt.Errorf("%w: unknown feature %q", ErrBadSelection, f)
		}
	}
	if s.Page < 0 || s.Page > StoryPages {
		return Selection{}, fmt.Errorf("%w: page %d out of 1..%d", ErrBadSelection, s.Page, StoryPages)
	}
	if s.Bins < 0 || s.Bins > MaxBins {
		return Selection{}, fmt.Errorf("%w: bins %d out of 1..%d", ErrBadSelection, s.Bins, MaxBins)
	}
	if s.From != 0 && s.To != 0 && s.From > s.To {
		s.From, s.To = s.To, s.From
	}

	return s, nil
}

// Key is a canonical form of the selection, usable as a cache key.
func (s Selection) Key() string {
	features := make([]string, len(s.Features))
	for i, f := range s.Features {
		features[i] = string(f)
	}
	return fmt.Sprintf("genre=%s|artist=%s|feature=%s|features=%s|base=%d|from=%d|to=%d|bins=%d|page=%d|step=%d",
		s.Genre, s.Artist, s.Feature, strings.Join(features, ","),
		s.BaseYear, s.From, s.To, s.Bins, s.Page, s.Step)
}
