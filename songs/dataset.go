package songs

import (
	"sort"
	"time"

	"golang.org/x/exp/maps"
)

// Dataset is the loaded, filtered list of songs. It is built once and shared
// read-only by every request.
type Dataset struct {
	songs     []Song
	genres    []string
	subgenres map[string][]string
}

func NewDataset(songs []Song) *Dataset {
	d := &Dataset{songs: songs, subgenres: map[string][]string{}}

	seen := map[string]bool{}
	for _, s := range songs {
		if _, ok := d.subgenres[s.Genre]; !ok {
			d.subgenres[s.Genre] = []string{}
		}
		key := s.Genre + "\x00" + s.Subgenre
		if seen[key] {
			continue
		}
		seen[key] = true
		d.subgenres[s.Genre] = append(d.subgenres[s.Genre], s.Subgenre)
	}

	d.genres = maps.Keys(d.subgenres)
	sort.Strings(d.genres)

	return d
}

// Songs returns every song of the dataset. Callers must not modify it.
func (d *Dataset) Songs() []Song {
	return d.songs
}

func (d *Dataset) Len() int {
	return len(d.songs)
}

// Genres returns the sorted unique genres.
func (d *Dataset) Genres() []string {
	return append([]string(nil), d.genres...)
}

// Subgenres returns the subgenres of genre in the order they first appear.
func (d *Dataset) Subgenres(genre string) []string {
	return append([]string(nil), d.subgenres[genre]...)
}

func (d *Dataset) Filter(keep func(Song) bool) []Song {
	return Filter(d.songs, keep)
}

func (d *Dataset) ByGenre(genre string) []Song {
	return d.Filter(func(s Song) bool { return s.Genre == genre })
}

func (d *Dataset) ByArtist(artist string) []Song {
	return d.Filter(func(s Song) bool { return s.Artist == artist })
}

// ArtistsByTrackCount returns the artists of genre, the ones with the most
// distinct track names first. Ties are broken by name.
func (d *Dataset) ArtistsByTrackCount(genre string) []string {
	tracks := make(map[string]map[string]bool)
	for _, s := range d.songs {
		if s.Genre != genre {
			continue
		}
		if tracks[s.Artist] == nil {
			tracks[s.Artist] = map[string]bool{}
		}
		tracks[s.Artist][s.Name] = true
	}

	artists := maps.Keys(tracks)
	sort.Slice(artists, func(i, j int) bool {
		ci, cj := len(tracks[artists[i]]), len(tracks[artists[j]])
		if ci != cj {
			return ci > cj
		}
		return artists[i] < artists[j]
	})

	return artists
}

// Filter returns the songs for which keep returns true.
func Filter(songs []Song, keep func(Song) bool) []Song {
	var out []Song
	for _, s := range songs {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// DateRange returns the earliest and latest release dates of songs. ok is
// false when songs is empty.
func DateRange(songs []Song) (first, last time.Time, ok bool) {
	if len(songs) == 0 {
		return time.Time{}, time.Time{}, false
	}
	first, last = songs[0].Released, songs[0].Released
	for _, s := range songs[1:] {
		if s.Released.Before(first) {
			first = s.Released
		}
		if s.Released.After(last) {
			last = s.Released
		}
	}
	return first, last, true
}
