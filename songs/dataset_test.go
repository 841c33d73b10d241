package songs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func song(artist, name, genre, subgenre string, released time.Time) Song {
	return Song{Artist: artist, Name: name, Genre: genre, Subgenre: subgenre, Released: released}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testDataset() *Dataset {
	return NewDataset([]Song{
		song("X", "a", "rock", "hard rock", day(1998, 5, 1)),
		song("X", "b", "rock", "classic rock", day(1998, 6, 1)),
		song("Y", "c", "rock", "classic rock", day(2001, 1, 1)),
		song("Y", "d", "rock", "hard rock", day(2002, 1, 1)),
		song("Y", "d", "rock", "album rock", day(2003, 1, 1)),
		song("Z", "e", "pop", "dance pop", day(2010, 1, 1)),
		song("A", "f", "rock", "album rock", day(1975, 3, 4)),
		song("A", "g", "rock", "album rock", day(1976, 3, 4)),
	})
}

func TestGenresAndSubgenres(t *testing.T) {
	ds := testDataset()

	assert.Equal(t, []string{"pop", "rock"}, ds.Genres())
	assert.Equal(t, []string{"hard rock", "classic rock", "album rock"}, ds.Subgenres("rock"))
	assert.Empty(t, ds.Subgenres("jazz"))
}

func TestArtistsByTrackCount(t *testing.T) {
	ds := testDataset()

	// Y has three rows but only two distinct names, tying A and X.
	assert.Equal(t, []string{"A", "X", "Y"}, ds.ArtistsByTrackCount("rock"))
	assert.Equal(t, []string{"Z"}, ds.ArtistsByTrackCount("pop"))
	assert.Empty(t, ds.ArtistsByTrackCount("jazz"))
}

func TestFilters(t *testing.T) {
	ds := testDataset()

	assert.Len(t, ds.ByGenre("rock"), 7)
	assert.Len(t, ds.ByArtist("Y"), 3)
	assert.Empty(t, ds.ByArtist("nobody"))
}

func TestDateRange(t *testing.T) {
	first, last, ok := DateRange(testDataset().ByGenre("rock"))
	assert.True(t, ok)
	assert.Equal(t, day(1975, 3, 4), first)
	assert.Equal(t, day(2003, 1, 1), last)

	_, _, ok = DateRange(nil)
	assert.False(t, ok)
}

func TestFeatureValue(t *testing.T) {
	s := Song{Popularity: 42, DurationMs: 1000, Features: Features{Tempo: 128, Valence: 0.3}}

	assert.Equal(t, 42.0, Popularity.Value(s))
	assert.Equal(t, 1000.0, DurationMs.Value(s))
	assert.Equal(t, 128.0, Tempo.Value(s))
	assert.Equal(t, 0.3, Valence.Value(s))
	assert.True(t, Valence.Valid())
	assert.False(t, Feature("bogus").Valid())
}
