package shares_test

import (
	"math"
	"testing"
	"time"

	"github.com/mager/songstory/shares"
	"github.com/mager/songstory/songs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func byDecade(s songs.Song) (shares.Key, bool) { return shares.Decade(s.Year()), true }
func byDay(s songs.Song) (shares.Key, bool)    { return shares.Day(s.Released), true }
func genre(s songs.Song) string                { return s.Genre }
func subgenre(s songs.Song) string             { return s.Subgenre }

func sample() []songs.Song {
	mk := func(g, sg string, t time.Time) songs.Song {
		return songs.Song{Artist: "X", Genre: g, Subgenre: sg, Released: t}
	}
	return []songs.Song{
		mk("rock", "hard rock", date(1975, 1, 1)),
		mk("pop", "dance pop", date(1977, 3, 1)),
		mk("rock", "hard rock", date(1984, 6, 1)),
		mk("rock", "album rock", date(1985, 6, 1)),
		mk("latin", "reggaeton", date(1986, 6, 1)),
		mk("pop", "dance pop", date(1999, 1, 1)),
		mk("pop", "electropop", date(2003, 1, 1)),
		mk("rap", "trap", date(2003, 1, 1)),
		mk("rap", "trap", date(2015, 1, 1)),
	}
}

func sumByBucket(out []shares.Share) map[shares.Key]float64 {
	sums := map[shares.Key]float64{}
	for _, s := range out {
		sums[s.Bucket] += s.Percentage
	}
	return sums
}

func TestPercentagesSumTo100(t *testing.T) {
	for _, cumulative := range []bool{false, true} {
		out := shares.Aggregate(sample(), byDecade, genre, cumulative)
		require.NotEmpty(t, out)
		for k, sum := range sumByBucket(out) {
			assert.InDelta(t, 100, sum, 1e-6, "bucket %d", k)
		}
		for _, s := range out {
			assert.GreaterOrEqual(t, s.Percentage, 0.0)
			assert.LessOrEqual(t, s.Percentage, 100.0)
		}
	}
}

func TestCumulativeCountsNeverDecrease(t *testing.T) {
	out := shares.Aggregate(sample(), byDay, genre, true)
	for _, cat := range shares.Categories(out) {
		prev := math.Inf(-1)
		for _, s := range shares.Of(out, cat) {
			assert.GreaterOrEqual(t, s.Count, prev, cat)
			prev = s.Count
		}
	}

	last := shares.Of(out, "rap")
	assert.Equal(t, 2.0, last[len(last)-1].Count)
}

func TestMissingCategoriesAreZeroFilled(t *testing.T) {
	out := shares.Aggregate(sample(), byDecade, genre, false)

	assert.Equal(t, []shares.Key{1970, 1980, 1990, 2000, 2010}, shares.Buckets(out))
	assert.Len(t, out, 5*4)

	rap := shares.Of(out, "rap")
	require.Len(t, rap, 5)
	assert.Equal(t, 0.0, rap[0].Percentage)
	assert.Equal(t, 100.0, rap[4].Percentage)
	assert.InDelta(t, 50.0, rap[3].Percentage, 1e-9)
}

func TestSingleCategory(t *testing.T) {
	var rock []songs.Song
	for _, s := range sample() {
		if s.Genre == "rock" {
			rock = append(rock, s)
		}
	}

	out := shares.Aggregate(rock, byDecade, genre, false)
	require.Len(t, out, 2)
	for _, s := range out {
		assert.Equal(t, "rock", s.Category)
		assert.Equal(t, 100.0, s.Percentage)
	}
}

func TestIdenticalBuckets(t *testing.T) {
	same := func(songs.Song) (shares.Key, bool) { return 42, true }

	out := shares.Aggregate(sample(), same, genre, false)
	assert.Equal(t, []shares.Key{42}, shares.Buckets(out))
}

func TestExplicitOrder(t *testing.T) {
	out := shares.Aggregator[songs.Song]{
		Bucket:   byDecade,
		Category: genre,
		Order:    []string{"rap", "edm", "rock"},
	}.Aggregate(sample())

	// edm has no records; pop and latin were not named.
	assert.Equal(t, []string{"rap", "rock", "pop", "latin"}, shares.Categories(out))
}

func TestUnbucketedRecordsAreIgnored(t *testing.T) {
	none := func(songs.Song) (shares.Key, bool) { return 0, false }
	assert.Empty(t, shares.Aggregate(sample(), none, genre, false))
	assert.Empty(t, shares.Aggregate(nil, byDecade, genre, false))
}

func TestSameArtistSubgenresByDecade(t *testing.T) {
	records := []songs.Song{
		{Artist: "X", Genre: "rock", Subgenre: "A", Released: date(1998, 5, 1)},
		{Artist: "X", Genre: "rock", Subgenre: "B", Released: date(1998, 6, 1)},
	}

	out := shares.Aggregate(records, byDecade, subgenre, false)
	assert.Equal(t, []shares.Share{
		{Bucket: 1990, Category: "A", Count: 1, Percentage: 50},
		{Bucket: 1990, Category: "B", Count: 1, Percentage: 50},
	}, out)
}

func TestDayKey(t *testing.T) {
	late := time.Date(2001, 2, 3, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, date(2001, 2, 3), shares.Day(late).Time())
	assert.Equal(t, shares.Key(1990), shares.Decade(1999))
}
