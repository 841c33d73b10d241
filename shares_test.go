package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/mager/songstory/songs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() *songs.Dataset {
	mk := func(artist, genre, subgenre string, year int) songs.Song {
		return songs.Song{
			Artist: artist, Name: artist + subgenre, Genre: genre, Subgenre: subgenre,
			Released: time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC),
		}
	}
	return songs.NewDataset([]songs.Song{
		mk("X", "rock", "hard rock", 1998),
		mk("Y", "rock", "album rock", 1998),
		mk("Z", "pop", "dance pop", 2005),
	})
}

func TestWriteSharesSubgenres(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeShares(&out, testDataset(), "rock", "", false))

	s := out.String()
	assert.Contains(t, s, "1990")
	assert.Contains(t, s, "hard rock")
	assert.Contains(t, s, "album rock")
	assert.Contains(t, s, "50.00%")
	assert.NotContains(t, s, "dance pop")
}

func TestWriteSharesGenresCumulative(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeShares(&out, testDataset(), "", "", true))

	s := out.String()
	assert.Contains(t, s, "2000")
	assert.Contains(t, s, "33.33%")
	assert.Contains(t, s, "66.67%")
}

func TestWriteSharesErrors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, writeShares(&out, testDataset(), "jazz", "", false))
	assert.Error(t, writeShares(&out, testDataset(), "rock", "Z", false))
}
