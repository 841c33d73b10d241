package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mager/songstory/config"
	"github.com/mager/songstory/logger"
	"github.com/mager/songstory/songs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csv = `track_name,track_artist,track_popularity,track_album_release_date,playlist_genre,playlist_subgenre,danceability,energy,key,loudness,mode,speechiness,acousticness,instrumentalness,liveness,valence,tempo,duration_ms
Song A,X,60,1998-05-01,rock,hard rock,0.5,0.7,5,-6.5,1,0.05,0.1,0,0.2,0.6,120,210000
Hit,Z,80,2019-11-29,pop,dance pop,0.8,0.6,1,-4,0,0.1,0.2,0,0.1,0.7,100,180000
`

func TestProvideDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o600))

	log, logs := logger.NewTestLogger()
	ds, err := ProvideDataset(log, config.Config{DatasetPath: path})
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, []string{"pop", "rock"}, ds.Genres())

	entries := logs.FilterMessage("Loaded dataset").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 2, entries[0].ContextMap()["songs"])
}

func TestProvideDatasetMissingFile(t *testing.T) {
	log, logs := logger.NewTestLogger()
	_, err := ProvideDataset(log, config.Config{DatasetPath: filepath.Join(t.TempDir(), "nope.csv")})

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, 1, logs.FilterMessage("Failed to open dataset").Len())
}

func TestProvideDatasetMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "songs.csv")
	require.NoError(t, os.WriteFile(path, []byte("track_name,track_artist\na,b\n"), 0o600))

	log, _ := logger.NewTestLogger()
	_, err := ProvideDataset(log, config.Config{DatasetPath: path})
	assert.True(t, errors.Is(err, songs.ErrMissingColumn))
}
