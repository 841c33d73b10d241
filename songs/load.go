package songs

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// MinYear is the earliest release year kept; older catalogues are too sparse.
const MinYear = 1970

var ErrMissingColumn = errors.New("missing column")

const (
	colArtist     = "track_artist"
	colName       = "track_name"
	colReleased   = "track_album_release_date"
	colPopularity = "track_popularity"
	colGenre      = "playlist_genre"
	colSubgenre   = "playlist_subgenre"
	colDuration   = "duration_ms"
)

func numericColumns() []string {
	cols := []string{colPopularity, colDuration}
	for _, f := range AudioFeatures {
		cols = append(cols, string(f))
	}
	return cols
}

// Load reads the songs CSV. Rows whose release date cannot be parsed, or
// which were released before MinYear, are dropped.
func Load(r io.Reader) (*Dataset, error) {
	types := map[string]series.Type{}
	for _, col := range numericColumns() {
		types[col] = series.Float
	}

	df := dataframe.ReadCSV(r,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(types),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("reading csv: %w", df.Err)
	}

	present := map[string]bool{}
	for _, name := range df.Names() {
		present[name] = true
	}
	required := append([]string{colArtist, colName, colReleased, colGenre, colSubgenre}, numericColumns()...)
	for _, col := range required {
		if !present[col] {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	text := func(col string) []string { return df.Col(col).Records() }
	num := func(col string) []float64 { return df.Col(col).Float() }

	artists, names := text(colArtist), text(colName)
	released := text(colReleased)
	genres, subgenres := text(colGenre), text(colSubgenre)
	popularity, duration := num(colPopularity), num(colDuration)

	features := map[Feature][]float64{}
	for _, f := range AudioFeatures {
		features[f] = num(string(f))
	}

	var songs []Song
	for i := 0; i < df.Nrow(); i++ {
		date, ok := ParseReleaseDate(released[i])
		if !ok || date.Year() < MinYear {
			continue
		}

		songs = append(songs, Song{
			Artist:     artists[i],
			Name:       names[i],
			Genre:      genres[i],
			Subgenre:   subgenres[i],
			Released:   date,
			Popularity: popularity[i],
			DurationMs: duration[i],
			Features: Features{
				Acousticness:     features[Acousticness][i],
				Danceability:     features[Danceability][i],
				Energy:           features[Energy][i],
				Instrumentalness: features[Instrumentalness][i],
				Key:              features[Key][i],
				Liveness:         features[Liveness][i],
				Loudness:         features[Loudness][i],
				Mode:             features[Mode][i],
				Speechiness:      features[Speechiness][i],
				Tempo:            features[Tempo][i],
				Valence:          features[Valence][i],
			},
		})
	}

	return NewDataset(songs), nil
}
