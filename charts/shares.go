package charts

import (
	"fmt"
	"strconv"

	"github.com/mager/songstory/shares"
	"github.com/mager/songstory/songs"
)

func byDecade(s songs.Song) (shares.Key, bool) { return shares.Decade(s.Year()), true }
func byDay(s songs.Song) (shares.Key, bool)    { return shares.Day(s.Released), true }
func genreOf(s songs.Song) string              { return s.Genre }
func subgenreOf(s songs.Song) string           { return s.Subgenre }

// areaSeries turns shares into one series per category.
func areaSeries(out []shares.Share, colors map[string]string) []Series {
	series := []Series{}
	for _, cat := range shares.Categories(out) {
		s := Series{Name: cat, Color: colorOf(colors, cat)}
		for _, sh := range shares.Of(out, cat) {
			s.X = append(s.X, float64(sh.Bucket))
			s.Y = append(s.Y, sh.Percentage)
			s.Counts = append(s.Counts, int(sh.Count))
		}
		series = append(series, s)
	}
	return series
}

func decadeTicks(out []shares.Share) []Tick {
	var ticks []Tick
	for _, k := range shares.Buckets(out) {
		ticks = append(ticks, Tick{Value: float64(k), Label: strconv.Itoa(int(k))})
	}
	return ticks
}

func (d *Dashboard) genreShares(Selection) (Figure, error) {
	return d.cached(GenreShares, func() (Figure, error) {
		out := shares.Aggregator[songs.Song]{
			Bucket:   byDecade,
			Category: genreOf,
			Order:    d.data.Genres(),
		}.Aggregate(d.data.Songs())

		return Figure{
			Name:   GenreShares,
			Title:  "Share of each genre per decade",
			Kind:   Area,
			XLabel: "Decade",
			YLabel: "Percentage (%)",
			XAxis:  Year,
			Series: areaSeries(out, GenreColors),
			XTicks: decadeTicks(out),
		}, nil
	})
}

// subgenreDecades is the default subgenre chart of a genre.
func (d *Dashboard) subgenreDecades(genre string) (Figure, error) {
	return d.cached(SubgenreShares+"/"+genre, func() (Figure, error) {
		out := shares.Aggregator[songs.Song]{
			Bucket:   byDecade,
			Category: subgenreOf,
			Order:    d.data.Subgenres(genre),
		}.Aggregate(d.data.ByGenre(genre))

		return Figure{
			Name:      SubgenreShares,
			Title:     fmt.Sprintf("Evolution of %s subgenres", genre),
			Kind:      Area,
			XLabel:    "Decade",
			YLabel:    "Percentage (%)",
			XAxis:     Year,
			Series:    areaSeries(out, d.subgenreColors),
			XTicks:    decadeTicks(out),
			Selection: Selection{Genre: genre},
		}, nil
	})
}

func (d *Dashboard) subgenreShares(sel Selection) (Figure, error) {
	if sel.Genre == "" {
		return placeholder(SubgenreShares, SelectGenre), nil
	}
	if err := d.checkGenre(sel.Genre); err != nil {
		return Figure{}, err
	}

	if sel.Artist != "" {
		genreSongs := d.data.ByGenre(sel.Genre)
		artistSongs := songs.Filter(genreSongs, func(s songs.Song) bool { return s.Artist == sel.Artist })
		if len(artistSongs) > 0 {
			return d.subgenresOverArtist(sel, genreSongs, artistSongs)
		}
	}

	return d.subgenreDecades(sel.Genre)
}

// subgenresOverArtist zooms the subgenre shares of a genre on the release
// span of one artist.
func (d *Dashboard) subgenresOverArtist(sel Selection, genreSongs, artistSongs []songs.Song) (Figure, error) {
	n := sel.Bins
	if n == 0 {
		n = d.bins
	}

	first, last, _ := songs.DateRange(artistSongs)
	bins, err := shares.NewBins(first, last, n)
	if err != nil {
		return Figure{}, err
	}

	out := shares.Aggregator[songs.Song]{
		Bucket:   func(s songs.Song) (shares.Key, bool) { return bins.Key(s.Released) },
		Category: subgenreOf,
		Order:    d.data.Subgenres(sel.Genre),
	}.Aggregate(genreSongs)

	return Figure{
		Name:      SubgenreShares,
		Title:     fmt.Sprintf("Subgenres of %s while %s was releasing", sel.Genre, sel.Artist),
		Kind:      Area,
		XLabel:    "Date",
		YLabel:    "Percentage (%)",
		XAxis:     Date,
		Series:    areaSeries(out, d.subgenreColors),
		Selection: Selection{Genre: sel.Genre, Artist: sel.Artist, Bins: n},
	}, nil
}

func (d *Dashboard) artistSubgenres(sel Selection) (Figure, error) {
	if sel.Genre == "" || sel.Artist == "" {
		return placeholder(ArtistSubgenres, SelectArtist), nil
	}
	if err := d.checkGenre(sel.Genre); err != nil {
		return Figure{}, err
	}

	list := songs.Filter(d.data.ByArtist(sel.Artist), func(s songs.Song) bool {
		return s.Genre == sel.Genre
	})
	if len(list) == 0 {
		return d.subgenreDecades(sel.Genre)
	}

	out := shares.Aggregator[songs.Song]{
		Bucket:     byDay,
		Category:   subgenreOf,
		Cumulative: true,
		Order:      d.data.Subgenres(sel.Genre),
	}.Aggregate(list)

	return Figure{
		Name:      ArtistSubgenres,
		Title:     fmt.Sprintf("Cumulative subgenres of %s (%s)", sel.Artist, sel.Genre),
		Kind:      Area,
		XLabel:    "Date",
		YLabel:    "Cumulative percentage (%)",
		XAxis:     Date,
		Series:    areaSeries(out, d.subgenreColors),
		Selection: Selection{Genre: sel.Genre, Artist: sel.Artist},
	}, nil
}

func (d *Dashboard) artistOptions(sel Selection) (Figure, error) {
	f := Figure{Name: ArtistOptions, Kind: Choices, Series: []Series{}, Options: []Option{}, Selection: Selection{Genre: sel.Genre}}
	if sel.Genre == "" {
		return f, nil
	}
	for _, artist := range d.data.ArtistsByTrackCount(sel.Genre) {
		f.Options = append(f.Options, Option{Label: artist, Value: artist})
	}
	return f, nil
}
