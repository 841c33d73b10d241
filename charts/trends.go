package charts

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mager/songstory/songs"
	"github.com/mager/songstory/trends"
)

const (
	longCareerColor = "#008000"
	othersColor     = "#0000FF"
	durationColor   = "#2CA02C"
	trendColor      = "#0000FF"
	artistsColor    = "#62D089"
)

func (d *Dashboard) featureEvolution(sel Selection) (Figure, error) {
	feature := sel.Feature
	if feature == "" {
		feature = trends.EvolutionFeatures[0]
	}
	if !contains(trends.EvolutionFeatures, feature) {
		return Figure{}, fmt.Errorf("%w: %q is not followed over time", ErrBadSelection, feature)
	}
	if err := d.checkGenre(sel.Genre); err != nil {
		return Figure{}, err
	}

	rows := d.evolutionGroups()
	groups := trends.Groups(rows)
	if len(groups) == 0 {
		return Figure{Kind: Line, Series: []Series{}, Placeholder: "No popular songs since 2000."}, nil
	}

	base := nearestGroup(groups, sel.BaseYear)

	key := fmt.Sprintf("%s/%s/%d/%s", FeatureEvolution, feature, base, sel.Genre)
	return d.cached(key, func() (Figure, error) {
		indexed := trends.Evolution(rows, base)

		var series []Series
		for _, genre := range d.data.Genres() {
			s := Series{
				Name:   genre,
				Color:  colorOf(GenreColors, genre),
				Dimmed: sel.Genre != "" && sel.Genre != genre,
			}
			for _, r := range indexed {
				v, ok := r.Means[feature]
				if r.Genre != genre || !ok {
					continue
				}
				s.X = append(s.X, float64(r.Group))
				s.Y = append(s.Y, v)
			}
			if len(s.X) > 0 {
				series = append(series, s)
			}
		}
		if series == nil {
			series = []Series{}
		}

		ticks := make([]Tick, len(groups))
		for i, g := range groups {
			ticks[i] = Tick{Value: float64(g), Label: strconv.Itoa(g)}
		}

		hundred := 100.0
		return Figure{
			Name:       FeatureEvolution,
			Title:      fmt.Sprintf("Evolution of %s (%d = 100)", Label(feature), base),
			Kind:       Line,
			XLabel:     "Year",
			YLabel:     Label(feature) + " (%)",
			XAxis:      Year,
			Series:     series,
			XTicks:     ticks,
			ReferenceY: &hundred,
			Selection:  Selection{Genre: sel.Genre, Feature: feature, BaseYear: base},
		}, nil
	})
}

// nearestGroup snaps year onto the closest year group that has data. Zero
// picks the first group.
func nearestGroup(groups []int, year int) int {
	if year == 0 {
		return groups[0]
	}
	want := trends.YearGroup(year)
	best := groups[0]
	for _, g := range groups[1:] {
		if abs(g-want) < abs(best-want) {
			best = g
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// storySelection applies the story page of sel, then the defaults.
func storySelection(sel Selection) Selection {
	applied := Selection{
		Genre:    sel.Genre,
		Features: sel.Features,
		From:     sel.From,
		To:       sel.To,
		Page:     sel.Page,
	}
	if sel.Step != 0 {
		applied.Page = TurnPage(sel.Page, sel.Step)
	}
	if st, ok := StoryPage(applied.Page); ok {
		applied.Genre = st.Genre
		applied.From, applied.To = st.From, st.To
		applied.Features = st.Features
	}

	if len(applied.Features) == 0 {
		applied.Features = StoryFeatures
	}
	if applied.From == 0 {
		applied.From = defaultFrom
	}
	if applied.To == 0 {
		applied.To = defaultTo
	}
	return applied
}

// popularityKey is the cache key of a feature-popularity figure. Story pages
// and the untouched default of each genre are cached. Free ranges and feature
// picks are not.
func popularityKey(sel, applied Selection) (string, bool) {
	if applied.Page != 0 {
		return fmt.Sprintf("%s/page/%d", FeaturePopularity, applied.Page), true
	}
	if sel.From != 0 || sel.To != 0 || len(sel.Features) > 0 {
		return "", false
	}
	return fmt.Sprintf("%s/genre/%s", FeaturePopularity, applied.Genre), true
}

// featurePopularity draws one panel per feature: the yearly mean of the
// feature against the yearly mean popularity, colored by year.
func (d *Dashboard) featurePopularity(sel Selection) (Figure, error) {
	applied := storySelection(sel)
	for _, f := range applied.Features {
		if !contains(StoryFeatures, f) {
			return Figure{}, fmt.Errorf("%w: %q has no popularity chart", ErrBadSelection, f)
		}
	}
	if err := d.checkGenre(applied.Genre); err != nil {
		return Figure{}, err
	}

	build := func() (Figure, error) {
		all, byGenre := d.yearlyMeans()
		rows := all
		if applied.Genre != "" {
			rows = trends.FilterGenre(byGenre, applied.Genre)
		}
		rows = trends.FilterYears(rows, applied.From, applied.To)

		f := Figure{
			Name:      FeaturePopularity,
			Title:     "Features vs popularity",
			Kind:      Scatter,
			Series:    []Series{},
			Panels:    []Figure{},
			Selection: applied,
		}
		if applied.Page > 0 {
			f.Caption = fmt.Sprintf("%d/%d", applied.Page, StoryPages)
		}

		for _, feature := range applied.Features {
			if panel, ok := popularityPanel(rows, feature); ok {
				f.Panels = append(f.Panels, panel)
			}
		}
		if len(f.Panels) == 0 {
			f.Placeholder = "No songs for this selection."
		}
		return f, nil
	}

	if key, ok := popularityKey(sel, applied); ok {
		return d.cached(key, build)
	}
	return build()
}

func popularityPanel(rows []trends.YearMeans, feature songs.Feature) (Figure, bool) {
	var points []trends.YearMeans
	for _, r := range rows {
		_, okX := r.Means[feature]
		_, okY := r.Means[songs.Popularity]
		if okX && okY {
			points = append(points, r)
		}
	}
	if len(points) == 0 {
		return Figure{}, false
	}

	first, last := points[0].Year, points[len(points)-1].Year
	s := Series{Name: "Year", Color: Viridis(1)}
	for _, r := range points {
		s.X = append(s.X, r.Means[feature])
		s.Y = append(s.Y, r.Means[songs.Popularity])
		s.Counts = append(s.Counts, r.Count)
		t := 0.0
		if last > first {
			t = float64(r.Year-first) / float64(last-first)
		}
		s.Colors = append(s.Colors, Viridis(t))
	}

	return Figure{
		Name:      FeaturePopularity,
		Title:     Label(feature) + " vs popularity",
		Kind:      Scatter,
		XLabel:    Label(feature),
		YLabel:    "Mean popularity",
		XAxis:     Number,
		Series:    []Series{s},
		Selection: Selection{Feature: feature},
	}, true
}

func (d *Dashboard) longevity(sel Selection) (Figure, error) {
	feature := sel.Feature
	if feature == "" {
		feature = songs.Popularity
	}
	if !contains(trends.LongevityFeatures, feature) {
		return Figure{}, fmt.Errorf("%w: %q is not a longevity feature", ErrBadSelection, feature)
	}

	return d.cached(Longevity+"/"+string(feature), func() (Figure, error) {
		careers := trends.Longevity(d.data.Songs(), feature)
		return Figure{
			Name:   Longevity,
			Title:  fmt.Sprintf("Evolution of %s by artist longevity", Label(feature)),
			Kind:   Line,
			XLabel: "Year",
			YLabel: Label(feature),
			XAxis:  Year,
			Series: []Series{
				yearSeries("Artists active over 3+ decades", longCareerColor, careers.Long),
				yearSeries("Other artists", othersColor, careers.Others),
			},
			Selection: Selection{Feature: feature},
		}, nil
	})
}

func yearSeries(name, color string, values []trends.YearValue) Series {
	s := Series{Name: name, Color: color}
	for _, v := range values {
		if math.IsNaN(v.Mean) {
			continue
		}
		s.X = append(s.X, float64(v.Year))
		s.Y = append(s.Y, v.Mean)
		s.Counts = append(s.Counts, v.Count)
	}
	return s
}

func (d *Dashboard) durationPopularity(Selection) (Figure, error) {
	return d.cached(DurationPopularity, func() (Figure, error) {
		dp := trends.DurationPopularity(d.data.Songs())

		bins := Series{Name: "Songs", Color: durationColor}
		for _, b := range dp.Bins {
			bins.X = append(bins.X, b.Minutes)
			bins.Y = append(bins.Y, b.Popularity)
			bins.Counts = append(bins.Counts, b.Count)
			bins.Sizes = append(bins.Sizes, math.Sqrt(float64(b.Count))*10)
		}
		trend := Series{Name: "Trend", Color: trendColor, Dashed: true}
		for _, p := range dp.Trend {
			trend.X = append(trend.X, p.X)
			trend.Y = append(trend.Y, p.Y)
		}

		return Figure{
			Name:   DurationPopularity,
			Title:  "Influence of duration on popularity",
			Kind:   Scatter,
			XLabel: "Duration (min)",
			YLabel: "Mean popularity",
			XAxis:  Number,
			Series: []Series{bins, trend},
		}, nil
	})
}

func (d *Dashboard) discography(Selection) (Figure, error) {
	return d.cached(Discography, func() (Figure, error) {
		s := Series{Name: "Artists", Color: artistsColor}
		for _, g := range trends.Discography(d.data.Songs()) {
			s.X = append(s.X, float64(g.Subgenres))
			s.Y = append(s.Y, g.Popularity)
			s.Sizes = append(s.Sizes, float64(g.Artists))
			s.Counts = append(s.Counts, g.Artists)
		}

		return Figure{
			Name:   Discography,
			Title:  "Impact of a varied discography on popularity",
			Kind:   Scatter,
			XLabel: "Number of subgenres",
			YLabel: "Mean popularity",
			XAxis:  Number,
			Series: []Series{s},
		}, nil
	})
}
