// Package charts turns the dataset and the state of the dashboard controls
// into render-ready figures.
package charts

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mager/songstory/config"
	"github.com/mager/songstory/songs"
	"github.com/mager/songstory/trends"
	"go.uber.org/zap"
)

var ErrUnknownChart = errors.New("unknown chart")

// MaxBins bounds the bin count a selection may ask for.
const MaxBins = 100

// Chart names.
const (
	GenreShares        = "genre-shares"
	SubgenreShares     = "subgenre-shares"
	ArtistSubgenres    = "artist-subgenres"
	ArtistOptions      = "artist-options"
	FeatureEvolution   = "feature-evolution"
	FeaturePopularity  = "feature-popularity"
	Longevity          = "longevity"
	DurationPopularity = "duration-popularity"
	Discography        = "discography"
	CorrelationMatrix  = "correlation-matrix"
)

// Placeholders of the charts waiting for a selection.
const (
	SelectGenre  = "Select a genre to see the data."
	SelectArtist = "Select an artist to see the data."
)

// ChartFunc builds one chart for a selection.
type ChartFunc func(d *Dashboard, sel Selection) (Figure, error)

var registry = map[string]ChartFunc{
	GenreShares:        (*Dashboard).genreShares,
	SubgenreShares:     (*Dashboard).subgenreShares,
	ArtistSubgenres:    (*Dashboard).artistSubgenres,
	ArtistOptions:      (*Dashboard).artistOptions,
	FeatureEvolution:   (*Dashboard).featureEvolution,
	FeaturePopularity:  (*Dashboard).featurePopularity,
	Longevity:          (*Dashboard).longevity,
	DurationPopularity: (*Dashboard).durationPopularity,
	Discography:        (*Dashboard).discography,
	CorrelationMatrix:  (*Dashboard).correlationMatrix,
}

// Dashboard builds the figures of every chart over one dataset.
type Dashboard struct {
	data   *songs.Dataset
	log    *zap.SugaredLogger
	bins   int
	cache  *Cache
	charts map[string]ChartFunc

	subgenreColors map[string]string

	yearlyOnce    sync.Once
	yearly        []trends.YearMeans
	yearlyByGenre []trends.YearMeans

	evolutionOnce sync.Once
	evolution     []trends.GroupMeans
}

func New(data *songs.Dataset, log *zap.SugaredLogger, bins int) *Dashboard {
	if bins < 1 {
		bins = 10
	}
	return &Dashboard{
		data:           data,
		log:            log,
		bins:           bins,
		cache:          NewCache(),
		charts:         registry,
		subgenreColors: SubgenreColors(data.Genres(), data.Subgenres),
	}
}

// ProvideDashboard provides the dashboard over the loaded dataset.
func ProvideDashboard(data *songs.Dataset, cfg config.Config, log *zap.SugaredLogger) *Dashboard {
	return New(data, log, cfg.Bins)
}

var Options = ProvideDashboard

func (d *Dashboard) Data() *songs.Dataset {
	return d.data
}

// Names lists the chart names, sorted.
func (d *Dashboard) Names() []string {
	names := make([]string, 0, len(d.charts))
	for name := range d.charts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch builds the chart called name for sel.
func (d *Dashboard) Dispatch(name string, sel Selection) (Figure, error) {
	chart, ok := d.charts[name]
	if !ok {
		return Figure{}, fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}

	sel, err := sel.Normalize()
	if err != nil {
		return Figure{}, err
	}

	f, err := chart(d, sel)
	if err != nil {
		return Figure{}, fmt.Errorf("%s: %w", name, err)
	}
	f.Name = name
	return f, nil
}

// CacheLen is the number of figures built and kept so far.
func (d *Dashboard) CacheLen() int {
	return d.cache.Len()
}

func (d *Dashboard) cached(key string, build func() (Figure, error)) (Figure, error) {
	return d.cache.Get(key, func() (Figure, error) {
		d.log.Debugw("Building chart", "key", key)
		return build()
	})
}

func (d *Dashboard) checkGenre(genre string) error {
	if genre == "" {
		return nil
	}
	for _, g := range d.data.Genres() {
		if g == genre {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown genre %q", ErrBadSelection, genre)
}

func (d *Dashboard) yearlyMeans() ([]trends.YearMeans, []trends.YearMeans) {
	d.yearlyOnce.Do(func() {
		d.yearly = trends.YearlyMeans(d.data.Songs(), StoryFeatures)
		d.yearlyByGenre = trends.YearlyMeansByGenre(d.data.Songs(), StoryFeatures)
	})
	return d.yearly, d.yearlyByGenre
}

func (d *Dashboard) evolutionGroups() []trends.GroupMeans {
	d.evolutionOnce.Do(func() {
		d.evolution = trends.EvolutionGroups(d.data.Songs())
	})
	return d.evolution
}

// Label is the display name of a feature.
func Label(f songs.Feature) string {
	switch f {
	case songs.Popularity:
		return "Popularity"
	case songs.DurationMs:
		return "Duration"
	case "":
		return ""
	}
	s := string(f)
	return strings.ToUpper(s[:1]) + s[1:]
}

func contains(list []songs.Feature, f songs.Feature) bool {
	for _, x := range list {
		if x == f {
			return true
		}
	}
	return false
}
