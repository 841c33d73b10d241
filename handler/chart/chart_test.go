package chart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/mager/songstory/charts"
	"github.com/mager/songstory/logger"
	"github.com/mager/songstory/songs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type route interface {
	http.Handler
	Pattern() string
}

func newRouter(t *testing.T, build func(*charts.Dashboard) route) *mux.Router {
	t.Helper()
	log, _ := logger.NewTestLogger()

	mk := func(artist, name, genre, subgenre string, year int) songs.Song {
		return songs.Song{
			Artist: artist, Name: name, Genre: genre, Subgenre: subgenre,
			Released: time.Date(year, 3, 1, 0, 0, 0, 0, time.UTC), Popularity: 60, DurationMs: 200000,
		}
	}
	data := songs.NewDataset([]songs.Song{
		mk("X", "a", "rock", "hard rock", 1998),
		mk("X", "b", "rock", "classic rock", 1998),
		mk("Z", "c", "pop", "dance pop", 2001),
	})

	h := build(charts.New(data, log, 10))
	r := mux.NewRouter()
	r.Handle(h.Pattern(), h)
	return r
}

func figureRouter(t *testing.T) *mux.Router {
	log, _ := logger.NewTestLogger()
	return newRouter(t, func(d *charts.Dashboard) route { return NewFigureHandler(log, d) })
}

func svgRouter(t *testing.T) *mux.Router {
	log, _ := logger.NewTestLogger()
	return newRouter(t, func(d *charts.Dashboard) route { return NewSVGHandler(log, d) })
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestFigureHandler(t *testing.T) {
	rr := get(figureRouter(t), "/api/charts/subgenre-shares?genre=rock")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var f charts.Figure
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &f))
	assert.Equal(t, charts.SubgenreShares, f.Name)
	assert.Equal(t, charts.Area, f.Kind)
	assert.Len(t, f.Series, 2)
	assert.Equal(t, "rock", f.Selection.Genre)
}

func TestFigureHandlerErrors(t *testing.T) {
	r := figureRouter(t)

	assert.Equal(t, http.StatusNotFound, get(r, "/api/charts/nope").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/charts/subgenre-shares?genre=jazz").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/charts/feature-evolution?feature=color").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/charts/genre-shares?page=x").Code)
}

func TestSVGHandler(t *testing.T) {
	rr := get(svgRouter(t), "/charts/genre-shares.svg")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "image/svg+xml", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "<svg")
}

func TestSVGHandlerPlaceholder(t *testing.T) {
	rr := get(svgRouter(t), "/charts/subgenre-shares.svg")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), charts.SelectGenre)
}

func TestSVGHandlerChoices(t *testing.T) {
	rr := get(svgRouter(t), "/charts/artist-options.svg?genre=rock")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
