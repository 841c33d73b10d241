package page

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mager/songstory/charts"
	"github.com/mager/songstory/logger"
	"github.com/mager/songstory/songs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandler() *PageHandler {
	log, _ := logger.NewTestLogger()
	data := songs.NewDataset([]songs.Song{
		{Artist: "X", Name: "a", Genre: "rock", Subgenre: "hard rock"},
		{Artist: "Z", Name: "b", Genre: "r&b", Subgenre: "neo soul"},
	})
	return NewPageHandler(log, charts.New(data, log, 10))
}

func TestPageHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	newHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

	body := rr.Body.String()
	assert.Contains(t, body, `<option value="rock">rock</option>`)
	assert.Contains(t, body, `<option value="r&amp;b">r&amp;b</option>`)
	assert.Contains(t, body, `<option value="danceability">Danceability</option>`)
	assert.Contains(t, body, `data-chart="correlation-matrix"`)
	assert.Regexp(t, `const storyPages = \s*7\s*;`, body)
}

func TestPageHandlerNotFound(t *testing.T) {
	rr := httptest.NewRecorder()
	newHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
