package artists

import (
	"net/http"

	"github.com/mager/songstory/charts"
	"github.com/mager/songstory/handler"
	"go.uber.org/zap"
)

// ArtistsHandler lists the artist dropdown options of a genre.
type ArtistsHandler struct {
	log       *zap.SugaredLogger
	dashboard *charts.Dashboard
}

func (*ArtistsHandler) Pattern() string {
	return "/api/artists"
}

func NewArtistsHandler(log *zap.SugaredLogger, dashboard *charts.Dashboard) *ArtistsHandler {
	return &ArtistsHandler{log: log, dashboard: dashboard}
}

type Response struct {
	Genre   string          `json:"genre"`
	Options []charts.Option `json:"options"`
}

// List the artists of a genre for the artist dropdown
// @Summary List artists of a genre
// @Description Returns the artists of a genre, the ones with the most tracks first.
// @Tags Artists
// @Accept json
// @Produce json
// @Param genre query string false "Genre"
// @Success 200 {object} Response
// @Router /api/artists [get]
func (h *ArtistsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	genre := r.URL.Query().Get("genre")

	f, err := h.dashboard.Dispatch(charts.ArtistOptions, charts.Selection{Genre: genre})
	if err != nil {
		handler.Error(w, h.log, err)
		return
	}

	h.log.Debugw("artist options", "genre", genre, "count", len(f.Options))
	handler.JSON(w, h.log, Response{Genre: f.Selection.Genre, Options: f.Options})
}
