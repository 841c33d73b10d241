package health

import (
	"net/http"

	"github.com/mager/songstory/charts"
	"github.com/mager/songstory/handler"
	"go.uber.org/zap"
)

// HealthHandler reports whether the server is up and the dataset loaded,
// along with the charts it can draw.
type HealthHandler struct {
	log       *zap.SugaredLogger
	dashboard *charts.Dashboard
}

func (*HealthHandler) Pattern() string {
	return "/health"
}

// NewHealthHandler builds a new HealthHandler.
func NewHealthHandler(log *zap.SugaredLogger, dashboard *charts.Dashboard) *HealthHandler {
	return &HealthHandler{
		log:       log,
		dashboard: dashboard,
	}
}

type Response struct {
	Status  string   `json:"status"`
	Server  bool     `json:"server"`
	Dataset bool     `json:"dataset"`
	Songs   int      `json:"songs"`
	Genres  []string `json:"genres"`
	Charts  []string `json:"charts"`
}

// Report server and dataset status
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := Response{Status: "OK", Server: true, Genres: []string{}, Charts: h.dashboard.Names()}

	h.log.Debug("health check")

	if data := h.dashboard.Data(); data != nil && data.Len() > 0 {
		resp.Dataset = true
		resp.Songs = data.Len()
		resp.Genres = data.Genres()
	} else {
		resp.Status = "DEGRADED"
	}

	handler.JSON(w, h.log, resp)
}
