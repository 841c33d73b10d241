package chart

import (
	"bytes"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mager/songstory/charts"
	"github.com/mager/songstory/handler"
	"github.com/mager/songstory/render"
	"go.uber.org/zap"
)

// FigureHandler serves the figure of a chart as JSON.
type FigureHandler struct {
	log       *zap.SugaredLogger
	dashboard *charts.Dashboard
}

func (*FigureHandler) Pattern() string {
	return "/api/charts/{name}"
}

func NewFigureHandler(log *zap.SugaredLogger, dashboard *charts.Dashboard) *FigureHandler {
	return &FigureHandler{log: log, dashboard: dashboard}
}

// Build the figure of a chart for a selection
// @Summary Get a chart figure
// @Description Builds the named chart for the selection in the query string and returns its series, ticks and applied selection.
// @Tags Charts
// @Accept json
// @Produce json
// @Param name path string true "Chart name"
// @Param genre query string false "Genre, or all"
// @Param page query int false "Story page"
// @Success 200 {object} charts.Figure
// @Router /api/charts/{name} [get]
func (h *FigureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f, err := figure(h.dashboard, r)
	if err != nil {
		handler.Error(w, h.log, err)
		return
	}
	handler.JSON(w, h.log, f)
}

// SVGHandler serves a chart drawn as SVG.
type SVGHandler struct {
	log       *zap.SugaredLogger
	dashboard *charts.Dashboard
}

func (*SVGHandler) Pattern() string {
	return "/charts/{name:[a-z-]+}.svg"
}

func NewSVGHandler(log *zap.SugaredLogger, dashboard *charts.Dashboard) *SVGHandler {
	return &SVGHandler{log: log, dashboard: dashboard}
}

// Draw a chart for a selection
// @Summary Get a chart as SVG
// @Description Draws the named chart for the selection in the query string. Feature-popularity figures come out as one panel per feature.
// @Tags Charts
// @Produce image/svg+xml
// @Param name path string true "Chart name"
// @Success 200 {string} string "SVG document"
// @Router /charts/{name}.svg [get]
func (h *SVGHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f, err := figure(h.dashboard, r)
	if err != nil {
		handler.Error(w, h.log, err)
		return
	}

	var buf bytes.Buffer
	if err := render.SVG(&buf, f); err != nil {
		handler.Error(w, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}

func figure(d *charts.Dashboard, r *http.Request) (charts.Figure, error) {
	sel, err := charts.ParseSelection(r.URL.Query())
	if err != nil {
		return charts.Figure{}, err
	}
	return d.Dispatch(mux.Vars(r)["name"], sel)
}
