package page

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/mager/songstory/charts"
	"github.com/mager/songstory/correlation"
	"github.com/mager/songstory/songs"
	"github.com/mager/songstory/trends"
	"go.uber.org/zap"
)

//go:embed templates/index.html
var templates embed.FS

var index = template.Must(template.ParseFS(templates, "templates/index.html"))

// PageHandler serves the dashboard page.
type PageHandler struct {
	log       *zap.SugaredLogger
	dashboard *charts.Dashboard
}

func (*PageHandler) Pattern() string {
	return "/"
}

func NewPageHandler(log *zap.SugaredLogger, dashboard *charts.Dashboard) *PageHandler {
	return &PageHandler{log: log, dashboard: dashboard}
}

type option struct {
	Label string
	Value string
}

type data struct {
	Genres     []string
	Features   []option
	Evolution  []option
	Longevity  []option
	Matrix     []option
	StoryPages int
	MaxBins    int
}

func features(list []songs.Feature) []option {
	out := make([]option, len(list))
	for i, f := range list {
		out[i] = option{Label: charts.Label(f), Value: string(f)}
	}
	return out
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	var buf bytes.Buffer
	err := index.Execute(&buf, data{
		Genres:     h.dashboard.Data().Genres(),
		Features:   features(charts.StoryFeatures),
		Evolution:  features(trends.EvolutionFeatures),
		Longevity:  features(trends.LongevityFeatures),
		Matrix:     features(correlation.Features),
		StoryPages: charts.StoryPages,
		MaxBins:    charts.MaxBins,
	})
	if err != nil {
		h.log.Errorw("Error rendering page", "error", err)
		http.Error(w, "could not render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
