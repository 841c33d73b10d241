package correlations

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/mager/songstory/charts"
	"github.com/mager/songstory/config"
	"github.com/mager/songstory/correlation"
	"github.com/mager/songstory/handler"
	"github.com/mager/songstory/songs"
	"go.uber.org/zap"
)

// ComputedHandler serves the feature correlations computed from the loaded
// dataset next to the curated ones.
type ComputedHandler struct {
	log  *zap.SugaredLogger
	data *songs.Dataset
	top  int

	once     sync.Once
	computed map[string][]correlation.Pair
}

func (*ComputedHandler) Pattern() string {
	return "/api/correlations/computed"
}

func NewComputedHandler(log *zap.SugaredLogger, data *songs.Dataset, cfg config.Config) *ComputedHandler {
	return &ComputedHandler{log: log, data: data, top: cfg.CorrelationTop}
}

type Response struct {
	Top      int                           `json:"top"`
	Computed map[string][]correlation.Pair `json:"computed"`
	Curated  map[string][]correlation.Pair `json:"curated"`
}

// Compute the strongest feature correlations of each genre
// @Summary Get computed correlations
// @Description Returns the top Pearson correlations per genre next to the curated pairs.
// @Tags Correlations
// @Accept json
// @Produce json
// @Param top query int false "Pairs per genre"
// @Success 200 {object} Response
// @Router /api/correlations/computed [get]
func (h *ComputedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	top := h.top
	if v := r.URL.Query().Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2 {
			handler.Error(w, h.log, fmt.Errorf("%w: top=%q must be a number of at least 2", charts.ErrBadSelection, v))
			return
		}
		top = n
	}

	handler.JSON(w, h.log, Response{
		Top:      top,
		Computed: h.compute(top),
		Curated:  correlation.Curated,
	})
}

// compute keeps the result for the configured top, the one the page asks for.
func (h *ComputedHandler) compute(top int) map[string][]correlation.Pair {
	if top != h.top {
		return correlation.Compute(h.data.Songs(), top)
	}
	h.once.Do(func() {
		h.log.Infow("Computing correlations", "top", top)
		h.computed = correlation.Compute(h.data.Songs(), top)
	})
	return h.computed
}
