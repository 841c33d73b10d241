package live

import (
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/mager/songstory/charts"
	"github.com/mager/songstory/handler"
	"go.uber.org/zap"
)

// maxEvent caps the size of one message from the page. Events are a chart
// name and a selection, far below this.
const maxEvent = 64 << 10

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Event is a control change sent by the page.
type Event struct {
	Chart     string           `json:"chart"`
	Selection charts.Selection `json:"selection"`
}

// Update answers an Event with either the new figure or an error.
type Update struct {
	Chart  string         `json:"chart"`
	Figure *charts.Figure `json:"figure,omitempty"`
	Status int            `json:"status,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// LiveHandler pushes figures over a websocket as the controls change. The
// events of one connection are answered in order, one at a time.
type LiveHandler struct {
	log       *zap.SugaredLogger
	dashboard *charts.Dashboard
}

func (*LiveHandler) Pattern() string {
	return "/ws"
}

func NewLiveHandler(log *zap.SugaredLogger, dashboard *charts.Dashboard) *LiveHandler {
	return &LiveHandler{log: log, dashboard: dashboard}
}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorw("Error upgrading connection to WebSocket", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxEvent)

	h.log.Debugw("WebSocket client connected", "remote", r.RemoteAddr)

	for {
		var ev Event
		if err := conn.ReadJSON(&ev); err != nil {
			var closeErr *websocket.CloseError
			switch {
			case errors.Is(err, websocket.ErrReadLimit):
				h.log.Warnw("WebSocket message too large", "remote", r.RemoteAddr, "limit", maxEvent)
			case !errors.As(err, &closeErr):
				h.log.Errorw("Error reading WebSocket message", "error", err)
			}
			return
		}

		if err := conn.WriteJSON(h.update(ev)); err != nil {
			h.log.Errorw("Error sending WebSocket message", "error", err)
			return
		}
	}
}

func (h *LiveHandler) update(ev Event) Update {
	f, err := h.dashboard.Dispatch(ev.Chart, ev.Selection)
	if err != nil {
		status := handler.Status(err)
		if status == http.StatusInternalServerError {
			h.log.Errorw("Chart failed", "chart", ev.Chart, "error", err)
		}
		return Update{Chart: ev.Chart, Status: status, Error: err.Error()}
	}
	return Update{Chart: ev.Chart, Figure: &f}
}
