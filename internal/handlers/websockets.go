package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"heater_notifier/internal/models"
	"heater_notifier/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Send timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	maxMsgSize       = 1 << 12 // 4 KB
	minInterval      = 100 * time.Millisecond
	maxInterval      = 10 * time.Second
	minIntervalMilli = 100
	maxIntervalMilli = 10_000 // 10s in ms
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

const (
	wsTypeDecision = "decision"
	wsTypeDegraded = "degraded"
)

// Upgrader for HTTP -> WebSocket. The page is served from the same origin.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsSink writes one stream to a WebSocket. Only the notifier goroutine writes.
type wsSink struct {
	conn *websocket.Conn
}

func (s *wsSink) Send(d models.HeaterDecision) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(wsEnvelope{Type: wsTypeDecision, Data: d})
}

func (s *wsSink) Ping() error {
	return s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (s *wsSink) Degraded(n models.DegradedNotice) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(wsEnvelope{Type: wsTypeDegraded, Data: n, Error: n.Error})
}

// @Summary      Heater decision stream over WebSocket
// @Tags         stream
// @Param        building     query  string  true   "Building"
// @Param        room         query  string  true   "Room"
// @Param        interval     query  string  false  "Tick override, e.g. 2s (100ms to 10s)"
// @Param        interval_ms  query  int     false  "Tick override in ms (100 to 10000)"
// @Success      101
// @Failure      400  {object}  map[string]string
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	loc := location(c)
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)

	// A hijacked connection does not cancel the request context, so the
	// reader cancels the stream when the peer goes away.
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	go h.startReader(conn, cancel)

	streamID := uuid.NewString()
	if h.log != nil {
		h.log.Infow("ws_stream_opened", "stream_id", streamID, "building", loc.Building, "room", loc.Room)
	}

	err = h.services.Stream(ctx, service.StreamRequest{
		Building: loc.Building,
		Room:     loc.Room,
		Interval: interval,
	}, &wsSink{conn: conn})

	if h.log != nil {
		h.log.Infow("ws_stream_closed", "stream_id", streamID, "err", err)
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000, bounded to
// [100ms, 10s]. Zero means the configured tick; out-of-range values fall
// back to it.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d >= minInterval && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v >= minIntervalMilli && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return 0
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}
