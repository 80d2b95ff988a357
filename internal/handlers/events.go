package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"heater_notifier/internal/models"
	"heater_notifier/internal/service"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sseEventDecision = "message" // the default EventSource.onmessage type
	sseEventDegraded = "degraded"
)

// sseSink writes one stream as server-sent events.
type sseSink struct {
	w   gin.ResponseWriter
	seq int
}

func (s *sseSink) Send(d models.HeaterDecision) error {
	s.seq++
	return s.write(sse.Event{Id: strconv.Itoa(s.seq), Event: sseEventDecision, Data: d})
}

// Ping writes a comment line, which EventSource ignores.
func (s *sseSink) Ping() error {
	if _, err := fmt.Fprintf(s.w, ": ping - %s\n\n", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	s.w.Flush()
	return nil
}

func (s *sseSink) Degraded(n models.DegradedNotice) error {
	return s.write(sse.Event{Event: sseEventDegraded, Data: n})
}

func (s *sseSink) write(ev sse.Event) error {
	if err := sse.Encode(s.w, ev); err != nil {
		return err
	}
	s.w.Flush()
	return nil
}

// @Summary      Heater decision stream
// @Description  Server-sent events; each data payload is {"building","room","target_state"}.
// @Tags         stream
// @Produce      text/event-stream
// @Param        building     query  string  true   "Building"
// @Param        room         query  string  true   "Room"
// @Param        interval     query  string  false  "Tick override, e.g. 2s (100ms to 10s)"
// @Param        interval_ms  query  int     false  "Tick override in ms (100 to 10000)"
// @Success      200
// @Failure      400  {object}  map[string]string
// @Router       /events [get]
func (h *Handler) events(c *gin.Context) {
	loc := location(c)
	streamID := uuid.NewString()

	c.Header("Content-Type", sse.ContentType)
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	if h.log != nil {
		h.log.Infow("sse_stream_opened", "stream_id", streamID, "building", loc.Building, "room", loc.Room)
	}

	// The request context is cancelled when the client goes away.
	err := h.services.Stream(c.Request.Context(), service.StreamRequest{
		Building: loc.Building,
		Room:     loc.Room,
		Interval: h.parseInterval(c),
	}, &sseSink{w: c.Writer})

	if h.log != nil {
		h.log.Infow("sse_stream_closed", "stream_id", streamID, "err", err)
	}
}
