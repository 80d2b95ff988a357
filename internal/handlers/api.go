package handlers

import (
	"errors"
	"net/http"

	"heater_notifier/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errMissingLocation  = "query parameters 'room' and 'building' are required (max 64 characters)"
	errStoreUnavailable = "schedule store unavailable"
	errListSchedules    = "failed to load schedules"
	errEvaluate         = "failed to evaluate heater state"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondServiceError maps service sentinels onto HTTP codes.
func (h *Handler) respondServiceError(c *gin.Context, fallback, logKey string, err error, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrStoreUnavailable):
		h.logAndJSONError(c, http.StatusServiceUnavailable, errStoreUnavailable, logKey, err, kv...)
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, fallback, logKey, err, kv...)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      List class schedules
// @Tags         schedules
// @Produce      json
// @Param        building  query  string  false  "Building (exact match)"
// @Param        room      query  string  false  "Room (exact match)"
// @Param        day       query  string  false  "Day code (M,T,W,R,F,S) or weekday name"
// @Success      200  {object}  map[string]interface{}  "count, schedules"
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/schedules [get]
func (h *Handler) listSchedules(c *gin.Context) {
	f := service.ScheduleFilter{
		Building: c.Query("building"),
		Room:     c.Query("room"),
		Day:      c.Query("day"),
	}
	entries, err := h.services.ListSchedules(c.Request.Context(), f)
	if err != nil {
		h.respondServiceError(c, errListSchedules, "schedules_list_failed", err,
			"building", f.Building, "room", f.Room, "day", f.Day)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":     len(entries),
		"schedules": entries,
	})
}
