package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	errAtInvalid = "invalid 'at' time; use RFC3339 or YYYY-MM-DD HH:MM:SS"

	layoutDateTime = "2006-01-02 15:04:05"
)

// @Summary      Evaluate heater state once
// @Description  Decision for a building/room now, or at 'at' for what-if checks.
// @Tags         decision
// @Produce      json
// @Param        building  query  string  true   "Building"
// @Param        room      query  string  true   "Room"
// @Param        at        query  string  false  "Evaluation time (RFC3339 or 'YYYY-MM-DD HH:MM:SS', local)"  example(2024-01-03T08:51:00Z)
// @Success      200  {object}  models.HeaterDecision
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/decision [get]
func (h *Handler) getDecision(c *gin.Context) {
	loc := location(c)

	now := time.Now()
	if qs := c.Query("at"); qs != "" {
		t, err := parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errAtInvalid})
			return
		}
		now = t
	}

	d, err := h.services.Evaluate(c.Request.Context(), loc.Building, loc.Room, now)
	if err != nil {
		h.respondServiceError(c, errEvaluate, "decision_failed", err,
			"building", loc.Building, "room", loc.Room)
		return
	}
	c.JSON(http.StatusOK, d)
}

// parseQueryTime accepts RFC3339 or a zone-less date-time read as local time.
func parseQueryTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutDateTime, s, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2024-01-03T08:51:00Z), "+
			"'YYYY-MM-DD HH:MM:SS'",
		s,
	)
}
