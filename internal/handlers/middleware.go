package handlers

import (
	"net/http"

	"heater_notifier/internal/service"

	"github.com/gin-gonic/gin"
)

const locationKey = "location"

// locationQuery is the building/room pair every stream is bound to.
type locationQuery struct {
	Room     string `form:"room" binding:"required,max=64"`
	Building string `form:"building" binding:"required,max=64"`
}

// locationMiddleware rejects requests without a usable room and building
// before any page is rendered or stream is opened.
func (h *Handler) locationMiddleware(c *gin.Context) {
	var q locationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": errMissingLocation,
		})
		return
	}
	if err := service.ValidateLocation(q.Building, q.Room); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.Set(locationKey, q)
	c.Next()
}

// location returns the pair stored by locationMiddleware.
func location(c *gin.Context) locationQuery {
	q, _ := c.Get(locationKey)
	loc, _ := q.(locationQuery)
	return loc
}
