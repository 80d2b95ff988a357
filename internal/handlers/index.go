package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type indexPage struct {
	Building  string
	Room      string
	EventsURL string
}

// eventsURL builds the stream link with both parameters query-escaped.
func eventsURL(building, room string) string {
	q := url.Values{}
	q.Set("room", room)
	q.Set("building", building)
	return "/events?" + q.Encode()
}

// @Summary      Heater state page
// @Description  HTML page that subscribes to /events and shows ON/OFF for the room.
// @Tags         page
// @Produce      html
// @Param        building  query  string  true  "Building"
// @Param        room      query  string  true  "Room"
// @Success      200
// @Failure      400  {object}  map[string]string
// @Router       / [get]
func (h *Handler) index(c *gin.Context) {
	loc := location(c)
	c.HTML(http.StatusOK, "index.html", indexPage{
		Building:  loc.Building,
		Room:      loc.Room,
		EventsURL: eventsURL(loc.Building, loc.Room),
	})
}
