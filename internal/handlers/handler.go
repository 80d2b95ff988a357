package handlers

import (
	"html/template"

	"heater_notifier/internal/logger"
	"heater_notifier/internal/service"

	"github.com/gin-gonic/gin"

	_ "heater_notifier/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services  *service.Service
	log       *logger.Logger
	staticDir string
	page      *template.Template
}

type Option func(*Handler)

// WithStaticDir serves dir under /static.
func WithStaticDir(dir string) Option {
	return func(h *Handler) { h.staticDir = dir }
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log, page: indexTemplate}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetHTMLTemplate(h.page)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	if h.staticDir != "" {
		router.Static("/static", h.staticDir)
	}

	// Page and streams for one building/room
	h.registerStreamRoutes(router)

	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerStreamRoutes(r *gin.Engine) {
	loc := r.Group("/", h.locationMiddleware)
	{
		loc.GET("/", h.index)
		loc.GET("/events", h.events)
		// Same stream over a WebSocket (HTTP upgrade) on the same port
		loc.GET("/ws", h.wsConnect)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/decision", h.locationMiddleware, h.getDecision)
		api.GET("/schedules", h.listSchedules)
	}
}
