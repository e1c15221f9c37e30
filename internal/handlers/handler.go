package handlers

import (
	"net/http"
	"time"

	"emolamp_server/internal/logger"
	"emolamp_server/internal/metrics"
	"emolamp_server/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options selects the route surfaces and the identity reported by /api/status.
type Options struct {
	PubSub    bool
	Stats     bool
	Name      string
	Version   string
	PublicDir string
	Metrics   *metrics.Metrics // nil disables /metrics
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
	started  time.Time
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	if opts.Name == "" {
		opts.Name = defaultServerName
	}
	if opts.Version == "" {
		opts.Version = defaultServerVersion
	}
	return &Handler{services: services, log: log, opts: opts, started: time.Now()}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(
		gin.CustomRecovery(h.recoverJSON),
		h.requestLogger, // ahead of CORS, which ends preflights itself
		corsMiddleware(),
		h.opts.Metrics.Middleware(),
	)
	router.NoRoute(h.notFound)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if h.opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.opts.Metrics.Handler()))
	}

	// Liveness probe and service info
	router.GET("/healthz", h.healthz)
	router.GET("/", h.root)

	api := router.Group("/api")
	api.GET("/status", h.status)
	if h.opts.PubSub {
		h.registerBrokerRoutes(api)
	}
	if h.opts.Stats {
		h.registerLogRoutes(api)
		h.registerStatsRoutes(api)
	}

	// Lamp state stream over WebSocket, same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerBrokerRoutes(api *gin.RouterGroup) {
	api.POST("/publish", h.publish)
	api.GET("/poll", h.poll)
	api.GET("/state", h.getState)
	// Body: any subset of LampState, e.g. {"mode":"MANUAL","manualColorHex":"#FF0000"}
	api.POST("/state", h.setState)
	api.POST("/led", h.setLED)
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/log")
	{
		logs.POST("/emotion", h.logEmotion)
		logs.POST("/weather", h.logWeather)
		logs.POST("/state", h.logState)
		logs.POST("/manualstate", h.logManualState)
	}
}

func (h *Handler) registerStatsRoutes(api *gin.RouterGroup) {
	stats := api.Group("/stats")
	{
		stats.GET("/today", h.statsToday)
		stats.GET("/emotions", h.statsEmotions)
		stats.GET("/timeline", h.statsTimeline)
		stats.GET("/summary", h.statsSummary)
		stats.GET("/recent", h.statsRecent)
		stats.GET("/current", h.statsCurrent)
		stats.GET("/advanced", h.statsAdvanced)
		stats.GET("/weather-correlation", h.statsWeatherCorrelation)
		stats.GET("/time-patterns", h.statsTimePatterns)
		stats.GET("/color-analysis", h.statsColorAnalysis)
		stats.GET("/weather", h.statsWeather)
	}
}

func (h *Handler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": errNotFound})
}
