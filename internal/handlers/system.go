package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultServerName    = "EmoLamp Server"
	defaultServerVersion = "1.0.0"
	serverDescription    = "MQTT-style IoT server for EmoLamp"

	statusOK  = "ok"
	indexFile = "index.html"
)

// @Summary      Liveness probe
// @Tags         system
// @Produce      plain
// @Success      200  {string}  string  "OK"
// @Router       /healthz [get]
func (h *Handler) healthz(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// @Summary      Server status
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, server, version, uptime, timestamp"
// @Router       /api/status [get]
func (h *Handler) status(c *gin.Context) {
	resp := gin.H{
		"status":    statusOK,
		"server":    h.opts.Name,
		"version":   h.opts.Version,
		"uptime":    time.Since(h.started).Seconds(),
		"timestamp": time.Now().UnixMilli(),
	}
	if h.opts.PubSub && h.services.Broker != nil {
		resp["broker"] = h.services.Broker.Status()
	}
	if h.opts.Stats && h.services.Telemetry != nil {
		resp["logs"] = h.services.Telemetry.Counts()
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Dashboard or endpoint directory
// @Description  Serves public/index.html when present, otherwise a JSON list of endpoints with the current lamp state.
// @Tags         system
// @Produce      json,html
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func (h *Handler) root(c *gin.Context) {
	if h.opts.Stats && h.opts.PublicDir != "" {
		index := filepath.Join(h.opts.PublicDir, indexFile)
		if fi, err := os.Stat(index); err == nil && !fi.IsDir() {
			c.File(index)
			return
		}
	}

	resp := gin.H{
		"name":        h.opts.Name,
		"description": serverDescription,
		"endpoints":   h.endpoints(),
	}
	if h.services.Monitoring != nil {
		resp["currentState"] = h.services.Monitoring.LampState()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) endpoints() gin.H {
	out := gin.H{
		"status":  "GET /api/status",
		"healthz": "GET /healthz",
	}
	if h.opts.PubSub {
		out["publish"] = "POST /api/publish"
		out["poll"] = "GET /api/poll?clientId=xxx&since=timestamp"
		out["state"] = "GET|POST /api/state"
		out["led"] = "POST /api/led"
	}
	if h.opts.Stats {
		out["log"] = "POST /api/log/{emotion,weather,state,manualstate}"
		out["stats"] = "GET /api/stats/{today,emotions,timeline,summary,recent,current,advanced,weather-correlation,time-patterns,color-analysis,weather}"
	}
	return out
}
