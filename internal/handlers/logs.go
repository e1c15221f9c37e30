package handlers

import (
	"net/http"

	"emolamp_server/internal/service"

	"github.com/gin-gonic/gin"
)

// Ingest never rejects missing fields; only undecodable bodies fail.

// @Summary      Log an emotion reading
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        body  body      service.EmotionParams  false  "Emotion fields; all optional"
// @Success      200   {object}  map[string]interface{}  "success, entry"
// @Failure      413   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/log/emotion [post]
func (h *Handler) logEmotion(c *gin.Context) {
	var p service.EmotionParams
	if err := readJSON(c, &p); err != nil {
		h.logAndJSONError(c, bodyErrorStatus(err), errInvalidBodyPref+err.Error(), "log_emotion_bad_body", err)
		return
	}
	entry := h.services.Telemetry.LogEmotion(p)
	c.JSON(http.StatusOK, gin.H{"success": true, "entry": entry})
}

// @Summary      Log a weather reading
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        body  body      service.WeatherParams  false  "Weather fields; all optional"
// @Success      200   {object}  map[string]interface{}  "success, entry"
// @Failure      413   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/log/weather [post]
func (h *Handler) logWeather(c *gin.Context) {
	var p service.WeatherParams
	if err := readJSON(c, &p); err != nil {
		h.logAndJSONError(c, bodyErrorStatus(err), errInvalidBodyPref+err.Error(), "log_weather_bad_body", err)
		return
	}
	entry := h.services.Telemetry.LogWeather(p)
	c.JSON(http.StatusOK, gin.H{"success": true, "entry": entry})
}

// @Summary      Log a state change
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        body  body      service.StateParams  false  "State fields; all optional"
// @Success      200   {object}  map[string]interface{}  "success, entry"
// @Failure      413   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/log/state [post]
func (h *Handler) logState(c *gin.Context) {
	var p service.StateParams
	if err := readJSON(c, &p); err != nil {
		h.logAndJSONError(c, bodyErrorStatus(err), errInvalidBodyPref+err.Error(), "log_state_bad_body", err)
		return
	}
	entry := h.services.Telemetry.LogState(p)
	c.JSON(http.StatusOK, gin.H{"success": true, "entry": entry})
}

// @Summary      Log a manual color
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        body  body      service.ManualStateParams  false  "Manual color fields; all optional"
// @Success      200   {object}  map[string]bool  "success"
// @Failure      413   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/log/manualstate [post]
func (h *Handler) logManualState(c *gin.Context) {
	var p service.ManualStateParams
	if err := readJSON(c, &p); err != nil {
		h.logAndJSONError(c, bodyErrorStatus(err), errInvalidBodyPref+err.Error(), "log_manual_bad_body", err)
		return
	}
	h.services.Telemetry.LogManualState(p)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
