package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"emolamp_server/internal/models"
	"emolamp_server/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO for publishing.
type publishRequest struct {
	Topic    string          `json:"topic"`
	Payload  json.RawMessage `json:"payload"`
	ClientID string          `json:"clientId"`
}

// PublishRequest is an exported model for Swagger docs of the publish payload.
type PublishRequest struct {
	// Topic to publish on, e.g. emolamp/state
	Topic string `json:"topic" example:"emolamp/state"`
	// Any JSON value
	Payload interface{} `json:"payload"`
	// Sender id; poll excludes a client's own messages
	ClientID string `json:"clientId" example:"unity-01"`
}

// LED channels arrive as loose JSON numbers.
type ledRequest struct {
	R *float64 `json:"r"`
	G *float64 `json:"g"`
	B *float64 `json:"b"`
}

// @Summary      Publish a message
// @Tags         pubsub
// @Accept       json
// @Produce      json
// @Param        body  body      PublishRequest  true  "Message"
// @Success      200   {object}  map[string]interface{}  "success, message"
// @Failure      400   {object}  map[string]string
// @Failure      413   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/publish [post]
func (h *Handler) publish(c *gin.Context) {
	var req publishRequest
	if err := readJSON(c, &req); err != nil {
		h.logAndJSONError(c, bodyErrorStatus(err), errInvalidBodyPref+err.Error(), "publish_bad_body", err)
		return
	}
	msg, err := h.services.Broker.Publish(req.Topic, req.Payload, req.ClientID)
	if err != nil {
		if errors.Is(err, service.ErrTopicRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, err.Error(), "publish_failed", err, "topic", req.Topic)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

// @Summary      Poll for the newest message
// @Description  Returns only the most recent message newer than since that the caller did not publish, or null. Intermediate messages are skipped.
// @Tags         pubsub
// @Produce      json
// @Param        clientId  query     string  false  "Caller id"  default(anonymous)
// @Param        since     query     int     false  "Unix ms cursor"  default(0)
// @Success      200       {object}  models.Message
// @Router       /api/poll [get]
func (h *Handler) poll(c *gin.Context) {
	msg := h.services.Broker.Poll(parseSince(c.Query("since")), c.Query("clientId"))
	if msg == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// @Summary      Get lamp state
// @Tags         pubsub
// @Produce      json
// @Success      200  {object}  models.LampState
// @Router       /api/state [get]
func (h *Handler) getState(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Monitoring.LampState())
}

// @Summary      Merge lamp state
// @Description  Fields present in the body overwrite the stored state; the result is republished on emolamp/state.
// @Tags         pubsub
// @Accept       json
// @Produce      json
// @Param        body  body      models.LampState  true  "Partial lamp state"
// @Success      200   {object}  map[string]interface{}  "success, state"
// @Failure      413   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/state [post]
func (h *Handler) setState(c *gin.Context) {
	raw, err := readBody(c)
	if err != nil {
		h.logAndJSONError(c, bodyErrorStatus(err), err.Error(), "state_bad_body", err)
		return
	}
	lamp, err := h.services.Monitoring.MergeLampState(raw)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, err.Error(), "state_merge_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "state": lamp})
}

// @Summary      Set LED color
// @Tags         pubsub
// @Accept       json
// @Produce      json
// @Param        body  body      models.LED  true  "RGB"
// @Success      200   {object}  map[string]interface{}  "success, led"
// @Failure      413   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/led [post]
func (h *Handler) setLED(c *gin.Context) {
	var req ledRequest
	if err := readJSON(c, &req); err != nil {
		h.logAndJSONError(c, bodyErrorStatus(err), errInvalidBodyPref+err.Error(), "led_bad_body", err)
		return
	}
	led := models.LED{R: channel(req.R), G: channel(req.G), B: channel(req.B)}
	h.services.Broker.SetLED(led)
	c.JSON(http.StatusOK, gin.H{"success": true, "led": led})
}

// parseSince reads the leading integer of s, so "1700.5" and "17abc" yield
// 1700 and 17. Anything else is 0.
func parseSince(s string) int64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func channel(v *float64) int {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return int(math.Round(*v))
}
