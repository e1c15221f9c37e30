package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Common error messages returned to clients.
const (
	errNotFound        = "Not Found"
	errInternal        = "Internal Server Error"
	errInvalidBodyPref = "invalid body: "
)

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 100 << 10

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// readJSON decodes the request body into dst. An empty body counts as {}.
func readJSON(c *gin.Context, dst interface{}) error {
	raw, err := readBody(c)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// readBody returns the raw body, substituting {} when it is blank. Bodies
// over maxBodyBytes fail with *http.MaxBytesError.
func readBody(c *gin.Context) (json.RawMessage, error) {
	if c.Request.Body != nil {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	}
	raw, err := c.GetRawData()
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return json.RawMessage("{}"), nil
	}
	return raw, nil
}

// bodyErrorStatus maps a readBody/readJSON failure to its HTTP status.
func bodyErrorStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}
