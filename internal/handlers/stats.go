package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary      Today's emotions
// @Tags         stats
// @Produce      json
// @Success      200  {object}  service.TodayStats
// @Router       /api/stats/today [get]
func (h *Handler) statsToday(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Stats.Today())
}

// @Summary      Emotion distribution
// @Tags         stats
// @Produce      json
// @Success      200  {object}  service.EmotionStats
// @Router       /api/stats/emotions [get]
func (h *Handler) statsEmotions(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Stats.Emotions())
}

// @Summary      Hourly timeline for today
// @Tags         stats
// @Produce      json
// @Success      200  {object}  service.TimelineStats
// @Router       /api/stats/timeline [get]
func (h *Handler) statsTimeline(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Stats.Timeline())
}

// @Summary      Totals and ratios
// @Tags         stats
// @Produce      json
// @Success      200  {object}  service.SummaryStats
// @Router       /api/stats/summary [get]
func (h *Handler) statsSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Stats.Summary())
}

// @Summary      Recent emotions, newest first
// @Tags         stats
// @Produce      json
// @Param        limit  query     int  false  "Max entries (1-100)"  default(10)
// @Success      200    {object}  service.RecentStats
// @Router       /api/stats/recent [get]
func (h *Handler) statsRecent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit")) // invalid means default
	c.JSON(http.StatusOK, h.services.Stats.Recent(limit))
}

// @Summary      Current lamp snapshot
// @Tags         stats
// @Produce      json
// @Success      200  {object}  models.CurrentState
// @Router       /api/stats/current [get]
func (h *Handler) statsCurrent(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Monitoring.Current())
}

// @Summary      Streaks, transitions and intervals
// @Tags         stats
// @Produce      json
// @Success      200  {object}  service.AdvancedStats
// @Router       /api/stats/advanced [get]
func (h *Handler) statsAdvanced(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Stats.Advanced())
}

// @Summary      Weather and emotion correlation
// @Tags         stats
// @Produce      json
// @Success      200  {object}  service.WeatherCorrelationStats
// @Router       /api/stats/weather-correlation [get]
func (h *Handler) statsWeatherCorrelation(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Stats.WeatherCorrelation())
}

// @Summary      Time-of-day and weekday patterns
// @Tags         stats
// @Produce      json
// @Success      200  {object}  service.TimePatternStats
// @Router       /api/stats/time-patterns [get]
func (h *Handler) statsTimePatterns(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Stats.TimePatterns())
}

// @Summary      Hue histogram and top colors
// @Tags         stats
// @Produce      json
// @Success      200  {object}  service.ColorAnalysisStats
// @Router       /api/stats/color-analysis [get]
func (h *Handler) statsColorAnalysis(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Stats.ColorAnalysis())
}

// @Summary      Weather overview
// @Tags         stats
// @Produce      json
// @Success      200  {object}  service.WeatherStats
// @Router       /api/stats/weather [get]
func (h *Handler) statsWeather(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Stats.Weather())
}
