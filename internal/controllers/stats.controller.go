package controllers

import (
	"net/http"

	"pimon/internal/services"

	"github.com/gin-gonic/gin"
)

// StatsController serves the latest Sample and the retained history.
// It only ever reads; the sampler is the sole writer.
type StatsController struct {
	history *services.History
}

// NewStatsController creates a controller reading from history.
func NewStatsController(history *services.History) *StatsController {
	return &StatsController{history: history}
}

// GetStats returns the most recent Sample. Before the first tick has
// landed this is the zero-valued Sample, not an error.
func (sc *StatsController) GetStats(c *gin.Context) {
	sample, _ := sc.history.Latest()
	c.JSON(http.StatusOK, sample)
}

// GetHistory returns all retained Samples, oldest first.
func (sc *StatsController) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, sc.history.Snapshot())
}
