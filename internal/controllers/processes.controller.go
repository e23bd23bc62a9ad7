package controllers

import (
	"net/http"

	"pimon/internal/services"

	"github.com/gin-gonic/gin"
)

// ProcessController serves the process table from the latest Sample.
type ProcessController struct {
	history *services.History
}

// NewProcessController creates a controller reading from history.
func NewProcessController(history *services.History) *ProcessController {
	return &ProcessController{history: history}
}

// GetTopProcesses returns the heaviest processes seen on the last tick
func (pc *ProcessController) GetTopProcesses(c *gin.Context) {
	sample, _ := pc.history.Latest()
	c.JSON(http.StatusOK, gin.H{
		"processes":    sample.Processes,
		"last_updated": sample.Timestamp,
	})
}
