package controllers

import (
	"net/http"
	"strconv"

	"pimon/internal/services"

	"github.com/gin-gonic/gin"
)

// DiskController serves the largest-directories breakdown.
type DiskController struct {
	analyzer *services.DirectoryAnalyzer
}

// NewDiskController creates a controller backed by analyzer.
func NewDiskController(analyzer *services.DirectoryAnalyzer) *DiskController {
	return &DiskController{analyzer: analyzer}
}

// GetTopDirectories returns the largest subdirectories of a path
// Query params: path (default: home directory), limit (default: 5)
func (dc *DiskController) GetTopDirectories(c *gin.Context) {
	path := c.Query("path")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}

	dirs, err := dc.analyzer.TopDirectories(path, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"path":        path,
		"directories": dirs,
	})
}
