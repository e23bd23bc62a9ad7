package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pimon/internal/models"
	"pimon/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(history *services.History) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	sc := NewStatsController(history)
	pc := NewProcessController(history)
	r.GET("/api/stats", sc.GetStats)
	r.GET("/api/history", sc.GetHistory)
	r.GET("/api/processes", pc.GetTopProcesses)
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetStatsEmptyHistoryReturnsDefault(t *testing.T) {
	r := newTestRouter(services.NewHistory(3))

	w := doGet(t, r, "/api/stats")
	require.Equal(t, http.StatusOK, w.Code)

	var sample models.Sample
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sample))
	assert.True(t, sample.Timestamp.IsZero())
	assert.Nil(t, sample.Temperature)
}

func TestGetStatsReturnsLatestSample(t *testing.T) {
	history := services.NewHistory(3)
	temp := 48.2
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	history.Append(models.Sample{Timestamp: ts.Add(-time.Second)})
	history.Append(models.Sample{
		Timestamp:   ts,
		CPU:         models.CPUStats{UsagePercent: 42.5, CoreCount: 4},
		Temperature: &temp,
	})

	r := newTestRouter(history)
	w := doGet(t, r, "/api/stats")
	require.Equal(t, http.StatusOK, w.Code)

	var sample models.Sample
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sample))
	assert.True(t, sample.Timestamp.Equal(ts))
	assert.InDelta(t, 42.5, sample.CPU.UsagePercent, 0.001)
	require.NotNil(t, sample.Temperature)
	assert.InDelta(t, 48.2, *sample.Temperature, 0.001)
}

func TestGetHistoryEmptyReturnsArray(t *testing.T) {
	r := newTestRouter(services.NewHistory(3))

	w := doGet(t, r, "/api/history")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetHistoryOldestFirst(t *testing.T) {
	history := services.NewHistory(3)
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		history.Append(models.Sample{Timestamp: ts.Add(time.Duration(i) * time.Second)})
	}

	r := newTestRouter(history)
	w := doGet(t, r, "/api/history")
	require.Equal(t, http.StatusOK, w.Code)

	var samples []models.Sample
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &samples))
	require.Len(t, samples, 3)
	assert.True(t, samples[0].Timestamp.Equal(ts.Add(2*time.Second)))
	assert.True(t, samples[2].Timestamp.Equal(ts.Add(4*time.Second)))
}

func TestGetTopProcessesFromLatestSample(t *testing.T) {
	history := services.NewHistory(3)
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	history.Append(models.Sample{
		Timestamp: ts,
		Processes: []models.ProcessStatus{
			{PID: 1, Name: "systemd", CPUPercent: 0.1, MemPercent: 0.5},
			{PID: 1234, Name: "pimon", CPUPercent: 2.3, MemPercent: 1.1},
		},
	})

	r := newTestRouter(history)
	w := doGet(t, r, "/api/processes")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Processes   []models.ProcessStatus `json:"processes"`
		LastUpdated time.Time              `json:"last_updated"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Processes, 2)
	assert.Equal(t, "pimon", body.Processes[1].Name)
	assert.True(t, body.LastUpdated.Equal(ts))
}

func TestGetTopDirectoriesBadLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	dc := NewDiskController(services.NewDirectoryAnalyzer())
	r.GET("/api/disk/directories", dc.GetTopDirectories)

	w := doGet(t, r, "/api/disk/directories?limit=zero")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doGet(t, r, "/api/disk/directories?limit=-1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
