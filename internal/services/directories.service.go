package services

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"pimon/internal/models"
)

// DirectoryAnalyzer reports the largest immediate subdirectories of a
// path. Walking a whole subtree is slow on an SD card, so results are
// cached per path with a generous TTL.
type DirectoryAnalyzer struct {
	mu        sync.Mutex
	cachePath string
	cache     []models.DirectoryInfo
	cacheTime time.Time
	ttl       time.Duration
}

// NewDirectoryAnalyzer creates an analyzer with a 30 second cache.
func NewDirectoryAnalyzer() *DirectoryAnalyzer {
	return &DirectoryAnalyzer{ttl: 30 * time.Second}
}

// TopDirectories returns the limit largest subdirectories of path,
// largest first. Unreadable entries are skipped, not fatal.
func (da *DirectoryAnalyzer) TopDirectories(path string, limit int) ([]models.DirectoryInfo, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = home
	}

	da.mu.Lock()
	if da.cachePath == path && time.Since(da.cacheTime) < da.ttl {
		cached := da.cache
		da.mu.Unlock()
		return clampDirs(cached, limit), nil
	}
	da.mu.Unlock()

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	dirs := []models.DirectoryInfo{}
	for _, entry := range entries {
		if !entry.IsDir() || entry.Type()&os.ModeSymlink != 0 {
			continue
		}
		full := filepath.Join(path, entry.Name())
		dirs = append(dirs, models.DirectoryInfo{
			Path:      full,
			SizeBytes: dirSize(full),
		})
	}

	sort.Slice(dirs, func(i, j int) bool {
		return dirs[i].SizeBytes > dirs[j].SizeBytes
	})

	da.mu.Lock()
	da.cachePath = path
	da.cache = dirs
	da.cacheTime = time.Now()
	da.mu.Unlock()

	return clampDirs(dirs, limit), nil
}

func clampDirs(dirs []models.DirectoryInfo, limit int) []models.DirectoryInfo {
	if limit > 0 && len(dirs) > limit {
		return dirs[:limit]
	}
	return dirs
}

// dirSize totals the regular files under path. Permission errors and
// files vanishing mid-walk are ignored.
func dirSize(path string) int64 {
	var total int64
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0
	}

	for _, entry := range entries {
		if entry.Type()&os.ModeSymlink != 0 {
			continue
		}
		if entry.IsDir() {
			total += dirSize(filepath.Join(path, entry.Name()))
			continue
		}
		if info, err := entry.Info(); err == nil {
			total += info.Size()
		}
	}
	return total
}
