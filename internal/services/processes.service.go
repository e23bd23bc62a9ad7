package services

import (
	"sort"

	"pimon/internal/models"

	"github.com/shirou/gopsutil/v3/process"
)

// GetTopProcesses returns the limit heaviest processes, ranked by
// combined CPU and memory usage. Per-process read errors are skipped;
// processes come and go while we iterate.
func GetTopProcesses(limit int) ([]models.ProcessStatus, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	statuses := make([]models.ProcessStatus, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}

		cpuPercent, err := p.CPUPercent()
		if err != nil {
			cpuPercent = 0
		}

		memPercent, err := p.MemoryPercent()
		if err != nil {
			memPercent = 0
		}

		statuses = append(statuses, models.ProcessStatus{
			PID:        p.Pid,
			Name:       name,
			CPUPercent: cpuPercent,
			MemPercent: memPercent,
		})
	}

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].CPUPercent+float64(statuses[i].MemPercent) >
			statuses[j].CPUPercent+float64(statuses[j].MemPercent)
	})

	if len(statuses) > limit {
		statuses = statuses[:limit]
	}
	return statuses, nil
}
