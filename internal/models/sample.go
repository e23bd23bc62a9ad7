package models

import "time"

// CPUStats represents CPU usage at one point in time
type CPUStats struct {
	UsagePercent float64   `json:"usage_percent"`
	PerCore      []float64 `json:"per_core,omitempty"`
	CoreCount    int       `json:"core_count"`
	FrequencyMHz float64   `json:"frequency_mhz"`
}

// MemoryStats represents virtual memory usage
type MemoryStats struct {
	TotalBytes     uint64  `json:"total_bytes"`
	UsedBytes      uint64  `json:"used_bytes"`
	AvailableBytes uint64  `json:"available_bytes"`
	UsagePercent   float64 `json:"usage_percent"`
}

// SwapStats represents swap usage
type SwapStats struct {
	TotalBytes   uint64  `json:"total_bytes"`
	UsedBytes    uint64  `json:"used_bytes"`
	UsagePercent float64 `json:"usage_percent"`
}

// DiskStats represents disk usage for a single mount point
type DiskStats struct {
	Path         string  `json:"path"`
	TotalBytes   uint64  `json:"total_bytes"`
	UsedBytes    uint64  `json:"used_bytes"`
	FreeBytes    uint64  `json:"free_bytes"`
	UsagePercent float64 `json:"usage_percent"`
}

// NetworkStats combines cumulative counters with per-tick throughput.
// Rates are bytes/sec computed from the previous tick's counters.
type NetworkStats struct {
	BytesSent   uint64            `json:"bytes_sent"`
	BytesRecv   uint64            `json:"bytes_recv"`
	TxRate      float64           `json:"tx_rate"`
	RxRate      float64           `json:"rx_rate"`
	InterfaceIP map[string]string `json:"interfaces,omitempty"`
}

// Sample is one timestamped snapshot of system metrics. It is built in
// full by the sampler before anyone else can see it and never mutated
// afterwards. Temperature and Throttle are nil when the reading is
// unavailable (non-Pi hardware, transient sensor failure).
type Sample struct {
	Timestamp     time.Time       `json:"timestamp"`
	CPU           CPUStats        `json:"cpu"`
	Memory        MemoryStats     `json:"memory"`
	Swap          SwapStats       `json:"swap"`
	Disk          DiskStats       `json:"disk"`
	Network       NetworkStats    `json:"network"`
	Temperature   *float64        `json:"temperature"`
	Throttle      *ThrottleStatus `json:"throttle,omitempty"`
	LoadAvg       [3]float64      `json:"load_avg"`
	UptimeSeconds uint64          `json:"uptime_seconds"`
	Processes     []ProcessStatus `json:"processes,omitempty"`
}
