package services

import (
	"log"
	stdnet "net"
	"strings"

	"pimon/internal/models"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
)

// GetCPUStats returns current CPU usage
func GetCPUStats() (models.CPUStats, error) {
	percentage, err := cpu.Percent(0, false)
	if err != nil {
		return models.CPUStats{}, err
	}

	perCore, err := cpu.Percent(0, true)
	if err != nil {
		log.Printf("Warning: Could not get per-core CPU usage: %v", err)
		perCore = nil
	}

	coreCount, err := cpu.Counts(true)
	if err != nil {
		log.Printf("Warning: Could not get CPU core count: %v", err)
		coreCount = 0
	}

	var freqMHz float64
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		freqMHz = infos[0].Mhz
	}

	stats := models.CPUStats{
		PerCore:      perCore,
		CoreCount:    coreCount,
		FrequencyMHz: freqMHz,
	}
	if len(percentage) > 0 {
		stats.UsagePercent = percentage[0]
	}
	return stats, nil
}

// GetMemoryStats returns virtual memory usage
func GetMemoryStats() (models.MemoryStats, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return models.MemoryStats{}, err
	}

	return models.MemoryStats{
		TotalBytes:     vm.Total,
		UsedBytes:      vm.Used,
		AvailableBytes: vm.Available,
		UsagePercent:   vm.UsedPercent,
	}, nil
}

// GetSwapStats returns swap usage
func GetSwapStats() (models.SwapStats, error) {
	swap, err := mem.SwapMemory()
	if err != nil {
		return models.SwapStats{}, err
	}

	return models.SwapStats{
		TotalBytes:   swap.Total,
		UsedBytes:    swap.Used,
		UsagePercent: swap.UsedPercent,
	}, nil
}

// GetDiskStats returns disk usage for a specific path
func GetDiskStats(path string) (models.DiskStats, error) {
	if path == "" {
		path = "/"
	}

	usage, err := disk.Usage(path)
	if err != nil {
		return models.DiskStats{}, err
	}

	return models.DiskStats{
		Path:         path,
		TotalBytes:   usage.Total,
		UsedBytes:    usage.Used,
		FreeBytes:    usage.Free,
		UsagePercent: usage.UsedPercent,
	}, nil
}

// GetNetworkCounters returns cumulative bytes sent/received summed
// across all interfaces since boot.
func GetNetworkCounters() (sent, recv uint64, err error) {
	counters, err := net.IOCounters(false)
	if err != nil {
		return 0, 0, err
	}

	for _, counter := range counters {
		sent += counter.BytesSent
		recv += counter.BytesRecv
	}
	return sent, recv, nil
}

// GetInterfaceAddrs returns interface name -> first IPv4 address
func GetInterfaceAddrs() (map[string]string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	addrs := make(map[string]string)
	for _, iface := range ifaces {
		for _, addr := range iface.Addrs {
			// gopsutil reports CIDR notation; keep the bare IPv4 only
			ip, _, _ := strings.Cut(addr.Addr, "/")
			if parsed := stdnet.ParseIP(ip); parsed != nil && parsed.To4() != nil {
				addrs[iface.Name] = ip
				break
			}
		}
	}
	return addrs, nil
}

// GetLoadAvg returns the 1/5/15 minute load averages
func GetLoadAvg() ([3]float64, error) {
	avg, err := load.Avg()
	if err != nil {
		return [3]float64{}, err
	}
	return [3]float64{avg.Load1, avg.Load5, avg.Load15}, nil
}

// GetUptime returns seconds since boot
func GetUptime() (uint64, error) {
	return host.Uptime()
}
