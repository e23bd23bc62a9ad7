package services

import (
	"log"
	"sync"
	"time"

	"pimon/internal/models"
)

// Sampler produces one Sample per tick and appends it to its History.
// It owns all write access to the buffer and the cumulative network
// counters needed for rate deltas. A failed metric read degrades the
// Sample (zero/nil field) but never skips the tick or stops the loop.
type Sampler struct {
	history      *History
	interval     time.Duration
	diskPath     string
	processLimit int

	// Swappable seams for tests (fake clocks, failing sensors)
	now          func() time.Time
	readNet      func() (sent, recv uint64, err error)
	readTemp     func() (float64, error)
	readThrottle func() (*models.ThrottleStatus, error)

	// vcgencmd missing on this host; skip sensors for the process lifetime
	sensorsAbsent bool

	lastNetSent uint64
	lastNetRecv uint64
	lastNetTime time.Time

	mu      sync.Mutex
	running bool
	stop    chan struct{}
}

// NewSampler creates a Sampler writing into history every interval.
func NewSampler(history *History, interval time.Duration, diskPath string, processLimit int) *Sampler {
	return &Sampler{
		history:       history,
		interval:      interval,
		diskPath:      diskPath,
		processLimit:  processLimit,
		now:           time.Now,
		readNet:       GetNetworkCounters,
		readTemp:      ReadCPUTemp,
		readThrottle:  ReadThrottleStatus,
		sensorsAbsent: !VcgencmdAvailable(),
		stop:          make(chan struct{}),
	}
}

// Start launches the background sampling loop. Calling Start on a
// running sampler is a no-op.
func (s *Sampler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		// First point immediately so the dashboard isn't empty on load
		s.Tick()

		for {
			select {
			case <-ticker.C:
				s.Tick()
			case <-s.stop:
				return
			}
		}
	}()

	log.Printf("Sampler started (interval: %v, history: %d samples)", s.interval, s.history.Capacity())
}

// Stop terminates the sampling loop.
func (s *Sampler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.stop)
	log.Println("Sampler stopped")
}

// Tick performs one sampling cycle: collect a Sample and append it.
func (s *Sampler) Tick() {
	s.history.Append(s.collectSample())
}

// collectSample reads every metric and assembles the Sample. All reads
// happen before the History lock is ever touched.
func (s *Sampler) collectSample() models.Sample {
	now := s.now()
	sample := models.Sample{Timestamp: now}

	if cpuStats, err := GetCPUStats(); err != nil {
		log.Printf("Warning: CPU read failed: %v", err)
	} else {
		sample.CPU = cpuStats
	}

	if memStats, err := GetMemoryStats(); err != nil {
		log.Printf("Warning: memory read failed: %v", err)
	} else {
		sample.Memory = memStats
	}

	if swapStats, err := GetSwapStats(); err != nil {
		log.Printf("Warning: swap read failed: %v", err)
	} else {
		sample.Swap = swapStats
	}

	if diskStats, err := GetDiskStats(s.diskPath); err != nil {
		log.Printf("Warning: disk read failed: %v", err)
	} else {
		sample.Disk = diskStats
	}

	if sent, recv, err := s.readNet(); err != nil {
		log.Printf("Warning: network read failed: %v", err)
	} else {
		tx, rx := s.networkRates(sent, recv, now)
		sample.Network = models.NetworkStats{
			BytesSent: sent,
			BytesRecv: recv,
			TxRate:    tx,
			RxRate:    rx,
		}
	}

	if addrs, err := GetInterfaceAddrs(); err == nil {
		sample.Network.InterfaceIP = addrs
	}

	if !s.sensorsAbsent {
		if temp, err := s.readTemp(); err != nil {
			log.Printf("Warning: temperature read failed: %v", err)
		} else {
			sample.Temperature = &temp
		}

		if throttle, err := s.readThrottle(); err == nil {
			sample.Throttle = throttle
		}
	}

	if loadAvg, err := GetLoadAvg(); err == nil {
		sample.LoadAvg = loadAvg
	}

	if uptime, err := GetUptime(); err == nil {
		sample.UptimeSeconds = uptime
	}

	if procs, err := GetTopProcesses(s.processLimit); err != nil {
		log.Printf("Warning: process scan failed: %v", err)
	} else {
		sample.Processes = procs
	}

	return sample
}

// networkRates converts cumulative byte counters into bytes/sec since
// the previous tick. The first call only primes the state and reports
// zero; a counter reset (e.g. interface bounce) clamps to zero rather
// than going negative.
func (s *Sampler) networkRates(sent, recv uint64, now time.Time) (tx, rx float64) {
	if s.lastNetTime.IsZero() {
		s.lastNetSent = sent
		s.lastNetRecv = recv
		s.lastNetTime = now
		return 0, 0
	}

	elapsed := now.Sub(s.lastNetTime).Seconds()
	if elapsed > 0 {
		if sent >= s.lastNetSent {
			tx = float64(sent-s.lastNetSent) / elapsed
		}
		if recv >= s.lastNetRecv {
			rx = float64(recv-s.lastNetRecv) / elapsed
		}
	}

	s.lastNetSent = sent
	s.lastNetRecv = recv
	s.lastNetTime = now
	return tx, rx
}
