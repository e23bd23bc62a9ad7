package services

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"pimon/internal/models"
)

const vcgencmdTimeout = 2 * time.Second

// ReadCPUTemp reads the SoC temperature via `vcgencmd measure_temp`.
func ReadCPUTemp() (float64, error) {
	out, err := runVcgencmd("measure_temp")
	if err != nil {
		return 0, err
	}
	return parseTemp(out)
}

// parseTemp decodes output like temp=54.9'C.
func parseTemp(out string) (float64, error) {
	_, value, found := strings.Cut(out, "=")
	if !found {
		return 0, fmt.Errorf("unexpected vcgencmd output: %q", out)
	}
	value, _, _ = strings.Cut(value, "'")

	temp, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing temperature %q: %w", value, err)
	}
	return temp, nil
}

// ReadThrottleStatus reads and decodes `vcgencmd get_throttled`.
func ReadThrottleStatus() (*models.ThrottleStatus, error) {
	out, err := runVcgencmd("get_throttled")
	if err != nil {
		return nil, err
	}
	return parseThrottle(out)
}

// parseThrottle decodes output like throttled=0x50000.
func parseThrottle(out string) (*models.ThrottleStatus, error) {
	_, value, found := strings.Cut(out, "=")
	if !found {
		return nil, fmt.Errorf("unexpected vcgencmd output: %q", out)
	}

	val, err := strconv.ParseUint(strings.TrimPrefix(value, "0x"), 16, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing throttle flags %q: %w", value, err)
	}

	return &models.ThrottleStatus{
		UnderVoltage:          val&0x1 != 0,
		ARMFreqCapped:         val&0x2 != 0,
		CurrentlyThrottled:    val&0x4 != 0,
		SoftTempLimit:         val&0x8 != 0,
		UnderVoltageOccurred:  val&0x10000 != 0,
		ARMFreqCappedOccurred: val&0x20000 != 0,
		ThrottledOccurred:     val&0x40000 != 0,
		SoftTempLimitOccurred: val&0x80000 != 0,
	}, nil
}

// VcgencmdAvailable reports whether the Pi firmware tool exists on this
// host. When it doesn't, the sampler skips sensor reads for the process
// lifetime rather than spawning a failing subprocess every tick.
func VcgencmdAvailable() bool {
	_, err := exec.LookPath("vcgencmd")
	return err == nil
}

func runVcgencmd(arg string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), vcgencmdTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "vcgencmd", arg).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
