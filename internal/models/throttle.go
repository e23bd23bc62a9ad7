package models

// ThrottleStatus decodes the Raspberry Pi firmware throttle bits
// reported by `vcgencmd get_throttled`. The *Occurred fields are sticky
// since boot; the rest reflect the current state.
type ThrottleStatus struct {
	UnderVoltage          bool `json:"under_voltage"`
	ARMFreqCapped         bool `json:"arm_freq_capped"`
	CurrentlyThrottled    bool `json:"currently_throttled"`
	SoftTempLimit         bool `json:"soft_temp_limit"`
	UnderVoltageOccurred  bool `json:"under_voltage_occurred"`
	ARMFreqCappedOccurred bool `json:"arm_freq_capped_occurred"`
	ThrottledOccurred     bool `json:"throttled_occurred"`
	SoftTempLimitOccurred bool `json:"soft_temp_limit_occurred"`
}
