package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemp(t *testing.T) {
	temp, err := parseTemp("temp=54.9'C")
	require.NoError(t, err)
	assert.InDelta(t, 54.9, temp, 0.001)
}

func TestParseTempGarbage(t *testing.T) {
	_, err := parseTemp("command not found")
	assert.Error(t, err)

	_, err = parseTemp("temp=hot'C")
	assert.Error(t, err)
}

func TestParseThrottleClean(t *testing.T) {
	st, err := parseThrottle("throttled=0x0")
	require.NoError(t, err)
	assert.False(t, st.UnderVoltage)
	assert.False(t, st.CurrentlyThrottled)
	assert.False(t, st.ThrottledOccurred)
}

func TestParseThrottleFlags(t *testing.T) {
	// 0x50005: under-voltage + throttled now, both occurred since boot
	st, err := parseThrottle("throttled=0x50005")
	require.NoError(t, err)
	assert.True(t, st.UnderVoltage)
	assert.True(t, st.CurrentlyThrottled)
	assert.False(t, st.ARMFreqCapped)
	assert.True(t, st.UnderVoltageOccurred)
	assert.True(t, st.ThrottledOccurred)
	assert.False(t, st.SoftTempLimitOccurred)
}

func TestParseThrottleGarbage(t *testing.T) {
	_, err := parseThrottle("nope")
	assert.Error(t, err)
}
