package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHardwareCounts(t *testing.T) {
	{
		var hc HardwareCounts
		assert.Equal(t, 0., hc.IPC())
		assert.Equal(t, "hardware counters unavailable", hc.String())
	}
	{
		hc := HardwareCounts{Available: true, Cycles: 200, Instructions: 300}
		assert.InDelta(t, 1.5, hc.IPC(), 1.e-15)
		assert.Contains(t, hc.String(), "IPC = 1.500")
	}
	{ // perf_event_open is commonly denied in containers
		var calls int
		hc, err := MeasureHardwareCounts(func() error {
			calls++
			return nil
		})
		if err == nil {
			assert.True(t, calls >= 1)
			if hc.Available {
				assert.Equal(t, 2, calls)
			}
		}
	}
}
