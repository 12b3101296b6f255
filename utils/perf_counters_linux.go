//go:build linux

package utils

import (
	"fmt"

	perf "github.com/hodgesds/perf-utils"
)

// MeasureHardwareCounts runs fn twice, once under a cycle counter and once under
// an instruction counter. The counters follow the calling OS thread only.
func MeasureHardwareCounts(fn func() error) (hc HardwareCounts, err error) {
	var (
		cycles, instructions *perf.ProfileValue
	)
	if cycles, err = perf.CPUCycles(fn); err != nil {
		err = fmt.Errorf("cpu cycle counter: %w", err)
		return
	}
	if instructions, err = perf.CPUInstructions(fn); err != nil {
		err = fmt.Errorf("cpu instruction counter: %w", err)
		return
	}
	hc = HardwareCounts{
		Available:    true,
		Cycles:       cycles.Value,
		Instructions: instructions.Value,
	}
	return
}
