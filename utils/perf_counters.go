package utils

import "fmt"

type HardwareCounts struct {
	Available            bool
	Cycles, Instructions uint64
}

func (hc HardwareCounts) IPC() float64 {
	if hc.Cycles == 0 {
		return 0
	}
	return float64(hc.Instructions) / float64(hc.Cycles)
}

func (hc HardwareCounts) String() string {
	if !hc.Available {
		return "hardware counters unavailable"
	}
	return fmt.Sprintf("cycles = %d, instructions = %d, IPC = %5.3f", hc.Cycles, hc.Instructions, hc.IPC())
}
