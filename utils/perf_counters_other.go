//go:build !linux

package utils

// MeasureHardwareCounts runs fn once and reports no counters on non-Linux platforms
func MeasureHardwareCounts(fn func() error) (hc HardwareCounts, err error) {
	err = fn()
	return
}
