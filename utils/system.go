package utils

import (
	"fmt"
	"math"
	"runtime"
)

func GetMemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	// For info on each, see: https://golang.org/pkg/runtime/#MemStats
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	return fmt.Sprintf("Alloc = %v MiB TotalAlloc = %v MiB Sys = %v MiB NumGC = %v",
		bToMb(m.Alloc), bToMb(m.TotalAlloc), bToMb(m.Sys), m.NumGC)
}

// CountNonFinite returns the number of NaN or Inf values
func CountNonFinite(A any) (count int) {
	switch v := A.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			count = 1
		}
	case []float64:
		for _, f := range v {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				count++
			}
		}
	case *Array4D:
		count = CountNonFinite(v.DataP)
	}
	return
}
