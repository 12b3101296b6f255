package types

import (
	"fmt"
	"strings"
)

// PrimitiveVariable indexes the variable axis of a primitive state array
type PrimitiveVariable uint8

const (
	IDN PrimitiveVariable = iota // Density
	IVX                          // Velocity components
	IVY
	IVZ
	IPR // Pressure, shares slot 4 with IEN in the conserved array
)

// ConservedVariable indexes the variable axis of a conserved state array
type ConservedVariable uint8

const (
	CDN ConservedVariable = iota // Density
	IM1                          // Momentum components
	IM2
	IM3
	IEN // Total energy
)

// NHYDRO is the number of hydro variables in both the primitive and conserved arrays
const NHYDRO = 5

func (pv PrimitiveVariable) String() string {
	names := []string{
		"Density",
		"XVelocity",
		"YVelocity",
		"ZVelocity",
		"Pressure",
	}
	if int(pv) >= len(names) {
		return fmt.Sprintf("PrimitiveVariable(%d)", pv)
	}
	return names[int(pv)]
}

func (cv ConservedVariable) String() string {
	names := []string{
		"Density",
		"XMomentum",
		"YMomentum",
		"ZMomentum",
		"Energy",
	}
	if int(cv) >= len(names) {
		return fmt.Sprintf("ConservedVariable(%d)", cv)
	}
	return names[int(cv)]
}

// Schedule selects how rows of the middle axis are handed to workers
type Schedule uint8

const (
	ScheduleDynamic Schedule = iota
	ScheduleStatic
)

var ScheduleNameMap = map[string]Schedule{
	"dynamic": ScheduleDynamic,
	"greedy":  ScheduleDynamic,
	"static":  ScheduleStatic,
	"":        ScheduleDynamic,
}

func NewSchedule(label string) (s Schedule, err error) {
	var ok bool
	if s, ok = ScheduleNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown schedule %q, must be one of dynamic, static", label)
	}
	return
}

func (s Schedule) String() string {
	switch s {
	case ScheduleStatic:
		return "static"
	default:
		return "dynamic"
	}
}
