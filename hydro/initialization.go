package hydro

import (
	"fmt"
	"strings"
)

type InitType uint8

const (
	UNIFORM InitType = iota
	SOD
	BLAST
)

var (
	InitNames = map[string]InitType{
		"uniform":    UNIFORM,
		"freestream": UNIFORM,
		"sod":        SOD,
		"shocktube":  SOD,
		"blast":      BLAST,
	}
	InitPrintNames = []string{"Uniform state", "Sod shock tube", "Blast wave"}
)

func (it InitType) Print() (txt string) {
	txt = InitPrintNames[it]
	return
}

func NewInitType(label string) (it InitType, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(strings.TrimSpace(label))
	if it, ok = InitNames[label]; !ok {
		err = fmt.Errorf("unable to use init type named %s", label)
	}
	return
}

// PrimitiveState is (density, vx, vy, vz, pressure)
type PrimitiveState [5]float64

/*
InitialCondition describes the primitive state laid down before a transform.
Coordinates are cell centers of the active box mapped onto the unit cube.

  - UNIFORM: State everywhere
  - SOD: Left where the coordinate along Axis (1=x, 2=y, 3=z) is below 0.5, Right elsewhere
  - BLAST: State everywhere, with pressure BlastPressure inside BlastRadius of the center
*/
type InitialCondition struct {
	Case          InitType
	State         PrimitiveState
	Left, Right   PrimitiveState
	Axis          int
	BlastPressure float64
	BlastRadius   float64
}

func NewSodShockTube(axis int) InitialCondition {
	return InitialCondition{
		Case:  SOD,
		Left:  PrimitiveState{1, 0, 0, 0, 1},
		Right: PrimitiveState{0.125, 0, 0, 0, 0.1},
		Axis:  axis,
	}
}

func NewBlastWave() InitialCondition {
	return InitialCondition{
		Case:          BLAST,
		State:         PrimitiveState{1, 0, 0, 0, 0.1},
		BlastPressure: 10,
		BlastRadius:   0.1,
	}
}

func NewUniform(state PrimitiveState) InitialCondition {
	return InitialCondition{
		Case:  UNIFORM,
		State: state,
	}
}

// StateAt returns the primitive state at unit cube coordinates (x,y,z)
func (ic InitialCondition) StateAt(x, y, z float64) (w PrimitiveState) {
	switch ic.Case {
	case SOD:
		var s float64
		switch ic.Axis {
		case 2:
			s = y
		case 3:
			s = z
		default:
			s = x
		}
		if s < 0.5 {
			w = ic.Left
		} else {
			w = ic.Right
		}
	case BLAST:
		w = ic.State
		dx, dy, dz := x-0.5, y-0.5, z-0.5
		if dx*dx+dy*dy+dz*dz < ic.BlastRadius*ic.BlastRadius {
			w[4] = ic.BlastPressure
		}
	default:
		w = ic.State
	}
	return
}
