package hydro

import (
	"fmt"

	"github.com/notargets/gohydro/types"
	"github.com/notargets/gohydro/utils"
)

/*
EquationOfState is the adiabatic ideal gas law, internal energy = p/(Gamma-1).
The floors are only used when converting conserved to primitive state and
are disabled when not positive.
*/
type EquationOfState struct {
	Gamma         float64
	DensityFloor  float64
	PressureFloor float64
}

func NewEquationOfState(Gamma float64) (eos *EquationOfState) {
	if Gamma == 1 {
		panic(fmt.Errorf("adiabatic index must not be 1"))
	}
	eos = &EquationOfState{
		Gamma: Gamma,
	}
	return
}

func (eos *EquationOfState) WithFloors(dfloor, pfloor float64) *EquationOfState {
	eos.DensityFloor, eos.PressureFloor = dfloor, pfloor
	return eos
}

func (eos *EquationOfState) GM1() float64 {
	return eos.Gamma - 1.
}

// Team describes how the (k,j) rows of an index box are spread over goroutines
type Team struct {
	Threads  int
	Schedule types.Schedule
	Chunk    int
}

func NewTeam(nthreads int) Team {
	return Team{
		Threads:  nthreads,
		Schedule: types.ScheduleDynamic,
		Chunk:    1,
	}
}

func (t Team) For(box types.IndexBox, fn func(myThread, k, j int) error) (err error) {
	if box.Empty() {
		return
	}
	return utils.ParallelFor(t.Threads, t.Schedule, t.Chunk, box.NumRows(),
		func(myThread, n int) error {
			k, j := box.Row(n)
			return fn(myThread, k, j)
		})
}

// ForEach is For for row functions that cannot fail
func (t Team) ForEach(box types.IndexBox, fn func(myThread, k, j int)) {
	_ = t.For(box, func(myThread, k, j int) error {
		fn(myThread, k, j)
		return nil
	})
}

// Size is the number of goroutines the team runs for a box
func (t Team) Size(box types.IndexBox) int {
	return utils.SetParallelDegree(t.Threads, box.NumRows())
}
