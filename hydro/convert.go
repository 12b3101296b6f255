package hydro

import (
	"fmt"

	"github.com/notargets/gohydro/types"
	"github.com/notargets/gohydro/utils"
)

/*
PrimitiveToConserved fills cons over the inclusive box from prim:

	D  = d
	M  = d * v
	E  = p/(Gamma-1) + 0.5*d*|v|^2

Rows of the box are spread over nthreads goroutines with a dynamic schedule.
Each cell depends only on its own inputs, so the result does not depend on
nthreads. Both arrays must cover the box; nothing is checked.
*/
func (eos *EquationOfState) PrimitiveToConserved(prim, cons *utils.Array4D, box types.IndexBox, nthreads int) {
	eos.PrimitiveToConservedTeam(prim, cons, box, NewTeam(nthreads))
}

func (eos *EquationOfState) PrimitiveToConservedTeam(prim, cons *utils.Array4D, box types.IndexBox, team Team) {
	var (
		igm1   = 1. / (eos.Gamma - 1.)
		is, ie = box.IS, box.IE
	)
	team.ForEach(box, func(_, k, j int) {
		primToConsRow(
			prim.Row(int(types.IDN), k, j, is, ie),
			prim.Row(int(types.IVX), k, j, is, ie),
			prim.Row(int(types.IVY), k, j, is, ie),
			prim.Row(int(types.IVZ), k, j, is, ie),
			prim.Row(int(types.IPR), k, j, is, ie),
			cons.Row(int(types.CDN), k, j, is, ie),
			cons.Row(int(types.IM1), k, j, is, ie),
			cons.Row(int(types.IM2), k, j, is, ie),
			cons.Row(int(types.IM3), k, j, is, ie),
			cons.Row(int(types.IEN), k, j, is, ie),
			igm1)
	})
}

func primToConsRow(d, vx, vy, vz, p, ud, m1, m2, m3, e []float64, igm1 float64) {
	// Equal lengths let the compiler drop the bounds checks in the loop
	n := len(d)
	vx, vy, vz, p = vx[:n], vy[:n], vz[:n], p[:n]
	ud, m1, m2, m3, e = ud[:n], m1[:n], m2[:n], m3[:n], e[:n]
	for i := range d {
		wd, wvx, wvy, wvz, wp := d[i], vx[i], vy[i], vz[i], p[i]
		ud[i] = wd
		m1[i] = wvx * wd
		m2[i] = wvy * wd
		m3[i] = wvz * wd
		ke := 0.5 * wd * (wvx*wvx + wvy*wvy + wvz*wvz)
		e[i] = wp*igm1 + ke
	}
}

/*
ConservedToPrimitive is the inverse of PrimitiveToConserved over the box.
Cells below a positive density or pressure floor are raised to the floor and
the conserved state is corrected to match; the number of such cells is
returned. A cell with non-positive density and no density floor is an error.
*/
func (eos *EquationOfState) ConservedToPrimitive(cons, prim *utils.Array4D, box types.IndexBox,
	team Team) (floored int, err error) {
	var (
		gm1    = eos.GM1()
		is, ie = box.IS, box.IE
		counts = make([]int, max(team.Size(box), 1)) // One per goroutine
	)
	err = team.For(box, func(myThread, k, j int) error {
		nf, iBad := eos.consToPrimRow(
			cons.Row(int(types.CDN), k, j, is, ie),
			cons.Row(int(types.IM1), k, j, is, ie),
			cons.Row(int(types.IM2), k, j, is, ie),
			cons.Row(int(types.IM3), k, j, is, ie),
			cons.Row(int(types.IEN), k, j, is, ie),
			prim.Row(int(types.IDN), k, j, is, ie),
			prim.Row(int(types.IVX), k, j, is, ie),
			prim.Row(int(types.IVY), k, j, is, ie),
			prim.Row(int(types.IVZ), k, j, is, ie),
			prim.Row(int(types.IPR), k, j, is, ie),
			gm1)
		counts[myThread] += nf
		if iBad >= 0 {
			return fmt.Errorf("non-positive density %g at cell (k,j,i) = (%d,%d,%d)",
				cons.At(int(types.CDN), k, j, is+iBad), k, j, is+iBad)
		}
		return nil
	})
	for _, c := range counts {
		floored += c
	}
	return
}

// consToPrimRow returns the number of floored cells and the offset of the
// first cell that could not be converted, or -1
func (eos *EquationOfState) consToPrimRow(ud, m1, m2, m3, e, d, vx, vy, vz, p []float64,
	gm1 float64) (floored, iBad int) {
	var (
		dfloor, pfloor = eos.DensityFloor, eos.PressureFloor
		n              = len(ud)
	)
	m1, m2, m3, e = m1[:n], m2[:n], m3[:n], e[:n]
	d, vx, vy, vz, p = d[:n], vx[:n], vy[:n], vz[:n], p[:n]
	iBad = -1
	for i := range ud {
		u := ud[i]
		wasFloored := false
		if dfloor > 0 && u < dfloor {
			u = dfloor
			ud[i] = u
			wasFloored = true
		} else if u <= 0 {
			return floored, i
		}
		di := 1. / u
		d[i] = u
		vx[i] = m1[i] * di
		vy[i] = m2[i] * di
		vz[i] = m3[i] * di
		ke := 0.5 * di * (m1[i]*m1[i] + m2[i]*m2[i] + m3[i]*m3[i])
		wp := gm1 * (e[i] - ke)
		if pfloor > 0 && wp < pfloor {
			wp = pfloor
			e[i] = pfloor/gm1 + ke
			wasFloored = true
		}
		p[i] = wp
		if wasFloored {
			floored++
		}
	}
	return
}
