package hydro

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gohydro/types"
	"github.com/notargets/gohydro/utils"
)

// Totals are sums of the conserved variables over the cells of a box
type Totals struct {
	Cells    int
	Mass     float64
	Momentum [3]float64
	Energy   float64
}

// SumConserved accumulates row by row in box order, so repeated calls agree bitwise
func SumConserved(cons *utils.Array4D, box types.IndexBox) (t Totals) {
	var (
		sums [types.NHYDRO]float64
	)
	t.Cells = box.NumCells()
	if box.Empty() {
		return
	}
	for k := box.KS; k <= box.KE; k++ {
		for j := box.JS; j <= box.JE; j++ {
			for n := 0; n < types.NHYDRO; n++ {
				sums[n] += floats.Sum(cons.Row(n, k, j, box.IS, box.IE))
			}
		}
	}
	t.Mass = sums[types.CDN]
	t.Momentum = [3]float64{sums[types.IM1], sums[types.IM2], sums[types.IM3]}
	t.Energy = sums[types.IEN]
	return
}

func (t Totals) Print() (o string) {
	o = fmt.Sprintf("%12d\t= Cells\n", t.Cells)
	o += fmt.Sprintf("%12.6g\t= Mass\n", t.Mass)
	o += fmt.Sprintf("%12.6g\t= XMomentum\n", t.Momentum[0])
	o += fmt.Sprintf("%12.6g\t= YMomentum\n", t.Momentum[1])
	o += fmt.Sprintf("%12.6g\t= ZMomentum\n", t.Momentum[2])
	o += fmt.Sprintf("%12.6g\t= Energy\n", t.Energy)
	return
}

// FieldRange returns the extrema of a flow function evaluated from primitive state over the box
func (eos *EquationOfState) FieldRange(prim *utils.Array4D, box types.IndexBox, pf FlowFunction) (fMin, fMax float64) {
	fMin, fMax = math.Inf(1), math.Inf(-1)
	if box.Empty() {
		return
	}
	row := make([]float64, box.IE-box.IS+1)
	for k := box.KS; k <= box.KE; k++ {
		for j := box.JS; j <= box.JE; j++ {
			for i := box.IS; i <= box.IE; i++ {
				row[i-box.IS] = eos.GetFlowFunction(prim, k, j, i, pf)
			}
			fMin = math.Min(fMin, floats.Min(row))
			fMax = math.Max(fMax, floats.Max(row))
		}
	}
	return
}

func (mb *MeshBlock) Totals() Totals {
	return SumConserved(mb.Cons, mb.Active)
}
