package utils

import (
	"fmt"
)

/*
Array4D is a dense float64 container addressed as (n, k, j, i).
The variable index n varies slowest and i fastest, so a fixed (n,k,j) is a
contiguous run of NX1 values. This is the layout used by the binary dumps.
*/
type Array4D struct {
	NVar, NX3, NX2, NX1 int
	DataP               []float64
}

func NewArray4D(nvar, nx3, nx2, nx1 int) (A *Array4D) {
	if nvar < 0 || nx3 < 0 || nx2 < 0 || nx1 < 0 {
		panic(fmt.Errorf("negative array dimension: (%d,%d,%d,%d)", nvar, nx3, nx2, nx1))
	}
	A = &Array4D{
		NVar:  nvar,
		NX3:   nx3,
		NX2:   nx2,
		NX1:   nx1,
		DataP: make([]float64, nvar*nx3*nx2*nx1),
	}
	return
}

func (A *Array4D) Dims() (nvar, nx3, nx2, nx1 int) {
	return A.NVar, A.NX3, A.NX2, A.NX1
}

func (A *Array4D) Data() []float64 {
	return A.DataP
}

// Index returns the flat offset of element (n,k,j,i)
func (A *Array4D) Index(n, k, j, i int) int {
	return ((n*A.NX3+k)*A.NX2+j)*A.NX1 + i
}

func (A *Array4D) At(n, k, j, i int) float64 {
	return A.DataP[A.Index(n, k, j, i)]
}

func (A *Array4D) Set(n, k, j, i int, val float64) {
	A.DataP[A.Index(n, k, j, i)] = val
}

// Row returns the contiguous slice for (n,k,j) over i in [is,ie]
func (A *Array4D) Row(n, k, j, is, ie int) []float64 {
	off := A.Index(n, k, j, 0)
	return A.DataP[off+is : off+ie+1 : off+ie+1]
}

// SameShape reports whether B can be addressed with the same (n,k,j,i) tuples as A
func (A *Array4D) SameShape(B *Array4D) bool {
	return A.NVar == B.NVar && A.NX3 == B.NX3 && A.NX2 == B.NX2 && A.NX1 == B.NX1
}

func (A *Array4D) Fill(val float64) *Array4D {
	for i := range A.DataP {
		A.DataP[i] = val
	}
	return A
}

func (A *Array4D) Copy() (B *Array4D) {
	B = NewArray4D(A.Dims())
	copy(B.DataP, A.DataP)
	return
}

func (A *Array4D) Print(label string) (o string) {
	o = fmt.Sprintf("%s = Array4D(%d,%d,%d,%d)\n", label, A.NVar, A.NX3, A.NX2, A.NX1)
	for n := 0; n < A.NVar; n++ {
		for k := 0; k < A.NX3; k++ {
			for j := 0; j < A.NX2; j++ {
				o += fmt.Sprintf("[%d,%d,%d,:] %8.5f\n", n, k, j, A.Row(n, k, j, 0, A.NX1-1))
			}
		}
	}
	return
}
