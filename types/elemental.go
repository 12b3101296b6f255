package types

import "fmt"

/*
IndexBox is an inclusive range of cell indices along the three grid axes.
The axes are named k (outer), j (middle) and i (inner), matching the memory
order of the state arrays. A box with any upper bound below its lower bound
is empty.
*/
type IndexBox struct {
	IS, IE int
	JS, JE int
	KS, KE int
}

func NewIndexBox(is, ie, js, je, ks, ke int) IndexBox {
	return IndexBox{IS: is, IE: ie, JS: js, JE: je, KS: ks, KE: ke}
}

func (b IndexBox) Empty() bool {
	return b.IE < b.IS || b.JE < b.JS || b.KE < b.KS
}

func (b IndexBox) Extents() (nk, nj, ni int) {
	if b.Empty() {
		return
	}
	return b.KE - b.KS + 1, b.JE - b.JS + 1, b.IE - b.IS + 1
}

// NumRows is the number of (k,j) rows, each row being a contiguous run along i
func (b IndexBox) NumRows() int {
	nk, nj, _ := b.Extents()
	return nk * nj
}

func (b IndexBox) NumCells() int {
	nk, nj, ni := b.Extents()
	return nk * nj * ni
}

// Row maps a linear row number onto its (k,j) coordinates, k varying slowest
func (b IndexBox) Row(n int) (k, j int) {
	nj := b.JE - b.JS + 1
	k = b.KS + n/nj
	j = b.JS + n%nj
	return
}

func (b IndexBox) Contains(k, j, i int) bool {
	return k >= b.KS && k <= b.KE &&
		j >= b.JS && j <= b.JE &&
		i >= b.IS && i <= b.IE
}

func (b IndexBox) Intersect(o IndexBox) (r IndexBox) {
	r = IndexBox{
		IS: max(b.IS, o.IS), IE: min(b.IE, o.IE),
		JS: max(b.JS, o.JS), JE: min(b.JE, o.JE),
		KS: max(b.KS, o.KS), KE: min(b.KE, o.KE),
	}
	return
}

func (b IndexBox) String() string {
	return fmt.Sprintf("[%d:%d]x[%d:%d]x[%d:%d]", b.KS, b.KE, b.JS, b.JE, b.IS, b.IE)
}
