package hydro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/notargets/gohydro/types"
)

func TestMeshBlockLayout(t *testing.T) {
	{ // 3D block, ghosts on every axis
		mb := NewMeshBlock(8, 4, 2, 2, NewEquationOfState(1.4), NewTeam(2), nil)
		nvar, n3, n2, n1 := mb.Cons.Dims()
		assert.Equal(t, [4]int{5, 6, 8, 12}, [4]int{nvar, n3, n2, n1})
		assert.Equal(t, types.NewIndexBox(2, 9, 2, 5, 2, 3), mb.Active)
		assert.Equal(t, 64, mb.Active.NumCells())
	}
	{ // 1D block, no ghosts on the inactive axes
		mb := NewMeshBlock(16, 1, 1, 3, NewEquationOfState(1.4), NewTeam(1), nil)
		_, n3, n2, n1 := mb.Prim.Dims()
		assert.Equal(t, [3]int{1, 1, 22}, [3]int{n3, n2, n1})
		assert.Equal(t, types.NewIndexBox(3, 18, 0, 0, 0, 0), mb.Active)
		x, y, z := mb.Coordinates(0, 0, 3)
		assert.InDelta(t, 0.5/16., x, 1.e-15)
		assert.Equal(t, 0.5, y)
		assert.Equal(t, 0.5, z)
	}
	{
		eos := NewEquationOfState(1.4)
		assert.Panics(t, func() { NewMeshBlock(0, 1, 1, 0, eos, NewTeam(1), nil) })
		assert.Panics(t, func() { NewMeshBlock(4, 1, 1, -1, eos, NewTeam(1), nil) })
		assert.Panics(t, func() { NewEquationOfState(1) })
	}
}

func TestMeshBlockSodTransform(t *testing.T) {
	var (
		core, logs = observer.New(zap.DebugLevel)
		eos        = NewEquationOfState(1.4)
		mb         = NewMeshBlock(32, 4, 1, 2, eos, NewTeam(4), zap.New(core))
	)
	mb.Initialize(NewSodShockTube(1))
	assert.Equal(t, 1., mb.Prim.At(int(types.IDN), 0, 2, 2))
	assert.Equal(t, 0.125, mb.Prim.At(int(types.IDN), 0, 2, 33))
	// Ghost cells get the state of their side too
	assert.Equal(t, 1., mb.Prim.At(int(types.IDN), 0, 0, 0))

	mb.Cons.Fill(sentinel)
	mb.PrimitiveToConserved()
	totals := mb.Totals()
	assert.Equal(t, 128, totals.Cells)
	assert.InDelta(t, 64*1.+64*0.125, totals.Mass, 1.e-12)
	assert.Equal(t, [3]float64{0, 0, 0}, totals.Momentum)
	assert.InDelta(t, (64*1.+64*0.1)/0.4, totals.Energy, 1.e-10)
	// Ghost zones are outside the active box and stay untouched
	assert.Equal(t, sentinel, mb.Cons.At(int(types.IEN), 0, 0, 0))
	assert.Contains(t, totals.Print(), "= Mass")

	floored, err := mb.ConservedToPrimitive()
	require.NoError(t, err)
	assert.Equal(t, 0, floored)
	assert.InDelta(t, 0.1, mb.Prim.At(int(types.IPR), 0, 3, 30), 1.e-14)

	assert.Equal(t, 1, logs.FilterMessage("initialized primitive state").Len())
	entries := logs.FilterMessage("primitive to conserved").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(128), entries[0].ContextMap()["cells"])
	assert.Equal(t, mb.RunID.String(), entries[0].ContextMap()["run"])
}

func TestMeshBlockFloorsLogged(t *testing.T) {
	var (
		core, logs = observer.New(zap.InfoLevel)
		eos        = NewEquationOfState(5./3.).WithFloors(1.e-6, 1.e-6)
		mb         = NewMeshBlock(4, 4, 4, 1, eos, NewTeam(2), zap.New(core))
	)
	mb.Initialize(NewUniform(PrimitiveState{1, 0, 0, 0, 1}))
	mb.PrimitiveToConserved()
	mb.Cons.Set(int(types.IEN), 2, 2, 2, 0)
	floored, err := mb.ConservedToPrimitive()
	require.NoError(t, err)
	assert.Equal(t, 1, floored)
	assert.Equal(t, 1, logs.FilterMessage("floors applied").Len())

	eos.DensityFloor = 0
	mb.Cons.Set(int(types.CDN), 1, 1, 1, -1)
	_, err = mb.ConservedToPrimitive()
	assert.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("conserved to primitive failed").Len())
}
