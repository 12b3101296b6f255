package hydro

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/notargets/gohydro/types"
	"github.com/notargets/gohydro/utils"
)

/*
MeshBlock owns the primitive and conserved arrays of one structured block.
Axes with more than one cell carry NGhost ghost cells on each side, the
Active box excludes them.
*/
type MeshBlock struct {
	NX1, NX2, NX3 int // Active cells along i, j, k
	NGhost        int
	EOS           *EquationOfState
	Team          Team
	Prim, Cons    *utils.Array4D
	Active        types.IndexBox
	RunID         uuid.UUID
	logger        *zap.Logger
}

func NewMeshBlock(nx1, nx2, nx3, nghost int, eos *EquationOfState, team Team,
	logger *zap.Logger) (mb *MeshBlock) {
	if nx1 < 1 || nx2 < 1 || nx3 < 1 {
		panic(fmt.Errorf("mesh block needs at least one cell per axis, have (%d,%d,%d)", nx1, nx2, nx3))
	}
	if nghost < 0 {
		panic(fmt.Errorf("negative ghost zone count %d", nghost))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	extent := func(nx int) (ntot, s int) {
		if nx > 1 {
			return nx + 2*nghost, nghost
		}
		return 1, 0
	}
	var (
		n1, is = extent(nx1)
		n2, js = extent(nx2)
		n3, ks = extent(nx3)
	)
	mb = &MeshBlock{
		NX1:    nx1,
		NX2:    nx2,
		NX3:    nx3,
		NGhost: nghost,
		EOS:    eos,
		Team:   team,
		Prim:   utils.NewArray4D(types.NHYDRO, n3, n2, n1),
		Cons:   utils.NewArray4D(types.NHYDRO, n3, n2, n1),
		Active: types.NewIndexBox(is, is+nx1-1, js, js+nx2-1, ks, ks+nx3-1),
		RunID:  uuid.New(),
	}
	mb.logger = logger.With(zap.Stringer("run", mb.RunID))
	mb.logger.Debug("mesh block allocated",
		zap.Int("nx1", nx1), zap.Int("nx2", nx2), zap.Int("nx3", nx3),
		zap.Int("nghost", nghost),
		zap.Stringer("active", mb.Active),
		zap.Int("bytes", 2*8*len(mb.Prim.DataP)))
	return
}

// Coordinates maps a cell index onto the unit cube, at the cell center
func (mb *MeshBlock) Coordinates(k, j, i int) (x, y, z float64) {
	b := mb.Active
	x = (float64(i-b.IS) + 0.5) / float64(mb.NX1)
	y = (float64(j-b.JS) + 0.5) / float64(mb.NX2)
	z = (float64(k-b.KS) + 0.5) / float64(mb.NX3)
	return
}

// Initialize lays down the primitive state over the whole block, ghosts included
func (mb *MeshBlock) Initialize(ic InitialCondition) {
	_, n3, n2, n1 := mb.Prim.Dims()
	all := types.NewIndexBox(0, n1-1, 0, n2-1, 0, n3-1)
	mb.Team.ForEach(all, func(_, k, j int) {
		for i := 0; i < n1; i++ {
			w := ic.StateAt(mb.Coordinates(k, j, i))
			for n := 0; n < types.NHYDRO; n++ {
				mb.Prim.Set(n, k, j, i, w[n])
			}
		}
	})
	mb.logger.Info("initialized primitive state", zap.String("case", ic.Case.Print()))
}

func (mb *MeshBlock) PrimitiveToConserved() (elapsed time.Duration) {
	start := time.Now()
	mb.EOS.PrimitiveToConservedTeam(mb.Prim, mb.Cons, mb.Active, mb.Team)
	elapsed = time.Since(start)
	mb.logger.Debug("primitive to conserved",
		zap.Int("cells", mb.Active.NumCells()),
		zap.Int("threads", mb.Team.Size(mb.Active)),
		zap.Stringer("schedule", mb.Team.Schedule),
		zap.Duration("elapsed", elapsed))
	return
}

func (mb *MeshBlock) ConservedToPrimitive() (floored int, err error) {
	if floored, err = mb.EOS.ConservedToPrimitive(mb.Cons, mb.Prim, mb.Active, mb.Team); err != nil {
		mb.logger.Error("conserved to primitive failed", zap.Error(err))
		return
	}
	if floored > 0 {
		mb.logger.Warn("floors applied", zap.Int("cells", floored))
	}
	return
}
