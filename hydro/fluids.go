package hydro

import (
	"math"

	"github.com/notargets/gohydro/types"
	"github.com/notargets/gohydro/utils"
)

type FlowFunction uint8

func (pm FlowFunction) String() string {
	strings := []string{
		"Density",
		"XVelocity",
		"YVelocity",
		"ZVelocity",
		"Static Pressure",
		"XMomentum",
		"YMomentum",
		"ZMomentum",
		"Energy",
		"Kinetic Energy",
		"Internal Energy",
		"Sound Speed",
		"Mach",
		"Velocity",
		"Enthalpy",
	}
	return strings[int(pm)]
}

const (
	Density FlowFunction = iota
	XVelocity
	YVelocity
	ZVelocity
	StaticPressure
	XMomentum // 5
	YMomentum
	ZMomentum
	Energy         // 8
	KineticEnergy  // 9
	InternalEnergy // 10
	SoundSpeed     // 11
	Mach           // 12
	Velocity       // 13
	Enthalpy       // 14
)

var FlowFunctionNameMap = map[string]FlowFunction{
	"density":  Density,
	"pressure": StaticPressure,
	"energy":   Energy,
	"mach":     Mach,
	"sound":    SoundSpeed,
	"velocity": Velocity,
	"enthalpy": Enthalpy,
}

func (eos *EquationOfState) GetFlowFunction(prim *utils.Array4D, k, j, i int, pf FlowFunction) (f float64) {
	return eos.GetFlowFunctionBase(
		prim.At(int(types.IDN), k, j, i),
		prim.At(int(types.IVX), k, j, i),
		prim.At(int(types.IVY), k, j, i),
		prim.At(int(types.IVZ), k, j, i),
		prim.At(int(types.IPR), k, j, i),
		pf)
}

// GetFlowFunctionBase evaluates pf from a primitive state
func (eos *EquationOfState) GetFlowFunctionBase(rho, u, v, w, p float64, pf FlowFunction) (f float64) {
	var (
		Gamma = eos.Gamma
		GM1   = Gamma - 1.
		U2    = u*u + v*v + w*w
	)
	switch pf {
	case Density:
		f = rho
	case XVelocity:
		f = u
	case YVelocity:
		f = v
	case ZVelocity:
		f = w
	case StaticPressure:
		f = p
	case XMomentum:
		f = rho * u
	case YMomentum:
		f = rho * v
	case ZMomentum:
		f = rho * w
	case Energy:
		f = p/GM1 + 0.5*rho*U2
	case KineticEnergy:
		f = 0.5 * rho * U2
	case InternalEnergy:
		f = p / GM1
	case SoundSpeed:
		f = math.Sqrt(math.Abs(Gamma * p / rho))
	case Mach:
		C := math.Sqrt(math.Abs(Gamma * p / rho))
		f = math.Sqrt(U2) / C
	case Velocity:
		f = math.Sqrt(U2)
	case Enthalpy:
		f = (p/GM1 + 0.5*rho*U2 + p) / rho
	}
	return
}
