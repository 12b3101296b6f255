package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/gohydro/hydro"
	"github.com/notargets/gohydro/types"
)

// Parameters obtained from the YAML input file
type InputParameters3D struct {
	Title         string             `json:"Title"`
	Gamma         float64            `json:"Gamma"`
	NX1           int                `json:"NX1"`
	NX2           int                `json:"NX2"`
	NX3           int                `json:"NX3"`
	NGhost        int                `json:"NGhost"`
	Threads       int                `json:"Threads"`
	Schedule      string             `json:"Schedule"`
	Chunk         int                `json:"Chunk"`
	InitType      string             `json:"InitType"`
	InitParams    map[string]float64 `json:"InitParams"` // State values keyed by name, see InitialCondition
	DensityFloor  float64            `json:"DensityFloor"`
	PressureFloor float64            `json:"PressureFloor"`
	Iterations    int                `json:"Iterations"`
	DumpFile      string             `json:"DumpFile"`
}

func NewInputParameters3D() (ip *InputParameters3D) {
	ip = &InputParameters3D{}
	ip.ApplyDefaults()
	return
}

// Parse fills unset fields with defaults first, so a value written in the file
// wins even when it is zero (NGhost: 0 means no ghost zones)
func (ip *InputParameters3D) Parse(data []byte) (err error) {
	ip.ApplyDefaults()
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	return ip.Validate()
}

// ApplyDefaults sets every zero valued field to its default
func (ip *InputParameters3D) ApplyDefaults() {
	if ip.Gamma == 0 {
		ip.Gamma = 1.4
	}
	if ip.NX1 == 0 {
		ip.NX1 = 64
	}
	if ip.NX2 == 0 {
		ip.NX2 = 1
	}
	if ip.NX3 == 0 {
		ip.NX3 = 1
	}
	if ip.NGhost == 0 {
		ip.NGhost = 2
	}
	if ip.Chunk == 0 {
		ip.Chunk = 1
	}
	if ip.Iterations == 0 {
		ip.Iterations = 10
	}
	if len(ip.InitType) == 0 {
		ip.InitType = "uniform"
	}
}

func (ip *InputParameters3D) Validate() (err error) {
	switch {
	case ip.Gamma <= 1:
		err = fmt.Errorf("Gamma must be greater than 1, have %g", ip.Gamma)
	case ip.NX1 < 1 || ip.NX2 < 1 || ip.NX3 < 1:
		err = fmt.Errorf("grid dimensions must be positive, have (%d,%d,%d)", ip.NX1, ip.NX2, ip.NX3)
	case ip.NGhost < 0:
		err = fmt.Errorf("NGhost must not be negative, have %d", ip.NGhost)
	case ip.Iterations < 1:
		err = fmt.Errorf("Iterations must be positive, have %d", ip.Iterations)
	}
	if err != nil {
		return
	}
	if _, err = types.NewSchedule(ip.Schedule); err != nil {
		return
	}
	_, err = ip.InitialCondition()
	return
}

func (ip *InputParameters3D) GetSchedule() (s types.Schedule) {
	s, _ = types.NewSchedule(ip.Schedule)
	return
}

func (ip *InputParameters3D) Team() hydro.Team {
	return hydro.Team{
		Threads:  ip.Threads,
		Schedule: ip.GetSchedule(),
		Chunk:    ip.Chunk,
	}
}

func (ip *InputParameters3D) EquationOfState() *hydro.EquationOfState {
	return hydro.NewEquationOfState(ip.Gamma).WithFloors(ip.DensityFloor, ip.PressureFloor)
}

/*
InitialCondition builds the initial state named by InitType. InitParams
overrides the defaults of each case:

	uniform: rho, vx, vy, vz, p
	sod:     rhoL, vxL, pL, rhoR, vxR, pR, axis
	blast:   rho, p, blastP, blastR
*/
func (ip *InputParameters3D) InitialCondition() (ic hydro.InitialCondition, err error) {
	var (
		it hydro.InitType
	)
	if it, err = hydro.NewInitType(ip.InitType); err != nil {
		return
	}
	param := func(name string, def float64) float64 {
		if val, ok := ip.InitParams[name]; ok {
			return val
		}
		return def
	}
	switch it {
	case hydro.SOD:
		axis := int(param("axis", 1))
		if axis < 1 || axis > 3 {
			err = fmt.Errorf("sod axis must be 1, 2 or 3, have %d", axis)
			return
		}
		ic = hydro.NewSodShockTube(axis)
		ic.Left = hydro.PrimitiveState{param("rhoL", ic.Left[0]), param("vxL", 0), 0, 0, param("pL", ic.Left[4])}
		ic.Right = hydro.PrimitiveState{param("rhoR", ic.Right[0]), param("vxR", 0), 0, 0, param("pR", ic.Right[4])}
	case hydro.BLAST:
		ic = hydro.NewBlastWave()
		ic.State[0] = param("rho", ic.State[0])
		ic.State[4] = param("p", ic.State[4])
		ic.BlastPressure = param("blastP", ic.BlastPressure)
		ic.BlastRadius = param("blastR", ic.BlastRadius)
	default:
		ic = hydro.NewUniform(hydro.PrimitiveState{
			param("rho", 1), param("vx", 0), param("vy", 0), param("vz", 0), param("p", 1)})
	}
	return
}

func (ip *InputParameters3D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	fmt.Printf("[%d,%d,%d]\t\t= NX1, NX2, NX3\n", ip.NX1, ip.NX2, ip.NX3)
	fmt.Printf("[%d]\t\t\t= Ghost Zones\n", ip.NGhost)
	fmt.Printf("[%d]\t\t\t= Threads (0 = all CPUs)\n", ip.Threads)
	fmt.Printf("[%s/%d]\t\t= Schedule/Chunk\n", ip.GetSchedule(), ip.Chunk)
	fmt.Printf("[%s]\t\t= InitType\n", ip.InitType)
	fmt.Printf("[%g,%g]\t\t= Density/Pressure Floors\n", ip.DensityFloor, ip.PressureFloor)
	keys := make([]string, len(ip.InitParams))
	i := 0
	for k := range ip.InitParams {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("InitParams[%s] = %v\n", key, ip.InitParams[key])
	}
}
