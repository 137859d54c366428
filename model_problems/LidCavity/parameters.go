package LidCavity

import (
	"fmt"
	"math"

	"github.com/notargets/lidcavity/InputParameters"
	"github.com/notargets/lidcavity/types"
)

const (
	DefaultGridSize      = 128
	DefaultReynolds      = 100.
	DefaultTolerance     = 1.e-7
	DefaultMaxIterations = 1000000
	LidLength            = 1.
	LidVelocity          = 1.
)

// Parameters is fixed for a run. The derived quantities (Dx through DtDxDy)
// are computed once by Derive and never change while iterating.
type Parameters struct {
	N                    int // Number of grid points in each direction
	Re, CFL, C2          float64
	Tolerance            float64
	MaxIterations        int
	UBC, VBC, PBC        [types.NumWalls]float64 // Indexed by types.Wall
	Dx, Dy, Dt, Nu       float64
	DtDx, DtDy           float64
	DtDxx, DtDyy, DtDxDy float64
}

// StabilityCoefficients picks the Courant number and artificial sound speed
// squared that are known to relax stably for a given Reynolds number.
func StabilityCoefficients(Re float64) (cfl, c2 float64) {
	switch {
	case Re < 500:
		cfl, c2 = 0.15, 5.0
	case Re < 2000:
		cfl, c2 = 0.20, 5.8
	default:
		cfl, c2 = 0.05, 5.8
	}
	return
}

// NewParameters sets up the classic cavity: unit lid velocity on the top
// wall, no-slip everywhere else and zero pressure gradient on all walls.
func NewParameters(Re float64, N int) (p *Parameters) {
	p = &Parameters{
		N:             N,
		Re:            Re,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
	p.CFL, p.C2 = StabilityCoefficients(Re)
	p.UBC[types.WallTop] = LidVelocity
	p.Derive()
	return
}

// NewParametersFromInput starts from NewParameters and overrides anything the
// input file sets. A non-zero Re in the file only applies when Re is zero.
func NewParametersFromInput(Re float64, N int, ip *InputParameters.InputParametersCavity) (p *Parameters) {
	if Re == 0 {
		Re = ip.Re
	}
	if Re == 0 {
		Re = DefaultReynolds
	}
	p = NewParameters(Re, N)
	if ip.CFL != 0 {
		p.CFL = ip.CFL
	}
	if ip.C2 != 0 {
		p.C2 = ip.C2
	}
	if ip.Tolerance != 0 {
		p.Tolerance = ip.Tolerance
	}
	if ip.MaxIterations != 0 {
		p.MaxIterations = ip.MaxIterations
	}
	p.UBC = ip.WallValues("u", p.UBC)
	p.VBC = ip.WallValues("v", p.VBC)
	p.PBC = ip.WallValues("p", p.PBC)
	p.Derive()
	return
}

// ReferenceVelocity scales the time step and viscosity. It is the lid speed,
// or 1 when the lid is at rest so a quiescent cavity stays well defined.
func (p *Parameters) ReferenceVelocity() (uref float64) {
	if uref = math.Abs(p.UBC[types.WallTop]); uref == 0 {
		uref = 1
	}
	return
}

func (p *Parameters) Derive() {
	var (
		uref = p.ReferenceVelocity()
	)
	if p.N > 1 {
		p.Dx = LidLength / float64(p.N-1)
	}
	p.Dy = p.Dx
	p.Dt = p.CFL * math.Min(p.Dx, p.Dy) / uref
	p.Nu = uref * LidLength / p.Re
	p.DtDx = p.Dt / p.Dx
	p.DtDy = p.Dt / p.Dy
	p.DtDxx = p.Dt / (p.Dx * p.Dx)
	p.DtDyy = p.Dt / (p.Dy * p.Dy)
	p.DtDxDy = p.Dt * p.Dx * p.Dy
}

func (p *Parameters) Validate() (err error) {
	switch {
	case p.N < 4:
		err = fmt.Errorf("grid size %d is too small, need at least 4 points per side", p.N)
	case !(p.Re > 0) || math.IsInf(p.Re, 0):
		err = fmt.Errorf("Reynolds number must be positive and finite, have %v", p.Re)
	case !(p.CFL > 0):
		err = fmt.Errorf("CFL must be positive, have %v", p.CFL)
	case !(p.C2 > 0):
		err = fmt.Errorf("artificial compressibility coefficient must be positive, have %v", p.C2)
	case !(p.Tolerance > 0):
		err = fmt.Errorf("tolerance must be positive, have %v", p.Tolerance)
	case p.MaxIterations < 1:
		err = fmt.Errorf("max iterations must be at least 1, have %d", p.MaxIterations)
	}
	return
}

func (p *Parameters) Print() {
	fmt.Printf("Lid Driven Cavity, Artificial Compressibility on a Staggered Grid\n")
	fmt.Printf("Re number is set to %d\n", int(p.Re))
	fmt.Printf("Grid size = %d x %d, dx = %8.5f, dy = %8.5f\n", p.N, p.N, p.Dx, p.Dy)
	fmt.Printf("CFL = %6.3f, c2 = %6.3f, dt = %10.3e, nu = %10.3e\n", p.CFL, p.C2, p.Dt, p.Nu)
	fmt.Printf("Tolerance = %8.2e, Max Iterations = %d\n", p.Tolerance, p.MaxIterations)
	for _, w := range types.Walls {
		fmt.Printf("%-6s u = %6.3f, v = %6.3f (%s), dp/dn = %6.3f (%s)\n",
			w, p.UBC[w], p.VBC[w], types.BC_Dirichlet, p.PBC[w], types.BC_Neuman)
	}
}
