package LidCavity

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/lidcavity/utils"
)

// Collocated is the solution averaged onto the N x N lattice of grid points,
// x_i = i*dx and y_j = j*dy, which is what gets written and plotted.
type Collocated struct {
	N       int
	X, Y    []float64
	U, V, P *utils.Field
	buffers utils.BufferSet
}

// CellCentered averages the staggered samples onto the grid points: u from
// the faces above and below, v from the faces left and right, p from the
// four surrounding cell centers.
func CellCentered(sol *Solution) (c *Collocated, err error) {
	var (
		N = sol.N
	)
	c = &Collocated{
		N: N,
		X: floats.Span(make([]float64, N), 0, LidLength),
		Y: floats.Span(make([]float64, N), 0, LidLength),
	}
	if c.U, err = c.buffers.Allocate("ug", N, N); err != nil {
		c.Release()
		return nil, err
	}
	if c.V, err = c.buffers.Allocate("vg", N, N); err != nil {
		c.Release()
		return nil, err
	}
	if c.P, err = c.buffers.Allocate("pg", N, N); err != nil {
		c.Release()
		return nil, err
	}
	for j := 0; j < N; j++ {
		var (
			uC, uN = sol.U.Row(j), sol.U.Row(j + 1)
			vC     = sol.V.Row(j)
			pC, pN = sol.P.Row(j), sol.P.Row(j + 1)
			ug     = c.U.Row(j)
			vg     = c.V.Row(j)
			pg     = c.P.Row(j)
		)
		for i := 0; i < N; i++ {
			ug[i] = 0.5 * (uN[i] + uC[i])
			vg[i] = 0.5 * (vC[i+1] + vC[i])
			pg[i] = 0.25 * (pC[i] + pC[i+1] + pN[i] + pN[i+1])
		}
	}
	return
}

func (c *Collocated) Release() { c.buffers.Release() }

// centerWeights locates the middle of [0, N-1] between two lattice lines.
func centerWeights(N int) (i0, i1 int, w float64) {
	xi := 0.5 * float64(N-1)
	i0 = int(math.Floor(xi))
	i1 = min(i0+1, N-1)
	w = xi - float64(i0)
	return
}

// CenterlineU returns u along the vertical line x = 0.5, from bottom to top.
func (c *Collocated) CenterlineU() (y, u []float64) {
	i0, i1, w := centerWeights(c.N)
	y = append([]float64(nil), c.Y...)
	u = make([]float64, c.N)
	for j := range u {
		row := c.U.Row(j)
		u[j] = (1-w)*row[i0] + w*row[i1]
	}
	return
}

// CenterlineV returns v along the horizontal line y = 0.5, from left to right.
func (c *Collocated) CenterlineV() (x, v []float64) {
	j0, j1, w := centerWeights(c.N)
	x = append([]float64(nil), c.X...)
	v = make([]float64, c.N)
	lo, hi := c.V.Row(j0), c.V.Row(j1)
	for i := range v {
		v[i] = (1-w)*lo[i] + w*hi[i]
	}
	return
}
