package ghia_benchmark

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

/*
	Centerline velocities of the lid driven cavity from
	U. Ghia, K. N. Ghia and C. T. Shin, "High-Re solutions for incompressible
	flow using the Navier-Stokes equations and a multigrid method",
	J. Comput. Phys. 48 (1982), tables I and II.

	U is sampled along the vertical centerline at heights Y, V along the
	horizontal centerline at positions X. All coordinates ascend.
*/
type Profile struct {
	Re   float64
	Y, U []float64
	X, V []float64
}

var (
	ghiaY = []float64{0.0000, 0.0547, 0.0625, 0.0703, 0.1016, 0.1719, 0.2813, 0.4531, 0.5000,
		0.6172, 0.7344, 0.8516, 0.9531, 0.9609, 0.9688, 0.9766, 1.0000}
	ghiaX = []float64{0.0000, 0.0625, 0.0703, 0.0781, 0.0938, 0.1563, 0.2266, 0.2344, 0.5000,
		0.8047, 0.8594, 0.9063, 0.9453, 0.9531, 0.9609, 0.9688, 1.0000}
	profiles = []Profile{
		{
			Re: 100,
			Y:  ghiaY,
			U: []float64{0, -0.03717, -0.04192, -0.04775, -0.06434, -0.10150, -0.15662, -0.21090,
				-0.20581, -0.13641, 0.00332, 0.23151, 0.68717, 0.73722, 0.78871, 0.84123, 1},
			X: ghiaX,
			V: []float64{0, 0.09233, 0.10091, 0.10890, 0.12317, 0.16077, 0.17507, 0.17527,
				0.05454, -0.24533, -0.22445, -0.16914, -0.10313, -0.08864, -0.07391, -0.05906, 0},
		},
		{
			Re: 1000,
			Y:  ghiaY,
			U: []float64{0, -0.18109, -0.20196, -0.22220, -0.29730, -0.38289, -0.27805, -0.10648,
				-0.06080, 0.05702, 0.18719, 0.33304, 0.46604, 0.51117, 0.57492, 0.65928, 1},
			X: ghiaX,
			V: []float64{0, 0.27485, 0.29012, 0.30353, 0.32627, 0.37095, 0.33075, 0.32235,
				0.02526, -0.31966, -0.42665, -0.51550, -0.39188, -0.33714, -0.27669, -0.21388, 0},
		},
	}
)

// Lookup returns the tabulated profile for Re, if there is one.
func Lookup(Re float64) (p Profile, ok bool) {
	for _, p = range profiles {
		if p.Re == Re {
			return p, true
		}
	}
	return Profile{}, false
}

// Available lists the Reynolds numbers with tabulated data.
func Available() (Re []float64) {
	for _, p := range profiles {
		Re = append(Re, p.Re)
	}
	return
}

// Interpolate samples the piecewise linear curve through (xs, ys) at each of
// at. xs must ascend and the points of at must lie within it.
func Interpolate(xs, ys, at []float64) (vals []float64, err error) {
	var pl interp.PiecewiseLinear
	if err = pl.Fit(xs, ys); err != nil {
		return
	}
	lo, hi := xs[0], xs[len(xs)-1]
	vals = make([]float64, len(at))
	for n, x := range at {
		if x < lo || x > hi {
			err = fmt.Errorf("%v lies outside [%v,%v]", x, lo, hi)
			return
		}
		vals[n] = pl.Predict(x)
	}
	return
}

// Deviation is the largest absolute difference between a computed profile
// and the tabulated one, taken at the tabulated stations.
type Deviation struct {
	Re         float64
	MaxU, MaxV float64
	AtY, AtX   float64 // Where the maxima occur
}

func (d Deviation) String() string {
	return fmt.Sprintf("Re = %g: max |u - u_ghia| = %8.5f at y = %6.4f, max |v - v_ghia| = %8.5f at x = %6.4f",
		d.Re, d.MaxU, d.AtY, d.MaxV, d.AtX)
}

// Compare measures the computed centerline profiles u(y) and v(x) against p.
func Compare(p Profile, y, u, x, v []float64) (d Deviation, err error) {
	var (
		uc, vc []float64
	)
	if uc, err = Interpolate(y, u, p.Y); err != nil {
		return d, fmt.Errorf("u centerline: %w", err)
	}
	if vc, err = Interpolate(x, v, p.X); err != nil {
		return d, fmt.Errorf("v centerline: %w", err)
	}
	d.Re = p.Re
	for n := range uc {
		if diff := math.Abs(uc[n] - p.U[n]); diff > d.MaxU {
			d.MaxU, d.AtY = diff, p.Y[n]
		}
	}
	for n := range vc {
		if diff := math.Abs(vc[n] - p.V[n]); diff > d.MaxV {
			d.MaxV, d.AtX = diff, p.X[n]
		}
	}
	return
}
