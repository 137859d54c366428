package LidCavity

import (
	"github.com/notargets/lidcavity/types"
	"github.com/notargets/lidcavity/utils"
)

/*
	Wall values are applied top, left, bottom, right. Each wall writes the
	whole line of samples on or next to it, so a later wall overwrites the
	corner values of an earlier one. The order is part of the result: changing
	it changes the corner samples, and with them the stencils that read them.

	Samples that lie on a wall take the wall value directly. Samples half a
	cell outside the wall are ghosts, set so the average across the wall
	equals the wall value.
*/

// SetVelocityBC overwrites every u and v sample on or outside the physical
// walls of the partition. Rows shared with neighbors are left to the halo
// exchange, except for their wall columns.
func SetVelocityBC(u, v *utils.Field, pt Partition, ubc, vbc [types.NumWalls]float64) {
	var (
		N = pt.N
	)
	for _, w := range types.Walls {
		switch w {
		case types.WallTop:
			if !pt.Last() {
				continue
			}
			var (
				gu, iu = u.Row(pt.Rows + 1), u.Row(pt.Rows)
				wv     = v.Row(pt.VRows() - 1)
			)
			for i := 0; i < N; i++ {
				gu[i] = 2.*ubc[w] - iu[i]
			}
			for i := 0; i <= N; i++ {
				wv[i] = vbc[w]
			}
		case types.WallLeft:
			for r := 0; r < u.Ny; r++ {
				u.Row(r)[0] = ubc[w]
			}
			for r := 0; r < v.Ny; r++ {
				vr := v.Row(r)
				vr[0] = 2.*vbc[w] - vr[1]
			}
		case types.WallBottom:
			if !pt.First() {
				continue
			}
			var (
				gu, iu = u.Row(0), u.Row(1)
				wv     = v.Row(0)
			)
			for i := 0; i < N; i++ {
				gu[i] = 2.*ubc[w] - iu[i]
			}
			for i := 0; i <= N; i++ {
				wv[i] = vbc[w]
			}
		case types.WallRight:
			for r := 0; r < u.Ny; r++ {
				u.Row(r)[N-1] = ubc[w]
			}
			for r := 0; r < v.Ny; r++ {
				vr := v.Row(r)
				vr[N] = 2.*vbc[w] - vr[N-1]
			}
		}
	}
}

// SetPressureBC sets each ghost to its nearest interior sample plus the
// prescribed outward normal gradient times the spacing; a zero gradient
// copies the interior value.
func SetPressureBC(p *utils.Field, pt Partition, pbc [types.NumWalls]float64, dx, dy float64) {
	var (
		N = pt.N
	)
	for _, w := range types.Walls {
		switch w {
		case types.WallTop:
			if !pt.Last() {
				continue
			}
			gp, ip := p.Row(pt.Rows+1), p.Row(pt.Rows)
			for i := 0; i <= N; i++ {
				gp[i] = ip[i] + dy*pbc[w]
			}
		case types.WallLeft:
			for r := 0; r < p.Ny; r++ {
				pr := p.Row(r)
				pr[0] = pr[1] + dx*pbc[w]
			}
		case types.WallBottom:
			if !pt.First() {
				continue
			}
			gp, ip := p.Row(0), p.Row(1)
			for i := 0; i <= N; i++ {
				gp[i] = ip[i] + dy*pbc[w]
			}
		case types.WallRight:
			for r := 0; r < p.Ny; r++ {
				pr := p.Row(r)
				pr[N] = pr[N-1] + dx*pbc[w]
			}
		}
	}
}

// SetInitialCondition starts the lid moving: the last interior row of u and
// the ghost row above it take the lid velocity on interior columns.
func SetInitialCondition(u *utils.Field, pt Partition, ubc [types.NumWalls]float64) {
	if !pt.Last() {
		return
	}
	var (
		lid    = ubc[types.WallTop]
		gu, iu = u.Row(pt.Rows + 1), u.Row(pt.Rows)
	)
	for i := 1; i < pt.N-1; i++ {
		gu[i] = lid
		iu[i] = lid
	}
}
