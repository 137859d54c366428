package LidCavity

import (
	"github.com/notargets/lidcavity/utils"
)

/*
	One pseudo-time step of the artificial compressibility equations

		P_t + c^2 div[u] = 0
		u_t + u . grad[u] = - grad[P] + nu div[grad[u]]

	discretized on the staggered grid with second order central differences
	and the convective terms in conservative form with face averaged
	velocities. The sweeps only write interior samples; the boundary
	enforcer owns everything else.
*/
type Stepper struct {
	P       *Parameters
	Pt      Partition
	Sweeper utils.RowSweeper
}

// MomentumX computes un from the old u, v and p.
func (st *Stepper) MomentumX(u, v, p, un *utils.Field) {
	var (
		N                = st.Pt.N
		dtdx, dtdy       = st.P.DtDx, st.P.DtDy
		dtdxx, dtdyy, nu = st.P.DtDxx, st.P.DtDyy, st.P.Nu
		qdtdx, qdtdy     = 0.25 * dtdx, 0.25 * dtdy
	)
	st.Sweeper.Sweep(1, st.Pt.Rows+1, func(j int) {
		var (
			uS, uC, uN = u.Row(j - 1), u.Row(j), u.Row(j + 1)
			vS, vC     = v.Row(j - 1), v.Row(j)
			pC         = p.Row(j)
			out        = un.Row(j)
		)
		for i := 1; i < N-1; i++ {
			ue, uw := uC[i+1]+uC[i], uC[i]+uC[i-1]
			out[i] = uC[i] -
				qdtdx*(ue*ue-uw*uw) -
				qdtdy*((uN[i]+uC[i])*(vC[i+1]+vC[i])-(uC[i]+uS[i])*(vS[i+1]+vS[i])) -
				dtdx*(pC[i+1]-pC[i]) +
				nu*(dtdxx*(uC[i+1]-2.*uC[i]+uC[i-1])+dtdyy*(uN[i]-2.*uC[i]+uS[i]))
		}
	})
}

// MomentumY computes vn from the old u, v and p.
func (st *Stepper) MomentumY(u, v, p, vn *utils.Field) {
	var (
		N                = st.Pt.N
		dtdx, dtdy       = st.P.DtDx, st.P.DtDy
		dtdxx, dtdyy, nu = st.P.DtDxx, st.P.DtDyy, st.P.Nu
		qdtdx, qdtdy     = 0.25 * dtdx, 0.25 * dtdy
	)
	st.Sweeper.Sweep(1, st.Pt.VInteriorHi()+1, func(j int) {
		var (
			uC, uN     = u.Row(j), u.Row(j + 1)
			vS, vC, vN = v.Row(j - 1), v.Row(j), v.Row(j + 1)
			pC, pN     = p.Row(j), p.Row(j + 1)
			out        = vn.Row(j)
		)
		for i := 1; i < N; i++ {
			vt, vb := vN[i]+vC[i], vC[i]+vS[i]
			out[i] = vC[i] -
				qdtdx*((uN[i]+uC[i])*(vC[i+1]+vC[i])-(uN[i-1]+uC[i-1])*(vC[i]+vC[i-1])) -
				qdtdy*(vt*vt-vb*vb) -
				dtdy*(pN[i]-pC[i]) +
				nu*(dtdxx*(vC[i+1]-2.*vC[i]+vC[i-1])+dtdyy*(vN[i]-2.*vC[i]+vS[i]))
		}
	})
}

// Continuity computes pn from the old p and the new velocities un, vn, which
// must already carry their boundary and halo values.
func (st *Stepper) Continuity(p, un, vn, pn *utils.Field) {
	var (
		N          = st.Pt.N
		dtdx, dtdy = st.P.DtDx, st.P.DtDy
		c2         = st.P.C2
	)
	st.Sweeper.Sweep(1, st.Pt.Rows+1, func(j int) {
		var (
			pC  = p.Row(j)
			unC = un.Row(j)
			vnS = vn.Row(j - 1)
			vnC = vn.Row(j)
			out = pn.Row(j)
		)
		for i := 1; i < N; i++ {
			out[i] = pC[i] - c2*((unC[i]-unC[i-1])*dtdx+(vnC[i]-vnS[i])*dtdy)
		}
	})
}
