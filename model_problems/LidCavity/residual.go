package LidCavity

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/lidcavity/utils"
)

// Residual is the convergence record of one iteration. U, V and P are L2
// norms of the change over the step, D is the summed divergence of the new
// velocity field and Total is the largest of the four.
type Residual struct {
	Total, U, V, P, D float64
}

func (r Residual) Finite() bool {
	return utils.IsFinite(r.Total, r.U, r.V, r.P, r.D)
}

func (r Residual) String() string {
	return fmt.Sprintf("%11.4e%11.4e%11.4e%11.4e%11.4e", r.Total, r.U, r.V, r.P, r.D)
}

const (
	sumU = iota
	sumV
	sumP
	sumD
	numSums
)

// Monitor accumulates the residual sums row by row. Each row's partial sum
// lands in its own slot and the slots are added in row order afterwards, so
// the result is the same for any number of workers.
type Monitor struct {
	P       *Parameters
	Pt      Partition
	Sweeper utils.RowSweeper
	Comm    utils.Communicator
	rowSums [numSums][]float64
	sums    []float64
}

func NewMonitor(p *Parameters, pt Partition, sweeper utils.RowSweeper, comm utils.Communicator) (m *Monitor) {
	m = &Monitor{
		P:       p,
		Pt:      pt,
		Sweeper: sweeper,
		Comm:    comm,
		sums:    make([]float64, numSums),
	}
	for n := range m.rowSums {
		m.rowSums[n] = make([]float64, pt.Rows+2)
	}
	return
}

// LocalSums returns the raw sums over this partition's share of the residual
// range: squared changes of u, v, p and the divergence of the new velocity.
func (m *Monitor) LocalSums(u, v, p, un, vn, pn *utils.Field) (sums []float64) {
	var (
		N          = m.Pt.N
		hi         = m.Pt.ResidualHi()
		dtdx, dtdy = m.P.DtDx, m.P.DtDy
		rs         = m.rowSums
	)
	m.Sweeper.Sweep(1, hi+1, func(j int) {
		var (
			uC, unC = u.Row(j), un.Row(j)
			vC, vnC = v.Row(j), vn.Row(j)
			vnS     = vn.Row(j - 1)
			pC, pnC = p.Row(j), pn.Row(j)
		)
		var eu, ev, ep, ed float64
		for i := 1; i < N-1; i++ {
			du, dv, dp := unC[i]-uC[i], vnC[i]-vC[i], pnC[i]-pC[i]
			eu += du * du
			ev += dv * dv
			ep += dp * dp
			ed += (unC[i]-unC[i-1])*dtdx + (vnC[i]-vnS[i])*dtdy
		}
		rs[sumU][j], rs[sumV][j], rs[sumP][j], rs[sumD][j] = eu, ev, ep, ed
	})
	for n := range m.sums {
		m.sums[n] = 0
		if hi >= 1 {
			m.sums[n] = floats.Sum(rs[n][1 : hi+1])
		}
	}
	return m.sums
}

// Compute forms the residual record from the sums over all partitions.
// Every rank receives identical sums, so every rank reaches the same verdict.
func (m *Monitor) Compute(ctx context.Context, u, v, p, un, vn, pn *utils.Field) (r Residual, err error) {
	sums := m.LocalSums(u, v, p, un, vn, pn)
	if err = m.Comm.AllReduceSum(ctx, sums); err != nil {
		return
	}
	r = NewResidual(m.P, sums)
	return
}

func NewResidual(p *Parameters, sums []float64) (r Residual) {
	r.U = math.Sqrt(p.DtDxDy * sums[sumU])
	r.V = math.Sqrt(p.DtDxDy * sums[sumV])
	r.P = math.Sqrt(p.DtDxDy * sums[sumP])
	r.D = sums[sumD]
	// math.Max propagates NaN, so a diverged field always yields a NaN total
	r.Total = math.Max(math.Max(r.U, r.V), math.Max(r.P, r.D))
	return
}
