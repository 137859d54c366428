package LidCavity

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/lidcavity/utils"
)

func TestNewResidual(t *testing.T) {
	par := NewParameters(100, 17)
	par.DtDxDy = 1
	{
		r := NewResidual(par, []float64{4, 9, 16, -1})
		assert.Equal(t, Residual{Total: 4, U: 2, V: 3, P: 4, D: -1}, r)
		assert.True(t, r.Finite())
	}
	{ // The divergence sum can set the total
		r := NewResidual(par, []float64{0, 0, 0, 0.5})
		assert.Equal(t, 0.5, r.Total)
	}
	{ // Non-finite sums always give a non-finite total
		r := NewResidual(par, []float64{4, 9, 16, math.NaN()})
		assert.True(t, math.IsNaN(r.Total))
		assert.False(t, r.Finite())
		r = NewResidual(par, []float64{math.Inf(1), 0, 0, 0})
		assert.True(t, math.IsInf(r.Total, 1))
		assert.False(t, r.Finite())
		r = NewResidual(par, []float64{0, 0, 0, math.Inf(-1)})
		assert.False(t, r.Finite())
	}
}

func TestMonitor(t *testing.T) {
	var (
		N     = 9
		pt, f = serialFields(t, N)
		par   = NewParameters(100, N)
		comm  = utils.NewChannelWorld(1).Comm(0)
		ctx   = context.Background()
	)
	u, v, p := f.U.Current(), f.V.Current(), f.P.Current()
	un, vn, pn := f.U.Next(), f.V.Next(), f.P.Next()
	{ // Uniform changes over the residual range i, j in [1, N-2]
		un.Fill(1)
		vn.Fill(2)
		pn.Fill(-3)
		m := NewMonitor(par, pt, utils.RowSweeper{}, comm)
		r, err := m.Compute(ctx, u, v, p, un, vn, pn)
		assert.NoError(t, err)
		count := float64((N - 2) * (N - 2))
		assert.InDelta(t, math.Sqrt(par.DtDxDy*count), r.U, 1.e-15)
		assert.InDelta(t, math.Sqrt(par.DtDxDy*4*count), r.V, 1.e-15)
		assert.InDelta(t, math.Sqrt(par.DtDxDy*9*count), r.P, 1.e-15)
		assert.Equal(t, 0., r.D)
		assert.Equal(t, r.P, r.Total)
	}
	{ // The divergence sum is signed and telescopes along rows and columns
		un.Fill(0)
		vn.Fill(0)
		fillField(un, func(i, j int) float64 { return float64(i) })
		m := NewMonitor(par, pt, utils.RowSweeper{}, comm)
		r, err := m.Compute(ctx, un, vn, pn, un, vn, pn)
		assert.NoError(t, err)
		assert.Equal(t, 0., r.U)
		assert.InDelta(t, float64(N-2)*float64(N-2)*par.DtDx, r.D, 1.e-12)
		fillField(un, func(i, j int) float64 { return -float64(i) })
		r, err = m.Compute(ctx, un, vn, pn, un, vn, pn)
		assert.NoError(t, err)
		assert.InDelta(t, -float64(N-2)*float64(N-2)*par.DtDx, r.D, 1.e-12)
	}
	{ // Identical bits for any number of workers
		smoothFields(u, v, p)
		smoothFields(pn, un, vn)
		var ref []float64
		for n, workers := range []int{1, 3, 8} {
			m := NewMonitor(par, pt, utils.RowSweeper{Workers: workers}, comm)
			sums := append([]float64(nil), m.LocalSums(u, v, p, un, vn, pn)...)
			if n == 0 {
				ref = sums
				continue
			}
			assert.Equal(t, ref, sums)
		}
	}
}
