package LidCavity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/lidcavity/types"
	"github.com/notargets/lidcavity/utils"
)

func fillField(f *utils.Field, fn func(i, j int) float64) {
	for j := 0; j < f.Ny; j++ {
		row := f.Row(j)
		for i := range row {
			row[i] = fn(i, j)
		}
	}
}

func cloneData(f *utils.Field) []float64 {
	return append([]float64(nil), f.Data()...)
}

func serialFields(t *testing.T, N int) (pt Partition, f *Fields) {
	pts, err := NewPartitions(1, N)
	require.NoError(t, err)
	pt = pts[0]
	f, err = NewFields(pt)
	require.NoError(t, err)
	t.Cleanup(f.Release)
	return
}

func TestVelocityBC(t *testing.T) {
	var (
		N              = 6
		pt, f          = serialFields(t, N)
		u, v           = f.U.Current(), f.V.Current()
		ubc            = [types.NumWalls]float64{1, 2, 3, 4} // top, left, bottom, right
		vbc            = [types.NumWalls]float64{5, 6, 7, 8}
		uT, uL, uB, uR = ubc[0], ubc[1], ubc[2], ubc[3]
		vT, vL, vB, vR = vbc[0], vbc[1], vbc[2], vbc[3]
		top            = N // Top ghost row of u, top wall row of v is N-1
		interior       = func(i, j int) float64 { return float64(i) + 0.1*float64(j) }
	)
	fillField(u, interior)
	fillField(v, interior)
	SetVelocityBC(u, v, pt, ubc, vbc)
	{ // Walls and ghosts away from the corners
		for j := 1; j < N; j++ {
			assert.Equal(t, uL, u.At(0, j))
			assert.Equal(t, uR, u.At(N-1, j))
		}
		for i := 1; i < N-1; i++ {
			assert.Equal(t, 2*uB-u.At(i, 1), u.At(i, 0))
			assert.Equal(t, 2*uT-u.At(i, N-1), u.At(i, top))
		}
		for i := 1; i < N; i++ {
			assert.Equal(t, vB, v.At(i, 0))
			assert.Equal(t, vT, v.At(i, N-1))
		}
		for j := 1; j < N-1; j++ {
			assert.Equal(t, 2*vL-v.At(1, j), v.At(0, j))
			assert.Equal(t, 2*vR-v.At(N-1, j), v.At(N, j))
		}
	}
	{ // Corners follow the top, left, bottom, right order
		assert.Equal(t, uL, u.At(0, top))
		assert.Equal(t, 2*uB-uL, u.At(0, 0))
		assert.Equal(t, uR, u.At(N-1, 0))
		assert.Equal(t, uR, u.At(N-1, top))

		assert.Equal(t, vB, v.At(0, 0))
		assert.Equal(t, 2*vR-vB, v.At(N, 0))
		assert.Equal(t, 2*vL-vT, v.At(0, N-1))
		assert.Equal(t, 2*vR-vT, v.At(N, N-1))
	}
	{ // Interior samples are untouched
		for j := 1; j < N; j++ {
			for i := 1; i < N-1; i++ {
				assert.Equal(t, interior(i, j), u.At(i, j))
			}
		}
		for j := 1; j < N-1; j++ {
			for i := 1; i < N; i++ {
				assert.Equal(t, interior(i, j), v.At(i, j))
			}
		}
	}
	{ // Applying twice changes nothing
		u1, v1 := cloneData(u), cloneData(v)
		SetVelocityBC(u, v, pt, ubc, vbc)
		assert.Equal(t, u1, u.Data())
		assert.Equal(t, v1, v.Data())
	}
}

func TestPressureBC(t *testing.T) {
	var (
		N        = 6
		pt, f    = serialFields(t, N)
		p        = f.P.Current()
		dx, dy   = 0.25, 0.5
		interior = func(i, j int) float64 { return float64(i*i) + 3*float64(j) }
	)
	{ // Zero gradient copies the nearest interior sample, corners take the diagonal
		fillField(p, interior)
		SetPressureBC(p, pt, [types.NumWalls]float64{}, dx, dy)
		for j := 1; j < N; j++ {
			assert.Equal(t, p.At(1, j), p.At(0, j))
			assert.Equal(t, p.At(N-1, j), p.At(N, j))
		}
		for i := 1; i < N; i++ {
			assert.Equal(t, p.At(i, 1), p.At(i, 0))
			assert.Equal(t, p.At(i, N-1), p.At(i, N))
		}
		assert.Equal(t, interior(1, 1), p.At(0, 0))
		assert.Equal(t, interior(N-1, 1), p.At(N, 0))
		assert.Equal(t, interior(1, N-1), p.At(0, N))
		assert.Equal(t, interior(N-1, N-1), p.At(N, N))
	}
	{ // Prescribed gradients
		pbc := [types.NumWalls]float64{1, 2, 3, 4}
		fillField(p, interior)
		SetPressureBC(p, pt, pbc, dx, dy)
		for j := 1; j < N; j++ {
			assert.Equal(t, p.At(1, j)+dx*pbc[types.WallLeft], p.At(0, j))
			assert.Equal(t, p.At(N-1, j)+dx*pbc[types.WallRight], p.At(N, j))
		}
		for i := 1; i < N; i++ {
			assert.Equal(t, p.At(i, 1)+dy*pbc[types.WallBottom], p.At(i, 0))
			assert.Equal(t, p.At(i, N-1)+dy*pbc[types.WallTop], p.At(i, N))
		}
		p1 := cloneData(p)
		SetPressureBC(p, pt, pbc, dx, dy)
		assert.Equal(t, p1, p.Data())
	}
}

func TestInitialCondition(t *testing.T) {
	N := 8
	{
		pt, f := serialFields(t, N)
		u := f.U.Current()
		SetInitialCondition(u, pt, [types.NumWalls]float64{1, 0, 0, 0})
		for i := 0; i < N; i++ {
			want := 1.
			if i == 0 || i == N-1 {
				want = 0
			}
			assert.Equal(t, want, u.At(i, N))
			assert.Equal(t, want, u.At(i, N-1))
			assert.Equal(t, 0., u.At(i, N-2))
		}
	}
	{ // Only the top band holds the lid
		pts, err := NewPartitions(3, N)
		require.NoError(t, err)
		for _, pt := range pts {
			f, err := NewFields(pt)
			require.NoError(t, err)
			u := f.U.Current()
			SetInitialCondition(u, pt, [types.NumWalls]float64{1, 0, 0, 0})
			sum := 0.
			for _, val := range u.Data() {
				sum += val
			}
			if pt.Last() {
				assert.Equal(t, float64(2*(N-2)), sum)
			} else {
				assert.Equal(t, 0., sum)
			}
			f.Release()
		}
	}
}
