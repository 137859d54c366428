package LidCavity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/lidcavity/types"
	"github.com/notargets/lidcavity/utils"
)

func TestPartitions(t *testing.T) {
	N := 17
	for size := 1; size < N; size++ {
		pts, err := NewPartitions(size, N)
		require.NoError(t, err)
		require.Equal(t, size, len(pts))
		next := 1
		for _, pt := range pts {
			assert.Equal(t, next, pt.JLo)
			assert.Equal(t, pt.JHi-pt.JLo+1, pt.Rows)
			assert.GreaterOrEqual(t, pt.Rows, 1)
			next = pt.JHi + 1
			assert.Equal(t, pt.JLo, pt.Global(1))
			assert.Equal(t, 1, pt.Local(pt.JLo))
			assert.Equal(t, pt.Rows+2, pt.URows())
			assert.Equal(t, pt.Rows+2, pt.PRows())
			if pt.Last() {
				assert.Equal(t, utils.NoRank, pt.Next)
				assert.Equal(t, pt.Rows+1, pt.VRows())
				assert.Equal(t, pt.Rows-1, pt.ResidualHi())
				assert.Equal(t, types.BC_Dirichlet, pt.TopBC())
			} else {
				assert.Equal(t, pt.Rank+1, pt.Next)
				assert.Equal(t, pt.Rows+2, pt.VRows())
				assert.Equal(t, pt.Rows, pt.ResidualHi())
				assert.Equal(t, types.BC_Partition, pt.TopBC())
			}
			if pt.First() {
				assert.Equal(t, utils.NoRank, pt.Prev)
				assert.Equal(t, types.BC_Dirichlet, pt.BottomBC())
			} else {
				assert.Equal(t, pt.Rank-1, pt.Prev)
			}
		}
		assert.Equal(t, N, next)
	}
	_, err := NewPartitions(0, N)
	assert.Error(t, err)
	_, err = NewPartitions(N, N)
	assert.Error(t, err)

	pts, _ := NewPartitions(3, 17)
	assert.Equal(t, "rank 1/3 rows [7,11] bottom Partition, top Partition", pts[1].String())
}
