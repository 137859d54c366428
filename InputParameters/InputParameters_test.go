package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/lidcavity/types"
)

func TestInputParameters(t *testing.T) {
	{ // Full file
		fileInput := []byte(`
Title: Lid Driven Cavity
Re: 1000
CFL: 0.2
C2: 5.8
Tolerance: 1.e-6
MaxIterations: 50000
BCs:
  top:
     u: 1.0
  left:
     v: 0.5
  bottom:
     p: 0.0
`)
		var ip InputParametersCavity
		require.NoError(t, ip.Parse(fileInput))
		assert.Equal(t, "Lid Driven Cavity", ip.Title)
		assert.Equal(t, 1000., ip.Re)
		assert.Equal(t, 0.2, ip.CFL)
		assert.Equal(t, 5.8, ip.C2)
		assert.Equal(t, 1.e-6, ip.Tolerance)
		assert.Equal(t, 50000, ip.MaxIterations)
		assert.Equal(t, 1.0, ip.BCs["top"]["u"])
		ip.Print()

		defaults := [types.NumWalls]float64{9, 9, 9, 9}
		assert.Equal(t, [types.NumWalls]float64{1, 9, 9, 9}, ip.WallValues("u", defaults))
		assert.Equal(t, [types.NumWalls]float64{9, 0.5, 9, 9}, ip.WallValues("v", defaults))
		assert.Equal(t, [types.NumWalls]float64{9, 9, 0, 9}, ip.WallValues("p", defaults))
	}
	{ // Empty file leaves everything at zero
		var ip InputParametersCavity
		require.NoError(t, ip.Parse([]byte(`Title: empty`)))
		assert.Zero(t, ip.Re)
		assert.Nil(t, ip.BCs)
	}
	{ // Bad wall and component names are rejected
		var ip InputParametersCavity
		assert.Error(t, ip.Parse([]byte("BCs:\n  ceiling:\n    u: 1\n")))
		ip = InputParametersCavity{}
		assert.Error(t, ip.Parse([]byte("BCs:\n  top:\n    w: 1\n")))
	}
	{ // One wall under two names is ambiguous
		for _, in := range []string{
			"BCs:\n  top:\n    u: 1\n  lid:\n    u: 2\n",
			"BCs:\n  left:\n    v: 1\n  West:\n    p: 0\n",
		} {
			var ip InputParametersCavity
			err := ip.Parse([]byte(in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "named twice")
		}
		var ip InputParametersCavity
		require.NoError(t, ip.Parse([]byte("BCs:\n  lid:\n    u: 2\n  east:\n    v: 1\n")))
		assert.Equal(t, [types.NumWalls]float64{2, 0, 0, 0}, ip.WallValues("u", [types.NumWalls]float64{}))
	}
}
