package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypes(t *testing.T) {
	{ // Application order is pinned: top, left, bottom, right
		assert.Equal(t, [NumWalls]Wall{0, 1, 2, 3}, Walls)
		assert.Equal(t, "Top", Walls[0].String())
		assert.Equal(t, "Right", Walls[3].String())
		assert.Equal(t, "Wall(9)", Wall(9).String())
	}
	{ // Wall names
		for name, want := range map[string]Wall{
			"top": WallTop, " Lid ": WallTop, "WEST": WallLeft,
			"bottom": WallBottom, "east": WallRight,
		} {
			w, err := ParseWall(name)
			assert.NoError(t, err)
			assert.Equal(t, want, w)
		}
		_, err := ParseWall("ceiling")
		assert.Error(t, err)
	}
	{ // BC kinds
		assert.Equal(t, "Dirichlet", BC_Dirichlet.String())
		assert.Equal(t, "Neumann", BC_Neuman.String())
		assert.Equal(t, "Partition", BC_Partition.String())
		assert.Equal(t, "None", BC_None.String())
	}
}
