package types

import (
	"fmt"
	"strings"
)

type Wall uint8

const (
	WallTop Wall = iota
	WallLeft
	WallBottom
	WallRight
	NumWalls
)

// Walls is the order in which wall values are applied. Later walls overwrite
// the corner values written by earlier ones.
var Walls = [NumWalls]Wall{WallTop, WallLeft, WallBottom, WallRight}

func (w Wall) String() string {
	switch w {
	case WallTop:
		return "Top"
	case WallLeft:
		return "Left"
	case WallBottom:
		return "Bottom"
	case WallRight:
		return "Right"
	}
	return fmt.Sprintf("Wall(%d)", uint8(w))
}

type BCFLAG uint8

const (
	BC_None BCFLAG = iota
	BC_Dirichlet
	BC_Neuman
	BC_Partition // ghost row owned by a neighboring partition
)

func (bc BCFLAG) String() string {
	switch bc {
	case BC_Dirichlet:
		return "Dirichlet"
	case BC_Neuman:
		return "Neumann"
	case BC_Partition:
		return "Partition"
	}
	return "None"
}

var WallNameMap = map[string]Wall{
	"top":    WallTop,
	"lid":    WallTop,
	"north":  WallTop,
	"left":   WallLeft,
	"west":   WallLeft,
	"bottom": WallBottom,
	"south":  WallBottom,
	"right":  WallRight,
	"east":   WallRight,
}

func ParseWall(name string) (w Wall, err error) {
	var ok bool
	if w, ok = WallNameMap[strings.ToLower(strings.TrimSpace(name))]; !ok {
		err = fmt.Errorf("unknown wall name %q, must be one of top, left, bottom, right", name)
	}
	return
}
