package LidCavity

import (
	"fmt"

	"github.com/notargets/lidcavity/types"
	"github.com/notargets/lidcavity/utils"
)

/*
	Partition is one horizontal band of the grid. The interior rows j = 1..N-1
	are split across Size ranks; a rank owns global rows JLo..JHi and stores
	them at local rows 1..Rows, with local row 0 and Rows+1 holding the rows
	just below and above the band. Those extra rows are the physical ghost or
	wall rows on the first and last rank, and copies of the neighbors' rows
	everywhere else.

	Local row r is global row JLo-1+r for all three fields. v has one row fewer
	than u and p globally, so the last rank stores the top wall row of v at
	local row Rows and has no row above it.
*/
type Partition struct {
	Rank, Size int
	N          int
	JLo, JHi   int // Global interior rows owned, inclusive
	Rows       int
	Prev, Next int // Neighbor ranks, utils.NoRank at a physical wall
}

func NewPartition(pm *utils.PartitionMap, rank, N int) (pt Partition) {
	kMin, kMax := pm.GetBucketRange(rank)
	pt = Partition{
		Rank: rank,
		Size: pm.ParallelDegree,
		N:    N,
		JLo:  kMin + 1,
		JHi:  kMax,
		Rows: pm.GetBucketDimension(rank),
		Prev: rank - 1,
		Next: rank + 1,
	}
	if pt.First() {
		pt.Prev = utils.NoRank
	}
	if pt.Last() {
		pt.Next = utils.NoRank
	}
	return
}

// NewPartitions splits the interior rows of an N point grid across size ranks.
func NewPartitions(size, N int) (pts []Partition, err error) {
	if size < 1 || size > N-1 {
		err = fmt.Errorf("cannot split %d interior rows across %d partitions", N-1, size)
		return
	}
	pm := utils.NewPartitionMap(size, N-1)
	pts = make([]Partition, size)
	for rank := range pts {
		pts[rank] = NewPartition(pm, rank, N)
	}
	return
}

func (pt Partition) First() bool { return pt.Rank == 0 }
func (pt Partition) Last() bool  { return pt.Rank == pt.Size-1 }

func (pt Partition) Global(r int) int { return pt.JLo - 1 + r }
func (pt Partition) Local(j int) int  { return j - pt.JLo + 1 }

// URows and PRows include one row below and one above the band
func (pt Partition) URows() int { return pt.Rows + 2 }
func (pt Partition) PRows() int { return pt.Rows + 2 }

func (pt Partition) VRows() int {
	if pt.Last() {
		return pt.Rows + 1
	}
	return pt.Rows + 2
}

// VInteriorHi is the last local row of v updated by the momentum sweep.
func (pt Partition) VInteriorHi() int {
	return pt.Local(min(pt.JHi, pt.N-2))
}

// ResidualHi is the last local row included in the residual sums. The sums
// skip the last interior row, which coincides with the last v interior row.
func (pt Partition) ResidualHi() int {
	return pt.VInteriorHi()
}

func (pt Partition) BottomBC() types.BCFLAG {
	if pt.First() {
		return types.BC_Dirichlet
	}
	return types.BC_Partition
}

func (pt Partition) TopBC() types.BCFLAG {
	if pt.Last() {
		return types.BC_Dirichlet
	}
	return types.BC_Partition
}

func (pt Partition) String() string {
	return fmt.Sprintf("rank %d/%d rows [%d,%d] bottom %s, top %s",
		pt.Rank, pt.Size, pt.JLo, pt.JHi, pt.BottomBC(), pt.TopBC())
}
