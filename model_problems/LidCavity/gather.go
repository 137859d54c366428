package LidCavity

import (
	"context"
	"fmt"

	"github.com/notargets/lidcavity/utils"
)

// Solution is the whole staggered grid assembled on rank 0.
type Solution struct {
	N       int
	U, V, P *utils.Field
	buffers utils.BufferSet
}

func NewSolution(N int) (s *Solution, err error) {
	s = &Solution{N: N}
	if s.U, err = s.buffers.Allocate("u", N, N+1); err != nil {
		s.Release()
		return nil, err
	}
	if s.V, err = s.buffers.Allocate("v", N+1, N); err != nil {
		s.Release()
		return nil, err
	}
	if s.P, err = s.buffers.Allocate("p", N+1, N+1); err != nil {
		s.Release()
		return nil, err
	}
	return
}

func (s *Solution) Release() { s.buffers.Release() }

// ownedRows is the local row range [lo, hi] a partition contributes to the
// global field: its interior rows plus the physical wall or ghost rows it
// holds at the ends of the domain.
func ownedRows(pt Partition, f *utils.Field) (lo, hi int) {
	lo, hi = 1, pt.Rows
	if pt.First() {
		lo = 0
	}
	if pt.Last() {
		hi = f.Ny - 1
	}
	return
}

// Gather copies the current level of every partition into sol on rank 0.
// Other ranks pass a nil sol; each sends its rows of u, v and p, in that
// order, as one message per field.
func Gather(ctx context.Context, comm utils.Communicator, pt Partition, f *Fields, sol *Solution) (err error) {
	var (
		local = []*utils.Field{f.U.Current(), f.V.Current(), f.P.Current()}
	)
	if pt.Rank != 0 {
		for _, lf := range local {
			lo, hi := ownedRows(pt, lf)
			if err = comm.Send(ctx, lf.Rows(lo, hi), 0); err != nil {
				return fmt.Errorf("gather of %s from %s: %w", lf.Name(), pt, err)
			}
		}
		return
	}
	global := []*utils.Field{sol.U, sol.V, sol.P}
	for n, lf := range local {
		lo, hi := ownedRows(pt, lf)
		copy(global[n].Rows(pt.Global(lo), pt.Global(hi)), lf.Rows(lo, hi))
	}
	if pt.Size == 1 {
		return
	}
	pts, err := NewPartitions(pt.Size, pt.N)
	if err != nil {
		return
	}
	for _, src := range pts[1:] {
		for _, gf := range global {
			var (
				lo = 1
				hi = src.Rows
			)
			if src.Last() {
				// The last band carries the top wall or ghost row of each field
				hi = gf.Ny - 1 - src.Global(0)
			}
			if err = comm.Recv(ctx, gf.Rows(src.Global(lo), src.Global(hi)), src.Rank); err != nil {
				return fmt.Errorf("gather of %s from %s: %w", gf.Name(), src, err)
			}
		}
	}
	return
}
