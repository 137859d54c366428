package LidCavity

import (
	"context"
	"fmt"

	"github.com/notargets/lidcavity/utils"
)

// ExchangeHalo fills the rows above and below the band from the neighbors:
// the first owned row goes down to Prev and the row above the band comes up
// from Next, then the last owned row goes up to Next and the row below the
// band comes down from Prev. On return every neighbor row is current.
func ExchangeHalo(ctx context.Context, comm utils.Communicator, pt Partition, f *utils.Field) (err error) {
	if pt.Size == 1 {
		return
	}
	var (
		top = f.Ny - 1 // Row above the band, absent for v on the last rank
		own = pt.Rows  // Last owned row, the top wall row for v on the last rank
	)
	var above []float64
	if pt.Next != utils.NoRank {
		above = f.Row(top)
	}
	if err = comm.SendRecv(ctx, f.Row(1), pt.Prev, above, pt.Next); err != nil {
		return fmt.Errorf("halo exchange of %s, %s: %w", f.Name(), pt, err)
	}
	var below []float64
	if pt.Prev != utils.NoRank {
		below = f.Row(0)
	}
	if err = comm.SendRecv(ctx, f.Row(own), pt.Next, below, pt.Prev); err != nil {
		return fmt.Errorf("halo exchange of %s, %s: %w", f.Name(), pt, err)
	}
	return
}

// ExchangeVelocity and ExchangePressure are the two synchronization points
// of an iteration: new velocities before the continuity sweep, and new
// pressure before the next momentum sweep.
func ExchangeVelocity(ctx context.Context, comm utils.Communicator, pt Partition, u, v *utils.Field) (err error) {
	if err = ExchangeHalo(ctx, comm, pt, u); err != nil {
		return
	}
	return ExchangeHalo(ctx, comm, pt, v)
}

func ExchangePressure(ctx context.Context, comm utils.Communicator, pt Partition, p *utils.Field) (err error) {
	return ExchangeHalo(ctx, comm, pt, p)
}
