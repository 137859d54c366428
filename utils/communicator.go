package utils

import (
	"context"
	"errors"
	"fmt"
)

var ErrCommunication = errors.New("communication failure")

// NoRank marks a missing neighbor; sends to and receives from it are no-ops.
const NoRank = -1

// Communicator is the message passing contract used by the row-band
// decomposition. Every call blocks until the data it moves is usable by the
// caller, or ctx is done.
type Communicator interface {
	Rank() int
	Size() int
	Send(ctx context.Context, buf []float64, dest int) error
	Recv(ctx context.Context, buf []float64, source int) error
	// SendRecv posts buf to dest, then fills recv from source.
	SendRecv(ctx context.Context, send []float64, dest int, recv []float64, source int) error
	// AllReduceSum replaces vals on every rank with the sum over all ranks.
	// Summation is done on rank 0 in rank order, so all ranks see identical bits.
	AllReduceSum(ctx context.Context, vals []float64) error
}

// ChannelWorld is a set of ranks living in one process, connected by a MailBox.
type ChannelWorld struct {
	mb    *MailBox[[]float64]
	comms []*ChannelComm
}

// Messages between two ranks never run more than a few ahead of the receiver
const mailboxDepth = 8

func NewChannelWorld(size int) (w *ChannelWorld) {
	w = &ChannelWorld{
		mb:    NewMailBox[[]float64](size, mailboxDepth),
		comms: make([]*ChannelComm, size),
	}
	for rank := 0; rank < size; rank++ {
		w.comms[rank] = &ChannelComm{rank: rank, world: w}
	}
	return
}

func (w *ChannelWorld) Size() int { return len(w.comms) }

func (w *ChannelWorld) Comm(rank int) *ChannelComm { return w.comms[rank] }

type ChannelComm struct {
	rank  int
	world *ChannelWorld
}

func (c *ChannelComm) Rank() int { return c.rank }
func (c *ChannelComm) Size() int { return c.world.Size() }

func (c *ChannelComm) Send(ctx context.Context, buf []float64, dest int) (err error) {
	if dest == NoRank {
		return
	}
	msg := make([]float64, len(buf))
	copy(msg, buf)
	return c.world.mb.PostMessage(ctx, c.rank, dest, msg)
}

func (c *ChannelComm) Recv(ctx context.Context, buf []float64, source int) (err error) {
	var (
		msg []float64
	)
	if source == NoRank {
		return
	}
	if msg, err = c.world.mb.ReceiveMessage(ctx, c.rank, source); err != nil {
		return
	}
	if len(msg) != len(buf) {
		err = fmt.Errorf("%w: rank %d expected %d values from rank %d, got %d",
			ErrCommunication, c.rank, len(buf), source, len(msg))
		return
	}
	copy(buf, msg)
	return
}

func (c *ChannelComm) SendRecv(ctx context.Context, send []float64, dest int,
	recv []float64, source int) (err error) {
	if err = c.Send(ctx, send, dest); err != nil {
		return
	}
	return c.Recv(ctx, recv, source)
}

func (c *ChannelComm) AllReduceSum(ctx context.Context, vals []float64) (err error) {
	var (
		size = c.Size()
	)
	if size == 1 {
		return
	}
	if c.rank != 0 {
		if err = c.Send(ctx, vals, 0); err != nil {
			return
		}
		return c.Recv(ctx, vals, 0)
	}
	partial := make([]float64, len(vals))
	for src := 1; src < size; src++ {
		if err = c.Recv(ctx, partial, src); err != nil {
			return
		}
		for i := range vals {
			vals[i] += partial[i]
		}
	}
	for dest := 1; dest < size; dest++ {
		if err = c.Send(ctx, vals, dest); err != nil {
			return
		}
	}
	return
}
