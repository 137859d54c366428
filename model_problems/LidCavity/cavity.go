package LidCavity

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/notargets/lidcavity/utils"
)

// Options select how the solve is spread over the machine. Partitions > 1
// runs the row-band decomposition with one goroutine per rank; Workers > 1
// runs each sweep on a worker pool inside a single partition. The two are
// not combined.
type Options struct {
	Partitions int
	Workers    int
	PrintEvery int
	Log        ResidualLogger
	Verbose    bool
}

// Result holds the converged solution on both the staggered grid and the
// grid points. Release frees both.
type Result struct {
	Params     *Parameters
	Status     Status
	Iterations int
	Residual   Residual
	Elapsed    time.Duration
	Solution   *Solution
	Grid       *Collocated
}

func (r *Result) Release() {
	if r.Solution != nil {
		r.Solution.Release()
	}
	if r.Grid != nil {
		r.Grid.Release()
	}
}

func (opts *Options) normalize() (err error) {
	if opts.Partitions < 1 {
		opts.Partitions = 1
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Partitions > 1 && opts.Workers > 1 {
		err = fmt.Errorf("partitions (%d) and workers (%d) cannot both exceed 1",
			opts.Partitions, opts.Workers)
	}
	return
}

// Run solves the cavity to steady state. On divergence or when the iteration
// cap is reached the returned Result carries the final status and residual,
// no solution, and err wraps ErrDiverged or ErrMaxIterations.
func Run(ctx context.Context, p *Parameters, opts Options) (res *Result, err error) {
	if err = p.Validate(); err != nil {
		return
	}
	if err = opts.normalize(); err != nil {
		return
	}
	var (
		np      = opts.Partitions
		pts     []Partition
		start   = time.Now()
		solvers = make([]*Solver, np)
	)
	if pts, err = NewPartitions(np, p.N); err != nil {
		return
	}
	if opts.Verbose {
		p.Print()
		for _, pt := range pts {
			fmt.Printf("%s\n", pt)
		}
	}
	res = &Result{Params: p, Status: Initializing}
	world := utils.NewChannelWorld(np)
	g, gctx := errgroup.WithContext(ctx)
	for rank := 0; rank < np; rank++ {
		g.Go(func() (err error) {
			var (
				s    *Solver
				comm = world.Comm(rank)
				pt   = pts[rank]
			)
			if s, err = NewSolver(p, pt, comm, opts.Workers); err != nil {
				return
			}
			solvers[rank] = s
			if rank == 0 {
				s.Log = opts.Log
				s.PrintEvery = opts.PrintEvery
			}
			if err = s.Run(gctx); err != nil {
				return
			}
			defer s.Release()
			// Only rank 0 holds the global solution
			var dst *Solution
			if rank == 0 {
				if dst, err = NewSolution(p.N); err != nil {
					return
				}
				res.Solution = dst
			}
			return Gather(gctx, comm, pt, s.Fields, dst)
		})
	}
	err = g.Wait()
	res.Elapsed = time.Since(start)
	if s := solvers[0]; s != nil {
		res.Status, res.Iterations, res.Residual = s.Status, s.Iteration, s.Residual
	}
	if err != nil {
		res.Release()
		res.Solution = nil
		return
	}
	if res.Grid, err = CellCentered(res.Solution); err != nil {
		res.Release()
		res.Solution, res.Grid = nil, nil
		return
	}
	if opts.Verbose {
		fmt.Printf("Elapsed time = %v, %s\n", res.Elapsed, utils.GetMemUsage())
	}
	return
}
