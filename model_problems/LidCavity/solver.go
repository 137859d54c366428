package LidCavity

import (
	"context"
	"errors"
	"fmt"

	"github.com/notargets/lidcavity/utils"
)

var (
	ErrDiverged      = errors.New("solution diverged")
	ErrMaxIterations = errors.New("maximum number of iterations exceeded")
	ErrCommunication = utils.ErrCommunication
	ErrAllocation    = utils.ErrAllocation
)

type Status uint8

const (
	Initializing Status = iota
	Iterating
	Converged
	Diverged
	MaxIterExceeded
)

func (s Status) String() string {
	switch s {
	case Initializing:
		return "Initializing"
	case Iterating:
		return "Iterating"
	case Converged:
		return "Converged"
	case Diverged:
		return "Diverged"
	case MaxIterExceeded:
		return "MaxIterExceeded"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// ResidualLogger receives one record per completed iteration, numbered from 1.
type ResidualLogger interface {
	LogResidual(iteration int, r Residual) error
}

// Solver is the time-loop controller for one partition. It owns the fields
// of its band and releases them on every exit path of Run.
type Solver struct {
	P          *Parameters
	Pt         Partition
	Fields     *Fields
	Comm       utils.Communicator
	Stepper    *Stepper
	Monitor    *Monitor
	Log        ResidualLogger // Only rank 0 logs, nil elsewhere
	PrintEvery int            // Console residual row every PrintEvery iterations, 0 disables
	Status     Status
	Iteration  int
	Residual   Residual
}

func NewSolver(p *Parameters, pt Partition, comm utils.Communicator, workers int) (s *Solver, err error) {
	var (
		sweeper = utils.RowSweeper{Workers: workers}
	)
	s = &Solver{
		P:       p,
		Pt:      pt,
		Comm:    comm,
		Stepper: &Stepper{P: p, Pt: pt, Sweeper: sweeper},
		Monitor: NewMonitor(p, pt, sweeper, comm),
		Status:  Initializing,
	}
	if s.Fields, err = NewFields(pt); err != nil {
		return nil, err
	}
	return
}

func (s *Solver) root() bool { return s.Pt.Rank == 0 }

// Initialize starts the lid and applies the boundary values once to the
// current level, including the first halo exchange.
func (s *Solver) Initialize(ctx context.Context) (err error) {
	var (
		f       = s.Fields
		u, v, p = f.U.Current(), f.V.Current(), f.P.Current()
	)
	s.Status = Initializing
	SetInitialCondition(u, s.Pt, s.P.UBC)
	SetVelocityBC(u, v, s.Pt, s.P.UBC, s.P.VBC)
	SetPressureBC(p, s.Pt, s.P.PBC, s.P.Dx, s.P.Dy)
	if err = ExchangeVelocity(ctx, s.Comm, s.Pt, u, v); err != nil {
		return
	}
	if err = ExchangePressure(ctx, s.Comm, s.Pt, p); err != nil {
		return
	}
	s.Status = Iterating
	return
}

// Iterate advances one pseudo-time step and returns its residual. The level
// roles are swapped only when the residual is finite, so a diverged step
// leaves the last good level current.
func (s *Solver) Iterate(ctx context.Context) (r Residual, err error) {
	var (
		f          = s.Fields
		u, v, p    = f.U.Current(), f.V.Current(), f.P.Current()
		un, vn, pn = f.U.Next(), f.V.Next(), f.P.Next()
		st         = s.Stepper
	)
	st.MomentumX(u, v, p, un)
	st.MomentumY(u, v, p, vn)
	SetVelocityBC(un, vn, s.Pt, s.P.UBC, s.P.VBC)
	if err = ExchangeVelocity(ctx, s.Comm, s.Pt, un, vn); err != nil {
		return
	}
	st.Continuity(p, un, vn, pn)
	SetPressureBC(pn, s.Pt, s.P.PBC, s.P.Dx, s.P.Dy)
	if err = ExchangePressure(ctx, s.Comm, s.Pt, pn); err != nil {
		return
	}
	if r, err = s.Monitor.Compute(ctx, u, v, p, un, vn, pn); err != nil {
		return
	}
	s.Residual = r
	if !r.Finite() {
		return
	}
	if s.Log != nil {
		if err = s.Log.LogResidual(s.Iteration+1, r); err != nil {
			return
		}
	}
	f.Swap()
	s.Iteration++
	return
}

// Run iterates until the residual drops to the tolerance, turns non-finite,
// or the iteration cap is reached. Fields are released unless the run
// converged; a converged solver keeps them for Gather and the caller
// releases them with Release.
func (s *Solver) Run(ctx context.Context) (err error) {
	var (
		r Residual
	)
	defer func() {
		if err != nil {
			s.Release()
		}
	}()
	if s.Status != Iterating {
		if err = s.Initialize(ctx); err != nil {
			return
		}
	}
	if s.root() && s.PrintEvery > 0 {
		fmt.Printf("    iter      Total          U          V          P          D\n")
	}
	for {
		if r, err = s.Iterate(ctx); err != nil {
			return
		}
		if !r.Finite() {
			s.Status = Diverged
			if s.root() {
				fmt.Printf("Solution Diverged after %d iterations!\n", s.Iteration+1)
			}
			return fmt.Errorf("%w after %d iterations, residual %s%s",
				ErrDiverged, s.Iteration+1, r, s.locateNonFinite())
		}
		if s.root() && s.PrintEvery > 0 && s.Iteration%s.PrintEvery == 0 {
			fmt.Printf("%8d%s\n", s.Iteration, r)
		}
		if r.Total <= s.P.Tolerance {
			s.Status = Converged
			if s.root() {
				fmt.Printf("Converged after %d iterations\n", s.Iteration)
			}
			return
		}
		if s.Iteration >= s.P.MaxIterations {
			s.Status = MaxIterExceeded
			if s.root() {
				fmt.Printf("Maximum number of iterations, %d, exceeded\n", s.Iteration)
			}
			return fmt.Errorf("%w: %d iterations, residual %s",
				ErrMaxIterations, s.Iteration, r)
		}
	}
}

// locateNonFinite names the first bad sample of the new level on this rank.
func (s *Solver) locateNonFinite() string {
	for _, f := range []*utils.Field{s.Fields.U.Next(), s.Fields.V.Next(), s.Fields.P.Next()} {
		if i, j, found := utils.AnyNonFinite(f); found {
			return fmt.Sprintf(", first at %s(%d,%d) on %s", f.Name(), i, s.Pt.Global(j), s.Pt)
		}
	}
	return ""
}

func (s *Solver) Release() {
	if s.Fields != nil {
		s.Fields.Release()
	}
}
