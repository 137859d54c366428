package utils

import (
	"github.com/exascience/pargo/parallel"
)

// RowSweeper runs a per-row kernel over a half-open row range. With more than
// one worker the rows are split into batches run in parallel; each row is
// still computed by exactly one call, so results do not depend on Workers.
type RowSweeper struct {
	Workers int
}

func (rs RowSweeper) Sweep(lo, hi int, kernel func(j int)) {
	if hi <= lo {
		return
	}
	if rs.Workers <= 1 || hi-lo == 1 {
		for j := lo; j < hi; j++ {
			kernel(j)
		}
		return
	}
	parallel.Range(lo, hi, rs.Workers, func(low, high int) {
		for j := low; j < high; j++ {
			kernel(j)
		}
	})
}
