package LidCavity

import (
	"fmt"

	"github.com/notargets/lidcavity/utils"
)

// DoubleBuffer holds the two time levels of one field. The slots never move;
// a role flag says which slot receives the next level, and Swap flips it.
type DoubleBuffer struct {
	slots [2]*utils.Field
	next  int
}

func (db *DoubleBuffer) Current() *utils.Field { return db.slots[1-db.next] }
func (db *DoubleBuffer) Next() *utils.Field    { return db.slots[db.next] }
func (db *DoubleBuffer) Swap()                 { db.next = 1 - db.next }

// Fields is the working set of one partition: u, v and p at two time levels.
type Fields struct {
	U, V, P DoubleBuffer
	buffers utils.BufferSet
}

func NewFields(pt Partition) (f *Fields, err error) {
	var (
		N = pt.N
	)
	f = &Fields{}
	allocate := func(db *DoubleBuffer, name string, nx, ny int) (err error) {
		for n := range db.slots {
			if db.slots[n], err = f.buffers.Allocate(fmt.Sprintf("%s[%d]", name, n), nx, ny); err != nil {
				return
			}
		}
		return
	}
	// Staggered extents: u on vertical faces, v on horizontal faces, p at
	// cell centers, each with ghost storage around the interior
	if err = allocate(&f.U, "u", N, pt.URows()); err != nil {
		f.Release()
		return nil, err
	}
	if err = allocate(&f.V, "v", N+1, pt.VRows()); err != nil {
		f.Release()
		return nil, err
	}
	if err = allocate(&f.P, "p", N+1, pt.PRows()); err != nil {
		f.Release()
		return nil, err
	}
	return
}

func (f *Fields) Swap() {
	f.U.Swap()
	f.V.Swap()
	f.P.Swap()
}

func (f *Fields) Release() {
	f.buffers.Release()
}
