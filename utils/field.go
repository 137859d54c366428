package utils

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var ErrAllocation = errors.New("unable to allocate field storage")

// maxFieldCells bounds a single field well below the addressable slice length
const maxFieldCells = 1 << 31

// Field is a 2D array of samples stored row-major in one contiguous buffer.
// Index i runs along x (columns), j along y (rows), so a row is a line of
// constant y and is contiguous in memory.
type Field struct {
	M      *mat.Dense
	Nx, Ny int
	name   string
}

func NewField(name string, nx, ny int) (f *Field, err error) {
	if nx <= 0 || ny <= 0 {
		err = fmt.Errorf("%w: %s has extent %d x %d", ErrAllocation, name, nx, ny)
		return
	}
	if nx > maxFieldCells/ny {
		err = fmt.Errorf("%w: %s extent %d x %d exceeds %d cells",
			ErrAllocation, name, nx, ny, maxFieldCells)
		return
	}
	defer func() {
		if r := recover(); r != nil {
			f = nil
			err = fmt.Errorf("%w: %s (%d x %d): %v", ErrAllocation, name, nx, ny, r)
		}
	}()
	f = &Field{
		M:    mat.NewDense(ny, nx, make([]float64, nx*ny)),
		Nx:   nx,
		Ny:   ny,
		name: name,
	}
	return
}

func (f *Field) Name() string       { return f.name }
func (f *Field) Dims() (nx, ny int) { return f.Nx, f.Ny }
func (f *Field) Released() bool     { return f.M == nil }

func (f *Field) At(i, j int) float64 {
	f.check(i, j)
	return f.M.RawMatrix().Data[j*f.Nx+i]
}

func (f *Field) Set(i, j int, val float64) {
	f.check(i, j)
	f.M.RawMatrix().Data[j*f.Nx+i] = val
}

// Row returns the live storage of row j; writes go straight to the field.
func (f *Field) Row(j int) []float64 {
	return f.M.RawRowView(j)
}

// Rows returns the live storage of rows [j1, j2] inclusive as one slice.
func (f *Field) Rows(j1, j2 int) []float64 {
	if j1 < 0 || j2 >= f.Ny || j1 > j2 {
		panic(fmt.Sprintf("row range [%d,%d] out of bounds for %s with %d rows",
			j1, j2, f.name, f.Ny))
	}
	return f.M.RawMatrix().Data[j1*f.Nx : (j2+1)*f.Nx]
}

func (f *Field) Data() []float64 {
	return f.M.RawMatrix().Data
}

func (f *Field) Fill(val float64) {
	data := f.Data()
	for i := range data {
		data[i] = val
	}
}

// Release drops the storage; the Field is unusable afterwards.
func (f *Field) Release() {
	f.M = nil
}

func (f *Field) check(i, j int) {
	if i < 0 || i >= f.Nx || j < 0 || j >= f.Ny {
		panic(fmt.Sprintf("index (%d,%d) out of bounds for %s with extent %d x %d",
			i, j, f.name, f.Nx, f.Ny))
	}
}

// BufferSet owns every Field allocated through it and releases them together.
type BufferSet struct {
	owned []*Field
}

func (bs *BufferSet) Allocate(name string, nx, ny int) (f *Field, err error) {
	if f, err = NewField(name, nx, ny); err != nil {
		return
	}
	bs.owned = append(bs.owned, f)
	return
}

func (bs *BufferSet) Len() int { return len(bs.owned) }

func (bs *BufferSet) Release() {
	for _, f := range bs.owned {
		f.Release()
	}
	bs.owned = bs.owned[:0]
}
