package writefiles

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/notargets/lidcavity/model_problems/LidCavity"
)

const (
	FieldsFile      = "fields.dat"
	CenterlineUFile = "centerline_u.dat"
	CenterlineVFile = "centerline_v.dat"
)

func writeFile(path string, body func(w *bufio.Writer) error) (err error) {
	var file *os.File
	if file, err = os.Create(path); err != nil {
		return
	}
	w := bufio.NewWriter(file)
	if err = body(w); err == nil {
		err = w.Flush()
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return
}

// DumpFields writes the grid point values in gnuplot's blocked format, one
// "x y u v p" line per point and a blank line after each row, plus the two
// centerline profiles as two column files.
func DumpFields(dir string, g *LidCavity.Collocated) (err error) {
	if err = os.MkdirAll(dir, 0755); err != nil {
		return
	}
	err = writeFile(filepath.Join(dir, FieldsFile), func(w *bufio.Writer) (err error) {
		for j := 0; j < g.N; j++ {
			u, v, p := g.U.Row(j), g.V.Row(j), g.P.Row(j)
			for i := 0; i < g.N; i++ {
				if _, err = fmt.Fprintf(w, "%f %f %.8e %.8e %.8e\n",
					g.X[i], g.Y[j], u[i], v[i], p[i]); err != nil {
					return
				}
			}
			if _, err = fmt.Fprintln(w); err != nil {
				return
			}
		}
		return
	})
	if err != nil {
		return
	}
	y, u := g.CenterlineU()
	if err = writeProfile(filepath.Join(dir, CenterlineUFile), y, u); err != nil {
		return
	}
	x, v := g.CenterlineV()
	return writeProfile(filepath.Join(dir, CenterlineVFile), x, v)
}

func writeProfile(path string, x, f []float64) (err error) {
	return writeFile(path, func(w *bufio.Writer) (err error) {
		for n := range x {
			if _, err = fmt.Fprintf(w, "%f %.8e\n", x[n], f[n]); err != nil {
				return
			}
		}
		return
	})
}
