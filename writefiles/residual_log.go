package writefiles

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/notargets/lidcavity/model_problems/LidCavity"
)

// ResidualLog writes one tab separated line per iteration: the iteration
// number followed by the total, u, v, p and divergence residuals.
type ResidualLog struct {
	file *os.File
	w    *bufio.Writer
}

func NewResidualLog(path string) (rl *ResidualLog, err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return
	}
	var file *os.File
	if file, err = os.Create(path); err != nil {
		return
	}
	rl = &ResidualLog{file: file, w: bufio.NewWriter(file)}
	return
}

func (rl *ResidualLog) LogResidual(iteration int, r LidCavity.Residual) (err error) {
	_, err = fmt.Fprintf(rl.w, "%d\t%.8f\t%.8f\t%.8f\t%.8f\t%.8f\n",
		iteration, r.Total, r.U, r.V, r.P, r.D)
	return
}

func (rl *ResidualLog) Close() (err error) {
	if err = rl.w.Flush(); err != nil {
		rl.file.Close()
		return
	}
	return rl.file.Close()
}
