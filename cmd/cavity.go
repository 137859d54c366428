package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/profile"

	"github.com/notargets/lidcavity/InputParameters"
	"github.com/notargets/lidcavity/ghia_benchmark"
	"github.com/notargets/lidcavity/model_problems/LidCavity"
	"github.com/notargets/lidcavity/writefiles"
)

// gridSize is fixed for the command; tests shrink it.
var gridSize = LidCavity.DefaultGridSize

const ResidualFile = "residual"

// readInput returns an empty parameter set when the default config file is
// absent. A config named explicitly must exist.
func readInput(s *Settings) (ip *InputParameters.InputParametersCavity, err error) {
	var data []byte
	ip = &InputParameters.InputParametersCavity{}
	if data, err = os.ReadFile(s.Config); err != nil {
		if errors.Is(err, os.ErrNotExist) && !s.ConfigIsSet {
			return ip, nil
		}
		return nil, err
	}
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("input parameters %s: %w", s.Config, err)
	}
	fmt.Printf("Input parameters from %s\n", s.Config)
	ip.Print()
	return
}

func RunCavity(ctx context.Context, Re float64, s *Settings) (err error) {
	var (
		ip  *InputParameters.InputParametersCavity
		rl  *writefiles.ResidualLog
		res *LidCavity.Result
	)
	switch s.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(s.OutputDir)).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(s.OutputDir)).Stop()
	}
	if ip, err = readInput(s); err != nil {
		return
	}
	p := LidCavity.NewParametersFromInput(Re, gridSize, ip)
	if rl, err = writefiles.NewResidualLog(filepath.Join(s.OutputDir, ResidualFile)); err != nil {
		return
	}
	defer func() {
		if cerr := rl.Close(); err == nil {
			err = cerr
		}
	}()
	fmt.Printf("Partitions = %d, Workers = %d, Output in %s\n", s.Partitions, s.Workers, s.OutputDir)
	res, err = LidCavity.Run(ctx, p, LidCavity.Options{
		Partitions: s.Partitions,
		Workers:    s.Workers,
		PrintEvery: s.PrintEvery,
		Log:        rl,
		Verbose:    true,
	})
	if err != nil {
		return
	}
	defer res.Release()
	fmt.Printf("Final residual: %s\n", res.Residual)
	if err = writefiles.DumpFields(s.OutputDir, res.Grid); err != nil {
		return
	}
	if s.Plot {
		if err = writefiles.PlotCenterlines(s.OutputDir, res.Grid, p.Re); err != nil {
			return
		}
	}
	if ref, ok := ghia_benchmark.Lookup(p.Re); ok {
		var d ghia_benchmark.Deviation
		y, u := res.Grid.CenterlineU()
		x, v := res.Grid.CenterlineV()
		if d, err = ghia_benchmark.Compare(ref, y, u, x, v); err != nil {
			return
		}
		fmt.Printf("%s\n", d)
	}
	return
}
