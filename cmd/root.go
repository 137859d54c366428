/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lidcavity [Re]",
	Short: "Lid driven cavity flow by artificial compressibility on a staggered grid",
	Long: `
Solves steady incompressible flow in a square cavity driven by its top wall,
relaxing the artificial compressibility equations in pseudo time until the
residual drops below the tolerance. Re defaults to 100.

Runtime settings come from the environment:
	LIDCAVITY_OUTPUTDIR   output directory (data)
	LIDCAVITY_PARTITIONS  row bands solved by separate ranks (1)
	LIDCAVITY_WORKERS     sweep workers within one band (number of CPUs)
	LIDCAVITY_CONFIG      YAML input parameters (~/.lidcavity.yaml)
	LIDCAVITY_PROFILE     cpu or mem
	LIDCAVITY_PLOT        write centerline plots (false)
	LIDCAVITY_PRINTEVERY  iterations between residual reports (1000)

Example input parameters file:
########################################
Title: "Cavity"
Re: 400
CFL: 0.15
C2: 5.0
Tolerance: 1.e-7
MaxIterations: 1000000
BCs:
  top:
    u: 1.0
########################################
`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			Re float64
			s  *Settings
		)
		if Re, err = parseReynolds(args); err != nil {
			return
		}
		if s, err = LoadSettings(viper.New()); err != nil {
			return
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return RunCavity(ctx, Re, s)
	},
}

// Execute adds all child commands to the root command and runs it. Any error
// ends the process with exit status 1.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
}

// parseReynolds returns 0 when no Re is given, leaving the choice to the
// input parameters file or the default.
func parseReynolds(args []string) (Re float64, err error) {
	if len(args) == 0 {
		return
	}
	if Re, err = strconv.ParseFloat(args[0], 64); err != nil {
		return 0, fmt.Errorf("Reynolds number %q: %w", args[0], err)
	}
	if !(Re > 0) || math.IsInf(Re, 0) {
		return 0, fmt.Errorf("Reynolds number must be positive and finite, have %s", args[0])
	}
	return
}

const DefaultConfig = "~/.lidcavity.yaml"

type Settings struct {
	OutputDir   string
	Config      string
	ConfigIsSet bool // An explicit config path must exist
	Profile     string
	Partitions  int
	Workers     int
	PrintEvery  int
	Plot        bool
}

// LoadSettings resolves the LIDCAVITY_* environment through v.
func LoadSettings(v *viper.Viper) (s *Settings, err error) {
	v.SetEnvPrefix("LIDCAVITY")
	v.AutomaticEnv()
	v.SetDefault("outputdir", "data")
	v.SetDefault("partitions", 1)
	v.SetDefault("workers", 0)
	v.SetDefault("config", DefaultConfig)
	v.SetDefault("profile", "")
	v.SetDefault("plot", false)
	v.SetDefault("printevery", 1000)
	s = &Settings{
		Profile:    v.GetString("profile"),
		Partitions: v.GetInt("partitions"),
		Workers:    v.GetInt("workers"),
		PrintEvery: v.GetInt("printevery"),
		Plot:       v.GetBool("plot"),
	}
	s.ConfigIsSet = v.GetString("config") != DefaultConfig
	if s.OutputDir, err = homedir.Expand(v.GetString("outputdir")); err != nil {
		return nil, err
	}
	if s.Config, err = homedir.Expand(v.GetString("config")); err != nil {
		return nil, err
	}
	switch {
	case s.Partitions < 1:
		err = fmt.Errorf("LIDCAVITY_PARTITIONS must be at least 1, have %d", s.Partitions)
	case s.Workers < 0:
		err = fmt.Errorf("LIDCAVITY_WORKERS must not be negative, have %d", s.Workers)
	case s.PrintEvery < 0:
		err = fmt.Errorf("LIDCAVITY_PRINTEVERY must not be negative, have %d", s.PrintEvery)
	}
	if err != nil {
		return nil, err
	}
	switch s.Profile {
	case "", "cpu", "mem":
	default:
		return nil, fmt.Errorf("LIDCAVITY_PROFILE must be cpu or mem, have %q", s.Profile)
	}
	// Unset workers means all CPUs, unless the grid is split across ranks
	if s.Workers == 0 {
		s.Workers = 1
		if s.Partitions == 1 {
			s.Workers = runtime.GOMAXPROCS(0)
		}
	}
	return
}
