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
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gohydro/InputParameters"
	"github.com/notargets/gohydro/hydro"
	"github.com/notargets/gohydro/utils"
)

// BenchCmd represents the bench command
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the primitive to conserved kernel over a list of thread counts",
	Long: `
Runs the primitive to conserved kernel Iterations times for each thread count
and checks that every thread count reproduces the single thread result bit for bit.

gohydro bench -I input.yaml --threadList 1,2,4,8 --counters`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.InputParameters3D
		)
		icFile, _ := cmd.Flags().GetString("inputConditionsFile")
		if ip, err = processInput(icFile); err != nil {
			return
		}
		if iters, _ := cmd.Flags().GetInt("iterations"); iters > 0 {
			ip.Iterations = iters
		}
		threadList, _ := cmd.Flags().GetIntSlice("threadList")
		counters, _ := cmd.Flags().GetBool("counters")
		var results []BenchResult
		if results, err = RunBench(ip, threadList, counters, logger); err != nil {
			return
		}
		PrintBenchResults(os.Stdout, ip, results)
		for _, r := range results {
			if !r.Identical {
				return fmt.Errorf("%d threads did not reproduce the single thread result", r.Threads)
			}
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(BenchCmd)
	BenchCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters")
	BenchCmd.Flags().IntSlice("threadList", []int{1, 2, 4, 8}, "thread counts to time")
	BenchCmd.Flags().IntP("iterations", "n", 0, "kernel calls per thread count (overrides the input file)")
	BenchCmd.Flags().Bool("counters", false, "collect CPU cycle and instruction counts (Linux, calling thread only)")
}

type BenchResult struct {
	Threads   int // Goroutines actually used
	Elapsed   time.Duration
	MCellsSec float64
	Identical bool
	Counts    utils.HardwareCounts
}

func RunBench(ip *InputParameters.InputParameters3D, threadList []int, counters bool,
	logger *zap.Logger) (results []BenchResult, err error) {
	var (
		ic        hydro.InitialCondition
		eos       = ip.EquationOfState()
		team      = ip.Team()
		reference *utils.Array4D
	)
	if ic, err = ip.InitialCondition(); err != nil {
		return
	}
	mb := hydro.NewMeshBlock(ip.NX1, ip.NX2, ip.NX3, ip.NGhost, eos, team, logger)
	mb.Initialize(ic)
	reference = mb.Cons.Copy()
	eos.PrimitiveToConserved(mb.Prim, reference, mb.Active, 1)

	for _, nthreads := range threadList {
		team.Threads = nthreads
		mb.Cons.Fill(0)
		eos.PrimitiveToConservedTeam(mb.Prim, mb.Cons, mb.Active, team) // Warm up
		start := time.Now()
		for it := 0; it < ip.Iterations; it++ {
			eos.PrimitiveToConservedTeam(mb.Prim, mb.Cons, mb.Active, team)
		}
		elapsed := time.Since(start)
		r := BenchResult{
			Threads:   team.Size(mb.Active),
			Elapsed:   elapsed,
			Identical: floats.Equal(reference.DataP, mb.Cons.DataP),
		}
		if elapsed > 0 {
			r.MCellsSec = float64(mb.Active.NumCells()*ip.Iterations) / elapsed.Seconds() / 1.e6
		}
		if counters {
			r.Counts, err = utils.MeasureHardwareCounts(func() error {
				eos.PrimitiveToConservedTeam(mb.Prim, mb.Cons, mb.Active, team)
				return nil
			})
			if err != nil {
				logger.Warn("hardware counters unavailable", zap.Error(err))
				err = nil
			}
		}
		logger.Debug("bench",
			zap.Int("threads", r.Threads),
			zap.Duration("elapsed", r.Elapsed),
			zap.Float64("mcells_per_sec", r.MCellsSec),
			zap.Bool("identical", r.Identical))
		results = append(results, r)
	}
	return
}

func PrintBenchResults(out io.Writer, ip *InputParameters.InputParameters3D, results []BenchResult) {
	fmt.Fprintf(out, "\n\n Primitive to conserved benchmark completed\n")
	fmt.Fprintf(out, " Size            =           %4dx%4dx%4d\n", ip.NX1, ip.NX2, ip.NX3)
	fmt.Fprintf(out, " Iterations      =             %12d\n", ip.Iterations)
	fmt.Fprintf(out, " Schedule        =             %12s\n", ip.GetSchedule())
	for _, r := range results {
		fmt.Fprintf(out, "\n Threads         =             %12d\n", r.Threads)
		fmt.Fprintf(out, " Time in seconds =             %12.4f\n", r.Elapsed.Seconds())
		fmt.Fprintf(out, " MCells/s        =             %12.2f\n", r.MCellsSec)
		if r.Identical {
			fmt.Fprintln(out, " Verification    =               SUCCESSFUL")
		} else {
			fmt.Fprintln(out, " Verification    =             UNSUCCESSFUL")
		}
		if r.Counts.Available {
			fmt.Fprintf(out, " Counters        = %s\n", r.Counts)
		}
	}
	fmt.Fprintf(out, "\n %s\n", utils.GetMemUsage())
}
