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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notargets/gohydro/InputParameters"
	"github.com/notargets/gohydro/hydro"
	"github.com/notargets/gohydro/utils"
)

// ConvertCmd represents the convert command
var ConvertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Initialize a mesh block and convert its primitive state to conserved variables",
	Long: `
Allocates a mesh block from the input parameters, lays down the initial
primitive state, converts it to conserved variables over the active cells and
reports the conserved totals. Optionally writes the conserved array to a
binary dump.

gohydro convert -I input.yaml -o cons.bin`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ip *InputParameters.InputParameters3D
		)
		icFile, _ := cmd.Flags().GetString("inputConditionsFile")
		if ip, err = processInput(icFile); err != nil {
			return
		}
		if dumpFile, _ := cmd.Flags().GetString("dumpFile"); len(dumpFile) != 0 {
			ip.DumpFile = dumpFile
		}
		if printInput, _ := cmd.Flags().GetBool("print"); printInput {
			ip.Print()
		}
		_, err = RunConvert(ip, logger, os.Stdout)
		return
	},
}

func init() {
	rootCmd.AddCommand(ConvertCmd)
	ConvertCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Gamma\n\t- NX1, NX2, NX3\n\t- InitType")
	ConvertCmd.Flags().StringP("dumpFile", "o", "", "write the conserved array to this binary dump file")
	ConvertCmd.Flags().BoolP("print", "p", false, "print the input parameters before running")
}

func RunConvert(ip *InputParameters.InputParameters3D, logger *zap.Logger,
	out io.Writer) (mb *hydro.MeshBlock, err error) {
	var (
		ic hydro.InitialCondition
	)
	if ic, err = ip.InitialCondition(); err != nil {
		return
	}
	mb = hydro.NewMeshBlock(ip.NX1, ip.NX2, ip.NX3, ip.NGhost, ip.EquationOfState(), ip.Team(), logger)
	mb.Initialize(ic)
	elapsed := mb.PrimitiveToConserved()
	totals := mb.Totals()
	fmt.Fprintf(out, "Primitive to conserved, %s, %d threads, %s schedule\n",
		mb.Active, mb.Team.Size(mb.Active), mb.Team.Schedule)
	fmt.Fprint(out, totals.Print())
	logger.Info("conversion complete",
		zap.Stringer("run", mb.RunID),
		zap.Duration("elapsed", elapsed),
		zap.Float64("mass", totals.Mass),
		zap.Float64("energy", totals.Energy))
	if len(ip.DumpFile) != 0 {
		if err = utils.WriteArray4DFile(ip.DumpFile, mb.Cons, ip.Gamma, mb.RunID); err != nil {
			err = fmt.Errorf("writing %s: %w", ip.DumpFile, err)
			return
		}
		logger.Info("wrote conserved dump", zap.String("file", ip.DumpFile))
	}
	return
}
