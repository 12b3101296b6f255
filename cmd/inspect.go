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
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notargets/gohydro/hydro"
	"github.com/notargets/gohydro/types"
	"github.com/notargets/gohydro/utils"
)

// InspectCmd represents the inspect command
var InspectCmd = &cobra.Command{
	Use:   "inspect [dump file]",
	Short: "Summarize a conserved variable dump",
	Long: `
Reads a conserved array written by convert, prints the conserved totals over
the active cells and the range of a derived flow field.

gohydro inspect cons.bin --nghost 2 --field mach`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		nghost, _ := cmd.Flags().GetInt("nghost")
		field, _ := cmd.Flags().GetString("field")
		return RunInspect(args[0], nghost, field, logger, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(InspectCmd)
	InspectCmd.Flags().Int("nghost", 2, "ghost cells on each side of every axis longer than one cell")
	InspectCmd.Flags().StringP("field", "q", "mach", "derived field to report, one of density, pressure, energy, mach, sound, velocity, enthalpy")
}

// ActiveBox recovers the active cells of a dumped array from its ghost zone width
func ActiveBox(A *utils.Array4D, nghost int) types.IndexBox {
	bounds := func(ntot int) (s, e int) {
		if ntot > 1 {
			return nghost, ntot - nghost - 1
		}
		return 0, ntot - 1
	}
	_, n3, n2, n1 := A.Dims()
	is, ie := bounds(n1)
	js, je := bounds(n2)
	ks, ke := bounds(n3)
	return types.NewIndexBox(is, ie, js, je, ks, ke)
}

func RunInspect(fileName string, nghost int, field string, logger *zap.Logger, out io.Writer) (err error) {
	var (
		cons    *utils.Array4D
		hdr     utils.DumpHeader
		pf      hydro.FlowFunction
		ok      bool
		floored int
	)
	if pf, ok = hydro.FlowFunctionNameMap[strings.ToLower(field)]; !ok {
		return fmt.Errorf("unknown field %q", field)
	}
	if cons, hdr, err = utils.ReadArray4DFile(fileName); err != nil {
		return
	}
	if cons.NVar != types.NHYDRO {
		return fmt.Errorf("%s holds %d variables, expected %d", fileName, cons.NVar, types.NHYDRO)
	}
	box := ActiveBox(cons, nghost)
	if box.Empty() {
		return fmt.Errorf("no active cells in %s with %d ghost zones", fileName, nghost)
	}
	fmt.Fprintf(out, "%s\t= File\n", fileName)
	fmt.Fprintf(out, "%s\t= Run\n", hdr.RunUUID())
	fmt.Fprintf(out, "%8.5f\t= Gamma\n", hdr.Gamma)
	fmt.Fprintf(out, "%s\t= Active Box\n", box)
	fmt.Fprint(out, hydro.SumConserved(cons, box).Print())
	if nf := utils.CountNonFinite(cons); nf != 0 {
		logger.Warn("non-finite values in dump", zap.Int("count", nf))
	}

	eos := hydro.NewEquationOfState(hdr.Gamma)
	prim := utils.NewArray4D(cons.Dims())
	if floored, err = eos.ConservedToPrimitive(cons.Copy(), prim, box, hydro.NewTeam(0)); err != nil {
		return
	}
	fMin, fMax := eos.FieldRange(prim, box, pf)
	fmt.Fprintf(out, "[%12.6g, %12.6g]\t= %s range\n", fMin, fMax, pf)
	logger.Info("inspected dump",
		zap.String("file", fileName),
		zap.Stringer("run", hdr.RunUUID()),
		zap.Int("floored", floored))
	return
}
