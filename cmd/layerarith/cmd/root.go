// Package cmd implements the layerarith command-line tool: a single flat
// command (spec.md §6 describes one invocation shape, not a family of
// sub-commands) that reads a CIF file and writes the intersection and/or
// pure-diffusion layers derived from it.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/vlsi-tools/layerarith/cif"
	"github.com/vlsi-tools/layerarith/contour"
	"github.com/vlsi-tools/layerarith/geom"
	"github.com/vlsi-tools/layerarith/status"
	"github.com/vlsi-tools/layerarith/sweep"
	"github.com/vlsi-tools/layerarith/tracelog"
)

var (
	inputPath string
	interPath string
	pdiffPath string
	psPath    string
	verbose   bool
)

// RootCmd is the layerarith command.
var RootCmd = &cobra.Command{
	Use:   "layerarith",
	Short: "derive VLSI layers from a CIF file by plane sweep",
	Long: `layerarith reads polysilicon and diffusion polygons from a CIF
file and writes the layers derived from them by a plane-sweep boolean
algebra: the intersection of both layers (transistor gates) and the
portion of diffusion not covered by polysilicon (pure diffusion).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PreRunE:       validateFlags,
	RunE:          run,
}

func init() {
	RootCmd.Flags().StringVar(&inputPath, "input", "", "input CIF file (required)")
	RootCmd.Flags().StringVar(&interPath, "inter", "", "output CIF file for the intersection layer")
	RootCmd.Flags().StringVar(&pdiffPath, "pdiff", "", "output CIF file for the pure-diffusion layer")
	RootCmd.Flags().StringVar(&psPath, "ps", "", "dump the initial segment tree to this YAML file")
	RootCmd.Flags().BoolVarP(&verbose, "v", "v", false, "log progress and phase timings to stdout")
}

// validateFlags enforces spec.md §6's required-arg constraint: exactly one
// -input, and at least one of -inter/-pdiff.
func validateFlags(cmd *cobra.Command, args []string) error {
	if inputPath == "" {
		return status.Fail(status.Usage)
	}
	if interPath == "" && pdiffPath == "" {
		return status.Fail(status.Usage)
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	log := tracelog.New(verbose)
	started := time.Now()

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return status.Fail(status.InputUnavailable)
	}

	polys, st := cif.Parse(string(raw), log)
	if status.Failed(st) {
		return st
	}

	if psPath != "" {
		if err := dumpSegmentTree(polys, psPath); err != nil {
			return status.Fail(status.OutputUnavailable)
		}
	}

	res := sweep.Run(polys, log)

	if interPath != "" {
		if st := writeLayer(geom.Polysilicon, res.Intersection, interPath, log); status.Failed(st) {
			return st
		}
	}
	if pdiffPath != "" {
		if st := writeLayer(geom.Diffusion, res.PureDiffusion, pdiffPath, log); status.Failed(st) {
			return st
		}
	}

	if verbose {
		log.DumpLog(os.Stdout)
		log.DumpTimes(os.Stdout, time.Since(started))
	}
	return nil
}

func writeLayer(layer string, edges []geom.VEdge, path string, log *tracelog.Context) status.Status {
	polys := contour.Reconstruct(layer, edges, log)

	f, err := os.Create(path)
	if err != nil {
		return status.Fail(status.OutputUnavailable)
	}
	defer f.Close()

	return cif.Write(f, polys, log)
}

// Execute runs RootCmd and maps its outcome to a process exit code, the
// same shape as cmd/recast/cmd.Execute in the teacher.
func Execute() int {
	// accept the single-dash long form (-input FILE) as well as --input FILE
	args := make([]string, 0, len(os.Args))
	for _, a := range os.Args[1:] {
		if len(a) > 2 && a[0] == '-' && a[1] != '-' {
			a = "-" + a
		}
		args = append(args, a)
	}
	RootCmd.SetArgs(args)

	err := RootCmd.Execute()
	if err == nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, err)
	if st, ok := err.(status.Status); ok {
		if status.Is(st, status.Usage) {
			RootCmd.SetOut(os.Stdout)
			RootCmd.Usage()
		}
		return status.ExitCode(st)
	}
	return 1
}
