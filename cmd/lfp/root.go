package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hydrotools/lfp/config"
	"github.com/hydrotools/lfp/dispatch"
	"github.com/hydrotools/lfp/fdmatrix"
	"github.com/hydrotools/lfp/logging"
	"github.com/hydrotools/lfp/outlets"
	"github.com/hydrotools/lfp/raster"
	"github.com/hydrotools/lfp/resultio"
)

var algorithms = []string{
	1: "recursive DFS, sequential",
	2: "recursive DFS, task-parallel with cutoff",
	3: "top-down max-length, redundant re-propagation",
	4: "top-down single-update, sequential",
	5: "top-down single-update, bulk-synchronous parallel",
	6: "double-drop, sequential two-phase",
	7: "double-drop, wave-based parallel two-phase",
}

// usageTemplate renders cobra's usage text followed by the fixed
// algorithm-index listing, so --help and argument-count errors alike show
// the caller which index selects which variant.
func usageTemplate() string {
	var b strings.Builder
	b.WriteString("Usage:\n  {{.UseLine}}\n\nAlgorithms:\n")
	for i := 1; i <= 7; i++ {
		fmt.Fprintf(&b, "  %d: %s\n", i, algorithms[i])
	}
	return b.String()
}

// newRootCmd builds the root command: cobra.MinimumNArgs(4) enforces the
// argument-count rule before RunE ever runs, and the usage template is set
// once up front so both --help and a failed Args check render it.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lfp <raster-path> <outlet-file> <algorithm-index> <output-path> [parameter]",
		Short: "Compute longest flow paths over a D8 flow-direction raster",
		Args:  cobra.MinimumNArgs(4),
		RunE:  run,
	}
	cmd.SetUsageTemplate(usageTemplate())
	return cmd
}

// Execute builds and runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func run(cmd *cobra.Command, args []string) error {
	// Args validation already ran; failures past this point are runtime
	// errors, not usage mistakes, so don't dump the usage template for them.
	cmd.SilenceUsage = true

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(cfg.LogLevel, "text")
	log := logging.Log

	rasterPath, outletPath, indexArg, outputPath := args[0], args[1], args[2], args[3]

	index, err := strconv.Atoi(indexArg)
	if err != nil {
		return fmt.Errorf("lfp: algorithm index must be an integer: %w", err)
	}

	parameter := cfg.Parameter
	if len(args) >= 5 {
		parameter, err = strconv.Atoi(args[4])
		if err != nil {
			return fmt.Errorf("lfp: parameter must be an integer: %w", err)
		}
	}

	matrix, err := loadMatrix(rasterPath)
	if err != nil {
		return err
	}
	log.Info("loaded raster", "height", matrix.Height(), "width", matrix.Width())

	outletList, err := loadOutlets(outletPath)
	if err != nil {
		return err
	}
	log.Info("loaded outlets", "count", len(outletList), "preview", previewCells(outletList))

	report, err := dispatch.Run(matrix, outletList, index, parameter)
	if err != nil {
		return fmt.Errorf("lfp: %w", err)
	}

	sources := make([]fdmatrix.CellLocation, len(report.Outcomes))
	for i, o := range report.Outcomes {
		sources[i] = o.Source
	}
	log.Info("computed longest flow paths",
		"multi_outlet", report.MultiOutlet,
		"sources_preview", previewCells(sources),
		"duration_ms", float64(report.Duration)/float64(time.Millisecond),
	)

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("lfp: failed to create output file %s: %w", outputPath, err)
	}
	defer out.Close()

	if err := resultio.WriteSources(out, sources); err != nil {
		return err
	}
	return nil
}

func loadMatrix(path string) (*fdmatrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", raster.ErrRasterLoadFailure, err)
	}
	defer f.Close()

	grid, err := raster.Load(f)
	if err != nil {
		return nil, fmt.Errorf("lfp: raster %s: %w", path, err)
	}
	return grid.ToMatrix()
}

func loadOutlets(path string) ([]fdmatrix.CellLocation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lfp: failed to open outlet file %s: %w", path, err)
	}
	defer f.Close()

	return outlets.Parse(f)
}

// previewCells renders at most the first 8 cells, matching the CLI's
// truncated diagnostic preview contract.
func previewCells(cells []fdmatrix.CellLocation) []fdmatrix.CellLocation {
	if len(cells) <= 8 {
		return cells
	}
	return cells[:8]
}
