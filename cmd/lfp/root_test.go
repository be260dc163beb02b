package main

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/tiff"

	"github.com/hydrotools/lfp/fdmatrix"
)

func writeFixtureRaster(t *testing.T, path string) {
	// A 1x4 straight line draining east-to-east-to-east with a terminal sink.
	img := image.NewGray(image.Rect(0, 0, 4, 1))
	codes := []fdmatrix.Code{fdmatrix.CodeEast, fdmatrix.CodeEast, fdmatrix.CodeEast, fdmatrix.CodeNone}
	for i, c := range codes {
		img.Pix[i] = byte(c)
	}
	var buf bytes.Buffer
	require.NoError(t, tiff.Encode(&buf, img, nil))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func writeFixtureOutlets(t *testing.T, path string) {
	require.NoError(t, os.WriteFile(path, []byte("1 4 1\n"), 0o644))
}

func TestRun_EndToEndProducesExpectedSource(t *testing.T) {
	dir := t.TempDir()
	rasterPath := filepath.Join(dir, "flow.tif")
	outletPath := filepath.Join(dir, "outlets.txt")
	outputPath := filepath.Join(dir, "result.csv")

	writeFixtureRaster(t, rasterPath)
	writeFixtureOutlets(t, outletPath)

	cmd := &cobra.Command{}
	err := run(cmd, []string{rasterPath, outletPath, "4", outputPath})
	require.NoError(t, err)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	require.Equal(t, "row,column\n1,1\n", string(data))
}

func TestRun_TooFewArgumentsPrintsUsage(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"only-one-arg"})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, out.String(), "Algorithms:")
	require.Contains(t, out.String(), "top-down single-update, sequential")
}

func TestRun_InvalidAlgorithmIndexArg(t *testing.T) {
	dir := t.TempDir()
	rasterPath := filepath.Join(dir, "flow.tif")
	outletPath := filepath.Join(dir, "outlets.txt")
	outputPath := filepath.Join(dir, "result.csv")

	writeFixtureRaster(t, rasterPath)
	writeFixtureOutlets(t, outletPath)

	cmd := &cobra.Command{}
	err := run(cmd, []string{rasterPath, outletPath, "not-a-number", outputPath})
	require.Error(t, err)
}

func TestPreviewCells_TruncatesAtEight(t *testing.T) {
	cells := make([]fdmatrix.CellLocation, 10)
	for i := range cells {
		cells[i] = fdmatrix.CellLocation{Row: i, Col: i}
	}
	require.Len(t, previewCells(cells), 8)
}

func TestPreviewCells_PassesThroughShortSlice(t *testing.T) {
	cells := []fdmatrix.CellLocation{{Row: 0, Col: 0}}
	require.Equal(t, cells, previewCells(cells))
}
