package raster

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/tiff"

	"github.com/hydrotools/lfp/fdmatrix"
)

// encodeFixture builds a tiny grayscale TIFF in memory so Load can be
// exercised without a file on disk.
func encodeFixture(t *testing.T, width, height int, codes []fdmatrix.Code) []byte {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i, c := range codes {
		img.Pix[i] = byte(c)
	}
	var buf bytes.Buffer
	require.NoError(t, tiff.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestLoad_DecodesGrayscaleCodesRowMajor(t *testing.T) {
	codes := []fdmatrix.Code{
		fdmatrix.CodeEast, fdmatrix.CodeSouth,
		fdmatrix.CodeWest, fdmatrix.CodeNone,
	}
	raw := encodeFixture(t, 2, 2, codes)

	g, err := Load(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, 2, g.Height)
	require.Equal(t, 2, g.Width)
	require.Equal(t, codes, g.Codes)
}

func TestLoad_NodataSentinelSurvives(t *testing.T) {
	raw := encodeFixture(t, 1, 1, []fdmatrix.Code{fdmatrix.NodataCode})
	g, err := Load(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, fdmatrix.NodataCode, g.Codes[0])
}

func TestLoad_RejectsGarbageInput(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte("not a tiff")))
	require.ErrorIs(t, err, ErrRasterLoadFailure)
}

func TestGrid_ToMatrix(t *testing.T) {
	g := &Grid{Height: 1, Width: 1, Codes: []fdmatrix.Code{fdmatrix.CodeNone}}
	m, err := g.ToMatrix()
	require.NoError(t, err)
	require.Equal(t, fdmatrix.CodeNone, m.At(0, 0))
}
