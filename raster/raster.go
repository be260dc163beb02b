// Package raster loads the flow-direction raster: a 2-D georeferenced TIFF
// image whose pixel values are the D8 direction codes of fdmatrix. It
// returns a dense row-major code slice ready for fdmatrix.NewFromFlat.
//
// Decoding goes through tiff.Decode, then golang.org/x/image/draw flattens
// whatever photometric interpretation the source TIFF carries into 8-bit
// grayscale, so every pixel ends up as exactly one byte. Only for 8-bit
// grayscale rasters is that byte the stored value unchanged; see Load.
package raster

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/hhrutter/tiff"
	"golang.org/x/image/draw"

	"github.com/hydrotools/lfp/fdmatrix"
)

// ErrRasterLoadFailure wraps any error from decoding or interpreting the
// raster, surfaced to the invoker with the file path by the caller.
var ErrRasterLoadFailure = errors.New("raster: failed to load flow-direction raster")

// DefaultNodata is the nodata sentinel, matching common D8 flow-direction
// raster practice: off-domain or impassable cells are written as 255. Load
// reads no nodata tag; a pixel value of 255 decodes to this code.
const DefaultNodata = fdmatrix.NodataCode

// Grid is the decoded flow-direction raster: dimensions and a dense
// row-major code slice of length Height*Width.
type Grid struct {
	Height, Width int
	Codes         []fdmatrix.Code
}

// Load decodes a TIFF flow-direction raster from r and converts every
// pixel to a direction code. The decoded image is drawn into an 8-bit
// grayscale buffer first: 8-bit grayscale pixels are copied unchanged,
// while any other image type goes through the standard gray color model,
// so a paletted pixel yields the luminance of its palette color rather
// than its palette index, and a 16-bit sample keeps only its high byte.
func Load(r io.Reader) (*Grid, error) {
	img, err := tiff.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterLoadFailure, err)
	}

	bounds := img.Bounds()
	height, width := bounds.Dy(), bounds.Dx()
	if height == 0 || width == 0 {
		return nil, fmt.Errorf("%w: raster has zero extent", ErrRasterLoadFailure)
	}

	gray := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)

	codes := make([]fdmatrix.Code, height*width)
	for y := 0; y < height; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+width]
		for x := 0; x < width; x++ {
			codes[y*width+x] = fdmatrix.Code(row[x])
		}
	}

	return &Grid{Height: height, Width: width, Codes: codes}, nil
}

// ToMatrix builds an fdmatrix.Matrix from the decoded grid.
func (g *Grid) ToMatrix() (*fdmatrix.Matrix, error) {
	return fdmatrix.NewFromFlat(g.Height, g.Width, g.Codes)
}
