// Package alphabet reads a printed sheet of glyph templates into a
// glyph.Library: a regular grid of cells, each cropped out and added to
// the library in row-major order.
package alphabet

import (
	"github.com/symcode/symcode/geom"
	"github.com/symcode/symcode/glyph"
)

// ReaderParams describes the grid a template sheet is laid out on.
type ReaderParams struct {
	// TopLeft is the top-left corner of the top-left cell.
	TopLeft geom.PointI32

	// SymbolWidth and SymbolHeight are each cell's size.
	SymbolWidth, SymbolHeight int

	// OffsetX and OffsetY are the center-to-center spacing between
	// adjacent columns and rows.
	OffsetX, OffsetY float64

	// NumColumns and NumRows are the grid dimensions.
	NumColumns, NumRows int
}

// DefaultReaderParams returns the reference grid: cells spaced at 1.5x
// their own size, large enough to hold the full 32-glyph alphabet
// across 8 rows of 4.
func DefaultReaderParams() ReaderParams {
	const cell = 155
	return ReaderParams{
		TopLeft:      geom.PointI32{X: 100, Y: 100},
		SymbolWidth:  cell,
		SymbolHeight: cell,
		OffsetX:      cell * 1.5,
		OffsetY:      cell * 1.5,
		NumColumns:   4,
		NumRows:      8,
	}
}

// ReadToLibrary crops every cell of params' grid out of image, in
// row-major order, and adds each as a new template to a fresh library.
// It returns ErrCropOutOfBounds if any cell would read outside image,
// and stops adding templates early (without error) once the alphabet is
// exhausted, since a sheet may print more cells than glyph.NumVariants.
func ReadToLibrary(image geom.BinaryImage, params ReaderParams, symbolWidth, symbolHeight int, tolerance float64) (*glyph.Library, error) {
	library := glyph.NewLibrary(symbolWidth, symbolHeight, tolerance)

	for i := 0; i < params.NumRows; i++ {
		for j := 0; j < params.NumColumns; j++ {
			offset := geom.PointI32{
				X: int(float64(j) * params.OffsetX),
				Y: int(float64(i) * params.OffsetY),
			}
			topLeft := params.TopLeft.Add(offset)
			rect := geom.NewRectXYWH(topLeft.X, topLeft.Y, params.SymbolWidth, params.SymbolHeight)

			if !validBound(topLeft, image.Width, image.Height) ||
				!validBound(geom.PointI32{X: rect.Right, Y: rect.Bottom}, image.Width, image.Height) {
				return nil, ErrCropOutOfBounds
			}

			glyphImage := image.Crop(rect)
			if err := library.Add(glyphImage); err != nil {
				if err == glyph.ErrLibraryFull {
					return library, nil
				}
				return nil, err
			}
		}
	}
	return library, nil
}

func validBound(p geom.PointI32, width, height int) bool {
	return p.X >= 0 && p.X <= width && p.Y >= 0 && p.Y <= height
}
