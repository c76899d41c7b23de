// Package raster provides the reference software backend for canvas2d.
//
// The backend draws into an *image.RGBA. Paths are flattened and filled
// with the golang.org/x/image/vector rasterizer (nonzero winding) or an
// exact even-odd scanline filler. Strokes are expanded into polygons
// with joins and caps before filling. Shadows are blurred with bild.
// Text is shaped with go-text/typesetting using the Go font family and
// drawn from sfnt glyph outlines, so MeasureText and FillText agree on
// advances.
//
// Importing the package registers it under the name "raster":
//
//	import _ "github.com/gogpu/canvas2d/backend/raster"
//
//	b, err := backend.New(backend.Raster, 400, 300)
package raster
