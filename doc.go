// Package canvas2d provides a browser-style 2D drawing context for Go.
//
// # Overview
//
// canvas2d implements the path construction and drawing-state semantics of
// the HTML Canvas 2D API on top of a pluggable vector [Backend]. The package
// owns everything that happens before pixels: Canvas path rules, arc and
// ellipse canonicalization, the save/restore state stack, transforms, style
// parsing, and text alignment. Rasterization, compositing math, and font
// shaping belong to the backend.
//
// # Quick Start
//
//	img := raster.New(400, 400)
//	ctx := canvas2d.NewContext(img, 400, 400)
//
//	ctx.SetFillStyle("#ff0")
//	ctx.FillRect(10, 10, 100, 200)
//
//	ctx.BeginPath()
//	ctx.Arc(100, 50, 50, 0, 2*math.Pi, false)
//	ctx.Stroke()
//
//	img.SavePNG("out.png")
//
// # Paths
//
// [Path] is the primitive segment store handed to backends. [Path2D] builds
// a Path with Canvas semantics: implicit moveTo on an empty path, tangent
// arcTo, ellipse angle normalization, full circles emitted as two half
// sweeps, and closePath suppression on zero-size paths. Non-finite
// arguments are ignored; negative radii return [ErrInvalidArgument].
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, positive angles turn clockwise on screen
//
// # Sub-packages
//
//   - recording: drawing commands, the replay queue and its interpreter
//   - surface: host-facing canvas element with GetContext, Draw and Paint
//   - backend/raster: reference software backend on image.RGBA
//   - backend/trace: backend that records calls for inspection
//   - script, script/lua: YAML and Lua drawing scripts
package canvas2d

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
