// Package backend is the registry of canvas2d rendering backends.
//
// Backends register a factory from init(), following the database/sql
// driver pattern, and hosts select one by name at runtime:
//
//	import _ "github.com/gogpu/canvas2d/backend/raster"
//
//	b, err := backend.New("raster", 400, 400)
//	if err != nil {
//	    // not registered
//	}
//	ctx := canvas2d.NewContext(b, 400, 400)
//
// # Available Backends
//
//   - raster: software rasterizer on image.RGBA (backend/raster)
//   - trace: records every call for inspection (backend/trace)
package backend
