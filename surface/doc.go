// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the host-facing canvas element.
//
// A Surface queues drawing commands issued by the host and replays them
// into a canvas2d.Context whenever the host asks it to paint into a
// backend. The Context is bound lazily to the backend handle of the first
// paint and rebuilt whenever a different handle is supplied.
//
// # Basic Usage
//
//	s := surface.MustNew(400, 400)
//	s.Draw(
//	    recording.SetFillStyle{Style: "#ff0"},
//	    recording.FillRect{X: 10, Y: 10, W: 100, H: 200},
//	)
//
//	img := raster.New(400, 400)
//	if err := s.Paint(img); err != nil {
//	    // handle error
//	}
//
// # Concurrency
//
// Draw, Paint, GetContext, Resize and Close may be called from different
// goroutines. Paint calls are serialized; commands drawn while a paint is
// in progress join the next pass.
package surface
