// Package recording captures Canvas 2D drawing calls as commands and
// replays them against a live canvas2d.Context.
//
// Commands are typed structs tagged with a [CommandType], one per Canvas
// operation, so a recorded program can be inspected, logged, serialized
// by a script decoder, and replayed any number of times. [Apply] is the
// interpreter; [Queue] keeps commands in issue order together with the
// revision each was issued at.
//
// # Basic Usage
//
//	q := recording.NewQueue(recording.ReplayAll)
//	q.Append(
//	    recording.SetFillStyle{Style: "#ff0"},
//	    recording.FillRect{X: 10, Y: 10, W: 100, H: 200},
//	)
//
//	ctx := canvas2d.NewContext(backend, 400, 400)
//	if err := q.Replay(ctx); err != nil {
//	    // handle error
//	}
//
// # Replay Policies
//
// [ReplayAll] keeps every command and resets the context before each pass,
// so each pass draws the whole program from a clean state. [DrainOnce]
// drops commands after they replay and keeps context state between passes,
// for hosts that stream incremental drawing.
package recording
