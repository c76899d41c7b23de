// Package script decodes declarative drawing scripts into recording
// commands.
//
// A script is a YAML document naming the canvas size and listing canvas
// calls in order. Each entry is either a bare call name or a single-key
// mapping from the call name to its arguments:
//
//	width: 400
//	height: 400
//	background: white
//	commands:
//	  - fillStyle: "#ff0"
//	  - fillRect: [10, 10, 100, 200]
//	  - strokeStyle: blue
//	  - strokeRect: [200, 220, 50, 100]
//	  - beginPath
//	  - arc: [300, 100, 40, 0, 360deg]
//	  - fill
//
// Call names and argument order follow the CanvasRenderingContext2D API.
// Angles are radians; a number with a "deg" suffix is read as degrees.
// fillPath and strokePath take SVG path data.
//
// The same scripts can be written in TOML; see [ParseTOML]. [Load]
// picks the format from the file extension.
package script
