package canvas2d

import "errors"

// Sentinel errors returned by canvas2d. Callers match them with errors.Is;
// the returned errors usually wrap them with call details.
var (
	// ErrInvalidArgument is returned by geometry calls given a negative radius.
	ErrInvalidArgument = errors.New("canvas2d: invalid argument")

	// ErrUnsupportedContext is reported when a surface is asked for a
	// context kind other than "2d".
	ErrUnsupportedContext = errors.New("canvas2d: unsupported context kind")

	// ErrBackend wraps failures reported by the rendering backend.
	ErrBackend = errors.New("canvas2d: backend failure")

	// ErrNoBackend is returned by drawing verbs on a Context without a backend.
	ErrNoBackend = errors.New("canvas2d: no backend bound")
)
