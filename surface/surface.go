// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"

	"github.com/gogpu/canvas2d"
	"github.com/gogpu/canvas2d/recording"
)

// ContextKind2D is the only context kind a Surface provides.
const ContextKind2D = "2d"

// Common errors returned by Surface operations.
var (
	// ErrClosed is returned when operations are attempted on a closed surface.
	ErrClosed = errors.New("surface: surface is closed")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")

	// ErrNilBackend is returned by Paint when no backend is given.
	ErrNilBackend = errors.New("surface: nil backend")

	// ErrIncomparableBackend is returned by Paint for a backend value that
	// cannot be compared with ==, such as a struct holding a slice.
	ErrIncomparableBackend = errors.New("surface: backend is not comparable")
)

// State is the painting state of a Surface.
type State int

const (
	// Idle means no paint is in progress.
	Idle State = iota
	// Painting means a paint pass is replaying commands.
	Painting
)

func (s State) String() string {
	if s == Painting {
		return "painting"
	}
	return "idle"
}

// Surface is a canvas element: a fixed-size drawing area with a command
// queue and a lazily bound Context.
//
// Backend handles passed to Paint are compared with ==; Paint rejects
// values that are not comparable. Pointer types are the norm.
type Surface struct {
	paintMu sync.Mutex // serializes Paint
	mu      sync.Mutex // guards everything below

	width, height int
	opts          options
	queue         *recording.Queue

	ctx     *canvas2d.Context
	bound   canvas2d.Backend
	binding uuid.UUID
	state   State
	closed  bool
}

// New creates a surface of the given size.
func New(width, height int, opts ...Option) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Surface{
		width:  width,
		height: height,
		opts:   o,
		queue:  recording.NewQueue(o.policy),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(width, height int, opts ...Option) *Surface {
	s, err := New(width, height, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.height
}

// Size returns width and height.
func (s *Surface) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// GetContext returns the live drawing context for kind "2d", or nil if no
// backend has been bound by Paint yet. Any other kind is logged and
// yields nil.
func (s *Surface) GetContext(kind string) *canvas2d.Context {
	if kind != ContextKind2D {
		canvas2d.Logger().Warn("surface: unsupported context kind",
			"kind", kind, "err", canvas2d.ErrUnsupportedContext)
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	return s.ctx
}

// Draw appends commands to the queue and returns the revision of the last
// one. Commands drawn during a paint join the next pass.
func (s *Surface) Draw(cmds ...recording.Command) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}
	return s.queue.Append(cmds...), nil
}

// Paint replays the queued commands into backend. The first paint, and any
// paint with a different backend than the previous one, binds a new
// Context. Replay stops at the first failing command.
func (s *Surface) Paint(backend canvas2d.Backend) error {
	if backend == nil {
		return ErrNilBackend
	}
	if !reflect.ValueOf(backend).Comparable() {
		return fmt.Errorf("%w: %T", ErrIncomparableBackend, backend)
	}
	s.paintMu.Lock()
	defer s.paintMu.Unlock()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.bindLocked(backend)
	ctx := s.ctx
	binding := s.binding
	entries := s.queue.Snapshot()
	policy := s.queue.Policy()
	s.state = Painting
	s.mu.Unlock()

	last, err := recording.ReplayEntries(ctx, entries, policy)

	s.mu.Lock()
	s.state = Idle
	if policy == recording.DrainOnce && !s.closed {
		s.queue.DropThrough(last)
	}
	s.mu.Unlock()

	if err != nil {
		canvas2d.Logger().Debug("surface: paint failed", "binding", binding.String(), "err", err)
		return fmt.Errorf("surface: paint: %w", err)
	}
	return nil
}

// bindLocked binds a new Context if none exists or backend differs from
// the bound one. s.mu must be held.
func (s *Surface) bindLocked(backend canvas2d.Backend) {
	if s.ctx != nil && s.bound == backend {
		return
	}
	rebinding := s.ctx != nil
	s.ctx = canvas2d.NewContext(backend, s.width, s.height, s.opts.contextOps...)
	s.bound = backend
	s.binding = uuid.New()

	log := canvas2d.Logger()
	if rebinding {
		log.Info("surface: rebound context to new backend",
			"binding", s.binding.String(), "backend", fmt.Sprintf("%T", backend))
		return
	}
	log.Debug("surface: bound context",
		"binding", s.binding.String(), "backend", fmt.Sprintf("%T", backend),
		"width", s.width, "height", s.height)
}

// BindingID identifies the current Context binding; it changes on every
// rebind. It is the zero UUID before the first paint.
func (s *Surface) BindingID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.binding
}

// State reports whether a paint is in progress.
func (s *Surface) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Pending returns the number of queued commands.
func (s *Surface) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Len()
}

// Revision returns the revision of the most recently drawn command.
func (s *Surface) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Revision()
}

// Resize changes the surface size. The Context binding is dropped and
// rebuilt at the next paint; queued commands are kept.
func (s *Surface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.width == width && s.height == height {
		return nil
	}
	s.width, s.height = width, height
	s.ctx = nil
	s.bound = nil
	return nil
}

// Clear drops every queued command.
func (s *Surface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Clear()
}

// Close clears the queue and drops the Context binding. Close is
// idempotent.
func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.queue.Clear()
	s.ctx = nil
	s.bound = nil
	return nil
}
