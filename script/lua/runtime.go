// Package lua runs Lua drawing scripts against a canvas2d.Context.
//
// Scripts see a global table ctx that mirrors the Canvas 2D API:
//
//	ctx.setFillStyle("#ff0")
//	ctx.fillRect(10, 10, 100, 200)
//	ctx.beginPath()
//	ctx.arc(ctx.width / 2, ctx.height / 2, 40, 0, 2 * math.pi)
//	ctx:fill()
//
// Both ctx.f(...) and ctx:f(...) call styles work. Execution runs under
// CPU and memory limits.
package lua

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/arnodel/golua/lib"
	rt "github.com/arnodel/golua/runtime"

	"github.com/gogpu/canvas2d"
	"github.com/gogpu/canvas2d/recording"
)

var (
	// ErrScript is returned when a script fails to compile or run.
	ErrScript = errors.New("lua: script error")

	// ErrLimitExceeded is returned when a script exceeds its CPU or
	// memory limit.
	ErrLimitExceeded = errors.New("lua: resource limit exceeded")

	// ErrClosed is returned by a closed Runtime.
	ErrClosed = errors.New("lua: runtime is closed")
)

// Config contains configuration options for the Lua runtime.
type Config struct {
	// CPULimit is the instruction limit for one script run. 0 means
	// unlimited.
	CPULimit uint64
	// MemoryLimit is the allocation limit in bytes for one script run.
	// 0 means unlimited.
	MemoryLimit uint64
	// Stdout receives print output. If nil, output is only captured.
	Stdout io.Writer
}

// DefaultConfig returns a Config with a 10M instruction and 50 MB limit.
func DefaultConfig() Config {
	return Config{
		CPULimit:    10_000_000,
		MemoryLimit: 50 * 1024 * 1024,
		Stdout:      os.Stdout,
	}
}

// Runtime is a Lua state with the ctx table installed.
//
// Runtime is safe for concurrent use; runs are serialized.
type Runtime struct {
	config  Config
	runtime *rt.Runtime
	output  *bytes.Buffer
	cleanup func()
	ctx     *binding
	mu      sync.Mutex
}

// New creates a runtime with the Lua standard library and the ctx table.
func New(config Config) (*Runtime, error) {
	output := &bytes.Buffer{}
	var stdout io.Writer = output
	if config.Stdout != nil {
		stdout = io.MultiWriter(config.Stdout, output)
	}

	r := rt.New(stdout)
	cleanup := lib.LoadAll(r)

	b := newBinding()
	r.GlobalEnv().Set(rt.StringValue("ctx"), rt.TableValue(b.table))

	return &Runtime{
		config:  config,
		runtime: r,
		output:  output,
		cleanup: cleanup,
		ctx:     b,
	}, nil
}

// Compile compiles a chunk without running it.
func (r *Runtime) Compile(name string, code []byte) (*rt.Closure, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.runtime == nil {
		return nil, ErrClosed
	}
	closure, err := r.runtime.CompileAndLoadLuaChunk(name, code, rt.TableValue(r.runtime.GlobalEnv()))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrScript, name, err)
	}
	return closure, nil
}

// Run compiles and runs a chunk with ctx bound to c.
func (r *Runtime) Run(c *canvas2d.Context, name string, code []byte) error {
	closure, err := r.Compile(name, code)
	if err != nil {
		return err
	}
	return r.Execute(c, closure)
}

// RunFile runs the Lua file at path with ctx bound to c.
func (r *Runtime) RunFile(c *canvas2d.Context, path string) error {
	code, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("lua: %w", err)
	}
	return r.Run(c, path, code)
}

// Execute runs a compiled chunk with ctx bound to c.
func (r *Runtime) Execute(c *canvas2d.Context, closure *rt.Closure) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.runtime == nil {
		return ErrClosed
	}

	r.ctx.bind(c)
	defer r.ctx.bind(nil)

	// golua panics when a hard limit is hit.
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrLimitExceeded, p)
		}
	}()

	r.runtime.PushContext(rt.RuntimeContextDef{
		HardLimits: rt.RuntimeResources{
			Cpu:    r.config.CPULimit,
			Memory: r.config.MemoryLimit,
		},
	})
	defer r.runtime.PopContext()

	if _, err := rt.Call1(r.runtime.MainThread(), rt.FunctionValue(closure)); err != nil {
		canvas2d.Logger().Debug("lua: script failed", "err", err)
		return fmt.Errorf("%w: %w", ErrScript, err)
	}
	return nil
}

// Command compiles a chunk into a recording command that runs it against
// whatever context the command is replayed into.
func (r *Runtime) Command(name string, code []byte) (recording.Func, error) {
	closure, err := r.Compile(name, code)
	if err != nil {
		return nil, err
	}
	return func(c *canvas2d.Context) error {
		return r.Execute(c, closure)
	}, nil
}

// Output returns everything the scripts printed.
func (r *Runtime) Output() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.output.String()
}

// Close releases the Lua state. Close is idempotent.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cleanup != nil {
		r.cleanup()
		r.cleanup = nil
	}
	r.runtime = nil
	return nil
}
