package backend

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/canvas2d"
)

// Registered backend names.
const (
	Raster = "raster"
	Trace  = "trace"
)

// ErrNotRegistered is returned by New for an unknown backend name.
var ErrNotRegistered = errors.New("backend: not registered")

// Factory creates a backend for a surface of the given size.
type Factory func(width, height int) (canvas2d.Backend, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register makes a backend available under name. It panics if factory is
// nil or name is already registered, so duplicate imports fail at init.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("backend: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("backend: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a backend. It is intended for tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// New creates a backend by name.
func New(name string, width, height int) (canvas2d.Backend, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (forgotten import?)", ErrNotRegistered, name)
	}
	return factory(width, height)
}

// Available returns the registered backend names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}
