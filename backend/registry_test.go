package backend

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/canvas2d"
)

type nopBackend struct{ canvas2d.Backend }

func TestRegisterAndNew(t *testing.T) {
	const name = "registry-test"
	t.Cleanup(func() { Unregister(name) })

	var gotW, gotH int
	Register(name, func(w, h int) (canvas2d.Backend, error) {
		gotW, gotH = w, h
		return nopBackend{}, nil
	})

	if !IsRegistered(name) {
		t.Fatal("IsRegistered = false after Register")
	}
	if !slices.Contains(Available(), name) {
		t.Errorf("Available() = %v, missing %q", Available(), name)
	}
	b, err := New(name, 320, 240)
	if err != nil || b == nil {
		t.Fatalf("New() = %v, %v", b, err)
	}
	if gotW != 320 || gotH != 240 {
		t.Errorf("factory got %dx%d, want 320x240", gotW, gotH)
	}
}

func TestNewUnknown(t *testing.T) {
	if _, err := New("no-such-backend", 1, 1); !errors.Is(err, ErrNotRegistered) {
		t.Errorf("error = %v, want ErrNotRegistered", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	const name = "registry-dup"
	t.Cleanup(func() { Unregister(name) })

	factory := func(int, int) (canvas2d.Backend, error) { return nopBackend{}, nil }
	Register(name, factory)

	tests := []struct {
		name string
		fn   func()
	}{
		{"duplicate", func() { Register(name, factory) }},
		{"nil factory", func() { Register("registry-nil", nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register should panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestAvailableSorted(t *testing.T) {
	names := []string{"zz-test", "aa-test"}
	for _, n := range names {
		Register(n, func(int, int) (canvas2d.Backend, error) { return nopBackend{}, nil })
	}
	t.Cleanup(func() {
		for _, n := range names {
			Unregister(n)
		}
	})
	if got := Available(); !slices.IsSorted(got) {
		t.Errorf("Available() = %v, want sorted", got)
	}
}
