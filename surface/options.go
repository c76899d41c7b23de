// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/gogpu/canvas2d"
	"github.com/gogpu/canvas2d/recording"
)

// Option configures a Surface.
type Option func(*options)

type options struct {
	policy     recording.ReplayPolicy
	contextOps []canvas2d.ContextOption
}

func defaultOptions() options {
	return options{policy: recording.ReplayAll}
}

// WithPolicy sets the queue replay policy. The default is
// recording.ReplayAll.
func WithPolicy(p recording.ReplayPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithContextOptions sets options applied to every Context the surface
// binds.
func WithContextOptions(opts ...canvas2d.ContextOption) Option {
	return func(o *options) {
		o.contextOps = append(o.contextOps, opts...)
	}
}
