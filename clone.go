// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"net/http"

	"github.com/gogama/fetchx/cancel"
)

// A CloneOption adjusts what Clone carries over from the parent
// client.
type CloneOption func(*cloneConfig)

type cloneConfig struct {
	processors   bool
	handlers     bool
	cancellation bool
	transport    HTTPDoer
	ambient      bool
}

// WithoutProcessors produces a clone with an empty processor list
// instead of a copy of the parent's.
func WithoutProcessors() CloneOption {
	return func(cfg *cloneConfig) { cfg.processors = false }
}

// WithoutHandlers produces a clone with an empty handler group instead
// of a copy of the parent's.
func WithoutHandlers() CloneOption {
	return func(cfg *cloneConfig) { cfg.handlers = false }
}

// WithoutCancellation produces a clone with cancellation mode reset to
// disabled, regardless of the parent's mode.
func WithoutCancellation() CloneOption {
	return func(cfg *cloneConfig) { cfg.cancellation = false }
}

// WithTransport produces a clone using the given transport instead of
// inheriting the parent's. A nil transport is equivalent to
// WithDefaultTransport.
func WithTransport(transport HTTPDoer) CloneOption {
	return func(cfg *cloneConfig) {
		cfg.transport = transport
		cfg.ambient = transport == nil
	}
}

// WithDefaultTransport produces a clone using http.DefaultClient
// instead of inheriting the parent's transport.
func WithDefaultTransport() CloneOption {
	return func(cfg *cloneConfig) {
		cfg.transport = nil
		cfg.ambient = true
	}
}

// Clone forks the client's configuration into an independent client.
//
// By default the clone inherits the parent's transport and logger,
// carries an independent copy of the parent's processor list and
// handler group, and preserves the parent's cancellation mode. Options
// adjust each of these independently.
//
// No mutable state is shared between parent and clone: registering
// processors or handlers on one never affects the other, and a clone
// in cancellation mode starts with a fresh, empty cancellation
// registry. Live cancellation keys are never copied across clones.
func (c *Client) Clone(opts ...CloneOption) *Client {
	cfg := cloneConfig{processors: true, handlers: true, cancellation: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	transport := c.transport
	if cfg.ambient {
		transport = http.DefaultClient
	} else if cfg.transport != nil {
		transport = cfg.transport
	}

	n := &Client{transport: transport, logger: c.logger}
	if cfg.processors && c.processors != nil {
		n.processors = c.processors.Clone()
	}
	if cfg.handlers && c.handlers != nil {
		n.handlers = c.handlers.clone()
	}
	if cfg.cancellation && c.cancelMode {
		n.cancelMode = true
		n.cancels = &cancel.Registry{}
	}
	return n
}
