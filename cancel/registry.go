// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cancel

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded is the cancellation cause observed by a request whose
// key was reused by a newer request before the earlier one settled.
var ErrSuperseded = errors.New("fetchx/cancel: request superseded by a newer request with the same key")

// errSettled releases a handle's context resources when the request
// settles without having been cancelled. It is never observed as a
// cause by request code, which captures the cause before settling.
var errSettled = errors.New("fetchx/cancel: request settled")

type handle struct {
	cancel context.CancelCauseFunc
}

// A Registry maps caller-supplied keys to live cancellation handles.
// Keys may be any comparable value (string, integer, custom type). The
// zero value is a valid empty registry.
//
// A Registry is private to one client instance. It is safe for
// concurrent use by multiple goroutines.
type Registry struct {
	mu      sync.Mutex
	handles map[interface{}]*handle
}

// Begin installs a cancellation handle for key and returns the ticket
// tracking it. The derived context carried by the ticket is cancelled
// when the caller's ctx is cancelled or when a newer request begins
// under the same key, whichever comes first.
//
// If an existing handle occupies key, it is cancelled, with cause
// ErrSuperseded, before the new handle is installed, so the earlier
// request can never still believe it is live once Begin returns.
//
// A nil or empty-string key performs no bookkeeping: the returned
// ticket carries ctx unchanged, always proceeds, and settles as a
// no-op.
func (r *Registry) Begin(ctx context.Context, key interface{}) *Ticket {
	if key == nil || key == "" {
		return &Ticket{ctx: ctx}
	}
	cctx, cancelFn := context.WithCancelCause(ctx)
	h := &handle{cancel: cancelFn}
	r.mu.Lock()
	if prev, ok := r.handles[key]; ok {
		prev.cancel(ErrSuperseded)
	}
	if r.handles == nil {
		r.handles = make(map[interface{}]*handle)
	}
	r.handles[key] = h
	r.mu.Unlock()
	return &Ticket{reg: r, key: key, ctx: cctx, h: h}
}

// Live returns the number of keys with a live handle.
func (r *Registry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}

// A Ticket tracks one cancellation handle from Begin until Settle.
type Ticket struct {
	reg *Registry
	key interface{}
	ctx context.Context
	h   *handle
}

// Context returns the context the request must run under. For a keyed
// ticket it is cancelled by supersession as well as by the caller's
// original context; for an unkeyed ticket it is the caller's context
// unchanged.
func (t *Ticket) Context() context.Context {
	return t.ctx
}

// Proceed optionally waits the debounce delay, then reports whether
// the request may go ahead.
//
// With a positive delay, Proceed suspends for the full delay or until
// the ticket's context is cancelled, whichever comes first, and then
// checks whether this specific ticket was cancelled during the wait.
// Rapid repeated Begin calls under the same key during the window each
// cancel their predecessor, so only the last ticket surviving its full
// delay reports true. The wait itself never contacts the transport, so
// a superseded wait costs nothing at the transport level.
//
// An unkeyed ticket always reports true.
func (t *Ticket) Proceed(delay time.Duration) bool {
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-t.ctx.Done():
		}
	}
	if t.h == nil {
		return true
	}
	return t.ctx.Err() == nil
}

// Cause returns the cancellation cause of the ticket's context, or nil
// if it has not been cancelled. Capture the cause before calling
// Settle.
func (t *Ticket) Cause() error {
	if t.ctx == nil {
		return nil
	}
	return context.Cause(t.ctx)
}

// Settle releases the ticket's handle. The key's registry entry is
// removed only if this ticket still owns it: a successor installed
// under the same key is left untouched. Settle must run on every exit
// path of the request it tracks, typically via defer, regardless of
// whether the request completed, failed, or was itself superseded.
func (t *Ticket) Settle() {
	if t.h == nil {
		return
	}
	t.h.cancel(errSettled)
	t.reg.mu.Lock()
	if cur, ok := t.reg.handles[t.key]; ok && cur == t.h {
		delete(t.reg.handles, t.key)
	}
	t.reg.mu.Unlock()
}
