// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"context"
	"net/http"
)

// Requester is the interface that wraps the basic Do method.
//
// Do issues an HTTP request to the target and returns the assembled
// result (or error, if any). Client implements the Requester
// interface, and any other Requester implementation must behave
// substantially the same as Client.Do.
//
// Any Requester can be converted into a Fetcher via the Inflate
// function.
type Requester interface {
	Do(ctx context.Context, target string, opts *Options) (*Result, error)
}

// Getter is the interface that wraps the basic Get method.
//
// Get issues a GET to the specified target and returns the assembled
// result (or error, if any). Client implements the Getter interface.
//
// Any Requester can be used to emulate a Getter via the Get function.
type Getter interface {
	Get(ctx context.Context, target string, opts *Options) (*Result, error)
}

// Header is the interface that wraps the basic Head method.
//
// Head issues a HEAD to the specified target and returns the assembled
// result (or error, if any). Client implements the Header interface.
//
// Any Requester can be used to emulate a Header via the Head function.
type Header interface {
	Head(ctx context.Context, target string, opts *Options) (*Result, error)
}

// Poster is the interface that groups the body-bearing method
// shortcuts: Post, Put, Patch, and Delete.
//
// Each issues a request with the corresponding method to the specified
// target. The body parameter may be nil or any of the types supported
// by BodyBytes; a plain structured value is serialized as JSON with an
// application/json content type assigned only if the caller did not
// already specify one. Client implements the Poster interface.
//
// Any Requester can be used to emulate a Poster via the Post, Put,
// Patch, and Delete functions.
type Poster interface {
	Post(ctx context.Context, target string, body interface{}, opts *Options) (*Result, error)
	Put(ctx context.Context, target string, body interface{}, opts *Options) (*Result, error)
	Patch(ctx context.Context, target string, body interface{}, opts *Options) (*Result, error)
	Delete(ctx context.Context, target string, body interface{}, opts *Options) (*Result, error)
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes connections which were previously connected but are now
// sitting idle in a "keep-alive" state. It does not interrupt any
// connections currently in use.
//
// If the underlying implementation does not support this ability,
// CloseIdleConnections does nothing.
type IdleCloser interface {
	CloseIdleConnections()
}

// Fetcher is the interface that groups the basic Do, Get, Head, Post,
// Put, Patch, Delete, and CloseIdleConnections methods.
//
// Any Requester can be converted into a Fetcher via the Inflate
// function.
type Fetcher interface {
	Requester
	Getter
	Header
	Poster
	IdleCloser
}

// Get uses the specified Requester to issue a GET to the specified
// target, following the same lifecycle as r.Do.
func Get(r Requester, ctx context.Context, target string, opts *Options) (*Result, error) {
	return r.Do(ctx, target, shape(opts, http.MethodGet, nil))
}

// Head uses the specified Requester to issue a HEAD to the specified
// target, following the same lifecycle as r.Do.
func Head(r Requester, ctx context.Context, target string, opts *Options) (*Result, error) {
	return r.Do(ctx, target, shape(opts, http.MethodHead, nil))
}

// Post uses the specified Requester to issue a POST to the specified
// target, following the same lifecycle as r.Do.
//
// The body parameter may be nil or any of the types supported by
// BodyBytes.
func Post(r Requester, ctx context.Context, target string, body interface{}, opts *Options) (*Result, error) {
	return r.Do(ctx, target, shape(opts, http.MethodPost, body))
}

// Put uses the specified Requester to issue a PUT to the specified
// target. Body handling is the same as Post's.
func Put(r Requester, ctx context.Context, target string, body interface{}, opts *Options) (*Result, error) {
	return r.Do(ctx, target, shape(opts, http.MethodPut, body))
}

// Patch uses the specified Requester to issue a PATCH to the specified
// target. Body handling is the same as Post's.
func Patch(r Requester, ctx context.Context, target string, body interface{}, opts *Options) (*Result, error) {
	return r.Do(ctx, target, shape(opts, http.MethodPatch, body))
}

// Delete uses the specified Requester to issue a DELETE to the
// specified target. Body handling is the same as Post's.
func Delete(r Requester, ctx context.Context, target string, body interface{}, opts *Options) (*Result, error) {
	return r.Do(ctx, target, shape(opts, http.MethodDelete, body))
}

// Inflate converts any non-nil Requester into a Fetcher. This may be
// helpful for interop across library boundaries, i.e. if code that
// only has access to a Requester needs to call a function that
// requires a Fetcher.
func Inflate(r Requester) Fetcher {
	if r == nil {
		panic("fetchx: nil requester")
	}

	if f, ok := r.(Fetcher); ok {
		return f
	}

	return inflated{r}
}

type inflated struct {
	requester Requester
}

func (i inflated) Do(ctx context.Context, target string, opts *Options) (*Result, error) {
	return i.requester.Do(ctx, target, opts)
}

func (i inflated) Get(ctx context.Context, target string, opts *Options) (*Result, error) {
	return Get(i.requester, ctx, target, opts)
}

func (i inflated) Head(ctx context.Context, target string, opts *Options) (*Result, error) {
	return Head(i.requester, ctx, target, opts)
}

func (i inflated) Post(ctx context.Context, target string, body interface{}, opts *Options) (*Result, error) {
	return Post(i.requester, ctx, target, body, opts)
}

func (i inflated) Put(ctx context.Context, target string, body interface{}, opts *Options) (*Result, error) {
	return Put(i.requester, ctx, target, body, opts)
}

func (i inflated) Patch(ctx context.Context, target string, body interface{}, opts *Options) (*Result, error) {
	return Patch(i.requester, ctx, target, body, opts)
}

func (i inflated) Delete(ctx context.Context, target string, body interface{}, opts *Options) (*Result, error) {
	return Delete(i.requester, ctx, target, body, opts)
}

func (i inflated) CloseIdleConnections() {
	if ic, ok := i.requester.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}
