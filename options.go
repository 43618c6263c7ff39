// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import "time"

// Options configures a single request issued through a Client. The
// zero value (and a nil *Options) is a valid configuration: a GET with
// no body, no extra headers, and no managed cancellation.
type Options struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.). An
	// empty string means GET. The method shortcuts (Client.Get,
	// Client.Post, ...) overwrite this field.
	Method string

	// Body is the request payload. It may be nil (no body), or any of:
	// string, []byte, json.RawMessage, io.Reader, io.ReadCloser,
	// url.Values (form-encoded), or any other value, which is
	// serialized as JSON. See BodyBytes for the exact conversion
	// rules.
	//
	// When the payload implies a content type (form encoding, JSON
	// serialization), that content type is set on the request only if
	// Header does not already carry one: an explicit caller content
	// type always wins.
	Body interface{}

	// Header carries the request headers in any shape accepted by the
	// headers package: map[string]string, [][2]string, url.Values, or
	// http.Header.
	Header interface{}

	// BasicAuth optionally sets the Authorization header to HTTP Basic
	// Authentication with the given credentials.
	BasicAuth *Credentials

	// Cancel opts the request into managed cancellation. Using it on a
	// client that never called EnableCancellation fails the request
	// with ErrCancellationNotEnabled.
	Cancel *CancelSpec
}

// Credentials holds a username and password for HTTP Basic
// Authentication. The credentials are not encrypted in transit unless
// the connection itself is.
type Credentials struct {
	Username string
	Password string
}

// A CancelSpec keys a request into the client's cancellation registry.
type CancelSpec struct {
	// Key identifies the request for supersession. Issuing a new
	// request under a key while an earlier request is still in flight
	// cancels the earlier request. Any comparable value works as a
	// key; a nil or empty-string key disables the bookkeeping and the
	// request proceeds uncoordinated with others.
	Key interface{}

	// Delay is the debounce delay. When positive, the request waits
	// this long before reaching the transport; if it is superseded
	// during the wait, the transport is never invoked and the request
	// settles as cancelled at zero transport cost.
	Delay time.Duration
}

// shape returns a copy of opts with the method (and optionally the
// body) fixed, leaving the caller's Options untouched. A nil opts
// yields a fresh Options value.
func shape(opts *Options, method string, body interface{}) *Options {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	o.Method = method
	if body != nil {
		o.Body = body
	}
	return &o
}
