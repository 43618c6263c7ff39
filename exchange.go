// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"context"
	"net/http"
	"time"
)

// An Exchange represents the state of a single request issued through
// a Client.
//
// When a request is issued, an Exchange is created for it. The
// Exchange is updated as the request progresses (when the HTTP
// response becomes available, when the body is converted, when the
// request is cancelled) and is visible to event handlers at each
// plug-in point.
//
// Event handlers may set values on an Exchange using its SetValue
// method and read them back using the Value method. However, they
// should treat the structure's exported field values as immutable and
// leave them unmodified, as the exchange state is vital to the correct
// functioning of the request logic. A limited exception is making
// reasonable changes to the http.Request before it is sent, for
// example to support an OAuth or AWS signing use case.
type Exchange struct {
	// Request specifies the HTTP request handed to the transport, or
	// about to be handed to the transport. It is nil if the request
	// was cancelled before reaching the transport.
	Request *http.Request

	// Response specifies the HTTP response received from the
	// transport. It is nil if the transport was never invoked, or
	// ended in an error.
	Response *http.Response

	// Raw is the buffered response body, before conversion. It is nil
	// if the response signalled absence of a body or if the request
	// ended before the body was read.
	Raw []byte

	// Result is the assembled result of the request. It is nil until
	// the request settles, and remains nil if the request settled with
	// an error rather than a result.
	Result *Result

	// Err is the error the request settled with, if any. Whenever the
	// transport produced the error, Err has the type *url.Error.
	Err error

	// Start is the time the request was issued. It is assigned a
	// non-zero value when the request starts and remains constant
	// thereafter.
	Start time.Time

	// End is the time the request settled. It contains the zero value
	// until the request settles.
	End time.Time

	// data contains arbitrary user data set by event handlers. The
	// fetchx library never touches it.
	data context.Context
}

// StatusCode returns the status code of the HTTP response, or 0 if
// there is no HTTP response (the transport was never invoked, or
// ended in an error).
func (x *Exchange) StatusCode() int {
	if x.Response == nil {
		return 0
	}

	return x.Response.StatusCode
}

// Header returns the HTTP response headers, or the nil header if there
// is no HTTP response.
//
// A nil return value is always safe for read-only operations, since
// http.Header is a map type.
func (x *Exchange) Header() http.Header {
	if x.Response == nil {
		var nilHeader http.Header
		return nilHeader
	}

	return x.Response.Header
}

// Cancelled reports whether the request settled with a cancelled
// result.
func (x *Exchange) Cancelled() bool {
	return x.Result != nil && x.Result.Cancelled
}

// Duration returns the duration of the request.
//
// If the request has not yet started, the duration is zero. If the
// request has Ended, the duration returned is equal to End minus
// Start. Otherwise, it is equal to the current time minus Start.
func (x *Exchange) Duration() time.Duration {
	if !x.Started() {
		return time.Duration(0)
	} else if !x.Ended() {
		return time.Since(x.Start)
	}

	return x.End.Sub(x.Start)
}

// Started indicates whether the request has started.
func (x *Exchange) Started() bool {
	return x.Start != (time.Time{})
}

// Ended indicates whether the request has settled. Once Ended returns
// true there will be no further changes to the exchange.
func (x *Exchange) Ended() bool {
	return x.End != (time.Time{})
}

// SetValue allows event handlers to store arbitrary data in the
// exchange.
//
// The key must follow the same rules as the key parameter in
// context.WithValue, namely it:
//
// • may not be nil;
//
// • must be comparable;
//
// • should not be of type string or any other built-in type to avoid
// collisions between different event handlers putting data into the
// same exchange.
func (x *Exchange) SetValue(key, value interface{}) {
	ctx := x.data
	if ctx == nil {
		ctx = context.Background()
	}

	x.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this exchange for key,
// or nil if there is no value associated with key.
func (x *Exchange) Value(key interface{}) interface{} {
	ctx := x.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}
