// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

// A Result is the value a request settles with when it does not end in
// a propagated error.
//
// Cancellation is the one condition Client converts into a normal
// return value instead of an error, and only on the managed path (see
// Client.EnableCancellation). Callers relying on managed cancellation
// must inspect Cancelled before trusting the OK, StatusCode, Status,
// and Body fields, which are only populated for a request that
// actually completed.
type Result struct {
	// Cancelled reports that the request was cancelled before
	// completing: superseded by a newer request under the same
	// cancellation key, or cancelled by the caller's context. When
	// Cancelled is true, no other field except Cause is populated.
	Cancelled bool

	// Cause is the originating cancellation cause: cancel.ErrSuperseded
	// for a superseded request, or the error that cancelled the
	// caller's context. It is nil unless Cancelled is true.
	Cause error

	// OK reports whether the response status code fell in the success
	// range, 200 through 299 inclusive.
	OK bool

	// StatusCode is the numeric HTTP response status code.
	StatusCode int

	// Status is the response status description, for example
	// "200 OK".
	Status string

	// Body is the converted response body: whatever value the resolved
	// conversion routine produced. It is nil when the response carried
	// no body.
	Body interface{}
}
