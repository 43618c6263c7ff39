// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package headers normalizes heterogeneous header representations into a
uniform sequence of (name, value) pairs.

The fetchx client accepts request headers in any of four shapes:

	map[string]string                   // simple mapping
	[][2]string                         // ordered list of pairs
	url.Values                          // key to multi-value collection
	http.Header                         // native header object

Pairs converts any of these into a canonical pair sequence, combining
repeated values under one name with ", " per RFC 9110. Canonical builds
an http.Header ready to attach to an outgoing request.
*/
package headers
