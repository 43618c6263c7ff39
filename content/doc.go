// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package content classifies HTTP response content types and converts
response bodies into usable values.

The two halves of the package are the classifier (Matches), which
decides whether a content type satisfies a pattern, and the processor
registry (Registry), which resolves the conversion routine for a
response and runs it.

A pattern is a string (substring match), a *regexp.Regexp, a Predicate,
or a slice mixing any of them (match if any element matches). A routine
receives the response, the fully buffered body, and a Builtins value
exposing the two stock decodes (JSON and Text) so it can delegate to
either:

	reg := &content.Registry{}
	reg.Register("application/vnd.acme", func(resp *http.Response, body []byte, b content.Builtins) (interface{}, error) {
		return b.JSON()
	})

When no registered entry matches, Registry falls back to the built-in
JSON-family and text/* handling, and fails with
*UnresolvedContentTypeError if neither applies.
*/
package content
