// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package content

import (
	"net/http"
	"regexp"
	"strings"
)

// A Predicate decides whether a processor applies to a response. It
// receives the whole response, not just the content type, so it can
// inspect the status code or other headers.
//
// Predicates must be safe for concurrent use by multiple goroutines.
type Predicate func(resp *http.Response, contentType string) bool

// Matches reports whether contentType satisfies pattern.
//
// A pattern is classified by its runtime shape:
//
// • a string matches if contentType contains it as a substring
// (case-sensitive, no normalization);
//
// • a *regexp.Regexp matches if it tests positive against contentType;
//
// • a Predicate (or any func(*http.Response, string) bool) is invoked
// with (resp, contentType) and its result is used directly;
//
// • a slice of patterns matches if any element matches.
//
// A nil pattern, and any element of an unsupported shape, never
// matches. Matches has no side effects beyond invoking predicates, is
// deterministic for non-predicate patterns, and never panics on
// malformed content type strings: any string is a valid input.
func Matches(resp *http.Response, contentType string, pattern interface{}) bool {
	if elems, ok := pattern.([]interface{}); ok {
		for _, el := range elems {
			if matchOne(resp, contentType, el) {
				return true
			}
		}
		return false
	}
	return matchOne(resp, contentType, pattern)
}

func matchOne(resp *http.Response, contentType string, pattern interface{}) bool {
	switch p := pattern.(type) {
	case string:
		return strings.Contains(contentType, p)
	case *regexp.Regexp:
		return p != nil && p.MatchString(contentType)
	case Predicate:
		return p != nil && p(resp, contentType)
	case func(*http.Response, string) bool:
		return p != nil && p(resp, contentType)
	default:
		return false
	}
}
