// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
)

// ErrMissingContentType is returned by Registry.Convert when the
// response carries a body but no Content-Type header. The response
// cannot be classified, and no default is assumed.
var ErrMissingContentType = errors.New("fetchx/content: response has a body but no Content-Type header")

// An UnresolvedContentTypeError is returned by Registry.Convert when
// the response's content type matches no registered processor and
// neither of the built-in fallbacks (JSON family, text/*).
type UnresolvedContentTypeError struct {
	// ContentType is the offending Content-Type header value.
	ContentType string
}

func (e *UnresolvedContentTypeError) Error() string {
	return fmt.Sprintf("fetchx/content: no processor matches content type %q", e.ContentType)
}

// A Routine converts a buffered response body into a usable value.
// It receives the response, the fully buffered body, and a Builtins
// value it may delegate to. Its return value, including any error,
// propagates to the caller as-is: the registry never catches or
// reinterprets conversion failures.
//
// Routines must be safe for concurrent use by multiple goroutines.
type Routine func(resp *http.Response, body []byte, b Builtins) (interface{}, error)

// Builtins exposes the two stock conversion routines to a custom
// Routine, bound to the body being converted.
type Builtins struct {
	body []byte
}

// JSON decodes the body as serialized structured data, yielding
// map[string]interface{}, []interface{}, or a primitive per
// encoding/json unmarshaling into interface{}.
func (b Builtins) JSON() (interface{}, error) {
	var v interface{}
	err := json.Unmarshal(b.body, &v)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Text decodes the body as plain text, yielding it byte for byte as a
// string.
func (b Builtins) Text() (string, error) {
	return string(b.body), nil
}

var (
	jsonPattern = regexp.MustCompile(`^application/(?:[^;\s]+\+)?json(?:\s*;.*)?$`)
	textPattern = regexp.MustCompile(`^text/`)
)

type entry struct {
	pattern interface{}
	routine Routine
}

// A Registry is an ordered list of (pattern, routine) entries that
// resolves which routine converts a given response's body. Entries are
// consulted in registration order and the first match wins; the
// built-in JSON-family and text/* routines apply only when no entry
// matches. The zero value is a valid empty registry.
//
// A Registry is exclusively owned by one client: registration is not
// synchronized with conversion. Clone the registry instead of sharing
// it.
type Registry struct {
	entries []entry
}

// Register appends a processor entry. The pattern may be any shape
// accepted by Matches; no well-formedness validation is performed
// beyond what the classifier tolerates. A nil routine panics.
func (r *Registry) Register(pattern interface{}, routine Routine) {
	if routine == nil {
		panic("fetchx/content: nil routine")
	}
	r.entries = append(r.entries, entry{pattern: pattern, routine: routine})
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Clone returns an independent copy of the registry. Later
// registrations on either the original or the copy do not affect the
// other. The entries themselves (patterns and routines) are shared,
// as they are immutable once added.
func (r *Registry) Clone() *Registry {
	c := &Registry{}
	if len(r.entries) > 0 {
		c.entries = make([]entry, len(r.entries))
		copy(c.entries, r.entries)
	}
	return c
}

// Convert resolves the conversion routine for resp and applies it to
// the buffered body.
//
// If the response signals absence of a body (per HasBody), Convert
// returns (nil, nil) immediately without consulting any processor.
// Otherwise the Content-Type header classifies the response: a missing
// header fails with ErrMissingContentType, a content type no routine
// handles fails with *UnresolvedContentTypeError. Conversion failures
// from the resolved routine propagate unmodified.
func (r *Registry) Convert(resp *http.Response, body []byte) (interface{}, error) {
	if !HasBody(resp) {
		return nil, nil
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		return nil, ErrMissingContentType
	}
	b := Builtins{body: body}
	for _, en := range r.entries {
		if Matches(resp, contentType, en.pattern) {
			return en.routine(resp, body, b)
		}
	}
	if jsonPattern.MatchString(contentType) {
		return b.JSON()
	}
	if textPattern.MatchString(contentType) {
		return b.Text()
	}
	return nil, &UnresolvedContentTypeError{ContentType: contentType}
}

// HasBody reports whether the response carries a body per the fetch
// contract: a nil or http.NoBody body, a 204, 205 or 304 status, and
// the response to a HEAD request all signal absence.
func HasBody(resp *http.Response) bool {
	if resp.Body == nil || resp.Body == http.NoBody {
		return false
	}
	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusResetContent, http.StatusNotModified:
		return false
	}
	if resp.Request != nil && resp.Request.Method == http.MethodHead {
		return false
	}
	return true
}
