// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package content

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	resp := &http.Response{StatusCode: 200}
	t.Run("string substring", func(t *testing.T) {
		assert.True(t, Matches(resp, "application/json", "json"))
		assert.True(t, Matches(resp, "application/json", "application/json"))
		assert.False(t, Matches(resp, "application/json", "JSON"), "case-sensitive")
		assert.False(t, Matches(resp, "text/plain", "json"))
		assert.True(t, Matches(resp, "anything", ""), "empty substring matches everything")
	})
	t.Run("regexp", func(t *testing.T) {
		assert.True(t, Matches(resp, "application/problem+json", regexp.MustCompile(`\+json$`)))
		assert.False(t, Matches(resp, "application/json", regexp.MustCompile(`^text/`)))
		assert.False(t, Matches(resp, "application/json", (*regexp.Regexp)(nil)))
	})
	t.Run("predicate", func(t *testing.T) {
		var gotResp *http.Response
		var gotType string
		p := Predicate(func(resp *http.Response, contentType string) bool {
			gotResp = resp
			gotType = contentType
			return true
		})
		assert.True(t, Matches(resp, "application/octet-stream", p))
		assert.Same(t, resp, gotResp)
		assert.Equal(t, "application/octet-stream", gotType)
		assert.False(t, Matches(resp, "x", Predicate(func(*http.Response, string) bool { return false })))
		assert.False(t, Matches(resp, "x", Predicate(nil)))
	})
	t.Run("plain func predicate", func(t *testing.T) {
		f := func(resp *http.Response, contentType string) bool {
			return resp.StatusCode == 200
		}
		assert.True(t, Matches(resp, "x", f))
		assert.False(t, Matches(&http.Response{StatusCode: 500}, "x", f))
	})
	t.Run("mixed array, first match wins", func(t *testing.T) {
		pattern := []interface{}{
			"text/csv",
			regexp.MustCompile(`^application/xml`),
		}
		assert.True(t, Matches(resp, "text/csv; header=present", pattern))
		assert.True(t, Matches(resp, "application/xml", pattern))
		assert.False(t, Matches(resp, "application/json", pattern))
		assert.False(t, Matches(resp, "application/json", []interface{}{}))
	})
	t.Run("unsupported shapes never match", func(t *testing.T) {
		assert.False(t, Matches(resp, "application/json", nil))
		assert.False(t, Matches(resp, "application/json", 42))
		assert.False(t, Matches(resp, "application/json", []interface{}{42, true}))
	})
	t.Run("malformed content types are plain strings", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Matches(resp, "", "json")
			Matches(resp, ";;;===garbage\x00", regexp.MustCompile(`garbage`))
		})
		assert.True(t, Matches(resp, ";;;garbage", "garbage"))
	})
}
