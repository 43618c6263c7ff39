// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gogama/fetchx/headers"
)

// newRequest builds the outgoing HTTP request for one call: buffers
// the body, normalizes the caller's header collection, applies the
// implied content type only when the caller did not set one, and binds
// the request to ctx so either cancellation input can stop it.
func newRequest(ctx context.Context, target string, o *Options) (*http.Request, error) {
	method := o.Method
	if method == "" {
		method = http.MethodGet
	}
	body, impliedType, err := BodyBytes(o.Body)
	if err != nil {
		return nil, err
	}
	h, err := headers.Canonical(o.Header)
	if err != nil {
		return nil, err
	}
	var r io.Reader
	if len(body) > 0 {
		// bytes.Reader gets net/http to set GetBody and ContentLength,
		// keeping the request replayable across redirects.
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, r)
	if err != nil {
		return nil, err
	}
	req.URL.Host = removeEmptyPort(req.URL.Host)
	if h != nil {
		req.Header = h
	}
	if impliedType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", impliedType)
	}
	if o.BasicAuth != nil {
		req.SetBasicAuth(o.BasicAuth.Username, o.BasicAuth.Password)
	}
	return req, nil
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
