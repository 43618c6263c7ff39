// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package fetchx provides a request/response orchestration layer over any
HTTP transport: it converts response bodies into usable values based on
the response content type, and optionally manages cancellation of
in-flight requests keyed by caller-supplied identifiers.

Create a Client to begin making requests.

	client := fetchx.NewClient(nil) // nil selects http.DefaultClient
	res, err := client.Get(ctx, "https://api.example.com/items", nil)
	if err != nil {
		...
	}
	items := res.Body // decoded per the response content type

A Result carries the success flag, status code, status description,
and the converted body. JSON-family content types (application/json,
application/problem+json, application/ld+json, ...) decode as
structured data; text/* decodes as a string. Register a custom
processor to take priority over the built-in handling:

	client.WithProcessor("application/vnd.example", func(resp *http.Response, body []byte, b content.Builtins) (interface{}, error) {
		return b.JSON()
	})

For control over how requests are sent, construct the client with a
custom HTTPDoer, such as a configured http.Client:

	doer := &http.Client{...} // see package net/http
	client := fetchx.NewClient(doer)

Managed cancellation is off by default and is enabled with a one-way
transition. Once enabled, issuing a request under a key cancels any
earlier in-flight request with the same key, and an optional debounce
delay keeps a rapidly superseded request from ever reaching the
transport:

	client.EnableCancellation()
	res, err := client.Get(ctx, url, &fetchx.Options{
		Cancel: &fetchx.CancelSpec{Key: "search", Delay: 150 * time.Millisecond},
	})
	if err == nil && res.Cancelled {
		// superseded by a newer "search" request; res.Cause says why
	}

Clone forks a client's configuration into an independent variant; the
clone shares no mutable state with its parent:

	api := client.Clone(fetchx.WithoutProcessors())

To hook into the request lifecycle, install a handler at the
appropriate plug-in point:

	client.WithHandler(fetchx.BeforeRequest, fetchx.HandlerFunc(
		func(_ fetchx.Event, x *fetchx.Exchange) {
			x.Request.Header.Set("X-Request-Source", "fetchx")
		}))

Package fetchx provides basic interfaces for each method of the client
(Requester, Getter, Header, Poster, and IdleCloser); a combined
interface that composes all the basic methods (Fetcher); and utility
functions for working with a Requester (Inflate, Get, Head, Post, Put,
Patch, and Delete).

The client never retries, caches, or pools connections; all of that is
the transport's responsibility.
*/
package fetchx
