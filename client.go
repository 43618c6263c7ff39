// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gogama/fetchx/cancel"
	"github.com/gogama/fetchx/content"
	"github.com/gogama/fetchx/status"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

var (
	emptyHandlers   = HandlerGroup{}
	emptyProcessors = content.Registry{}
)

// A Client issues HTTP requests through a pluggable transport and
// converts response bodies into usable values based on the response's
// content type. Its zero value is a valid configuration using
// http.DefaultClient as the transport, no custom processors, and
// cancellation mode off; NewClient is the conventional way to build
// one.
//
// A Client is higher-level than an HTTPDoer. The HTTPDoer is
// responsible for all details of sending the HTTP request and
// receiving the response, including redirects, connection pooling,
// timeouts, and retries if it implements any. On top of the HTTPDoer's
// feature set, Client adds the following:
//
// • Client reads and buffers the entire HTTP response body and
// resolves a conversion routine for it from the content type,
// consulting processors registered with WithProcessor before the
// built-in JSON and text handling;
//
// • Client optionally manages cancellation of in-flight requests
// keyed by caller-supplied identifiers, with automatic supersession
// and debounce delay (see EnableCancellation);
//
// • Client invokes user-provided handler functions at designated
// plug-in points of the request lifecycle (see HandlerGroup); and
//
// • Client can be cloned into specialized variants that share none of
// the parent's mutable state (see Clone).
//
// Configuration methods (WithProcessor, WithHandler, WithLogger,
// EnableCancellation) mutate the receiver and return it for chaining.
// Configure a Client before sharing it across goroutines; once
// configured, Client is safe for concurrent use.
type Client struct {
	transport  HTTPDoer
	processors *content.Registry
	handlers   *HandlerGroup
	logger     zerolog.Logger
	cancelMode bool
	cancels    *cancel.Registry
}

// NewClient returns a Client using the given transport. A nil
// transport selects http.DefaultClient; the choice is resolved here,
// once, rather than at call time.
func NewClient(transport HTTPDoer) *Client {
	if transport == nil {
		transport = http.DefaultClient
	}
	return &Client{transport: transport}
}

// WithProcessor appends a custom body processor entry and returns the
// client for chaining.
//
// The pattern may be any shape accepted by content.Matches: a
// substring, a *regexp.Regexp, a content.Predicate, or a slice mixing
// them. Entries are consulted in registration order, first match wins,
// and a matching entry takes priority over the built-in JSON and text
// handling. No validation of pattern well-formedness is performed
// beyond what the classifier tolerates.
func (c *Client) WithProcessor(pattern interface{}, routine content.Routine) *Client {
	if c.processors == nil {
		c.processors = &content.Registry{}
	}
	c.processors.Register(pattern, routine)
	return c
}

// WithHandler adds an event handler to the back of the handler chain
// for evt and returns the client for chaining.
func (c *Client) WithHandler(evt Event, h Handler) *Client {
	if c.handlers == nil {
		c.handlers = &HandlerGroup{}
	}
	c.handlers.PushBack(evt, h)
	return c
}

// WithLogger sets the logger used to trace the request lifecycle and
// returns the client for chaining. By default the client logs nothing.
func (c *Client) WithLogger(logger zerolog.Logger) *Client {
	c.logger = logger
	return c
}

// EnableCancellation turns on managed cancellation mode and returns
// the client for chaining. The transition is one-way: there is no way
// to turn the mode back off. Calling EnableCancellation on a client
// already in cancellation mode is a no-op.
//
// Requests issued with Options.Cancel on a client that never enabled
// cancellation mode fail with ErrCancellationNotEnabled.
func (c *Client) EnableCancellation() *Client {
	if !c.cancelMode {
		c.cancelMode = true
		c.cancels = &cancel.Registry{}
	}
	return c
}

// CancellationEnabled reports whether the client is in managed
// cancellation mode.
func (c *Client) CancellationEnabled() bool {
	return c.cancelMode
}

// Do issues an HTTP request to target and converts the response body,
// returning the assembled result.
//
// The request lifecycle is: resolve cancellation bookkeeping for
// Options.Cancel (including the debounce delay, which can settle the
// request as cancelled without ever invoking the transport); invoke
// the transport with the request bound to a context that either
// cancellation input, the caller's ctx or the managed key signal, can
// stop; buffer the response body; resolve and run the conversion
// routine for the response's content type; and release the
// cancellation handle unconditionally.
//
// When the client is in cancellation mode, a cancellation-class
// transport failure is converted into a non-error Result with
// Cancelled set and the originating cause attached. Outside
// cancellation mode, cancellation propagates as an error like any
// other transport failure. All other transport failures are returned
// wrapped in *url.Error, never retried, and never reinterpreted;
// conversion failures (including content.ErrMissingContentType and
// *content.UnresolvedContentTypeError) propagate as-is.
//
// Exactly one of the returned result and error is non-nil.
func (c *Client) Do(ctx context.Context, target string, opts *Options) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.Cancel != nil && !c.cancelMode {
		return nil, ErrCancellationNotEnabled
	}

	handlers := c.handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}
	processors := c.processors
	if processors == nil {
		processors = &emptyProcessors
	}

	x := &Exchange{Start: time.Now()}
	defer func() {
		x.End = time.Now()
		handlers.run(AfterRequestEnd, x)
	}()

	rctx := ctx
	if o.Cancel != nil {
		ticket := c.cancels.Begin(ctx, o.Cancel.Key)
		defer ticket.Settle()
		rctx = ticket.Context()
		if !ticket.Proceed(o.Cancel.Delay) {
			cause := ticket.Cause()
			c.logger.Debug().Interface("key", o.Cancel.Key).AnErr("cause", cause).
				Msg("request superseded before reaching transport")
			return c.cancelled(handlers, x, cause), nil
		}
	}

	req, err := newRequest(rctx, target, &o)
	if err != nil {
		x.Err = err
		return nil, err
	}
	x.Request = req
	handlers.run(BeforeRequest, x)
	c.logger.Debug().Str("method", req.Method).Str("url", target).Msg("issuing request")

	resp, err := c.doer().Do(req)
	if err != nil {
		return c.settleError(handlers, x, rctx, err)
	}
	x.Response = resp

	var raw []byte
	if content.HasBody(resp) {
		handlers.run(BeforeProcessBody, x)
		raw, err = readBody(resp)
		if err != nil {
			return c.settleError(handlers, x, rctx, err)
		}
		x.Raw = raw
	} else if resp.Body != nil {
		_ = resp.Body.Close()
	}

	value, err := processors.Convert(resp, raw)
	if err != nil {
		x.Err = err
		return nil, err
	}

	res := &Result{
		OK:         status.IsSuccess(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       value,
	}
	x.Result = res
	c.logger.Trace().Int("status", resp.StatusCode).Str("url", target).Msg("request complete")
	return res, nil
}

// settleError wraps a transport-level failure and decides whether it
// settles the request as a cancelled result (cancellation mode only)
// or propagates to the caller.
func (c *Client) settleError(handlers *HandlerGroup, x *Exchange, rctx context.Context, err error) (*Result, error) {
	err = urlErrorWrap(x.Request, err)
	if c.cancelMode && cancel.IsCancellation(err) {
		cause := context.Cause(rctx)
		if cause == nil {
			cause = err
		}
		c.logger.Debug().AnErr("cause", cause).Msg("request cancelled in flight")
		return c.cancelled(handlers, x, cause), nil
	}
	x.Err = err
	return nil, err
}

func (c *Client) cancelled(handlers *HandlerGroup, x *Exchange, cause error) *Result {
	res := &Result{Cancelled: true, Cause: cause}
	x.Result = res
	handlers.run(AfterCancel, x)
	return res
}

func readBody(resp *http.Response) ([]byte, error) {
	defer func() {
		_ = resp.Body.Close()
	}()
	return io.ReadAll(resp.Body)
}

// Get issues a GET to the specified target, following the same
// lifecycle as Do.
func (c *Client) Get(ctx context.Context, target string, opts *Options) (*Result, error) {
	return Get(c, ctx, target, opts)
}

// Head issues a HEAD to the specified target, following the same
// lifecycle as Do.
func (c *Client) Head(ctx context.Context, target string, opts *Options) (*Result, error) {
	return Head(c, ctx, target, opts)
}

// Post issues a POST to the specified target, following the same
// lifecycle as Do.
//
// The body parameter may be nil or any of the types supported by
// BodyBytes. A plain structured value is serialized as JSON and, if
// the caller did not specify a Content-Type header, the request is
// tagged application/json; an explicit caller content type is never
// overwritten.
func (c *Client) Post(ctx context.Context, target string, body interface{}, opts *Options) (*Result, error) {
	return Post(c, ctx, target, body, opts)
}

// Put issues a PUT to the specified target. Body handling is the same
// as Post's.
func (c *Client) Put(ctx context.Context, target string, body interface{}, opts *Options) (*Result, error) {
	return Put(c, ctx, target, body, opts)
}

// Patch issues a PATCH to the specified target. Body handling is the
// same as Post's.
func (c *Client) Patch(ctx context.Context, target string, body interface{}, opts *Options) (*Result, error) {
	return Patch(c, ctx, target, body, opts)
}

// Delete issues a DELETE to the specified target. Body handling is the
// same as Post's.
func (c *Client) Delete(ctx context.Context, target string, body interface{}, opts *Options) (*Result, error) {
	return Delete(c, ctx, target, body, opts)
}

// CloseIdleConnections invokes the same method on the client's
// underlying transport.
//
// If the transport has no CloseIdleConnections method, this method
// does nothing.
func (c *Client) CloseIdleConnections() {
	doer := c.doer()
	if ic, ok := doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (c *Client) doer() HTTPDoer {
	if c.transport == nil {
		return http.DefaultClient
	}

	return c.transport
}

func urlErrorWrap(req *http.Request, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}

	return &url.Error{
		Op:  urlErrorOp(req.Method),
		URL: req.URL.String(),
		Err: err,
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
