// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package cancel manages keyed cancellation of in-flight requests.

A Registry maps caller-supplied keys to live cancellation handles. At
most one handle is live per key at any time: beginning a request under
an in-use key cancels the earlier handle, with cause ErrSuperseded,
strictly before the new handle is installed. The holder of a handle
observes cancellation through the handle's context.

A Ticket is the caller's view of one handle. Proceed optionally waits a
debounce delay before allowing the request to go ahead, reporting false
if the ticket was itself superseded in the interim; Settle releases the
handle and must run on every exit path, success or failure, so that no
stale handle outlives its request.
*/
package cancel
