// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Client to observe or extend the
// request lifecycle.
type Event int

const (
	// BeforeRequest identifies the event that occurs after the outgoing
	// HTTP request is built but before it is handed to the transport.
	//
	// When Client fires BeforeRequest, the exchange's Request field is
	// set to the request that WILL BE sent after all BeforeRequest
	// handlers have finished. Handlers may modify the request, but
	// should clone reference-typed fields (URL, Header) before changing
	// them.
	BeforeRequest Event = iota
	// BeforeProcessBody identifies the event that occurs after the
	// transport produced a response carrying a body, but before the
	// body is read and converted.
	//
	// When Client fires BeforeProcessBody, the exchange's Response
	// field is set. BeforeProcessBody never fires if the transport
	// ended in error or if the response signals absence of a body.
	BeforeProcessBody
	// AfterCancel identifies the event that occurs when a request is
	// reported cancelled, whether it was superseded during its debounce
	// delay, superseded in flight, or cancelled by the caller's own
	// context.
	//
	// When Client fires AfterCancel, the exchange's Result field is set
	// to a cancelled result carrying the cancellation cause. The
	// Request and Response fields may be nil if the request never
	// reached the transport.
	AfterCancel
	// AfterRequestEnd identifies the event that occurs when the request
	// settles, regardless of outcome.
	//
	// When Client fires AfterRequestEnd, the exchange's End time is
	// set, and one of its Result and Err fields is non-nil.
	// AfterRequestEnd always fires last, after any AfterCancel event.
	AfterRequestEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeRequest",
	"BeforeProcessBody",
	"AfterCancel",
	"AfterRequestEnd",
}

// Events returns a slice containing all events which can occur during
// a request issued by Client, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeRequest,
		BeforeProcessBody,
		AfterCancel,
		AfterRequestEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
