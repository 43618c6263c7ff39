// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerGroup(t *testing.T) {
	var evts []string
	var exchanges []*Exchange
	h1 := &testHandler{seq: 1, evts: &evts, exchanges: &exchanges}
	h2 := &testHandler{seq: 2, evts: &evts, exchanges: &exchanges}
	g := &HandlerGroup{}
	t.Run("PushBack", func(t *testing.T) {
		assert.Panics(t, func() { g.PushBack(BeforeRequest, nil) })
		assert.Panics(t, func() { g.PushBack(Event(123), h1) })
		g.PushBack(BeforeRequest, h1)
		g.PushBack(BeforeRequest, h2)
		g.PushBack(AfterRequestEnd, h1)
	})
	t.Run("run", func(t *testing.T) {
		x1 := &Exchange{Raw: []byte{1}}
		x2 := &Exchange{Raw: []byte{2}}
		assert.Empty(t, evts)
		assert.Empty(t, exchanges)
		g.run(AfterCancel, x1)
		assert.Empty(t, evts)
		assert.Empty(t, exchanges)
		g.run(BeforeRequest, x1)
		assert.Equal(t, []string{"1.BeforeRequest", "2.BeforeRequest"}, evts)
		assert.Equal(t, []*Exchange{x1, x1}, exchanges)
		evts = evts[:0]
		exchanges = exchanges[:0]
		g.run(AfterRequestEnd, x2)
		assert.Equal(t, []string{"1.AfterRequestEnd"}, evts)
		assert.Equal(t, []*Exchange{x2}, exchanges)
		evts = evts[:0]
		exchanges = exchanges[:0]
		g.run(BeforeRequest, x2)
		assert.Equal(t, []string{"1.BeforeRequest", "2.BeforeRequest"}, evts)
		assert.Equal(t, []*Exchange{x2, x2}, exchanges)
	})
}

func TestHandlerGroupClone(t *testing.T) {
	var evts []string
	var exchanges []*Exchange
	h1 := &testHandler{seq: 1, evts: &evts, exchanges: &exchanges}
	h2 := &testHandler{seq: 2, evts: &evts, exchanges: &exchanges}

	g := &HandlerGroup{}
	g.PushBack(BeforeRequest, h1)
	c := g.clone()
	g.PushBack(BeforeRequest, h2)
	c.PushBack(AfterRequestEnd, h2)

	x := &Exchange{}
	c.run(BeforeRequest, x)
	assert.Equal(t, []string{"1.BeforeRequest"}, evts, "parent's post-clone handler must not run in the clone")
	evts = evts[:0]
	g.run(AfterRequestEnd, x)
	assert.Empty(t, evts, "clone's post-clone handler must not run in the parent")

	empty := (&HandlerGroup{}).clone()
	assert.NotPanics(t, func() { empty.run(BeforeRequest, x) })
}

type testHandler struct {
	seq       int
	evts      *[]string
	exchanges *[]*Exchange
}

func (h *testHandler) Handle(evt Event, x *Exchange) {
	*h.evts = append(*h.evts, fmt.Sprintf("%d.%s", h.seq, evt))
	*h.exchanges = append(*h.exchanges, x)
}

func TestHandlerFunc(t *testing.T) {
	var _evt Event
	var _x *Exchange
	var f = func(evt Event, x *Exchange) {
		_evt = evt
		_x = x
	}
	h := HandlerFunc(f)
	x := &Exchange{}
	h.Handle(BeforeProcessBody, x)

	assert.Equal(t, BeforeProcessBody, _evt)
	assert.Same(t, x, _x)
}
