// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGet(t *testing.T) {
	expected := &Result{OK: true, StatusCode: 200}
	m := newMockRequester(t)
	m.On("Do", mock.Anything, "foo", mock.MatchedBy(func(opts *Options) bool {
		return opts.Method == "GET" && opts.Body == nil
	})).Return(expected, nil).Once()
	res, err := Get(m, context.Background(), "foo", nil)
	assert.Same(t, expected, res)
	assert.NoError(t, err)
	m.AssertExpectations(t)
}

func TestHead(t *testing.T) {
	expected := &Result{OK: true, StatusCode: 200}
	m := newMockRequester(t)
	m.On("Do", mock.Anything, "bar", mock.MatchedBy(func(opts *Options) bool {
		return opts.Method == "HEAD"
	})).Return(expected, nil).Once()
	res, err := Head(m, context.Background(), "bar", nil)
	assert.Same(t, expected, res)
	assert.NoError(t, err)
	m.AssertExpectations(t)
}

func TestPostLike(t *testing.T) {
	testCases := []struct {
		method string
		call   func(r Requester, body interface{}, opts *Options) (*Result, error)
	}{
		{method: "POST", call: func(r Requester, body interface{}, opts *Options) (*Result, error) {
			return Post(r, context.Background(), "baz", body, opts)
		}},
		{method: "PUT", call: func(r Requester, body interface{}, opts *Options) (*Result, error) {
			return Put(r, context.Background(), "baz", body, opts)
		}},
		{method: "PATCH", call: func(r Requester, body interface{}, opts *Options) (*Result, error) {
			return Patch(r, context.Background(), "baz", body, opts)
		}},
		{method: "DELETE", call: func(r Requester, body interface{}, opts *Options) (*Result, error) {
			return Delete(r, context.Background(), "baz", body, opts)
		}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.method, func(t *testing.T) {
			expected := &Result{OK: true, StatusCode: 201}
			m := newMockRequester(t)
			m.On("Do", mock.Anything, "baz", mock.MatchedBy(func(opts *Options) bool {
				return opts.Method == testCase.method && opts.Body == "eggs"
			})).Return(expected, nil).Once()
			res, err := testCase.call(m, "eggs", nil)
			assert.Same(t, expected, res)
			assert.NoError(t, err)
			m.AssertExpectations(t)
		})
	}
	t.Run("caller options survive shaping", func(t *testing.T) {
		m := newMockRequester(t)
		m.On("Do", mock.Anything, "baz", mock.MatchedBy(func(opts *Options) bool {
			header, ok := opts.Header.(map[string]string)
			return opts.Method == "POST" && ok && header["X-Trace"] == "abc"
		})).Return(&Result{}, nil).Once()
		caller := &Options{Header: map[string]string{"X-Trace": "abc"}}
		_, err := Post(m, context.Background(), "baz", "body", caller)
		assert.NoError(t, err)
		assert.Equal(t, "", caller.Method, "caller's Options must not be mutated")
		assert.Nil(t, caller.Body)
		m.AssertExpectations(t)
	})
}

func TestInflate(t *testing.T) {
	t.Run("nil panics", func(t *testing.T) {
		assert.Panics(t, func() { Inflate(nil) })
	})
	t.Run("already a Fetcher", func(t *testing.T) {
		c := NewClient(nil)
		f := Inflate(c)
		assert.Same(t, interface{}(c), interface{}(f))
	})
	t.Run("requester only", func(t *testing.T) {
		expected := &Result{OK: true}
		m := newMockRequester(t)
		f := Inflate(m)
		m.On("Do", mock.Anything, "qux", mock.Anything).Return(expected, nil).Times(7)
		ctx := context.Background()
		res, err := f.Do(ctx, "qux", nil)
		assert.Same(t, expected, res)
		assert.NoError(t, err)
		_, _ = f.Get(ctx, "qux", nil)
		_, _ = f.Head(ctx, "qux", nil)
		_, _ = f.Post(ctx, "qux", nil, nil)
		_, _ = f.Put(ctx, "qux", nil, nil)
		_, _ = f.Patch(ctx, "qux", nil, nil)
		_, _ = f.Delete(ctx, "qux", nil, nil)
		m.AssertExpectations(t)
		assert.NotPanics(t, f.CloseIdleConnections, "no-op without IdleCloser support")
	})
	t.Run("close idle connections", func(t *testing.T) {
		m := newMockRequesterWithCloseIdleConnections(t)
		m.On("CloseIdleConnections").Once()
		f := Inflate(m)
		f.CloseIdleConnections()
		m.AssertExpectations(t)
	})
}

type mockRequester struct {
	mock.Mock
}

func newMockRequester(t *testing.T) *mockRequester {
	m := &mockRequester{}
	m.Test(t)
	return m
}

func (m *mockRequester) Do(ctx context.Context, target string, opts *Options) (*Result, error) {
	args := m.Called(ctx, target, opts)
	err := args.Error(1)
	if res, ok := args.Get(0).(*Result); ok {
		return res, err
	}
	return nil, err
}

type mockRequesterWithCloseIdleConnections struct {
	mockRequester
}

func newMockRequesterWithCloseIdleConnections(t *testing.T) *mockRequesterWithCloseIdleConnections {
	m := &mockRequesterWithCloseIdleConnections{}
	m.Test(t)
	return m
}

func (m *mockRequesterWithCloseIdleConnections) CloseIdleConnections() {
	m.Called()
}

var _ HTTPDoer = (*http.Client)(nil)
var _ Fetcher = (*Client)(nil)
