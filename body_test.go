// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyBytes(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		b, contentType, err := BodyBytes(nil)
		assert.Nil(t, b)
		assert.Equal(t, "", contentType)
		assert.NoError(t, err)
	})
	t.Run("string", func(t *testing.T) {
		b, contentType, err := BodyBytes("hello")
		assert.Equal(t, []byte("hello"), b)
		assert.Equal(t, "", contentType)
		assert.NoError(t, err)
	})
	t.Run("bytes", func(t *testing.T) {
		in := []byte{1, 2, 3}
		b, contentType, err := BodyBytes(in)
		assert.Equal(t, in, b)
		assert.Equal(t, "", contentType)
		assert.NoError(t, err)
	})
	t.Run("raw JSON", func(t *testing.T) {
		b, contentType, err := BodyBytes(json.RawMessage(`{"pre":"encoded"}`))
		assert.Equal(t, []byte(`{"pre":"encoded"}`), b)
		assert.Equal(t, "application/json", contentType)
		assert.NoError(t, err)
	})
	t.Run("reader", func(t *testing.T) {
		b, contentType, err := BodyBytes(strings.NewReader("stream"))
		assert.Equal(t, []byte("stream"), b)
		assert.Equal(t, "", contentType)
		assert.NoError(t, err)
	})
	t.Run("read closer", func(t *testing.T) {
		rc := &closeTracker{Reader: strings.NewReader("stream")}
		b, contentType, err := BodyBytes(rc)
		assert.Equal(t, []byte("stream"), b)
		assert.Equal(t, "", contentType)
		assert.NoError(t, err)
		assert.True(t, rc.closed)
	})
	t.Run("reader error", func(t *testing.T) {
		boom := errors.New("read failed")
		b, contentType, err := BodyBytes(io.NopCloser(&failReader{err: boom}))
		assert.Nil(t, b)
		assert.Equal(t, "", contentType)
		assert.Same(t, boom, err)
	})
	t.Run("form values", func(t *testing.T) {
		b, contentType, err := BodyBytes(url.Values{"a": {"1"}, "b": {"2"}})
		require.NoError(t, err)
		assert.Equal(t, "a=1&b=2", string(b))
		assert.Equal(t, "application/x-www-form-urlencoded", contentType)
	})
	t.Run("structured value", func(t *testing.T) {
		b, contentType, err := BodyBytes(map[string]interface{}{"n": 1})
		require.NoError(t, err)
		assert.JSONEq(t, `{"n":1}`, string(b))
		assert.Equal(t, "application/json", contentType)
	})
	t.Run("array value", func(t *testing.T) {
		b, contentType, err := BodyBytes([]int{1, 2, 3})
		require.NoError(t, err)
		assert.JSONEq(t, `[1,2,3]`, string(b))
		assert.Equal(t, "application/json", contentType)
	})
	t.Run("struct value", func(t *testing.T) {
		b, contentType, err := BodyBytes(struct {
			Name string `json:"name"`
		}{Name: "widget"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"widget"}`, string(b))
		assert.Equal(t, "application/json", contentType)
	})
	t.Run("unserializable value", func(t *testing.T) {
		b, contentType, err := BodyBytes(func() {})
		assert.Nil(t, b)
		assert.Equal(t, "", contentType)
		assert.Error(t, err)
	})
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

type failReader struct {
	err error
}

func (r *failReader) Read([]byte) (int, error) {
	return 0, r.err
}
