// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"encoding/json"
	"io"
	"net/url"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// BodyBytes converts a generic body parameter to a byte slice for use
// as a request body, along with the content type the conversion
// implies, if any.
//
// The conversion logic is:
//
// • If body is nil, a nil byte slice, the empty content type, and no
// error are returned.
//
// • If body is a []byte or string, it is used as-is with no implied
// content type.
//
// • If body is a json.RawMessage, it is used as-is with an implied
// content type of application/json.
//
// • If body is an io.Reader or io.ReadCloser, it is read to the end
// (and closed if it implements Closer), with no implied content type.
// A read or close error is returned as-is.
//
// • If body is a url.Values, it is form-encoded with an implied
// content type of application/x-www-form-urlencoded.
//
// • Any other value is serialized with encoding/json and carries an
// implied content type of application/json. A serialization error is
// returned as-is.
//
// The implied content type is a suggestion only: Client applies it to
// the outgoing request exclusively when the caller did not already
// specify a Content-Type header.
func BodyBytes(body interface{}) ([]byte, string, error) {
	switch x := body.(type) {
	case nil:
		return nil, "", nil
	case json.RawMessage:
		return x, contentTypeJSON, nil
	case string:
		return []byte(x), "", nil
	case []byte:
		return x, "", nil
	case url.Values:
		return []byte(x.Encode()), contentTypeForm, nil
	case io.ReadCloser:
		b, err := io.ReadAll(x)
		if err != nil {
			return nil, "", err
		}
		err = x.Close()
		if err != nil {
			return nil, "", err
		}
		return b, "", nil
	case io.Reader:
		return BodyBytes(io.NopCloser(x))
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return nil, "", err
		}
		return b, contentTypeJSON, nil
	}
}
