// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package headers

import (
	"errors"
	"net/http"
	"net/textproto"
	"net/url"
	"sort"
	"strings"
)

const badShapeMsg = "fetchx/headers: invalid header shape (use " +
	"map[string]string, [][2]string, url.Values or http.Header)"

// A Pair is one normalized header. Name is in canonical MIME header
// form. Value contains all values supplied for the name, combined with
// ", " in the order the source shape supplied them.
type Pair struct {
	Name  string
	Value string
}

// Pairs converts a header collection in any supported shape into a
// normalized pair sequence.
//
// Repeated names (possible with [][2]string, url.Values, and
// http.Header, and with map keys differing only in case) are combined
// into a single pair whose value joins the individual values with
// ", ". Name comparison is case-insensitive; the canonical MIME form
// of the name is reported.
//
// Pair order is the order of first appearance for the ordered shape
// [][2]string, and sorted key order for the map-backed shapes, so that
// the output is deterministic regardless of map iteration order.
//
// A nil collection yields a nil slice. A collection of any other type
// yields an error.
func Pairs(h interface{}) ([]Pair, error) {
	switch x := h.(type) {
	case nil:
		return nil, nil
	case map[string]string:
		keys := sortedKeys(len(x), func(f func(string)) {
			for k := range x {
				f(k)
			}
		})
		return combine(keys, func(k string) []string { return []string{x[k]} }), nil
	case [][2]string:
		pairs := make([]Pair, 0, len(x))
		index := make(map[string]int, len(x))
		for _, kv := range x {
			pairs = appendValue(pairs, index, kv[0], kv[1])
		}
		return pairs, nil
	case url.Values:
		return fromMultiMap(x), nil
	case http.Header:
		return fromMultiMap(x), nil
	default:
		return nil, errors.New(badShapeMsg)
	}
}

// Canonical converts a header collection in any supported shape into
// an http.Header with canonical MIME header names. Unlike Pairs, the
// individual values of a repeated name are kept as separate entries
// rather than combined, matching how net/http transmits them.
func Canonical(h interface{}) (http.Header, error) {
	switch x := h.(type) {
	case nil:
		return nil, nil
	case map[string]string:
		c := make(http.Header, len(x))
		for k, v := range x {
			c.Add(k, v)
		}
		return c, nil
	case [][2]string:
		c := make(http.Header, len(x))
		for _, kv := range x {
			c.Add(kv[0], kv[1])
		}
		return c, nil
	case url.Values:
		return multiMap(x), nil
	case http.Header:
		return multiMap(x), nil
	default:
		return nil, errors.New(badShapeMsg)
	}
}

func multiMap(m map[string][]string) http.Header {
	c := make(http.Header, len(m))
	for k, vs := range m {
		for _, v := range vs {
			c.Add(k, v)
		}
	}
	return c
}

func fromMultiMap(m map[string][]string) []Pair {
	keys := sortedKeys(len(m), func(f func(string)) {
		for k := range m {
			f(k)
		}
	})
	return combine(keys, func(k string) []string { return m[k] })
}

func sortedKeys(n int, each func(func(string))) []string {
	keys := make([]string, 0, n)
	each(func(k string) { keys = append(keys, k) })
	sort.Strings(keys)
	return keys
}

// combine folds a sorted key sequence into canonical pairs, joining
// the values of keys that share a canonical name.
func combine(keys []string, values func(string) []string) []Pair {
	pairs := make([]Pair, 0, len(keys))
	index := make(map[string]int, len(keys))
	for _, k := range keys {
		pairs = appendValue(pairs, index, k, strings.Join(values(k), ", "))
	}
	return pairs
}

func appendValue(pairs []Pair, index map[string]int, name, value string) []Pair {
	canon := textproto.CanonicalMIMEHeaderKey(name)
	if i, ok := index[canon]; ok {
		pairs[i].Value = pairs[i].Value + ", " + value
		return pairs
	}
	index[canon] = len(pairs)
	return append(pairs, Pair{Name: canon, Value: value})
}
