// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cancel

import (
	"context"
	"errors"
)

// IsCancellation reports whether err belongs to the cancellation class
// of errors: context.Canceled, ErrSuperseded, or any error wrapping
// one of them (for example the *url.Error an HTTP client produces when
// its request context is cancelled mid-flight).
//
// Deadline expiry is not cancellation. A request that times out failed;
// a request that was cancelled was withdrawn.
func IsCancellation(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, ErrSuperseded)
}
