// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import "errors"

// ErrCancellationNotEnabled is returned by Client.Do when the request
// options ask for key-based cancellation but the client never enabled
// cancellation mode. This is a caller configuration error, detected
// before any bookkeeping or transport work: call EnableCancellation on
// the client (or clone with cancellation carried over) before issuing
// keyed requests.
var ErrCancellationNotEnabled = errors.New("fetchx: managed cancellation used without EnableCancellation")
