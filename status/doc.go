// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package status enumerates the standardized HTTP status codes the fetchx
client reports on its results.

The enumeration is a convenience for categorizing responses in user
code. The client itself never requires a response code to belong to the
enumeration: success is determined purely by the code falling in the
2XX range (IsSuccess), so non-standard codes flow through the client
unharmed.
*/
package status
