// SPDX-License-Identifier: MIT

package tree

// ParseUnchecked exposes the non-validating builder so tests can drive the
// ascent-past-root guard directly.
var ParseUnchecked = parse
