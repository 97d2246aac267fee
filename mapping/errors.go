// SPDX-License-Identifier: MIT

package mapping

import "errors"

var (
	// ErrInvalidDirection indicates a Direction other than Forward or Backward.
	ErrInvalidDirection = errors.New("mapping: invalid direction")

	// ErrInvalidKeepPolicy indicates an unrecognised KeepPolicy.
	ErrInvalidKeepPolicy = errors.New("mapping: invalid keep policy")
)
