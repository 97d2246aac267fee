// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for consistency. Callers match
// with errors.Is; methods wrap with coordinates via fmt.Errorf("...: %w").
//
// Structural Network errors (duplicate/unknown vertex, missing edge) are the
// core sentinels so both backends report the same errors.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested capacity is not positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, they do not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
