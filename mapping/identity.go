// SPDX-License-Identifier: MIT

package mapping

import "fmt"

// Identity is the name index in which every string maps to itself in both
// directions. Fixture species, whose protein ids already are their names,
// resolve through it.
type Identity struct{}

// Forward returns [s], true.
func (Identity) Forward(s string) ([]string, bool) { return []string{s}, true }

// Backward returns [s], true.
func (Identity) Backward(s string) ([]string, bool) { return []string{s}, true }

// RemapDiscardOriginal appends input to dst unchanged.
func (Identity) RemapDiscardOriginal(dst, input []string, dir Direction) ([]string, error) {
	if !dir.Valid() {
		return dst, fmt.Errorf("Identity.RemapDiscardOriginal(%s): %w", dir, ErrInvalidDirection)
	}

	return append(dst, input...), nil
}
