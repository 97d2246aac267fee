// SPDX-License-Identifier: MIT

package mapping

import "fmt"

// KeepPolicy decides whether remap also emits the input string itself.
type KeepPolicy byte

const (
	// KeepAlways emits the original after its hits.
	KeepAlways KeepPolicy = 'a'
	// KeepNever emits hits only.
	KeepNever KeepPolicy = 'n'
	// KeepIfNoHit emits the original only when it has no hit.
	KeepIfNoHit KeepPolicy = 'm'
)

// RemapKeepOriginal appends to dst the hits of every input string in
// direction dir, followed by the input string itself.
func (m *Mapping) RemapKeepOriginal(dst, input []string, dir Direction) ([]string, error) {
	return m.remap(dst, input, dir, KeepAlways)
}

// RemapDiscardOriginal appends to dst the hits of every input string in
// direction dir. Strings without a hit contribute nothing.
func (m *Mapping) RemapDiscardOriginal(dst, input []string, dir Direction) ([]string, error) {
	return m.remap(dst, input, dir, KeepNever)
}

// RemapCheckOriginal appends to dst the hits of every input string in
// direction dir, or the input string itself when it has none.
func (m *Mapping) RemapCheckOriginal(dst, input []string, dir Direction) ([]string, error) {
	return m.remap(dst, input, dir, KeepIfNoHit)
}

// remap is the generic form behind the three wrappers.
// Errors: ErrInvalidDirection, ErrInvalidKeepPolicy; dst is returned
// unchanged on error.
func (m *Mapping) remap(dst, input []string, dir Direction, keep KeepPolicy) ([]string, error) {
	if !dir.Valid() {
		return dst, fmt.Errorf("Mapping.remap(%s): %w", dir, ErrInvalidDirection)
	}
	switch keep {
	case KeepAlways, KeepNever, KeepIfNoHit:
	default:
		return dst, fmt.Errorf("Mapping.remap(keep=%q): %w", byte(keep), ErrInvalidKeepPolicy)
	}

	for _, s := range input {
		hits, ok, _ := m.Lookup(s, dir)
		dst = append(dst, hits...)
		if keep == KeepAlways || (keep == KeepIfNoHit && !ok) {
			dst = append(dst, s)
		}
	}

	return dst, nil
}
