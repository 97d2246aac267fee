// SPDX-License-Identifier: MIT

package mapping

import (
	"regexp"
	"strings"
)

// versionSuffix matches an identifier ending in ".N" or "-N" (N an integer);
// the lazy group keeps everything but the final suffix.
var versionSuffix = regexp.MustCompile(`^(.+?)[.-]\d+$`)

// StripVersion removes one trailing ".N" or "-N" version suffix from id.
//
//	StripVersion("ENSP00000354587.3") == "ENSP00000354587"
//	StripVersion("P12345-2")          == "P12345"
//	StripVersion("BRCA2")             == "BRCA2"
func StripVersion(id string) string {
	if sub := versionSuffix.FindStringSubmatch(id); sub != nil {
		return sub[1]
	}

	return id
}

// RemoveVersionNumbers strips version suffixes from every key and value and
// rebuilds both tables. Pairs that collapse onto each other are merged.
func (m *Mapping) RemoveVersionNumbers() { m.rewrite(StripVersion) }

// ToUpperCase uppercases every key and value and rebuilds both tables.
func (m *Mapping) ToUpperCase() { m.rewrite(strings.ToUpper) }

// rewrite replaces every pair (k, v) with (fn(k), fn(v)).
func (m *Mapping) rewrite(fn func(string) string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	old := m.forward
	m.forward, m.backward, m.pairs = make(table), make(table), 0
	for k, values := range old {
		nk := fn(k)
		for v := range values {
			if nv := fn(v); nk != "" && nv != "" {
				m.addLocked(nk, nv)
			}
		}
	}
}
