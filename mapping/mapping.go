// SPDX-License-Identifier: MIT
// File: mapping.go
// Role: Mapping storage, insertion, lookup and serialization.
//
// Storage:
//   - forward[key] is the set of values of key.
//   - backward[value] is the set of keys of value.
//   - A pair is stored in both tables or in neither.

package mapping

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
)

// Direction selects the table a lookup goes through.
type Direction byte

const (
	// Forward looks keys up and yields values.
	Forward Direction = 'f'
	// Backward looks values up and yields keys.
	Backward Direction = 'b'
)

// Valid reports whether d is Forward or Backward.
func (d Direction) Valid() bool { return d == Forward || d == Backward }

// String returns "forward" or "backward", or the raw flag for invalid values.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%q)", byte(d))
	}
}

type table map[string]map[string]struct{}

func (t table) put(a, b string) bool {
	set, ok := t[a]
	if !ok {
		set = make(map[string]struct{})
		t[a] = set
	}
	if _, dup := set[b]; dup {
		return false
	}
	set[b] = struct{}{}

	return true
}

// sortedSet returns the members of t[k] sorted, and whether k is present.
func (t table) sortedSet(k string) ([]string, bool) {
	set, ok := t[k]
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	slices.Sort(out)

	return out, true
}

func (t table) sortedKeys() []string {
	out := make([]string, 0, len(t))
	for k := range t {
		out = append(out, k)
	}
	slices.Sort(out)

	return out
}

// Mapping is a bidirectional many-to-many string relation, safe for
// concurrent use.
type Mapping struct {
	mu       sync.RWMutex
	forward  table
	backward table
	pairs    int
}

// New returns an empty Mapping.
func New() *Mapping {
	return &Mapping{forward: make(table), backward: make(table)}
}

// Add trims key and value and inserts the pair in both directions.
// It reports whether the pair was inserted; an empty key or value (after
// trimming) is rejected, and an existing pair is left untouched.
func (m *Mapping) Add(key, value string) bool {
	key, value = strings.TrimSpace(key), strings.TrimSpace(value)
	if key == "" || value == "" {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.addLocked(key, value)
}

// addLocked inserts an already-trimmed, non-empty pair. Caller holds mu.
func (m *Mapping) addLocked(key, value string) bool {
	if !m.forward.put(key, value) {
		return false
	}
	m.backward.put(value, key)
	m.pairs++

	return true
}

// AddValues adds key -> v for every v in values and returns how many pairs were new.
func (m *Mapping) AddValues(key string, values []string) int {
	added := 0
	for _, v := range values {
		if m.Add(key, v) {
			added++
		}
	}

	return added
}

// AddKeys adds k -> value for every k in keys and returns how many pairs were new.
func (m *Mapping) AddKeys(keys []string, value string) int {
	added := 0
	for _, k := range keys {
		if m.Add(k, value) {
			added++
		}
	}

	return added
}

// AddProduct adds every combination of keys × values and returns how many pairs were new.
func (m *Mapping) AddProduct(keys, values []string) int {
	added := 0
	for _, k := range keys {
		added += m.AddValues(k, values)
	}

	return added
}

// AddMapping unions every forward pair of other into m.
// Both directions of m are populated by the repeated Add.
func (m *Mapping) AddMapping(other *Mapping) int {
	added := 0
	for _, p := range other.pairsSnapshot() {
		if m.Add(p[0], p[1]) {
			added++
		}
	}

	return added
}

// Forward returns the sorted values of key and whether key is present.
func (m *Mapping) Forward(key string) ([]string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.forward.sortedSet(key)
}

// Backward returns the sorted keys of value and whether value is present.
func (m *Mapping) Backward(value string) ([]string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.backward.sortedSet(value)
}

// Lookup dispatches to Forward or Backward.
func (m *Mapping) Lookup(s string, dir Direction) ([]string, bool, error) {
	switch dir {
	case Forward:
		out, ok := m.Forward(s)
		return out, ok, nil
	case Backward:
		out, ok := m.Backward(s)
		return out, ok, nil
	default:
		return nil, false, fmt.Errorf("Mapping.Lookup(%s): %w", dir, ErrInvalidDirection)
	}
}

// ContainsForward reports whether key has at least one value.
func (m *Mapping) ContainsForward(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.forward[key]

	return ok
}

// ContainsBackward reports whether value has at least one key.
func (m *Mapping) ContainsBackward(value string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.backward[value]

	return ok
}

// ForwardKeys returns every key, sorted.
func (m *Mapping) ForwardKeys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.forward.sortedKeys()
}

// BackwardValues returns every value, sorted.
func (m *Mapping) BackwardValues() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.backward.sortedKeys()
}

// Len returns the number of (key, value) pairs.
func (m *Mapping) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.pairs
}

// pairsSnapshot returns every forward pair sorted by key, then value.
func (m *Mapping) pairsSnapshot() [][2]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([][2]string, 0, m.pairs)
	for _, k := range m.forward.sortedKeys() {
		values, _ := m.forward.sortedSet(k)
		for _, v := range values {
			out = append(out, [2]string{k, v})
		}
	}

	return out
}

// Clone returns an independent copy of m.
func (m *Mapping) Clone() *Mapping {
	out := New()
	for _, p := range m.pairsSnapshot() {
		out.addLocked(p[0], p[1])
	}

	return out
}

// WriteTo writes one "key\tvalue\n" line per pair, sorted by key then value.
// It implements io.WriterTo.
func (m *Mapping) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for _, p := range m.pairsSnapshot() {
		n, err := fmt.Fprintf(bw, "%s\t%s\n", p[0], p[1])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, bw.Flush()
}

// String returns the WriteTo form.
func (m *Mapping) String() string {
	var sb strings.Builder
	_, _ = m.WriteTo(&sb)

	return sb.String()
}

// Merge joins m1 and m2 through their shared key space: for every string k
// present in m1's dir1 table and in m2's dir2 table, every combination of
// m1[dir1][k] × m2[dir2][k] is added to a fresh Mapping.
//
// For instance, merging Ensembl->Entrez (Forward) with Uniprot->Entrez
// (Backward) yields Ensembl->Uniprot.
//
// Returns ErrInvalidDirection if either direction is invalid.
// Complexity: O(Σ |m1[k]|·|m2[k]|) over shared k.
func Merge(m1 *Mapping, dir1 Direction, m2 *Mapping, dir2 Direction) (*Mapping, error) {
	if !dir1.Valid() {
		return nil, fmt.Errorf("mapping.Merge(dir1=%s): %w", dir1, ErrInvalidDirection)
	}
	if !dir2.Valid() {
		return nil, fmt.Errorf("mapping.Merge(dir2=%s): %w", dir2, ErrInvalidDirection)
	}

	out := New()
	keys := m1.ForwardKeys()
	if dir1 == Backward {
		keys = m1.BackwardValues()
	}
	for _, k := range keys {
		left, _, _ := m1.Lookup(k, dir1)
		right, ok, _ := m2.Lookup(k, dir2)
		if !ok {
			continue
		}
		out.AddProduct(left, right)
	}

	return out, nil
}
