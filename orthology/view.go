// SPDX-License-Identifier: MIT

package orthology

import "slices"

// View is the read side of one orientation (from -> to) of a loaded pair.
// It reads through the Store, so manual additions are visible immediately.
type View struct {
	store *Store
	key   speciesKey
}

// Species returns the (from, to) species of the view.
func (v *View) Species() (from, to string) { return v.key.from, v.key.to }

func (v *View) table() table { return v.store.tables[v.key] }

// HasOrtholog reports whether id has at least one ortholog.
func (v *View) HasOrtholog(id string) bool {
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()

	return len(v.table()[id]) > 0
}

// Orthologs returns the sorted ortholog ids of id; nil if there are none.
func (v *View) Orthologs(id string) []string {
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()

	row := v.table()[id]
	if len(row) == 0 {
		return nil
	}
	out := make([]string, 0, len(row))
	for o := range row {
		out = append(out, o)
	}
	slices.Sort(out)

	return out
}

// Sources returns the sorted provenance of id1 ~ id2.
func (v *View) Sources(id1, id2 string) []Source {
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()

	set := v.table()[id1][id2]
	out := make([]Source, 0, len(set))
	for src := range set {
		out = append(out, src)
	}
	slices.SortFunc(out, Source.Compare)

	return out
}

// Proteins returns every id with an ortholog, sorted.
func (v *View) Proteins() []string {
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()

	t := v.table()
	out := make([]string, 0, len(t))
	for id := range t {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// Len returns the number of relationships in this orientation.
func (v *View) Len() int {
	v.store.mu.RLock()
	defer v.store.mu.RUnlock()

	n := 0
	for _, row := range v.table() {
		n += len(row)
	}

	return n
}
