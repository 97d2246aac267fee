// SPDX-License-Identifier: MIT
// File: pair.go
// Role: Pair (canonical edge / correspondence key) and PairSet.
//
// Determinism:
//   - PairSet.Sorted() returns pairs ordered by (First, Second).
package core

import (
	"cmp"
	"slices"
)

// Pair is an ordered pair of strings used as a comparable edge key.
//
// Equality is positional: Pair{"A","B"} != Pair{"B","A"}. Callers that use a
// Pair for an undirected relationship must canonicalize the order first
// (see NewCanonicalPair).
type Pair struct {
	First  string
	Second string
}

// NewCanonicalPair returns the Pair of a and b with the lexicographically
// smaller string first.
func NewCanonicalPair(a, b string) Pair {
	if a > b {
		return Pair{First: b, Second: a}
	}

	return Pair{First: a, Second: b}
}

// Compare orders p against o by First, then Second.
func (p Pair) Compare(o Pair) int {
	if c := cmp.Compare(p.First, o.First); c != 0 {
		return c
	}

	return cmp.Compare(p.Second, o.Second)
}

// Contains reports whether s is either component of p.
func (p Pair) Contains(s string) bool {
	return p.First == s || p.Second == s
}

// String renders p as "(First, Second)".
func (p Pair) String() string {
	return "(" + p.First + ", " + p.Second + ")"
}

// PairSet is a set of Pairs.
type PairSet map[Pair]struct{}

// Add inserts p into the set.
func (s PairSet) Add(p Pair) { s[p] = struct{}{} }

// Has reports whether p is in the set.
func (s PairSet) Has(p Pair) bool {
	_, ok := s[p]

	return ok
}

// Sorted returns the members of s ordered by Pair.Compare.
func (s PairSet) Sorted() []Pair {
	out := make([]Pair, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.SortFunc(out, Pair.Compare)

	return out
}
