// SPDX-License-Identifier: MIT

package interolog

import (
	"context"
	"errors"
	"slices"

	"github.com/katalvlaran/ppin/core"
)

// Class is the conservation state of one neighbour.
type Class uint8

const (
	// Unmatchable: no ortholog in the other species at all.
	Unmatchable Class = iota
	// Unmatched: orthologs exist, none of them neighbours the other query.
	Unmatched
	// Matched: at least one ortholog neighbours the other query.
	Matched
)

func (c Class) String() string {
	switch c {
	case Matched:
		return "matched"
	case Unmatched:
		return "unmatched"
	default:
		return "unmatchable"
	}
}

// Side is the classification of one query's neighbourhood. Each neighbour
// appears in exactly one slice; every slice is sorted.
type Side struct {
	Matched     []string
	Unmatched   []string
	Unmatchable []string
}

// Len returns the number of classified neighbours.
func (s Side) Len() int { return len(s.Matched) + len(s.Unmatched) + len(s.Unmatchable) }

// Of returns the class of neighbour name and whether it was classified.
func (s Side) Of(name string) (Class, bool) {
	switch {
	case slices.Contains(s.Matched, name):
		return Matched, true
	case slices.Contains(s.Unmatched, name):
		return Unmatched, true
	case slices.Contains(s.Unmatchable, name):
		return Unmatchable, true
	}

	return 0, false
}

func (s *Side) add(name string, c Class) {
	switch c {
	case Matched:
		s.Matched = append(s.Matched, name)
	case Unmatched:
		s.Unmatched = append(s.Unmatched, name)
	default:
		s.Unmatchable = append(s.Unmatchable, name)
	}
}

// Classification is the result of ClassifyNeighbours.
type Classification struct {
	// Interologs holds (neighbour1, neighbour2) pairs, species1 name first,
	// where neighbour2 is an ortholog of neighbour1.
	Interologs core.PairSet
	Side1      Side
	Side2      Side
}

// neighbourNames returns the sorted names of q's neighbours, q excluded.
// A query absent from the network has no neighbours.
func neighbourNames(n core.Network, q string) ([]string, error) {
	nbrs, err := n.Adjacent(core.NewNode(q, n.Species()))
	if errors.Is(err, core.ErrUnknownVertex) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(nbrs))
	for _, v := range nbrs {
		if v.Name != q {
			out = append(out, v.Name)
		}
	}

	return out, nil
}

// ClassifyNeighbours classifies the neighbours of query1 in network1
// against those of query2 in network2 (and vice versa). A self-loop on a
// query is ignored.
func (e *Engine) ClassifyNeighbours(ctx context.Context, network1 core.Network, query1 string, network2 core.Network, query2 string) (*Classification, error) {
	nb1, err := neighbourNames(network1, query1)
	if err != nil {
		return nil, err
	}
	nb2, err := neighbourNames(network2, query2)
	if err != nil {
		return nil, err
	}

	return e.ClassifySets(ctx, network1.Species(), nb1, network2.Species(), nb2)
}

// ClassifySets classifies two explicit neighbour sets.
//
// For a neighbour n on side 1:
//   - Unmatchable if its name resolves to no ortholog in species2.
//   - Matched if some ortholog of n is in neighbours2; each such ortholog m
//     adds the pair (n, m) to Interologs.
//   - Unmatched otherwise, including when its orthologs are absent from
//     network2 altogether.
//
// Side 2 is classified the same way against neighbours1.
func (e *Engine) ClassifySets(ctx context.Context, species1 string, neighbours1 []string, species2 string, neighbours2 []string) (*Classification, error) {
	set1, set2 := toSet(neighbours1), toSet(neighbours2)
	out := &Classification{Interologs: core.PairSet{}}

	err := e.classifySide(ctx, species1, set1, species2, set2, &out.Side1, func(n, m string) {
		out.Interologs.Add(core.Pair{First: n, Second: m})
	})
	if err != nil {
		return nil, err
	}
	if err = e.classifySide(ctx, species2, set2, species1, set1, &out.Side2, nil); err != nil {
		return nil, err
	}

	return out, nil
}

func (e *Engine) classifySide(ctx context.Context, from string, mine map[string]struct{}, to string, theirs map[string]struct{}, side *Side, onMatch func(n, m string)) error {
	for _, n := range sortedSet(mine) {
		orth, err := e.store.OrthologsOfByName(ctx, from, n, to)
		if err != nil {
			return err
		}
		if len(orth) == 0 {
			side.add(n, Unmatchable)
			continue
		}
		class := Unmatched
		for _, m := range orth {
			if _, ok := theirs[m]; !ok {
				continue
			}
			class = Matched
			if onMatch != nil {
				onMatch(n, m)
			}
		}
		side.add(n, class)
	}

	return nil
}

func toSet(names []string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}

	return out
}

func sortedSet(s map[string]struct{}) []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	slices.Sort(out)

	return out
}
