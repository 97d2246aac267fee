// SPDX-License-Identifier: MIT

package interolog

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/ppin/core"
	"github.com/katalvlaran/ppin/orthology"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes progress events to log. Default: zap.NewNop().
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// Engine runs interolog queries against an orthology.Store.
type Engine struct {
	store *orthology.Store
	log   *zap.Logger
}

// New returns an Engine reading orthologs from store.
func New(store *orthology.Store, opts ...Option) *Engine {
	e := &Engine{store: store, log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Result holds the outcome of Find. Both maps are keyed by a network1 edge
// (names, lexicographically ordered) and hold canonical network2 name pairs.
type Result struct {
	Species1, Species2 string

	// Interologs[e] are the ortholog pairs of e that interact in network2.
	Interologs map[core.Pair]core.PairSet
	// NotInterologs[e] are the ortholog pairs of e that do not.
	NotInterologs map[core.Pair]core.PairSet
}

func newResult(species1, species2 string) *Result {
	return &Result{
		Species1:      species1,
		Species2:      species2,
		Interologs:    make(map[core.Pair]core.PairSet),
		NotInterologs: make(map[core.Pair]core.PairSet),
	}
}

func file(m map[core.Pair]core.PairSet, key, p core.Pair) {
	set, ok := m[key]
	if !ok {
		set = core.PairSet{}
		m[key] = set
	}
	set.Add(p)
}

// Edges returns, sorted, the network1 edges with at least one interolog.
func (r *Result) Edges() []core.Pair {
	return sortedKeys(r.Interologs)
}

// Candidates returns, sorted, every network1 edge that was tested.
func (r *Result) Candidates() []core.Pair {
	all := make(map[core.Pair]core.PairSet, len(r.Interologs)+len(r.NotInterologs))
	for k, v := range r.Interologs {
		all[k] = v
	}
	for k, v := range r.NotInterologs {
		all[k] = v
	}

	return sortedKeys(all)
}

// IsInterolog reports whether network1 edge e has an interolog.
func (r *Result) IsInterolog(e core.Pair) bool {
	return len(r.Interologs[core.NewCanonicalPair(e.First, e.Second)]) > 0
}

func sortedKeys(m map[core.Pair]core.PairSet) []core.Pair {
	out := make([]core.Pair, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.SortFunc(out, core.Pair.Compare)

	return out
}

// resolver memoizes name -> orthologs-in-network2 for one query.
type resolver struct {
	ctx      context.Context
	store    *orthology.Store
	from, to string
	within   map[string]struct{} // nil: no restriction
	memo     map[string][]string
}

func (r *resolver) orthologs(name string) ([]string, error) {
	if out, ok := r.memo[name]; ok {
		return out, nil
	}
	names, err := r.store.OrthologsOfByName(r.ctx, r.from, name, r.to)
	if err != nil {
		return nil, err
	}
	if r.within != nil {
		names = slices.DeleteFunc(names, func(n string) bool {
			_, ok := r.within[n]
			return !ok
		})
	}
	r.memo[name] = names

	return names, nil
}

// Find collects the interologs of network1 in network2, using the species
// labels of the two networks for ortholog lookups.
//
// Stage 1: for each vertex a of network1 (sorted), resolve its orthologs
// among network2's vertex names; skip a if there are none.
// Stage 2: for each neighbour b with a.Name < b.Name, resolve b likewise;
// skip the edge if there are none.
// Stage 3: file every canonical (a', b') under Pair(a, b) as an interolog
// when network2 connects a' and b', else as a non-interolog.
//
// Errors from the orthology store (e.g. a failed first load) are returned.
// Complexity: O(Σ_edges |orth(a)|·|orth(b)|) adjacency tests.
func (e *Engine) Find(ctx context.Context, network1, network2 core.Network) (*Result, error) {
	species1, species2 := network1.Species(), network2.Species()
	log := e.log.With(zap.String("network1", network1.Name()), zap.String("network2", network2.Name()))
	log.Debug("finding interologs")

	// Load the pair up front so a loader failure surfaces before the walk.
	if _, err := e.store.Get(ctx, species1, species2); err != nil {
		return nil, err
	}
	res := &resolver{
		ctx:    ctx,
		store:  e.store,
		from:   species1,
		to:     species2,
		within: core.VertexNames(network2),
		memo:   make(map[string][]string),
	}
	out := newResult(species1, species2)

	for _, a := range network1.Vertices() {
		orthA, err := res.orthologs(a.Name)
		if err != nil {
			return nil, err
		}
		if len(orthA) == 0 {
			continue
		}
		nbrs, err := network1.Adjacent(a)
		if err != nil {
			return nil, err
		}
		for _, b := range nbrs {
			// Each undirected edge once, from its lexicographically smaller end.
			if a.Name >= b.Name {
				continue
			}
			orthB, err := res.orthologs(b.Name)
			if err != nil {
				return nil, err
			}
			if len(orthB) == 0 {
				continue
			}
			first := core.NewCanonicalPair(a.Name, b.Name)
			for _, x := range orthA {
				for _, y := range orthB {
					second := core.NewCanonicalPair(x, y)
					if network2.AreAdjacent(core.NewNode(x, species2), core.NewNode(y, species2)) {
						file(out.Interologs, first, second)
					} else {
						file(out.NotInterologs, first, second)
					}
				}
			}
		}
	}
	log.Debug("done finding interologs",
		zap.Int("interolog_edges", len(out.Interologs)),
		zap.Int("non_interolog_edges", len(out.NotInterologs)))

	return out, nil
}
