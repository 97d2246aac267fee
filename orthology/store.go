// SPDX-License-Identifier: MIT
// File: store.go
// Role: Store, the lazily populated ortholog table cache.
//
// Storage:
//   - tables[{from, to}][id1][id2] is the provenance set of (from,id1)~(to,id2).
//   - Both orientations of a pair are installed together under the write lock.
//
// Population:
//   - At most once per unordered species pair: singleflight keyed by the
//     canonical pair, then a re-check under the write lock.
//   - Failed loads install nothing.

package orthology

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/ppin/core"
	"github.com/katalvlaran/ppin/mapping"
)

type speciesKey struct{ from, to string }

type table map[string]map[string]map[Source]struct{}

// put inserts id1 -> id2 with src, creating intermediate levels.
func (t table) put(id1, id2 string, src Source) {
	row, ok := t[id1]
	if !ok {
		row = make(map[string]map[Source]struct{})
		t[id1] = row
	}
	set, ok := row[id2]
	if !ok {
		set = make(map[Source]struct{})
		row[id2] = set
	}
	set[src] = struct{}{}
}

// Store caches ortholog tables per species pair. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	tables map[speciesKey]table
	group  singleflight.Group

	loader        Loader
	fixtures      Loader
	fixturePrefix string
	names         NameSource
	seeds         []Seed
	log           *zap.Logger
}

// NewStore returns an empty Store configured by opts.
func NewStore(opts ...Option) *Store {
	s := &Store{
		tables:        make(map[speciesKey]table),
		fixturePrefix: DefaultFixturePrefix,
		log:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// IsFixture reports whether species is served from fixtures.
func (s *Store) IsFixture(species string) bool {
	return strings.HasPrefix(species, s.fixturePrefix)
}

// Get returns the view of (species1 -> species2), loading the pair on first use.
func (s *Store) Get(ctx context.Context, species1, species2 string) (*View, error) {
	if err := s.ensure(ctx, species1, species2); err != nil {
		return nil, err
	}

	return &View{store: s, key: speciesKey{from: species1, to: species2}}, nil
}

func (s *Store) loaded(species1, species2 string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tables[speciesKey{from: species1, to: species2}]

	return ok
}

// ensure loads the unordered pair {species1, species2} unless already present.
func (s *Store) ensure(ctx context.Context, species1, species2 string) error {
	if s.loaded(species1, species2) {
		return nil
	}
	p := core.NewCanonicalPair(species1, species2)
	_, err, _ := s.group.Do(p.First+"\x00"+p.Second, func() (any, error) {
		if s.loaded(p.First, p.Second) {
			return nil, nil
		}

		return nil, s.load(ctx, p.First, p.Second)
	})

	return err
}

func (s *Store) pickLoader(species1, species2 string) (Loader, string) {
	if s.IsFixture(species1) || s.IsFixture(species2) {
		return s.fixtures, "fixture"
	}

	return s.loader, "data"
}

// load reads the pair (species1 < species2) and installs both orientations.
func (s *Store) load(ctx context.Context, species1, species2 string) error {
	loader, kind := s.pickLoader(species1, species2)
	if loader == nil {
		return fmt.Errorf("orthology.Store.Get(%s, %s): %w", species1, species2, ErrNoLoader)
	}
	log := s.log.With(zap.String("species1", species1), zap.String("species2", species2), zap.String("loader", kind))
	log.Debug("collecting orthology data")

	records, err := loader.Load(ctx, species1, species2)
	if err != nil {
		return fmt.Errorf("orthology.Store.Get(%s, %s): %w", species1, species2, err)
	}

	fwd, back := make(table), make(table)
	if species1 == species2 {
		back = fwd
	}
	for _, r := range records {
		id1, id2 := strings.TrimSpace(r.Protein1), strings.TrimSpace(r.Protein2)
		if id1 == "" || id2 == "" {
			continue
		}
		src := r.Source.normalized()
		fwd.put(id1, id2, src)
		back.put(id2, id1, src)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	k1 := speciesKey{from: species1, to: species2}
	if _, ok := s.tables[k1]; ok {
		return nil
	}
	s.tables[k1] = fwd
	s.tables[speciesKey{from: species2, to: species1}] = back
	seeded := 0
	for _, sd := range s.seeds {
		switch {
		case sd.Species1 == species1 && sd.Species2 == species2:
			s.addManualLocked(species1, sd.Protein1, species2, sd.Protein2)
		case sd.Species1 == species2 && sd.Species2 == species1:
			s.addManualLocked(species2, sd.Protein1, species1, sd.Protein2)
		default:
			continue
		}
		seeded++
	}
	log.Debug("done collecting orthology data",
		zap.Int("records", len(records)),
		zap.Int("proteins", len(fwd)),
		zap.Int("seeded", seeded))

	return nil
}

// HasOrthologIn reports whether (species1, id) has any ortholog in species2.
func (s *Store) HasOrthologIn(ctx context.Context, species1, id, species2 string) (bool, error) {
	v, err := s.Get(ctx, species1, species2)
	if err != nil {
		return false, err
	}

	return v.HasOrtholog(id), nil
}

// OrthologsOf returns the sorted ortholog ids of (species1, id) in species2.
func (s *Store) OrthologsOf(ctx context.Context, species1, id, species2 string) ([]string, error) {
	v, err := s.Get(ctx, species1, species2)
	if err != nil {
		return nil, err
	}

	return v.Orthologs(id), nil
}

// OrthologsOfByName returns the sorted protein names in species2 orthologous
// to the protein named name in species1.
//
// Stage 1: name -> ids through species1's names (forward).
// Stage 2: ids -> ortholog ids in species2.
// Stage 3: ortholog ids -> names through species2's names (backward),
// dropping ids without a name.
//
// A name with no ids, or ids with no orthologs, yields an empty result.
func (s *Store) OrthologsOfByName(ctx context.Context, species1, name, species2 string) ([]string, error) {
	v, err := s.Get(ctx, species1, species2)
	if err != nil {
		return nil, err
	}
	names1, err := s.nameIndex(ctx, species1)
	if err != nil {
		return nil, err
	}
	names2, err := s.nameIndex(ctx, species2)
	if err != nil {
		return nil, err
	}

	ids, _ := names1.Forward(name)
	var orthoIDs []string
	for _, id := range ids {
		orthoIDs = append(orthoIDs, v.Orthologs(id)...)
	}
	if len(orthoIDs) == 0 {
		return nil, nil
	}
	out, err := names2.RemapDiscardOriginal(nil, orthoIDs, mapping.Backward)
	if err != nil {
		return nil, fmt.Errorf("orthology.Store.OrthologsOfByName(%s, %s, %s): %w", species1, name, species2, err)
	}
	slices.Sort(out)

	return slices.Compact(out), nil
}

func (s *Store) nameIndex(ctx context.Context, species string) (NameIndex, error) {
	if s.names == nil || s.IsFixture(species) {
		return mapping.Identity{}, nil
	}
	idx, err := s.names.Names(ctx, species)
	if err != nil {
		return nil, fmt.Errorf("orthology: names of %s: %w", species, err)
	}

	return idx, nil
}

// AddManualOrtholog records (species1, id1) ~ (species2, id2) in both
// orientations. SourceManual is attached only when the relationship has no
// provenance yet; known relationships are left untouched.
// The pair is loaded first, so later loads never shadow the manual entry.
// If the pair is evicted before the entry is written, it is loaded again.
func (s *Store) AddManualOrtholog(ctx context.Context, species1, id1, species2, id2 string) error {
	for {
		if err := s.ensure(ctx, species1, species2); err != nil {
			return err
		}
		s.mu.Lock()
		added := s.addManualLocked(species1, id1, species2, id2)
		s.mu.Unlock()
		if added {
			return nil
		}
	}
}

// addManualLocked inserts the manual relationship into the loaded tables of
// the pair. It reports false, writing nothing, when the pair is not loaded.
// Caller holds mu.
func (s *Store) addManualLocked(species1, id1, species2, id2 string) bool {
	fwd, ok1 := s.tables[speciesKey{from: species1, to: species2}]
	back, ok2 := s.tables[speciesKey{from: species2, to: species1}]
	if !ok1 || !ok2 {
		return false
	}
	if len(fwd[id1][id2]) == 0 {
		fwd.put(id1, id2, Manual)
	}
	if len(back[id2][id1]) == 0 {
		back.put(id2, id1, Manual)
	}

	return true
}

// Sources returns the sorted provenance of (species1, id1) ~ (species2, id2);
// empty if the two are not orthologs.
func (s *Store) Sources(ctx context.Context, species1, id1, species2, id2 string) ([]Source, error) {
	v, err := s.Get(ctx, species1, species2)
	if err != nil {
		return nil, err
	}

	return v.Sources(id1, id2), nil
}

// Preload loads every unordered pair of species.
func (s *Store) Preload(ctx context.Context, species ...string) error {
	for i, s1 := range species {
		for _, s2 := range species[i+1:] {
			if s1 == s2 {
				continue
			}
			if err := s.ensure(ctx, s1, s2); err != nil {
				return err
			}
		}
	}

	return nil
}

// OrthologsAcross returns the ortholog ids of (species, id) in each of
// others; species without orthologs are omitted.
func (s *Store) OrthologsAcross(ctx context.Context, species, id string, others ...string) (map[string][]string, error) {
	out := make(map[string][]string)
	for _, other := range others {
		if other == species {
			continue
		}
		ids, err := s.OrthologsOf(ctx, species, id, other)
		if err != nil {
			return nil, err
		}
		if len(ids) > 0 {
			out[other] = ids
		}
	}

	return out, nil
}

// HasOrthologInAll reports whether (species, id) has an ortholog in every
// one of others (species itself is skipped).
func (s *Store) HasOrthologInAll(ctx context.Context, species, id string, others ...string) (bool, error) {
	for _, other := range others {
		if other == species {
			continue
		}
		ok, err := s.HasOrthologIn(ctx, species, id, other)
		if err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}

// ProteinsWithOrthologs returns, sorted, every id of species that has an
// ortholog in any loaded partner species. It never triggers a load.
func (s *Store) ProteinsWithOrthologs(species string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for k, t := range s.tables {
		if k.from != species || k.to == species {
			continue
		}
		for id := range t {
			seen[id] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	slices.Sort(out)

	return out
}

// Species returns the species taking part in at least one loaded pair, sorted.
func (s *Store) Species() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for k := range s.tables {
		seen[k.from] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for sp := range seen {
		out = append(out, sp)
	}
	slices.Sort(out)

	return out
}

// Evict drops both orientations of the pair; the next query reloads it.
func (s *Store) Evict(species1, species2 string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tables, speciesKey{from: species1, to: species2})
	delete(s.tables, speciesKey{from: species2, to: species1})
}
