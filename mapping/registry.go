// SPDX-License-Identifier: MIT
// File: registry.go
// Role: per-species Mapping cache.
//
// Population:
//   - Each species is loaded at most once: concurrent first requests share
//     one LoadFunc call through singleflight, and the result is re-checked
//     under the write lock before it is stored.
//   - Failed loads are not cached; the next Get retries.

package mapping

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// LoadFunc produces the name Mapping of one species.
type LoadFunc func(ctx context.Context, species string) (*Mapping, error)

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger routes load events to log. Default: zap.NewNop().
func WithLogger(log *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}

// Registry caches one Mapping per species.
type Registry struct {
	mu    sync.RWMutex
	cache map[string]*Mapping
	group singleflight.Group
	load  LoadFunc
	log   *zap.Logger
}

// NewRegistry returns an empty Registry that fills itself with load.
func NewRegistry(load LoadFunc, opts ...RegistryOption) *Registry {
	r := &Registry{
		cache: make(map[string]*Mapping),
		load:  load,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Get returns the Mapping of species, loading it on first use.
// Loader errors are wrapped and returned; nothing is cached on failure.
func (r *Registry) Get(ctx context.Context, species string) (*Mapping, error) {
	if m, ok := r.cached(species); ok {
		return m, nil
	}

	v, err, _ := r.group.Do(species, func() (any, error) {
		if m, ok := r.cached(species); ok {
			return m, nil
		}
		r.log.Debug("loading mapping", zap.String("species", species))
		m, err := r.load(ctx, species)
		if err != nil {
			return nil, fmt.Errorf("mapping.Registry.Get(%s): %w", species, err)
		}
		r.mu.Lock()
		if existing, ok := r.cache[species]; ok {
			m = existing
		} else {
			r.cache[species] = m
		}
		r.mu.Unlock()
		r.log.Debug("mapping loaded", zap.String("species", species), zap.Int("pairs", m.Len()))

		return m, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Mapping), nil
}

// Put stores m as the Mapping of species, replacing any cached one.
func (r *Registry) Put(species string, m *Mapping) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache[species] = m
}

// Evict drops the cached Mapping of species.
func (r *Registry) Evict(species string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cache, species)
}

// Species returns the species currently cached, sorted.
func (r *Registry) Species() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.cache))
	for s := range r.cache {
		out = append(out, s)
	}
	slices.Sort(out)

	return out
}

func (r *Registry) cached(species string) (*Mapping, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.cache[species]

	return m, ok
}
