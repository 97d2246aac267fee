// SPDX-License-Identifier: MIT

package orthology

import "go.uber.org/zap"

// DefaultFixturePrefix marks species served from test fixtures.
const DefaultFixturePrefix = "test"

// Option configures a Store.
type Option func(*Store)

// WithLogger routes load events to log. Default: zap.NewNop().
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithLoader sets the Loader for regular species pairs.
func WithLoader(l Loader) Option {
	return func(s *Store) { s.loader = l }
}

// WithFixtures sets the Loader for species whose name starts with prefix.
// An empty prefix keeps DefaultFixturePrefix.
func WithFixtures(l Loader, prefix string) Option {
	return func(s *Store) {
		s.fixtures = l
		if prefix != "" {
			s.fixturePrefix = prefix
		}
	}
}

// WithNames sets the per-species name index used by OrthologsOfByName.
// Without it every species resolves names through mapping.Identity.
func WithNames(n NameSource) Option {
	return func(s *Store) { s.names = n }
}

// WithSeeds registers manual relationships applied whenever their species
// pair is loaded (see DefaultSeeds).
func WithSeeds(seeds ...Seed) Option {
	return func(s *Store) { s.seeds = append(s.seeds, seeds...) }
}
