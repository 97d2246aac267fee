// SPDX-License-Identifier: MIT

// Package workspace wires the ppin components over one data directory:
// per-species networks and name tables read from disk, the ortholog store
// backed by ortholog files or a SQLite database, fixtures for test species,
// and the interolog engine on top.
//
// Layout under config.DataDir (s is a species, v the file version):
//
//	<s>/<s>.ppin.<source>.<v>.txt   interaction network
//	<s>/<s>.ensembl<v>.txt          name table (name in column 0, protein id in column 3)
//	<s>/<s>.<s2>.orthologs.txt      ortholog table, unless PPIN_ORTHOLOG_DB is set
//
// Species carrying the fixture prefix read <FixtureDir>/network<s>.txt and
// <FixtureDir>/ortholog_<s1>_<s2>.txt with the prefix removed.
package workspace

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/ppin/config"
	"github.com/katalvlaran/ppin/core"
	"github.com/katalvlaran/ppin/interolog"
	"github.com/katalvlaran/ppin/mapping"
	"github.com/katalvlaran/ppin/matrix"
	"github.com/katalvlaran/ppin/orthology"
	"github.com/katalvlaran/ppin/sqlstore"
	"github.com/katalvlaran/ppin/tsv"
)

// Name table columns of the Ensembl export.
const (
	nameColumn = 0
	idColumn   = 3
)

// Option configures a Workspace.
type Option func(*Workspace)

// WithLogger sets the logger shared by every component. Default: zap.NewNop().
func WithLogger(log *zap.Logger) Option {
	return func(w *Workspace) {
		if log != nil {
			w.log = log
		}
	}
}

// WithSeeds replaces the manual orthologs applied on load.
// Default: orthology.DefaultSeeds.
func WithSeeds(seeds ...orthology.Seed) Option {
	return func(w *Workspace) { w.seeds = seeds }
}

// Workspace owns the caches of one data directory. It is safe for
// concurrent use.
type Workspace struct {
	cfg   config.Config
	log   *zap.Logger
	seeds []orthology.Seed

	files    tsv.FileLoader
	fixtures tsv.FixtureLoader
	db       *sqlstore.Store // nil unless cfg.OrthologDB is set

	names     *mapping.Registry
	orthologs *orthology.Store
	engine    *interolog.Engine

	mu       sync.RWMutex
	networks map[string]core.Network
	group    singleflight.Group
}

// Open builds a Workspace for cfg. When cfg.OrthologDB is set the SQLite
// database is opened (and created if needed); Close releases it.
func Open(cfg config.Config, opts ...Option) (*Workspace, error) {
	if _, err := config.ParseBackend(string(cfg.Backend)); err != nil {
		return nil, err
	}
	w := &Workspace{
		cfg:      cfg,
		log:      zap.NewNop(),
		seeds:    orthology.DefaultSeeds,
		files:    tsv.FileLoader{Dir: cfg.DataDir},
		fixtures: tsv.FixtureLoader{Dir: cfg.FixtureDir, Prefix: cfg.FixturePrefix},
		networks: make(map[string]core.Network),
	}
	for _, opt := range opts {
		opt(w)
	}

	var loader orthology.Loader = w.files
	if cfg.OrthologDB != "" {
		db, err := sqlstore.Open(cfg.OrthologDB, sqlstore.WithLogger(w.log.Named("sqlstore")))
		if err != nil {
			return nil, err
		}
		w.db = db
		loader = db
	}

	w.names = mapping.NewRegistry(w.loadNames, mapping.WithLogger(w.log.Named("mapping")))
	w.orthologs = orthology.NewStore(
		orthology.WithLogger(w.log.Named("orthology")),
		orthology.WithLoader(loader),
		orthology.WithFixtures(w.fixtures, cfg.FixturePrefix),
		orthology.WithNames(orthology.NamesFunc(w.nameIndex)),
		orthology.WithSeeds(w.seeds...),
	)
	w.engine = interolog.New(w.orthologs, interolog.WithLogger(w.log.Named("interolog")))
	w.log.Debug("workspace opened",
		zap.String("data", cfg.DataDir),
		zap.String("backend", string(cfg.Backend)),
		zap.Bool("ortholog_db", w.db != nil))

	return w, nil
}

// Close releases the ortholog database, if any.
func (w *Workspace) Close() error {
	if w.db == nil {
		return nil
	}

	return w.db.Close()
}

// Config returns the configuration the workspace was opened with.
func (w *Workspace) Config() config.Config { return w.cfg }

// Orthologs returns the shared ortholog store.
func (w *Workspace) Orthologs() *orthology.Store { return w.orthologs }

// Engine returns the interolog engine over Orthologs.
func (w *Workspace) Engine() *interolog.Engine { return w.engine }

// NetworkPath returns the file the network of species is read from.
func (w *Workspace) NetworkPath(species string) string {
	if w.orthologs.IsFixture(species) {
		return w.fixtures.NetworkPath(species)
	}
	name := strings.Join([]string{species, "ppin", w.cfg.NetworkSource, strconv.Itoa(w.cfg.FileVersion), "txt"}, ".")

	return filepath.Join(w.cfg.DataDir, species, name)
}

// NamesPath returns the name table file of species.
func (w *Workspace) NamesPath(species string) string {
	return filepath.Join(w.cfg.DataDir, species, species+".ensembl"+strconv.Itoa(w.cfg.FileVersion)+".txt")
}

// Network returns the interaction network of species, reading it on first
// use. The returned network is shared; Clone it before mutating.
func (w *Workspace) Network(ctx context.Context, species string) (core.Network, error) {
	w.mu.RLock()
	nw, ok := w.networks[species]
	w.mu.RUnlock()
	if ok {
		return nw, nil
	}

	v, err, _ := w.group.Do(species, func() (any, error) {
		w.mu.RLock()
		nw, ok := w.networks[species]
		w.mu.RUnlock()
		if ok {
			return nw, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		nw = w.newNetwork(species)
		path := w.NetworkPath(species)
		if err := tsv.ReadNetworkFile(path, species, nw); err != nil {
			return nil, fmt.Errorf("workspace.Network(%s): %w", species, err)
		}
		w.log.Debug("network loaded",
			zap.String("species", species),
			zap.String("path", path),
			zap.Int("vertices", nw.VertexCount()),
			zap.Int("edges", nw.EdgeCount()))

		w.mu.Lock()
		w.networks[species] = nw
		w.mu.Unlock()

		return nw, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(core.Network), nil
}

// PutNetwork installs nw as the network of species, replacing any cached one.
func (w *Workspace) PutNetwork(species string, nw core.Network) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.networks[species] = nw
}

func (w *Workspace) newNetwork(species string) core.Network {
	if w.cfg.Backend == config.BackendList {
		return core.NewSparseNetwork(species)
	}

	return matrix.NewDenseNetwork(species)
}

// Names returns the name table of species.
func (w *Workspace) Names(ctx context.Context, species string) (*mapping.Mapping, error) {
	return w.names.Get(ctx, species)
}

func (w *Workspace) loadNames(ctx context.Context, species string) (*mapping.Mapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return tsv.ReadMappingFile(w.NamesPath(species), "\t", nameColumn, idColumn)
}

func (w *Workspace) nameIndex(ctx context.Context, species string) (orthology.NameIndex, error) {
	m, err := w.names.Get(ctx, species)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Interologs reads the networks of species1 and species2 and finds the
// interologs of the first in the second.
func (w *Workspace) Interologs(ctx context.Context, species1, species2 string) (*interolog.Result, error) {
	run := uuid.NewString()
	log := w.log.With(zap.String("run", run), zap.String("species1", species1), zap.String("species2", species2))

	nw1, err := w.Network(ctx, species1)
	if err != nil {
		return nil, err
	}
	nw2, err := w.Network(ctx, species2)
	if err != nil {
		return nil, err
	}
	res, err := w.engine.Find(ctx, nw1, nw2)
	if err != nil {
		log.Warn("interolog search failed", zap.Error(err))
		return nil, err
	}
	log.Info("interolog search done",
		zap.Int("interologs", len(res.Interologs)),
		zap.Int("not_interologs", len(res.NotInterologs)))

	return res, nil
}

// ClassifyNeighbours classifies the neighbours of query1 in the species1
// network against those of query2 in the species2 network.
func (w *Workspace) ClassifyNeighbours(ctx context.Context, species1, query1, species2, query2 string) (*interolog.Classification, error) {
	nw1, err := w.Network(ctx, species1)
	if err != nil {
		return nil, err
	}
	nw2, err := w.Network(ctx, species2)
	if err != nil {
		return nil, err
	}

	return w.engine.ClassifyNeighbours(ctx, nw1, query1, nw2, query2)
}

// ImportOrthologFiles copies the ortholog table of (species1, species2) from
// the data directory into the ortholog database and returns the number of
// new rows. It requires cfg.OrthologDB.
func (w *Workspace) ImportOrthologFiles(ctx context.Context, species1, species2 string) (int, error) {
	if w.db == nil {
		return 0, fmt.Errorf("workspace.ImportOrthologFiles(%s, %s): %w", species1, species2, ErrNoDatabase)
	}
	recs, err := w.files.Load(ctx, species1, species2)
	if err != nil {
		return 0, err
	}
	n, err := w.db.Insert(ctx, species1, species2, recs)
	if err != nil {
		return 0, err
	}
	// Drop any cached view so the next query reads the new rows.
	w.orthologs.Evict(species1, species2)
	w.log.Info("orthologs imported",
		zap.String("species1", species1),
		zap.String("species2", species2),
		zap.Int("rows", n))

	return n, nil
}
