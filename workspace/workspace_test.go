package workspace_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/ppin/config"
	"github.com/katalvlaran/ppin/core"
	"github.com/katalvlaran/ppin/interolog"
	"github.com/katalvlaran/ppin/matrix"
	"github.com/katalvlaran/ppin/workspace"
)

const (
	human = "H.sapiens"
	mouse = "M.musculus"
)

func write(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

// fixtureConfig lays out testA/testB fixtures: P3's ortholog Q3 is not in networkB.
func fixtureConfig(t *testing.T, backend config.Backend) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.FixtureDir = t.TempDir()
	cfg.Backend = backend
	write(t, filepath.Join(cfg.FixtureDir, "networkA.txt"), "!fixture A\nP1\tP2\nP2\tP3\n")
	write(t, filepath.Join(cfg.FixtureDir, "networkB.txt"), "Q1\tQ2\n")
	write(t, filepath.Join(cfg.FixtureDir, "ortholog_A_B.txt"), "P1\tQ1\nP2\tQ2\nP3\tQ3\n")

	return cfg
}

// dataConfig lays out a two-species data directory with name tables.
func dataConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.FixtureDir = t.TempDir()
	write(t, filepath.Join(cfg.DataDir, human, human+".ppin.iref.89.txt"), "TP53\tMDM2\nTP53\tBRCA1\n")
	write(t, filepath.Join(cfg.DataDir, mouse, mouse+".ppin.iref.89.txt"), "Trp53\tMdm2\n")
	write(t, filepath.Join(cfg.DataDir, human, human+".ensembl89.txt"),
		"!name\tgene\ttranscript\tprotein\nTP53\tENSG1\tENST1\tENSP1\nMDM2\tENSG2\tENST2\tENSP2\nBRCA1\tENSG3\tENST3\tENSP3\n")
	write(t, filepath.Join(cfg.DataDir, mouse, mouse+".ensembl89.txt"),
		"Trp53\tENSMUSG1\tENSMUST1\tENSMUSP1\nMdm2\tENSMUSG2\tENSMUST2\tENSMUSP2\n")

	return cfg
}

func orthologFile(cfg config.Config) string {
	return filepath.Join(cfg.DataDir, human, human+"."+mouse+".orthologs.txt")
}

func TestFixtureInterologs(t *testing.T) {
	for _, backend := range []config.Backend{config.BackendList, config.BackendMatrix} {
		t.Run(string(backend), func(t *testing.T) {
			w, err := workspace.Open(fixtureConfig(t, backend), workspace.WithLogger(zaptest.NewLogger(t)))
			require.NoError(t, err)
			defer w.Close()

			ctx := context.Background()
			res, err := w.Interologs(ctx, "testA", "testB")
			require.NoError(t, err)
			require.Equal(t, []core.Pair{{First: "P1", Second: "P2"}}, res.Edges())
			require.True(t, res.IsInterolog(core.Pair{First: "P2", Second: "P1"}))
			require.Empty(t, res.NotInterologs)

			nw, err := w.Network(ctx, "testA")
			require.NoError(t, err)
			require.Equal(t, "!fixture A\n", nw.Comment())
			require.Equal(t, "testA", nw.Species())
			if backend == config.BackendMatrix {
				require.IsType(t, &matrix.DenseNetwork{}, nw)
			} else {
				require.IsType(t, &core.SparseNetwork{}, nw)
			}
		})
	}
}

func TestFixtureClassification(t *testing.T) {
	w, err := workspace.Open(fixtureConfig(t, config.BackendList))
	require.NoError(t, err)

	c, err := w.ClassifyNeighbours(context.Background(), "testA", "P2", "testB", "Q2")
	require.NoError(t, err)
	require.Equal(t, []core.Pair{{First: "P1", Second: "Q1"}}, c.Interologs.Sorted())
	require.Equal(t, interolog.Side{Matched: []string{"P1"}, Unmatched: []string{"P3"}}, c.Side1)
	require.Equal(t, interolog.Side{Matched: []string{"Q1"}}, c.Side2)
}

func TestNetworkIsCached(t *testing.T) {
	w, err := workspace.Open(fixtureConfig(t, config.BackendMatrix))
	require.NoError(t, err)
	ctx := context.Background()

	a, err := w.Network(ctx, "testB")
	require.NoError(t, err)
	require.NoError(t, os.Remove(w.NetworkPath("testB")))
	b, err := w.Network(ctx, "testB")
	require.NoError(t, err)
	require.Same(t, a, b)

	replacement := core.NewSparseNetwork("testB")
	w.PutNetwork("testB", replacement)
	c, err := w.Network(ctx, "testB")
	require.NoError(t, err)
	require.Same(t, core.Network(replacement), c)
}

func TestPaths(t *testing.T) {
	cfg := dataConfig(t)
	w, err := workspace.Open(cfg)
	require.NoError(t, err)

	require.Equal(t, filepath.Join(cfg.DataDir, human, "H.sapiens.ppin.iref.89.txt"), w.NetworkPath(human))
	require.Equal(t, filepath.Join(cfg.DataDir, human, "H.sapiens.ensembl89.txt"), w.NamesPath(human))
	require.Equal(t, filepath.Join(cfg.FixtureDir, "network1.txt"), w.NetworkPath("test1"))
}

func TestDataInterologs(t *testing.T) {
	cfg := dataConfig(t)
	write(t, orthologFile(cfg), "ENSP1\tENSMUSP1\nENSP2\tENSMUSP2\n")
	w, err := workspace.Open(cfg, workspace.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	ctx := context.Background()

	res, err := w.Interologs(ctx, human, mouse)
	require.NoError(t, err)
	require.Equal(t, []core.Pair{{First: "MDM2", Second: "TP53"}}, res.Edges())
	require.Equal(t, []core.Pair{{First: "Mdm2", Second: "Trp53"}},
		res.Interologs[core.Pair{First: "MDM2", Second: "TP53"}].Sorted())

	names, err := w.Names(ctx, mouse)
	require.NoError(t, err)
	ids, ok := names.Forward("Mdm2")
	require.True(t, ok)
	require.Equal(t, []string{"ENSMUSP2"}, ids)

	// The reverse direction reads the same table.
	back, err := w.Interologs(ctx, mouse, human)
	require.NoError(t, err)
	require.True(t, back.IsInterolog(core.Pair{First: "Mdm2", Second: "Trp53"}))
}

func TestErrors(t *testing.T) {
	cfg := dataConfig(t)
	cfg.Backend = "graph"
	_, err := workspace.Open(cfg)
	require.ErrorIs(t, err, config.ErrUnknownBackend)

	w, err := workspace.Open(dataConfig(t))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = w.Network(ctx, "D.rerio")
	require.ErrorIs(t, err, fs.ErrNotExist)

	// No ortholog table for the pair.
	_, err = w.Interologs(ctx, human, mouse)
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = w.ImportOrthologFiles(ctx, human, mouse)
	require.ErrorIs(t, err, workspace.ErrNoDatabase)
}

// DatabaseSuite runs the data directory against a SQLite ortholog database.
type DatabaseSuite struct {
	suite.Suite
	cfg config.Config
	w   *workspace.Workspace
}

func (s *DatabaseSuite) SetupTest() {
	s.cfg = dataConfig(s.T())
	s.cfg.OrthologDB = filepath.Join(s.T().TempDir(), "orthologs.db")
	w, err := workspace.Open(s.cfg, workspace.WithLogger(zaptest.NewLogger(s.T())))
	s.Require().NoError(err)
	s.w = w
}

func (s *DatabaseSuite) TearDownTest() {
	s.Require().NoError(s.w.Close())
}

func (s *DatabaseSuite) TestEmptyDatabaseHasNoInterologs() {
	res, err := s.w.Interologs(context.Background(), human, mouse)
	s.Require().NoError(err)
	s.Empty(res.Edges())
}

func (s *DatabaseSuite) TestImportThenQuery() {
	ctx := context.Background()
	_, err := s.w.Interologs(ctx, human, mouse)
	s.Require().NoError(err)

	write(s.T(), orthologFile(s.cfg), "ENSP1\tENSMUSP1\nENSP2\tENSMUSP2\nENSP2\tENSMUSP2\n")
	n, err := s.w.ImportOrthologFiles(ctx, human, mouse)
	s.Require().NoError(err)
	s.Equal(2, n)

	// The cached empty view was evicted on import.
	res, err := s.w.Interologs(ctx, human, mouse)
	s.Require().NoError(err)
	s.Equal([]core.Pair{{First: "MDM2", Second: "TP53"}}, res.Edges())

	// Importing again adds nothing.
	n, err = s.w.ImportOrthologFiles(ctx, human, mouse)
	s.Require().NoError(err)
	s.Zero(n)
}

func TestDatabaseSuite(t *testing.T) {
	suite.Run(t, new(DatabaseSuite))
}
