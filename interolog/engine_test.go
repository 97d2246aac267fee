package interolog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/ppin/core"
	"github.com/katalvlaran/ppin/interolog"
	"github.com/katalvlaran/ppin/matrix"
	"github.com/katalvlaran/ppin/orthology"
)

const (
	speciesA = "testA"
	speciesB = "testB"
)

// backends builds fresh networks of each implementation.
var backends = map[string]func(name string) core.Network{
	"sparse": func(name string) core.Network { return core.NewSparseNetwork(name) },
	"dense":  func(name string) core.Network { return matrix.NewDenseNetwork(name) },
}

// build creates a network named after species with the given edges; a
// one-element entry adds a lone vertex.
func build(t *testing.T, mk func(string) core.Network, species string, edges ...[]string) core.Network {
	t.Helper()
	n := mk(species)
	for _, e := range edges {
		for _, name := range e {
			v := core.NewNode(name, species)
			if !n.ContainsVertex(v) {
				require.NoError(t, n.AddVertex(v))
			}
		}
		if len(e) == 2 {
			require.NoError(t, n.AddEdge(core.NewNode(e[0], species), core.NewNode(e[1], species)))
		}
	}

	return n
}

// fixtureStore serves the given A->B ortholog pairs as fixture data.
func fixtureStore(t *testing.T, pairs ...[2]string) *orthology.Store {
	t.Helper()
	loader := orthology.LoaderFunc(func(_ context.Context, s1, s2 string) ([]orthology.Record, error) {
		require.Equal(t, speciesA, s1)
		require.Equal(t, speciesB, s2)
		out := make([]orthology.Record, 0, len(pairs))
		for _, p := range pairs {
			out = append(out, orthology.Record{Protein1: p[0], Protein2: p[1], Source: orthology.Fixture})
		}
		return out, nil
	})

	return orthology.NewStore(orthology.WithFixtures(loader, ""), orthology.WithLogger(zaptest.NewLogger(t)))
}

var scenarioOrthologs = [][2]string{{"P1", "Q1"}, {"P2", "Q2"}, {"P3", "Q3"}}

// TestFindScenario: P3's only ortholog Q3 is not a vertex of network2, so
// the edge P2-P3 is skipped rather than filed as a non-interolog.
func TestFindScenario(t *testing.T) {
	for name, mk := range backends {
		t.Run(name, func(t *testing.T) {
			n1 := build(t, mk, speciesA, []string{"P1", "P2"}, []string{"P2", "P3"})
			n2 := build(t, mk, speciesB, []string{"Q1", "Q2"})
			e := interolog.New(fixtureStore(t, scenarioOrthologs...), interolog.WithLogger(zaptest.NewLogger(t)))

			res, err := e.Find(context.Background(), n1, n2)
			require.NoError(t, err)
			require.Equal(t, speciesA, res.Species1)
			require.Equal(t, []core.Pair{{First: "P1", Second: "P2"}}, res.Edges())
			require.Equal(t, []core.Pair{{First: "Q1", Second: "Q2"}}, res.Interologs[core.Pair{First: "P1", Second: "P2"}].Sorted())
			require.Empty(t, res.NotInterologs)
			require.True(t, res.IsInterolog(core.Pair{First: "P2", Second: "P1"}))
			require.False(t, res.IsInterolog(core.Pair{First: "P2", Second: "P3"}))
		})
	}
}

func TestFindNotInterolog(t *testing.T) {
	for name, mk := range backends {
		t.Run(name, func(t *testing.T) {
			n1 := build(t, mk, speciesA, []string{"P1", "P2"}, []string{"P2", "P3"})
			n2 := build(t, mk, speciesB, []string{"Q1", "Q2"}, []string{"Q3"})
			e := interolog.New(fixtureStore(t, scenarioOrthologs...))

			res, err := e.Find(context.Background(), n1, n2)
			require.NoError(t, err)
			p23 := core.Pair{First: "P2", Second: "P3"}
			require.Equal(t, []core.Pair{{First: "Q2", Second: "Q3"}}, res.NotInterologs[p23].Sorted())
			require.NotContains(t, res.Interologs, p23)
			require.Equal(t, []core.Pair{{First: "P1", Second: "P2"}, p23}, res.Candidates())
		})
	}
}

// TestFindEachEdgeOnce uses many-to-many orthologs and a self-loop: every
// network1 edge is keyed once, canonical network2 pairs are never duplicated
// and never filed on both sides.
func TestFindEachEdgeOnce(t *testing.T) {
	n1 := build(t, backends["sparse"], speciesA,
		[]string{"P2", "P1"}, []string{"P1", "P1"}, []string{"P1", "P3"})
	n2 := build(t, backends["dense"], speciesB,
		[]string{"Q1", "Q2"}, []string{"Q2", "Q1b"}, []string{"Q3"})
	e := interolog.New(fixtureStore(t,
		[2]string{"P1", "Q1"}, [2]string{"P1", "Q1b"}, [2]string{"P2", "Q2"}, [2]string{"P3", "Q3"}))

	res, err := e.Find(context.Background(), n1, n2)
	require.NoError(t, err)

	p12 := core.Pair{First: "P1", Second: "P2"}
	require.Equal(t, []core.Pair{{First: "Q1", Second: "Q2"}, {First: "Q1b", Second: "Q2"}}, res.Interologs[p12].Sorted())
	require.NotContains(t, res.Interologs, core.Pair{First: "P1", Second: "P1"})
	require.NotContains(t, res.NotInterologs, core.Pair{First: "P1", Second: "P1"})

	p13 := core.Pair{First: "P1", Second: "P3"}
	require.Equal(t, []core.Pair{{First: "Q1", Second: "Q3"}, {First: "Q1b", Second: "Q3"}}, res.NotInterologs[p13].Sorted())

	for k, set := range res.Interologs {
		for p := range set {
			require.False(t, res.NotInterologs[k].Has(p), "%s filed on both sides for %s", p, k)
		}
	}
}

// TestFindKeysEachEdgeOnce: on a path and an isomorphic copy, each undirected
// edge is keyed by its canonical pair and never by its reverse.
func TestFindKeysEachEdgeOnce(t *testing.T) {
	for name, mk := range backends {
		t.Run(name, func(t *testing.T) {
			n1 := build(t, mk, speciesA, []string{"B", "A"}, []string{"C", "B"})
			n2 := build(t, mk, speciesB, []string{"A2", "B2"}, []string{"B2", "C2"})
			e := interolog.New(fixtureStore(t, [2]string{"A", "A2"}, [2]string{"B", "B2"}, [2]string{"C", "C2"}))

			res, err := e.Find(context.Background(), n1, n2)
			require.NoError(t, err)
			require.Len(t, res.Interologs, 2)
			require.Empty(t, res.NotInterologs)
			require.NotContains(t, res.Interologs, core.Pair{First: "B", Second: "A"})
			require.NotContains(t, res.Interologs, core.Pair{First: "C", Second: "B"})
			require.Equal(t, []core.Pair{{First: "A2", Second: "B2"}}, res.Interologs[core.Pair{First: "A", Second: "B"}].Sorted())
			require.Equal(t, []core.Pair{{First: "B2", Second: "C2"}}, res.Interologs[core.Pair{First: "B", Second: "C"}].Sorted())
		})
	}
}

func TestFindPropagatesLoadErrors(t *testing.T) {
	boom := errors.New("orthology file missing")
	st := orthology.NewStore(orthology.WithLoader(orthology.LoaderFunc(
		func(context.Context, string, string) ([]orthology.Record, error) { return nil, boom })))
	n1 := core.NewSparseNetwork("H.sapiens")
	n2 := core.NewSparseNetwork("M.musculus")

	_, err := interolog.New(st).Find(context.Background(), n1, n2)
	require.ErrorIs(t, err, boom)
}
