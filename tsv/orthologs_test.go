package tsv_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppin/orthology"
	"github.com/katalvlaran/ppin/tsv"
)

func TestReadOrthologs(t *testing.T) {
	in := "!header\nENSP1\tENSMUSP1\nENSP2\tENSMUSP2\tOrthoMCL\n\nlonely\n"
	recs, err := tsv.ReadOrthologs(strings.NewReader(in), orthology.DataSource("Inparanoid"))
	require.NoError(t, err)
	require.Equal(t, []orthology.Record{
		{Protein1: "ENSP1", Protein2: "ENSMUSP1", Source: orthology.DataSource("Inparanoid")},
		{Protein1: "ENSP2", Protein2: "ENSMUSP2", Source: orthology.DataSource("OrthoMCL")},
	}, recs)
}

func write(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	l := tsv.FileLoader{Dir: dir}
	write(t, l.Path("H.sapiens", "M.musculus"), "ENSP1\tENSMUSP1\n")
	require.Equal(t, filepath.Join(dir, "H.sapiens", "H.sapiens.M.musculus.orthologs.txt"), l.Path("H.sapiens", "M.musculus"))

	recs, err := l.Load(context.Background(), "H.sapiens", "M.musculus")
	require.NoError(t, err)
	require.Equal(t, []orthology.Record{{Protein1: "ENSP1", Protein2: "ENSMUSP1"}}, recs)

	// Only the other orientation exists: records come back swapped.
	recs, err = l.Load(context.Background(), "M.musculus", "H.sapiens")
	require.NoError(t, err)
	require.Equal(t, []orthology.Record{{Protein1: "ENSMUSP1", Protein2: "ENSP1"}}, recs)

	_, err = l.Load(context.Background(), "H.sapiens", "D.rerio")
	require.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.Load(ctx, "H.sapiens", "M.musculus")
	require.ErrorIs(t, err, context.Canceled)
}

func TestFixtureLoaderWithStore(t *testing.T) {
	dir := t.TempDir()
	l := tsv.FixtureLoader{Dir: dir, Prefix: "test"}
	write(t, filepath.Join(dir, "ortholog_A_B.txt"), "!fixture\nP1\tQ1\nP2\tQ2\tignored\n")
	require.Equal(t, filepath.Join(dir, "networkA.txt"), l.NetworkPath("testA"))

	st := orthology.NewStore(orthology.WithFixtures(l, "test"))
	src, err := st.Sources(context.Background(), "testB", "Q2", "testA", "P2")
	require.NoError(t, err)
	require.Equal(t, []orthology.Source{orthology.Fixture}, src)

	ids, err := st.OrthologsOf(context.Background(), "testA", "P1", "testB")
	require.NoError(t, err)
	require.Equal(t, []string{"Q1"}, ids)
}
