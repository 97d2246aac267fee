package tsv_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppin/tsv"
)

const ensembl = "!name\tgene\ttranscript\tprotein\n" +
	"TP53\tENSG1\tENST1\tENSP1\n" +
	"TP53\tENSG1\tENST2\tENSP2\n" +
	"MDM2\tENSG2\tENST3\t\n" +
	"short\trow\n" +
	" BRCA2 \tENSG3\tENST4\tENSP4\n"

func TestReadMapping(t *testing.T) {
	m, err := tsv.ReadMapping(strings.NewReader(ensembl), "\t", 0, 3)
	require.NoError(t, err)

	ids, ok := m.Forward("TP53")
	require.True(t, ok)
	require.Equal(t, []string{"ENSP1", "ENSP2"}, ids)
	require.False(t, m.ContainsForward("MDM2")) // empty protein cell
	require.False(t, m.ContainsForward("short"))
	require.True(t, m.ContainsForward("BRCA2")) // trimmed
	require.Equal(t, 3, m.Len())
}

func TestReadMappingSeparatorAndArgs(t *testing.T) {
	m, err := tsv.ReadMapping(strings.NewReader("a,b\nc,d\n"), ",", 1, 0)
	require.NoError(t, err)
	keys, ok := m.Backward("a")
	require.True(t, ok)
	require.Equal(t, []string{"b"}, keys)

	_, err = tsv.ReadMapping(strings.NewReader(""), "", 0, 1)
	require.Error(t, err)
	_, err = tsv.ReadMapping(strings.NewReader(""), "\t", -1, 1)
	require.Error(t, err)
}

func TestReadMappingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "H.sapiens.ensembl89.txt")
	require.NoError(t, os.WriteFile(path, []byte(ensembl), 0o644))

	m, err := tsv.ReadMappingFile(path, "\t", 0, 3)
	require.NoError(t, err)
	require.Equal(t, 3, m.Len())

	_, err = tsv.ReadMappingFile(path+".missing", "\t", 0, 3)
	require.ErrorIs(t, err, os.ErrNotExist)
}
