// SPDX-License-Identifier: MIT

package tsv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/ppin/orthology"
)

// ReadOrthologs parses "id1\tid2[\tsource]" rows. Rows without a third
// column get src; a third column names a SourceData tag. Rows with fewer
// than two ids are skipped.
func ReadOrthologs(r io.Reader, src orthology.Source) ([]orthology.Record, error) {
	var out []orthology.Record
	in := newLines(r)
	for in.next() {
		if isBlank(in.line) || isComment(in.line) {
			continue
		}
		fields := strings.Split(in.line, "\t")
		if len(fields) < 2 {
			continue
		}
		rec := orthology.Record{
			Protein1: strings.TrimSpace(fields[0]),
			Protein2: strings.TrimSpace(fields[1]),
			Source:   src,
		}
		if len(fields) > 2 {
			if tag := strings.TrimSpace(fields[2]); tag != "" {
				rec.Source = orthology.DataSource(tag)
			}
		}
		out = append(out, rec)
	}
	if err := in.err(); err != nil {
		return nil, fmt.Errorf("tsv.ReadOrthologs: line %d: %w", in.n+1, err)
	}

	return out, nil
}

// readOriented reads the table at path for (species1, species2); when it
// does not exist it reads the table at reversed for (species2, species1)
// and swaps every record.
func readOriented(ctx context.Context, path, reversed string, src orthology.Source) ([]orthology.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	recs, err := readOrthologFile(path, src)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return recs, err
	}
	recs, rerr := readOrthologFile(reversed, src)
	if rerr != nil {
		if errors.Is(rerr, fs.ErrNotExist) {
			return nil, err
		}
		return nil, rerr
	}
	for i := range recs {
		recs[i].Protein1, recs[i].Protein2 = recs[i].Protein2, recs[i].Protein1
	}

	return recs, nil
}

func readOrthologFile(path string, src orthology.Source) ([]orthology.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := ReadOrthologs(f, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return recs, nil
}

// FileLoader reads production ortholog tables laid out as
// <Dir>/<s1>/<s1>.<s2>.orthologs.txt.
type FileLoader struct {
	Dir string
	// Source tags rows without a source column. Zero means SourceData.
	Source orthology.Source
}

var _ orthology.Loader = FileLoader{}

// Path returns the table path of (species1, species2).
func (l FileLoader) Path(species1, species2 string) string {
	return filepath.Join(l.Dir, species1, species1+"."+species2+".orthologs.txt")
}

// Load implements orthology.Loader.
func (l FileLoader) Load(ctx context.Context, species1, species2 string) ([]orthology.Record, error) {
	recs, err := readOriented(ctx, l.Path(species1, species2), l.Path(species2, species1), l.Source)
	if err != nil {
		return nil, fmt.Errorf("tsv.FileLoader(%s, %s): %w", species1, species2, err)
	}

	return recs, nil
}

// FixtureLoader reads test fixtures laid out as
// <Dir>/ortholog_<a>_<b>.txt, where a and b are the species names without
// Prefix. Every record is tagged orthology.Fixture.
type FixtureLoader struct {
	Dir    string
	Prefix string
}

var _ orthology.Loader = FixtureLoader{}

// Path returns the fixture path of (species1, species2).
func (l FixtureLoader) Path(species1, species2 string) string {
	a := strings.TrimPrefix(species1, l.Prefix)
	b := strings.TrimPrefix(species2, l.Prefix)

	return filepath.Join(l.Dir, "ortholog_"+a+"_"+b+".txt")
}

// NetworkPath returns the fixture network path of species: <Dir>/network<a>.txt.
func (l FixtureLoader) NetworkPath(species string) string {
	return filepath.Join(l.Dir, "network"+strings.TrimPrefix(species, l.Prefix)+".txt")
}

// Load implements orthology.Loader.
func (l FixtureLoader) Load(ctx context.Context, species1, species2 string) ([]orthology.Record, error) {
	recs, err := readOriented(ctx, l.Path(species1, species2), l.Path(species2, species1), orthology.Fixture)
	if err != nil {
		return nil, fmt.Errorf("tsv.FixtureLoader(%s, %s): %w", species1, species2, err)
	}
	for i := range recs {
		recs[i].Source = orthology.Fixture
	}

	return recs, nil
}
