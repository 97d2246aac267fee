// SPDX-License-Identifier: MIT

package orthology

import (
	"cmp"
	"context"

	"github.com/katalvlaran/ppin/mapping"
)

// SourceKind classifies where an ortholog relationship came from.
type SourceKind uint8

const (
	// SourceData is a relationship read from an orthology database or file.
	SourceData SourceKind = iota
	// SourceManual is a relationship added through AddManualOrtholog.
	SourceManual
	// SourceFixture is a relationship read from test fixtures.
	SourceFixture
)

func (k SourceKind) String() string {
	switch k {
	case SourceManual:
		return "manual"
	case SourceFixture:
		return "Test Data"
	default:
		return "data"
	}
}

// Source is one provenance tag of an ortholog relationship.
// Name is the tag as reported by the data (e.g. "Inparanoid"); when empty,
// the kind's default tag is used.
type Source struct {
	Kind SourceKind
	Name string
}

// Manual is the provenance recorded by AddManualOrtholog.
var Manual = Source{Kind: SourceManual, Name: "manual"}

// Fixture is the default provenance of fixture data.
var Fixture = Source{Kind: SourceFixture, Name: "Test Data"}

// DataSource returns a SourceData tag named name.
func DataSource(name string) Source { return Source{Kind: SourceData, Name: name} }

// normalized returns s with Name filled in, so equal tags compare equal.
func (s Source) normalized() Source { return Source{Kind: s.Kind, Name: s.String()} }

// String returns the provenance tag.
func (s Source) String() string {
	if s.Name != "" {
		return s.Name
	}

	return s.Kind.String()
}

// Compare orders sources by kind, then tag.
func (s Source) Compare(o Source) int {
	if c := cmp.Compare(s.Kind, o.Kind); c != 0 {
		return c
	}

	return cmp.Compare(s.String(), o.String())
}

// Record is one ortholog relationship as produced by a Loader:
// Protein1 belongs to the first species of the Load call, Protein2 to the second.
type Record struct {
	Protein1 string
	Protein2 string
	Source   Source
}

// Loader produces the ortholog records of a species pair.
// The Store calls it with the two species in lexicographic order.
type Loader interface {
	Load(ctx context.Context, species1, species2 string) ([]Record, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, species1, species2 string) ([]Record, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, species1, species2 string) ([]Record, error) {
	return f(ctx, species1, species2)
}

// NameIndex resolves protein names to ids (Forward) and ids back to names.
// *mapping.Mapping and mapping.Identity implement it.
type NameIndex interface {
	Forward(name string) ([]string, bool)
	RemapDiscardOriginal(dst, input []string, dir mapping.Direction) ([]string, error)
}

var (
	_ NameIndex = (*mapping.Mapping)(nil)
	_ NameIndex = mapping.Identity{}
)

// NameSource returns the NameIndex of a species.
type NameSource interface {
	Names(ctx context.Context, species string) (NameIndex, error)
}

// NamesFunc adapts a function to NameSource.
type NamesFunc func(ctx context.Context, species string) (NameIndex, error)

// Names calls f.
func (f NamesFunc) Names(ctx context.Context, species string) (NameIndex, error) {
	return f(ctx, species)
}

// Seed is a manual ortholog relationship applied whenever its species pair
// is loaded.
type Seed struct {
	Species1, Protein1 string
	Species2, Protein2 string
}

// DefaultSeeds are relationships missing from the usual orthology data:
// C. elegans TOCA-1 and TOCA-2 both pair with yeast BZZ1, which the data only
// links through their shared human ortholog TRIO.
var DefaultSeeds = []Seed{
	{Species1: "C.elegans", Protein1: "F09E10.8a", Species2: "S.cerevisiae", Protein2: "YHR114W"},
	{Species1: "C.elegans", Protein1: "K08E3.3a", Species2: "S.cerevisiae", Protein2: "YHR114W"},
}
