package interolog_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ppin/core"
	"github.com/katalvlaran/ppin/interolog"
	"github.com/katalvlaran/ppin/orthology"
)

func ExampleEngine_Find() {
	add := func(n core.Network, a, b string) {
		u, v := core.NewNode(a, n.Species()), core.NewNode(b, n.Species())
		for _, x := range []core.Node{u, v} {
			if !n.ContainsVertex(x) {
				_ = n.AddVertex(x)
			}
		}
		_ = n.AddEdge(u, v)
	}
	worm := core.NewSparseNetwork("testWorm")
	add(worm, "unc-1", "unc-2")
	fly := core.NewSparseNetwork("testFly")
	add(fly, "dmA", "dmB")

	fixtures := orthology.LoaderFunc(func(_ context.Context, s1, s2 string) ([]orthology.Record, error) {
		// s1 = "testFly", s2 = "testWorm"
		return []orthology.Record{
			{Protein1: "dmA", Protein2: "unc-1"},
			{Protein1: "dmB", Protein2: "unc-2"},
		}, nil
	})
	e := interolog.New(orthology.NewStore(orthology.WithFixtures(fixtures, "")))

	res, _ := e.Find(context.Background(), worm, fly)
	for _, edge := range res.Edges() {
		fmt.Println(edge, "->", res.Interologs[edge].Sorted())
	}
	// Output:
	// (unc-1, unc-2) -> [(dmA, dmB)]
}
