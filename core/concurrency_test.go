// Package core_test verifies thread-safety of SparseNetwork under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/ppin/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls from one hub are
// safe and every neighbour appears.
func TestConcurrentAddEdge(t *testing.T) {
	n := core.NewSparseNetwork(hs)
	const num = 200 // number of concurrent adds
	require.NoError(t, n.AddVertex(hsNode("HUB")))
	for i := 0; i < num; i++ {
		require.NoError(t, n.AddVertex(hsNode(fmt.Sprintf("V%d", i))))
	}

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_ = n.AddEdge(hsNode("HUB"), hsNode(fmt.Sprintf("V%d", id)))
		}(i)
	}
	wg.Wait()

	d, err := n.Degree(hsNode("HUB"))
	require.NoError(t, err)
	require.Equal(t, num, d)
	require.Equal(t, num, n.EdgeCount())
}

// TestConcurrentReadersWriters mixes queries with mutation to surface races under -race.
func TestConcurrentReadersWriters(t *testing.T) {
	n := core.NewSparseNetwork(hs)
	require.NoError(t, n.AddVertex(hsNode("Base")))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			v := hsNode(fmt.Sprintf("V%d", id))
			_ = n.AddVertex(v)
			_ = n.AddEdge(hsNode("Base"), v)
		}(i)
		go func() {
			defer wg.Done()
			_ = n.Edges()
			_, _ = n.Adjacent(hsNode("Base"))
		}()
	}
	wg.Wait()

	require.Equal(t, rounds+1, n.VertexCount())
	require.Equal(t, rounds, n.EdgeCount())
}

// TestConcurrentMetadata appends to the comment while other goroutines read
// the labels; every append must survive.
func TestConcurrentMetadata(t *testing.T) {
	n := core.NewSparseNetwork(hs)
	const num = 100
	var wg sync.WaitGroup
	wg.Add(2 * num)
	for i := 0; i < num; i++ {
		go func() {
			defer wg.Done()
			n.AppendComment("!x\n")
		}()
		go func() {
			defer wg.Done()
			_ = n.Species()
			_ = n.Comment()
			_ = n.Clone()
		}()
	}
	wg.Wait()

	require.Equal(t, 3*num, len(n.Comment()))
	require.Equal(t, hs, n.Name())
}
