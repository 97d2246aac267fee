// SPDX-License-Identifier: MIT
// Package matrix - DenseNetwork, the boolean-matrix Network backend.
//
// Layout:
//   1) nodes: vertices in index order; index[v] is v's row/column.
//   2) adj: Bits matrix with a power-of-two side (the capacity); only the
//      leading len(nodes) rows/columns are live, the rest stay false.
//   3) degree: parallel slice, degree[i] is the degree of nodes[i]
//      (self-loop counted once).
//
// Removal with index compaction:
//   - When vertex v at index i is removed and i is not the last index, the
//     last vertex is relocated into slot i (row, column, self-loop bit,
//     degree and index entry), then the last row/column is cleared and the
//     vertex list truncated. The matrix never has holes.
//   - Consequently an index is only meaningful until the next mutation.
//     Nothing outside this file may hold a raw index; the API addresses
//     vertices by value only.

package matrix

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/ppin/core"
)

// DenseNetwork is a core.Network backed by a boolean adjacency matrix.
// Adjacency tests and degree lookups are O(1); Adjacent is O(V).
type DenseNetwork struct {
	core.Header

	mu     sync.RWMutex
	nodes  []core.Node       // index order
	index  map[core.Node]int // vertex -> row/column
	adj    *Bits             // capacity × capacity
	degree []int             // len == capacity
	edges  int
}

var _ core.Network = (*DenseNetwork)(nil)

// NewDenseNetwork creates an empty DenseNetwork whose name and species are
// both set to name.
// Complexity: O(capacity²) for the initial matrix.
func NewDenseNetwork(name string, opts ...Option) *DenseNetwork {
	o := gatherOptions(opts...)
	// capacity is a positive power of two by construction, NewBits cannot fail.
	adj, _ := NewBits(o.capacity)

	return &DenseNetwork{
		Header: core.NewHeader(name),
		index:  make(map[core.Node]int, o.capacity),
		adj:    adj,
		degree: make([]int, o.capacity),
	}
}

// Capacity returns the current matrix side length (a power of two).
func (n *DenseNetwork) Capacity() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.adj.Size()
}

// ContainsVertex reports whether v is present. O(1).
func (n *DenseNetwork) ContainsVertex(v core.Node) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.index[v]

	return ok
}

// AddVertex appends v at the next free index, doubling the capacity when
// the matrix is full.
// Returns core.ErrDuplicateVertex if v already exists.
// Complexity: O(1) amortized; O(capacity²) on growth.
func (n *DenseNetwork) AddVertex(v core.Node) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.index[v]; ok {
		return fmt.Errorf("DenseNetwork.AddVertex(%s): %w", v, core.ErrDuplicateVertex)
	}
	if len(n.nodes) >= n.adj.Size() {
		if err := n.grow(); err != nil {
			return err
		}
	}
	n.index[v] = len(n.nodes)
	n.nodes = append(n.nodes, v)

	return nil
}

// grow doubles the matrix and degree capacity, keeping every cell in place.
func (n *DenseNetwork) grow() error {
	size := n.adj.Size() * 2
	adj, err := n.adj.Grown(size)
	if err != nil {
		return fmt.Errorf("DenseNetwork.grow(%d): %w", size, err)
	}
	degree := make([]int, size)
	copy(degree, n.degree)
	n.adj = adj
	n.degree = degree

	return nil
}

// RemoveVertex deletes v and its incident edges, compacting the index space
// by moving the last vertex into v's slot.
// Returns core.ErrUnknownVertex if v is absent.
// Complexity: O(V).
func (n *DenseNetwork) RemoveVertex(v core.Node) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	idx, ok := n.index[v]
	if !ok {
		return fmt.Errorf("DenseNetwork.RemoveVertex(%s): %w", v, core.ErrUnknownVertex)
	}
	count := len(n.nodes)
	last := count - 1

	// Stage 1: detach v. Every neighbour loses one degree; v's own degree is
	// exactly the number of edges that disappear (its self-loop included once).
	n.edges -= n.degree[idx]
	for i := 0; i < count; i++ {
		if i != idx && n.adj.get(i, idx) {
			n.degree[i]--
		}
	}

	// Stage 2: relocate the last vertex into the freed slot.
	if idx != last {
		moved := n.nodes[last]
		for j := 0; j < count; j++ {
			n.adj.put(idx, j, n.adj.get(last, j))
		}
		for i := 0; i < count; i++ {
			n.adj.put(i, idx, n.adj.get(i, last))
		}
		n.adj.put(idx, idx, n.adj.get(last, last))
		n.degree[idx] = n.degree[last]
		n.index[moved] = idx
		n.nodes[idx] = moved
	}

	// Stage 3: clear the vacated last row/column and truncate.
	for i := 0; i < count; i++ {
		n.adj.put(last, i, false)
		n.adj.put(i, last, false)
	}
	n.degree[last] = 0
	n.nodes[last] = core.Node{}
	n.nodes = n.nodes[:last]
	delete(n.index, v)

	return nil
}

// AddEdge sets both symmetric cells; an existing edge is a no-op.
// Returns core.ErrUnknownVertex if either endpoint is absent.
// Complexity: O(1).
func (n *DenseNetwork) AddEdge(u, v core.Node) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	i, okU := n.index[u]
	j, okV := n.index[v]
	if !okU || !okV {
		return fmt.Errorf("DenseNetwork.AddEdge(%s, %s): %w", u, v, core.ErrUnknownVertex)
	}
	if n.adj.get(i, j) {
		return nil
	}
	n.adj.put(i, j, true)
	n.adj.put(j, i, true)
	n.degree[i]++
	if i != j {
		n.degree[j]++
	}
	n.edges++

	return nil
}

// RemoveEdge clears both symmetric cells.
// Returns core.ErrNoSuchEdge if either endpoint is absent or they are not connected.
// Complexity: O(1).
func (n *DenseNetwork) RemoveEdge(u, v core.Node) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	i, okU := n.index[u]
	j, okV := n.index[v]
	if !okU || !okV || !n.adj.get(i, j) {
		return fmt.Errorf("DenseNetwork.RemoveEdge(%s, %s): %w", u, v, core.ErrNoSuchEdge)
	}
	n.adj.put(i, j, false)
	n.adj.put(j, i, false)
	n.degree[i]--
	if i != j {
		n.degree[j]--
	}
	n.edges--

	return nil
}

// Adjacent scans v's row and returns its neighbours sorted by Node ordering.
// Returns core.ErrUnknownVertex if v is absent.
// Complexity: O(V + d log d).
func (n *DenseNetwork) Adjacent(v core.Node) ([]core.Node, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	i, ok := n.index[v]
	if !ok {
		return nil, fmt.Errorf("DenseNetwork.Adjacent(%s): %w", v, core.ErrUnknownVertex)
	}
	out := make([]core.Node, 0, n.degree[i])
	for j := range n.nodes {
		if n.adj.get(i, j) {
			out = append(out, n.nodes[j])
		}
	}
	slices.SortFunc(out, core.Node.Compare)

	return out, nil
}

// Degree returns the stored degree of v. O(1).
func (n *DenseNetwork) Degree(v core.Node) (int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	i, ok := n.index[v]
	if !ok {
		return 0, fmt.Errorf("DenseNetwork.Degree(%s): %w", v, core.ErrUnknownVertex)
	}

	return n.degree[i], nil
}

// AreAdjacent reports whether u and v are connected; false if either is absent. O(1).
func (n *DenseNetwork) AreAdjacent(u, v core.Node) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	i, okU := n.index[u]
	j, okV := n.index[v]

	return okU && okV && n.adj.get(i, j)
}

// VertexCount returns the number of vertices. O(1).
func (n *DenseNetwork) VertexCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.nodes)
}

// EdgeCount returns the number of undirected edges. O(1).
func (n *DenseNetwork) EdgeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.edges
}

// Vertices returns all vertices sorted by Node ordering (not index order).
// Complexity: O(V log V).
func (n *DenseNetwork) Vertices() []core.Node {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]core.Node, 0, len(n.nodes))
	out = append(out, n.nodes...)
	slices.SortFunc(out, core.Node.Compare)

	return out
}

// Edges sweeps the upper triangle (diagonal included) and returns each edge
// once with endpoints ordered by Node ordering. The result is sorted.
// Complexity: O(V² + E log E).
func (n *DenseNetwork) Edges() []core.Pair {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]core.Pair, 0, n.edges)
	for i := range n.nodes {
		for j := i; j < len(n.nodes); j++ {
			if !n.adj.get(i, j) {
				continue
			}
			a, b := n.nodes[i], n.nodes[j]
			if a.Compare(b) > 0 {
				a, b = b, a
			}
			out = append(out, core.Pair{First: a.Name, Second: b.Name})
		}
	}
	slices.SortFunc(out, core.Pair.Compare)

	return out
}

// Clone returns a deep copy: index table, matrix, degrees and metadata.
// Complexity: O(capacity²).
func (n *DenseNetwork) Clone() core.Network {
	n.mu.RLock()
	defer n.mu.RUnlock()

	index := make(map[core.Node]int, len(n.index))
	for v, i := range n.index {
		index[v] = i
	}

	return &DenseNetwork{
		Header: n.CloneHeader(),
		nodes:  slices.Clone(n.nodes),
		index:  index,
		adj:    n.adj.Clone(),
		degree: slices.Clone(n.degree),
		edges:  n.edges,
	}
}
