// SPDX-License-Identifier: MIT
// File: adjacency_list.go
// Role: SparseNetwork, the adjacency-set backed Network.
//
// Storage:
//   - adjacency[v] is the neighbour set of v; every vertex owns a (possibly
//     empty) set, so membership of v is "v is a key of adjacency".
//   - An undirected edge u-v is stored twice (adjacency[u][v], adjacency[v][u]);
//     a self-loop is stored once (adjacency[v][v]).
//
// Concurrency:
//   - All state is guarded by mu (RWMutex). Readers may run concurrently.
package core

import (
	"fmt"
	"slices"
	"sync"
)

// SparseNetwork is a Network backed by a vertex -> neighbour-set map.
// Containment and adjacency lookups are O(1) average.
type SparseNetwork struct {
	Header

	mu        sync.RWMutex
	adjacency map[Node]map[Node]struct{}
	edges     int
}

var _ Network = (*SparseNetwork)(nil)

// NewSparseNetwork creates an empty SparseNetwork whose name and species are
// both set to name.
// Complexity: O(1).
func NewSparseNetwork(name string) *SparseNetwork {
	return &SparseNetwork{
		Header:    NewHeader(name),
		adjacency: make(map[Node]map[Node]struct{}),
	}
}

// ContainsVertex reports whether v is present.
// Complexity: O(1).
func (n *SparseNetwork) ContainsVertex(v Node) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.adjacency[v]

	return ok
}

// AddVertex inserts v with an empty neighbour set.
// Returns ErrDuplicateVertex if v already exists.
// Complexity: O(1) amortized.
func (n *SparseNetwork) AddVertex(v Node) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.adjacency[v]; ok {
		return fmt.Errorf("SparseNetwork.AddVertex(%s): %w", v, ErrDuplicateVertex)
	}
	n.adjacency[v] = make(map[Node]struct{})

	return nil
}

// RemoveVertex deletes v and every edge incident to it.
// Returns ErrUnknownVertex if v is absent.
// Complexity: O(deg(v)).
func (n *SparseNetwork) RemoveVertex(v Node) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	nbrs, ok := n.adjacency[v]
	if !ok {
		return fmt.Errorf("SparseNetwork.RemoveVertex(%s): %w", v, ErrUnknownVertex)
	}
	// Each neighbour (the vertex itself for a self-loop) accounts for one edge.
	for u := range nbrs {
		if u != v {
			delete(n.adjacency[u], v)
		}
		n.edges--
	}
	delete(n.adjacency, v)

	return nil
}

// AddEdge connects u and v in both directions. Adding an existing edge is a no-op.
// Returns ErrUnknownVertex if either endpoint is absent.
// Complexity: O(1).
func (n *SparseNetwork) AddEdge(u, v Node) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	nu, okU := n.adjacency[u]
	nv, okV := n.adjacency[v]
	if !okU || !okV {
		return fmt.Errorf("SparseNetwork.AddEdge(%s, %s): %w", u, v, ErrUnknownVertex)
	}
	if _, exists := nu[v]; exists {
		return nil
	}
	nu[v] = struct{}{}
	nv[u] = struct{}{}
	n.edges++

	return nil
}

// RemoveEdge disconnects u and v.
// Returns ErrNoSuchEdge if either endpoint is absent or they are not connected.
// Complexity: O(1).
func (n *SparseNetwork) RemoveEdge(u, v Node) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	nu, okU := n.adjacency[u]
	nv, okV := n.adjacency[v]
	if !okU || !okV {
		return fmt.Errorf("SparseNetwork.RemoveEdge(%s, %s): %w", u, v, ErrNoSuchEdge)
	}
	if _, exists := nu[v]; !exists {
		return fmt.Errorf("SparseNetwork.RemoveEdge(%s, %s): %w", u, v, ErrNoSuchEdge)
	}
	delete(nu, v)
	delete(nv, u)
	n.edges--

	return nil
}

// Adjacent returns the neighbours of v, sorted by Node ordering.
// A self-loop makes v its own neighbour.
// Complexity: O(d log d).
func (n *SparseNetwork) Adjacent(v Node) ([]Node, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	nbrs, ok := n.adjacency[v]
	if !ok {
		return nil, fmt.Errorf("SparseNetwork.Adjacent(%s): %w", v, ErrUnknownVertex)
	}
	out := make([]Node, 0, len(nbrs))
	for u := range nbrs {
		out = append(out, u)
	}
	slices.SortFunc(out, Node.Compare)

	return out, nil
}

// Degree returns the size of v's neighbour set, so a self-loop counts once.
// Complexity: O(1).
func (n *SparseNetwork) Degree(v Node) (int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	nbrs, ok := n.adjacency[v]
	if !ok {
		return 0, fmt.Errorf("SparseNetwork.Degree(%s): %w", v, ErrUnknownVertex)
	}

	return len(nbrs), nil
}

// AreAdjacent reports whether u and v are connected.
// Complexity: O(1).
func (n *SparseNetwork) AreAdjacent(u, v Node) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	_, ok := n.adjacency[u][v]

	return ok
}

// VertexCount returns the number of vertices. O(1).
func (n *SparseNetwork) VertexCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.adjacency)
}

// EdgeCount returns the number of undirected edges. O(1).
func (n *SparseNetwork) EdgeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.edges
}

// Vertices returns all vertices sorted by Node ordering.
// Complexity: O(V log V).
func (n *SparseNetwork) Vertices() []Node {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Node, 0, len(n.adjacency))
	for v := range n.adjacency {
		out = append(out, v)
	}
	slices.SortFunc(out, Node.Compare)

	return out
}

// Edges returns every edge once, as a Pair of names with the endpoint that
// sorts first (by Node ordering) in First. The result is sorted.
// Complexity: O(E log E).
func (n *SparseNetwork) Edges() []Pair {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Pair, 0, n.edges)
	for u, nbrs := range n.adjacency {
		for v := range nbrs {
			// Report each undirected edge from its smaller endpoint only.
			if u.Compare(v) <= 0 {
				out = append(out, Pair{First: u.Name, Second: v.Name})
			}
		}
	}
	slices.SortFunc(out, Pair.Compare)

	return out
}

// Clone returns a deep copy: vertices, edges and metadata.
// Complexity: O(V + E).
func (n *SparseNetwork) Clone() Network {
	n.mu.RLock()
	defer n.mu.RUnlock()

	clone := &SparseNetwork{
		Header:    n.CloneHeader(),
		adjacency: make(map[Node]map[Node]struct{}, len(n.adjacency)),
		edges:     n.edges,
	}
	for v, nbrs := range n.adjacency {
		set := make(map[Node]struct{}, len(nbrs))
		for u := range nbrs {
			set[u] = struct{}{}
		}
		clone.adjacency[v] = set
	}

	return clone
}
