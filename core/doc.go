// Package core provides the graph vocabulary of the interolog engine: the
// Node vertex key, the Pair edge key, the Network contract and the sparse
// (adjacency-set) backend SparseNetwork.
//
// A Network is an undirected graph over Node values. Two backends implement
// it and must be observationally identical:
//
//   - core.SparseNetwork: map of neighbour sets, O(1) lookups, O(E) edge sweep.
//   - matrix.DenseNetwork: boolean adjacency matrix with index compaction.
//
// The caller picks the backend at construction time; nothing in this module
// re-wraps a network into another backend behind the caller's back. Use Copy
// to convert explicitly.
//
// Contract:
//
//	// Vertex lifecycle
//	AddVertex(v Node) error       // ErrDuplicateVertex
//	ContainsVertex(v Node) bool
//	RemoveVertex(v Node) error    // ErrUnknownVertex; drops incident edges
//
//	// Edge lifecycle
//	AddEdge(u, v Node) error      // ErrUnknownVertex; idempotent
//	RemoveEdge(u, v Node) error   // ErrNoSuchEdge
//	AreAdjacent(u, v Node) bool
//
//	// Queries (sorted output)
//	Adjacent(v Node) ([]Node, error)
//	Degree(v Node) (int, error)   // self-loop counted once
//	Vertices() []Node
//	Edges() []Pair                // each undirected edge exactly once
//	VertexCount(), EdgeCount() int
//
//	Clone() Network               // deep copy, metadata included
//
// Node ordering is (Species, Name). Edges() orders the endpoints of each
// pair by that ordering, so (u,v) and (v,u) never both appear.
//
// Every Network also carries a comment header, a name and a species label
// (see Header). They are metadata only and never affect structure, and
// like the structure they may be read and written concurrently.
//
// WriteNetwork produces the deterministic tab-separated text form used to
// persist networks.
package core
