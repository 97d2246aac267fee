// Package matrix provides the dense Network backend.
//
// DenseNetwork stores a network as a square boolean adjacency matrix (Bits)
// plus a vertex index table and a per-vertex degree slice:
//
//   - AreAdjacent and Degree are O(1).
//   - Adjacent is a row scan, O(V).
//   - Memory is O(capacity²); capacity is a power of two that doubles when
//     the matrix fills up (WithCapacity sets the starting size).
//
// Removing a vertex compacts the index space: the vertex with the highest
// index moves into the freed slot, so live vertices always occupy the
// leading rows and columns. Indices are internal and never escape the API.
//
// DenseNetwork satisfies core.Network and answers every query exactly like
// core.SparseNetwork. Prefer it for small, dense networks where constant-time
// adjacency matters more than memory.
package matrix
