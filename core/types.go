// SPDX-License-Identifier: MIT
// Package core defines the Node, Pair and Network types shared by every
// network backend, plus the sentinel errors of the network contract.
//
// Errors:
//
//	ErrDuplicateVertex  - vertex already present in the network.
//	ErrUnknownVertex    - requested vertex does not exist.
//	ErrNoSuchEdge       - the two vertices are not connected (or one is absent).
//	ErrBackendNotEmpty  - Copy destination already holds vertices.
package core

import (
	"cmp"
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for network operations.
var (
	// ErrDuplicateVertex indicates AddVertex was called with a vertex that already exists.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrUnknownVertex indicates an operation referenced a vertex absent from the network.
	ErrUnknownVertex = errors.New("core: vertex not found")

	// ErrNoSuchEdge indicates RemoveEdge was called on a pair that is not connected.
	ErrNoSuchEdge = errors.New("core: edge not found")

	// ErrBackendNotEmpty indicates Copy was asked to fill a network that already has vertices.
	ErrBackendNotEmpty = errors.New("core: destination network is not empty")
)

// Node identifies a protein by (Name, Species).
//
// Node is a value type: two Nodes are equal iff both fields match, so it can be
// used directly as a map key. Ordering compares Species first, then Name.
type Node struct {
	// Name is the protein name (network vertex label).
	Name string

	// Species is the species the protein belongs to, e.g. "H.sapiens".
	Species string
}

// NewNode returns the Node for name within species.
func NewNode(name, species string) Node {
	return Node{Name: name, Species: species}
}

// Compare orders n against o by species, then by name.
// It returns -1, 0 or +1 in the manner of cmp.Compare.
func (n Node) Compare(o Node) int {
	if c := cmp.Compare(n.Species, o.Species); c != 0 {
		return c
	}

	return cmp.Compare(n.Name, o.Name)
}

// Less reports whether n sorts strictly before o.
func (n Node) Less(o Node) bool { return n.Compare(o) < 0 }

// String renders the node as "Species <species>: <name>".
func (n Node) String() string {
	return fmt.Sprintf("Species %s: %s", n.Species, n.Name)
}

// Header holds the non-structural metadata of a network: the free-text
// comment/provenance header and the name and species labels.
//
// The accessors are safe for concurrent use. A Header shares its state with
// its copies, so backends use CloneHeader when cloning. Build headers with
// NewHeader; the zero Header is not usable.
type Header struct {
	meta *headerMeta
}

type headerMeta struct {
	mu      sync.RWMutex
	comment string
	name    string
	species string
}

// NewHeader returns a Header whose name and species are both set to name,
// mirroring how networks are labelled by the species they describe.
func NewHeader(name string) Header {
	return Header{meta: &headerMeta{name: name, species: name}}
}

// CloneHeader returns an independent Header with the same metadata.
func (h *Header) CloneHeader() Header {
	h.meta.mu.RLock()
	defer h.meta.mu.RUnlock()

	return Header{meta: &headerMeta{comment: h.meta.comment, name: h.meta.name, species: h.meta.species}}
}

// Comment returns the comment header.
func (h *Header) Comment() string {
	h.meta.mu.RLock()
	defer h.meta.mu.RUnlock()

	return h.meta.comment
}

// SetComment replaces the comment header.
func (h *Header) SetComment(comment string) {
	h.meta.mu.Lock()
	h.meta.comment = comment
	h.meta.mu.Unlock()
}

// AppendComment adds text to the end of the comment header in one step.
func (h *Header) AppendComment(text string) {
	h.meta.mu.Lock()
	h.meta.comment += text
	h.meta.mu.Unlock()
}

// Name returns the network name.
func (h *Header) Name() string {
	h.meta.mu.RLock()
	defer h.meta.mu.RUnlock()

	return h.meta.name
}

// SetName replaces the network name.
func (h *Header) SetName(name string) {
	h.meta.mu.Lock()
	h.meta.name = name
	h.meta.mu.Unlock()
}

// Species returns the species label used for name-only lookups.
func (h *Header) Species() string {
	h.meta.mu.RLock()
	defer h.meta.mu.RUnlock()

	return h.meta.species
}

// SetSpecies replaces the species label.
func (h *Header) SetSpecies(species string) {
	h.meta.mu.Lock()
	h.meta.species = species
	h.meta.mu.Unlock()
}

// Network is the undirected graph contract shared by SparseNetwork and
// matrix.DenseNetwork. Both backends must give identical answers for the same
// sequence of calls.
//
// Invariants:
//   - A vertex is added at most once (ErrDuplicateVertex otherwise).
//   - Edges are symmetric: AddEdge(u, v) makes v adjacent to u and u to v.
//   - A self-loop counts once toward Degree.
//   - RemoveVertex drops every incident edge.
//   - Edge operations on absent vertices fail.
//
// Enumerations (Vertices, Adjacent, Edges) are sorted for determinism.
type Network interface {
	// ContainsVertex reports whether v is a vertex of the network.
	ContainsVertex(v Node) bool
	// AddVertex inserts v; ErrDuplicateVertex if already present.
	AddVertex(v Node) error
	// RemoveVertex deletes v and all incident edges; ErrUnknownVertex if absent.
	RemoveVertex(v Node) error
	// AddEdge connects u and v; idempotent; ErrUnknownVertex if either is absent.
	AddEdge(u, v Node) error
	// RemoveEdge disconnects u and v; ErrNoSuchEdge if they are not connected.
	RemoveEdge(u, v Node) error
	// Adjacent returns the neighbours of v sorted by Node ordering.
	Adjacent(v Node) ([]Node, error)
	// Degree returns the number of incident edges of v, a self-loop counted once.
	Degree(v Node) (int, error)
	// AreAdjacent reports whether u and v are connected; false if either is absent.
	AreAdjacent(u, v Node) bool
	// VertexCount returns the number of vertices.
	VertexCount() int
	// EdgeCount returns the number of undirected edges.
	EdgeCount() int
	// Vertices returns all vertices sorted by Node ordering.
	Vertices() []Node
	// Edges returns every undirected edge exactly once as a Pair of names
	// ordered by Node ordering; the slice is sorted.
	Edges() []Pair
	// Clone returns a deep, unlinked copy including metadata.
	Clone() Network

	Comment() string
	SetComment(comment string)
	AppendComment(text string)
	Name() string
	SetName(name string)
	Species() string
	SetSpecies(species string)
}
