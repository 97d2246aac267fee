// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Backend-independent helpers built only on the Network interface.
// Policy:
//   - No backend internals here; everything goes through Network methods.
//   - Output is deterministic (sorted) wherever it is enumerated.

package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Names returns the set of names of nodes.
// Complexity: O(len(nodes)).
func Names(nodes []Node) map[string]struct{} {
	out := make(map[string]struct{}, len(nodes))
	for _, v := range nodes {
		out[v.Name] = struct{}{}
	}

	return out
}

// VertexNames returns the set of names of every vertex of n.
// Complexity: O(V log V), dominated by Vertices().
func VertexNames(n Network) map[string]struct{} {
	return Names(n.Vertices())
}

// Copy fills the empty network dst with every vertex and edge of src and
// copies its metadata. It is the explicit way to move a network between
// backends (e.g. SparseNetwork -> matrix.DenseNetwork).
//
// Errors:
//   - ErrBackendNotEmpty if dst already holds vertices.
//   - Any error returned by dst while inserting.
//
// Complexity: O(V + E) backend operations.
func Copy(dst, src Network) error {
	if dst.VertexCount() != 0 {
		return ErrBackendNotEmpty
	}
	vertices := src.Vertices()
	for _, v := range vertices {
		if err := dst.AddVertex(v); err != nil {
			return fmt.Errorf("core.Copy: %w", err)
		}
	}
	for _, u := range vertices {
		nbrs, err := src.Adjacent(u)
		if err != nil {
			return fmt.Errorf("core.Copy: %w", err)
		}
		for _, v := range nbrs {
			// AddEdge is idempotent; add from the smaller endpoint only.
			if u.Compare(v) > 0 {
				continue
			}
			if err = dst.AddEdge(u, v); err != nil {
				return fmt.Errorf("core.Copy: %w", err)
			}
		}
	}
	dst.SetComment(src.Comment())
	dst.SetName(src.Name())
	dst.SetSpecies(src.Species())

	return nil
}

// WriteNetwork writes n in its deterministic text form: the comment header
// (terminated by a newline), then one "nameA\tnameB" line per edge with A
// sorting before or equal to B, in sorted order. Self-loops are included.
//
// The output can be read back with tsv.ReadNetwork.
func WriteNetwork(w io.Writer, n Network) error {
	bw := bufio.NewWriter(w)
	comment := n.Comment()
	bw.WriteString(comment)
	if !strings.HasSuffix(comment, "\n") {
		bw.WriteString("\n")
	}
	for _, e := range n.Edges() {
		bw.WriteString(e.First)
		bw.WriteByte('\t')
		bw.WriteString(e.Second)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
