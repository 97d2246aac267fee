// SPDX-License-Identifier: MIT

package tsv

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/ppin/core"
)

// ReadNetwork fills nw from an adjacency list.
//
// Format:
//   - Leading '!' lines (blank lines may precede them) form the comment
//     header; each is kept with a trailing newline.
//   - Every other non-blank, non-comment line is "nameA\tnameB": both names
//     become vertices of species and the pair becomes an edge. Extra columns
//     only add vertices, and a single column adds a lone vertex.
//
// Repeated vertices and edges are tolerated, so nw may already hold data.
func ReadNetwork(r io.Reader, species string, nw core.Network) error {
	in := newLines(r)
	var header strings.Builder
	inHeader := true

	for in.next() {
		line := in.line
		if isBlank(line) {
			continue
		}
		if isComment(line) {
			if inHeader {
				header.WriteString(line)
				header.WriteByte('\n')
			}
			continue
		}
		inHeader = false

		fields := strings.Split(line, "\t")
		nodes := make([]core.Node, 0, len(fields))
		for _, f := range fields {
			if f = strings.TrimSpace(f); f == "" {
				continue
			}
			v := core.NewNode(f, species)
			if !nw.ContainsVertex(v) {
				if err := nw.AddVertex(v); err != nil {
					return fmt.Errorf("tsv.ReadNetwork: line %d: %w", in.n, err)
				}
			}
			nodes = append(nodes, v)
		}
		if len(nodes) >= 2 {
			if err := nw.AddEdge(nodes[0], nodes[1]); err != nil {
				return fmt.Errorf("tsv.ReadNetwork: line %d: %w", in.n, err)
			}
		}
	}
	if err := in.err(); err != nil {
		return fmt.Errorf("tsv.ReadNetwork: line %d: %w", in.n+1, err)
	}
	if header.Len() > 0 {
		nw.AppendComment(header.String())
	}

	return nil
}

// ReadNetworkFile opens path and reads it with ReadNetwork.
func ReadNetworkFile(path, species string, nw core.Network) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("tsv.ReadNetworkFile: %w", err)
	}
	defer f.Close()

	if err = ReadNetwork(f, species, nw); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
