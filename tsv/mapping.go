// SPDX-License-Identifier: MIT

package tsv

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/ppin/mapping"
)

// ReadMapping builds a Mapping from columns col1 (keys) and col2 (values)
// of sep-separated rows. Comment lines and rows too short to hold both
// columns are skipped; empty cells are rejected by Mapping.Add.
func ReadMapping(r io.Reader, sep string, col1, col2 int) (*mapping.Mapping, error) {
	if col1 < 0 || col2 < 0 || sep == "" {
		return nil, fmt.Errorf("tsv.ReadMapping(sep=%q, %d, %d): invalid arguments", sep, col1, col2)
	}
	need := max(col1, col2) + 1
	m := mapping.New()
	in := newLines(r)
	for in.next() {
		if isComment(in.line) {
			continue
		}
		fields := strings.Split(in.line, sep)
		if len(fields) < need {
			continue
		}
		m.Add(fields[col1], fields[col2])
	}
	if err := in.err(); err != nil {
		return nil, fmt.Errorf("tsv.ReadMapping: line %d: %w", in.n+1, err)
	}

	return m, nil
}

// ReadMappingFile opens path and reads it with ReadMapping.
func ReadMappingFile(path, sep string, col1, col2 int) (*mapping.Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsv.ReadMappingFile: %w", err)
	}
	defer f.Close()

	m, err := ReadMapping(f, sep, col1, col2)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
