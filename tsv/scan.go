// SPDX-License-Identifier: MIT

package tsv

import (
	"bufio"
	"io"
	"strings"
)

// maxLine bounds a single input line; some identifier tables are wide.
const maxLine = 1 << 20

// lines wraps a bufio.Scanner with line numbering and '\r' stripping.
type lines struct {
	sc   *bufio.Scanner
	line string
	n    int
}

func newLines(r io.Reader) *lines {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	return &lines{sc: sc}
}

func (l *lines) next() bool {
	if !l.sc.Scan() {
		return false
	}
	l.n++
	l.line = strings.TrimSuffix(l.sc.Text(), "\r")

	return true
}

func (l *lines) err() error { return l.sc.Err() }

func isBlank(line string) bool   { return strings.TrimSpace(line) == "" }
func isComment(line string) bool { return strings.HasPrefix(line, "!") }
