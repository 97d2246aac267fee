// SPDX-License-Identifier: MIT
// File: dense.go
// Role: Bits, the square row-major boolean matrix under DenseNetwork.
// Storage is a single flat slice; (row, col) lives at row*n + col.

package matrix

import (
	"fmt"
	"strings"
)

// bitsErrorf wraps an underlying error with Bits method context.
func bitsErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Bits.%s(%d,%d): %w", method, row, col, err)
}

// Bits is an n×n boolean matrix.
// n is the side length (stride) and data holds n*n cells in row-major order.
type Bits struct {
	n    int
	data []bool
}

// NewBits creates an n×n matrix with every cell false.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(n²) time and memory.
func NewBits(n int) (*Bits, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}

	return &Bits{n: n, data: make([]bool, n*n)}, nil
}

// Size returns the side length of the matrix.
// Complexity: O(1).
func (m *Bits) Size() int { return m.n }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Bits) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, bitsErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the cell at (row, col).
// Complexity: O(1).
func (m *Bits) At(row, col int) (bool, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return false, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Bits) Set(row, col int, v bool) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// get and put are the unchecked accessors used by DenseNetwork, whose index
// table guarantees bounds.
func (m *Bits) get(row, col int) bool    { return m.data[row*m.n+col] }
func (m *Bits) put(row, col int, v bool) { m.data[row*m.n+col] = v }

// Grown returns a copy of m with side length size (size >= m.n); the
// original cells keep their coordinates and the new cells are false.
// Complexity: O(size²).
func (m *Bits) Grown(size int) (*Bits, error) {
	if size < m.n {
		return nil, fmt.Errorf("Bits.Grown(%d): %w", size, ErrBadShape)
	}
	out, err := NewBits(size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.n; i++ {
		copy(out.data[i*size:i*size+m.n], m.data[i*m.n:(i+1)*m.n])
	}

	return out, nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²).
func (m *Bits) Clone() *Bits {
	data := make([]bool, len(m.data))
	copy(data, m.data)

	return &Bits{n: m.n, data: data}
}

// String renders the matrix as rows of 0/1 for debugging.
func (m *Bits) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if m.get(i, j) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
