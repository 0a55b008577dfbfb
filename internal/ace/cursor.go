// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ace

// Cursor walks a single XSS double vector, advancing as each block parser
// consumes data. Every read is bounds-checked so a truncated table
// surfaces as a FormatError rather than an index panic.
type Cursor struct {
	table string
	xss   []float64
	pos   int // 0-based index into xss
}

// NewCursor returns a Cursor over xss starting at the given 1-based
// FORTRAN address (as JXS pointers are expressed). addr == 0 means "block
// absent"; callers must check that before constructing a Cursor.
func NewCursor(table string, xss []float64, addr1Based int) *Cursor {
	return &Cursor{table: table, xss: xss, pos: addr1Based - 1}
}

// Pos returns the current 0-based position.
func (c *Cursor) Pos() int { return c.pos }

// Seek moves the cursor to a 1-based address.
func (c *Cursor) Seek(addr1Based int) { c.pos = addr1Based - 1 }

func (c *Cursor) checkBounds(block string, n int) error {
	if c.pos < 0 || c.pos+n > len(c.xss) {
		return &FormatError{Table: c.table, Block: block, Why: "XSS underrun"}
	}
	return nil
}

// ReadDouble reads and advances one double.
func (c *Cursor) ReadDouble(block string) (float64, error) {
	if err := c.checkBounds(block, 1); err != nil {
		return 0, err
	}
	v := c.xss[c.pos]
	c.pos++
	return v, nil
}

// ReadInt reads one double and truncates it to an int, the ACE convention
// for integers stored in the XSS array.
func (c *Cursor) ReadInt(block string) (int, error) {
	v, err := c.ReadDouble(block)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// ReadVec reads n doubles and advances past them.
func (c *Cursor) ReadVec(block string, n int) ([]float64, error) {
	if err := c.checkBounds(block, n); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	copy(out, c.xss[c.pos:c.pos+n])
	c.pos += n
	return out, nil
}

// ReadIntVec reads n doubles and truncates each to an int.
func (c *Cursor) ReadIntVec(block string, n int) ([]int, error) {
	vals, err := c.ReadVec(block, n)
	if err != nil {
		return nil, err
	}
	out := make([]int, n)
	for i, v := range vals {
		out[i] = int(v)
	}
	return out, nil
}
