// Package layout tracks horizontal placement while a focus tree is composed.
package layout

// Cursor is the "next free column" of one tree. Reserve and Advance only
// move it forward. Set is an absolute reposition and may move it anywhere.
// A Cursor is not safe for concurrent use: each tree owns its own.
type Cursor struct {
	next int
}

// NewCursor returns a cursor starting at column start.
func NewCursor(start int) *Cursor {
	return &Cursor{next: start}
}

// Next returns the current free column without moving the cursor.
func (c *Cursor) Next() int {
	return c.next
}

// Reserve returns the current free column and advances the cursor by n.
func (c *Cursor) Reserve(n int) int {
	first := c.next
	c.next += n
	return first
}

// Advance moves the cursor n columns to the right.
func (c *Cursor) Advance(n int) {
	c.next += n
}

// Set places the cursor at an absolute column, behind the current one
// included. It is used after the generic tree, whose width is computed rather
// than accumulated, and when a tree is copied.
func (c *Cursor) Set(column int) {
	c.next = column
}
