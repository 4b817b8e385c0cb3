// Package cursor implements a bidirectional rune cursor over a string.
//
// The cursor decodes the string into runes once at construction and never
// touches the text again; navigation only moves an internal position. Every
// method is safe to call in any state, and walking off either end reports
// ErrOutOfBounds instead of wrapping or panicking.
//
// A Cursor is not safe for concurrent use. The rune sequence itself is
// immutable and freely shared between clones; the position is the only
// mutable cell.
package cursor

import (
	"fmt"

	"github.com/nickrtorres/charstream"
)

// state tracks which zone the position is in. A cursor starts before the
// first rune (unstarted), moves through the valid range (positioned), and
// ends one past the last rune (exhausted).
type state uint8

const (
	unstarted state = iota
	positioned
	exhausted
)

// Cursor is a bidirectional cursor over the runes of a string.
type Cursor struct {
	runes []rune
	pos   int // meaningful only while positioned
	state state
}

var _ charstream.Stream = (*Cursor)(nil)

// New constructs a Cursor over the runes of s. The cursor starts
// unpositioned; the first Next lands on the first rune. An empty string is
// legal and yields a cursor whose first Next fails with ErrOutOfBounds.
func New(s string) *Cursor {
	return &Cursor{runes: []rune(s)}
}

// index returns the position as an offset into the rune sequence: -1 while
// unstarted, len(runes) once exhausted. Reads must never use it directly;
// it exists so the step arithmetic is uniform across all three zones.
func (c *Cursor) index() int {
	switch c.state {
	case unstarted:
		return -1
	case exhausted:
		return len(c.runes)
	}
	return c.pos
}

// Next advances the cursor by one rune and returns the rune now under it.
// At the end of the sequence Next fails with ErrOutOfBounds and the cursor
// becomes exhausted; every further Next fails the same way.
func (c *Cursor) Next() (rune, error) {
	next := c.index() + 1
	if next >= len(c.runes) {
		c.state = exhausted
		return 0, ErrOutOfBounds
	}
	c.state = positioned
	c.pos = next
	return c.runes[next], nil
}

// Prev moves the cursor back by one rune and returns the rune now under it.
// At the first rune, or before the cursor has produced a rune, Prev fails
// with ErrOutOfBounds and the position does not change. From the exhausted
// state a successful Prev lands on the last rune.
func (c *Cursor) Prev() (rune, error) {
	prev := c.index() - 1
	if prev < 0 {
		return 0, ErrOutOfBounds
	}
	c.state = positioned
	c.pos = prev
	return c.runes[prev], nil
}

// Value returns the rune under the cursor without moving it. While the
// cursor is unstarted or exhausted there is no rune under it and Value
// fails with ErrOutOfBounds.
func (c *Cursor) Value() (rune, error) {
	if c.state != positioned {
		return 0, ErrOutOfBounds
	}
	return c.runes[c.pos], nil
}

// Valid reports whether the cursor is positioned on a rune.
func (c *Cursor) Valid() bool {
	return c.state == positioned
}

// AtStart reports whether the cursor has not yet produced a rune.
func (c *Cursor) AtStart() bool {
	return c.state == unstarted
}

// AtEnd reports whether the cursor has stepped past the last rune.
func (c *Cursor) AtEnd() bool {
	return c.state == exhausted
}

// Len returns the number of runes in the sequence.
func (c *Cursor) Len() int {
	return len(c.runes)
}

// Pos returns the offset of the rune under the cursor, -1 while the cursor
// is unstarted and Len() once it is exhausted.
func (c *Cursor) Pos() int {
	return c.index()
}

// Clone creates an independent cursor at the same position. The rune
// sequence is shared; it is immutable, so the clones cannot interfere.
func (c *Cursor) Clone() *Cursor {
	dup := *c
	return &dup
}

// String describes the cursor position for debugging.
func (c *Cursor) String() string {
	switch c.state {
	case unstarted:
		return fmt.Sprintf("Cursor{unstarted, len=%d}", len(c.runes))
	case exhausted:
		return fmt.Sprintf("Cursor{exhausted, len=%d}", len(c.runes))
	}
	return fmt.Sprintf("Cursor{%d/%d %q}", c.pos, len(c.runes), c.runes[c.pos])
}
