package cursor

import (
	"github.com/nickrtorres/charstream"
)

// PeekNext advances the cursor exactly like Next, returning the cursor
// itself so the call chains with Value. Despite the name the move is
// committed on success; on failure the cursor is exhausted, exactly as
// after a failed Next.
func (c *Cursor) PeekNext() (charstream.Stream, error) {
	if _, err := c.Next(); err != nil {
		return nil, err
	}
	return c, nil
}

// PeekPrev moves the cursor back exactly like Prev, returning the cursor
// itself so the call chains with Value. The move is committed on success;
// on failure the position does not change, exactly as after a failed Prev.
func (c *Cursor) PeekPrev() (charstream.Stream, error) {
	if _, err := c.Prev(); err != nil {
		return nil, err
	}
	return c, nil
}

// LookAhead returns the rune one step forward without moving the cursor.
// It fails with ErrOutOfBounds when the next step would fall off the end.
func (c *Cursor) LookAhead() (rune, error) {
	next := c.index() + 1
	if next >= len(c.runes) {
		return 0, ErrOutOfBounds
	}
	return c.runes[next], nil
}

// LookBehind returns the rune one step backward without moving the cursor.
// It fails with ErrOutOfBounds when the previous step would fall off the
// front.
func (c *Cursor) LookBehind() (rune, error) {
	prev := c.index() - 1
	if prev < 0 {
		return 0, ErrOutOfBounds
	}
	return c.runes[prev], nil
}

// Runes yields the remaining runes in order with their offsets, advancing
// the cursor as it goes. Iteration commits movement: when it runs to the
// end the cursor is left exhausted, and breaking early leaves the cursor
// on the last rune yielded.
//
//	for i, r := range cursor.Runes {
//	    // process r at offset i
//	}
func (c *Cursor) Runes(yield func(int, rune) bool) {
	for {
		r, err := c.Next()
		if err != nil {
			return
		}
		if !yield(c.pos, r) {
			return
		}
	}
}
