package cursor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPeekNextValue(t *testing.T) {
	c := New("foobar")

	s, err := c.PeekNext()
	require.NoError(t, err)

	r, err := s.Value()
	require.NoError(t, err)
	require.Equal(t, 'f', r)
}

func TestPeekCommits(t *testing.T) {
	c := New("foobar")

	// "Peek" commits the move: two peeks land on the second rune.
	_, err := c.PeekNext()
	require.NoError(t, err)
	s, err := c.PeekNext()
	require.NoError(t, err)

	r, err := s.Value()
	require.NoError(t, err)
	require.Equal(t, 'o', r)

	r, err = c.Value()
	require.NoError(t, err)
	require.Equal(t, 'o', r, "the handle is the cursor itself")
}

func TestPeekRoundTrip(t *testing.T) {
	c := New("foobar")
	c.Next() // 'f'

	before, err := c.Value()
	require.NoError(t, err)

	_, err = c.PeekNext()
	require.NoError(t, err)
	_, err = c.PeekPrev()
	require.NoError(t, err)

	after, err := c.Value()
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestPeekPrevAtFront(t *testing.T) {
	c := New("foobar")
	c.Next() // 'f'

	_, err := c.PeekPrev()
	require.ErrorIs(t, err, ErrOutOfBounds)
	require.Equal(t, 0, c.Pos(), "failed PeekPrev must not move")
}

func TestPeekNextOffEnd(t *testing.T) {
	c := New("foobar")

	for range 6 {
		_, err := c.PeekNext()
		require.NoError(t, err)
	}

	_, err := c.PeekNext()
	require.ErrorIs(t, err, ErrOutOfBounds)
	require.True(t, c.AtEnd())

	_, err = c.Value()
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestLookAhead(t *testing.T) {
	c := New("ab")

	r, err := c.LookAhead()
	require.NoError(t, err)
	require.Equal(t, 'a', r)
	require.True(t, c.AtStart(), "LookAhead must not move")

	c.Next()
	c.Next() // 'b', last rune

	_, err = c.LookAhead()
	require.ErrorIs(t, err, ErrOutOfBounds)
	require.True(t, c.Valid(), "failed LookAhead must not exhaust")
}

func TestLookBehind(t *testing.T) {
	c := New("ab")

	_, err := c.LookBehind()
	require.ErrorIs(t, err, ErrOutOfBounds)

	c.Next()
	c.Next() // 'b'

	r, err := c.LookBehind()
	require.NoError(t, err)
	require.Equal(t, 'a', r)
	require.Equal(t, 1, c.Pos(), "LookBehind must not move")
}

func TestClone(t *testing.T) {
	c := New("foobar")
	c.Next() // 'f'

	dup := c.Clone()

	_, err := c.Next() // 'o'
	require.NoError(t, err)

	r, err := dup.Value()
	require.NoError(t, err)
	require.Equal(t, 'f', r, "clone must not follow the original")

	r, err = dup.Next()
	require.NoError(t, err)
	require.Equal(t, 'o', r)
}

func TestRunes(t *testing.T) {
	c := New("foobar")
	c.Next() // 'f'

	var got []rune
	var offsets []int
	for i, r := range c.Runes {
		offsets = append(offsets, i)
		got = append(got, r)
	}

	require.Equal(t, []rune("oobar"), got)
	require.Equal(t, []int{1, 2, 3, 4, 5}, offsets)
	require.True(t, c.AtEnd(), "a full walk leaves the cursor exhausted")
}

func TestRunesBreak(t *testing.T) {
	c := New("foobar")

	for _, r := range c.Runes {
		if r == 'b' {
			break
		}
	}

	require.Equal(t, 3, c.Pos(), "breaking leaves the cursor on the last rune yielded")

	r, err := c.Next()
	require.NoError(t, err)
	require.Equal(t, 'a', r)
}
