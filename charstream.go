// Package charstream defines the basic interface for bidirectional
// character iteration over a fixed text buffer.
package charstream

// Stream is a bidirectional cursor over an immutable sequence of runes.
// The stream maintains a current position and can be moved forward or
// backward through the sequence one rune at a time.
//
// A fresh stream is unpositioned: it sits before the first rune and the
// first successful Next lands on it. Stepping past the last rune leaves
// the stream exhausted; stepping before the first rune is refused without
// moving. A stream is not a ring: walking off either end fails with
// ErrOutOfBounds, it never wraps.
//
// Usage:
//
//	for {
//		r, err := stream.Next()
//		if err != nil {
//			break
//		}
//		// process r
//	}
type Stream interface {
	// Next advances the stream to the next rune and returns it.
	// At the end of the sequence Next fails with ErrOutOfBounds and the
	// stream becomes exhausted; once exhausted, every further Next fails
	// the same way.
	Next() (rune, error)

	// Prev moves the stream to the previous rune and returns it.
	// At the first rune, or before the stream has produced a rune, Prev
	// fails with ErrOutOfBounds and the position does not change. From
	// the exhausted state a successful Prev lands on the last rune.
	Prev() (rune, error)

	// PeekNext advances the stream exactly like Next, but returns the
	// stream itself so the call can be chained with Value. The move is
	// committed on success; on failure PeekNext behaves exactly like a
	// failed Next, exhausted state included.
	PeekNext() (Stream, error)

	// PeekPrev moves the stream back exactly like Prev, but returns the
	// stream itself so the call can be chained with Value. The move is
	// committed on success; on failure the position does not change,
	// exactly like a failed Prev.
	PeekPrev() (Stream, error)

	// Value returns the rune at the current position without moving.
	// It fails with ErrOutOfBounds while the stream is unpositioned or
	// exhausted.
	Value() (rune, error)
}
