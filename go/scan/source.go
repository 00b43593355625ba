/*
 * Scan Source Interface
 *
 * This file defines the cursor capability set that any backing store must
 * provide: positioned lookahead, advance, commit, rollback and substring
 * extraction. The scanning primitives are written purely against this
 * interface; StrSource in this package is the in-memory reference
 * implementation.
 */

package scan

// Char is a single input character together with its lookahead position.
// Positions are relative to the last committed position, so the first
// character a fresh operation sees is at position 0.
type Char struct {
	Pos int
	R   rune
}

// Source is the read head over an input character sequence.
//
// The cursor keeps two positions: the committed position, which is durable,
// and a lookahead offset that Next advances and that Consume or
// ResetPointer resolves. Peek and ResetPointer are pure with respect to the
// committed position; Next and Consume are the only operations with an
// observable effect on it.
//
// Errors returned by Peek and Next are reserved for backing-store failures
// (for example a failed read); running out of input is reported through the
// ok result instead.
type Source interface {
	// Peek returns the next character without advancing the lookahead
	// offset. ok is false at end of input.
	Peek() (c Char, ok bool, err error)

	// Next returns the next character and advances the lookahead offset
	// past it. ok is false at end of input.
	Next() (c Char, ok bool, err error)

	// ReadSubstr materializes a contiguous range of characters already
	// passed over by lookahead. start is relative to the committed
	// position. An invalid range fails.
	ReadSubstr(start, length int) (string, error)

	// PointerLoc returns the current lookahead offset relative to the
	// committed position.
	PointerLoc() int

	// Consume commits the first n lookahead characters and collapses the
	// lookahead offset back to zero, so subsequent operations see position
	// 0 as just past the consumed data.
	Consume(n int) error

	// ResetPointer discards all uncommitted lookahead, restoring the
	// cursor to the committed position with no observable effect on the
	// backing sequence.
	ResetPointer()
}
