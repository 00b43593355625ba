/*
 * In-Memory String Source
 *
 * Reference Source implementation over an in-memory string. Positions are
 * rune positions, not byte offsets, so multi-byte input behaves the same as
 * ASCII. Peek and Next never fail; only invalid ranges handed to ReadSubstr
 * and Consume produce errors.
 */

package scan

import (
	"github.com/textscan/textscan/go/scanerr"
)

// StrSource reads characters from an in-memory string.
type StrSource struct {
	runes     []rune
	committed int // absolute rune index of the committed position
	ptr       int // lookahead offset relative to committed
}

// NewStrSource returns a source positioned at the start of input.
func NewStrSource(input string) *StrSource {
	return &StrSource{runes: []rune(input)}
}

// Peek returns the next character without advancing the lookahead offset.
func (s *StrSource) Peek() (Char, bool, error) {
	if s.committed+s.ptr >= len(s.runes) {
		return Char{}, false, nil
	}
	return Char{Pos: s.ptr, R: s.runes[s.committed+s.ptr]}, true, nil
}

// Next returns the next character and advances the lookahead offset.
func (s *StrSource) Next() (Char, bool, error) {
	c, ok, err := s.Peek()
	if err != nil || !ok {
		return c, ok, err
	}
	s.ptr++
	return c, true, nil
}

// ReadSubstr materializes a range already covered by lookahead. start is
// relative to the committed position.
func (s *StrSource) ReadSubstr(start, length int) (string, error) {
	if start < 0 || length < 0 || start+length > s.ptr {
		return "", scanerr.Newf(
			"substring range [%d, %d) is outside the scanned region of %d characters",
			start, start+length, s.ptr)
	}
	lo := s.committed + start
	return string(s.runes[lo : lo+length]), nil
}

// PointerLoc returns the lookahead offset relative to the committed position.
func (s *StrSource) PointerLoc() int {
	return s.ptr
}

// Consume commits the first n lookahead characters and collapses the
// lookahead offset to zero.
func (s *StrSource) Consume(n int) error {
	if n < 0 || s.committed+n > len(s.runes) {
		return scanerr.Newf(
			"cannot consume %d characters, only %d remain in the input",
			n, len(s.runes)-s.committed)
	}
	s.committed += n
	s.ptr = 0
	return nil
}

// ResetPointer discards all uncommitted lookahead.
func (s *StrSource) ResetPointer() {
	s.ptr = 0
}

// Committed returns the absolute rune index of the committed position. It is
// not part of the Source contract; tests use it to verify commit and
// rollback behavior.
func (s *StrSource) Committed() int {
	return s.committed
}
