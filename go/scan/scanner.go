/*
 * Scanner Core
 *
 * The Scanner wraps a Source and exposes the lexical primitives. Every
 * primitive follows the same discipline: on success the consumed span is
 * fully committed, on failure the cursor is fully restored to its entry
 * position. Partial consumption never leaks between operations.
 */

package scan

import (
	"unicode"

	"github.com/textscan/textscan/go/scanerr"
)

// Scanner runs lexical primitives over a Source.
//
// A scanner is a single mutable resource owned by one caller at a time; it
// is not safe for concurrent use. Operations named Parse or Match require
// the cursor to be fresh (zero pending lookahead) on entry and commit what
// they consume. Operations named Read or Skip advance lookahead without
// committing, so a caller can fold them into a larger commit.
type Scanner struct {
	src Source
}

// New returns a scanner over the given source.
func New(src Source) *Scanner {
	return &Scanner{src: src}
}

// NewString returns a scanner over an in-memory string.
func NewString(input string) *Scanner {
	return New(NewStrSource(input))
}

// Source returns the underlying source.
func (sc *Scanner) Source() Source {
	return sc.src
}

// requireFresh verifies the zero-lookahead precondition shared by all
// committing primitives. A violation is a caller error, reported as a
// generic failure rather than a panic so callers can detect misuse.
func (sc *Scanner) requireFresh() error {
	if loc := sc.src.PointerLoc(); loc != 0 {
		return scanerr.Newf(
			"the scanner has pending lookahead at position %d (expected 0), a previous operation did not commit or roll back",
			loc)
	}
	return nil
}

// SkipWhitespace advances lookahead past a maximal run of whitespace
// characters, leaving the skip uncommitted. Most primitives call this
// internally and fold the skip into their own commit.
func (sc *Scanner) SkipWhitespace() error {
	for {
		c, ok, err := sc.src.Peek()
		if err != nil {
			return scanerr.Context(err, "could not skip whitespace")
		}
		if !ok || !unicode.IsSpace(c.R) {
			return nil
		}
		if _, _, err := sc.src.Next(); err != nil {
			return scanerr.Context(err, "could not skip whitespace")
		}
	}
}

// ConsumeWhitespace skips a maximal run of leading whitespace and commits
// it as an independent step. The run is committed even when it extends to
// the end of the input.
func (sc *Scanner) ConsumeWhitespace() error {
	if err := sc.requireFresh(); err != nil {
		return scanerr.Context(err, "could not consume whitespace")
	}
	if err := sc.SkipWhitespace(); err != nil {
		sc.src.ResetPointer()
		return scanerr.Context(err, "could not consume whitespace")
	}
	if err := sc.src.Consume(sc.src.PointerLoc()); err != nil {
		sc.src.ResetPointer()
		return scanerr.Context(err, "could not consume whitespace")
	}
	return nil
}

// isWordRune reports whether r belongs to a word. Words are maximal runs of
// alphanumeric characters.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
