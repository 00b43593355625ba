/*
 * Literal-Match Primitives
 *
 * Matching differs from parsing in how failure is reported: a literal that
 * is simply not there yields false with the cursor fully restored, not an
 * error. Errors are reserved for exhausted input, misuse and backing-store
 * failures.
 */

package scan

import (
	"github.com/textscan/textscan/go/scanerr"
)

// MatchChar reports whether the next character after optional whitespace
// equals val. On a match the span is committed; on a mismatch the cursor is
// left untouched and no error is returned.
func (sc *Scanner) MatchChar(val rune) (bool, error) {
	label := func(err error) error {
		return scanerr.Context(err, "could not match char '"+string(val)+"'")
	}
	if err := sc.requireFresh(); err != nil {
		return false, label(err)
	}
	if err := sc.SkipWhitespace(); err != nil {
		sc.src.ResetPointer()
		return false, label(err)
	}
	c, ok, err := sc.src.Peek()
	if err != nil {
		sc.src.ResetPointer()
		return false, label(err)
	}
	if !ok {
		sc.src.ResetPointer()
		return false, label(scanerr.Empty("could not match a char as there are none left in the input"))
	}
	if c.R != val {
		sc.src.ResetPointer()
		return false, nil
	}
	if err := sc.src.Consume(c.Pos + 1); err != nil {
		sc.src.ResetPointer()
		return false, label(err)
	}
	return true, nil
}

// MatchStr reports whether the upcoming characters after optional
// whitespace equal val. A full match commits the span; any mismatch rolls
// back and returns false without error. An empty val fails with an
// empty-input error, as does input running out mid-match.
func (sc *Scanner) MatchStr(val string) (bool, error) {
	label := func(err error) error {
		return scanerr.Context(err, "could not match str '"+val+"'")
	}
	if err := sc.requireFresh(); err != nil {
		return false, label(err)
	}
	want := []rune(val)
	if len(want) == 0 {
		return false, label(scanerr.Empty("cannot match an empty string"))
	}
	if err := sc.SkipWhitespace(); err != nil {
		sc.src.ResetPointer()
		return false, label(err)
	}
	for i, r := range want {
		c, ok, err := sc.src.Next()
		if err != nil {
			sc.src.ResetPointer()
			return false, label(err)
		}
		if !ok {
			sc.src.ResetPointer()
			return false, label(scanerr.Empty("the input ended in the middle of the match"))
		}
		if c.R != r {
			sc.src.ResetPointer()
			return false, nil
		}
		if i == len(want)-1 {
			if err := sc.src.Consume(c.Pos + 1); err != nil {
				sc.src.ResetPointer()
				return false, label(err)
			}
		}
	}
	return true, nil
}

// MatchNum reports whether the upcoming characters equal the canonical
// string form of val, as produced by the kind's Format. MatchNum is a free
// function because Go methods cannot carry their own type parameters.
func MatchNum[N any](sc *Scanner, kind NumKind[N], val N) (bool, error) {
	matched, err := sc.MatchStr(kind.Format(val))
	if err != nil {
		return false, scanerr.Context(err, "could not match num "+kind.Format(val))
	}
	return matched, nil
}
