/*
 * Word and Symbol Primitives
 *
 * A word is a maximal run of alphanumeric characters after optional leading
 * whitespace. A symbol is a single character that is neither whitespace nor
 * alphanumeric. The Read variants advance lookahead only; the Parse
 * variants require a fresh cursor and commit the scanned span.
 */

package scan

import (
	"github.com/textscan/textscan/go/scanerr"
)

// ReadWord scans a word from the current lookahead position, leaving the
// scan uncommitted. Immediate end of input with no characters scanned fails
// with an empty-input error; a zero-length run in front of a
// non-alphanumeric character yields "" without error.
func (sc *Scanner) ReadWord() (string, error) {
	if err := sc.SkipWhitespace(); err != nil {
		return "", scanerr.Context(err, "could not read word")
	}
	start := sc.src.PointerLoc()
	for {
		c, ok, err := sc.src.Peek()
		if err != nil {
			sc.src.ResetPointer()
			return "", scanerr.Context(err, "could not read word")
		}
		if !ok {
			if sc.src.PointerLoc() == start {
				sc.src.ResetPointer()
				return "", scanerr.Context(
					scanerr.Empty("could not read a word as there are none left in the input"),
					"could not read word")
			}
			break
		}
		if !isWordRune(c.R) {
			break
		}
		if _, _, err := sc.src.Next(); err != nil {
			sc.src.ResetPointer()
			return "", scanerr.Context(err, "could not read word")
		}
	}
	word, err := sc.src.ReadSubstr(start, sc.src.PointerLoc()-start)
	if err != nil {
		sc.src.ResetPointer()
		return "", scanerr.Context(err, "could not read word")
	}
	return word, nil
}

// ParseWord reads a word and commits the scanned span, including any
// leading whitespace.
func (sc *Scanner) ParseWord() (string, error) {
	if err := sc.requireFresh(); err != nil {
		return "", scanerr.Context(err, "could not parse word")
	}
	word, err := sc.ReadWord()
	if err != nil {
		return "", scanerr.Context(err, "could not parse word")
	}
	if err := sc.src.Consume(sc.src.PointerLoc()); err != nil {
		sc.src.ResetPointer()
		return "", scanerr.Context(err, "could not parse word")
	}
	return word, nil
}

// ReadSymbol scans a single symbol character, advancing lookahead past it
// without committing. The character after optional whitespace must be
// neither whitespace nor alphanumeric.
func (sc *Scanner) ReadSymbol() (rune, error) {
	if err := sc.SkipWhitespace(); err != nil {
		return 0, scanerr.Context(err, "could not read symbol")
	}
	c, ok, err := sc.src.Peek()
	if err != nil {
		sc.src.ResetPointer()
		return 0, scanerr.Context(err, "could not read symbol")
	}
	if !ok {
		sc.src.ResetPointer()
		return 0, scanerr.Context(
			scanerr.Empty("could not read a symbol as there are none left in the input"),
			"could not read symbol")
	}
	if isWordRune(c.R) {
		sc.src.ResetPointer()
		return 0, scanerr.Context(
			scanerr.Newf("'%c' is not classified as a symbol", c.R),
			"could not read symbol")
	}
	if _, _, err := sc.src.Next(); err != nil {
		sc.src.ResetPointer()
		return 0, scanerr.Context(err, "could not read symbol")
	}
	return c.R, nil
}

// ParseSymbol reads a symbol and commits the scanned span.
func (sc *Scanner) ParseSymbol() (rune, error) {
	if err := sc.requireFresh(); err != nil {
		return 0, scanerr.Context(err, "could not parse symbol")
	}
	sym, err := sc.ReadSymbol()
	if err != nil {
		return 0, scanerr.Context(err, "could not parse symbol")
	}
	if err := sc.src.Consume(sc.src.PointerLoc()); err != nil {
		sc.src.ResetPointer()
		return 0, scanerr.Context(err, "could not parse symbol")
	}
	return sym, nil
}
