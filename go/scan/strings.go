/*
 * String Primitive
 *
 * A string is either a quoted span delimited by matching ' or " characters,
 * or a bare word. Quoted spans carry no escape processing, so a delimiter
 * character cannot be represented inside the string it delimits.
 */

package scan

import (
	"github.com/textscan/textscan/go/scanerr"
)

// ParseString parses a quoted string or a bare word and commits the whole
// span, including both delimiters when the string is quoted. The returned
// value excludes the delimiters. End of input before the closing delimiter
// fails with an empty-input error and rolls the cursor back.
func (sc *Scanner) ParseString() (string, error) {
	if err := sc.requireFresh(); err != nil {
		return "", scanerr.Context(err, "could not parse string")
	}
	if err := sc.SkipWhitespace(); err != nil {
		sc.src.ResetPointer()
		return "", scanerr.Context(err, "could not parse string")
	}
	start := sc.src.PointerLoc()
	c, ok, err := sc.src.Next()
	if err != nil {
		sc.src.ResetPointer()
		return "", scanerr.Context(err, "could not parse string")
	}
	if !ok {
		sc.src.ResetPointer()
		return "", scanerr.Context(
			scanerr.Empty("could not parse a string as there are none left in the input"),
			"could not parse string")
	}
	if c.R != '\'' && c.R != '"' {
		// Bare words are valid strings. Roll the lookahead back so the
		// word primitive starts from a fresh cursor.
		sc.src.ResetPointer()
		word, err := sc.ParseWord()
		if err != nil {
			return "", scanerr.Context(err, "could not parse string")
		}
		return word, nil
	}
	delim := c.R
	for {
		c, ok, err := sc.src.Next()
		if err != nil {
			sc.src.ResetPointer()
			return "", scanerr.Context(err, "could not parse string")
		}
		if !ok {
			sc.src.ResetPointer()
			return "", scanerr.Context(
				scanerr.Emptyf("the input ended before the closing %c delimiter", delim),
				"could not parse string")
		}
		if c.R != delim {
			continue
		}
		// Empty string: the closing delimiter immediately follows the
		// opening one, so there is no enclosed range to extract.
		if c.Pos == start+1 {
			if err := sc.src.Consume(c.Pos + 1); err != nil {
				sc.src.ResetPointer()
				return "", scanerr.Context(err, "could not parse string")
			}
			return "", nil
		}
		content, err := sc.src.ReadSubstr(start+1, c.Pos-start-1)
		if err != nil {
			sc.src.ResetPointer()
			return "", scanerr.Context(err, "could not parse string")
		}
		if err := sc.src.Consume(c.Pos + 1); err != nil {
			sc.src.ResetPointer()
			return "", scanerr.Context(err, "could not parse string")
		}
		return content, nil
	}
}
