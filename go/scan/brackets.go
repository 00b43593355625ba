/*
 * Bracketed-Span Primitive
 *
 * A bracketed span opens with one of ( [ { < and runs to the matching
 * closing character. Nesting of the same bracket kind is tracked with a
 * depth counter, so the span ends at the closer that balances the opener
 * rather than at the first closer seen.
 */

package scan

import (
	"github.com/textscan/textscan/go/scanerr"
)

// bracketPairs maps each opening bracket to its closing counterpart.
var bracketPairs = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
	'<': '>',
}

// ParseBrackets parses a bracketed span and commits it, outer pair
// included. The returned value is the enclosed content without the outer
// pair. A non-bracket first character fails with an unexpected-character
// error; end of input before the balancing closer fails with an empty-input
// error. Both failures roll the cursor back.
func (sc *Scanner) ParseBrackets() (string, error) {
	if err := sc.requireFresh(); err != nil {
		return "", scanerr.Context(err, "could not parse brackets")
	}
	if err := sc.SkipWhitespace(); err != nil {
		sc.src.ResetPointer()
		return "", scanerr.Context(err, "could not parse brackets")
	}
	start := sc.src.PointerLoc()
	c, ok, err := sc.src.Next()
	if err != nil {
		sc.src.ResetPointer()
		return "", scanerr.Context(err, "could not parse brackets")
	}
	if !ok {
		sc.src.ResetPointer()
		return "", scanerr.Context(
			scanerr.Empty("could not parse brackets as there are none left in the input"),
			"could not parse brackets")
	}
	opener := c.R
	closer, isBracket := bracketPairs[opener]
	if !isBracket {
		sc.src.ResetPointer()
		return "", scanerr.Context(
			scanerr.Unexpectedf("'%c' was found instead of an opening bracket (one of (, [, { or <)", opener),
			"could not parse brackets")
	}
	level := 1
	for {
		c, ok, err := sc.src.Next()
		if err != nil {
			sc.src.ResetPointer()
			return "", scanerr.Context(err, "could not parse brackets")
		}
		if !ok {
			sc.src.ResetPointer()
			return "", scanerr.Context(
				scanerr.Emptyf("the input ended before the closing '%c' was found", closer),
				"could not parse brackets")
		}
		switch c.R {
		case opener:
			level++
		case closer:
			level--
			if level > 0 {
				continue
			}
			content, err := sc.src.ReadSubstr(start+1, c.Pos-start-1)
			if err != nil {
				sc.src.ResetPointer()
				return "", scanerr.Context(err, "could not parse brackets")
			}
			if err := sc.src.Consume(c.Pos + 1); err != nil {
				sc.src.ResetPointer()
				return "", scanerr.Context(err, "could not parse brackets")
			}
			return content, nil
		}
	}
}
