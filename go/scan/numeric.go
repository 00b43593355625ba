/*
 * Numeric-Literal Primitive
 *
 * Numeric parsing is driven by a NumKind descriptor: a flag selecting the
 * floating-point grammar plus the target type's own string conversion. The
 * scanner only delimits the span; overflow, rounding and final validity are
 * entirely the conversion's business.
 *
 * The accepted shape is
 *
 *   Float  ::= Sign? ( 'inf' | 'infinity' | 'nan' | Number )
 *   Number ::= Digit* ( '.' Digit* )? Exp?
 *   Exp    ::= ('e' | 'E') Sign? Digit*
 *   Sign   ::= [+-]
 *   Digit  ::= [0-9]
 *
 * where the special float words are matched case-insensitively and integer
 * kinds stop after the first digit run.
 */

package scan

import (
	"math"
	"strconv"
	"strings"

	"github.com/textscan/textscan/go/scanerr"
)

// NumKind describes a numeric target type for ParseNum and MatchNum. Float
// selects the floating-point grammar (fraction, exponent and the special
// inf/infinity/nan words); Parse and Format are the type's own string
// conversions.
type NumKind[N any] struct {
	Name   string
	Float  bool
	Parse  func(string) (N, error)
	Format func(N) string
}

// Predefined kinds for the built-in numeric types.
var (
	Int = NumKind[int]{
		Name:  "int",
		Parse: func(s string) (int, error) { return strconv.Atoi(s) },
		Format: func(v int) string {
			return strconv.Itoa(v)
		},
	}
	Int8    = intKind[int8]("int8", 8)
	Int16   = intKind[int16]("int16", 16)
	Int32   = intKind[int32]("int32", 32)
	Int64   = intKind[int64]("int64", 64)
	Uint    = uintKind[uint]("uint", strconv.IntSize)
	Uint8   = uintKind[uint8]("uint8", 8)
	Uint16  = uintKind[uint16]("uint16", 16)
	Uint32  = uintKind[uint32]("uint32", 32)
	Uint64  = uintKind[uint64]("uint64", 64)
	Float32 = NumKind[float32]{
		Name:  "float32",
		Float: true,
		Parse: func(s string) (float32, error) {
			v, err := parseFloatSpan(s, 32)
			return float32(v), err
		},
		Format: func(v float32) string {
			return strconv.FormatFloat(float64(v), 'g', -1, 32)
		},
	}
	Float64 = NumKind[float64]{
		Name:  "float64",
		Float: true,
		Parse: func(s string) (float64, error) {
			return parseFloatSpan(s, 64)
		},
		Format: func(v float64) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		},
	}
)

// parseFloatSpan is strconv.ParseFloat plus signed not-a-number words.
// strconv accepts a sign on inf and infinity but not on nan; the numeric
// grammar here allows a sign in front of all three, and the sign of a NaN
// carries no meaning.
func parseFloatSpan(s string, bitSize int) (float64, error) {
	v, err := strconv.ParseFloat(s, bitSize)
	if err != nil && len(s) > 1 && (s[0] == '+' || s[0] == '-') && strings.EqualFold(s[1:], "nan") {
		return math.NaN(), nil
	}
	return v, err
}

func intKind[N int8 | int16 | int32 | int64](name string, bits int) NumKind[N] {
	return NumKind[N]{
		Name: name,
		Parse: func(s string) (N, error) {
			v, err := strconv.ParseInt(s, 10, bits)
			return N(v), err
		},
		Format: func(v N) string {
			return strconv.FormatInt(int64(v), 10)
		},
	}
}

func uintKind[N uint | uint8 | uint16 | uint32 | uint64](name string, bits int) NumKind[N] {
	return NumKind[N]{
		Name: name,
		Parse: func(s string) (N, error) {
			v, err := strconv.ParseUint(s, 10, bits)
			return N(v), err
		},
		Format: func(v N) string {
			return strconv.FormatUint(uint64(v), 10)
		},
	}
}

// isASCIIDigit reports whether r is one of 0-9. Digit runs in numeric
// literals are ASCII only.
func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// ParseNum parses a numeric literal of the given kind and commits the span
// on success. ParseNum is a free function because Go methods cannot carry
// their own type parameters.
func ParseNum[N any](sc *Scanner, kind NumKind[N]) (N, error) {
	var zero N
	fail := func(err error) (N, error) {
		sc.src.ResetPointer()
		return zero, scanerr.Context(err, "could not parse num")
	}
	if err := sc.requireFresh(); err != nil {
		return zero, scanerr.Context(err, "could not parse num")
	}
	if err := sc.SkipWhitespace(); err != nil {
		return fail(err)
	}
	start := sc.src.PointerLoc()

	// Optional leading sign.
	c, ok, err := sc.src.Peek()
	if err != nil {
		return fail(err)
	}
	if !ok {
		return fail(scanerr.Empty("could not parse a number as there are none left in the input"))
	}
	if c.R == '+' || c.R == '-' {
		if _, _, err := sc.src.Next(); err != nil {
			return fail(err)
		}
	}

	// The special float words short-circuit digit scanning. A word that
	// starts like one of them but is not one is a hard failure, not a
	// fallback to digits.
	c, ok, err = sc.src.Peek()
	if err != nil {
		return fail(err)
	}
	if !ok {
		return fail(scanerr.Empty("could not parse a number as there are none left in the input"))
	}
	if kind.Float && (c.R == 'i' || c.R == 'I' || c.R == 'n' || c.R == 'N') {
		word, err := sc.ReadWord()
		if err != nil {
			return fail(scanerr.Wrapf(err,
				"could not finish the infinity or not-a-number word after '%c'", c.R))
		}
		switch strings.ToUpper(word) {
		case "INF", "INFINITY", "NAN":
			return convertSpan(sc, kind, start, "float")
		default:
			span, _ := sc.src.ReadSubstr(start, sc.src.PointerLoc()-start)
			return fail(scanerr.Newf("'%s' is not a valid float", span))
		}
	}

	// Integer part.
	if err := skipDigits(sc); err != nil {
		return fail(err)
	}
	if kind.Float {
		// Optional fraction.
		c, ok, err := sc.src.Peek()
		if err != nil {
			return fail(err)
		}
		if ok && c.R == '.' {
			if _, _, err := sc.src.Next(); err != nil {
				return fail(err)
			}
			if err := skipDigits(sc); err != nil {
				return fail(err)
			}
		}
		// Optional exponent with its own optional sign.
		c, ok, err = sc.src.Peek()
		if err != nil {
			return fail(err)
		}
		if ok && (c.R == 'e' || c.R == 'E') {
			if _, _, err := sc.src.Next(); err != nil {
				return fail(err)
			}
			c, ok, err = sc.src.Peek()
			if err != nil {
				return fail(err)
			}
			if ok && (c.R == '+' || c.R == '-') {
				if _, _, err := sc.src.Next(); err != nil {
					return fail(err)
				}
			}
			if err := skipDigits(sc); err != nil {
				return fail(err)
			}
		}
	}
	return convertSpan(sc, kind, start, "number")
}

// skipDigits advances lookahead past a maximal run of ASCII digits.
func skipDigits(sc *Scanner) error {
	for {
		c, ok, err := sc.src.Peek()
		if err != nil {
			return err
		}
		if !ok || !isASCIIDigit(c.R) {
			return nil
		}
		if _, _, err := sc.src.Next(); err != nil {
			return err
		}
	}
}

// convertSpan hands the accumulated span to the kind's own conversion.
// Conversion failure rolls the cursor back; success commits the span.
func convertSpan[N any](sc *Scanner, kind NumKind[N], start int, what string) (N, error) {
	var zero N
	span, err := sc.src.ReadSubstr(start, sc.src.PointerLoc()-start)
	if err != nil {
		sc.src.ResetPointer()
		return zero, scanerr.Context(err, "could not parse num")
	}
	v, err := kind.Parse(span)
	if err != nil {
		sc.src.ResetPointer()
		return zero, scanerr.Context(
			scanerr.Newf("'%s' is not a valid %s", span, what),
			"could not parse num")
	}
	if err := sc.src.Consume(sc.src.PointerLoc()); err != nil {
		sc.src.ResetPointer()
		return zero, scanerr.Context(err, "could not parse num")
	}
	return v, nil
}
