/*
 * Numeric-Literal Primitive Tests
 */

package scan

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textscan/textscan/go/scanerr"
)

func TestParseNumIntegers(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      int64
		committed int
	}{
		{"single digit", "1", 1, 1},
		{"multiple digits", "12345", 12345, 5},
		{"negative", "-2", -2, 2},
		{"explicit positive", "+7", 7, 2},
		{"leading whitespace", "  42", 42, 4},
		{"stops at non-digit", "12abc", 12, 2},
		{"stops at dot for integer kinds", "1.0", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewStrSource(tt.input)
			sc := New(src)

			v, err := ParseNum(sc, Int64)

			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.committed, src.Committed())
			assert.Equal(t, 0, src.PointerLoc())
		})
	}
}

func TestParseNumIntegerFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no digits", "abc"},
		{"bare sign", "- x"},
		{"overflow int8", "300"},
		{"negative for unsigned", "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewStrSource(tt.input)
			sc := New(src)

			var err error
			if tt.name == "overflow int8" {
				_, err = ParseNum(sc, Int8)
			} else if tt.name == "negative for unsigned" {
				_, err = ParseNum(sc, Uint32)
			} else {
				_, err = ParseNum(sc, Int64)
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), "is not a valid number")
			assert.Equal(t, 0, src.Committed())
			assert.Equal(t, 0, src.PointerLoc())
		})
	}
}

func TestParseNumFloats(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      float64
		committed int
	}{
		{"integer shaped", "3", 3, 1},
		{"fraction", "12.3", 12.3, 4},
		{"leading dot", ".5", 0.5, 2},
		{"trailing dot", "7.", 7, 2},
		{"negative fraction", "-0.25", -0.25, 5},
		{"exponent", "1e3", 1000, 3},
		{"upper exponent", "2E2", 200, 3},
		{"signed exponent", "1.5e-2", 0.015, 6},
		{"positive exponent sign", "2e+1", 20, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewStrSource(tt.input)
			sc := New(src)

			v, err := ParseNum(sc, Float64)

			require.NoError(t, err)
			assert.InDelta(t, tt.want, v, 1e-12)
			assert.Equal(t, tt.committed, src.Committed())
		})
	}
}

func TestParseNumSpecialFloats(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantInf int // -1, 0, +1; 0 means NaN
	}{
		{"inf", "inf", 1},
		{"positive inf", "+inf", 1},
		{"negative inf", "-inf", -1},
		{"infinity word", "infinity", 1},
		{"negative infinity", "-infinity", -1},
		{"upper case", "INF", 1},
		{"mixed case", "InFiNiTy", 1},
		{"nan", "nan", 0},
		{"upper nan", "NaN", 0},
		{"negative nan", "-nan", 0},
		{"positive nan", "+nan", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewStrSource(tt.input)
			sc := New(src)

			v, err := ParseNum(sc, Float64)

			require.NoError(t, err)
			if tt.wantInf == 0 {
				assert.True(t, math.IsNaN(v))
			} else {
				assert.True(t, math.IsInf(v, tt.wantInf))
			}
			assert.Equal(t, len(tt.input), src.Committed())
		})
	}
}

func TestParseNumFloat32SpecialValues(t *testing.T) {
	sc := NewString("+inf -inf nan")

	v, err := ParseNum(sc, Float32)
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(v), 1))

	v, err = ParseNum(sc, Float32)
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(v), -1))

	v, err = ParseNum(sc, Float32)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(v)))
}

func TestParseNumNearMissFloatWord(t *testing.T) {
	// A word that starts like inf or nan but is neither is a hard failure,
	// not a fallback to digit parsing.
	for _, input := range []string{"index", "native", "Infographic", "-nature"} {
		src := NewStrSource(input)
		sc := New(src)

		_, err := ParseNum(sc, Float64)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a valid float")
		assert.Equal(t, 0, src.Committed())
		assert.Equal(t, 0, src.PointerLoc())
	}
}

func TestParseNumIntegerIgnoresFloatWords(t *testing.T) {
	// Integer kinds never take the special-word path; "inf" is just a
	// missing digit run.
	src := NewStrSource("inf")
	sc := New(src)

	_, err := ParseNum(sc, Int32)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a valid number")
	assert.Equal(t, 0, src.Committed())
}

func TestParseNumEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "-", "+"} {
		src := NewStrSource(input)
		sc := New(src)

		_, err := ParseNum(sc, Float64)

		require.Error(t, err)
		assert.True(t, scanerr.IsEmpty(err), "input %q should report exhaustion", input)
		assert.Equal(t, 0, src.Committed())
		assert.Equal(t, 0, src.PointerLoc())
	}
}

func TestParseNumRequiresFreshCursor(t *testing.T) {
	src := NewStrSource("12")
	sc := New(src)
	_, _, err := src.Next()
	require.NoError(t, err)

	_, perr := ParseNum(sc, Int64)

	require.Error(t, perr)
	assert.Contains(t, perr.Error(), "pending lookahead")
}

func TestParseNumBreadcrumbs(t *testing.T) {
	sc := NewString("abc")
	_, err := ParseNum(sc, Int64)

	require.Error(t, err)
	assert.Equal(t, "'' is not a valid number; could not parse num", err.Error())
}

// TestNumRoundTrip formats values with each kind's canonical form and
// parses them back.
func TestNumRoundTrip(t *testing.T) {
	t.Run("int64", func(t *testing.T) {
		for _, v := range []int64{0, 1, -1, 42, -987654321, math.MaxInt64, math.MinInt64} {
			sc := NewString(Int64.Format(v))
			got, err := ParseNum(sc, Int64)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})
	t.Run("uint64", func(t *testing.T) {
		for _, v := range []uint64{0, 7, math.MaxUint64} {
			sc := NewString(Uint64.Format(v))
			got, err := ParseNum(sc, Uint64)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})
	t.Run("float64", func(t *testing.T) {
		for _, v := range []float64{0, 1.5, -12.25, 1e300, -2.5e-7, math.MaxFloat64} {
			sc := NewString(Float64.Format(v))
			got, err := ParseNum(sc, Float64)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})
	t.Run("float64 specials", func(t *testing.T) {
		sc := NewString(Float64.Format(math.Inf(1)))
		got, err := ParseNum(sc, Float64)
		require.NoError(t, err)
		assert.True(t, math.IsInf(got, 1))

		sc = NewString(Float64.Format(math.Inf(-1)))
		got, err = ParseNum(sc, Float64)
		require.NoError(t, err)
		assert.True(t, math.IsInf(got, -1))

		sc = NewString(Float64.Format(math.NaN()))
		got, err = ParseNum(sc, Float64)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(got))
	})
	t.Run("float32", func(t *testing.T) {
		for _, v := range []float32{0, 0.5, -3.25, 12.3} {
			sc := NewString(Float32.Format(v))
			got, err := ParseNum(sc, Float32)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})
}
