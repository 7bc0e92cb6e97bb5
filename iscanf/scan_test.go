package iscanf

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSscanf_LiteralAndWhitespace(t *testing.T) {
	var a, b int
	n, err := Sscanf("  12   34", "%d %d", &a, &b)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 12, a)
	assert.Equal(t, 34, b)
}

func TestSscanf_EmptyInputIsEOF(t *testing.T) {
	var a int
	n, err := Sscanf("", "%d", &a)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSscanf_LiteralMismatchIsMatchFailure(t *testing.T) {
	var a int
	n, err := Sscanf("abd9", "abc%d", &a)
	assert.Equal(t, 0, n)
	require.Error(t, err)
	var se *ScanError
	assert.ErrorAs(t, err, &se)
}

func TestSscanf_WidthLimitedFields(t *testing.T) {
	var a, b int
	n, err := Sscanf("1234", "%2d%2d", &a, &b)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 12, a)
	assert.Equal(t, 34, b)
}

func TestSscanf_PercentN(t *testing.T) {
	var a, b rune
	var pos int
	n, err := Sscanf("ab", "%c%n%c", &a, &pos, &b)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 'a', a)
	assert.Equal(t, 1, pos)
	assert.Equal(t, 'b', b)
}

func TestSscanf_PercentLiteral(t *testing.T) {
	var a int
	n, err := Sscanf("50%", "%d%%", &a)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 50, a)
}

func TestSscanf_PercentLiteralNeverConsumesArg(t *testing.T) {
	var a, b int
	n, err := Sscanf("5%6", "%d%%%d", &a, &b)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 5, a)
	assert.Equal(t, 6, b)
}

func TestSscanf_PercentLiteralSkipsLeadingWhitespace(t *testing.T) {
	n, err := Sscanf("  %", "%%")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSscanf_PercentLiteralAtEOFIsEOF(t *testing.T) {
	n, err := Sscanf("", "%%")
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSscanf_LoneSignAtEOFIsEOF(t *testing.T) {
	var x int
	n, err := Sscanf("+", "%d", &x)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)

	n, err = Sscanf("-", "%d", &x)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSscanf_LoneDotAtEOFIsEOF(t *testing.T) {
	var f float64
	n, err := Sscanf(".", "%f", &f)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSscanf_TruncatedNaNAtEOFIsEOF(t *testing.T) {
	var f float64
	n, err := Sscanf("na", "%f", &f)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSscanf_TruncatedInfinityAtEOFIsEOF(t *testing.T) {
	var f float64
	n, err := Sscanf("in", "%f", &f)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestSscanf_MatchFailureNotAtEOFIsScanError(t *testing.T) {
	var x int
	n, err := Sscanf("+x", "%d", &x)
	assert.Equal(t, 0, n)
	require.Error(t, err)
	assert.False(t, err == io.EOF)
	var se *ScanError
	assert.ErrorAs(t, err, &se)
}

func TestSscanf_EOFMatchFailureAfterPriorSuccessReturnsFields(t *testing.T) {
	var a, b int
	n, err := Sscanf("5 +", "%d %d", &a, &b)
	assert.Equal(t, 1, n)
	assert.NoError(t, err)
	assert.Equal(t, 5, a)
}

func TestSscanf_TooManyOperands(t *testing.T) {
	var a, b int
	n, err := Sscanf("7", "%d", &a, &b)
	assert.Equal(t, 1, n)
	require.Error(t, err)
}

func TestSscanf_SuppressedAssignment(t *testing.T) {
	var a int
	n, err := Sscanf("99 42", "%*d %d", &a)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 42, a)
}

func TestSpscanf_AdvancesPointer(t *testing.T) {
	s := "12 rest"
	var a int
	n, err := Spscanf(&s, "%d", &a)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 12, a)
	assert.Equal(t, " rest", s)
}

func TestFctscanf_CallbackSource(t *testing.T) {
	data := []rune("7 8x")
	pos := 0
	pushed := rune(-1)
	get := func() int32 {
		if pos >= len(data) {
			return EOF
		}
		r := data[pos]
		pos++
		return int32(r)
	}
	unget := func(c int32) {
		pushed = rune(c)
		pos--
	}
	var a, b int
	n, err := Fctscanf(get, unget, "%d %d", &a, &b)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 7, a)
	assert.Equal(t, 8, b)
	assert.Equal(t, 'x', pushed)
}
