package iscanf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileScanset_LeadingBracketIsMember(t *testing.T) {
	set, next := compileScanset("]abc]rest", 0, true)
	assert.Equal(t, 5, next)
	assert.True(t, set.matches(']'))
	assert.True(t, set.matches('a'))
	assert.False(t, set.matches('z'))
}

func TestCompileScanset_Inverted(t *testing.T) {
	set, _ := compileScanset("^abc]", 0, true)
	assert.True(t, set.invert)
	assert.False(t, set.matches('a'))
	assert.True(t, set.matches('z'))
}

func TestCompileScanset_Range(t *testing.T) {
	set, _ := compileScanset("a-z]", 0, true)
	assert.True(t, set.matches('m'))
	assert.False(t, set.matches('M'))
}

func TestCompileScanset_LeadingHyphenLiteral(t *testing.T) {
	set, _ := compileScanset("-a]", 0, true)
	assert.True(t, set.matches('-'))
	assert.True(t, set.matches('a'))
	assert.False(t, set.matches('b'))
}

func TestCompileScanset_TrailingHyphenLiteral(t *testing.T) {
	set, _ := compileScanset("a-]", 0, true)
	assert.True(t, set.matches('-'))
	assert.True(t, set.matches('a'))
}

func TestCompileScanset_InvertedHyphen(t *testing.T) {
	set, _ := compileScanset("^-]", 0, true)
	assert.True(t, set.invert)
	assert.False(t, set.matches('-'))
	assert.True(t, set.matches('x'))
}

func TestSscanf_Scanset(t *testing.T) {
	var s string
	n, err := Sscanf("hello, world", "%[a-z]", &s)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "hello", s)
}

func TestSscanf_ScansetZeroMatchesNotFailure(t *testing.T) {
	var s string
	var tail string
	n, err := Sscanf("123", "%[a-z]%s", &s, &tail)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "", s)
	assert.Equal(t, "123", tail)
}

func TestSscanf_ScansetSecureRequiresWidth(t *testing.T) {
	var s string
	_, err := SscanfOpts(Options{Secure: true}, "abc", "%[a-z]", &s)
	assert.Error(t, err)

	n, err := SscanfOpts(Options{Secure: true}, "abc", "%3[a-z]", &s)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "abc", s)
}
