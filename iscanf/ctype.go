package iscanf

// Character classification and digit conversion support two interchangeable
// strategies: arithmetic (ASCII-range comparisons) and an explicit lookup
// table, for hosts with no working <ctype.h> equivalent to fall back on.
// Options.InternalCtype picks between them; both agree on every input.

var spaceTable [256]bool
var alphaTable [256]bool
var digitTable [256]bool

func init() {
	for _, b := range []byte(" \t\n\v\f\r") {
		spaceTable[b] = true
	}
	for b := byte('0'); b <= '9'; b++ {
		digitTable[b] = true
	}
	for b := byte('a'); b <= 'z'; b++ {
		alphaTable[b] = true
	}
	for b := byte('A'); b <= 'Z'; b++ {
		alphaTable[b] = true
	}
}

func arithIsSpace(r int32) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func arithIsDigit(r int32) bool {
	return r >= '0' && r <= '9'
}

func arithIsAlpha(r int32) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func arithIsAlnum(r int32) bool {
	return arithIsDigit(r) || arithIsAlpha(r)
}

func (o *Options) isSpace(r int32) bool {
	if r < 0 {
		return false
	}
	if o.InternalCtype && r < 256 {
		return spaceTable[byte(r)]
	}
	return arithIsSpace(r)
}

func (o *Options) isAlnum(r int32) bool {
	if o.InternalCtype && r >= 0 && r < 256 {
		return alphaTable[byte(r)] || digitTable[byte(r)]
	}
	return arithIsAlnum(r)
}

// digitValue reports the value of r as a digit in the given base (2, 8,
// 10, or 16), and whether r is a valid digit in that base at all.
func digitValue(r int32, base int) (int, bool) {
	var v int
	switch {
	case r >= '0' && r <= '9':
		v = int(r - '0')
	case r >= 'a' && r <= 'z':
		v = int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		v = int(r-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}
