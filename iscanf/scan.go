// This file carries the same pooled state struct and the same panic/recover
// error threading the standard library's own fmt.Scanf machinery uses, with
// a small advance/atEOF/pushback vocabulary over a CharSource/Unreader
// model in place of an io.Reader-backed ScanState, and driven by
// a directive-at-a-time control flow in the tradition of a classic
// freestanding scanf implementation.
package iscanf

import (
	"sync"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ss is the internal engine state for one call.
type ss struct {
	src  CharSource
	sink Unreader
	opt  Options

	next      int32 // one-character lookahead; EOF before/after exhaustion
	readChars int64 // total input code units consumed
	fields    int   // successful assignments so far
	tryConv   bool  // set once any conversion directive begins
	match     bool  // cleared once any assigning directive succeeds

	buf []byte // token accumulator, reused across directives
}

var ssPool = sync.Pool{New: func() interface{} { return new(ss) }}

func newSS(src CharSource, sink Unreader, opt Options) *ss {
	s := ssPool.Get().(*ss)
	s.src = src
	s.sink = sink
	s.opt = opt
	s.readChars = 0
	s.fields = 0
	s.tryConv = false
	s.match = true
	s.buf = s.buf[:0]
	s.next = s.src.NextChar() // primed read, not counted
	return s
}

func (s *ss) free() {
	s.src = nil
	s.sink = nil
	if cap(s.buf) > 1024 {
		s.buf = nil
	}
	ssPool.Put(s)
}

// advance consumes the current lookahead (counting it into read_chars)
// and refills it from the source.
func (s *ss) advance() {
	if s.next != EOF {
		s.readChars++
	}
	s.next = s.src.NextChar()
}

func (s *ss) atEOF() bool { return s.next == EOF }

// pushback returns the final lookahead to the source's sink: at most one
// pushback, only when next != EOF.
func (s *ss) pushback() {
	if s.sink != nil && s.next != EOF {
		s.sink.UnreadChar(s.next)
	}
}

func (s *ss) isSpace() bool { return !s.atEOF() && s.opt.isSpace(s.next) }

// skipInputSpace consumes zero-or-more whitespace characters, counting
// each into read_chars.
func (s *ss) skipInputSpace() {
	for s.isSpace() {
		s.advance()
	}
}

// run drives the format string against the input one directive at a time,
// using the same panic/recover idiom as doScanf to unwind to this one
// return point on either a matching or an input failure.
func (s *ss) run(format string, args []interface{}) (n int, err error) {
	defer func() {
		s.pushback()
		if r := recover(); r != nil {
			sp, ok := r.(scanPanic)
			if !ok {
				panic(r)
			}
			if sp.input {
				if s.tryConv && s.match {
					n, err = 0, sp.err
				} else {
					n, err = s.fields, nil
				}
				return
			}
			n, err = s.fields, sp.err
		}
	}()

	if format == "" {
		return 0, nil
	}

	argi := 0
	i, end := 0, len(format)
	for i < end {
		c, w := utf8.DecodeRuneInString(format[i:])
		switch {
		case s.opt.isSpace(c):
			i += w
			for i < end {
				c2, w2 := utf8.DecodeRuneInString(format[i:])
				if !s.opt.isSpace(c2) {
					break
				}
				i += w2
			}
			s.skipInputSpace()
		case c != '%':
			if s.atEOF() {
				return s.fields, nil
			}
			if s.next != c {
				s.matchFail("", "input did not match literal format text")
			}
			s.advance()
			i += w
		default:
			i += w
			i, argi = s.directive(format, i, args, argi)
		}
	}
	if argi < len(args) {
		return s.fields, newScanError("", errors.New("too many operands for format"))
	}
	return s.fields, nil
}

// directive parses and executes one %-directive starting at i (just past
// the '%'), returning the format index just past the directive and the
// updated argument cursor.
func (s *ss) directive(format string, i int, args []interface{}, argi int) (int, int) {
	end := len(format)
	nostore := false
	if i < end && format[i] == '*' {
		nostore = true
		i++
	}

	width, widthSet := 0, false
	for i < end && format[i] >= '0' && format[i] <= '9' {
		widthSet = true
		d := int(format[i] - '0')
		if width > (maxWidth-d)/10 {
			width = maxWidth
		} else {
			width = width*10 + d
		}
		i++
	}
	if !widthSet {
		width = 0
	}

	lm, i := parseLength(format, i)
	if lm == lenLL && s.opt.DisableLongLong {
		lm = lenL
	}

	if i >= end {
		s.matchFail("%", "truncated conversion directive")
	}
	verb, w := utf8.DecodeRuneInString(format[i:])
	i += w

	if verb == '!' {
		return s.scanExtension(format, i, nostore, width, widthSet, args, argi)
	}

	// Whitespace-skip / EOF-check policy: %n never skips or checks, %[
	// and %c check EOF without skipping whitespace, everything else
	// (including %%) does both.
	switch verb {
	case 'n':
		// neither skips nor checks EOF, never sets tryConv
	case '[', 'c':
		s.tryConv = true
		if s.atEOF() {
			s.inputFail()
		}
	default:
		s.skipInputSpace()
		s.tryConv = true
		if s.atEOF() {
			s.inputFail()
		}
	}

	// %% matches a literal '%' against the input consumed by the policy
	// above; unlike every other specifier it never consumes an argument
	// and never counts toward fields.
	if verb == '%' {
		if s.next != '%' {
			s.matchFail("%%", "expected literal %%")
		}
		s.advance()
		return i, argi
	}

	var dst interface{}
	if !nostore {
		if argi >= len(args) {
			s.matchFail("%"+string(verb), "too few operands for format")
		}
		dst = args[argi]
		argi++
	}

	directive := "%" + string(verb)
	switch {
	case verb == 'n':
		if !nostore {
			storeInt(dst, s.readChars, lm, false)
		}
	case verb == 'c':
		s.scanChar(directive, dst, nostore, width, widthSet)
	case verb == 's':
		s.scanString(directive, dst, nostore, width, widthSet)
	case verb == '[':
		i = s.scanScanset(format, i, directive, dst, nostore, width, widthSet)
	case isIntVerb(verb):
		s.scanInt(directive, verb, dst, nostore, lm, width, widthSet)
	case isFloatVerb(verb):
		s.scanFloat(directive, dst, nostore, lm, width, widthSet)
	default:
		s.matchFail(directive, "unrecognized conversion specifier %%%c", verb)
	}

	if !nostore && verb != 'n' {
		s.fields++
		s.match = false
	}
	return i, argi
}

const maxWidth = int(^uint(0) >> 1)

type lengthMod int

const (
	lenNone lengthMod = iota
	lenHH
	lenH
	lenL
	lenLL
	lenBigL
	lenJ
	lenZ
	lenT
)

func parseLength(format string, i int) (lengthMod, int) {
	if i >= len(format) {
		return lenNone, i
	}
	switch format[i] {
	case 'h':
		if i+1 < len(format) && format[i+1] == 'h' {
			return lenHH, i + 2
		}
		return lenH, i + 1
	case 'l':
		if i+1 < len(format) && format[i+1] == 'l' {
			return lenLL, i + 2
		}
		return lenL, i + 1
	case 'L':
		return lenBigL, i + 1
	case 'j':
		return lenJ, i + 1
	case 'z':
		return lenZ, i + 1
	case 't':
		return lenT, i + 1
	}
	return lenNone, i
}

func isIntVerb(verb rune) bool {
	switch verb {
	case 'd', 'u', 'i', 'o', 'x', 'X', 'b', 'p':
		return true
	}
	return false
}

func isFloatVerb(verb rune) bool {
	switch verb {
	case 'e', 'E', 'f', 'F', 'g', 'G', 'a', 'A':
		return true
	}
	return false
}
