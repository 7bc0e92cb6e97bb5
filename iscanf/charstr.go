package iscanf

// scanChar implements %c: consume exactly width characters (default 1),
// never skipping leading whitespace, matching-fail if fewer are available.
func (s *ss) scanChar(directive string, dst interface{}, nostore bool, width int, widthSet bool) {
	if !widthSet || width == 0 {
		width = 1
	}
	first := s.next
	s.buf = s.buf[:0]
	n := 0
	for n < width && !s.atEOF() {
		s.buf = append(s.buf, byte(s.next))
		s.advance()
		n++
	}
	if n < width {
		s.matchFail(directive, "expected %d characters, got %d", width, n)
	}
	if !nostore {
		if width == 1 {
			storeRune(dst, first)
		} else {
			storeBytes(dst, s.buf)
		}
	}
}

// scanString implements %s. Whitespace is already skipped by the caller;
// consume non-whitespace up to width. An empty match is a matching
// failure; an unset width is a matching failure under Options.Secure.
func (s *ss) scanString(directive string, dst interface{}, nostore bool, width int, widthSet bool) {
	if !widthSet || width == 0 {
		if s.opt.Secure {
			s.matchFail(directive, "width required in secure mode")
		}
		width = maxWidth
	}
	s.buf = s.buf[:0]
	n := 0
	for n < width && !s.atEOF() && !s.opt.isSpace(s.next) {
		s.buf = append(s.buf, byte(s.next))
		s.advance()
		n++
	}
	if n == 0 {
		s.matchFail(directive, "expected a non-empty token")
	}
	if !nostore {
		storeBytes(dst, s.buf)
	}
}

// scanScanset implements %[...]. It compiles the set out of format
// starting at i (just past '['), then matches input the same way %s does
// except zero matches is not a failure.
func (s *ss) scanScanset(format string, i int, directive string, dst interface{}, nostore bool, width int, widthSet bool) int {
	set, next := compileScanset(format, i, s.opt.FastScanset)
	if !widthSet || width == 0 {
		if s.opt.Secure {
			s.matchFail(directive, "width required in secure mode")
		}
		width = maxWidth
	}
	s.buf = s.buf[:0]
	n := 0
	for n < width && !s.atEOF() && set.matches(s.next) {
		s.buf = append(s.buf, byte(s.next))
		s.advance()
		n++
	}
	if !nostore {
		storeBytes(dst, s.buf)
	}
	return next
}
