package iscanf

// ExtensionFunc implements the %!... custom specifier hook. It receives
// the engine's source so it may keep reading,
// the format string and the index just past '!' (it must return the index
// just past its own custom syntax), whether a width was supplied, whether
// the directive is suppressed, and the destination (nil if suppressed).
//
// It must return the new format index, how many characters it consumed
// from the input (for read_chars accounting), the new lookahead character,
// and a status: negative for input failure, positive for matching
// failure, zero for success.
type ExtensionFunc func(src CharSource, format string, i int, width int, widthSet bool, nostore bool, dst interface{}, lookahead int32) (newIndex int, consumed int, newLookahead int32, status int)

// scanExtension dispatches to Options.ExtensionFunc, updating the engine's
// own read_chars, fields, and lookahead from its report.
func (s *ss) scanExtension(format string, i int, nostore bool, width int, widthSet bool, args []interface{}, argi int) (int, int) {
	if s.opt.ExtensionFunc == nil {
		s.matchFail("%!", "custom specifiers are disabled")
	}
	var dst interface{}
	if !nostore {
		if argi >= len(args) {
			s.matchFail("%!", "too few operands for format")
		}
		dst = args[argi]
		argi++
	}
	newIndex, consumed, newLookahead, status := s.opt.ExtensionFunc(s.src, format, i, width, widthSet, nostore, dst, s.next)
	s.readChars += int64(consumed)
	s.next = newLookahead
	s.tryConv = true
	switch {
	case status < 0:
		s.inputFail()
	case status > 0:
		s.matchFail("%!", "custom specifier did not match")
	default:
		if !nostore {
			s.fields++
			s.match = false
		}
	}
	return newIndex, argi
}
