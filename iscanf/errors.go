package iscanf

import (
	"io"

	"github.com/pkg/errors"
)

// ScanError reports a matching failure: the input held a character that did
// not satisfy the directive being processed, or the arguments did not fit
// the format. A failure met while the lookahead is at end of input is
// reported as exhaustion instead (io.EOF before any field was assigned, a
// nil error after), except for surplus arguments left when the format ends.
type ScanError struct {
	// Directive names the format element that failed, e.g. "%d" or a
	// literal character, for diagnostic purposes only.
	Directive string
	err       error
}

func (e *ScanError) Error() string {
	if e.Directive == "" {
		return e.err.Error()
	}
	return e.Directive + ": " + e.err.Error()
}

func (e *ScanError) Unwrap() error { return e.err }

func newScanError(directive string, err error) *ScanError {
	return &ScanError{Directive: directive, err: err}
}

// scanPanic is the value panicked by ss.matchFail / ss.inputFail to unwind
// to the top of run(), the same typed-panic/recover idiom the standard
// library's own fmt.Fscanf uses internally.
type scanPanic struct {
	err   error
	input bool // true: input exhausted; false: matching failure
}

func (s *ss) matchFail(directive string, format string, args ...interface{}) {
	// A directive that fails exactly at end of input, rather than on a
	// character that contradicts it, is exhaustion and not a genuine
	// mismatch: route it through the same path as inputFail so a lone
	// sign or a truncated "nan"/"inf" literal resolves to io.EOF instead
	// of a *ScanError, the same distinction GOT_EOF() draws around a
	// failed match in a freestanding scanf implementation.
	if s.next == EOF {
		s.inputFail()
	}
	var err error
	if len(args) == 0 {
		err = errors.New(format)
	} else {
		err = errors.Errorf(format, args...)
	}
	panic(scanPanic{err: newScanError(directive, err), input: false})
}

func (s *ss) inputFail() {
	panic(scanPanic{err: io.EOF, input: true})
}
