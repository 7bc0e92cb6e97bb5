package iscanf

import "io"

// Scanf scans text read from standard input into args as determined by
// format. It returns the number of items successfully scanned. err is
// io.EOF when a conversion found the input exhausted before any field was
// assigned, and a *ScanError on a matching failure or when args outnumber
// the format's conversions; when the input runs out after at least one
// field was assigned, err is nil even if n is less than len(args).
func Scanf(format string, args ...interface{}) (int, error) {
	return ScanfOpts(DefaultOptions(), format, args...)
}

// ScanfOpts is Scanf with explicit Options.
func ScanfOpts(opt Options, format string, args ...interface{}) (int, error) {
	src := getStdin()
	return run(src, src, opt, format, args)
}

// Sscanf scans s into args as determined by format.
func Sscanf(s string, format string, args ...interface{}) (int, error) {
	return SscanfOpts(DefaultOptions(), s, format, args...)
}

// SscanfOpts is Sscanf with explicit Options.
func SscanfOpts(opt Options, s string, format string, args ...interface{}) (int, error) {
	src := newBufferSource(s)
	return run(src, src, opt, format, args)
}

// Spscanf scans *sp into args as determined by format, leaving *sp
// advanced past the consumed prefix (one step back from wherever the
// engine stopped).
func Spscanf(sp *string, format string, args ...interface{}) (int, error) {
	return SpscanfOpts(DefaultOptions(), sp, format, args...)
}

// SpscanfOpts is Spscanf with explicit Options.
func SpscanfOpts(opt Options, sp *string, format string, args ...interface{}) (int, error) {
	src := newPointerSource(sp)
	n, err := run(src, src, opt, format, args)
	src.sync()
	return n, err
}

// Fctscanf scans from a caller-supplied (get, unget) pair. unget may be
// nil.
func Fctscanf(get func() int32, unget func(int32), format string, args ...interface{}) (int, error) {
	return FctscanfOpts(DefaultOptions(), get, unget, format, args...)
}

// FctscanfOpts is Fctscanf with explicit Options.
func FctscanfOpts(opt Options, get func() int32, unget func(int32), format string, args ...interface{}) (int, error) {
	src := &callbackSource{get: get, unget: unget}
	return run(src, src, opt, format, args)
}

// Fscanf scans from any CharSource, with an optional Unreader sink.
func Fscanf(src CharSource, sink Unreader, format string, args ...interface{}) (int, error) {
	return FscanfOpts(DefaultOptions(), src, sink, format, args...)
}

// FscanfOpts is Fscanf with explicit Options.
func FscanfOpts(opt Options, src CharSource, sink Unreader, format string, args ...interface{}) (int, error) {
	return run(src, sink, opt, format, args)
}

// FscanReader scans from an io.Reader, for callers migrating from the
// standard library's fmt.Fscanf. A *bufio.Reader is used as is; any other
// reader is wrapped in a new bufio.Reader, whose UnreadByte serves as the
// pushback sink.
func FscanReader(r io.Reader, format string, args ...interface{}) (int, error) {
	src := newReaderSource(r)
	return run(src, src, DefaultOptions(), format, args)
}

func run(src CharSource, sink Unreader, opt Options, format string, args []interface{}) (int, error) {
	s := newSS(src, sink, opt)
	defer s.free()
	return s.run(format, args)
}
