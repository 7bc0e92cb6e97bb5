package iscanf

import (
	"bufio"
	"io"
	"os"
	"sync"
)

// stdinSource wraps os.Stdin behind a single shared buffered reader, a
// host-provided capability constructed once and reused across calls.
type stdinSource struct {
	r *bufio.Reader
}

func (s *stdinSource) NextChar() int32 {
	b, err := s.r.ReadByte()
	if err != nil {
		return EOF
	}
	return int32(b)
}

func (s *stdinSource) UnreadChar(int32) {
	_ = s.r.UnreadByte()
}

var stdinOnce sync.Once
var stdin *stdinSource

func getStdin() *stdinSource {
	stdinOnce.Do(func() {
		stdin = &stdinSource{r: bufio.NewReader(os.Stdin)}
	})
	return stdin
}

// readerSource adapts an arbitrary io.Reader to CharSource/Unreader, used
// by FscanReader when the caller hands in a reader rather than a CharSource.
type readerSource struct {
	r *bufio.Reader
}

func newReaderSource(r io.Reader) *readerSource {
	if br, ok := r.(*bufio.Reader); ok {
		return &readerSource{r: br}
	}
	return &readerSource{r: bufio.NewReader(r)}
}

func (s *readerSource) NextChar() int32 {
	b, err := s.r.ReadByte()
	if err != nil {
		return EOF
	}
	return int32(b)
}

func (s *readerSource) UnreadChar(int32) {
	_ = s.r.UnreadByte()
}
