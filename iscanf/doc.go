// Package iscanf implements a formatted-input engine in the tradition of
// the C standard library's scanf family. It reads from a pluggable
// character source, interprets a printf-style format string, and deposits
// converted values into caller-supplied pointers.
//
// The public entry points mirror scanf/sscanf/spscanf/fctscanf from a
// classic freestanding scanf implementation, adapted to the idiomatic Go
// (n int, err error) return convention used by the standard fmt package's
// own Fscanf family:
//
//	Scanf(format, a...)                    reads from stdin
//	Sscanf(s, format, a...)                 reads from a string
//	Spscanf(sp, format, a...)                reads from *sp, advancing it
//	Fctscanf(get, unget, format, a...)       reads from a caller callback
//	Fscanf(src, sink, format, a...)          reads from any CharSource
//
// Extensions beyond ISO C scanf (binary integers via %b, (nil) pointers,
// hexadecimal floats, NaN/Infinity literals, and a %! custom specifier
// hook) are all controlled through Options and are off or on by the
// defaults documented on that type.
package iscanf
