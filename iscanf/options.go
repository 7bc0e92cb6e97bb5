package iscanf

// Options carries the nine build-time flags the original C implementation
// selected with preprocessor macros (see SPEC_FULL.md §6). Since Go has no
// equivalent of conditional compilation worth reaching for here, each flag
// is a runtime field instead; a caller (or the bundled CLI, which binds
// these to viper-backed flags) can flip them per call.
type Options struct {
	// DisableLongLong makes the ll length modifier behave like l.
	DisableLongLong bool
	// DisableFloat makes every float specifier a matching failure.
	DisableFloat bool
	// Binary enables %b and base-2 digit recognition.
	Binary bool
	// Infinite enables the nan/inf(inity) literals for float conversions.
	Infinite bool
	// FastScanset enables the 256-entry membership table for [...] sets.
	FastScanset bool
	// ASCII mirrors the original build flag for an ASCII-ordered code unit
	// domain. Digit conversion always uses ASCII-ordered arithmetic, and the
	// engine does not read this field: InternalCtype alone picks the
	// classification strategy.
	ASCII bool
	// Secure makes %s and %[ without an explicit width a matching
	// failure, closing off unbounded writes into caller buffers.
	Secure bool
	// InternalCtype selects the engine's own whitespace/digit/alpha
	// tables instead of arithmetic classification, independent of ASCII.
	InternalCtype bool
	// ExtensionFunc, if non-nil, implements the %! custom specifier.
	ExtensionFunc ExtensionFunc
}

// DefaultOptions matches the classic scanf defaults: floats, long long and
// the infinite literals are on, and so is the fast scanset table; the
// non-standard extras (binary integers, secure mode, the extension hook)
// are off.
func DefaultOptions() Options {
	return Options{
		Infinite:    true,
		FastScanset: true,
	}
}
