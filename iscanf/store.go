package iscanf

import (
	"reflect"
	"unsafe"

	"github.com/pkg/errors"
)

// storeInt casts an intmax-wide value into the caller's destination
// pointer: a plain narrowing cast, not a second saturation pass, since the
// accumulator already saturated to the intmax extremes if it overflowed.
// The length modifier is accepted for grammar fidelity but the concrete Go
// pointer type, not the modifier, decides the storage width, since Go
// destinations are already typed.
func storeInt(dst interface{}, v int64, lm lengthMod, forceUnsigned bool) {
	switch p := dst.(type) {
	case *int8:
		*p = int8(v)
		return
	case *uint8:
		*p = uint8(v)
		return
	case *int16:
		*p = int16(v)
		return
	case *uint16:
		*p = uint16(v)
		return
	case *int32:
		*p = int32(v)
		return
	case *uint32:
		*p = uint32(v)
		return
	case *int64:
		*p = v
		return
	case *uint64:
		*p = uint64(v)
		return
	case *int:
		*p = int(v)
		return
	case *uint:
		*p = uint(v)
		return
	case *uintptr:
		*p = uintptr(v)
		return
	}
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		panic(scanPanic{err: errors.Errorf("iscanf: destination is not a pointer: %T", dst)})
	}
	elem := rv.Elem()
	switch elem.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		elem.SetInt(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		elem.SetUint(uint64(v))
	default:
		panic(scanPanic{err: errors.Errorf("iscanf: can't scan into %T", dst)})
	}
}

// storePointer stores a reinterpreted-as-integer pointer value, the %p
// storage rule.
func storePointer(dst interface{}, v uint64) {
	switch p := dst.(type) {
	case *uintptr:
		*p = uintptr(v)
		return
	case *unsafe.Pointer:
		*p = unsafe.Pointer(uintptr(v))
		return
	}
	storeInt(dst, int64(v), lenNone, true)
}

// storeFloat narrows the wide accumulator to the destination's precision
// via ordinary arithmetic rounding.
func storeFloat(dst interface{}, v float64, lm lengthMod) {
	switch p := dst.(type) {
	case *float32:
		*p = float32(v)
		return
	case *float64:
		*p = v
		return
	}
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		panic(scanPanic{err: errors.Errorf("iscanf: destination is not a pointer: %T", dst)})
	}
	elem := rv.Elem()
	if elem.Kind() != reflect.Float32 && elem.Kind() != reflect.Float64 {
		panic(scanPanic{err: errors.Errorf("iscanf: can't scan float into %T", dst)})
	}
	elem.SetFloat(v)
}

// storeBytes writes a consumed byte run into a string/[]byte destination.
func storeBytes(dst interface{}, b []byte) {
	switch p := dst.(type) {
	case *string:
		*p = string(b)
		return
	case *[]byte:
		*p = append([]byte(nil), b...)
		return
	}
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		panic(scanPanic{err: errors.Errorf("iscanf: destination is not a pointer: %T", dst)})
	}
	elem := rv.Elem()
	if elem.Kind() == reflect.String {
		elem.SetString(string(b))
		return
	}
	panic(scanPanic{err: errors.Errorf("iscanf: can't scan string into %T", dst)})
}

func storeRune(dst interface{}, r int32) {
	switch p := dst.(type) {
	case *byte:
		*p = byte(r)
		return
	case *rune:
		*p = r
		return
	}
	storeInt(dst, int64(r), lenNone, false)
}
