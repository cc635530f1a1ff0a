package glist

import (
	"fmt"
	"math"
	"unsafe"
)

// Value is a single list payload together with its [Kind].
//
// The zero Value is a nil pointer payload. Numeric payloads are stored as
// their raw bit pattern so a Value stays two words wide whatever it holds.
type Value struct {
	ptr  unsafe.Pointer
	bits uint64
	kind Kind
}

// Ptr wraps an opaque pointer. The list never dereferences or owns p.
func Ptr(p unsafe.Pointer) Value { return Value{ptr: p, kind: KindPtr} }

// Int32 wraps a signed 32-bit integer.
func Int32(v int32) Value { return Value{bits: uint64(uint32(v)), kind: KindInt32} }

// Uint32 wraps an unsigned 32-bit integer.
func Uint32(v uint32) Value { return Value{bits: uint64(v), kind: KindUint32} }

// Float32 wraps a 32-bit float.
func Float32(v float32) Value { return Value{bits: uint64(math.Float32bits(v)), kind: KindFloat32} }

// Float64 wraps a 64-bit float.
func Float64(v float64) Value { return Value{bits: math.Float64bits(v), kind: KindFloat64} }

// Kind returns the payload kind of v.
func (v Value) Kind() Kind { return v.kind }

// AsPtr returns the pointer payload, or [ErrKindMismatch].
func (v Value) AsPtr() (unsafe.Pointer, error) {
	if v.kind != KindPtr {
		return nil, mismatch(KindPtr, v.kind)
	}
	return v.ptr, nil
}

// AsInt32 returns the int32 payload, or [ErrKindMismatch].
func (v Value) AsInt32() (int32, error) {
	if v.kind != KindInt32 {
		return 0, mismatch(KindInt32, v.kind)
	}
	return int32(uint32(v.bits)), nil
}

// AsUint32 returns the uint32 payload, or [ErrKindMismatch].
func (v Value) AsUint32() (uint32, error) {
	if v.kind != KindUint32 {
		return 0, mismatch(KindUint32, v.kind)
	}
	return uint32(v.bits), nil
}

// AsFloat32 returns the float32 payload, or [ErrKindMismatch].
func (v Value) AsFloat32() (float32, error) {
	if v.kind != KindFloat32 {
		return 0, mismatch(KindFloat32, v.kind)
	}
	return math.Float32frombits(uint32(v.bits)), nil
}

// AsFloat64 returns the float64 payload, or [ErrKindMismatch].
func (v Value) AsFloat64() (float64, error) {
	if v.kind != KindFloat64 {
		return 0, mismatch(KindFloat64, v.kind)
	}
	return math.Float64frombits(v.bits), nil
}

// Equal reports whether v and o have the same kind and equal payloads.
//
// Pointers compare by identity. Floats compare with ==, so NaN is never
// equal to anything and -0 equals +0.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindPtr:
		return v.ptr == o.ptr
	case KindFloat32:
		return math.Float32frombits(uint32(v.bits)) == math.Float32frombits(uint32(o.bits))
	case KindFloat64:
		return math.Float64frombits(v.bits) == math.Float64frombits(o.bits)
	default:
		return v.bits == o.bits
	}
}

// String formats the payload with %v semantics; pointers print in hex.
func (v Value) String() string {
	switch v.kind {
	case KindPtr:
		return fmt.Sprintf("%p", v.ptr)
	case KindInt32:
		return fmt.Sprint(int32(uint32(v.bits)))
	case KindUint32:
		return fmt.Sprint(uint32(v.bits))
	case KindFloat32:
		return fmt.Sprint(math.Float32frombits(uint32(v.bits)))
	case KindFloat64:
		return fmt.Sprint(math.Float64frombits(v.bits))
	}
	return fmt.Sprintf("%s(%#x)", v.kind, v.bits)
}
