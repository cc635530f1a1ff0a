package glist

import "unsafe"

// ChkDup reports whether some node of l holds a payload equal to v under
// [Value.Equal]. It stops at the first match. A v of another kind than the
// list never matches.
func ChkDup(l List, v Value) bool {
	for n := l; n != nil; n = n.next {
		if n.data.Equal(v) {
			return true
		}
	}
	return false
}

// ChkDupPtr reports whether l contains the pointer p. Only the pointer
// values are compared, not the memory they refer to.
func ChkDupPtr(l List, p unsafe.Pointer) bool { return ChkDup(l, Ptr(p)) }

// ChkDupInt32 reports whether l contains v.
func ChkDupInt32(l List, v int32) bool { return ChkDup(l, Int32(v)) }

// ChkDupUint32 reports whether l contains v.
func ChkDupUint32(l List, v uint32) bool { return ChkDup(l, Uint32(v)) }

// ChkDupFloat32 reports whether l contains v.
func ChkDupFloat32(l List, v float32) bool { return ChkDup(l, Float32(v)) }

// ChkDupFloat64 reports whether l contains v.
func ChkDupFloat64(l List, v float64) bool { return ChkDup(l, Float64(v)) }

// Count returns the number of nodes in l.
func Count(l List) int {
	c := 0
	for n := l; n != nil; n = n.next {
		c++
	}
	return c
}

// Tail returns the last node of l, or nil if l is empty.
func Tail(l List) *Node {
	if l == nil {
		return nil
	}
	n := l
	for n.next != nil {
		n = n.next
	}
	return n
}
