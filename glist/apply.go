package glist

import (
	"iter"
	"math"
	"unsafe"
)

// Apply calls fn with the payload of every node of l, head to tail.
func Apply(l List, fn func(Value)) {
	for n := l; n != nil; n = n.next {
		fn(n.data)
	}
}

// checkKind fails when l is non-empty and holds a kind other than want.
func checkKind(l List, want Kind) error {
	if l != nil && l.data.kind != want {
		return mismatch(want, l.data.kind)
	}
	return nil
}

// ApplyPtr calls fn with every pointer payload of l in list order.
// It returns [ErrKindMismatch] without calling fn if l does not hold
// pointers.
func ApplyPtr(l List, fn func(unsafe.Pointer)) error {
	if err := checkKind(l, KindPtr); err != nil {
		return err
	}
	for n := l; n != nil; n = n.next {
		fn(n.data.ptr)
	}
	return nil
}

// ApplyInt32 calls fn with every int32 payload of l in list order.
func ApplyInt32(l List, fn func(int32)) error {
	if err := checkKind(l, KindInt32); err != nil {
		return err
	}
	for n := l; n != nil; n = n.next {
		fn(int32(uint32(n.data.bits)))
	}
	return nil
}

// ApplyUint32 calls fn with every uint32 payload of l in list order.
func ApplyUint32(l List, fn func(uint32)) error {
	if err := checkKind(l, KindUint32); err != nil {
		return err
	}
	for n := l; n != nil; n = n.next {
		fn(uint32(n.data.bits))
	}
	return nil
}

// ApplyFloat32 calls fn with every float32 payload of l in list order.
func ApplyFloat32(l List, fn func(float32)) error {
	if err := checkKind(l, KindFloat32); err != nil {
		return err
	}
	for n := l; n != nil; n = n.next {
		fn(math.Float32frombits(uint32(n.data.bits)))
	}
	return nil
}

// ApplyFloat64 calls fn with every float64 payload of l in list order.
func ApplyFloat64(l List, fn func(float64)) error {
	if err := checkKind(l, KindFloat64); err != nil {
		return err
	}
	for n := l; n != nil; n = n.next {
		fn(math.Float64frombits(n.data.bits))
	}
	return nil
}

// All returns an iterator over the payloads of l in list order.
// The iterator can be ranged over any number of times.
//
//	for v := range glist.All(l) {
//	    fmt.Println(v)
//	}
func All(l List) iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for n := l; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// Nodes returns an iterator over the nodes of l in list order.
func Nodes(l List) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for n := l; n != nil; n = n.next {
			if !yield(n) {
				return
			}
		}
	}
}

// Values returns a snapshot of the payloads of l in list order.
// The result is empty, not nil, for the empty list.
func Values(l List) []Value {
	out := make([]Value, 0, Count(l))
	for n := l; n != nil; n = n.next {
		out = append(out, n.data)
	}
	return out
}
